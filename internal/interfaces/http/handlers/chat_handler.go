package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/turtacn/WheatGuard-Intelligence/internal/application/diagnosis"
	"github.com/turtacn/WheatGuard-Intelligence/internal/application/session"
	"github.com/turtacn/WheatGuard-Intelligence/internal/infrastructure/monitoring/logging"
	types "github.com/turtacn/WheatGuard-Intelligence/pkg/types/diagnosis"
)

// ChatHandler serves the conversation endpoints.
type ChatHandler struct {
	diagnosis diagnosis.Service
	sessions  session.Service
	log       logging.Logger
}

func NewChatHandler(diag diagnosis.Service, sessions session.Service, log logging.Logger) *ChatHandler {
	return &ChatHandler{
		diagnosis: diag,
		sessions:  sessions,
		log:       log,
	}
}

// MessageRequest is the body of POST /api/chat/message.
type MessageRequest struct {
	SessionID string `json:"session_id"`
	Message   string `json:"message" binding:"required"`
}

// PostMessage handles one chat turn.
func (h *ChatHandler) PostMessage(c *gin.Context) {
	var req MessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	reply, err := h.diagnosis.HandleMessage(c.Request.Context(), userID(c), req.SessionID, req.Message)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, reply)
}

// CreateSession allocates a new conversation.
func (h *ChatHandler) CreateSession(c *gin.Context) {
	created, err := h.sessions.Create(c.Request.Context(), userID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

// ListSessions returns the caller's conversations, newest first.
func (h *ChatHandler) ListSessions(c *gin.Context) {
	summaries, err := h.sessions.List(c.Request.Context(), userID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"sessions": summaries})
}

// GetHistory returns the stored turns of one conversation.
func (h *ChatHandler) GetHistory(c *gin.Context) {
	history, err := h.sessions.History(c.Request.Context(), userID(c), c.Param("sessionID"))
	if err != nil {
		respondError(c, err)
		return
	}
	if history == nil {
		history = []types.Message{}
	}
	c.JSON(http.StatusOK, gin.H{"messages": history})
}

// ClearSession removes a conversation's history and collected symptoms.
func (h *ChatHandler) ClearSession(c *gin.Context) {
	if err := h.sessions.Clear(c.Request.Context(), userID(c), c.Param("sessionID")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "已清除历史记录和症状信息"})
}

//Personal.AI order the ending
