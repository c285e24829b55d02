package client

import (
	"context"
	"fmt"
	"net/url"

	types "github.com/turtacn/WheatGuard-Intelligence/pkg/types/diagnosis"
)

// ChatClient accesses the /api/chat endpoints.
type ChatClient struct {
	client *Client
}

// ChatReply is one diagnosis turn returned by the server.
type ChatReply struct {
	SessionID  string                   `json:"session_id"`
	Text       string                   `json:"text"`
	Symptoms   types.Fingerprint        `json:"symptoms"`
	Candidates []types.DiseaseCandidate `json:"candidates,omitempty"`
}

// NewSession is the response of session creation.
type NewSession struct {
	ID      string `json:"id"`
	Welcome string `json:"welcome"`
}

// SendMessage submits one chat turn.  An empty sessionID starts a new
// conversation; the assigned ID comes back in the reply.
func (c *ChatClient) SendMessage(ctx context.Context, sessionID, message string) (*ChatReply, error) {
	if message == "" {
		return nil, fmt.Errorf("chat: message is required")
	}

	req := map[string]string{
		"session_id": sessionID,
		"message":    message,
	}
	var reply ChatReply
	if err := c.client.post(ctx, "/api/chat/message", req, &reply); err != nil {
		return nil, err
	}
	return &reply, nil
}

// CreateSession opens a fresh conversation and returns its welcome message.
func (c *ChatClient) CreateSession(ctx context.Context) (*NewSession, error) {
	var session NewSession
	if err := c.client.post(ctx, "/api/chat/sessions", nil, &session); err != nil {
		return nil, err
	}
	return &session, nil
}

// ListSessions returns the caller's conversations, newest first.
func (c *ChatClient) ListSessions(ctx context.Context) ([]types.SessionSummary, error) {
	var resp struct {
		Sessions []types.SessionSummary `json:"sessions"`
	}
	if err := c.client.get(ctx, "/api/chat/sessions", &resp); err != nil {
		return nil, err
	}
	return resp.Sessions, nil
}

// History returns the full message log of one conversation.
func (c *ChatClient) History(ctx context.Context, sessionID string) ([]types.Message, error) {
	if sessionID == "" {
		return nil, fmt.Errorf("chat: sessionID is required")
	}

	var resp struct {
		Messages []types.Message `json:"messages"`
	}
	path := "/api/chat/sessions/" + url.PathEscape(sessionID) + "/history"
	if err := c.client.get(ctx, path, &resp); err != nil {
		return nil, err
	}
	return resp.Messages, nil
}

// ClearSession removes a conversation's history and collected symptoms.
func (c *ChatClient) ClearSession(ctx context.Context, sessionID string) error {
	if sessionID == "" {
		return fmt.Errorf("chat: sessionID is required")
	}
	return c.client.delete(ctx, "/api/chat/sessions/"+url.PathEscape(sessionID), nil)
}

//Personal.AI order the ending
