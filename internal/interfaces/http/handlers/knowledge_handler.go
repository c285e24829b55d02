package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/turtacn/WheatGuard-Intelligence/internal/application/ingestion"
	"github.com/turtacn/WheatGuard-Intelligence/internal/application/knowledge"
	"github.com/turtacn/WheatGuard-Intelligence/internal/infrastructure/monitoring/logging"
)

// KnowledgeHandler serves knowledge-graph inspection and the rebuild trigger.
type KnowledgeHandler struct {
	knowledge knowledge.Service
	ingestion ingestion.Service
	dataPath  string
	log       logging.Logger
}

// NewKnowledgeHandler builds the handler.  dataPath is the default CSV source
// used when a rebuild request names no file.
func NewKnowledgeHandler(kn knowledge.Service, ing ingestion.Service, dataPath string, log logging.Logger) *KnowledgeHandler {
	return &KnowledgeHandler{
		knowledge: kn,
		ingestion: ing,
		dataPath:  dataPath,
		log:       log,
	}
}

// GetDisease returns one disease by canonical name.
func (h *KnowledgeHandler) GetDisease(c *gin.Context) {
	detail, err := h.knowledge.DiseaseDetail(c.Request.Context(), c.Param("name"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, detail)
}

// GetStats reports node and relationship counts.
func (h *KnowledgeHandler) GetStats(c *gin.Context) {
	stats, err := h.knowledge.Stats(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}

// RebuildRequest is the body of POST /api/knowledge/rebuild.
type RebuildRequest struct {
	// CSVPath overrides the configured source file.
	CSVPath string `json:"csv_path"`
}

// Rebuild wipes and repopulates the knowledge graph from the CSV source.
func (h *KnowledgeHandler) Rebuild(c *gin.Context) {
	var req RebuildRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			respondBindError(c, err)
			return
		}
	}
	path := req.CSVPath
	if path == "" {
		path = h.dataPath
	}

	h.log.Info("Graph rebuild requested", logging.String("path", path))
	report, err := h.ingestion.RebuildFromCSV(c.Request.Context(), path)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, report)
}

//Personal.AI order the ending
