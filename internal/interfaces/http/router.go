package http

import (
	"github.com/gin-gonic/gin"

	"github.com/turtacn/WheatGuard-Intelligence/internal/infrastructure/monitoring/logging"
	"github.com/turtacn/WheatGuard-Intelligence/internal/infrastructure/monitoring/prometheus"
	"github.com/turtacn/WheatGuard-Intelligence/internal/interfaces/http/handlers"
	"github.com/turtacn/WheatGuard-Intelligence/internal/interfaces/http/middleware"
)

// RouterConfig aggregates all handler and middleware dependencies required
// to construct the complete HTTP route tree.
type RouterConfig struct {
	// Handlers
	ChatHandler      *handlers.ChatHandler
	KnowledgeHandler *handlers.KnowledgeHandler
	HealthHandler    *handlers.HealthHandler

	// Infrastructure
	Logger           logging.Logger
	Metrics          *prometheus.AppMetrics
	MetricsCollector prometheus.MetricsCollector
	MetricsPath      string

	// Mode is the gin mode: debug, release, or test.
	Mode string
}

// NewRouter constructs the complete HTTP route tree from the given
// configuration: global middleware, public probes, the metrics endpoint, and
// the /api resource groups.
func NewRouter(cfg RouterConfig) *gin.Engine {
	if cfg.Mode != "" {
		gin.SetMode(cfg.Mode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.CORS())
	if cfg.Logger != nil {
		r.Use(middleware.RequestLogging(cfg.Logger, cfg.Metrics, middleware.DefaultLoggingConfig()))
	}

	// Public probes.
	if cfg.HealthHandler != nil {
		r.GET("/healthz", cfg.HealthHandler.Liveness)
		r.GET("/readyz", cfg.HealthHandler.Readiness)
	}

	// Metrics endpoint, exposed without auth; restrict at the network layer.
	if cfg.MetricsCollector != nil {
		path := cfg.MetricsPath
		if path == "" {
			path = "/metrics"
		}
		r.GET(path, gin.WrapH(cfg.MetricsCollector.Handler()))
	}

	api := r.Group("/api")
	registerChatRoutes(api, cfg.ChatHandler)
	registerKnowledgeRoutes(api, cfg.KnowledgeHandler)

	return r
}

// registerChatRoutes mounts conversation endpoints under /api/chat.
func registerChatRoutes(r *gin.RouterGroup, h *handlers.ChatHandler) {
	if h == nil {
		return
	}
	chat := r.Group("/chat")
	{
		chat.POST("/message", h.PostMessage)
		chat.POST("/sessions", h.CreateSession)
		chat.GET("/sessions", h.ListSessions)
		chat.GET("/sessions/:sessionID/history", h.GetHistory)
		chat.DELETE("/sessions/:sessionID", h.ClearSession)
	}
}

// registerKnowledgeRoutes mounts graph endpoints under /api/knowledge.
func registerKnowledgeRoutes(r *gin.RouterGroup, h *handlers.KnowledgeHandler) {
	if h == nil {
		return
	}
	kn := r.Group("/knowledge")
	{
		kn.GET("/diseases/:name", h.GetDisease)
		kn.GET("/stats", h.GetStats)
		kn.POST("/rebuild", h.Rebuild)
	}
}

//Personal.AI order the ending
