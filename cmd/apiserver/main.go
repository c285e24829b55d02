// API server entry point for WheatGuard-Intelligence.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/turtacn/WheatGuard-Intelligence/internal/application/diagnosis"
	"github.com/turtacn/WheatGuard-Intelligence/internal/application/ingestion"
	"github.com/turtacn/WheatGuard-Intelligence/internal/application/knowledge"
	"github.com/turtacn/WheatGuard-Intelligence/internal/application/session"
	"github.com/turtacn/WheatGuard-Intelligence/internal/config"
	"github.com/turtacn/WheatGuard-Intelligence/internal/infrastructure/database/neo4j"
	"github.com/turtacn/WheatGuard-Intelligence/internal/infrastructure/database/neo4j/repositories"
	"github.com/turtacn/WheatGuard-Intelligence/internal/infrastructure/database/redis"
	"github.com/turtacn/WheatGuard-Intelligence/internal/infrastructure/monitoring/logging"
	"github.com/turtacn/WheatGuard-Intelligence/internal/infrastructure/monitoring/prometheus"
	httpserver "github.com/turtacn/WheatGuard-Intelligence/internal/interfaces/http"
	"github.com/turtacn/WheatGuard-Intelligence/internal/interfaces/http/handlers"
)

const defaultConfigPath = "configs/config.yaml"

func main() {
	configPath := flag.String("config", defaultConfigPath, "path to configuration file")
	httpPort := flag.Int("http-port", 0, "HTTP server port (overrides config)")
	flag.Parse()

	cfg, err := loadConfig(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load configuration: %v\n", err)
		os.Exit(1)
	}
	if *httpPort > 0 {
		cfg.Server.Port = *httpPort
	}

	logger, err := logging.NewLogger(logging.LogConfig{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to initialize logger: %v\n", err)
		os.Exit(1)
	}

	logger.Info("Starting WheatGuard-Intelligence API server",
		logging.Int("port", cfg.Server.Port),
		logging.String("mode", cfg.Server.Mode))

	// Watch the config file so operators can see stale-config drift in the
	// logs.  Runtime settings are applied at startup only.
	if _, statErr := os.Stat(*configPath); statErr == nil {
		config.Watch(*configPath, func(_ *config.Config) {
			logger.Warn("Configuration file changed on disk; restart to apply")
		})
	}

	if err := run(cfg, logger); err != nil {
		logger.Fatal("Server exited with error", logging.Err(err))
	}
}

func run(cfg *config.Config, logger logging.Logger) error {
	// Knowledge graph.
	graphDriver, err := neo4j.NewDriver(neo4j.Neo4jConfig{
		URI:                   cfg.Neo4j.URI,
		Username:              cfg.Neo4j.User,
		Password:              cfg.Neo4j.Password,
		Database:              cfg.Neo4j.Database,
		MaxConnectionPoolSize: cfg.Neo4j.MaxConnectionPoolSize,
	}, logger.Named("neo4j"))
	if err != nil {
		return fmt.Errorf("neo4j initialization failed: %w", err)
	}
	defer graphDriver.Close()

	diseaseRepo := repositories.NewNeo4jDiseaseRepo(graphDriver, logger.Named("neo4j"))

	// Session store.
	redisClient, err := redis.NewClient(&redis.RedisConfig{
		Mode:         "standalone",
		Addr:         cfg.Redis.Addr,
		Password:     cfg.Redis.Password,
		DB:           cfg.Redis.DB,
		PoolSize:     cfg.Redis.PoolSize,
		MinIdleConns: cfg.Redis.MinIdleConns,
		DialTimeout:  cfg.Redis.DialTimeout,
		ReadTimeout:  cfg.Redis.ReadTimeout,
		WriteTimeout: cfg.Redis.WriteTimeout,
	}, logger.Named("redis"))
	if err != nil {
		return fmt.Errorf("redis initialization failed: %w", err)
	}
	defer redisClient.Close()

	var storeOpts []redis.SessionStoreOption
	if cfg.Session.TTL > 0 {
		storeOpts = append(storeOpts, redis.WithSessionTTL(cfg.Session.TTL))
	}
	sessionStore := redis.NewSessionStore(redisClient, logger.Named("sessions"), storeOpts...)
	lockFactory := redis.NewLockFactory(redisClient, logger.Named("locks"))

	// Metrics.
	var appMetrics *prometheus.AppMetrics
	var collector prometheus.MetricsCollector
	if cfg.Metrics.Enabled {
		collector, err = prometheus.NewMetricsCollector(prometheus.CollectorConfig{
			Namespace:            "wheatguard",
			Subsystem:            "api",
			EnableProcessMetrics: true,
		}, logger.Named("metrics"))
		if err != nil {
			return fmt.Errorf("metrics initialization failed: %w", err)
		}
		appMetrics = prometheus.NewAppMetrics(collector)
	}

	// Application services.
	diagSvc := diagnosis.NewService(diseaseRepo, sessionStore, logger.Named("diagnosis"),
		diagnosis.WithMatchLimit(cfg.Graph.MatchLimit),
		diagnosis.WithMetrics(appMetrics))
	sessSvc := session.NewService(sessionStore, logger.Named("session"),
		session.WithMetrics(appMetrics))
	knSvc := knowledge.NewService(diseaseRepo, logger.Named("knowledge"))
	ingSvc := ingestion.NewService(diseaseRepo, lockFactory, logger.Named("ingestion"),
		ingestion.WithLockTTL(cfg.Graph.RebuildLockTTL),
		ingestion.WithMetrics(appMetrics))

	// HTTP surface.
	router := httpserver.NewRouter(httpserver.RouterConfig{
		ChatHandler:      handlers.NewChatHandler(diagSvc, sessSvc, logger.Named("http")),
		KnowledgeHandler: handlers.NewKnowledgeHandler(knSvc, ingSvc, cfg.Graph.DataPath, logger.Named("http")),
		HealthHandler:    handlers.NewHealthHandler(healthChecks(graphDriver, redisClient), appMetrics, logger.Named("health")),
		Logger:           logger.Named("http"),
		Metrics:          appMetrics,
		MetricsCollector: collector,
		MetricsPath:      cfg.Metrics.Path,
		Mode:             cfg.Server.Mode,
	})

	server := httpserver.NewServer(&cfg.Server, router, logger.Named("http"))

	errCh := make(chan error, 1)
	go func() {
		errCh <- server.Start()
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return err
	case sig := <-quit:
		logger.Info("Received shutdown signal", logging.String("signal", sig.String()))
	}

	if err := server.Stop(context.Background()); err != nil {
		return err
	}
	return <-errCh
}

// loadConfig reads the config file when present and falls back to environment
// variables plus defaults otherwise.
func loadConfig(path string) (*config.Config, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		fmt.Fprintf(os.Stderr, "config file %s not found, using environment and defaults\n", path)
		return config.LoadFromEnv()
	}
	return config.Load(path)
}

//Personal.AI order the ending
