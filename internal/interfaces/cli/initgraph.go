package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/turtacn/WheatGuard-Intelligence/internal/application/ingestion"
	"github.com/turtacn/WheatGuard-Intelligence/internal/infrastructure/database/neo4j"
	"github.com/turtacn/WheatGuard-Intelligence/internal/infrastructure/database/neo4j/repositories"
	"github.com/turtacn/WheatGuard-Intelligence/internal/infrastructure/database/redis"
)

var initGraphCSVPath string

// NewInitGraphCmd creates the init-graph command. Unlike "knowledge rebuild"
// it talks to Neo4j and Redis directly, so the graph can be bootstrapped
// before any API server is running.
func NewInitGraphCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init-graph",
		Short: "Bootstrap the disease knowledge graph directly from a CSV file",
		Long:  "Wipes the knowledge graph and reloads it from the disease CSV, connecting\nto Neo4j and Redis with the stores configured in the config file. Use this\nto seed a fresh deployment; for a running server prefer 'knowledge rebuild'.",
		RunE:  runInitGraph,
	}
	cmd.Flags().StringVar(&initGraphCSVPath, "csv", "", "CSV source path (default: graph.data_path from config)")
	return cmd
}

func runInitGraph(cmd *cobra.Command, args []string) error {
	cliCtx, err := GetCLIContext(cmd)
	if err != nil {
		return err
	}
	cfg := cliCtx.Config
	log := cliCtx.Logger

	csvPath := initGraphCSVPath
	if csvPath == "" {
		csvPath = cfg.Graph.DataPath
	}
	if csvPath == "" {
		return fmt.Errorf("no CSV path given and graph.data_path is not configured")
	}

	driver, err := neo4j.NewDriver(neo4j.Neo4jConfig{
		URI:                   cfg.Neo4j.URI,
		Username:              cfg.Neo4j.User,
		Password:              cfg.Neo4j.Password,
		Database:              cfg.Neo4j.Database,
		MaxConnectionPoolSize: cfg.Neo4j.MaxConnectionPoolSize,
	}, log.Named("neo4j"))
	if err != nil {
		return fmt.Errorf("neo4j connection failed: %w", err)
	}
	defer driver.Close()

	redisClient, err := redis.NewClient(&redis.RedisConfig{
		Mode:     "standalone",
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	}, log.Named("redis"))
	if err != nil {
		return fmt.Errorf("redis connection failed: %w", err)
	}
	defer redisClient.Close()

	repo := repositories.NewNeo4jDiseaseRepo(driver, log.Named("neo4j"))
	svc := ingestion.NewService(repo, redis.NewLockFactory(redisClient, log.Named("locks")), log.Named("ingestion"),
		ingestion.WithLockTTL(cfg.Graph.RebuildLockTTL))

	report, err := svc.RebuildFromCSV(cmd.Context(), csvPath)
	if err != nil {
		return fmt.Errorf("graph initialization failed: %w", err)
	}

	if strings.EqualFold(cliCtx.OutputFormat, "json") {
		return printJSON(cmd, report)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Graph initialized from %s: %d diseases loaded, %d rows skipped (%dms)\n",
		csvPath, report.Processed, report.Failed, report.DurationMS)
	return nil
}

//Personal.AI order the ending
