package client

import (
	"context"
	"fmt"
	"net/url"

	types "github.com/turtacn/WheatGuard-Intelligence/pkg/types/diagnosis"
)

// KnowledgeClient accesses the /api/knowledge endpoints.
type KnowledgeClient struct {
	client *Client
}

// Disease fetches the full profile of a named disease.
func (c *KnowledgeClient) Disease(ctx context.Context, name string) (*types.DiseaseCandidate, error) {
	if name == "" {
		return nil, fmt.Errorf("knowledge: disease name is required")
	}

	var disease types.DiseaseCandidate
	path := "/api/knowledge/diseases/" + url.PathEscape(name)
	if err := c.client.get(ctx, path, &disease); err != nil {
		return nil, err
	}
	return &disease, nil
}

// Stats returns node and relationship counts of the knowledge graph.
func (c *KnowledgeClient) Stats(ctx context.Context) (*types.GraphStats, error) {
	var stats types.GraphStats
	if err := c.client.get(ctx, "/api/knowledge/stats", &stats); err != nil {
		return nil, err
	}
	return &stats, nil
}

// Rebuild triggers a knowledge-graph rebuild from the given CSV.  An empty
// csvPath uses the server's configured source file.
func (c *KnowledgeClient) Rebuild(ctx context.Context, csvPath string) (*types.RebuildReport, error) {
	var body interface{}
	if csvPath != "" {
		body = map[string]string{"csv_path": csvPath}
	}

	var report types.RebuildReport
	if err := c.client.post(ctx, "/api/knowledge/rebuild", body, &report); err != nil {
		return nil, err
	}
	return &report, nil
}

//Personal.AI order the ending
