// Package repositories contains the Neo4j-backed persistence implementations
// for the disease knowledge graph.
package repositories

import (
	"context"
	"fmt"
	"strings"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"
	"github.com/turtacn/WheatGuard-Intelligence/internal/domain/disease"
	driver "github.com/turtacn/WheatGuard-Intelligence/internal/infrastructure/database/neo4j"
	"github.com/turtacn/WheatGuard-Intelligence/internal/infrastructure/monitoring/logging"
	"github.com/turtacn/WheatGuard-Intelligence/pkg/errors"
	types "github.com/turtacn/WheatGuard-Intelligence/pkg/types/diagnosis"
)

type neo4jDiseaseRepo struct {
	driver driver.DriverInterface
	log    logging.Logger
}

// NewNeo4jDiseaseRepo builds the graph-backed disease repository.
func NewNeo4jDiseaseRepo(d driver.DriverInterface, log logging.Logger) disease.Repository {
	return &neo4jDiseaseRepo{
		driver: d,
		log:    log,
	}
}

const (
	wipeQuery = `MATCH (n) DETACH DELETE n`

	mergeDiseaseQuery = `
		MERGE (d:Disease {name: $name})
		SET d.alias = $alias,
		    d.pathogen = $pathogen,
		    d.symptoms = $symptoms,
		    d.control_method = $control_method,
		    d.type = $type,
		    d.color = $color
	`

	candidateReturn = `
		RETURN DISTINCT d.name AS name,
		       d.alias AS alias,
		       d.pathogen AS pathogen,
		       d.symptoms AS description,
		       d.control_method AS control_method
	`
)

// mergeAttributeQuery merges one attribute node of the given label and the
// typed edge from the disease to it.  Labels and relationship types cannot be
// parameterised in Cypher, so they are interpolated; both come from the closed
// Label enum, never from user input.
func mergeAttributeQuery(label disease.Label, rel string) string {
	return fmt.Sprintf(`
		MATCH (d:Disease {name: $disease})
		MERGE (a:%s {name: $name})
		ON CREATE SET a.type = $type, a.color = $color
		MERGE (d)-[:%s]->(a)
	`, label, rel)
}

func (r *neo4jDiseaseRepo) Rebuild(ctx context.Context, diseases []*disease.Disease) error {
	_, err := r.driver.ExecuteWrite(ctx, func(tx driver.Transaction) (interface{}, error) {
		if _, err := tx.Run(ctx, wipeQuery, nil); err != nil {
			return nil, err
		}

		for _, d := range diseases {
			params := map[string]interface{}{
				"name":           d.Name,
				"alias":          d.Alias,
				"pathogen":       d.Pathogen,
				"symptoms":       d.Symptoms,
				"control_method": d.Treatment,
				"type":           disease.LabelDisease.TypeName(),
				"color":          disease.LabelDisease.Color(),
			}
			if _, err := tx.Run(ctx, mergeDiseaseQuery, params); err != nil {
				return nil, err
			}

			for _, label := range disease.AttributeLabels() {
				terms := d.Attributes[label]
				if len(terms) == 0 {
					continue
				}
				rel, err := label.Relationship()
				if err != nil {
					return nil, err
				}
				query := mergeAttributeQuery(label, rel)
				for _, term := range terms {
					attrParams := map[string]interface{}{
						"disease": d.Name,
						"name":    term,
						"type":    label.TypeName(),
						"color":   label.Color(),
					}
					if _, err := tx.Run(ctx, query, attrParams); err != nil {
						return nil, err
					}
				}
			}
		}
		return nil, nil
	})
	if err != nil {
		r.log.Error("Graph rebuild transaction failed", logging.Err(err))
		return errors.Wrap(err, errors.ErrCodeGraphRebuildFailed, "failed to rebuild knowledge graph")
	}
	r.log.Info("Knowledge graph rebuilt", logging.Int("diseases", len(diseases)))
	return nil
}

// matchClause is one dimension constraint of the dynamic match query.
type matchClause struct {
	alias string
	label disease.Label
	param string
	terms types.Terms
}

// buildMatchQuery assembles one MATCH clause per present fingerprint
// dimension.  Absent dimensions add no constraint.
func buildMatchQuery(fp types.Fingerprint, limit int) (string, map[string]interface{}, int) {
	clauses := []matchClause{
		{alias: "p", label: disease.LabelPlantPart, param: "plant_part", terms: fp.PlantPart},
		{alias: "w", label: disease.LabelWeather, param: "weather", terms: fp.Weather},
		{alias: "g", label: disease.LabelGrowthStage, param: "growth_stage", terms: fp.GrowthStage},
		{alias: "rg", label: disease.LabelRegion, param: "region", terms: fp.Region},
	}

	var sb strings.Builder
	sb.WriteString("MATCH (d:Disease)\n")
	params := map[string]interface{}{"limit": limit}
	dims := 0
	for _, c := range clauses {
		if len(c.terms) == 0 {
			continue
		}
		rel, err := c.label.Relationship()
		if err != nil {
			continue
		}
		fmt.Fprintf(&sb, "MATCH (d)-[:%s]->(%s:%s) WHERE %s.name IN $%s\n",
			rel, c.alias, c.label, c.alias, c.param)
		params[c.param] = []string(c.terms)
		dims++
	}
	sb.WriteString(candidateReturn)
	sb.WriteString("\nLIMIT $limit")
	return sb.String(), params, dims
}

func (r *neo4jDiseaseRepo) Match(ctx context.Context, fp types.Fingerprint, limit int) ([]types.DiseaseCandidate, error) {
	if limit <= 0 {
		limit = disease.DefaultMatchLimit
	}
	query, params, dims := buildMatchQuery(fp, limit)

	result, err := r.driver.ExecuteRead(ctx, func(tx driver.Transaction) (interface{}, error) {
		res, err := tx.Run(ctx, query, params)
		if err != nil {
			return nil, err
		}
		return driver.CollectRecords(ctx, res, recordToCandidate)
	})
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeDiagnosisQueryFailed, "disease match query failed")
	}

	candidates := result.([]types.DiseaseCandidate)
	for i := range candidates {
		candidates[i].MatchCount = int64(dims)
		candidates[i].MatchRatio = 1.0
	}
	return candidates, nil
}

func (r *neo4jDiseaseRepo) FindByName(ctx context.Context, name string) (*types.DiseaseCandidate, error) {
	query := `
		MATCH (d:Disease {name: $name})
	` + candidateReturn

	result, err := r.driver.ExecuteRead(ctx, func(tx driver.Transaction) (interface{}, error) {
		res, err := tx.Run(ctx, query, map[string]interface{}{"name": name})
		if err != nil {
			return nil, err
		}
		return driver.CollectRecords(ctx, res, recordToCandidate)
	})
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeDiagnosisQueryFailed, "disease lookup failed")
	}

	candidates := result.([]types.DiseaseCandidate)
	if len(candidates) == 0 {
		return nil, nil
	}
	c := candidates[0]
	c.MatchRatio = 1.0
	return &c, nil
}

func (r *neo4jDiseaseRepo) Stats(ctx context.Context) (*types.GraphStats, error) {
	nodeQuery := `
		MATCH (n)
		RETURN labels(n)[0] AS label, count(n) AS cnt
	`
	relQuery := `
		MATCH ()-[r]->()
		RETURN count(r) AS cnt
	`

	result, err := r.driver.ExecuteRead(ctx, func(tx driver.Transaction) (interface{}, error) {
		stats := &types.GraphStats{Nodes: map[string]int64{}}

		res, err := tx.Run(ctx, nodeQuery, nil)
		if err != nil {
			return nil, err
		}
		for res.Next(ctx) {
			rec := res.Record()
			label := recordString(rec, "label")
			stats.Nodes[label] = recordInt64(rec, "cnt")
		}
		if err := res.Err(); err != nil {
			return nil, err
		}

		res, err = tx.Run(ctx, relQuery, nil)
		if err != nil {
			return nil, err
		}
		if res.Next(ctx) {
			stats.Relationships = recordInt64(res.Record(), "cnt")
		}
		if err := res.Err(); err != nil {
			return nil, err
		}
		return stats, nil
	})
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeGraphUnavailable, "graph stats query failed")
	}
	return result.(*types.GraphStats), nil
}

func recordToCandidate(rec *neo4j.Record) (types.DiseaseCandidate, error) {
	return types.DiseaseCandidate{
		Name:          recordString(rec, "name"),
		Alias:         recordString(rec, "alias"),
		Pathogen:      recordString(rec, "pathogen"),
		Description:   recordString(rec, "description"),
		ControlMethod: recordString(rec, "control_method"),
	}, nil
}

func recordString(rec *neo4j.Record, key string) string {
	v, ok := rec.Get(key)
	if !ok || v == nil {
		return ""
	}
	s, _ := v.(string)
	return s
}

func recordInt64(rec *neo4j.Record, key string) int64 {
	v, ok := rec.Get(key)
	if !ok || v == nil {
		return 0
	}
	n, _ := v.(int64)
	return n
}

//Personal.AI order the ending
