// Package knowledge exposes read access to the disease knowledge graph:
// per-disease detail and graph-wide statistics.
package knowledge

import (
	"context"

	"github.com/turtacn/WheatGuard-Intelligence/internal/domain/disease"
	"github.com/turtacn/WheatGuard-Intelligence/internal/infrastructure/monitoring/logging"
	"github.com/turtacn/WheatGuard-Intelligence/pkg/errors"
	types "github.com/turtacn/WheatGuard-Intelligence/pkg/types/diagnosis"
)

// Service answers knowledge-graph queries.
type Service interface {
	// DiseaseDetail returns one disease by canonical name.
	DiseaseDetail(ctx context.Context, name string) (*types.DiseaseCandidate, error)

	// Stats reports node counts per label and the relationship total.
	Stats(ctx context.Context) (*types.GraphStats, error)
}

type service struct {
	repo disease.Repository
	log  logging.Logger
}

func NewService(repo disease.Repository, log logging.Logger) Service {
	return &service{
		repo: repo,
		log:  log,
	}
}

func (s *service) DiseaseDetail(ctx context.Context, name string) (*types.DiseaseCandidate, error) {
	if name == "" {
		return nil, errors.New(errors.ErrCodeBadRequest, "disease name must not be empty")
	}
	candidate, err := s.repo.FindByName(ctx, name)
	if err != nil {
		return nil, err
	}
	if candidate == nil {
		return nil, errors.New(errors.ErrCodeDiseaseNotFound, "disease not found").WithDetail(name)
	}
	return candidate, nil
}

func (s *service) Stats(ctx context.Context) (*types.GraphStats, error) {
	return s.repo.Stats(ctx)
}

//Personal.AI order the ending
