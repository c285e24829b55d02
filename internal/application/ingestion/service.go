// Package ingestion rebuilds the disease knowledge graph from the CSV source
// data.  This package serves as the interface between the CLI / admin HTTP
// handlers and the graph repository.
package ingestion

import (
	"context"
	"time"

	"github.com/turtacn/WheatGuard-Intelligence/internal/domain/disease"
	"github.com/turtacn/WheatGuard-Intelligence/internal/domain/extract"
	"github.com/turtacn/WheatGuard-Intelligence/internal/domain/lexicon"
	"github.com/turtacn/WheatGuard-Intelligence/internal/infrastructure/database/redis"
	"github.com/turtacn/WheatGuard-Intelligence/internal/infrastructure/monitoring/logging"
	"github.com/turtacn/WheatGuard-Intelligence/internal/infrastructure/monitoring/prometheus"
	"github.com/turtacn/WheatGuard-Intelligence/pkg/errors"
	types "github.com/turtacn/WheatGuard-Intelligence/pkg/types/diagnosis"
)

// rebuildLockName guards the graph rebuild across processes.
const rebuildLockName = "graph-rebuild"

// Service rebuilds the knowledge graph from source data.
type Service interface {
	// RebuildFromCSV wipes and repopulates the graph from the CSV at path.
	// Only one rebuild may run at a time; a concurrent attempt fails fast
	// with a busy error instead of queueing.
	RebuildFromCSV(ctx context.Context, path string) (*types.RebuildReport, error)
}

type service struct {
	repo      disease.Repository
	locks     redis.LockFactory
	extractor *extract.Extractor
	metrics   *prometheus.AppMetrics
	log       logging.Logger
	lockTTL   time.Duration
}

type Option func(*service)

// WithLockTTL sets the rebuild lock expiry.
func WithLockTTL(ttl time.Duration) Option {
	return func(s *service) { s.lockTTL = ttl }
}

// WithMetrics enables rebuild metrics recording.
func WithMetrics(m *prometheus.AppMetrics) Option {
	return func(s *service) { s.metrics = m }
}

// NewService builds the ingestion service over the default lexicons.
func NewService(repo disease.Repository, locks redis.LockFactory, log logging.Logger, opts ...Option) Service {
	s := &service{
		repo:      repo,
		locks:     locks,
		extractor: extract.NewStrict(lexicon.Default()),
		log:       log,
		lockTTL:   5 * time.Minute,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *service) RebuildFromCSV(ctx context.Context, path string) (*types.RebuildReport, error) {
	mutex := s.locks.NewMutex(rebuildLockName, redis.WithLockTTL(s.lockTTL))
	acquired, err := mutex.TryLock(ctx)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeCacheError, "failed to acquire rebuild lock")
	}
	if !acquired {
		return nil, errors.New(errors.ErrCodeGraphRebuildBusy, "a graph rebuild is already running")
	}
	defer func() {
		if err := mutex.Unlock(context.WithoutCancel(ctx)); err != nil {
			s.log.Warn("Failed to release rebuild lock", logging.Err(err))
		}
	}()

	start := time.Now()
	report, err := s.rebuild(ctx, path)
	if s.metrics != nil {
		prometheus.RecordGraphRebuild(s.metrics, err == nil, time.Since(start))
	}
	return report, err
}

func (s *service) rebuild(ctx context.Context, path string) (*types.RebuildReport, error) {
	records, err := ReadRecordsFile(path)
	if err != nil {
		return nil, err
	}

	diseases := make([]*disease.Disease, 0, len(records))
	failed := 0
	for i, rec := range records {
		d, err := disease.Build(s.extractor, rec)
		if err != nil {
			failed++
			s.log.Warn("Skipping invalid source row",
				logging.Int("row", i+2),
				logging.Err(err))
			continue
		}
		diseases = append(diseases, d)
	}
	if len(diseases) == 0 {
		return nil, errors.New(errors.ErrCodeGraphCSVParseFailed,
			"source data contains no valid rows").WithDetail(path)
	}

	start := time.Now()
	if err := s.repo.Rebuild(ctx, diseases); err != nil {
		return nil, err
	}

	report := &types.RebuildReport{
		Processed:  len(diseases),
		Failed:     failed,
		Duration:   time.Since(start),
		DurationMS: time.Since(start).Milliseconds(),
	}
	s.log.Info("Knowledge graph rebuild finished",
		logging.Int("processed", report.Processed),
		logging.Int("failed", report.Failed),
		logging.Duration("duration", report.Duration))
	return report, nil
}

//Personal.AI order the ending
