// Package session exposes conversation management on top of the Redis session
// store: creating, listing, reading, and clearing sessions.
package session

import (
	"context"

	"github.com/turtacn/WheatGuard-Intelligence/internal/infrastructure/monitoring/logging"
	"github.com/turtacn/WheatGuard-Intelligence/internal/infrastructure/monitoring/prometheus"
	"github.com/turtacn/WheatGuard-Intelligence/pkg/errors"
	types "github.com/turtacn/WheatGuard-Intelligence/pkg/types/diagnosis"
)

// WelcomeMessage opens every new conversation.
const WelcomeMessage = "您好，需要我什么帮助吗？请告诉我小麦的发病情况，包括：\n" +
	"1. 从哪个部位开始发病\n" +
	"2. 发病时的气象条件\n" +
	"3. 发病的生育期\n" +
	"4. 小麦的种植区"

// Store is the persistence the service depends on.  The Redis session store
// satisfies it.
type Store interface {
	NewSessionID() string
	History(ctx context.Context, userID, sessionID string) ([]types.Message, error)
	Delete(ctx context.Context, userID, sessionID string) error
	List(ctx context.Context, userID string) ([]types.SessionSummary, error)
}

// NewSession describes a freshly created conversation.
type NewSession struct {
	ID      string `json:"id"`
	Welcome string `json:"welcome"`
}

// Service manages chat sessions.
type Service interface {
	// Create allocates a session ID.  Nothing is persisted until the first
	// message arrives.
	Create(ctx context.Context, userID string) (*NewSession, error)

	// List returns the user's sessions, newest first.
	List(ctx context.Context, userID string) ([]types.SessionSummary, error)

	// History returns the stored turns of one session, oldest first.
	History(ctx context.Context, userID, sessionID string) ([]types.Message, error)

	// Clear removes a session's history and collected symptoms.
	Clear(ctx context.Context, userID, sessionID string) error
}

type service struct {
	store   Store
	metrics *prometheus.AppMetrics
	log     logging.Logger
}

type Option func(*service)

// WithMetrics enables session metrics recording.
func WithMetrics(m *prometheus.AppMetrics) Option {
	return func(s *service) { s.metrics = m }
}

func NewService(store Store, log logging.Logger, opts ...Option) Service {
	s := &service{
		store: store,
		log:   log,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *service) Create(ctx context.Context, userID string) (*NewSession, error) {
	if userID == "" {
		return nil, errors.New(errors.ErrCodeBadRequest, "user id must not be empty")
	}
	return &NewSession{
		ID:      s.store.NewSessionID(),
		Welcome: WelcomeMessage,
	}, nil
}

func (s *service) List(ctx context.Context, userID string) ([]types.SessionSummary, error) {
	summaries, err := s.store.List(ctx, userID)
	s.record("list", err)
	return summaries, err
}

func (s *service) History(ctx context.Context, userID, sessionID string) ([]types.Message, error) {
	if sessionID == "" {
		return nil, errors.New(errors.ErrCodeBadRequest, "session id must not be empty")
	}
	history, err := s.store.History(ctx, userID, sessionID)
	s.record("history", err)
	return history, err
}

func (s *service) Clear(ctx context.Context, userID, sessionID string) error {
	if sessionID == "" {
		return errors.New(errors.ErrCodeBadRequest, "session id must not be empty")
	}
	err := s.store.Delete(ctx, userID, sessionID)
	s.record("clear", err)
	if err == nil {
		s.log.Info("Cleared session",
			logging.String("user_id", userID),
			logging.String("session_id", sessionID))
	}
	return err
}

func (s *service) record(operation string, err error) {
	if s.metrics != nil {
		prometheus.RecordSessionOperation(s.metrics, operation, err)
	}
}

//Personal.AI order the ending
