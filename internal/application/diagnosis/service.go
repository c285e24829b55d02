// Package diagnosis orchestrates the symptom-based chat flow: extract the
// symptoms of an utterance, merge them with what the session already knows,
// match diseases against the knowledge graph, and assemble the reply text.
// This package serves as the interface between the HTTP handlers and the
// domain logic.
package diagnosis

import (
	"context"
	"time"

	"github.com/turtacn/WheatGuard-Intelligence/internal/domain/disease"
	"github.com/turtacn/WheatGuard-Intelligence/internal/domain/lexicon"
	"github.com/turtacn/WheatGuard-Intelligence/internal/domain/symptom"
	"github.com/turtacn/WheatGuard-Intelligence/internal/infrastructure/monitoring/logging"
	"github.com/turtacn/WheatGuard-Intelligence/internal/infrastructure/monitoring/prometheus"
	"github.com/turtacn/WheatGuard-Intelligence/pkg/errors"
	types "github.com/turtacn/WheatGuard-Intelligence/pkg/types/diagnosis"
)

// SessionStore is the per-session persistence the service depends on.  The
// Redis session store satisfies it.
type SessionStore interface {
	NewSessionID() string
	History(ctx context.Context, userID, sessionID string) ([]types.Message, error)
	AppendMessages(ctx context.Context, userID, sessionID string, msgs ...types.Message) error
	Fingerprint(ctx context.Context, userID, sessionID string) (types.Fingerprint, error)
	SaveFingerprint(ctx context.Context, userID, sessionID string, fp types.Fingerprint) error
}

// Reply is the assembled answer to one chat message.
type Reply struct {
	SessionID   string                   `json:"session_id"`
	Text        string                   `json:"text"`
	Fingerprint types.Fingerprint        `json:"symptoms"`
	Candidates  []types.DiseaseCandidate `json:"candidates,omitempty"`
}

// Service handles diagnosis chat messages.
type Service interface {
	// HandleMessage processes one user utterance within a session.  An empty
	// sessionID starts a new session; the assigned ID is returned in the
	// reply.  An unreachable graph store degrades to a no-candidate reply
	// instead of failing the request.
	HandleMessage(ctx context.Context, userID, sessionID, text string) (*Reply, error)
}

type service struct {
	repo       disease.Repository
	sessions   SessionStore
	normalizer *symptom.Normalizer
	metrics    *prometheus.AppMetrics
	log        logging.Logger
	matchLimit int
}

type Option func(*service)

// WithMatchLimit caps the candidates returned per diagnosis.
func WithMatchLimit(limit int) Option {
	return func(s *service) {
		if limit > 0 {
			s.matchLimit = limit
		}
	}
}

// WithMetrics enables diagnosis metrics recording.
func WithMetrics(m *prometheus.AppMetrics) Option {
	return func(s *service) { s.metrics = m }
}

// NewService builds the diagnosis service over the default lexicons.
func NewService(repo disease.Repository, sessions SessionStore, log logging.Logger, opts ...Option) Service {
	s := &service{
		repo:       repo,
		sessions:   sessions,
		normalizer: symptom.NewNormalizer(lexicon.Default()),
		log:        log,
		matchLimit: disease.DefaultMatchLimit,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *service) HandleMessage(ctx context.Context, userID, sessionID, text string) (*Reply, error) {
	if text == "" {
		return nil, errors.New(errors.ErrCodeBadRequest, "message must not be empty")
	}
	if sessionID == "" {
		sessionID = s.sessions.NewSessionID()
	}

	start := time.Now()
	extracted := s.normalizer.ExtractSymptoms(text)

	stored, err := s.sessions.Fingerprint(ctx, userID, sessionID)
	if err != nil {
		// A lost fingerprint only widens the question back to the user.
		s.log.Warn("Failed to load session symptoms, continuing without history",
			logging.String("session_id", sessionID), logging.Err(err))
		stored = types.Fingerprint{}
	}
	merged := extracted.Merge(stored)

	reply := &Reply{
		SessionID:   sessionID,
		Fingerprint: merged,
	}

	if merged.IsEmpty() {
		reply.Text = fallbackReply
	} else {
		if err := s.sessions.SaveFingerprint(ctx, userID, sessionID, merged); err != nil {
			s.log.Warn("Failed to persist session symptoms",
				logging.String("session_id", sessionID), logging.Err(err))
		}
		reply.Candidates = s.match(ctx, merged)
		reply.Text = summarizeCollected(merged) + "\n\n" + buildDiagnosisReply(reply.Candidates, merged)
	}

	if err := s.appendTurns(ctx, userID, sessionID, text, reply.Text); err != nil {
		return nil, err
	}

	if s.metrics != nil {
		prometheus.RecordDiagnosis(s.metrics, true, len(reply.Candidates), time.Since(start))
	}
	return reply, nil
}

// match queries the graph, degrading to no candidates when the store is
// unreachable.
func (s *service) match(ctx context.Context, fp types.Fingerprint) []types.DiseaseCandidate {
	candidates, err := s.repo.Match(ctx, fp, s.matchLimit)
	if err != nil {
		s.log.Error("Disease match failed, replying without candidates", logging.Err(err))
		if s.metrics != nil {
			prometheus.RecordError(s.metrics, "neo4j", string(errors.GetCode(err)))
		}
		return nil
	}
	return candidates
}

func (s *service) appendTurns(ctx context.Context, userID, sessionID, question, answer string) error {
	now := float64(time.Now().UnixMilli()) / 1000
	return s.sessions.AppendMessages(ctx, userID, sessionID,
		types.Message{Role: types.RoleUser, Content: question, Timestamp: now},
		types.Message{Role: types.RoleAssistant, Content: answer, Timestamp: now},
	)
}

//Personal.AI order the ending
