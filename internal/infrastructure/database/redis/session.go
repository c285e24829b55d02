package redis

import (
	"context"
	"encoding/json"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/turtacn/WheatGuard-Intelligence/internal/infrastructure/monitoring/logging"
	"github.com/turtacn/WheatGuard-Intelligence/pkg/errors"
	types "github.com/turtacn/WheatGuard-Intelligence/pkg/types/diagnosis"
)

const (
	historyKeyPrefix  = "chat:history:"
	symptomsKeyPrefix = "chat:symptoms:"

	// maxHistoryMessages caps the stored conversation; older turns are
	// discarded first.
	maxHistoryMessages = 50

	// sessionTitleRunes bounds the derived session title length.
	sessionTitleRunes = 20

	defaultSessionTitle = "新对话"

	scanBatchSize = 100
)

// SessionStore persists conversation histories and accumulated symptom
// fingerprints in Redis, one JSON value per session.
type SessionStore struct {
	client *Client
	log    logging.Logger
	ttl    time.Duration
}

type SessionStoreOption func(*SessionStore)

// WithSessionTTL sets an expiry on session keys.  Zero keeps them forever.
func WithSessionTTL(ttl time.Duration) SessionStoreOption {
	return func(s *SessionStore) { s.ttl = ttl }
}

func NewSessionStore(client *Client, log logging.Logger, opts ...SessionStoreOption) *SessionStore {
	s := &SessionStore{
		client: client,
		log:    log,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// NewSessionID returns a fresh session identifier.  Millisecond timestamps
// keep listings sortable by recency.
func (s *SessionStore) NewSessionID() string {
	return strconv.FormatInt(time.Now().UnixMilli(), 10)
}

func historyKey(userID, sessionID string) string {
	return historyKeyPrefix + userID + ":" + sessionID
}

func symptomsKey(userID, sessionID string) string {
	return symptomsKeyPrefix + userID + ":" + sessionID
}

// History returns the stored messages of one session, oldest first.  A
// missing session yields an empty history.
func (s *SessionStore) History(ctx context.Context, userID, sessionID string) ([]types.Message, error) {
	data, err := s.client.Get(ctx, historyKey(userID, sessionID)).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeSessionStoreFailed, "failed to load session history")
	}

	var messages []types.Message
	if err := json.Unmarshal(data, &messages); err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeHistoryCorrupted, "session history is not valid JSON")
	}
	return messages, nil
}

// AppendMessages appends turns to the session history, trimming to the most
// recent maxHistoryMessages.
func (s *SessionStore) AppendMessages(ctx context.Context, userID, sessionID string, msgs ...types.Message) error {
	history, err := s.History(ctx, userID, sessionID)
	if err != nil {
		return err
	}
	history = append(history, msgs...)
	if len(history) > maxHistoryMessages {
		history = history[len(history)-maxHistoryMessages:]
	}

	data, err := json.Marshal(history)
	if err != nil {
		return errors.Wrap(err, errors.ErrCodeSerialization, "failed to encode session history")
	}
	if err := s.client.Set(ctx, historyKey(userID, sessionID), data, s.ttl).Err(); err != nil {
		return errors.Wrap(err, errors.ErrCodeSessionStoreFailed, "failed to save session history")
	}
	return nil
}

// Fingerprint returns the accumulated symptom fingerprint of one session.  A
// missing record yields the zero fingerprint.
func (s *SessionStore) Fingerprint(ctx context.Context, userID, sessionID string) (types.Fingerprint, error) {
	var fp types.Fingerprint
	data, err := s.client.Get(ctx, symptomsKey(userID, sessionID)).Bytes()
	if err == redis.Nil {
		return fp, nil
	}
	if err != nil {
		return fp, errors.Wrap(err, errors.ErrCodeSessionStoreFailed, "failed to load session symptoms")
	}
	if err := json.Unmarshal(data, &fp); err != nil {
		return fp, errors.Wrap(err, errors.ErrCodeHistoryCorrupted, "session symptoms are not valid JSON")
	}
	return fp, nil
}

// SaveFingerprint replaces the stored symptom fingerprint of one session.
func (s *SessionStore) SaveFingerprint(ctx context.Context, userID, sessionID string, fp types.Fingerprint) error {
	data, err := json.Marshal(fp)
	if err != nil {
		return errors.Wrap(err, errors.ErrCodeSerialization, "failed to encode session symptoms")
	}
	if err := s.client.Set(ctx, symptomsKey(userID, sessionID), data, s.ttl).Err(); err != nil {
		return errors.Wrap(err, errors.ErrCodeSessionStoreFailed, "failed to save session symptoms")
	}
	return nil
}

// Delete removes a session's history and symptoms.  A session with neither
// key is reported as not found.
func (s *SessionStore) Delete(ctx context.Context, userID, sessionID string) error {
	deleted, err := s.client.Del(ctx, historyKey(userID, sessionID), symptomsKey(userID, sessionID)).Result()
	if err != nil {
		return errors.Wrap(err, errors.ErrCodeSessionStoreFailed, "failed to delete session")
	}
	if deleted == 0 {
		return errors.New(errors.ErrCodeSessionNotFound, "session not found").WithDetail(sessionID)
	}
	return nil
}

// List returns summaries of all sessions belonging to a user, newest first.
func (s *SessionStore) List(ctx context.Context, userID string) ([]types.SessionSummary, error) {
	pattern := historyKeyPrefix + userID + ":*"
	prefix := historyKeyPrefix + userID + ":"

	var sessionIDs []string
	var cursor uint64
	for {
		keys, next, err := s.client.Scan(ctx, cursor, pattern, scanBatchSize).Result()
		if err != nil {
			return nil, errors.Wrap(err, errors.ErrCodeSessionStoreFailed, "failed to scan sessions")
		}
		for _, key := range keys {
			sessionIDs = append(sessionIDs, strings.TrimPrefix(key, prefix))
		}
		cursor = next
		if cursor == 0 {
			break
		}
	}

	sort.Slice(sessionIDs, func(i, j int) bool {
		a, errA := strconv.ParseInt(sessionIDs[i], 10, 64)
		b, errB := strconv.ParseInt(sessionIDs[j], 10, 64)
		if errA == nil && errB == nil {
			return a > b
		}
		return sessionIDs[i] > sessionIDs[j]
	})

	summaries := make([]types.SessionSummary, 0, len(sessionIDs))
	for _, sid := range sessionIDs {
		history, err := s.History(ctx, userID, sid)
		if err != nil {
			s.log.Warn("Skipping unreadable session",
				logging.String("session_id", sid), logging.Err(err))
			continue
		}
		summaries = append(summaries, summarize(sid, history))
	}
	return summaries, nil
}

// summarize derives a listing entry from a session's history.  The title is
// the first user turn, truncated.
func summarize(sessionID string, history []types.Message) types.SessionSummary {
	summary := types.SessionSummary{
		ID:           sessionID,
		Title:        defaultSessionTitle,
		MessageCount: len(history),
	}
	if len(history) > 0 {
		summary.CreatedAt = history[0].Timestamp
		summary.UpdatedAt = history[len(history)-1].Timestamp
	}
	for _, msg := range history {
		if msg.Role != types.RoleUser || msg.Content == "" {
			continue
		}
		title := []rune(msg.Content)
		if len(title) > sessionTitleRunes {
			title = title[:sessionTitleRunes]
		}
		summary.Title = string(title)
		break
	}
	return summary
}

//Personal.AI order the ending
