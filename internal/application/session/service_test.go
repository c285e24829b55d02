package session

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	redisinfra "github.com/turtacn/WheatGuard-Intelligence/internal/infrastructure/database/redis"
	"github.com/turtacn/WheatGuard-Intelligence/internal/infrastructure/monitoring/logging"
	"github.com/turtacn/WheatGuard-Intelligence/pkg/errors"
	types "github.com/turtacn/WheatGuard-Intelligence/pkg/types/diagnosis"
)

func newTestService(t *testing.T) (*redisinfra.SessionStore, Service) {
	t.Helper()
	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	client, err := redisinfra.NewClient(&redisinfra.RedisConfig{Mode: "standalone", Addr: mr.Addr()}, logging.NewNopLogger())
	require.NoError(t, err)
	t.Cleanup(func() { client.Close() })

	store := redisinfra.NewSessionStore(client, logging.NewNopLogger())
	return store, NewService(store, logging.NewNopLogger())
}

func TestCreate_ReturnsIDAndWelcome(t *testing.T) {
	_, svc := newTestService(t)

	created, err := svc.Create(context.Background(), "u1")
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, WelcomeMessage, created.Welcome)
}

func TestCreate_EmptyUser(t *testing.T) {
	_, svc := newTestService(t)

	_, err := svc.Create(context.Background(), "")
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrCodeBadRequest))
}

func TestHistoryAndClear(t *testing.T) {
	store, svc := newTestService(t)
	ctx := context.Background()

	require.NoError(t, store.AppendMessages(ctx, "u1", "s1",
		types.Message{Role: "user", Content: "小麦叶片发黄", Timestamp: 1},
		types.Message{Role: "assistant", Content: "请补充更多信息", Timestamp: 2},
	))

	history, err := svc.History(ctx, "u1", "s1")
	require.NoError(t, err)
	require.Len(t, history, 2)
	assert.Equal(t, "小麦叶片发黄", history[0].Content)

	require.NoError(t, svc.Clear(ctx, "u1", "s1"))

	history, err = svc.History(ctx, "u1", "s1")
	require.NoError(t, err)
	assert.Empty(t, history)
}

func TestHistory_EmptySessionID(t *testing.T) {
	_, svc := newTestService(t)

	_, err := svc.History(context.Background(), "u1", "")
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrCodeBadRequest))
}

func TestClear_MissingSession(t *testing.T) {
	_, svc := newTestService(t)

	err := svc.Clear(context.Background(), "u1", "missing")
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrCodeSessionNotFound))
}

func TestList_NewestFirst(t *testing.T) {
	store, svc := newTestService(t)
	ctx := context.Background()

	require.NoError(t, store.AppendMessages(ctx, "u1", "100",
		types.Message{Role: "user", Content: "第一个会话", Timestamp: 1}))
	require.NoError(t, store.AppendMessages(ctx, "u1", "300",
		types.Message{Role: "user", Content: "第二个会话", Timestamp: 2}))

	summaries, err := svc.List(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, summaries, 2)
	assert.Equal(t, "300", summaries[0].ID)
	assert.Equal(t, "第二个会话", summaries[0].Title)
	assert.Equal(t, "100", summaries[1].ID)
}

//Personal.AI order the ending
