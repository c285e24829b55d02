package diagnosis

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	redisinfra "github.com/turtacn/WheatGuard-Intelligence/internal/infrastructure/database/redis"
	"github.com/turtacn/WheatGuard-Intelligence/internal/infrastructure/monitoring/logging"
	"github.com/turtacn/WheatGuard-Intelligence/internal/testutil"
	"github.com/turtacn/WheatGuard-Intelligence/pkg/errors"
	types "github.com/turtacn/WheatGuard-Intelligence/pkg/types/diagnosis"
)

func newTestService(t *testing.T) (*testutil.MockDiseaseRepo, *redisinfra.SessionStore, Service) {
	t.Helper()
	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	client, err := redisinfra.NewClient(&redisinfra.RedisConfig{Mode: "standalone", Addr: mr.Addr()}, logging.NewNopLogger())
	require.NoError(t, err)
	t.Cleanup(func() { client.Close() })

	store := redisinfra.NewSessionStore(client, logging.NewNopLogger())
	repo := new(testutil.MockDiseaseRepo)
	return repo, store, NewService(repo, store, logging.NewNopLogger())
}

func TestHandleMessage_EmptyText(t *testing.T) {
	_, _, svc := newTestService(t)

	_, err := svc.HandleMessage(context.Background(), "u1", "s1", "")
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrCodeBadRequest))
}

func TestHandleMessage_AssignsSessionID(t *testing.T) {
	repo, _, svc := newTestService(t)
	repo.On("Match", mock.Anything, mock.Anything, 3).Return([]types.DiseaseCandidate{}, nil)

	reply, err := svc.HandleMessage(context.Background(), "u1", "", "小麦叶片发黄")
	require.NoError(t, err)
	assert.NotEmpty(t, reply.SessionID)
}

func TestHandleMessage_NoSymptoms_FallbackReply(t *testing.T) {
	repo, store, svc := newTestService(t)

	reply, err := svc.HandleMessage(context.Background(), "u1", "s1", "你好啊")
	require.NoError(t, err)
	assert.Contains(t, reply.Text, "很抱歉")
	assert.Contains(t, reply.Text, "从哪个部位开始发病")
	assert.True(t, reply.Fingerprint.IsEmpty())
	repo.AssertNotCalled(t, "Match")

	// The turn is still recorded in the history.
	history, err := store.History(context.Background(), "u1", "s1")
	require.NoError(t, err)
	require.Len(t, history, 2)
	assert.Equal(t, "user", history[0].Role)
	assert.Equal(t, "你好啊", history[0].Content)
	assert.Equal(t, "assistant", history[1].Role)
}

func TestHandleMessage_ExtractsAndPersistsFingerprint(t *testing.T) {
	repo, store, svc := newTestService(t)
	repo.On("Match", mock.Anything, mock.Anything, 3).Return([]types.DiseaseCandidate{}, nil)

	reply, err := svc.HandleMessage(context.Background(), "u1", "s1", "小麦叶片发黄，天气高温")
	require.NoError(t, err)
	assert.Equal(t, types.Terms{"叶片"}, reply.Fingerprint.PlantPart)
	assert.Equal(t, types.Terms{"高温"}, reply.Fingerprint.Weather)

	saved, err := store.Fingerprint(context.Background(), "u1", "s1")
	require.NoError(t, err)
	assert.Equal(t, reply.Fingerprint, saved)
}

func TestHandleMessage_MergesStoredFingerprint(t *testing.T) {
	repo, store, svc := newTestService(t)
	stored := types.Fingerprint{Region: types.Terms{"河南"}}
	require.NoError(t, store.SaveFingerprint(context.Background(), "u1", "s1", stored))

	var matched types.Fingerprint
	repo.On("Match", mock.Anything, mock.Anything, 3).
		Run(func(args mock.Arguments) { matched = args.Get(1).(types.Fingerprint) }).
		Return([]types.DiseaseCandidate{}, nil)

	reply, err := svc.HandleMessage(context.Background(), "u1", "s1", "麦穗上有霉层")
	require.NoError(t, err)

	// New extraction and stored history both constrain the match.
	assert.Equal(t, types.Terms{"麦穗"}, matched.PlantPart)
	assert.Equal(t, types.Terms{"河南"}, matched.Region)
	assert.Equal(t, matched, reply.Fingerprint)
}

func TestHandleMessage_SingleCandidateReply(t *testing.T) {
	repo, _, svc := newTestService(t)
	repo.On("Match", mock.Anything, mock.Anything, 3).Return([]types.DiseaseCandidate{
		{
			Name:          "小麦赤霉病",
			Description:   "穗部出现粉红色霉层",
			ControlMethod: "抽穗扬花期喷施多菌灵",
		},
	}, nil)

	reply, err := svc.HandleMessage(context.Background(), "u1", "s1", "麦穗发病，最近阴雨")
	require.NoError(t, err)
	assert.Contains(t, reply.Text, "目前已经收集到的信息：")
	assert.Contains(t, reply.Text, "诊断结果为小麦赤霉病。")
	assert.Contains(t, reply.Text, "病害特征：穗部出现粉红色霉层")
	assert.Contains(t, reply.Text, "防治建议：抽穗扬花期喷施多菌灵")
	require.Len(t, reply.Candidates, 1)
}

func TestHandleMessage_MultipleCandidatesReply(t *testing.T) {
	repo, _, svc := newTestService(t)
	repo.On("Match", mock.Anything, mock.Anything, 3).Return([]types.DiseaseCandidate{
		{Name: "小麦赤霉病", Description: "穗部霉层"},
		{Name: "小麦白粉病", Description: "叶面白色粉状物"},
	}, nil)

	reply, err := svc.HandleMessage(context.Background(), "u1", "s1", "叶片和麦穗都有问题")
	require.NoError(t, err)
	assert.Contains(t, reply.Text, "可能的病害有：")
	assert.Contains(t, reply.Text, "1. 小麦赤霉病")
	assert.Contains(t, reply.Text, "2. 小麦白粉病")
	assert.Contains(t, reply.Text, "请补充更多信息")
	assert.Len(t, reply.Candidates, 2)
}

func TestHandleMessage_StoreUnreachable_Degrades(t *testing.T) {
	repo, _, svc := newTestService(t)
	repo.On("Match", mock.Anything, mock.Anything, 3).
		Return(nil, errors.New(errors.ErrCodeGraphUnavailable, "neo4j down"))

	reply, err := svc.HandleMessage(context.Background(), "u1", "s1", "小麦叶片发黄")
	require.NoError(t, err)
	assert.Empty(t, reply.Candidates)
	assert.Contains(t, reply.Text, "暂时无法确定具体病害")
}

func TestHandleMessage_MatchLimitOption(t *testing.T) {
	repo, store, _ := newTestService(t)
	svc := NewService(repo, store, logging.NewNopLogger(), WithMatchLimit(5))
	repo.On("Match", mock.Anything, mock.Anything, 5).Return([]types.DiseaseCandidate{}, nil)

	_, err := svc.HandleMessage(context.Background(), "u1", "s1", "小麦叶片发黄")
	require.NoError(t, err)
	repo.AssertExpectations(t)
}

//Personal.AI order the ending
