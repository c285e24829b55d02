package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	appdiag "github.com/turtacn/WheatGuard-Intelligence/internal/application/diagnosis"
	"github.com/turtacn/WheatGuard-Intelligence/internal/application/ingestion"
	"github.com/turtacn/WheatGuard-Intelligence/internal/application/knowledge"
	appsession "github.com/turtacn/WheatGuard-Intelligence/internal/application/session"
	redisinfra "github.com/turtacn/WheatGuard-Intelligence/internal/infrastructure/database/redis"
	"github.com/turtacn/WheatGuard-Intelligence/internal/infrastructure/monitoring/logging"
	"github.com/turtacn/WheatGuard-Intelligence/internal/interfaces/http/handlers"
	"github.com/turtacn/WheatGuard-Intelligence/internal/testutil"
	types "github.com/turtacn/WheatGuard-Intelligence/pkg/types/diagnosis"
)

// newTestRouter wires the full route tree over miniredis and a mocked graph
// repository.
func newTestRouter(t *testing.T) (*testutil.MockDiseaseRepo, *gin.Engine) {
	t.Helper()
	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	client, err := redisinfra.NewClient(&redisinfra.RedisConfig{Mode: "standalone", Addr: mr.Addr()}, logging.NewNopLogger())
	require.NoError(t, err)
	t.Cleanup(func() { client.Close() })

	log := logging.NewNopLogger()
	store := redisinfra.NewSessionStore(client, log)
	locks := redisinfra.NewLockFactory(client, log)
	repo := new(testutil.MockDiseaseRepo)

	diagSvc := appdiag.NewService(repo, store, log)
	sessSvc := appsession.NewService(store, log)
	knSvc := knowledge.NewService(repo, log)
	ingSvc := ingestion.NewService(repo, locks, log)

	router := NewRouter(RouterConfig{
		ChatHandler:      handlers.NewChatHandler(diagSvc, sessSvc, log),
		KnowledgeHandler: handlers.NewKnowledgeHandler(knSvc, ingSvc, "data/wheat_diseases.csv", log),
		HealthHandler: handlers.NewHealthHandler(map[string]handlers.HealthCheck{
			"redis": client.Ping,
		}, nil, log),
		Logger: log,
		Mode:   gin.TestMode,
	})
	return repo, router
}

func doJSON(t *testing.T, router *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-User-ID", "u1")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestHealthz(t *testing.T) {
	_, router := newTestRouter(t)
	w := doJSON(t, router, http.MethodGet, "/healthz", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"ok"`)
}

func TestReadyz_ComponentUp(t *testing.T) {
	_, router := newTestRouter(t)
	w := doJSON(t, router, http.MethodGet, "/readyz", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"redis":"up"`)
}

func TestPostMessage_ReturnsReply(t *testing.T) {
	repo, router := newTestRouter(t)
	repo.On("Match", mock.Anything, mock.Anything, 3).Return([]types.DiseaseCandidate{
		{Name: "小麦赤霉病", Description: "穗部霉层", ControlMethod: "喷施多菌灵"},
	}, nil)

	w := doJSON(t, router, http.MethodPost, "/api/chat/message", gin.H{
		"session_id": "s1",
		"message":    "麦穗发病，最近阴雨",
	})
	require.Equal(t, http.StatusOK, w.Code)

	var reply appdiag.Reply
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &reply))
	assert.Equal(t, "s1", reply.SessionID)
	assert.Contains(t, reply.Text, "诊断结果为小麦赤霉病")
	assert.Len(t, reply.Candidates, 1)
}

func TestPostMessage_MissingMessage(t *testing.T) {
	_, router := newTestRouter(t)
	w := doJSON(t, router, http.MethodPost, "/api/chat/message", gin.H{"session_id": "s1"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSessionLifecycle(t *testing.T) {
	repo, router := newTestRouter(t)
	repo.On("Match", mock.Anything, mock.Anything, 3).Return([]types.DiseaseCandidate{}, nil)

	// Create a session.
	w := doJSON(t, router, http.MethodPost, "/api/chat/sessions", nil)
	require.Equal(t, http.StatusCreated, w.Code)
	var created appsession.NewSession
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	require.NotEmpty(t, created.ID)
	assert.Contains(t, created.Welcome, "您好")

	// Talk in it.
	w = doJSON(t, router, http.MethodPost, "/api/chat/message", gin.H{
		"session_id": created.ID,
		"message":    "小麦叶片发黄",
	})
	require.Equal(t, http.StatusOK, w.Code)

	// It shows in the listing.
	w = doJSON(t, router, http.MethodGet, "/api/chat/sessions", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var listing struct {
		Sessions []types.SessionSummary `json:"sessions"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &listing))
	require.Len(t, listing.Sessions, 1)
	assert.Equal(t, created.ID, listing.Sessions[0].ID)

	// Its history holds both turns.
	w = doJSON(t, router, http.MethodGet, "/api/chat/sessions/"+created.ID+"/history", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var history struct {
		Messages []types.Message `json:"messages"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &history))
	assert.Len(t, history.Messages, 2)

	// Clear it.
	w = doJSON(t, router, http.MethodDelete, "/api/chat/sessions/"+created.ID, nil)
	require.Equal(t, http.StatusOK, w.Code)

	// Clearing again reports not found.
	w = doJSON(t, router, http.MethodDelete, "/api/chat/sessions/"+created.ID, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGetDisease_Found(t *testing.T) {
	repo, router := newTestRouter(t)
	repo.On("FindByName", mock.Anything, "小麦赤霉病").Return(&types.DiseaseCandidate{
		Name:  "小麦赤霉病",
		Alias: "麦穗枯",
	}, nil)

	w := doJSON(t, router, http.MethodGet, "/api/knowledge/diseases/小麦赤霉病", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "麦穗枯")
}

func TestGetDisease_NotFound(t *testing.T) {
	repo, router := newTestRouter(t)
	repo.On("FindByName", mock.Anything, mock.Anything).Return(nil, nil)

	w := doJSON(t, router, http.MethodGet, "/api/knowledge/diseases/不存在", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "DIAG_001")
}

func TestGetStats(t *testing.T) {
	repo, router := newTestRouter(t)
	repo.On("Stats", mock.Anything).Return(&types.GraphStats{
		Nodes:         map[string]int64{"Disease": 31},
		Relationships: 120,
	}, nil)

	w := doJSON(t, router, http.MethodGet, "/api/knowledge/stats", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"relationships":120`)
}

func TestRebuild_MissingSource(t *testing.T) {
	_, router := newTestRouter(t)
	w := doJSON(t, router, http.MethodPost, "/api/knowledge/rebuild", gin.H{"csv_path": "no/such/file.csv"})
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Contains(t, w.Body.String(), "GRAPH_006")
}

func TestRequestIDHeader(t *testing.T) {
	_, router := newTestRouter(t)
	w := doJSON(t, router, http.MethodGet, "/healthz", nil)
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
}

//Personal.AI order the ending
