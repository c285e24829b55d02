package ingestion

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/turtacn/WheatGuard-Intelligence/internal/domain/disease"
	redisinfra "github.com/turtacn/WheatGuard-Intelligence/internal/infrastructure/database/redis"
	"github.com/turtacn/WheatGuard-Intelligence/internal/infrastructure/monitoring/logging"
	"github.com/turtacn/WheatGuard-Intelligence/internal/testutil"
	"github.com/turtacn/WheatGuard-Intelligence/pkg/errors"
)

func newTestLockFactory(t *testing.T) redisinfra.LockFactory {
	t.Helper()
	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	client, err := redisinfra.NewClient(&redisinfra.RedisConfig{Mode: "standalone", Addr: mr.Addr()}, logging.NewNopLogger())
	require.NoError(t, err)
	t.Cleanup(func() { client.Close() })
	return redisinfra.NewLockFactory(client, logging.NewNopLogger())
}

func writeTempCSV(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "diseases.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestRebuildFromCSV_Success(t *testing.T) {
	repo := new(testutil.MockDiseaseRepo)
	var rebuilt []*disease.Disease
	repo.On("Rebuild", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) { rebuilt = args.Get(1).([]*disease.Disease) }).
		Return(nil)

	svc := NewService(repo, newTestLockFactory(t), logging.NewNopLogger())
	report, err := svc.RebuildFromCSV(context.Background(), writeTempCSV(t, sampleCSV))
	require.NoError(t, err)

	assert.Equal(t, 2, report.Processed)
	assert.Equal(t, 0, report.Failed)
	require.Len(t, rebuilt, 2)
	assert.Equal(t, "小麦赤霉病", rebuilt[0].Name)
	assert.Equal(t, "麦穗枯", rebuilt[0].Alias)
	// Attribute extraction ran over the row fields.
	assert.Contains(t, rebuilt[0].Attributes[disease.LabelPlantPart], "麦穗")
	assert.Contains(t, rebuilt[0].Attributes[disease.LabelWeather], "阴雨")
	assert.Contains(t, rebuilt[0].Attributes[disease.LabelRegion], "河南")
}

func TestRebuildFromCSV_CountsInvalidRows(t *testing.T) {
	data := sampleCSV + "缺字段的行(无),,,\n"
	repo := new(testutil.MockDiseaseRepo)
	repo.On("Rebuild", mock.Anything, mock.Anything).Return(nil)

	svc := NewService(repo, newTestLockFactory(t), logging.NewNopLogger())
	report, err := svc.RebuildFromCSV(context.Background(), writeTempCSV(t, data))
	require.NoError(t, err)

	assert.Equal(t, 2, report.Processed)
	assert.Equal(t, 1, report.Failed)
}

func TestRebuildFromCSV_NoValidRows(t *testing.T) {
	data := "病害名称(别名),病原,为害特征,防治措施\n,,,\n"
	repo := new(testutil.MockDiseaseRepo)

	svc := NewService(repo, newTestLockFactory(t), logging.NewNopLogger())
	_, err := svc.RebuildFromCSV(context.Background(), writeTempCSV(t, data))
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrCodeGraphCSVParseFailed))
	repo.AssertNotCalled(t, "Rebuild")
}

func TestRebuildFromCSV_RepoError(t *testing.T) {
	repo := new(testutil.MockDiseaseRepo)
	repo.On("Rebuild", mock.Anything, mock.Anything).
		Return(errors.New(errors.ErrCodeGraphRebuildFailed, "write failed"))

	svc := NewService(repo, newTestLockFactory(t), logging.NewNopLogger())
	_, err := svc.RebuildFromCSV(context.Background(), writeTempCSV(t, sampleCSV))
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrCodeGraphRebuildFailed))
}

func TestRebuildFromCSV_ConcurrentRebuildBusy(t *testing.T) {
	locks := newTestLockFactory(t)

	// Simulate a rebuild in flight by holding the mutex.
	held := locks.NewMutex("graph-rebuild", redisinfra.WithLockTTL(time.Minute))
	acquired, err := held.TryLock(context.Background())
	require.NoError(t, err)
	require.True(t, acquired)

	repo := new(testutil.MockDiseaseRepo)
	svc := NewService(repo, locks, logging.NewNopLogger())
	_, err = svc.RebuildFromCSV(context.Background(), writeTempCSV(t, sampleCSV))
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrCodeGraphRebuildBusy))
	repo.AssertNotCalled(t, "Rebuild")
}

func TestRebuildFromCSV_ReleasesLock(t *testing.T) {
	locks := newTestLockFactory(t)
	repo := new(testutil.MockDiseaseRepo)
	repo.On("Rebuild", mock.Anything, mock.Anything).Return(nil)

	svc := NewService(repo, locks, logging.NewNopLogger())
	_, err := svc.RebuildFromCSV(context.Background(), writeTempCSV(t, sampleCSV))
	require.NoError(t, err)

	// A second rebuild must be able to take the lock again.
	_, err = svc.RebuildFromCSV(context.Background(), writeTempCSV(t, sampleCSV))
	require.NoError(t, err)
}

//Personal.AI order the ending
