package engine

import (
	"context"
	"errors"
	"testing"
	"time"

	ptestutil "github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/donaldgifford/sales-tracker/internal/metrics"
	stockxMocks "github.com/donaldgifford/sales-tracker/internal/stockx/mocks"
	storeMocks "github.com/donaldgifford/sales-tracker/internal/store/mocks"
)

func newTestScheduler(t *testing.T, interval time.Duration) (*Scheduler, *storeMocks.MockStore) {
	t.Helper()
	ms := storeMocks.NewMockStore(t)
	ml := stockxMocks.NewMockListingSource(t)

	sched, err := NewScheduler(newTestSyncer(ms, ml), ms, interval, quietLogger())
	require.NoError(t, err)
	return sched, ms
}

func TestNewScheduler_RegistersSyncEntry(t *testing.T) {
	t.Parallel()

	sched, _ := newTestScheduler(t, time.Hour)

	assert.Len(t, sched.Entries(), 1)
	assert.NotZero(t, sched.syncEntryID)
	assert.Equal(t, time.Hour, sched.lockTTL)
	assert.NotEmpty(t, sched.holder)
}

func TestNewScheduler_RejectsNonPositiveInterval(t *testing.T) {
	t.Parallel()

	ms := storeMocks.NewMockStore(t)
	_, err := NewScheduler(newTestSyncer(ms, stockxMocks.NewMockListingSource(t)), ms, 0, quietLogger())
	require.Error(t, err)
}

func TestScheduler_StartStop(t *testing.T) {
	t.Parallel()

	sched, _ := newTestScheduler(t, time.Hour)

	sched.Start()
	assert.Greater(t, ptestutil.ToFloat64(metrics.SchedulerNextSyncTimestamp), float64(0))

	ctx := sched.Stop()
	<-ctx.Done()
	require.Error(t, sched.ctx.Err(), "stop cancels the job context")
}

func TestScheduler_RunJob_Success(t *testing.T) {
	t.Parallel()

	sched, ms := newTestScheduler(t, time.Hour)

	ms.EXPECT().
		AcquireSchedulerLock(mock.Anything, "test-job", sched.holder, 5*time.Minute).
		Return(true, nil).Once()
	ms.EXPECT().
		ReleaseSchedulerLock(mock.Anything, "test-job", sched.holder).
		Return(nil).Once()

	called := false
	err := sched.runJob(context.Background(), "test-job", 5*time.Minute, func(_ context.Context) error {
		called = true
		return nil
	})

	require.NoError(t, err)
	assert.True(t, called)
}

func TestScheduler_RunJob_Failure(t *testing.T) {
	t.Parallel()

	sched, ms := newTestScheduler(t, time.Hour)
	jobErr := errors.New("something went wrong")

	ms.EXPECT().AcquireSchedulerLock(mock.Anything, "fail-job", mock.Anything, mock.Anything).Return(true, nil).Once()
	ms.EXPECT().ReleaseSchedulerLock(mock.Anything, "fail-job", mock.Anything).Return(nil).Once()

	err := sched.runJob(context.Background(), "fail-job", time.Minute, func(_ context.Context) error {
		return jobErr
	})
	require.ErrorIs(t, err, jobErr)
}

func TestScheduler_RunJob_LockHeld(t *testing.T) {
	t.Parallel()

	sched, ms := newTestScheduler(t, time.Hour)

	ms.EXPECT().AcquireSchedulerLock(mock.Anything, "busy-job", mock.Anything, mock.Anything).Return(false, nil).Once()

	err := sched.runJob(context.Background(), "busy-job", time.Minute, func(_ context.Context) error {
		t.Fatal("job must not run while the lock is held elsewhere")
		return nil
	})
	require.NoError(t, err)
}

func TestScheduler_RunJob_LockError(t *testing.T) {
	t.Parallel()

	sched, ms := newTestScheduler(t, time.Hour)

	ms.EXPECT().AcquireSchedulerLock(mock.Anything, "job", mock.Anything, mock.Anything).
		Return(false, errors.New("db down")).Once()

	err := sched.runJob(context.Background(), "job", time.Minute, func(_ context.Context) error { return nil })
	require.Error(t, err)
	assert.Contains(t, err.Error(), "acquiring lock for job")
}

func TestScheduler_RunListingSync(t *testing.T) {
	t.Parallel()

	ms := storeMocks.NewMockStore(t)
	ml := stockxMocks.NewMockListingSource(t)
	sched, err := NewScheduler(newTestSyncer(ms, ml), ms, time.Hour, quietLogger())
	require.NoError(t, err)

	ms.EXPECT().AcquireSchedulerLock(mock.Anything, listingSyncJob, mock.Anything, time.Hour).Return(true, nil).Once()
	ms.EXPECT().InsertSyncRun(mock.Anything).Return("run-1", nil).Once()
	ml.EXPECT().Listings(mock.Anything, mock.Anything).
		Return(mustParse(t, `{"listings":[],"hasNextPage":false}`), nil).Once()
	ms.EXPECT().UpsertListingSnapshots(mock.Anything, mock.Anything).Return(0, nil).Once()
	ms.EXPECT().CompleteSyncRun(mock.Anything, mock.Anything).Return(nil).Once()
	ms.EXPECT().ReleaseSchedulerLock(mock.Anything, listingSyncJob, mock.Anything).Return(nil).Once()

	sched.runListingSync()
}

func TestScheduler_RecoverStaleSyncRuns(t *testing.T) {
	t.Parallel()

	sched, ms := newTestScheduler(t, time.Hour)

	ms.EXPECT().RecoverStaleSyncRuns(mock.Anything, 2*time.Hour).Return(3, nil).Once()
	sched.RecoverStaleSyncRuns(context.Background())
}
