package dbmetrics

import (
	"context"
	"database/sql"
	"sync"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRecorder struct {
	mu         sync.Mutex
	operations []string
	pools      int
}

func (f *fakeRecorder) ObserveDBQuery(operation string, _ time.Duration) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.operations = append(f.operations, operation)
}

func (f *fakeRecorder) ObservePool(sql.DBStats) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.pools++
}

func (f *fakeRecorder) poolCalls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.pools
}

func TestDBObservesQueries(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	recorder := &fakeRecorder{}
	wrapped := Wrap(db, recorder)
	ctx := context.Background()

	mock.ExpectExec("DELETE FROM time_blocks").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectBegin()
	mock.ExpectExec("UPDATE jobs").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	_, err = wrapped.ExecContext(ctx, "DELETE FROM time_blocks")
	require.NoError(t, err)

	tx, err := wrapped.BeginTx(ctx, nil)
	require.NoError(t, err)
	txCtx := WithTx(ctx, tx)

	_, err = GetExecutor(txCtx, wrapped).ExecContext(txCtx, "UPDATE jobs")
	require.NoError(t, err)
	require.NoError(t, tx.Commit())

	assert.Equal(t, []string{"exec", "tx_exec"}, recorder.operations)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWrapWithoutRecorder(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectExec("SELECT 1").WillReturnResult(sqlmock.NewResult(0, 0))

	_, err = Wrap(db, nil).ExecContext(context.Background(), "SELECT 1")
	assert.NoError(t, err)
}

func TestGetExecutor(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	wrapped := Wrap(db, nil)
	ctx := context.Background()

	assert.False(t, IsInTransaction(ctx))
	assert.Same(t, wrapped, GetExecutor(ctx, wrapped))

	mock.ExpectBegin()
	tx, err := wrapped.BeginTx(ctx, nil)
	require.NoError(t, err)

	txCtx := WithTx(ctx, tx)
	assert.True(t, IsInTransaction(txCtx))
	assert.Equal(t, tx, GetExecutor(txCtx, wrapped))
}

func TestWrapWithPoolStats(t *testing.T) {
	db, _, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	recorder := &fakeRecorder{}
	stop := make(chan struct{})
	defer close(stop)

	WrapWithPoolStats(db, recorder, recorder, 5*time.Millisecond, stop)

	assert.Eventually(t, func() bool { return recorder.poolCalls() > 0 }, time.Second, 5*time.Millisecond)
}
