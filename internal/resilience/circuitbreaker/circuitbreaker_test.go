package circuitbreaker

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/sony/gobreaker"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCircuitBreaker_opensAfterThreshold(t *testing.T) {
	cb := New(Config{
		Name:             "test",
		MaxRequests:      1,
		Interval:         time.Minute,
		Timeout:          time.Minute,
		FailureThreshold: 1.0,
		MinRequests:      3,
	})

	failing := func() (interface{}, error) { return nil, errors.New("store down") }

	// しきい値未満では閉じたまま
	for i := 0; i < 2; i++ {
		_, err := cb.Execute(failing)
		require.Error(t, err)
		assert.Equal(t, gobreaker.StateClosed, cb.State())
	}

	// 3回目の失敗で開く
	_, err := cb.Execute(failing)
	require.Error(t, err)
	assert.True(t, cb.IsOpen())

	// 開いている間は即座に拒否される
	_, err = cb.Execute(func() (interface{}, error) { return "ok", nil })
	assert.ErrorIs(t, err, gobreaker.ErrOpenState)
}

func TestCircuitBreaker_staysClosedOnSuccess(t *testing.T) {
	cb := New(DBConfig())

	for i := 0; i < 10; i++ {
		result, err := cb.Execute(func() (interface{}, error) { return i, nil })
		require.NoError(t, err)
		assert.Equal(t, i, result)
	}
	assert.False(t, cb.IsOpen())
}

func TestDBCircuitBreaker_passesThroughQueries(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer func() { _ = db.Close() }()

	mock.ExpectQuery("SELECT 1").
		WillReturnRows(sqlmock.NewRows([]string{"one"}).AddRow(1))
	mock.ExpectExec("DELETE FROM feeds").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectBegin()
	mock.ExpectCommit()

	dcb := NewDBCircuitBreaker(db)

	rows, err := dcb.QueryContext(context.Background(), "SELECT 1")
	require.NoError(t, err)
	_ = rows.Close()

	_, err = dcb.ExecContext(context.Background(), "DELETE FROM feeds WHERE id = 1")
	require.NoError(t, err)

	tx, err := dcb.BeginTx(context.Background(), nil)
	require.NoError(t, err)
	require.NoError(t, tx.Commit())

	assert.Equal(t, gobreaker.StateClosed, dcb.State())
	assert.NoError(t, mock.ExpectationsWereMet())
}

// 連続失敗後はデータベースに到達せず即座に失敗する
func TestDBCircuitBreaker_failsFastWhenOpen(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer func() { _ = db.Close() }()

	storeErr := errors.New("connection refused")
	for i := 0; i < 5; i++ {
		mock.ExpectExec("INSERT INTO feeds").WillReturnError(storeErr)
	}

	dcb := NewDBCircuitBreakerWithConfig(db, Config{
		Name:             "test-db",
		MaxRequests:      1,
		Interval:         time.Minute,
		Timeout:          time.Minute,
		FailureThreshold: 1.0,
		MinRequests:      5,
	})

	for i := 0; i < 5; i++ {
		_, err := dcb.ExecContext(context.Background(), "INSERT INTO feeds (user_id, content) VALUES (1, 'x')")
		require.ErrorIs(t, err, storeErr)
	}
	require.True(t, dcb.IsOpen())

	// 期待を登録していないので、到達すればsqlmockが別のエラーを返す
	_, err = dcb.ExecContext(context.Background(), "INSERT INTO feeds (user_id, content) VALUES (1, 'x')")
	assert.ErrorIs(t, err, gobreaker.ErrOpenState)
}
