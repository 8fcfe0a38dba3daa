package repository

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// spyTx records the transaction calls made by ExecuteTx.
type spyTx struct {
	begins    int
	commits   int
	rollbacks int
	closes    int

	beginErr  error
	commitErr error
	closeErr  error
}

func (s *spyTx) Begin() error    { s.begins++; return s.beginErr }
func (s *spyTx) Commit() error   { s.commits++; return s.commitErr }
func (s *spyTx) Rollback() error { s.rollbacks++; return nil }
func (s *spyTx) Close() error    { s.closes++; return s.closeErr }

func TestExecuteTxCommitsOnSuccess(t *testing.T) {
	tx := &spyTx{}

	result, err := ExecuteTx(tx, func(Tx) (int, error) {
		return 42, nil
	})

	require.NoError(t, err)
	assert.Equal(t, 42, result)
	assert.Equal(t, 1, tx.begins)
	assert.Equal(t, 1, tx.commits)
	assert.Equal(t, 0, tx.rollbacks)
	assert.Equal(t, 1, tx.closes)
}

func TestExecuteTxRollsBackOnFailure(t *testing.T) {
	tx := &spyTx{}
	failure := errors.New("unit of work failed")

	result, err := ExecuteTx(tx, func(Tx) (string, error) {
		return "partial", failure
	})

	// The unit of work's error comes back untouched, never wrapped.
	require.ErrorIs(t, err, failure)
	assert.Same(t, failure, err)
	assert.Zero(t, result)
	assert.Equal(t, 0, tx.commits)
	assert.Equal(t, 1, tx.rollbacks)
	assert.Equal(t, 1, tx.closes)
}

func TestExecuteTxBeginFailure(t *testing.T) {
	beginErr := errors.New("no connection")
	tx := &spyTx{beginErr: beginErr}

	_, err := ExecuteTx(tx, func(Tx) (int, error) {
		t.Fatal("unit of work must not run when begin fails")
		return 0, nil
	})

	require.ErrorIs(t, err, beginErr)
	assert.Equal(t, 0, tx.commits)
	assert.Equal(t, 0, tx.rollbacks)
	assert.Equal(t, 0, tx.closes)
}

func TestExecuteTxCommitFailure(t *testing.T) {
	commitErr := errors.New("commit refused")
	tx := &spyTx{commitErr: commitErr}

	_, err := ExecuteTx(tx, func(Tx) (int, error) {
		return 7, nil
	})

	require.ErrorIs(t, err, commitErr)
	assert.Equal(t, 1, tx.closes)
}

func TestExecuteTxClosesExactlyOncePerPath(t *testing.T) {
	tests := []struct {
		name string
		tx   *spyTx
		work func(Tx) (int, error)
	}{
		{
			name: "success",
			tx:   &spyTx{},
			work: func(Tx) (int, error) { return 1, nil },
		},
		{
			name: "failure",
			tx:   &spyTx{},
			work: func(Tx) (int, error) { return 0, errors.New("boom") },
		},
		{
			name: "commit failure",
			tx:   &spyTx{commitErr: errors.New("boom")},
			work: func(Tx) (int, error) { return 1, nil },
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _ = ExecuteTx(tt.tx, tt.work)
			assert.Equal(t, 1, tt.tx.closes)
		})
	}
}

func TestExecuteTxCloseErrorSurfacesOnSuccess(t *testing.T) {
	closeErr := errors.New("close failed")
	tx := &spyTx{closeErr: closeErr}

	_, err := ExecuteTx(tx, func(Tx) (int, error) {
		return 1, nil
	})

	require.ErrorIs(t, err, closeErr)
}

func TestExecuteTxCloseErrorDoesNotMaskWorkError(t *testing.T) {
	failure := errors.New("unit of work failed")
	tx := &spyTx{closeErr: errors.New("close failed")}

	_, err := ExecuteTx(tx, func(Tx) (int, error) {
		return 0, failure
	})

	assert.Same(t, failure, err)
}
