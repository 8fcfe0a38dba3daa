package repository

// Tx is one unit-of-work boundary on the backing store. The in-memory
// backend applies mutations directly, so all four operations are no-ops
// there; the relational backend maps them onto a native transaction holding
// one exclusive connection.
type Tx interface {
	Begin() error
	Commit() error
	Rollback() error
	// Close releases the transaction's resources. It must be safe to call
	// after Commit or Rollback and is invoked exactly once per unit of work.
	Close() error
}

// ExecuteTx runs one unit of work inside tx: begin, run, commit on success,
// roll back on failure. The unit of work's error is returned as-is, never
// wrapped, so the caller can still normalize the original cause. The
// transaction is closed on every exit path.
func ExecuteTx[T any](tx Tx, work func(tx Tx) (T, error)) (result T, err error) {
	var zero T
	if err := tx.Begin(); err != nil {
		return zero, err
	}
	defer func() {
		if closeErr := tx.Close(); closeErr != nil && err == nil {
			result, err = zero, closeErr
		}
	}()

	result, err = work(tx)
	if err != nil {
		txRollbacks.Inc()
		_ = tx.Rollback()
		return zero, err
	}
	if err := tx.Commit(); err != nil {
		txRollbacks.Inc()
		return zero, err
	}
	txCommits.Inc()
	return result, nil
}
