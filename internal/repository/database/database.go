// Package database implements the repository contracts over MySQL through
// GORM. Each transaction wraps one native database transaction and holds its
// connection exclusively until the unit of work commits or rolls back.
package database

import (
	"context"

	"gorm.io/gorm"

	"sportive/internal/model"
	"sportive/internal/repository"
)

// Store is the MySQL-backed data facade.
type Store struct {
	db *gorm.DB
}

var _ repository.Store = (*Store)(nil)

// NewStore builds a Store on top of a connected GORM handle.
func NewStore(db *gorm.DB) *Store {
	return &Store{db: db}
}

// Migrate creates or updates the four entity tables.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&model.User{},
		&model.Route{},
		&model.Sport{},
		&model.Activity{},
	)
}

// Users implements repository.Store.
func (s *Store) Users() repository.Users { return users{} }

// Routes implements repository.Store.
func (s *Store) Routes() repository.Routes { return routes{} }

// Sports implements repository.Store.
func (s *Store) Sports() repository.Sports { return sports{} }

// Activities implements repository.Store.
func (s *Store) Activities() repository.Activities { return activities{} }

// NewTx implements repository.Store.
func (s *Store) NewTx(ctx context.Context) repository.Tx {
	return &Tx{db: s.db, ctx: ctx}
}

// Tx maps the transaction contract onto a native database transaction.
type Tx struct {
	db   *gorm.DB
	ctx  context.Context
	tx   *gorm.DB
	done bool
}

var _ repository.Tx = (*Tx)(nil)

// Begin starts the native transaction, reserving one connection for the
// duration of the unit of work.
func (t *Tx) Begin() error {
	t.tx = t.db.WithContext(t.ctx).Begin()
	return t.tx.Error
}

// Commit implements repository.Tx.
func (t *Tx) Commit() error {
	if t.tx == nil {
		return gorm.ErrInvalidTransaction
	}
	t.done = true
	return t.tx.Commit().Error
}

// Rollback implements repository.Tx.
func (t *Tx) Rollback() error {
	if t.tx == nil {
		return gorm.ErrInvalidTransaction
	}
	t.done = true
	return t.tx.Rollback().Error
}

// Close releases the transaction's connection. An unfinished transaction is
// rolled back; after Commit or Rollback it is a no-op.
func (t *Tx) Close() error {
	if t.tx == nil || t.done {
		return nil
	}
	t.done = true
	return t.tx.Rollback().Error
}

// conn returns the active transaction handle backing tx. Accessor operations
// only run inside a unit of work started by this backend.
func conn(tx repository.Tx) *gorm.DB {
	return tx.(*Tx).tx
}
