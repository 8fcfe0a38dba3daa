// Package repository defines the backend-agnostic data-access contracts: the
// entity accessors, the transaction boundary, and the pagination protocol.
// Two conforming backends exist, an in-process store (memory) and a
// MySQL-backed store (database); both expose identical observable behavior.
package repository

import (
	"context"

	"sportive/internal/model"
)

// Order selects the duration sort direction of a filtered activity listing.
type Order int

const (
	// Ascending sorts by duration, fastest first.
	Ascending Order = iota
	// Descending sorts by duration, slowest first.
	Descending
)

// Users exposes persistence operations for users. Lookups return (nil, nil)
// when no row matches; only the service layer converts absence into a
// NotFound error.
type Users interface {
	// Add stores a new user with a freshly issued session token and returns
	// the assigned number together with that token.
	Add(tx Tx, name, email, password string) (*model.Registration, error)
	GetByNumber(tx Tx, number int) (*model.User, error)
	// GetByToken resolves a session token to the owning user's number.
	// It returns 0 when the token is unknown.
	GetByToken(tx Tx, token string) (int, error)
	List(tx Tx, limit, skip int) (model.Page[model.User], error)
	// GetRankings lists the distinct users with at least one activity for the
	// sport/route pair, one entry per user, ordered by their best (minimum)
	// duration ascending.
	GetRankings(tx Tx, sportNumber, routeNumber, limit, skip int) (model.Page[model.User], error)
	// GetSessionByCredentials re-issues the stored session for a matching
	// email/password pair, or (nil, nil) when the credentials do not match.
	GetSessionByCredentials(tx Tx, email, password string) (*model.Session, error)
}

// Routes exposes persistence operations for routes.
type Routes interface {
	Add(tx Tx, userNumber int, startLocation, endLocation string, distance float64) (int, error)
	GetByNumber(tx Tx, number int) (*model.Route, error)
	List(tx Tx, limit, skip int) (model.Page[model.Route], error)
	// Update applies the non-nil fields of the partial update and returns the
	// route number.
	Update(tx Tx, number int, update model.RouteUpdate) (int, error)
	// Search matches the query case-insensitively against the start location,
	// end location, or distance.
	Search(tx Tx, query string, limit, skip int) (model.Page[model.Route], error)
}

// Sports exposes persistence operations for sports.
type Sports interface {
	Add(tx Tx, userNumber int, name string, description *string) (int, error)
	GetByNumber(tx Tx, number int) (*model.Sport, error)
	List(tx Tx, limit, skip int) (model.Page[model.Sport], error)
	Update(tx Tx, number int, update model.SportUpdate) (int, error)
	// Search matches the query case-insensitively against the name or
	// description.
	Search(tx Tx, query string, limit, skip int) (model.Page[model.Sport], error)
}

// Activities exposes persistence operations for activities.
type Activities interface {
	Add(tx Tx, userNumber, sportNumber int, date model.Date, duration model.Duration, routeNumber *int) (int, error)
	GetByNumber(tx Tx, number int) (*model.Activity, error)
	GetByUser(tx Tx, userNumber, limit, skip int) (model.Page[model.Activity], error)
	GetBySport(tx Tx, sportNumber, limit, skip int) (model.Page[model.Activity], error)
	// Get filters by sport, optionally by exact date and route, ordered over
	// duration with stable number-order tie-breaks.
	Get(tx Tx, sportNumber int, order Order, date *model.Date, routeNumber *int, limit, skip int) (model.Page[model.Activity], error)
	Update(tx Tx, number int, update model.ActivityUpdate) (int, error)
	// Delete removes one activity and returns the requested number.
	Delete(tx Tx, number int) (int, error)
	// DeleteAll removes the listed activities and returns the requested
	// numbers, whether or not each one existed. Callers validate existence
	// beforehand.
	DeleteAll(tx Tx, numbers []int) ([]int, error)
}

// Store is the data facade: the four entity accessors plus the transaction
// factory. The service layer depends only on this interface, never on a
// concrete backend.
type Store interface {
	Users() Users
	Routes() Routes
	Sports() Sports
	Activities() Activities
	// NewTx opens a fresh transaction bound to ctx. At most one transaction
	// is open per logical service call.
	NewTx(ctx context.Context) Tx
}
