// Package memory implements the repository contracts over an in-process
// mutable store. One Store value owns all records and is shared by the four
// accessors; it is not safe for concurrent mutation and relies on callers
// serializing writes. Commit and rollback are no-ops: mutations apply
// directly, so a failing unit of work keeps any mutations made before the
// failure.
package memory

import (
	"context"
	"time"

	"sportive/internal/model"
	"sportive/internal/repository"
)

type storedUser struct {
	number   int
	name     string
	email    string
	password string
	token    string
}

type storedRoute struct {
	number        int
	startLocation string
	endLocation   string
	distance      float64
	user          int
}

type storedSport struct {
	number      int
	name        string
	description *string
	user        int
}

type storedActivity struct {
	number   int
	date     model.Date
	duration model.Duration
	user     int
	sport    int
	route    *int
}

// Store owns the in-memory records. Construct independent instances per test
// through NewStore or Seeded; the accessors mutate the same shared slices.
type Store struct {
	users      []storedUser
	routes     []storedRoute
	sports     []storedSport
	activities []storedActivity
}

var _ repository.Store = (*Store)(nil)

// NewStore builds an empty store.
func NewStore() *Store {
	return &Store{}
}

// Seeded builds a store pre-populated with a small fixture dataset. It backs
// the memory storage backend at boot and the data-layer tests.
func Seeded() *Store {
	description := func(s string) *string { return &s }
	route := func(n int) *int { return &n }
	return &Store{
		users: []storedUser{
			{1, "Alice", "alice@mail.com", model.DigestPassword("velocipede"), "e2a6cf7c-7125-4a88-858a-2196d24e8ead"},
			{2, "Bruno", "bruno@mail.com", model.DigestPassword("cadence"), "ffc0b3b2-8684-4d16-bccf-331a93a982c2"},
			{3, "Carla", "carla@mail.com", model.DigestPassword("headwind"), "59caeb1f-426e-4882-b050-5ef388df3069"},
		},
		routes: []storedRoute{
			{1, "Lisboa", "Porto", 300, 1},
			{2, "Guarda", "Lisboa", 300, 2},
		},
		sports: []storedSport{
			{1, "Cycling", description("Road cycling"), 1},
			{2, "Running", description("Solo or relay"), 2},
		},
		activities: []storedActivity{
			{1, model.NewDate(2022, time.March, 26), model.DurationOf(12*time.Hour + 50*time.Minute + 20*time.Second), 1, 1, nil},
			{2, model.NewDate(2022, time.June, 1), model.DurationOf(12*time.Hour + 30*time.Minute), 2, 2, nil},
			{3, model.NewDate(2022, time.May, 1), model.DurationOf(12*time.Hour + 20*time.Minute), 2, 2, route(1)},
			{4, model.NewDate(2022, time.May, 1), model.DurationOf(12*time.Hour + 20*time.Minute), 3, 2, route(1)},
		},
	}
}

// Users implements repository.Store.
func (s *Store) Users() repository.Users { return &users{store: s} }

// Routes implements repository.Store.
func (s *Store) Routes() repository.Routes { return &routes{store: s} }

// Sports implements repository.Store.
func (s *Store) Sports() repository.Sports { return &sports{store: s} }

// Activities implements repository.Store.
func (s *Store) Activities() repository.Activities { return &activities{store: s} }

// NewTx implements repository.Store. The returned transaction is inert:
// mutations on this backend are applied directly to the shared records.
func (s *Store) NewTx(context.Context) repository.Tx { return tx{} }

// tx is the no-op transaction of the in-memory backend.
type tx struct{}

func (tx) Begin() error    { return nil }
func (tx) Commit() error   { return nil }
func (tx) Rollback() error { return nil }
func (tx) Close() error    { return nil }

func (s *Store) findUser(number int) *storedUser {
	for i := range s.users {
		if s.users[i].number == number {
			return &s.users[i]
		}
	}
	return nil
}

func (s *Store) findRoute(number int) *storedRoute {
	for i := range s.routes {
		if s.routes[i].number == number {
			return &s.routes[i]
		}
	}
	return nil
}

func (s *Store) findSport(number int) *storedSport {
	for i := range s.sports {
		if s.sports[i].number == number {
			return &s.sports[i]
		}
	}
	return nil
}

func (s *Store) findActivity(number int) *storedActivity {
	for i := range s.activities {
		if s.activities[i].number == number {
			return &s.activities[i]
		}
	}
	return nil
}

func (s *Store) userRef(number int) model.Ref {
	ref := model.Ref{Number: number}
	if u := s.findUser(number); u != nil {
		ref.Name = u.name
	}
	return ref
}

func toUser(u storedUser) model.User {
	return model.User{Number: u.number, Name: u.name, Email: u.email}
}

func (s *Store) toRoute(r storedRoute) model.Route {
	return model.Route{
		Number:        r.number,
		StartLocation: r.startLocation,
		EndLocation:   r.endLocation,
		Distance:      r.distance,
		User:          s.userRef(r.user),
		UserNumber:    r.user,
	}
}

func (s *Store) toSport(sp storedSport) model.Sport {
	return model.Sport{
		Number:      sp.number,
		Name:        sp.name,
		Description: sp.description,
		User:        s.userRef(sp.user),
		UserNumber:  sp.user,
	}
}

func (s *Store) toActivity(a storedActivity) model.Activity {
	activity := model.Activity{
		Number:      a.number,
		Date:        a.date,
		Duration:    a.duration,
		User:        s.userRef(a.user),
		UserNumber:  a.user,
		SportNumber: a.sport,
		RouteNumber: a.route,
	}
	activity.Sport = model.Ref{Number: a.sport}
	if sp := s.findSport(a.sport); sp != nil {
		activity.Sport.Name = sp.name
	}
	if a.route != nil {
		ref := model.Ref{Number: *a.route}
		if r := s.findRoute(*a.route); r != nil {
			ref.Name = model.RouteDisplayName(r.startLocation, r.endLocation, r.distance)
		}
		activity.Route = &ref
	}
	return activity
}

// nextNumber allocates the next entity number: one past the highest number
// currently stored, or 1 on an empty collection. Numbers stay monotonic for
// the live set; they are never reassigned by updates.
func nextNumber[T any](rows []T, number func(T) int) int {
	next := 1
	for _, row := range rows {
		if n := number(row); n >= next {
			next = n + 1
		}
	}
	return next
}
