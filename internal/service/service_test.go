package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "sportive/internal/errors"
	"sportive/internal/model"
	"sportive/internal/repository"
	"sportive/internal/repository/memory"
)

// fixture builds the services over a fresh in-memory store with one
// registered user, returning their registration for authenticated calls.
type fixture struct {
	users      UsersService
	routes     RoutesService
	sports     SportsService
	activities ActivitiesService
	owner      *model.Registration
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	store := memory.NewStore()
	f := &fixture{
		users:      NewUsersService(store),
		routes:     NewRoutesService(store),
		sports:     NewSportsService(store),
		activities: NewActivitiesService(store),
	}
	owner, err := f.users.CreateUser(context.Background(), "Alice", "alice@mail.com", "velocipede")
	require.NoError(t, err)
	f.owner = owner
	return f
}

func assertKind(t *testing.T, err error, kind apperrors.Kind, message string) {
	t.Helper()
	require.Error(t, err)
	assert.Equal(t, kind, apperrors.KindOf(err))
	assert.EqualError(t, err, message)
}

func TestCreateUserValidation(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	tests := []struct {
		name     string
		userName string
		email    string
		password string
		message  string
	}{
		{name: "empty name", userName: "", email: "bob@mail.com", password: "pw", message: "Empty name"},
		{name: "empty email", userName: "Bob", email: "", password: "pw", message: "Empty email"},
		{name: "malformed email", userName: "Bob", email: "bob-at-mail", password: "pw", message: "Invalid email"},
		{name: "email with spaces in domain", userName: "Bob", email: "bob@ma il.com", password: "pw", message: "Invalid email"},
		{name: "empty password", userName: "Bob", email: "bob@mail.com", password: "", message: "Empty password"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := f.users.CreateUser(ctx, tt.userName, tt.email, tt.password)
			assertKind(t, err, apperrors.KindBadRequest, tt.message)
		})
	}
}

func TestCreateUserDuplicateEmail(t *testing.T) {
	f := newFixture(t)

	_, err := f.users.CreateUser(context.Background(), "Impostor", "alice@mail.com", "other")
	assertKind(t, err, apperrors.KindBadRequest, "The email alice@mail.com is already in use")
}

func TestGetUserNotFound(t *testing.T) {
	f := newFixture(t)

	_, err := f.users.GetUser(context.Background(), 99)
	assertKind(t, err, apperrors.KindNotFound, "User doesn't exist")
}

func TestListUsersPagingValidation(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.users.ListUsers(ctx, 0, 0)
	assertKind(t, err, apperrors.KindBadRequest, "Invalid limit")

	_, err = f.users.ListUsers(ctx, 3, -1)
	assertKind(t, err, apperrors.KindBadRequest, "Invalid skip")
}

func TestLogin(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	session, err := f.users.Login(ctx, "alice@mail.com", "velocipede")
	require.NoError(t, err)
	assert.Equal(t, f.owner.Number, session.Number)
	assert.Equal(t, f.owner.Token, session.Token)

	_, err = f.users.Login(ctx, "alice@mail.com", "wrong")
	assertKind(t, err, apperrors.KindUnauthorized, "Invalid credentials")

	_, err = f.users.Login(ctx, "", "velocipede")
	assertKind(t, err, apperrors.KindBadRequest, "Empty email")
}

func TestCreateRouteRequiresToken(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.routes.CreateRoute(ctx, "", "Lisboa", "Porto", 300)
	assertKind(t, err, apperrors.KindUnauthorized, "No token provided")

	_, err = f.routes.CreateRoute(ctx, "bogus-token", "Lisboa", "Porto", 300)
	assertKind(t, err, apperrors.KindUnauthorized, "Invalid token")
}

func TestCreateRouteValidation(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.routes.CreateRoute(ctx, f.owner.Token, "", "Porto", 300)
	assertKind(t, err, apperrors.KindBadRequest, "Empty start location")

	_, err = f.routes.CreateRoute(ctx, f.owner.Token, "Lisboa", "", 300)
	assertKind(t, err, apperrors.KindBadRequest, "Empty end location")

	_, err = f.routes.CreateRoute(ctx, f.owner.Token, "Lisboa", "Porto", 0)
	assertKind(t, err, apperrors.KindBadRequest, "Invalid distance")

	number, err := f.routes.CreateRoute(ctx, f.owner.Token, "Lisboa", "Porto", 300)
	require.NoError(t, err)
	assert.Equal(t, 1, number)
}

func TestUpdateRouteOwnership(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	number, err := f.routes.CreateRoute(ctx, f.owner.Token, "Lisboa", "Porto", 300)
	require.NoError(t, err)

	other, err := f.users.CreateUser(ctx, "Bruno", "bruno@mail.com", "cadence")
	require.NoError(t, err)

	distance := 320.0
	_, err = f.routes.UpdateRoute(ctx, other.Token, number, model.RouteUpdate{Distance: &distance})
	assertKind(t, err, apperrors.KindUnauthorized, "Route is not yours to update")

	_, err = f.routes.UpdateRoute(ctx, f.owner.Token, number, model.RouteUpdate{})
	assertKind(t, err, apperrors.KindBadRequest, "No updates requested")

	updated, err := f.routes.UpdateRoute(ctx, f.owner.Token, number, model.RouteUpdate{Distance: &distance})
	require.NoError(t, err)
	assert.Equal(t, number, updated)

	route, err := f.routes.GetRoute(ctx, number)
	require.NoError(t, err)
	assert.Equal(t, 320.0, route.Distance)
	// Fields left out of the update keep their prior value.
	assert.Equal(t, "Lisboa", route.StartLocation)
}

func TestSearchRequiresQuery(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.routes.SearchRoutes(ctx, "", 3, 0)
	assertKind(t, err, apperrors.KindBadRequest, "No search query provided")

	_, err = f.sports.SearchSports(ctx, "", 3, 0)
	assertKind(t, err, apperrors.KindBadRequest, "No search query provided")
}

func TestSportsPageBoundaryThroughService(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	for _, name := range []string{"Sport1", "Sport2", "Sport3", "Sport4"} {
		_, err := f.sports.CreateSport(ctx, f.owner.Token, name, nil)
		require.NoError(t, err)
	}

	page, err := f.sports.ListSports(ctx, 2, 3)
	require.NoError(t, err)
	require.Len(t, page.List, 1)
	assert.Equal(t, "Sport4", page.List[0].Name)
	assert.False(t, page.HasMore)
}

func TestCreateActivityChecksReferents(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	date := model.NewDate(2022, time.May, 20)
	duration := model.DurationOf(2 * time.Hour)

	_, err := f.activities.CreateActivity(ctx, f.owner.Token, 7, &date, &duration, nil)
	assertKind(t, err, apperrors.KindNotFound, "Sport doesn't exist")

	sport, err := f.sports.CreateSport(ctx, f.owner.Token, "Cycling", nil)
	require.NoError(t, err)

	_, err = f.activities.CreateActivity(ctx, f.owner.Token, sport, nil, &duration, nil)
	assertKind(t, err, apperrors.KindBadRequest, "Empty date")

	_, err = f.activities.CreateActivity(ctx, f.owner.Token, sport, &date, nil, nil)
	assertKind(t, err, apperrors.KindBadRequest, "Empty duration")

	missingRoute := 9
	_, err = f.activities.CreateActivity(ctx, f.owner.Token, sport, &date, &duration, &missingRoute)
	assertKind(t, err, apperrors.KindNotFound, "Route doesn't exist")

	number, err := f.activities.CreateActivity(ctx, f.owner.Token, sport, &date, &duration, nil)
	require.NoError(t, err)
	assert.Equal(t, 1, number)
}

func TestNegativeDurationRejectedOnBothWrites(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	sport, err := f.sports.CreateSport(ctx, f.owner.Token, "Cycling", nil)
	require.NoError(t, err)
	date := model.NewDate(2022, time.May, 20)
	negative := model.DurationOf(-2 * time.Hour)

	_, err = f.activities.CreateActivity(ctx, f.owner.Token, sport, &date, &negative, nil)
	assertKind(t, err, apperrors.KindBadRequest, "Invalid duration")

	duration := model.DurationOf(2 * time.Hour)
	number, err := f.activities.CreateActivity(ctx, f.owner.Token, sport, &date, &duration, nil)
	require.NoError(t, err)

	_, err = f.activities.UpdateActivity(ctx, f.owner.Token, number, model.ActivityUpdate{Duration: &negative})
	assertKind(t, err, apperrors.KindBadRequest, "Invalid duration")
}

func TestDeleteActivityOwnership(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	sport, err := f.sports.CreateSport(ctx, f.owner.Token, "Cycling", nil)
	require.NoError(t, err)
	date := model.NewDate(2022, time.May, 20)
	duration := model.DurationOf(2 * time.Hour)
	number, err := f.activities.CreateActivity(ctx, f.owner.Token, sport, &date, &duration, nil)
	require.NoError(t, err)

	other, err := f.users.CreateUser(ctx, "Bruno", "bruno@mail.com", "cadence")
	require.NoError(t, err)

	_, err = f.activities.DeleteActivity(ctx, other.Token, number)
	assertKind(t, err, apperrors.KindUnauthorized, "Activity is not yours to delete")

	deleted, err := f.activities.DeleteActivity(ctx, f.owner.Token, number)
	require.NoError(t, err)
	assert.Equal(t, number, deleted)

	_, err = f.activities.GetActivity(ctx, number)
	assertKind(t, err, apperrors.KindNotFound, "Activity doesn't exist")
}

func TestDeleteActivitiesValidatesEveryNumber(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	sport, err := f.sports.CreateSport(ctx, f.owner.Token, "Cycling", nil)
	require.NoError(t, err)
	date := model.NewDate(2022, time.May, 20)
	duration := model.DurationOf(2 * time.Hour)

	first, err := f.activities.CreateActivity(ctx, f.owner.Token, sport, &date, &duration, nil)
	require.NoError(t, err)
	second, err := f.activities.CreateActivity(ctx, f.owner.Token, sport, &date, &duration, nil)
	require.NoError(t, err)

	_, err = f.activities.DeleteActivities(ctx, f.owner.Token, nil)
	assertKind(t, err, apperrors.KindBadRequest, "Invalid list of activities")

	_, err = f.activities.DeleteActivities(ctx, f.owner.Token, []int{first, 99})
	assertKind(t, err, apperrors.KindNotFound, "Activity doesn't exist: 99")

	deleted, err := f.activities.DeleteActivities(ctx, f.owner.Token, []int{first, second})
	require.NoError(t, err)
	assert.Equal(t, []int{first, second}, deleted)
}

func TestGetRankingsChecksReferents(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.users.GetRankings(ctx, 1, 1, 3, 0)
	assertKind(t, err, apperrors.KindNotFound, "Sport doesn't exist")

	sport, err := f.sports.CreateSport(ctx, f.owner.Token, "Cycling", nil)
	require.NoError(t, err)

	_, err = f.users.GetRankings(ctx, sport, 1, 3, 0)
	assertKind(t, err, apperrors.KindNotFound, "Route doesn't exist")

	route, err := f.routes.CreateRoute(ctx, f.owner.Token, "Lisboa", "Porto", 300)
	require.NoError(t, err)

	other, err := f.users.CreateUser(ctx, "Bruno", "bruno@mail.com", "cadence")
	require.NoError(t, err)

	date := model.NewDate(2022, time.May, 20)
	slow := model.DurationOf(10 * time.Hour)
	fast := model.DurationOf(9*time.Hour + 45*time.Minute)
	_, err = f.activities.CreateActivity(ctx, f.owner.Token, sport, &date, &slow, &route)
	require.NoError(t, err)
	_, err = f.activities.CreateActivity(ctx, other.Token, sport, &date, &fast, &route)
	require.NoError(t, err)

	page, err := f.users.GetRankings(ctx, sport, route, 3, 0)
	require.NoError(t, err)
	require.Len(t, page.List, 2)
	assert.Equal(t, "Bruno", page.List[0].Name)
	assert.Equal(t, "Alice", page.List[1].Name)
}

func TestGetActivitiesFilterValidation(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.activities.GetActivities(ctx, 0, repository.Ascending, nil, nil, 3, 0)
	assertKind(t, err, apperrors.KindBadRequest, "Invalid sport number")

	sport, err := f.sports.CreateSport(ctx, f.owner.Token, "Cycling", nil)
	require.NoError(t, err)

	badRoute := 0
	_, err = f.activities.GetActivities(ctx, sport, repository.Ascending, nil, &badRoute, 3, 0)
	assertKind(t, err, apperrors.KindBadRequest, "Invalid route number")

	page, err := f.activities.GetActivities(ctx, sport, repository.Ascending, nil, nil, 3, 0)
	require.NoError(t, err)
	assert.Empty(t, page.List)
}
