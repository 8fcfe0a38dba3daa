package errors

import (
	stderrors "errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/go-sql-driver/mysql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizePassesTaxonomyErrorsThrough(t *testing.T) {
	original := NotFound("Sport doesn't exist")
	assert.Same(t, original, Normalize(original))

	wrapped := fmt.Errorf("lookup: %w", original)
	assert.Same(t, original, Normalize(wrapped))
}

func TestNormalizeNil(t *testing.T) {
	assert.NoError(t, Normalize(nil))
}

func TestNormalizeDuplicateEntry(t *testing.T) {
	tests := []struct {
		name    string
		message string
		want    string
	}{
		{
			name:    "unique index with table prefix",
			message: "Duplicate entry 'bob@mail.com' for key 'users.idx_users_email'",
			want:    "The email bob@mail.com is already in use",
		},
		{
			name:    "token index",
			message: "Duplicate entry 'abc-123' for key 'users.idx_users_token'",
			want:    "The token abc-123 is already in use",
		},
		{
			name:    "unparsable message comes back verbatim",
			message: "Duplicate entry without quotes",
			want:    "Duplicate entry without quotes",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Normalize(&mysql.MySQLError{Number: 1062, Message: tt.message})
			require.Error(t, err)
			assert.Equal(t, KindBadRequest, KindOf(err))
			assert.EqualError(t, err, tt.want)
		})
	}
}

func TestNormalizeCheckViolation(t *testing.T) {
	tests := []struct {
		name    string
		message string
		want    string
	}{
		{
			name:    "route distance",
			message: "Check constraint 'chk_routes_distance' is violated.",
			want:    "Invalid distance",
		},
		{
			name:    "activity duration",
			message: "Check constraint 'chk_activities_duration' is violated.",
			want:    "Invalid duration",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Normalize(&mysql.MySQLError{Number: 3819, Message: tt.message})
			require.Error(t, err)
			assert.Equal(t, KindBadRequest, KindOf(err))
			assert.EqualError(t, err, tt.want)
		})
	}
}

func TestNormalizeOtherMySQLErrors(t *testing.T) {
	err := Normalize(&mysql.MySQLError{Number: 1213, Message: "Deadlock found"})
	require.Error(t, err)
	assert.Equal(t, KindInternal, KindOf(err))
	assert.EqualError(t, err, "something went wrong")
}

func TestNormalizeUnknownErrorsPassThrough(t *testing.T) {
	unknown := stderrors.New("dial tcp: connection refused")
	assert.Same(t, unknown, Normalize(unknown))
}

func TestMapErrorToHTTP(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
		code   string
	}{
		{name: "bad request", err: BadRequest("Invalid limit"), status: http.StatusBadRequest, code: "BAD_REQUEST"},
		{name: "unauthorized", err: Unauthorized("Invalid token"), status: http.StatusUnauthorized, code: "UNAUTHORIZED"},
		{name: "not found", err: NotFound("User doesn't exist"), status: http.StatusNotFound, code: "NOT_FOUND"},
		{name: "internal", err: Internal("something went wrong"), status: http.StatusInternalServerError, code: "INTERNAL_ERROR"},
		{name: "outside the taxonomy", err: stderrors.New("boom"), status: http.StatusInternalServerError, code: "INTERNAL_ERROR"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			httpErr := MapErrorToHTTP(tt.err)
			assert.Equal(t, tt.status, httpErr.StatusCode)
			assert.Equal(t, tt.code, httpErr.Code)
		})
	}
}
