package errors

import (
	stderrors "errors"
	"fmt"
	"strings"

	"github.com/go-sql-driver/mysql"
)

// MySQL server error numbers surfaced by the relational backend.
const (
	mysqlDuplicateEntry = 1062
	mysqlCheckViolated  = 3819
)

// Normalize converts a backend-specific failure into the closed taxonomy.
// It is called exactly once per service operation, at the boundary between
// the data layer and the service layer:
//   - taxonomy errors pass through untouched,
//   - a duplicate-key violation becomes BadRequest naming the column and value,
//   - a check-constraint violation becomes BadRequest naming the column,
//   - any other MySQL server error becomes a generic Internal,
//   - everything else passes through unchanged.
func Normalize(err error) error {
	if err == nil {
		return nil
	}
	var appErr *Error
	if stderrors.As(err, &appErr) {
		return appErr
	}
	var sqlErr *mysql.MySQLError
	if stderrors.As(err, &sqlErr) {
		switch sqlErr.Number {
		case mysqlDuplicateEntry:
			return BadRequest(uniqueViolationMessage(sqlErr.Message))
		case mysqlCheckViolated:
			return BadRequest(checkViolationMessage(sqlErr.Message))
		default:
			return Internal("something went wrong")
		}
	}
	return err
}

// uniqueViolationMessage rebuilds a user-facing message from the driver's
// duplicate-entry text, e.g.
//
//	Duplicate entry 'bob@mail.com' for key 'users.idx_users_email'
//
// becomes "The email bob@mail.com is already in use".
func uniqueViolationMessage(message string) string {
	value, rest, ok := quoted(message)
	if !ok {
		return message
	}
	key, _, ok := quoted(rest)
	if !ok {
		return message
	}
	return fmt.Sprintf("The %s %s is already in use", columnFromKey(key), value)
}

// checkViolationMessage rebuilds a user-facing message from the driver's
// check-constraint text, e.g.
//
//	Check constraint 'chk_routes_distance' is violated.
//
// becomes "Invalid distance".
func checkViolationMessage(message string) string {
	constraint, _, ok := quoted(message)
	if !ok {
		return message
	}
	name := strings.TrimPrefix(constraint, "chk_")
	if _, column, found := strings.Cut(name, "_"); found {
		name = column
	}
	return "Invalid " + name
}

// quoted extracts the first single-quoted fragment of s and returns it with
// the remainder of the string.
func quoted(s string) (value, rest string, ok bool) {
	_, after, found := strings.Cut(s, "'")
	if !found {
		return "", "", false
	}
	value, rest, found = strings.Cut(after, "'")
	if !found {
		return "", "", false
	}
	return value, rest, true
}

// columnFromKey reduces an index identifier such as "users.idx_users_email"
// to the offending column name.
func columnFromKey(key string) string {
	table := ""
	if before, after, found := strings.Cut(key, "."); found {
		table, key = before, after
	}
	key = strings.TrimPrefix(key, "idx_")
	key = strings.TrimPrefix(key, "uni_")
	if table != "" {
		key = strings.TrimPrefix(key, table+"_")
	}
	return key
}
