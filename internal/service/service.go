// Package service implements the application operations over the storage
// facade: input validation, token authorization, and translation of absent
// rows into NotFound errors. Every operation runs inside a single unit of
// work and normalizes its error before returning.
package service

import (
	"regexp"

	apperrors "sportive/internal/errors"
	"sportive/internal/repository"
)

var emailPattern = regexp.MustCompile(`^(.+)@(\S+)$`)

// checkPaging validates the limit/skip pair shared by every listing.
func checkPaging(limit, skip int) error {
	if limit <= 0 {
		return apperrors.BadRequest("Invalid limit")
	}
	if skip < 0 {
		return apperrors.BadRequest("Invalid skip")
	}
	return nil
}

// authenticate resolves a bearer token to the owning user's number.
func authenticate(tx repository.Tx, users repository.Users, token string) (int, error) {
	if token == "" {
		return 0, apperrors.Unauthorized("No token provided")
	}
	number, err := users.GetByToken(tx, token)
	if err != nil {
		return 0, err
	}
	if number == 0 {
		return 0, apperrors.Unauthorized("Invalid token")
	}
	return number, nil
}
