// Package handler contains the echo HTTP handlers. Handlers only parse and
// shape requests; validation and authorization live in the service layer.
package handler

import (
	"encoding/base64"
	"errors"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	apperrors "sportive/internal/errors"
	"sportive/internal/model"
	"sportive/internal/repository"
)

const (
	defaultLimit = 3
	defaultSkip  = 0
)

// numberOutput is the single-number envelope returned by create, update and
// delete operations.
type numberOutput struct {
	Number int `json:"number"`
}

// numbersOutput is the envelope returned by the bulk delete operation.
type numbersOutput struct {
	Numbers []int `json:"numbers"`
}

// validateInput runs the echo validator over a bound body. The first failed
// field is translated through messages so the wire keeps the same wording the
// service layer uses for that field.
func validateInput(c echo.Context, input any, messages map[string]string) error {
	err := c.Validate(input)
	if err == nil {
		return nil
	}
	var fields validator.ValidationErrors
	if errors.As(err, &fields) && len(fields) > 0 {
		if message, ok := messages[fields[0].StructField()]; ok {
			return apperrors.BadRequest(message)
		}
	}
	return apperrors.BadRequest("Check the format of the request body")
}

// respondError writes the taxonomy error envelope for err.
func respondError(c echo.Context, err error) error {
	httpErr := apperrors.MapErrorToHTTP(err)
	return c.JSON(httpErr.StatusCode, httpErr.ToErrorResponse())
}

// bearerToken extracts the token from an "Authorization: Bearer <token>"
// header, or "" when absent.
func bearerToken(c echo.Context) string {
	scheme, value, ok := strings.Cut(strings.TrimSpace(c.Request().Header.Get(echo.HeaderAuthorization)), " ")
	if !ok || scheme != "Bearer" {
		return ""
	}
	return value
}

// basicCredentials extracts the email/password pair from an
// "Authorization: Basic <base64>" header.
func basicCredentials(c echo.Context) (email, password string, ok bool) {
	scheme, value, found := strings.Cut(strings.TrimSpace(c.Request().Header.Get(echo.HeaderAuthorization)), " ")
	if !found || scheme != "Basic" {
		return "", "", false
	}
	decoded, err := base64.StdEncoding.DecodeString(value)
	if err != nil {
		return "", "", false
	}
	email, password, found = strings.Cut(string(decoded), ":")
	if !found {
		return "", "", false
	}
	return email, password, true
}

// pathInt parses an integer path parameter.
func pathInt(c echo.Context, name string) (int, bool) {
	value, err := strconv.Atoi(c.Param(name))
	if err != nil {
		return 0, false
	}
	return value, true
}

// queryInt parses an optional integer query parameter, falling back to def
// when missing or not a number.
func queryInt(c echo.Context, name string, def int) int {
	value, err := strconv.Atoi(c.QueryParam(name))
	if err != nil {
		return def
	}
	return value
}

func queryLimit(c echo.Context) int { return queryInt(c, "limit", defaultLimit) }

func querySkip(c echo.Context) int { return queryInt(c, "skip", defaultSkip) }

// queryOrder reads the "order" query parameter; anything other than
// "descending" means ascending.
func queryOrder(c echo.Context) repository.Order {
	if c.QueryParam("order") == "descending" {
		return repository.Descending
	}
	return repository.Ascending
}

// queryDate reads the optional "date" query parameter; an unparsable value
// behaves like an absent one.
func queryDate(c echo.Context) *model.Date {
	raw := c.QueryParam("date")
	if raw == "" {
		return nil
	}
	date, err := model.ParseDate(raw)
	if err != nil {
		return nil
	}
	return &date
}

// queryNumber reads an optional integer query parameter.
func queryNumber(c echo.Context, name string) *int {
	raw := c.QueryParam(name)
	if raw == "" {
		return nil
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return nil
	}
	return &value
}

// searchTerm reads the "q" query parameter, mapping '+' back to spaces.
func searchTerm(c echo.Context) string {
	return strings.ReplaceAll(c.QueryParam("q"), "+", " ")
}
