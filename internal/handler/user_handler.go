package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	apperrors "sportive/internal/errors"
	"sportive/internal/service"
)

// UserHandler bundles the user HTTP handlers.
type UserHandler struct {
	svc service.UsersService
}

// NewUserHandler creates a handler layer.
func NewUserHandler(svc service.UsersService) *UserHandler {
	return &UserHandler{svc: svc}
}

type userInput struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// The email format itself is checked in the service layer, which accepts more
// addresses than the validator's email tag would.
var userInputMessages = map[string]string{
	"Name":     "Empty name",
	"Email":    "Empty email",
	"Password": "Empty password",
}

// CreateUser godoc
// @Summary Register a new user
// @Tags users
// @Accept json
// @Produce json
// @Param user body userInput true "User payload"
// @Success 201 {object} model.Registration
// @Failure 400 {object} apperrors.ErrorResponse
// @Router /users [post]
func (h *UserHandler) CreateUser(c echo.Context) error {
	var input userInput
	if err := c.Bind(&input); err != nil {
		return respondError(c, apperrors.BadRequest("Check the format of the request body"))
	}
	if err := validateInput(c, &input, userInputMessages); err != nil {
		return respondError(c, err)
	}
	registration, err := h.svc.CreateUser(c.Request().Context(), input.Name, input.Email, input.Password)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusCreated, registration)
}

// GetUser godoc
// @Summary Get user by number
// @Tags users
// @Produce json
// @Param number path int true "User number"
// @Success 200 {object} model.User
// @Failure 400 {object} apperrors.ErrorResponse
// @Failure 404 {object} apperrors.ErrorResponse
// @Router /users/{number} [get]
func (h *UserHandler) GetUser(c echo.Context) error {
	number, ok := pathInt(c, "number")
	if !ok {
		return respondError(c, apperrors.BadRequest("Invalid user number"))
	}
	user, err := h.svc.GetUser(c.Request().Context(), number)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, user)
}

// ListUsers godoc
// @Summary List users
// @Tags users
// @Produce json
// @Param limit query int false "Page size" default(3)
// @Param skip query int false "Page offset" default(0)
// @Success 200 {object} model.Page[model.User]
// @Failure 400 {object} apperrors.ErrorResponse
// @Router /users [get]
func (h *UserHandler) ListUsers(c echo.Context) error {
	page, err := h.svc.ListUsers(c.Request().Context(), queryLimit(c), querySkip(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, page)
}

// GetRankings godoc
// @Summary Rank users by best duration for a sport/route pair
// @Tags users
// @Produce json
// @Param sport path int true "Sport number"
// @Param route path int true "Route number"
// @Param limit query int false "Page size" default(3)
// @Param skip query int false "Page offset" default(0)
// @Success 200 {object} model.Page[model.User]
// @Failure 400 {object} apperrors.ErrorResponse
// @Failure 404 {object} apperrors.ErrorResponse
// @Router /rankings/{sport}/{route} [get]
func (h *UserHandler) GetRankings(c echo.Context) error {
	sportNumber, ok := pathInt(c, "sport")
	if !ok {
		return respondError(c, apperrors.BadRequest("Invalid sport number"))
	}
	routeNumber, ok := pathInt(c, "route")
	if !ok {
		return respondError(c, apperrors.BadRequest("Invalid route number"))
	}
	page, err := h.svc.GetRankings(c.Request().Context(), sportNumber, routeNumber, queryLimit(c), querySkip(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, page)
}

// Login godoc
// @Summary Exchange basic credentials for the user's session token
// @Tags users
// @Produce json
// @Success 200 {object} model.Session
// @Failure 400 {object} apperrors.ErrorResponse
// @Failure 401 {object} apperrors.ErrorResponse
// @Security BasicAuth
// @Router /session [get]
func (h *UserHandler) Login(c echo.Context) error {
	email, password, ok := basicCredentials(c)
	if !ok {
		return respondError(c, apperrors.BadRequest("Invalid credentials"))
	}
	session, err := h.svc.Login(c.Request().Context(), email, password)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, session)
}
