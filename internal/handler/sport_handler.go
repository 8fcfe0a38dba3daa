package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	apperrors "sportive/internal/errors"
	"sportive/internal/model"
	"sportive/internal/service"
)

// SportHandler bundles the sport HTTP handlers.
type SportHandler struct {
	svc service.SportsService
}

// NewSportHandler creates a handler layer.
func NewSportHandler(svc service.SportsService) *SportHandler {
	return &SportHandler{svc: svc}
}

type sportInput struct {
	Name        string  `json:"name" validate:"required"`
	Description *string `json:"description"`
}

var sportInputMessages = map[string]string{
	"Name": "Empty sport name",
}

// CreateSport godoc
// @Summary Create a sport
// @Tags sports
// @Accept json
// @Produce json
// @Param sport body sportInput true "Sport payload"
// @Success 201 {object} numberOutput
// @Failure 400 {object} apperrors.ErrorResponse
// @Failure 401 {object} apperrors.ErrorResponse
// @Security BearerAuth
// @Router /sports [post]
func (h *SportHandler) CreateSport(c echo.Context) error {
	var input sportInput
	if err := c.Bind(&input); err != nil {
		return respondError(c, apperrors.BadRequest("Check the format of the request body"))
	}
	if err := validateInput(c, &input, sportInputMessages); err != nil {
		return respondError(c, err)
	}
	number, err := h.svc.CreateSport(c.Request().Context(), bearerToken(c), input.Name, input.Description)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusCreated, numberOutput{Number: number})
}

// GetSport godoc
// @Summary Get sport by number
// @Tags sports
// @Produce json
// @Param number path int true "Sport number"
// @Success 200 {object} model.Sport
// @Failure 400 {object} apperrors.ErrorResponse
// @Failure 404 {object} apperrors.ErrorResponse
// @Router /sports/{number} [get]
func (h *SportHandler) GetSport(c echo.Context) error {
	number, ok := pathInt(c, "number")
	if !ok {
		return respondError(c, apperrors.BadRequest("Invalid sport number"))
	}
	sport, err := h.svc.GetSport(c.Request().Context(), number)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, sport)
}

// ListSports godoc
// @Summary List sports
// @Tags sports
// @Produce json
// @Param limit query int false "Page size" default(3)
// @Param skip query int false "Page offset" default(0)
// @Success 200 {object} model.Page[model.Sport]
// @Failure 400 {object} apperrors.ErrorResponse
// @Router /sports [get]
func (h *SportHandler) ListSports(c echo.Context) error {
	page, err := h.svc.ListSports(c.Request().Context(), queryLimit(c), querySkip(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, page)
}

// UpdateSport godoc
// @Summary Update a sport's fields
// @Tags sports
// @Accept json
// @Produce json
// @Param number path int true "Sport number"
// @Param sport body model.SportUpdate true "Fields to update"
// @Success 200 {object} numberOutput
// @Failure 400 {object} apperrors.ErrorResponse
// @Failure 401 {object} apperrors.ErrorResponse
// @Failure 404 {object} apperrors.ErrorResponse
// @Security BearerAuth
// @Router /sports/{number} [put]
func (h *SportHandler) UpdateSport(c echo.Context) error {
	number, ok := pathInt(c, "number")
	if !ok {
		return respondError(c, apperrors.BadRequest("Invalid sport number"))
	}
	var update model.SportUpdate
	if err := c.Bind(&update); err != nil {
		return respondError(c, apperrors.BadRequest("Check the format of the request body"))
	}
	updated, err := h.svc.UpdateSport(c.Request().Context(), bearerToken(c), number, update)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, numberOutput{Number: updated})
}

// SearchSports godoc
// @Summary Search sports by name or description
// @Tags sports
// @Produce json
// @Param q query string true "Search query"
// @Param limit query int false "Page size" default(3)
// @Param skip query int false "Page offset" default(0)
// @Success 200 {object} model.Page[model.Sport]
// @Failure 400 {object} apperrors.ErrorResponse
// @Router /search/sports [get]
func (h *SportHandler) SearchSports(c echo.Context) error {
	page, err := h.svc.SearchSports(c.Request().Context(), searchTerm(c), queryLimit(c), querySkip(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, page)
}
