package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	apperrors "sportive/internal/errors"
	"sportive/internal/model"
	"sportive/internal/service"
)

// RouteHandler bundles the route HTTP handlers.
type RouteHandler struct {
	svc service.RoutesService
}

// NewRouteHandler creates a handler layer.
func NewRouteHandler(svc service.RoutesService) *RouteHandler {
	return &RouteHandler{svc: svc}
}

type routeInput struct {
	StartLocation string  `json:"startLocation" validate:"required"`
	EndLocation   string  `json:"endLocation" validate:"required"`
	Distance      float64 `json:"distance" validate:"gt=0"`
}

var routeInputMessages = map[string]string{
	"StartLocation": "Empty start location",
	"EndLocation":   "Empty end location",
	"Distance":      "Invalid distance",
}

// CreateRoute godoc
// @Summary Create a route
// @Tags routes
// @Accept json
// @Produce json
// @Param route body routeInput true "Route payload"
// @Success 201 {object} numberOutput
// @Failure 400 {object} apperrors.ErrorResponse
// @Failure 401 {object} apperrors.ErrorResponse
// @Security BearerAuth
// @Router /routes [post]
func (h *RouteHandler) CreateRoute(c echo.Context) error {
	var input routeInput
	if err := c.Bind(&input); err != nil {
		return respondError(c, apperrors.BadRequest("Check the format of the request body"))
	}
	if err := validateInput(c, &input, routeInputMessages); err != nil {
		return respondError(c, err)
	}
	number, err := h.svc.CreateRoute(c.Request().Context(), bearerToken(c), input.StartLocation, input.EndLocation, input.Distance)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusCreated, numberOutput{Number: number})
}

// GetRoute godoc
// @Summary Get route by number
// @Tags routes
// @Produce json
// @Param number path int true "Route number"
// @Success 200 {object} model.Route
// @Failure 400 {object} apperrors.ErrorResponse
// @Failure 404 {object} apperrors.ErrorResponse
// @Router /routes/{number} [get]
func (h *RouteHandler) GetRoute(c echo.Context) error {
	number, ok := pathInt(c, "number")
	if !ok {
		return respondError(c, apperrors.BadRequest("Invalid route number"))
	}
	route, err := h.svc.GetRoute(c.Request().Context(), number)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, route)
}

// ListRoutes godoc
// @Summary List routes
// @Tags routes
// @Produce json
// @Param limit query int false "Page size" default(3)
// @Param skip query int false "Page offset" default(0)
// @Success 200 {object} model.Page[model.Route]
// @Failure 400 {object} apperrors.ErrorResponse
// @Router /routes [get]
func (h *RouteHandler) ListRoutes(c echo.Context) error {
	page, err := h.svc.ListRoutes(c.Request().Context(), queryLimit(c), querySkip(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, page)
}

// UpdateRoute godoc
// @Summary Update a route's fields
// @Tags routes
// @Accept json
// @Produce json
// @Param number path int true "Route number"
// @Param route body model.RouteUpdate true "Fields to update"
// @Success 200 {object} numberOutput
// @Failure 400 {object} apperrors.ErrorResponse
// @Failure 401 {object} apperrors.ErrorResponse
// @Failure 404 {object} apperrors.ErrorResponse
// @Security BearerAuth
// @Router /routes/{number} [put]
func (h *RouteHandler) UpdateRoute(c echo.Context) error {
	number, ok := pathInt(c, "number")
	if !ok {
		return respondError(c, apperrors.BadRequest("Invalid route number"))
	}
	var update model.RouteUpdate
	if err := c.Bind(&update); err != nil {
		return respondError(c, apperrors.BadRequest("Check the format of the request body"))
	}
	updated, err := h.svc.UpdateRoute(c.Request().Context(), bearerToken(c), number, update)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, numberOutput{Number: updated})
}

// SearchRoutes godoc
// @Summary Search routes by location or distance
// @Tags routes
// @Produce json
// @Param q query string true "Search query"
// @Param limit query int false "Page size" default(3)
// @Param skip query int false "Page offset" default(0)
// @Success 200 {object} model.Page[model.Route]
// @Failure 400 {object} apperrors.ErrorResponse
// @Router /search/routes [get]
func (h *RouteHandler) SearchRoutes(c echo.Context) error {
	page, err := h.svc.SearchRoutes(c.Request().Context(), searchTerm(c), queryLimit(c), querySkip(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, page)
}
