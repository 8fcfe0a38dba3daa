package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	apperrors "sportive/internal/errors"
	"sportive/internal/model"
	"sportive/internal/service"
)

// ActivityHandler bundles the activity HTTP handlers.
type ActivityHandler struct {
	svc service.ActivitiesService
}

// NewActivityHandler creates a handler layer.
func NewActivityHandler(svc service.ActivitiesService) *ActivityHandler {
	return &ActivityHandler{svc: svc}
}

type activityInput struct {
	Date        *model.Date     `json:"date" validate:"required"`
	Duration    *model.Duration `json:"duration" validate:"required"`
	RouteNumber *int            `json:"routeNumber"`
}

var activityInputMessages = map[string]string{
	"Date":     "Empty date",
	"Duration": "Empty duration",
}

// activityDeleteInput carries no validate tags: the service distinguishes an
// absent list from an empty one and reports offending numbers individually.
type activityDeleteInput struct {
	Activities []int `json:"activities"`
}

// CreateActivity godoc
// @Summary Log an activity under a sport
// @Tags activities
// @Accept json
// @Produce json
// @Param number path int true "Sport number"
// @Param activity body activityInput true "Activity payload"
// @Success 201 {object} numberOutput
// @Failure 400 {object} apperrors.ErrorResponse
// @Failure 401 {object} apperrors.ErrorResponse
// @Failure 404 {object} apperrors.ErrorResponse
// @Security BearerAuth
// @Router /sports/{number}/activities [post]
func (h *ActivityHandler) CreateActivity(c echo.Context) error {
	sportNumber, ok := pathInt(c, "number")
	if !ok {
		return respondError(c, apperrors.BadRequest("Invalid sport number"))
	}
	var input activityInput
	if err := c.Bind(&input); err != nil {
		return respondError(c, apperrors.BadRequest("Check the format of the request body"))
	}
	if err := validateInput(c, &input, activityInputMessages); err != nil {
		return respondError(c, err)
	}
	number, err := h.svc.CreateActivity(c.Request().Context(), bearerToken(c), sportNumber, input.Date, input.Duration, input.RouteNumber)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusCreated, numberOutput{Number: number})
}

// GetActivity godoc
// @Summary Get activity by number
// @Tags activities
// @Produce json
// @Param number path int true "Activity number"
// @Success 200 {object} model.Activity
// @Failure 400 {object} apperrors.ErrorResponse
// @Failure 404 {object} apperrors.ErrorResponse
// @Router /activities/{number} [get]
func (h *ActivityHandler) GetActivity(c echo.Context) error {
	number, ok := pathInt(c, "number")
	if !ok {
		return respondError(c, apperrors.BadRequest("Invalid activity number"))
	}
	activity, err := h.svc.GetActivity(c.Request().Context(), number)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, activity)
}

// GetUserActivities godoc
// @Summary List a user's activities
// @Tags activities
// @Produce json
// @Param number path int true "User number"
// @Param limit query int false "Page size" default(3)
// @Param skip query int false "Page offset" default(0)
// @Success 200 {object} model.Page[model.Activity]
// @Failure 400 {object} apperrors.ErrorResponse
// @Failure 404 {object} apperrors.ErrorResponse
// @Router /users/{number}/activities [get]
func (h *ActivityHandler) GetUserActivities(c echo.Context) error {
	userNumber, ok := pathInt(c, "number")
	if !ok {
		return respondError(c, apperrors.BadRequest("Invalid user number"))
	}
	page, err := h.svc.GetUserActivities(c.Request().Context(), userNumber, queryLimit(c), querySkip(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, page)
}

// GetSportActivities godoc
// @Summary List a sport's activities
// @Tags activities
// @Produce json
// @Param number path int true "Sport number"
// @Param limit query int false "Page size" default(3)
// @Param skip query int false "Page offset" default(0)
// @Success 200 {object} model.Page[model.Activity]
// @Failure 400 {object} apperrors.ErrorResponse
// @Failure 404 {object} apperrors.ErrorResponse
// @Router /sports/{number}/activities [get]
func (h *ActivityHandler) GetSportActivities(c echo.Context) error {
	sportNumber, ok := pathInt(c, "number")
	if !ok {
		return respondError(c, apperrors.BadRequest("Invalid sport number"))
	}
	page, err := h.svc.GetSportActivities(c.Request().Context(), sportNumber, queryLimit(c), querySkip(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, page)
}

// GetActivities godoc
// @Summary Search a sport's activities, ordered by duration
// @Tags activities
// @Produce json
// @Param sport query int true "Sport number"
// @Param order query string false "ascending or descending" default(ascending)
// @Param date query string false "Exact date (YYYY-MM-DD)"
// @Param route query int false "Route number"
// @Param limit query int false "Page size" default(3)
// @Param skip query int false "Page offset" default(0)
// @Success 200 {object} model.Page[model.Activity]
// @Failure 400 {object} apperrors.ErrorResponse
// @Failure 404 {object} apperrors.ErrorResponse
// @Router /activities [get]
func (h *ActivityHandler) GetActivities(c echo.Context) error {
	sportNumber := queryInt(c, "sport", 0)
	page, err := h.svc.GetActivities(c.Request().Context(), sportNumber, queryOrder(c), queryDate(c), queryNumber(c, "route"), queryLimit(c), querySkip(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, page)
}

// UpdateActivity godoc
// @Summary Update an activity's date or duration
// @Tags activities
// @Accept json
// @Produce json
// @Param number path int true "Activity number"
// @Param activity body model.ActivityUpdate true "Fields to update"
// @Success 200 {object} numberOutput
// @Failure 400 {object} apperrors.ErrorResponse
// @Failure 401 {object} apperrors.ErrorResponse
// @Failure 404 {object} apperrors.ErrorResponse
// @Security BearerAuth
// @Router /activities/{number} [put]
func (h *ActivityHandler) UpdateActivity(c echo.Context) error {
	number, ok := pathInt(c, "number")
	if !ok {
		return respondError(c, apperrors.BadRequest("Invalid activity number"))
	}
	var update model.ActivityUpdate
	if err := c.Bind(&update); err != nil {
		return respondError(c, apperrors.BadRequest("Check the format of the request body"))
	}
	updated, err := h.svc.UpdateActivity(c.Request().Context(), bearerToken(c), number, update)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, numberOutput{Number: updated})
}

// DeleteActivity godoc
// @Summary Delete an activity
// @Tags activities
// @Produce json
// @Param number path int true "Activity number"
// @Success 200 {object} numberOutput
// @Failure 400 {object} apperrors.ErrorResponse
// @Failure 401 {object} apperrors.ErrorResponse
// @Failure 404 {object} apperrors.ErrorResponse
// @Security BearerAuth
// @Router /activities/{number} [delete]
func (h *ActivityHandler) DeleteActivity(c echo.Context) error {
	number, ok := pathInt(c, "number")
	if !ok {
		return respondError(c, apperrors.BadRequest("Invalid activity number"))
	}
	deleted, err := h.svc.DeleteActivity(c.Request().Context(), bearerToken(c), number)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, numberOutput{Number: deleted})
}

// DeleteActivities godoc
// @Summary Delete several activities at once
// @Tags activities
// @Accept json
// @Produce json
// @Param activities body activityDeleteInput true "Activity numbers"
// @Success 200 {object} numbersOutput
// @Failure 400 {object} apperrors.ErrorResponse
// @Failure 401 {object} apperrors.ErrorResponse
// @Failure 404 {object} apperrors.ErrorResponse
// @Security BearerAuth
// @Router /activities/delete [post]
func (h *ActivityHandler) DeleteActivities(c echo.Context) error {
	var input activityDeleteInput
	if err := c.Bind(&input); err != nil {
		return respondError(c, apperrors.BadRequest("Check the format of the request body"))
	}
	deleted, err := h.svc.DeleteActivities(c.Request().Context(), bearerToken(c), input.Activities)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, numbersOutput{Numbers: deleted})
}
