package router

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	echoSwagger "github.com/swaggo/echo-swagger"

	"sportive/internal/handler"
)

// Register wires routes and middleware.
func Register(
	e *echo.Echo,
	userHandler *handler.UserHandler,
	routeHandler *handler.RouteHandler,
	sportHandler *handler.SportHandler,
	activityHandler *handler.ActivityHandler,
) {
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())

	// Add validator
	e.Validator = &CustomValidator{validator: validator.New()}

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	api := e.Group("/api")

	// User routes
	api.POST("/users", userHandler.CreateUser)
	api.GET("/users", userHandler.ListUsers)
	api.GET("/users/:number", userHandler.GetUser)
	api.GET("/users/:number/activities", activityHandler.GetUserActivities)
	api.GET("/rankings/:sport/:route", userHandler.GetRankings)
	api.GET("/session", userHandler.Login)

	// Route routes
	api.POST("/routes", routeHandler.CreateRoute)
	api.GET("/routes", routeHandler.ListRoutes)
	api.GET("/routes/:number", routeHandler.GetRoute)
	api.PUT("/routes/:number", routeHandler.UpdateRoute)
	api.GET("/search/routes", routeHandler.SearchRoutes)

	// Sport routes
	api.POST("/sports", sportHandler.CreateSport)
	api.GET("/sports", sportHandler.ListSports)
	api.GET("/sports/:number", sportHandler.GetSport)
	api.PUT("/sports/:number", sportHandler.UpdateSport)
	api.GET("/search/sports", sportHandler.SearchSports)

	// Activity routes
	api.GET("/sports/:number/activities", activityHandler.GetSportActivities)
	api.POST("/sports/:number/activities", activityHandler.CreateActivity)
	api.GET("/activities", activityHandler.GetActivities)
	api.GET("/activities/:number", activityHandler.GetActivity)
	api.PUT("/activities/:number", activityHandler.UpdateActivity)
	api.DELETE("/activities/:number", activityHandler.DeleteActivity)
	api.POST("/activities/delete", activityHandler.DeleteActivities)
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}
