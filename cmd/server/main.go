package main

import (
	"log"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"sportive/docs"

	"sportive/internal/config"
	"sportive/internal/db"
	"sportive/internal/handler"
	"sportive/internal/repository"
	"sportive/internal/repository/database"
	"sportive/internal/repository/memory"
	"sportive/internal/router"
	"sportive/internal/service"
)

// @title Sportive API
// @version 1.0
// @description Sports tracker API: users, sports, routes, activities and rankings.
// @host localhost:8080
// @BasePath /api
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and the session token.
// @securityDefinitions.basic BasicAuth
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	if cfg.SwaggerHost != "" {
		docs.SwaggerInfo.Host = cfg.SwaggerHost
	}

	e := echo.New()
	e.Use(middleware.RequestID())

	var store repository.Store
	switch cfg.Backend {
	case config.BackendMySQL:
		gormDB, err := db.NewMySQL(cfg.MySQLDSN)
		if err != nil {
			log.Fatalf("database init: %v", err)
		}
		if err := database.Migrate(gormDB); err != nil {
			log.Fatalf("auto-migrate: %v", err)
		}
		store = database.NewStore(gormDB)
	default:
		log.Println("using in-memory storage with fixture data")
		store = memory.Seeded()
	}

	// Initialize services
	usersService := service.NewUsersService(store)
	routesService := service.NewRoutesService(store)
	sportsService := service.NewSportsService(store)
	activitiesService := service.NewActivitiesService(store)

	// Initialize handlers
	userHandler := handler.NewUserHandler(usersService)
	routeHandler := handler.NewRouteHandler(routesService)
	sportHandler := handler.NewSportHandler(sportsService)
	activityHandler := handler.NewActivityHandler(activitiesService)

	// Register routes
	router.Register(e, userHandler, routeHandler, sportHandler, activityHandler)

	addr := ":" + cfg.ServerPort
	if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
		log.Fatalf("server start: %v", err)
	}
}
