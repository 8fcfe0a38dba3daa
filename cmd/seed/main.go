package main

import (
	"context"
	"log"
	"time"

	"sportive/internal/config"
	"sportive/internal/db"
	"sportive/internal/model"
	"sportive/internal/repository/database"
	"sportive/internal/service"
)

type seedUser struct {
	name     string
	email    string
	password string
}

var seedUsers = []seedUser{
	{name: "Alice Santos", email: "alice@example.com", password: "alice123"},
	{name: "Bruno Costa", email: "bruno@example.com", password: "bruno123"},
	{name: "Carla Pires", email: "carla@example.com", password: "carla123"},
}

func main() {
	log.Println("Starting seed script...")

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	log.Println("Connected to database")

	if err := database.Migrate(gormDB); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	log.Println("Database migrations completed")

	store := database.NewStore(gormDB)
	users := service.NewUsersService(store)
	routes := service.NewRoutesService(store)
	sports := service.NewSportsService(store)
	activities := service.NewActivitiesService(store)

	ctx := context.Background()

	tokens := make([]string, 0, len(seedUsers))
	for _, u := range seedUsers {
		registration, err := users.CreateUser(ctx, u.name, u.email, u.password)
		if err != nil {
			log.Fatalf("Failed to create user %s: %v", u.email, err)
		}
		tokens = append(tokens, registration.Token)
	}
	log.Printf("Created %d users", len(tokens))

	routeNumber, err := routes.CreateRoute(ctx, tokens[0], "Lisboa", "Porto", 300)
	if err != nil {
		log.Fatalf("Failed to create route: %v", err)
	}
	if _, err := routes.CreateRoute(ctx, tokens[1], "Guarda", "Lisboa", 300); err != nil {
		log.Fatalf("Failed to create route: %v", err)
	}

	description := "Road cycling"
	cycling, err := sports.CreateSport(ctx, tokens[0], "Cycling", &description)
	if err != nil {
		log.Fatalf("Failed to create sport: %v", err)
	}
	running, err := sports.CreateSport(ctx, tokens[1], "Running", nil)
	if err != nil {
		log.Fatalf("Failed to create sport: %v", err)
	}

	date := model.NewDate(2022, time.May, 20)
	entries := []struct {
		token    string
		sport    int
		duration string
		route    *int
	}{
		{token: tokens[0], sport: cycling, duration: "12h50m20s"},
		{token: tokens[1], sport: cycling, duration: "10h10m0s"},
		{token: tokens[0], sport: running, duration: "2h30m0s", route: &routeNumber},
		{token: tokens[1], sport: running, duration: "2h15m30s", route: &routeNumber},
	}
	for _, entry := range entries {
		duration, err := model.ParseDuration(entry.duration)
		if err != nil {
			log.Fatalf("Bad seed duration %q: %v", entry.duration, err)
		}
		if _, err := activities.CreateActivity(ctx, entry.token, entry.sport, &date, &duration, entry.route); err != nil {
			log.Fatalf("Failed to create activity: %v", err)
		}
	}
	log.Printf("Created %d activities", len(entries))

	log.Println("Seed completed successfully!")
}
