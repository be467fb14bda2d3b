package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/bwmarrin/discordgo"
	"github.com/eventbook/event-booking-api/internal/auth"
	"github.com/eventbook/event-booking-api/internal/config"
	"github.com/eventbook/event-booking-api/internal/database"
	"github.com/eventbook/event-booking-api/internal/handlers"
	"github.com/eventbook/event-booking-api/internal/notifier"
	"github.com/eventbook/event-booking-api/internal/store"
	"github.com/go-chi/chi/v5"
)

func main() {
	// Load Configuration
	cfg := config.LoadConfig()
	if cfg.JWTSecret == "" {
		log.Fatal("JWT_SECRET must be set")
	}

	// Connect to Database
	db := database.Connect(cfg)

	// Initialize Stores
	users := store.NewUserStore(db, cfg.BcryptCost)
	events := store.NewEventStore(db)
	registrations := store.NewRegistrationStore(db)

	// Initialize Notifier
	var registrationNotifier notifier.Notifier
	if cfg.DiscordBotToken != "" && cfg.DiscordNotificationsChannelID != "" {
		session, err := discordgo.New("Bot " + cfg.DiscordBotToken)
		if err != nil {
			log.Printf("Discord notifier not initialized: %v", err)
		} else {
			registrationNotifier = notifier.NewDiscordNotifier(session, cfg.DiscordNotificationsChannelID)
		}
	}

	// Initialize Handlers
	authHandler := auth.NewAuthHandler(cfg, users)
	eventHandler := handlers.NewEventHandler(events, authHandler)
	registrationHandler := handlers.NewRegistrationHandler(registrations, registrationNotifier, authHandler)

	// Initialize Router
	r := chi.NewRouter()

	// Register Routes
	handlers.RegisterRoutes(r, cfg, authHandler, eventHandler, registrationHandler)

	// Start Server
	log.Printf("Starting server on port %s", cfg.Port)
	if err := http.ListenAndServe(fmt.Sprintf(":%s", cfg.Port), r); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
