package handlers

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	"github.com/eventbook/event-booking-api/internal/auth"
	"github.com/eventbook/event-booking-api/internal/config"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func RegisterRoutes(r *chi.Mux, cfg *config.Config, authHandler *auth.AuthHandler, eventHandler *EventHandler, registrationHandler *RegistrationHandler) {
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	if cfg.EnableCORS {
		r.Use(corsMiddleware)
	}

	// Initialize Huma API
	apiConfig := huma.DefaultConfig("Event Booking API", "1.0.0")
	apiConfig.Components.SecuritySchemes = map[string]*huma.SecurityScheme{
		"bearerAuth": {
			Type:         "http",
			Scheme:       "bearer",
			BearerFormat: "JWT",
		},
	}
	api := humachi.New(r, apiConfig)

	bearer := []map[string][]string{{"bearerAuth": {}}}

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("OK"))
	})

	// Auth routes
	huma.Register(api, huma.Operation{
		OperationID:   "register",
		Method:        http.MethodPost,
		Path:          "/register",
		Summary:       "Register a new user",
		DefaultStatus: http.StatusCreated,
	}, authHandler.HandleSignup)
	huma.Post(api, "/login", authHandler.HandleLogin)

	// Event routes
	huma.Get(api, "/events", eventHandler.HandleList)
	huma.Register(api, huma.Operation{
		OperationID:   "create-event",
		Method:        http.MethodPost,
		Path:          "/events",
		Summary:       "Create an event",
		DefaultStatus: http.StatusCreated,
		Security:      bearer,
	}, eventHandler.HandleCreate)
	huma.Put(api, "/events/{id}", eventHandler.HandleUpdate, func(o *huma.Operation) {
		o.Security = bearer
	})
	huma.Register(api, huma.Operation{
		OperationID:   "delete-event",
		Method:        http.MethodDelete,
		Path:          "/events/{id}",
		Summary:       "Delete an event",
		DefaultStatus: http.StatusNoContent,
		Security:      bearer,
	}, eventHandler.HandleDelete)

	// Registration routes
	huma.Register(api, huma.Operation{
		OperationID:   "create-registration",
		Method:        http.MethodPost,
		Path:          "/registrations",
		Summary:       "Register for an event",
		DefaultStatus: http.StatusCreated,
	}, registrationHandler.HandleCreate)
	huma.Get(api, "/registrations/my-events", registrationHandler.HandleListMyEvents, func(o *huma.Operation) {
		o.Security = bearer
	})
	huma.Get(api, "/registrations/event/{eventId}", registrationHandler.HandleListForEvent, func(o *huma.Operation) {
		o.Security = bearer
	})
}

// corsMiddleware opens the API to any origin, matching the browser
// client's cross-origin deployment.
func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}
		next.ServeHTTP(w, r)
	})
}
