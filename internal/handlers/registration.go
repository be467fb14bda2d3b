package handlers

import (
	"context"
	"log"

	"github.com/eventbook/event-booking-api/internal/auth"
	"github.com/eventbook/event-booking-api/internal/models"
	"github.com/eventbook/event-booking-api/internal/notifier"
	"github.com/eventbook/event-booking-api/internal/store"
	"github.com/eventbook/event-booking-api/pkg/apperrors"
)

type RegistrationHandler struct {
	registrations *store.RegistrationStore
	notifier      notifier.Notifier
	authHandler   *auth.AuthHandler
}

func NewRegistrationHandler(registrations *store.RegistrationStore, notifier notifier.Notifier, authHandler *auth.AuthHandler) *RegistrationHandler {
	return &RegistrationHandler{registrations: registrations, notifier: notifier, authHandler: authHandler}
}

type CreateRegistrationRequest struct {
	Body struct {
		EventID uint   `json:"eventId"`
		Name    string `json:"name"`
		Email   string `json:"email"`
		Tickets int    `json:"tickets,omitempty" doc:"Defaults to 1"`
	}
}

type RegistrationResponse struct {
	Body models.Registration
}

// HandleCreate registers an attendee for an event. This endpoint is
// intentionally open: no token is required.
func (h *RegistrationHandler) HandleCreate(ctx context.Context, input *CreateRegistrationRequest) (*RegistrationResponse, error) {
	registration, event, err := h.registrations.Create(ctx, input.Body.EventID, input.Body.Name, input.Body.Email, input.Body.Tickets)
	if err != nil {
		return nil, apperrors.ToHuma(err)
	}

	if h.notifier != nil {
		if err := h.notifier.NotifyRegistration(*event, *registration); err != nil {
			log.Printf("Failed to notify registration: %v", err)
		}
	}

	return &RegistrationResponse{Body: *registration}, nil
}

type ListMyEventRegistrationsRequest struct {
	auth.AuthInput
}

type ListMyEventRegistrationsResponse struct {
	Body []store.OwnerRegistration
}

// HandleListMyEvents returns every registration across the caller's
// events, annotated with the parent event.
func (h *RegistrationHandler) HandleListMyEvents(ctx context.Context, input *ListMyEventRegistrationsRequest) (*ListMyEventRegistrationsResponse, error) {
	userID, err := h.authHandler.Authorize(ctx, input.Authorization)
	if err != nil {
		return nil, err
	}

	registrations, err := h.registrations.ListForOwner(ctx, userID)
	if err != nil {
		return nil, apperrors.ToHuma(err)
	}
	return &ListMyEventRegistrationsResponse{Body: registrations}, nil
}

type ListEventRegistrationsRequest struct {
	auth.AuthInput
	EventID uint `path:"eventId"`
}

type ListEventRegistrationsResponse struct {
	Body []models.Registration
}

func (h *RegistrationHandler) HandleListForEvent(ctx context.Context, input *ListEventRegistrationsRequest) (*ListEventRegistrationsResponse, error) {
	userID, err := h.authHandler.Authorize(ctx, input.Authorization)
	if err != nil {
		return nil, err
	}

	registrations, err := h.registrations.ListForEvent(ctx, userID, input.EventID)
	if err != nil {
		return nil, apperrors.ToHuma(err)
	}
	return &ListEventRegistrationsResponse{Body: registrations}, nil
}
