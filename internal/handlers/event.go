package handlers

import (
	"context"

	"github.com/eventbook/event-booking-api/internal/auth"
	"github.com/eventbook/event-booking-api/internal/models"
	"github.com/eventbook/event-booking-api/internal/store"
	"github.com/eventbook/event-booking-api/pkg/apperrors"
)

type EventHandler struct {
	events      *store.EventStore
	authHandler *auth.AuthHandler
}

func NewEventHandler(events *store.EventStore, authHandler *auth.AuthHandler) *EventHandler {
	return &EventHandler{events: events, authHandler: authHandler}
}

type ListEventsRequest struct {
	auth.AuthInput
	All bool `query:"all" doc:"Return every event (public browse view)"`
}

type ListEventsResponse struct {
	Body []models.Event
}

// HandleList serves both views: ?all=true needs no identity, otherwise
// the caller must authenticate and sees only their own events.
func (h *EventHandler) HandleList(ctx context.Context, input *ListEventsRequest) (*ListEventsResponse, error) {
	var userID uint
	if !input.All {
		id, err := h.authHandler.Authorize(ctx, input.Authorization)
		if err != nil {
			return nil, err
		}
		userID = id
	}

	events, err := h.events.List(ctx, userID, input.All)
	if err != nil {
		return nil, apperrors.ToHuma(err)
	}
	return &ListEventsResponse{Body: events}, nil
}

type CreateEventRequest struct {
	auth.AuthInput
	Body struct {
		Title       string  `json:"title"`
		Description string  `json:"description"`
		Location    string  `json:"location"`
		DateTime    string  `json:"dateTime" doc:"RFC 3339 or datetime-local"`
		Reminder    string  `json:"reminder,omitempty" doc:"Defaults to '1 hour before'"`
		IsPaid      bool    `json:"isPaid,omitempty"`
		Price       float64 `json:"price,omitempty" doc:"Ignored (forced to 0) unless isPaid"`
	}
}

type EventResponse struct {
	Body models.Event
}

func (h *EventHandler) HandleCreate(ctx context.Context, input *CreateEventRequest) (*EventResponse, error) {
	userID, err := h.authHandler.Authorize(ctx, input.Authorization)
	if err != nil {
		return nil, err
	}

	event, err := h.events.Create(ctx, userID, store.EventFields{
		Title:       input.Body.Title,
		Description: input.Body.Description,
		Location:    input.Body.Location,
		DateTime:    input.Body.DateTime,
		Reminder:    input.Body.Reminder,
		IsPaid:      input.Body.IsPaid,
		Price:       input.Body.Price,
	})
	if err != nil {
		return nil, apperrors.ToHuma(err)
	}
	return &EventResponse{Body: *event}, nil
}

type UpdateEventRequest struct {
	auth.AuthInput
	ID   uint `path:"id"`
	Body struct {
		Title       *string  `json:"title,omitempty"`
		Description *string  `json:"description,omitempty"`
		Location    *string  `json:"location,omitempty"`
		DateTime    *string  `json:"dateTime,omitempty"`
		Reminder    *string  `json:"reminder,omitempty"`
		IsPaid      *bool    `json:"isPaid,omitempty"`
		Price       *float64 `json:"price,omitempty"`
	}
}

func (h *EventHandler) HandleUpdate(ctx context.Context, input *UpdateEventRequest) (*EventResponse, error) {
	userID, err := h.authHandler.Authorize(ctx, input.Authorization)
	if err != nil {
		return nil, err
	}

	event, err := h.events.Update(ctx, userID, input.ID, store.UpdateEventParams{
		Title:       input.Body.Title,
		Description: input.Body.Description,
		Location:    input.Body.Location,
		DateTime:    input.Body.DateTime,
		Reminder:    input.Body.Reminder,
		IsPaid:      input.Body.IsPaid,
		Price:       input.Body.Price,
	})
	if err != nil {
		return nil, apperrors.ToHuma(err)
	}
	return &EventResponse{Body: *event}, nil
}

type DeleteEventRequest struct {
	auth.AuthInput
	ID uint `path:"id"`
}

func (h *EventHandler) HandleDelete(ctx context.Context, input *DeleteEventRequest) (*struct{}, error) {
	userID, err := h.authHandler.Authorize(ctx, input.Authorization)
	if err != nil {
		return nil, err
	}

	if err := h.events.Delete(ctx, userID, input.ID); err != nil {
		return nil, apperrors.ToHuma(err)
	}
	return nil, nil
}
