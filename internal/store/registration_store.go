package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/eventbook/event-booking-api/internal/models"
	"github.com/eventbook/event-booking-api/pkg/apperrors"
	"gorm.io/gorm"
)

// RegistrationStore holds event registrations. Creation is open to
// anonymous callers; the list operations are restricted to the owner
// of the referenced event.
type RegistrationStore struct {
	db *gorm.DB
}

func NewRegistrationStore(db *gorm.DB) *RegistrationStore {
	return &RegistrationStore{db: db}
}

// EventSummary is the projection of an event attached to registrations
// in the owner view.
type EventSummary struct {
	ID       uint      `json:"id"`
	Title    string    `json:"title"`
	DateTime time.Time `json:"dateTime"`
	Location string    `json:"location"`
	IsPaid   bool      `json:"isPaid"`
	Price    float64   `json:"price"`
}

// OwnerRegistration is a registration annotated with its parent event.
type OwnerRegistration struct {
	models.Registration
	Event EventSummary `json:"event"`
}

// Create records a registration for an existing event. No identity is
// required. Tickets defaults to 1 and the registration time is stamped
// here, never changed afterwards. The referenced event is returned so
// callers can notify without a second lookup.
func (s *RegistrationStore) Create(ctx context.Context, eventID uint, name, email string, tickets int) (*models.Registration, *models.Event, error) {
	if eventID == 0 || name == "" || email == "" {
		return nil, nil, fmt.Errorf("%w: eventId, name, and email are required", apperrors.ErrInvalidInput)
	}

	var event models.Event
	if err := s.db.WithContext(ctx).First(&event, eventID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, fmt.Errorf("%w: event not found", apperrors.ErrNotFound)
		}
		return nil, nil, err
	}

	if tickets <= 0 {
		tickets = 1
	}
	registration := &models.Registration{
		EventID:      eventID,
		Name:         name,
		Email:        email,
		Tickets:      tickets,
		RegisteredAt: time.Now(),
	}
	if err := s.db.WithContext(ctx).Create(registration).Error; err != nil {
		return nil, nil, err
	}
	return registration, &event, nil
}

// ListForEvent returns the registrations for one event, newest first.
// Only the event owner may call it; a missing event and a foreign one
// look identical.
func (s *RegistrationStore) ListForEvent(ctx context.Context, userID, eventID uint) ([]models.Registration, error) {
	var event models.Event
	if err := s.db.WithContext(ctx).Where("id = ? AND user_id = ?", eventID, userID).First(&event).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: event not found or not authorized", apperrors.ErrNotFound)
		}
		return nil, err
	}

	registrations := make([]models.Registration, 0)
	if err := s.db.WithContext(ctx).Where("event_id = ?", eventID).Order("registered_at DESC").Find(&registrations).Error; err != nil {
		return nil, err
	}
	return registrations, nil
}

// ListForOwner returns every registration across the events owned by
// userID, each annotated with its parent event.
func (s *RegistrationStore) ListForOwner(ctx context.Context, userID uint) ([]OwnerRegistration, error) {
	var events []models.Event
	if err := s.db.WithContext(ctx).Where("user_id = ?", userID).Find(&events).Error; err != nil {
		return nil, err
	}

	summaries := make(map[uint]EventSummary, len(events))
	eventIDs := make([]uint, 0, len(events))
	for _, e := range events {
		summaries[e.ID] = EventSummary{
			ID:       e.ID,
			Title:    e.Title,
			DateTime: e.DateTime,
			Location: e.Location,
			IsPaid:   e.IsPaid,
			Price:    e.Price,
		}
		eventIDs = append(eventIDs, e.ID)
	}

	result := make([]OwnerRegistration, 0)
	if len(eventIDs) == 0 {
		return result, nil
	}

	var registrations []models.Registration
	if err := s.db.WithContext(ctx).Where("event_id IN ?", eventIDs).Order("registered_at DESC").Find(&registrations).Error; err != nil {
		return nil, err
	}
	for _, r := range registrations {
		result = append(result, OwnerRegistration{
			Registration: r,
			Event:        summaries[r.EventID],
		})
	}
	return result, nil
}
