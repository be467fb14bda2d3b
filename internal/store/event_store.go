package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/eventbook/event-booking-api/internal/models"
	"github.com/eventbook/event-booking-api/pkg/apperrors"
	"gorm.io/gorm"
)

// EventStore holds events and enforces the ownership rules: anyone may
// browse, only the owning user may mutate. Ownership checks are folded
// into the write statements themselves (WHERE id AND user_id) so there
// is no window between check and mutation.
type EventStore struct {
	db *gorm.DB
}

func NewEventStore(db *gorm.DB) *EventStore {
	return &EventStore{db: db}
}

// EventFields carries the create payload. DateTime is the raw string
// from the client and must parse.
type EventFields struct {
	Title       string
	Description string
	Location    string
	DateTime    string
	Reminder    string
	IsPaid      bool
	Price       float64
}

// UpdateEventParams carries a partial update; nil means "leave as is".
type UpdateEventParams struct {
	Title       *string
	Description *string
	Location    *string
	DateTime    *string
	Reminder    *string
	IsPaid      *bool
	Price       *float64
}

// List returns all events when all is true (public browse view), or
// the events owned by userID otherwise. Both are sorted by start time.
func (s *EventStore) List(ctx context.Context, userID uint, all bool) ([]models.Event, error) {
	q := s.db.WithContext(ctx).Order("date_time ASC")
	if !all {
		q = q.Where("user_id = ?", userID)
	}
	events := make([]models.Event, 0)
	if err := q.Find(&events).Error; err != nil {
		return nil, err
	}
	return events, nil
}

func (s *EventStore) Create(ctx context.Context, userID uint, fields EventFields) (*models.Event, error) {
	if fields.Title == "" || fields.Description == "" || fields.Location == "" || fields.DateTime == "" {
		return nil, fmt.Errorf("%w: title, description, location, and dateTime are required", apperrors.ErrInvalidInput)
	}
	dt, err := models.ParseDateTime(fields.DateTime)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid dateTime", apperrors.ErrInvalidInput)
	}
	if fields.Price < 0 {
		return nil, fmt.Errorf("%w: price cannot be negative", apperrors.ErrInvalidInput)
	}

	reminder := fields.Reminder
	if reminder == "" {
		reminder = models.DefaultReminder
	}
	price := fields.Price
	if !fields.IsPaid {
		// Free events always store price 0, whatever was submitted.
		price = 0
	}

	event := &models.Event{
		Title:       fields.Title,
		Description: fields.Description,
		Location:    fields.Location,
		DateTime:    dt,
		Reminder:    reminder,
		IsPaid:      fields.IsPaid,
		Price:       price,
		UserID:      userID,
	}
	if err := s.db.WithContext(ctx).Create(event).Error; err != nil {
		return nil, err
	}
	return event, nil
}

// Update applies the supplied fields to the event, but only when it is
// owned by userID. A missing event and a foreign one are reported the
// same way.
func (s *EventStore) Update(ctx context.Context, userID, eventID uint, params UpdateEventParams) (*models.Event, error) {
	updates := map[string]any{}
	if params.Title != nil {
		updates["title"] = *params.Title
	}
	if params.Description != nil {
		updates["description"] = *params.Description
	}
	if params.Location != nil {
		updates["location"] = *params.Location
	}
	if params.DateTime != nil {
		dt, err := models.ParseDateTime(*params.DateTime)
		if err != nil {
			return nil, fmt.Errorf("%w: invalid dateTime", apperrors.ErrInvalidInput)
		}
		updates["date_time"] = dt
	}
	if params.Reminder != nil {
		updates["reminder"] = *params.Reminder
	}
	if params.IsPaid != nil {
		updates["is_paid"] = *params.IsPaid
	}
	if params.Price != nil {
		if *params.Price < 0 {
			return nil, fmt.Errorf("%w: price cannot be negative", apperrors.ErrInvalidInput)
		}
		updates["price"] = *params.Price
	}

	if len(updates) > 0 {
		res := s.db.WithContext(ctx).Model(&models.Event{}).
			Where("id = ? AND user_id = ?", eventID, userID).
			Updates(updates)
		if res.Error != nil {
			return nil, res.Error
		}
		if res.RowsAffected == 0 {
			return nil, fmt.Errorf("%w: event not found or not authorized", apperrors.ErrNotFound)
		}

		// Re-assert the price invariant: unpaid events carry price 0.
		if err := s.db.WithContext(ctx).Model(&models.Event{}).
			Where("id = ? AND user_id = ? AND is_paid = ?", eventID, userID, false).
			Update("price", 0).Error; err != nil {
			return nil, err
		}
	}

	var event models.Event
	if err := s.db.WithContext(ctx).Where("id = ? AND user_id = ?", eventID, userID).First(&event).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: event not found or not authorized", apperrors.ErrNotFound)
		}
		return nil, err
	}
	return &event, nil
}

// Delete removes the event when owned by userID. Registrations for the
// event are left in place.
func (s *EventStore) Delete(ctx context.Context, userID, eventID uint) error {
	res := s.db.WithContext(ctx).Where("id = ? AND user_id = ?", eventID, userID).Delete(&models.Event{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("%w: event not found or not authorized", apperrors.ErrNotFound)
	}
	return nil
}
