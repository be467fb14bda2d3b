package models

import (
	"fmt"
	"time"

	"gorm.io/gorm"
)

// Reminder lead options supported by the web client.
const (
	ReminderHourBefore = "1 hour before"
	ReminderDayBefore  = "1 day before"
	ReminderWeekBefore = "1 week before"

	DefaultReminder = ReminderHourBefore
)

type Event struct {
	ID        uint           `gorm:"primarykey" json:"id"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	Title       string    `json:"title"`
	Description string    `json:"description"`
	Location    string    `json:"location"`
	DateTime    time.Time `json:"dateTime"`
	Reminder    string    `json:"reminder"`
	IsPaid      bool      `json:"isPaid"`
	Price       float64   `json:"price"`
	UserID      uint      `gorm:"index" json:"userId"`
}

// ReminderLead returns how far ahead of DateTime the reminder fires.
func (e *Event) ReminderLead() time.Duration {
	switch e.Reminder {
	case ReminderDayBefore:
		return 24 * time.Hour
	case ReminderWeekBefore:
		return 7 * 24 * time.Hour
	default:
		return time.Hour
	}
}

var dateTimeLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04", // datetime-local inputs submit this form
}

// ParseDateTime parses the dateTime string accepted on event create/update.
func ParseDateTime(s string) (time.Time, error) {
	for _, layout := range dateTimeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid dateTime %q", s)
}
