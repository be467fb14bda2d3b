package client

import "time"

// Event mirrors the server's event representation.
type Event struct {
	ID          uint      `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Location    string    `json:"location"`
	DateTime    time.Time `json:"dateTime"`
	Reminder    string    `json:"reminder"`
	IsPaid      bool      `json:"isPaid"`
	Price       float64   `json:"price"`
	UserID      uint      `json:"userId"`
}

// EventDraft is the create payload. DateTime is sent as a string and
// parsed server-side.
type EventDraft struct {
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Location    string  `json:"location"`
	DateTime    string  `json:"dateTime"`
	Reminder    string  `json:"reminder,omitempty"`
	IsPaid      bool    `json:"isPaid,omitempty"`
	Price       float64 `json:"price,omitempty"`
}

// EventPatch updates only the fields that are set.
type EventPatch struct {
	Title       *string  `json:"title,omitempty"`
	Description *string  `json:"description,omitempty"`
	Location    *string  `json:"location,omitempty"`
	DateTime    *string  `json:"dateTime,omitempty"`
	Reminder    *string  `json:"reminder,omitempty"`
	IsPaid      *bool    `json:"isPaid,omitempty"`
	Price       *float64 `json:"price,omitempty"`
}

type Registration struct {
	ID           uint      `json:"id"`
	EventID      uint      `json:"eventId"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	Tickets      int       `json:"tickets"`
	RegisteredAt time.Time `json:"registeredAt"`
}

// EventSummary is the event projection attached to owner-view
// registrations.
type EventSummary struct {
	ID       uint      `json:"id"`
	Title    string    `json:"title"`
	DateTime time.Time `json:"dateTime"`
	Location string    `json:"location"`
	IsPaid   bool      `json:"isPaid"`
	Price    float64   `json:"price"`
}

type OwnerRegistration struct {
	Registration
	Event EventSummary `json:"event"`
}
