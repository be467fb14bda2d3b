package models

import (
	"time"

	"gorm.io/gorm"
)

// Registration is append-only: rows are never updated or deleted, and
// they deliberately survive deletion of their event as an audit trail.
type Registration struct {
	ID        uint           `gorm:"primarykey" json:"id"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	EventID      uint      `gorm:"index" json:"eventId"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	Tickets      int       `json:"tickets"`
	RegisteredAt time.Time `json:"registeredAt"`
}
