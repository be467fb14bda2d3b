package models

import (
	"time"

	"gorm.io/gorm"
)

const (
	RoleHost        = "host"
	RoleParticipant = "participant"
)

type User struct {
	ID        uint           `gorm:"primarykey" json:"id"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	Username string `gorm:"uniqueIndex" json:"username"`
	Password string `json:"-"` // bcrypt hash, never serialized
	Role     string `json:"role"`
	Name     string `json:"name"`
}
