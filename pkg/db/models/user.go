package models

import (
	"time"

	"github.com/arunvel/stockkeep-backend/pkg/enums"
	"github.com/google/uuid"
)

// User represents an application account. Usernames are unique
// case-insensitively; the index lives on lower(username).
type User struct {
	ID           uuid.UUID      `gorm:"type:uuid;primaryKey"`
	Username     string         `gorm:"type:text;not null"`
	PasswordHash string         `gorm:"column:password_hash;not null"`
	Role         enums.UserRole `gorm:"type:text;not null;default:'user'"`
	CreatedAt    time.Time      `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt    time.Time      `gorm:"column:updated_at;autoUpdateTime"`
}
