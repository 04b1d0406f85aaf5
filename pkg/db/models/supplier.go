package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// Supplier is a restocking contact. Categories lists the item categories the
// supplier covers; it is matched by exact string against item categories when
// routing low-stock notifications.
type Supplier struct {
	ID            uuid.UUID      `gorm:"type:uuid;primaryKey"`
	Name          string         `gorm:"type:text;not null"`
	ContactPerson string         `gorm:"column:contact_person;type:text;not null;default:''"`
	Phone         string         `gorm:"type:text;not null;default:''"`
	Email         string         `gorm:"type:text;not null"`
	Categories    pq.StringArray `gorm:"type:text[];not null;default:ARRAY[]::text[]"`
	Address       string         `gorm:"type:text;not null;default:''"`
	CreatedAt     time.Time      `gorm:"column:created_at;autoCreateTime"`
}
