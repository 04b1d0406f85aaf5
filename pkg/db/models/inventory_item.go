package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// InventoryItem is a stocked product. Category normally holds an
// enums.ItemCategory value but items created before the category list
// changed may carry a legacy free-text value.
type InventoryItem struct {
	ID            uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Name          string          `gorm:"type:text;not null"`
	Category      string          `gorm:"type:text;not null;default:''"`
	Quantity      int             `gorm:"not null;default:0"`
	Price         decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	PDFFilename   *string         `gorm:"column:pdf_filename"`
	ImageFilename *string         `gorm:"column:image_filename"`
	CreatedAt     time.Time       `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt     time.Time       `gorm:"column:updated_at;autoUpdateTime"`
}
