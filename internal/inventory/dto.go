package inventory

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/arunvel/stockkeep-backend/pkg/db/models"
)

// ItemDTO is the transport shape for an inventory item. LowStock is derived
// from the configured threshold at read time, not stored.
type ItemDTO struct {
	ID            uuid.UUID       `json:"id"`
	Name          string          `json:"name"`
	Category      string          `json:"category"`
	Quantity      int             `json:"quantity"`
	Price         decimal.Decimal `json:"price"`
	LowStock      bool            `json:"low_stock"`
	PDFFilename   *string         `json:"pdf_filename,omitempty"`
	ImageFilename *string         `json:"image_filename,omitempty"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

// CreateItemInput holds the validated payload to create an item.
type CreateItemInput struct {
	Name     string
	Category string
	Quantity int
	Price    decimal.Decimal
}

// UpdateItemInput holds optional mutation values for an item.
type UpdateItemInput struct {
	Name     *string
	Category *string
	Quantity *int
	Price    *decimal.Decimal
}

// ListInput captures the supported list filters.
type ListInput struct {
	Search   string
	Category string
}

// FromModel converts a persisted item into its transport shape.
func FromModel(m *models.InventoryItem, lowStockThreshold int) *ItemDTO {
	if m == nil {
		return nil
	}
	return &ItemDTO{
		ID:            m.ID,
		Name:          m.Name,
		Category:      m.Category,
		Quantity:      m.Quantity,
		Price:         m.Price,
		LowStock:      m.Quantity <= lowStockThreshold,
		PDFFilename:   m.PDFFilename,
		ImageFilename: m.ImageFilename,
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}
}

// FromModels converts a slice of items, preserving order.
func FromModels(items []models.InventoryItem, lowStockThreshold int) []ItemDTO {
	out := make([]ItemDTO, 0, len(items))
	for i := range items {
		out = append(out, *FromModel(&items[i], lowStockThreshold))
	}
	return out
}
