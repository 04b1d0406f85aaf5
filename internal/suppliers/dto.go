package suppliers

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/arunvel/stockkeep-backend/pkg/db/models"
)

// SupplierDTO is the transport shape for a supplier contact.
type SupplierDTO struct {
	ID            uuid.UUID `json:"id"`
	Name          string    `json:"name"`
	ContactPerson string    `json:"contact_person"`
	Phone         string    `json:"phone"`
	Email         string    `json:"email"`
	Categories    []string  `json:"categories"`
	Address       string    `json:"address"`
	CreatedAt     time.Time `json:"created_at"`
}

// CreateSupplierInput holds the validated payload to register a supplier.
type CreateSupplierInput struct {
	Name          string
	ContactPerson string
	Phone         string
	Email         string
	Categories    []string
	Address       string
}

// UpdateSupplierInput holds optional mutation values for a supplier.
type UpdateSupplierInput struct {
	Name          *string
	ContactPerson *string
	Phone         *string
	Email         *string
	Categories    *[]string
	Address       *string
}

// FromModel converts a persisted supplier into its transport shape.
func FromModel(m *models.Supplier) *SupplierDTO {
	if m == nil {
		return nil
	}
	return &SupplierDTO{
		ID:            m.ID,
		Name:          m.Name,
		ContactPerson: m.ContactPerson,
		Phone:         m.Phone,
		Email:         m.Email,
		Categories:    append([]string(nil), m.Categories...),
		Address:       m.Address,
		CreatedAt:     m.CreatedAt,
	}
}

// FromModels converts a slice of suppliers, preserving order.
func FromModels(list []models.Supplier) []SupplierDTO {
	out := make([]SupplierDTO, 0, len(list))
	for i := range list {
		out = append(out, *FromModel(&list[i]))
	}
	return out
}

func toStringArray(values []string) pq.StringArray {
	if values == nil {
		return pq.StringArray{}
	}
	return pq.StringArray(values)
}
