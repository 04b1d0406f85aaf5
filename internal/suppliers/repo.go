package suppliers

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/arunvel/stockkeep-backend/pkg/db/models"
)

// Repository exposes supplier persistence operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository constructs a suppliers repo bound to the provided GORM DB.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// WithTx returns a repository bound to the provided transaction.
func (r *Repository) WithTx(tx *gorm.DB) *Repository {
	return &Repository{db: tx}
}

// Create inserts a new supplier row.
func (r *Repository) Create(ctx context.Context, supplier *models.Supplier) (*models.Supplier, error) {
	if err := r.db.WithContext(ctx).Create(supplier).Error; err != nil {
		return nil, err
	}
	return supplier, nil
}

// FindByID loads a supplier by its UUID.
func (r *Repository) FindByID(ctx context.Context, id uuid.UUID) (*models.Supplier, error) {
	var supplier models.Supplier
	if err := r.db.WithContext(ctx).First(&supplier, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &supplier, nil
}

// List returns all suppliers ordered by name.
func (r *Repository) List(ctx context.Context) ([]models.Supplier, error) {
	var list []models.Supplier
	if err := r.db.WithContext(ctx).
		Order("name ASC").
		Find(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}

// FindByCategory returns suppliers whose categories array contains the exact
// category string. Runs on the Postgres array operator.
func (r *Repository) FindByCategory(ctx context.Context, category string) ([]models.Supplier, error) {
	var list []models.Supplier
	if err := r.db.WithContext(ctx).
		Where("? = ANY(categories)", category).
		Order("name ASC").
		Find(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}

// Save persists all fields of an existing supplier row.
func (r *Repository) Save(ctx context.Context, supplier *models.Supplier) (*models.Supplier, error) {
	if err := r.db.WithContext(ctx).Save(supplier).Error; err != nil {
		return nil, err
	}
	return supplier, nil
}

// Delete removes a supplier by ID.
func (r *Repository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&models.Supplier{}).Error
}

// CountAll returns the total number of suppliers.
func (r *Repository) CountAll(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.Supplier{}).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
