package inventory

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/arunvel/stockkeep-backend/pkg/db/models"
)

// Repository exposes inventory item persistence operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository constructs an inventory repo bound to the provided GORM DB.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// WithTx returns a repository bound to the provided transaction.
func (r *Repository) WithTx(tx *gorm.DB) *Repository {
	return &Repository{db: tx}
}

// Create inserts a new item row.
func (r *Repository) Create(ctx context.Context, item *models.InventoryItem) (*models.InventoryItem, error) {
	if err := r.db.WithContext(ctx).Create(item).Error; err != nil {
		return nil, err
	}
	return item, nil
}

// FindByID loads an item by its UUID.
func (r *Repository) FindByID(ctx context.Context, id uuid.UUID) (*models.InventoryItem, error) {
	var item models.InventoryItem
	if err := r.db.WithContext(ctx).First(&item, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

// List returns items matching the filters, newest first. Search matches the
// item name case-insensitively; category is an exact match.
func (r *Repository) List(ctx context.Context, input ListInput) ([]models.InventoryItem, error) {
	q := r.db.WithContext(ctx).Model(&models.InventoryItem{})
	if search := strings.TrimSpace(input.Search); search != "" {
		q = q.Where("LOWER(name) LIKE ?", "%"+strings.ToLower(search)+"%")
	}
	if input.Category != "" {
		q = q.Where("category = ?", input.Category)
	}

	var items []models.InventoryItem
	if err := q.Order("created_at DESC").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// ListAll returns every item ordered by name, for report rendering.
func (r *Repository) ListAll(ctx context.Context) ([]models.InventoryItem, error) {
	var items []models.InventoryItem
	if err := r.db.WithContext(ctx).
		Order("name ASC").
		Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// ListLowStock returns items at or below the threshold, most depleted first.
func (r *Repository) ListLowStock(ctx context.Context, threshold int) ([]models.InventoryItem, error) {
	var items []models.InventoryItem
	if err := r.db.WithContext(ctx).
		Where("quantity <= ?", threshold).
		Order("quantity ASC").
		Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// Save persists all fields of an existing item row.
func (r *Repository) Save(ctx context.Context, item *models.InventoryItem) (*models.InventoryItem, error) {
	if err := r.db.WithContext(ctx).Save(item).Error; err != nil {
		return nil, err
	}
	return item, nil
}

// Delete removes an item by ID.
func (r *Repository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&models.InventoryItem{}).Error
}

// CountAll returns the total number of items.
func (r *Repository) CountAll(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.InventoryItem{}).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// CountLowStock returns how many items sit at or below the threshold.
func (r *Repository) CountLowStock(ctx context.Context, threshold int) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.InventoryItem{}).
		Where("quantity <= ?", threshold).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// TotalStockValue returns the sum of quantity times unit price across all items.
func (r *Repository) TotalStockValue(ctx context.Context) (decimal.Decimal, error) {
	var total decimal.NullDecimal
	if err := r.db.WithContext(ctx).
		Model(&models.InventoryItem{}).
		Select("COALESCE(SUM(quantity * price), 0)").
		Scan(&total).Error; err != nil {
		return decimal.Zero, err
	}
	if !total.Valid {
		return decimal.Zero, nil
	}
	return total.Decimal, nil
}

// CategoryCount pairs a category with the number of items in it.
type CategoryCount struct {
	Category string `json:"category"`
	Count    int64  `json:"count"`
}

// CategoryDistribution returns item counts per category, largest first.
func (r *Repository) CategoryDistribution(ctx context.Context) ([]CategoryCount, error) {
	var out []CategoryCount
	if err := r.db.WithContext(ctx).
		Model(&models.InventoryItem{}).
		Select("category, COUNT(*) AS count").
		Group("category").
		Order("count DESC").
		Scan(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}
