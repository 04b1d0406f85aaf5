package inventory

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/arunvel/stockkeep-backend/pkg/config"
	"github.com/arunvel/stockkeep-backend/pkg/db/models"
	"github.com/arunvel/stockkeep-backend/pkg/logger"
	"github.com/arunvel/stockkeep-backend/pkg/storage/local"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	conn, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := conn.AutoMigrate(&models.InventoryItem{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return conn
}

// stubRenderer writes a marker file so PDFExists checks behave like the real
// renderer, and can be told to fail.
type stubRenderer struct {
	calls []string
	fail  error
}

func (r *stubRenderer) ItemSheet(item *models.InventoryItem, _, outPath string) error {
	r.calls = append(r.calls, filepath.Base(outPath))
	if r.fail != nil {
		return r.fail
	}
	return os.WriteFile(outPath, []byte("%PDF-1.4 stub"), 0o644)
}

func newTestStore(t *testing.T) *local.Store {
	t.Helper()
	root := t.TempDir()
	store, err := local.New(config.StorageConfig{
		PDFDir:   filepath.Join(root, "pdfs"),
		ImageDir: filepath.Join(root, "images"),
	})
	if err != nil {
		t.Fatalf("new store: %v", err)
	}
	return store
}

func newTestService(t *testing.T) (Service, *Repository, *stubRenderer, *local.Store) {
	t.Helper()
	conn := openTestDB(t)
	repo := NewRepository(conn)
	renderer := &stubRenderer{}
	store := newTestStore(t)
	svc, err := NewService(ServiceParams{
		Repo:              repo,
		PDFRenderer:       renderer,
		Files:             store,
		LowStockThreshold: 5,
		Logger:            logger.NewNop(),
	})
	if err != nil {
		t.Fatalf("new service: %v", err)
	}
	return svc, repo, renderer, store
}

func mustCreateItem(t *testing.T, repo *Repository, name, category string, qty int) *models.InventoryItem {
	t.Helper()
	item := &models.InventoryItem{
		ID:       uuid.New(),
		Name:     name,
		Category: category,
		Quantity: qty,
		Price:    decimal.RequireFromString("10.00"),
	}
	if _, err := repo.Create(context.Background(), item); err != nil {
		t.Fatalf("create item: %v", err)
	}
	return item
}
