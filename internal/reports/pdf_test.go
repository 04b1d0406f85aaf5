package reports

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/arunvel/stockkeep-backend/pkg/db/models"
)

func testItem(name string, qty int) models.InventoryItem {
	return models.InventoryItem{
		ID:        uuid.New(),
		Name:      name,
		Category:  "Electronics",
		Quantity:  qty,
		Price:     decimal.RequireFromString("149.99"),
		CreatedAt: time.Date(2026, 1, 15, 10, 30, 0, 0, time.UTC),
	}
}

func requirePDF(t *testing.T, path string) {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.True(t, len(data) > 4, "pdf should not be empty")
	require.Equal(t, "%PDF", string(data[:4]))
}

func TestItemSheetWritesPDF(t *testing.T) {
	gen := NewGenerator("₹")
	item := testItem("USB C Hub", 12)
	out := filepath.Join(t.TempDir(), "item.pdf")

	require.NoError(t, gen.ItemSheet(&item, "", out))
	requirePDF(t, out)
}

func TestItemSheetMissingImageRendersPlaceholder(t *testing.T) {
	gen := NewGenerator("$")
	item := testItem("Ledger Book", 3)
	dir := t.TempDir()

	plain := filepath.Join(dir, "plain.pdf")
	require.NoError(t, gen.ItemSheet(&item, "", plain))
	requirePDF(t, plain)

	withPlaceholder := filepath.Join(dir, "placeholder.pdf")
	require.NoError(t, gen.ItemSheet(&item, filepath.Join(dir, "nope.png"), withPlaceholder))
	requirePDF(t, withPlaceholder)

	plainData, err := os.ReadFile(plain)
	require.NoError(t, err)
	placeholderData, err := os.ReadFile(withPlaceholder)
	require.NoError(t, err)
	require.Greater(t, len(placeholderData), len(plainData),
		"missing image should add a placeholder line")
}

func TestItemSheetRejectsZeroID(t *testing.T) {
	gen := NewGenerator("₹")
	item := testItem("Ghost Item", 1)
	item.ID = uuid.Nil
	out := filepath.Join(t.TempDir(), "item.pdf")

	require.Error(t, gen.ItemSheet(&item, "", out))
	_, err := os.Stat(out)
	require.True(t, os.IsNotExist(err), "nothing should be written for an item without an id")
}

func TestStockReportWritesPDF(t *testing.T) {
	gen := NewGenerator("₹")
	items := []models.InventoryItem{
		testItem("USB C Hub", 12),
		testItem("HDMI Cable", 2),
	}
	out := filepath.Join(t.TempDir(), "report.pdf")

	require.NoError(t, gen.StockReport(items, 5, time.Now(), out))
	requirePDF(t, out)
}

func TestStockReportHandlesEmptyInventory(t *testing.T) {
	gen := NewGenerator("₹")
	out := filepath.Join(t.TempDir(), "report.pdf")

	require.NoError(t, gen.StockReport(nil, 5, time.Now(), out))
	requirePDF(t, out)
}
