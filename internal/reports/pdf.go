// Package reports renders PDF artifacts for inventory items and the
// warehouse-wide stock report.
package reports

import (
	"fmt"
	"os"
	"time"

	"github.com/go-pdf/fpdf"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/arunvel/stockkeep-backend/pkg/db/models"
)

// Generator renders PDFs with a consistent layout and currency formatting.
type Generator struct {
	currencySymbol string
}

// NewGenerator builds a Generator using the configured currency symbol.
func NewGenerator(currencySymbol string) *Generator {
	if currencySymbol == "" {
		currencySymbol = "₹"
	}
	return &Generator{currencySymbol: currencySymbol}
}

// ItemSheet renders the single-item detail sheet to outPath. When imagePath
// points at an existing file it is embedded below the detail table; a missing
// file degrades to a placeholder line. An item without an ID is rejected
// before anything touches disk.
func (g *Generator) ItemSheet(item *models.InventoryItem, imagePath, outPath string) error {
	if item.ID == uuid.Nil {
		return fmt.Errorf("item id is required")
	}

	pdf := fpdf.New("P", "mm", "Letter", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 18)
	pdf.CellFormat(0, 12, tr("Inventory Item: "+item.Name), "", 1, "C", false, 0, "")
	pdf.Ln(4)

	rows := [][2]string{
		{"Item ID", item.ID.String()},
		{"Name", item.Name},
		{"Category", item.Category},
		{"Quantity", fmt.Sprintf("%d", item.Quantity)},
		{"Unit Price", g.money(item.Price)},
		{"Stock Value", g.money(item.Price.Mul(decimal.NewFromInt(int64(item.Quantity))))},
		{"Created", item.CreatedAt.Format("2006-01-02 15:04")},
	}

	pdf.SetFont("Helvetica", "", 11)
	for _, row := range rows {
		pdf.SetFont("Helvetica", "B", 11)
		pdf.CellFormat(45, 9, tr(row[0]), "1", 0, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 11)
		pdf.CellFormat(0, 9, tr(row[1]), "1", 1, "L", false, 0, "")
	}

	if imagePath != "" {
		pdf.Ln(6)
		if _, err := os.Stat(imagePath); err == nil {
			pdf.ImageOptions(imagePath, 55, pdf.GetY(), 100, 0, true,
				fpdf.ImageOptions{ReadDpi: true}, 0, "")
		} else {
			pdf.SetFont("Helvetica", "I", 10)
			pdf.CellFormat(0, 8, tr("Image unavailable"), "", 1, "C", false, 0, "")
		}
	}

	if err := pdf.OutputFileAndClose(outPath); err != nil {
		return fmt.Errorf("write item pdf: %w", err)
	}
	return nil
}

// StockReport renders the full inventory report to outPath. Items at or below
// the threshold are flagged in the quantity column.
func (g *Generator) StockReport(items []models.InventoryItem, lowStockThreshold int, generatedAt time.Time, outPath string) error {
	pdf := fpdf.New("P", "mm", "Letter", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 18)
	pdf.CellFormat(0, 12, "Inventory Report", "", 1, "C", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	pdf.CellFormat(0, 7, "Generated "+generatedAt.Format("2006-01-02 15:04 MST"), "", 1, "C", false, 0, "")
	pdf.Ln(4)

	total := decimal.Zero
	lowStock := 0
	for i := range items {
		total = total.Add(items[i].Price.Mul(decimal.NewFromInt(int64(items[i].Quantity))))
		if items[i].Quantity <= lowStockThreshold {
			lowStock++
		}
	}

	pdf.SetFont("Helvetica", "", 11)
	pdf.CellFormat(0, 7, tr(fmt.Sprintf("Items: %d    Total stock value: %s    Low stock: %d",
		len(items), g.money(total), lowStock)), "", 1, "L", false, 0, "")
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "B", 10)
	pdf.SetFillColor(230, 230, 230)
	pdf.CellFormat(70, 8, "Name", "1", 0, "L", true, 0, "")
	pdf.CellFormat(45, 8, "Category", "1", 0, "L", true, 0, "")
	pdf.CellFormat(30, 8, "Quantity", "1", 0, "R", true, 0, "")
	pdf.CellFormat(0, 8, "Unit Price", "1", 1, "R", true, 0, "")

	pdf.SetFont("Helvetica", "", 10)
	for i := range items {
		item := &items[i]
		qty := fmt.Sprintf("%d", item.Quantity)
		if item.Quantity <= lowStockThreshold {
			qty += " (LOW)"
		}
		pdf.CellFormat(70, 8, tr(item.Name), "1", 0, "L", false, 0, "")
		pdf.CellFormat(45, 8, tr(item.Category), "1", 0, "L", false, 0, "")
		pdf.CellFormat(30, 8, qty, "1", 0, "R", false, 0, "")
		pdf.CellFormat(0, 8, tr(g.money(item.Price)), "1", 1, "R", false, 0, "")
	}

	if err := pdf.OutputFileAndClose(outPath); err != nil {
		return fmt.Errorf("write stock report: %w", err)
	}
	return nil
}

func (g *Generator) money(v decimal.Decimal) string {
	return g.currencySymbol + v.StringFixed(2)
}
