package inventory

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	pkgerrors "github.com/arunvel/stockkeep-backend/pkg/errors"
)

func TestCreateRendersSheetAndPersists(t *testing.T) {
	svc, repo, renderer, store := newTestService(t)
	ctx := context.Background()

	dto, err := svc.Create(ctx, CreateItemInput{
		Name:     "USB C Hub",
		Category: "Electronics",
		Quantity: 12,
		Price:    decimal.RequireFromString("149.99"),
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if dto.PDFFilename == nil {
		t.Fatal("expected pdf filename recorded")
	}
	if !store.PDFExists(*dto.PDFFilename) {
		t.Fatal("expected sheet on disk")
	}
	if len(renderer.calls) != 1 {
		t.Fatalf("expected one render, got %d", len(renderer.calls))
	}
	if _, err := repo.FindByID(ctx, dto.ID); err != nil {
		t.Fatalf("row missing: %v", err)
	}
}

func TestCreateRejectsUnknownCategory(t *testing.T) {
	svc, _, renderer, _ := newTestService(t)

	_, err := svc.Create(context.Background(), CreateItemInput{
		Name:     "Mystery Box",
		Category: "Contraband",
		Quantity: 1,
		Price:    decimal.New(1, 0),
	})
	if typed := pkgerrors.As(err); typed == nil || typed.Code() != pkgerrors.CodeValidation {
		t.Fatalf("expected validation error, got %v", err)
	}
	if len(renderer.calls) != 0 {
		t.Fatal("invalid payloads must not render sheets")
	}
}

func TestCreateRejectsZeroPrice(t *testing.T) {
	svc, _, renderer, _ := newTestService(t)

	_, err := svc.Create(context.Background(), CreateItemInput{
		Name:     "Freebie",
		Category: "Other",
		Quantity: 1,
		Price:    decimal.Zero,
	})
	if typed := pkgerrors.As(err); typed == nil || typed.Code() != pkgerrors.CodeValidation {
		t.Fatalf("expected validation error, got %v", err)
	}
	if len(renderer.calls) != 0 {
		t.Fatal("invalid payloads must not render sheets")
	}
}

func TestCreateRenderFailureStillCreatesItem(t *testing.T) {
	svc, repo, renderer, _ := newTestService(t)
	renderer.fail = errors.New("out of disk")

	dto, err := svc.Create(context.Background(), CreateItemInput{
		Name:     "USB C Hub",
		Category: "Electronics",
		Quantity: 1,
		Price:    decimal.New(1, 0),
	})
	if err != nil {
		t.Fatalf("create must survive a render failure: %v", err)
	}
	if dto.PDFFilename != nil {
		t.Fatal("no sheet filename should be recorded after a render failure")
	}

	reloaded, err := repo.FindByID(context.Background(), dto.ID)
	if err != nil {
		t.Fatalf("row missing: %v", err)
	}
	if reloaded.PDFFilename != nil {
		t.Fatal("persisted row must not point at a missing sheet")
	}
}

func TestUpdateRenameReplacesSheet(t *testing.T) {
	svc, _, _, store := newTestService(t)
	ctx := context.Background()

	dto, err := svc.Create(ctx, CreateItemInput{
		Name:     "Old Name",
		Category: "Hardware",
		Quantity: 4,
		Price:    decimal.New(5, 0),
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	oldFilename := *dto.PDFFilename

	newName := "New Name"
	updated, err := svc.Update(ctx, dto.ID, UpdateItemInput{Name: &newName})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if *updated.PDFFilename == oldFilename {
		t.Fatal("rename must change the sheet filename")
	}
	if store.PDFExists(oldFilename) {
		t.Fatal("stale sheet must be removed after a rename")
	}
	if !store.PDFExists(*updated.PDFFilename) {
		t.Fatal("new sheet must exist")
	}
}

func TestUpdateRenderFailureKeepsRecordIntact(t *testing.T) {
	svc, repo, renderer, _ := newTestService(t)
	ctx := context.Background()

	dto, err := svc.Create(ctx, CreateItemInput{
		Name:     "Stable Item",
		Category: "Hardware",
		Quantity: 4,
		Price:    decimal.New(5, 0),
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	renderer.fail = errors.New("render broke")
	newName := "Renamed"
	if _, err := svc.Update(ctx, dto.ID, UpdateItemInput{Name: &newName}); err == nil {
		t.Fatal("expected update to fail")
	}

	reloaded, err := repo.FindByID(ctx, dto.ID)
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	if reloaded.Name != "Stable Item" {
		t.Fatalf("record must be unchanged after render failure, got %s", reloaded.Name)
	}
}

func TestAdjustQuantityCannotGoNegative(t *testing.T) {
	svc, repo, _, _ := newTestService(t)
	ctx := context.Background()
	item := mustCreateItem(t, repo, "Cable", "Electronics", 2)

	_, err := svc.AdjustQuantity(ctx, item.ID, -3)
	if typed := pkgerrors.As(err); typed == nil || typed.Code() != pkgerrors.CodeValidation {
		t.Fatalf("expected validation error, got %v", err)
	}

	dto, err := svc.AdjustQuantity(ctx, item.ID, -2)
	if err != nil {
		t.Fatalf("adjust: %v", err)
	}
	if dto.Quantity != 0 {
		t.Fatalf("expected quantity 0, got %d", dto.Quantity)
	}
	if !dto.LowStock {
		t.Fatal("zero quantity must be flagged low stock")
	}
}

func TestDeleteRemovesFilesBestEffort(t *testing.T) {
	svc, _, _, store := newTestService(t)
	ctx := context.Background()

	dto, err := svc.Create(ctx, CreateItemInput{
		Name:     "Doomed Item",
		Category: "Other",
		Quantity: 1,
		Price:    decimal.New(1, 0),
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if err := svc.Delete(ctx, dto.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if store.PDFExists(*dto.PDFFilename) {
		t.Fatal("sheet should be removed with the item")
	}
	if _, err := svc.Get(ctx, dto.ID); err == nil {
		t.Fatal("item should be gone")
	}
}

func TestPDFPathRegeneratesMissingSheet(t *testing.T) {
	svc, _, renderer, store := newTestService(t)
	ctx := context.Background()

	dto, err := svc.Create(ctx, CreateItemInput{
		Name:     "Flaky Sheet",
		Category: "Books",
		Quantity: 9,
		Price:    decimal.New(20, 0),
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if err := store.RemovePDF(*dto.PDFFilename); err != nil {
		t.Fatalf("remove: %v", err)
	}

	path, filename, err := svc.PDFPath(ctx, dto.ID)
	if err != nil {
		t.Fatalf("pdf path: %v", err)
	}
	if filename != *dto.PDFFilename {
		t.Fatalf("unexpected filename %s", filename)
	}
	if !store.PDFExists(filename) {
		t.Fatalf("sheet should be regenerated at %s", path)
	}
	if len(renderer.calls) != 2 {
		t.Fatalf("expected regeneration render, got %d calls", len(renderer.calls))
	}
}

func TestGetMissingItemReturnsNotFound(t *testing.T) {
	svc, _, _, _ := newTestService(t)

	_, err := svc.Get(context.Background(), uuid.New())
	if typed := pkgerrors.As(err); typed == nil || typed.Code() != pkgerrors.CodeNotFound {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestLowStockUsesThreshold(t *testing.T) {
	svc, repo, _, _ := newTestService(t)
	mustCreateItem(t, repo, "Plenty", "Food", 50)
	mustCreateItem(t, repo, "Scarce", "Food", 5)
	mustCreateItem(t, repo, "Gone", "Food", 0)

	low, err := svc.LowStock(context.Background())
	if err != nil {
		t.Fatalf("low stock: %v", err)
	}
	if len(low) != 2 {
		t.Fatalf("expected 2 low items, got %d", len(low))
	}
	if low[0].Name != "Gone" {
		t.Fatalf("most depleted first, got %s", low[0].Name)
	}
}
