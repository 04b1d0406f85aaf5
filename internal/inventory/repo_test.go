package inventory

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
)

func TestListFiltersBySearchAndCategory(t *testing.T) {
	conn := openTestDB(t)
	repo := NewRepository(conn)
	ctx := context.Background()

	mustCreateItem(t, repo, "USB C Hub", "Electronics", 10)
	mustCreateItem(t, repo, "USB A Cable", "Electronics", 10)
	mustCreateItem(t, repo, "Notebook", "Office Supplies", 10)

	items, err := repo.List(ctx, ListInput{Search: "usb"})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("expected 2 usb items, got %d", len(items))
	}

	items, err = repo.List(ctx, ListInput{Category: "Office Supplies"})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(items) != 1 || items[0].Name != "Notebook" {
		t.Fatalf("unexpected category result %+v", items)
	}

	items, err = repo.List(ctx, ListInput{Search: "usb", Category: "Office Supplies"})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(items) != 0 {
		t.Fatal("filters must compose")
	}
}

func TestAggregates(t *testing.T) {
	conn := openTestDB(t)
	repo := NewRepository(conn)
	ctx := context.Background()

	mustCreateItem(t, repo, "A", "Electronics", 3)
	mustCreateItem(t, repo, "B", "Books", 7)

	count, err := repo.CountAll(ctx)
	if err != nil || count != 2 {
		t.Fatalf("count all = %d, err %v", count, err)
	}

	low, err := repo.CountLowStock(ctx, 5)
	if err != nil || low != 1 {
		t.Fatalf("low stock = %d, err %v", low, err)
	}

	total, err := repo.TotalStockValue(ctx)
	if err != nil {
		t.Fatalf("total value: %v", err)
	}
	if !total.Equal(decimal.RequireFromString("100.00")) {
		t.Fatalf("expected 100.00, got %s", total)
	}

	dist, err := repo.CategoryDistribution(ctx)
	if err != nil {
		t.Fatalf("distribution: %v", err)
	}
	if len(dist) != 2 {
		t.Fatalf("expected 2 categories, got %d", len(dist))
	}
}

func TestTotalStockValueEmptyInventoryIsZero(t *testing.T) {
	conn := openTestDB(t)
	repo := NewRepository(conn)

	total, err := repo.TotalStockValue(context.Background())
	if err != nil {
		t.Fatalf("total value: %v", err)
	}
	if !total.IsZero() {
		t.Fatalf("expected zero, got %s", total)
	}
}
