package dashboard

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/arunvel/stockkeep-backend/internal/inventory"
)

type fakeItemStats struct {
	total int64
	low   int64
	value decimal.Decimal
	dist  []inventory.CategoryCount
	err   error
}

func (f *fakeItemStats) CountAll(context.Context) (int64, error) { return f.total, f.err }
func (f *fakeItemStats) CountLowStock(context.Context, int) (int64, error) {
	return f.low, f.err
}
func (f *fakeItemStats) TotalStockValue(context.Context) (decimal.Decimal, error) {
	return f.value, f.err
}
func (f *fakeItemStats) CategoryDistribution(context.Context) ([]inventory.CategoryCount, error) {
	return f.dist, f.err
}

type fixedCounter struct {
	n   int64
	err error
}

func (f *fixedCounter) CountAll(context.Context) (int64, error) { return f.n, f.err }

func TestSummaryAggregates(t *testing.T) {
	svc, err := NewService(ServiceParams{
		Items: &fakeItemStats{
			total: 42,
			low:   3,
			value: decimal.RequireFromString("1234.50"),
			dist:  []inventory.CategoryCount{{Category: "Electronics", Count: 20}},
		},
		Suppliers:         &fixedCounter{n: 7},
		Users:             &fixedCounter{n: 5},
		LowStockThreshold: 5,
	})
	if err != nil {
		t.Fatalf("new service: %v", err)
	}

	summary, err := svc.Summary(context.Background())
	if err != nil {
		t.Fatalf("summary: %v", err)
	}
	if summary.TotalItems != 42 || summary.LowStockCount != 3 || summary.TotalSuppliers != 7 || summary.TotalUsers != 5 {
		t.Fatalf("unexpected summary %+v", summary)
	}
	if !summary.TotalStockValue.Equal(decimal.RequireFromString("1234.50")) {
		t.Fatalf("unexpected stock value %s", summary.TotalStockValue)
	}
	if len(summary.Categories) != 1 {
		t.Fatalf("unexpected categories %+v", summary.Categories)
	}
}

func TestSummaryPropagatesErrors(t *testing.T) {
	svc, err := NewService(ServiceParams{
		Items:     &fakeItemStats{err: errors.New("db down")},
		Suppliers: &fixedCounter{},
		Users:     &fixedCounter{},
	})
	if err != nil {
		t.Fatalf("new service: %v", err)
	}

	if _, err := svc.Summary(context.Background()); err == nil {
		t.Fatal("expected error to propagate")
	}
}
