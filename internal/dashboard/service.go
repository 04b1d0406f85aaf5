// Package dashboard aggregates the headline numbers shown on the home screen.
package dashboard

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/arunvel/stockkeep-backend/internal/inventory"
	pkgerrors "github.com/arunvel/stockkeep-backend/pkg/errors"
)

// Summary is the aggregate snapshot returned by the dashboard endpoint.
type Summary struct {
	TotalItems      int64                     `json:"total_items"`
	TotalStockValue decimal.Decimal           `json:"total_stock_value"`
	LowStockCount   int64                     `json:"low_stock_count"`
	TotalSuppliers  int64                     `json:"total_suppliers"`
	TotalUsers      int64                     `json:"total_users"`
	Categories      []inventory.CategoryCount `json:"categories"`
}

type itemStats interface {
	CountAll(ctx context.Context) (int64, error)
	CountLowStock(ctx context.Context, threshold int) (int64, error)
	TotalStockValue(ctx context.Context) (decimal.Decimal, error)
	CategoryDistribution(ctx context.Context) ([]inventory.CategoryCount, error)
}

type rowCounter interface {
	CountAll(ctx context.Context) (int64, error)
}

// Service produces dashboard summaries.
type Service interface {
	Summary(ctx context.Context) (*Summary, error)
}

type service struct {
	items     itemStats
	suppliers rowCounter
	users     rowCounter
	threshold int
}

// ServiceParams bundles the dependencies required to build the service.
type ServiceParams struct {
	Items             itemStats
	Suppliers         rowCounter
	Users             rowCounter
	LowStockThreshold int
}

// NewService constructs a dashboard service instance.
func NewService(params ServiceParams) (Service, error) {
	if params.Items == nil {
		return nil, fmt.Errorf("item stats required")
	}
	if params.Suppliers == nil {
		return nil, fmt.Errorf("supplier counter required")
	}
	if params.Users == nil {
		return nil, fmt.Errorf("user counter required")
	}
	return &service{
		items:     params.Items,
		suppliers: params.Suppliers,
		users:     params.Users,
		threshold: params.LowStockThreshold,
	}, nil
}

// Summary collects the aggregate counts in one pass.
func (s *service) Summary(ctx context.Context) (*Summary, error) {
	out := &Summary{}

	var err error
	if out.TotalItems, err = s.items.CountAll(ctx); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "counting items")
	}
	if out.LowStockCount, err = s.items.CountLowStock(ctx, s.threshold); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "counting low stock")
	}
	if out.TotalStockValue, err = s.items.TotalStockValue(ctx); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "summing stock value")
	}
	if out.Categories, err = s.items.CategoryDistribution(ctx); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "loading category distribution")
	}
	if out.TotalSuppliers, err = s.suppliers.CountAll(ctx); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "counting suppliers")
	}
	if out.TotalUsers, err = s.users.CountAll(ctx); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "counting users")
	}
	return out, nil
}
