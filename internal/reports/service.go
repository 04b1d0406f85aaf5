package reports

import (
	"context"
	"fmt"
	"time"

	"github.com/arunvel/stockkeep-backend/pkg/db/models"
	pkgerrors "github.com/arunvel/stockkeep-backend/pkg/errors"
	"github.com/arunvel/stockkeep-backend/pkg/logger"
)

// Service renders the warehouse-wide report and hands it to the mailer.
type Service interface {
	EmailInventoryReport(ctx context.Context) (*ReportResult, error)
}

// ReportResult describes the generated report.
type ReportResult struct {
	Filename    string    `json:"filename"`
	ItemCount   int       `json:"item_count"`
	GeneratedAt time.Time `json:"generated_at"`
}

type itemSource interface {
	ListAll(ctx context.Context) ([]models.InventoryItem, error)
}

type reportSender interface {
	SendStockReport(ctx context.Context, reportPath string, generatedAt time.Time) error
}

type pathResolver interface {
	PDFPath(filename string) string
}

type service struct {
	items     itemSource
	generator *Generator
	sender    reportSender
	files     pathResolver
	threshold int
	logg      *logger.Logger
}

// ServiceParams bundles the dependencies required to build the service.
type ServiceParams struct {
	Items             itemSource
	Generator         *Generator
	Sender            reportSender
	Files             pathResolver
	LowStockThreshold int
	Logger            *logger.Logger
}

// NewService constructs a reports service instance.
func NewService(params ServiceParams) (Service, error) {
	if params.Items == nil {
		return nil, fmt.Errorf("item source required")
	}
	if params.Generator == nil {
		return nil, fmt.Errorf("generator required")
	}
	if params.Sender == nil {
		return nil, fmt.Errorf("report sender required")
	}
	if params.Files == nil {
		return nil, fmt.Errorf("path resolver required")
	}
	if params.Logger == nil {
		return nil, fmt.Errorf("logger required")
	}
	return &service{
		items:     params.Items,
		generator: params.Generator,
		sender:    params.Sender,
		files:     params.Files,
		threshold: params.LowStockThreshold,
		logg:      params.Logger,
	}, nil
}

// EmailInventoryReport renders the current stock report and emails it to the
// admin address.
func (s *service) EmailInventoryReport(ctx context.Context) (*ReportResult, error) {
	items, err := s.items.ListAll(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "listing items for report")
	}

	now := time.Now()
	filename := "inventory_report_" + now.Format("20060102_150405") + ".pdf"
	path := s.files.PDFPath(filename)

	if err := s.generator.StockReport(items, s.threshold, now, path); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "rendering stock report")
	}
	if err := s.sender.SendStockReport(ctx, path, now); err != nil {
		return nil, err
	}

	s.logg.Info(s.logg.WithField(ctx, "items", len(items)), "inventory report emailed")
	return &ReportResult{Filename: filename, ItemCount: len(items), GeneratedAt: now}, nil
}
