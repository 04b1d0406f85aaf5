// Package notifications routes low-stock alerts to the suppliers covering an
// item's category, falling back to the inventory admin when none match.
package notifications

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/arunvel/stockkeep-backend/pkg/config"
	"github.com/arunvel/stockkeep-backend/pkg/db/models"
	pkgerrors "github.com/arunvel/stockkeep-backend/pkg/errors"
	"github.com/arunvel/stockkeep-backend/pkg/logger"
	"github.com/arunvel/stockkeep-backend/pkg/metrics"
	"github.com/arunvel/stockkeep-backend/pkg/validate"
)

const (
	adminDisplayName = "Inventory Admin"
	mailKindLowStock = "low_stock"
	mailKindReport   = "report"
)

// Service routes and sends inventory notifications.
type Service interface {
	NotifyLowStock(ctx context.Context, item *models.InventoryItem) (*RoutingResult, error)
	SendStockReport(ctx context.Context, reportPath string, generatedAt time.Time) error
}

// RoutingResult reports who was notified and how the recipients were chosen.
type RoutingResult struct {
	Recipients    []string `json:"recipients"`
	SupplierNames []string `json:"supplier_names,omitempty"`
	UsedFallback  bool     `json:"used_fallback"`
}

type supplierFinder interface {
	FindByCategory(ctx context.Context, category string) ([]models.Supplier, error)
}

type service struct {
	suppliers supplierFinder
	mailer    Mailer
	smtpCfg   config.SMTPConfig
	currency  string
	threshold int
	mailStats *metrics.MailMetrics
	logg      *logger.Logger
}

// ServiceParams bundles the dependencies required to build the service.
type ServiceParams struct {
	Suppliers         supplierFinder
	Mailer            Mailer
	SMTPConfig        config.SMTPConfig
	CurrencySymbol    string
	LowStockThreshold int
	MailMetrics       *metrics.MailMetrics
	Logger            *logger.Logger
}

// NewService constructs a notifications service instance.
func NewService(params ServiceParams) (Service, error) {
	if params.Suppliers == nil {
		return nil, fmt.Errorf("supplier finder required")
	}
	if params.Mailer == nil {
		return nil, fmt.Errorf("mailer required")
	}
	if params.Logger == nil {
		return nil, fmt.Errorf("logger required")
	}
	return &service{
		suppliers: params.Suppliers,
		mailer:    params.Mailer,
		smtpCfg:   params.SMTPConfig,
		currency:  params.CurrencySymbol,
		threshold: params.LowStockThreshold,
		mailStats: params.MailMetrics,
		logg:      params.Logger,
	}, nil
}

// NotifyLowStock emails the suppliers covering the item's category. Items
// above the low-stock threshold are refused before any routing happens. When
// no supplier matches, the alert goes to the configured admin address instead.
// Having no deliverable recipient at all is an error, not a silent no-op.
func (s *service) NotifyLowStock(ctx context.Context, item *models.InventoryItem) (*RoutingResult, error) {
	if item.Quantity > s.threshold {
		return nil, pkgerrors.New(pkgerrors.CodeStateConflict,
			fmt.Sprintf("item quantity %d is above the low stock threshold %d", item.Quantity, s.threshold))
	}

	matched, err := s.suppliers.FindByCategory(ctx, item.Category)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "matching suppliers")
	}

	var recipients, names []string
	for i := range matched {
		if validate.Email(matched[i].Email) {
			recipients = append(recipients, matched[i].Email)
			names = append(names, matched[i].Name)
		}
	}

	result := &RoutingResult{Recipients: recipients, SupplierNames: names}
	fromName := "StockKeep"
	if len(names) > 0 {
		fromName = "StockKeep (" + strings.Join(names, ", ") + ")"
	}

	if len(recipients) == 0 {
		if !validate.Email(s.smtpCfg.AdminEmail) {
			s.countMail(mailKindLowStock, false)
			return nil, pkgerrors.New(pkgerrors.CodeDependency, "no deliverable recipients for low stock alert")
		}
		result.Recipients = []string{s.smtpCfg.AdminEmail}
		result.UsedFallback = true
		fromName = adminDisplayName
	}

	msg := Message{
		FromName: fromName,
		To:       result.Recipients,
		Subject:  fmt.Sprintf("Low stock alert: %s", item.Name),
		TextBody: s.lowStockBody(item),
	}
	if err := s.mailer.Send(ctx, msg); err != nil {
		s.countMail(mailKindLowStock, false)
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "sending low stock alert")
	}
	s.countMail(mailKindLowStock, true)

	itemCtx := s.logg.WithItemID(ctx, item.ID.String())
	s.logg.Info(s.logg.WithField(itemCtx, "recipients", len(result.Recipients)), "low stock alert sent")
	return result, nil
}

// SendStockReport emails the generated report PDF to the admin address.
func (s *service) SendStockReport(ctx context.Context, reportPath string, generatedAt time.Time) error {
	if !validate.Email(s.smtpCfg.AdminEmail) {
		return pkgerrors.New(pkgerrors.CodeDependency, "admin email is not configured")
	}

	msg := Message{
		FromName: adminDisplayName,
		To:       []string{s.smtpCfg.AdminEmail},
		Subject:  "Inventory report " + generatedAt.Format("2006-01-02"),
		TextBody: "Attached is the inventory report generated at " + generatedAt.Format(time.RFC1123) + ".",
		Attachments: []Attachment{
			{Filename: "inventory_report_" + generatedAt.Format("20060102") + ".pdf", Path: reportPath},
		},
	}
	if err := s.mailer.Send(ctx, msg); err != nil {
		s.countMail(mailKindReport, false)
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "sending stock report")
	}
	s.countMail(mailKindReport, true)
	return nil
}

func (s *service) lowStockBody(item *models.InventoryItem) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Item %q is running low.\n\n", item.Name)
	fmt.Fprintf(&b, "Category: %s\n", item.Category)
	fmt.Fprintf(&b, "Remaining quantity: %d\n", item.Quantity)
	fmt.Fprintf(&b, "Unit price: %s%s\n", s.currency, item.Price.StringFixed(2))
	fmt.Fprintf(&b, "Item ID: %s\n", item.ID)
	b.WriteString("\nPlease arrange a restock.\n")
	return b.String()
}

func (s *service) countMail(kind string, ok bool) {
	if ok {
		s.mailStats.IncSent(kind)
		return
	}
	s.mailStats.IncFailed(kind)
}
