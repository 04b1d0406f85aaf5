package inventory

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/multierr"
	"gorm.io/gorm"

	"github.com/arunvel/stockkeep-backend/internal/reports"
	"github.com/arunvel/stockkeep-backend/pkg/db/models"
	"github.com/arunvel/stockkeep-backend/pkg/enums"
	pkgerrors "github.com/arunvel/stockkeep-backend/pkg/errors"
	"github.com/arunvel/stockkeep-backend/pkg/logger"
)

// Service exposes inventory item management operations.
type Service interface {
	List(ctx context.Context, input ListInput) ([]ItemDTO, error)
	Get(ctx context.Context, id uuid.UUID) (*ItemDTO, error)
	Create(ctx context.Context, input CreateItemInput) (*ItemDTO, error)
	Update(ctx context.Context, id uuid.UUID, input UpdateItemInput) (*ItemDTO, error)
	AdjustQuantity(ctx context.Context, id uuid.UUID, delta int) (*ItemDTO, error)
	Delete(ctx context.Context, id uuid.UUID) error
	PDFPath(ctx context.Context, id uuid.UUID) (path string, filename string, err error)
	LowStock(ctx context.Context) ([]ItemDTO, error)
}

type pdfRenderer interface {
	ItemSheet(item *models.InventoryItem, imagePath, outPath string) error
}

type fileStore interface {
	PDFPath(filename string) string
	ImagePath(filename string) string
	PDFExists(filename string) bool
	RemovePDF(filename string) error
	RemoveImage(filename string) error
}

type service struct {
	repo      *Repository
	pdfs      pdfRenderer
	files     fileStore
	threshold int
	logg      *logger.Logger
}

// ServiceParams bundles the dependencies required to build the service.
type ServiceParams struct {
	Repo              *Repository
	PDFRenderer       pdfRenderer
	Files             fileStore
	LowStockThreshold int
	Logger            *logger.Logger
}

// NewService constructs an inventory service instance.
func NewService(params ServiceParams) (Service, error) {
	if params.Repo == nil {
		return nil, fmt.Errorf("inventory repository required")
	}
	if params.PDFRenderer == nil {
		return nil, fmt.Errorf("pdf renderer required")
	}
	if params.Files == nil {
		return nil, fmt.Errorf("file store required")
	}
	if params.Logger == nil {
		return nil, fmt.Errorf("logger required")
	}
	return &service{
		repo:      params.Repo,
		pdfs:      params.PDFRenderer,
		files:     params.Files,
		threshold: params.LowStockThreshold,
		logg:      params.Logger,
	}, nil
}

// List returns items matching the filters.
func (s *service) List(ctx context.Context, input ListInput) ([]ItemDTO, error) {
	if input.Category != "" && !enums.ItemCategory(input.Category).IsValid() {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "unknown category")
	}
	items, err := s.repo.List(ctx, input)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "listing items")
	}
	return FromModels(items, s.threshold), nil
}

// Get loads a single item.
func (s *service) Get(ctx context.Context, id uuid.UUID) (*ItemDTO, error) {
	item, err := s.loadItem(ctx, id)
	if err != nil {
		return nil, err
	}
	return FromModel(item, s.threshold), nil
}

// Create validates the payload, persists the row, then renders the item
// sheet. A render failure leaves the item without a sheet and is surfaced as
// a warning; the download endpoint regenerates it on demand.
func (s *service) Create(ctx context.Context, input CreateItemInput) (*ItemDTO, error) {
	if err := validateCreate(input); err != nil {
		return nil, err
	}

	item := &models.InventoryItem{
		ID:       uuid.New(),
		Name:     strings.TrimSpace(input.Name),
		Category: input.Category,
		Quantity: input.Quantity,
		Price:    input.Price,
	}

	if _, err := s.repo.Create(ctx, item); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "creating item")
	}

	filename := reports.ItemPDFFilename(item.Name, item.ID)
	if err := s.pdfs.ItemSheet(item, s.imagePathFor(item), s.files.PDFPath(filename)); err != nil {
		s.logg.Warn(s.logg.WithItemID(ctx, item.ID.String()), "item created without sheet, render failed: "+err.Error())
		return FromModel(item, s.threshold), nil
	}
	item.PDFFilename = &filename

	if _, err := s.repo.Save(ctx, item); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "recording item sheet")
	}
	return FromModel(item, s.threshold), nil
}

// Update applies the changes and re-renders the item sheet. When the rename
// changes the sheet filename the new sheet is written first, then the record
// is updated, and only then is the stale file removed.
func (s *service) Update(ctx context.Context, id uuid.UUID, input UpdateItemInput) (*ItemDTO, error) {
	item, err := s.loadItem(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := applyUpdate(item, input); err != nil {
		return nil, err
	}

	staleFilename := ""
	newFilename := reports.ItemPDFFilename(item.Name, item.ID)
	if item.PDFFilename != nil && *item.PDFFilename != newFilename {
		staleFilename = *item.PDFFilename
	}

	if err := s.pdfs.ItemSheet(item, s.imagePathFor(item), s.files.PDFPath(newFilename)); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "rendering item sheet")
	}
	item.PDFFilename = &newFilename

	if _, err := s.repo.Save(ctx, item); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "updating item")
	}

	if staleFilename != "" {
		if err := s.files.RemovePDF(staleFilename); err != nil {
			s.logg.Warn(s.logg.WithItemID(ctx, item.ID.String()), "stale item sheet left on disk: "+err.Error())
		}
	}
	return FromModel(item, s.threshold), nil
}

// AdjustQuantity shifts the stock level by delta. The quantity can never go
// below zero. The item sheet is refreshed best-effort since it displays the
// quantity.
func (s *service) AdjustQuantity(ctx context.Context, id uuid.UUID, delta int) (*ItemDTO, error) {
	item, err := s.loadItem(ctx, id)
	if err != nil {
		return nil, err
	}

	next := item.Quantity + delta
	if next < 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "quantity cannot go below zero")
	}
	item.Quantity = next

	if _, err := s.repo.Save(ctx, item); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "adjusting quantity")
	}

	filename := reports.ItemPDFFilename(item.Name, item.ID)
	if err := s.pdfs.ItemSheet(item, s.imagePathFor(item), s.files.PDFPath(filename)); err != nil {
		s.logg.Warn(s.logg.WithItemID(ctx, item.ID.String()), "item sheet refresh failed: "+err.Error())
	}
	return FromModel(item, s.threshold), nil
}

// Delete removes the item row and cleans up its files. File cleanup failures
// are logged but never block the delete.
func (s *service) Delete(ctx context.Context, id uuid.UUID) error {
	item, err := s.loadItem(ctx, id)
	if err != nil {
		return err
	}

	var cleanup error
	if item.PDFFilename != nil {
		cleanup = multierr.Append(cleanup, s.files.RemovePDF(*item.PDFFilename))
	}
	if item.ImageFilename != nil {
		cleanup = multierr.Append(cleanup, s.files.RemoveImage(*item.ImageFilename))
	}
	if cleanup != nil {
		s.logg.Warn(s.logg.WithItemID(ctx, item.ID.String()), "item file cleanup incomplete: "+cleanup.Error())
	}

	if err := s.repo.Delete(ctx, item.ID); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "deleting item")
	}
	return nil
}

// PDFPath resolves the on-disk sheet for download, re-rendering it when the
// file went missing or was never recorded.
func (s *service) PDFPath(ctx context.Context, id uuid.UUID) (string, string, error) {
	item, err := s.loadItem(ctx, id)
	if err != nil {
		return "", "", err
	}

	filename := reports.ItemPDFFilename(item.Name, item.ID)
	if item.PDFFilename == nil || !s.files.PDFExists(*item.PDFFilename) {
		if err := s.pdfs.ItemSheet(item, s.imagePathFor(item), s.files.PDFPath(filename)); err != nil {
			return "", "", pkgerrors.Wrap(pkgerrors.CodeInternal, err, "rendering item sheet")
		}
		item.PDFFilename = &filename
		if _, err := s.repo.Save(ctx, item); err != nil {
			return "", "", pkgerrors.Wrap(pkgerrors.CodeInternal, err, "recording item sheet")
		}
	}
	return s.files.PDFPath(*item.PDFFilename), *item.PDFFilename, nil
}

// LowStock returns all items at or below the configured threshold.
func (s *service) LowStock(ctx context.Context) ([]ItemDTO, error) {
	items, err := s.repo.ListLowStock(ctx, s.threshold)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "listing low stock items")
	}
	return FromModels(items, s.threshold), nil
}

func (s *service) loadItem(ctx context.Context, id uuid.UUID) (*models.InventoryItem, error) {
	item, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "item not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "loading item")
	}
	return item, nil
}

func (s *service) imagePathFor(item *models.InventoryItem) string {
	if item.ImageFilename == nil {
		return ""
	}
	return s.files.ImagePath(*item.ImageFilename)
}

func validateCreate(input CreateItemInput) error {
	if strings.TrimSpace(input.Name) == "" {
		return pkgerrors.New(pkgerrors.CodeValidation, "name is required")
	}
	if !enums.ItemCategory(input.Category).IsValid() {
		return pkgerrors.New(pkgerrors.CodeValidation, "unknown category")
	}
	if input.Quantity < 0 {
		return pkgerrors.New(pkgerrors.CodeValidation, "quantity cannot be negative")
	}
	if !input.Price.IsPositive() {
		return pkgerrors.New(pkgerrors.CodeValidation, "price must be positive")
	}
	return nil
}

func applyUpdate(item *models.InventoryItem, input UpdateItemInput) error {
	if input.Name != nil {
		name := strings.TrimSpace(*input.Name)
		if name == "" {
			return pkgerrors.New(pkgerrors.CodeValidation, "name cannot be empty")
		}
		item.Name = name
	}
	if input.Category != nil {
		if !enums.ItemCategory(*input.Category).IsValid() {
			return pkgerrors.New(pkgerrors.CodeValidation, "unknown category")
		}
		item.Category = *input.Category
	}
	if input.Quantity != nil {
		if *input.Quantity < 0 {
			return pkgerrors.New(pkgerrors.CodeValidation, "quantity cannot be negative")
		}
		item.Quantity = *input.Quantity
	}
	if input.Price != nil {
		if !input.Price.IsPositive() {
			return pkgerrors.New(pkgerrors.CodeValidation, "price must be positive")
		}
		item.Price = *input.Price
	}
	return nil
}
