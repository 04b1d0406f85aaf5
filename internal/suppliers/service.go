package suppliers

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/arunvel/stockkeep-backend/pkg/db/models"
	"github.com/arunvel/stockkeep-backend/pkg/enums"
	pkgerrors "github.com/arunvel/stockkeep-backend/pkg/errors"
	"github.com/arunvel/stockkeep-backend/pkg/validate"
)

// Service exposes supplier management operations.
type Service interface {
	List(ctx context.Context) ([]SupplierDTO, error)
	Get(ctx context.Context, id uuid.UUID) (*SupplierDTO, error)
	Create(ctx context.Context, input CreateSupplierInput) (*SupplierDTO, error)
	Update(ctx context.Context, id uuid.UUID, input UpdateSupplierInput) (*SupplierDTO, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type service struct {
	repo *Repository
}

// NewService constructs a suppliers service instance.
func NewService(repo *Repository) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("suppliers repository required")
	}
	return &service{repo: repo}, nil
}

// List returns every supplier ordered by name.
func (s *service) List(ctx context.Context) ([]SupplierDTO, error) {
	list, err := s.repo.List(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "listing suppliers")
	}
	return FromModels(list), nil
}

// Get loads a single supplier.
func (s *service) Get(ctx context.Context, id uuid.UUID) (*SupplierDTO, error) {
	supplier, err := s.loadSupplier(ctx, id)
	if err != nil {
		return nil, err
	}
	return FromModel(supplier), nil
}

// Create registers a supplier contact after validating its email and
// category list.
func (s *service) Create(ctx context.Context, input CreateSupplierInput) (*SupplierDTO, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "name is required")
	}
	if !validate.Email(input.Email) {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "invalid email address")
	}
	if err := validateCategories(input.Categories); err != nil {
		return nil, err
	}

	supplier := &models.Supplier{
		ID:            uuid.New(),
		Name:          name,
		ContactPerson: strings.TrimSpace(input.ContactPerson),
		Phone:         strings.TrimSpace(input.Phone),
		Email:         strings.TrimSpace(input.Email),
		Categories:    toStringArray(input.Categories),
		Address:       strings.TrimSpace(input.Address),
	}
	if _, err := s.repo.Create(ctx, supplier); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "creating supplier")
	}
	return FromModel(supplier), nil
}

// Update mutates a supplier contact.
func (s *service) Update(ctx context.Context, id uuid.UUID, input UpdateSupplierInput) (*SupplierDTO, error) {
	supplier, err := s.loadSupplier(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		name := strings.TrimSpace(*input.Name)
		if name == "" {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "name cannot be empty")
		}
		supplier.Name = name
	}
	if input.Email != nil {
		if !validate.Email(*input.Email) {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "invalid email address")
		}
		supplier.Email = strings.TrimSpace(*input.Email)
	}
	if input.Categories != nil {
		if err := validateCategories(*input.Categories); err != nil {
			return nil, err
		}
		supplier.Categories = toStringArray(*input.Categories)
	}
	if input.ContactPerson != nil {
		supplier.ContactPerson = strings.TrimSpace(*input.ContactPerson)
	}
	if input.Phone != nil {
		supplier.Phone = strings.TrimSpace(*input.Phone)
	}
	if input.Address != nil {
		supplier.Address = strings.TrimSpace(*input.Address)
	}

	if _, err := s.repo.Save(ctx, supplier); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "updating supplier")
	}
	return FromModel(supplier), nil
}

// Delete removes a supplier contact.
func (s *service) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.loadSupplier(ctx, id); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "deleting supplier")
	}
	return nil
}

func (s *service) loadSupplier(ctx context.Context, id uuid.UUID) (*models.Supplier, error) {
	supplier, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "supplier not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "loading supplier")
	}
	return supplier, nil
}

func validateCategories(categories []string) error {
	for _, c := range categories {
		if !enums.ItemCategory(c).IsValid() {
			return pkgerrors.New(pkgerrors.CodeValidation, fmt.Sprintf("unknown category %q", c))
		}
	}
	return nil
}
