package users

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/arunvel/stockkeep-backend/pkg/config"
	"github.com/arunvel/stockkeep-backend/pkg/db"
	"github.com/arunvel/stockkeep-backend/pkg/db/models"
	"github.com/arunvel/stockkeep-backend/pkg/enums"
	pkgerrors "github.com/arunvel/stockkeep-backend/pkg/errors"
	"github.com/arunvel/stockkeep-backend/pkg/security"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Service exposes account management operations for administrators.
type Service interface {
	List(ctx context.Context) ([]UserDTO, error)
	Get(ctx context.Context, id uuid.UUID) (*UserDTO, error)
	Create(ctx context.Context, input CreateUserInput) (*UserDTO, error)
	Update(ctx context.Context, id uuid.UUID, input UpdateUserInput) (*UserDTO, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type txRunner interface {
	WithTx(ctx context.Context, fn func(tx *gorm.DB) error) error
}

type service struct {
	repo        *Repository
	dbClient    txRunner
	passwordCfg config.PasswordConfig
}

// NewService constructs a users service instance.
func NewService(repo *Repository, dbClient txRunner, passwordCfg config.PasswordConfig) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("users repository required")
	}
	if dbClient == nil {
		return nil, fmt.Errorf("db client required")
	}
	return &service{repo: repo, dbClient: dbClient, passwordCfg: passwordCfg}, nil
}

// List returns every account ordered by creation time.
func (s *service) List(ctx context.Context) ([]UserDTO, error) {
	users, err := s.repo.List(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "listing users")
	}
	return FromModels(users), nil
}

// Get loads a single account by ID.
func (s *service) Get(ctx context.Context, id uuid.UUID) (*UserDTO, error) {
	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "user not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "loading user")
	}
	return FromModel(user), nil
}

// Create provisions a new account with the requested role.
func (s *service) Create(ctx context.Context, input CreateUserInput) (*UserDTO, error) {
	username := strings.TrimSpace(input.Username)
	if username == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "username is required")
	}
	if len(input.Password) < s.passwordCfg.MinLength {
		return nil, pkgerrors.New(pkgerrors.CodeValidation,
			fmt.Sprintf("password must be at least %d characters", s.passwordCfg.MinLength))
	}
	if !input.Role.IsValid() {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "invalid role")
	}

	if _, err := s.repo.FindByUsername(ctx, username); err == nil {
		return nil, pkgerrors.New(pkgerrors.CodeConflict, "username already taken")
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "checking username")
	}

	hash, err := security.HashPassword(input.Password, s.passwordCfg)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "hashing password")
	}

	user := &models.User{
		ID:           uuid.New(),
		Username:     username,
		PasswordHash: hash,
		Role:         input.Role,
	}
	if _, err := s.repo.Create(ctx, user); err != nil {
		if db.IsUniqueViolation(err, "users_username_lower_key") {
			return nil, pkgerrors.New(pkgerrors.CodeConflict, "username already taken")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "creating user")
	}
	return FromModel(user), nil
}

// Update mutates an account's username, password or role. The rename
// duplicate check and the last-admin demotion guard run inside the same
// transaction that applies the change.
func (s *service) Update(ctx context.Context, id uuid.UUID, input UpdateUserInput) (*UserDTO, error) {
	if input.Username != nil && strings.TrimSpace(*input.Username) == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "username cannot be empty")
	}
	if input.Password != nil && len(*input.Password) < s.passwordCfg.MinLength {
		return nil, pkgerrors.New(pkgerrors.CodeValidation,
			fmt.Sprintf("password must be at least %d characters", s.passwordCfg.MinLength))
	}
	if input.Role != nil && !input.Role.IsValid() {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "invalid role")
	}

	var updated *models.User
	err := s.dbClient.WithTx(ctx, func(tx *gorm.DB) error {
		txRepo := s.repo.WithTx(tx)

		user, err := txRepo.FindByID(ctx, id)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return pkgerrors.New(pkgerrors.CodeNotFound, "user not found")
			}
			return err
		}

		if input.Username != nil {
			username := strings.TrimSpace(*input.Username)
			if existing, err := txRepo.FindByUsername(ctx, username); err == nil {
				if existing.ID != user.ID {
					return pkgerrors.New(pkgerrors.CodeConflict, "username already taken")
				}
			} else if !errors.Is(err, gorm.ErrRecordNotFound) {
				return err
			}
			user.Username = username
		}

		if input.Role != nil && user.Role == enums.UserRoleAdmin && *input.Role != enums.UserRoleAdmin {
			admins, err := txRepo.CountAdmins(ctx)
			if err != nil {
				return err
			}
			if admins <= 1 {
				return pkgerrors.New(pkgerrors.CodeStateConflict, "cannot demote the last admin")
			}
		}

		if input.Role != nil {
			user.Role = *input.Role
		}
		if input.Password != nil {
			hash, err := security.HashPassword(*input.Password, s.passwordCfg)
			if err != nil {
				return err
			}
			user.PasswordHash = hash
		}

		updated, err = txRepo.Save(ctx, user)
		return err
	})
	if err != nil {
		if typed := pkgerrors.As(err); typed != nil {
			return nil, typed
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "updating user")
	}
	return FromModel(updated), nil
}

// Delete removes an account. The only remaining admin cannot be deleted; the
// check and the delete run in one transaction so concurrent deletes cannot
// leave the system without an admin.
func (s *service) Delete(ctx context.Context, id uuid.UUID) error {
	err := s.dbClient.WithTx(ctx, func(tx *gorm.DB) error {
		txRepo := s.repo.WithTx(tx)

		user, err := txRepo.FindByID(ctx, id)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return pkgerrors.New(pkgerrors.CodeNotFound, "user not found")
			}
			return err
		}

		if user.Role == enums.UserRoleAdmin {
			admins, err := txRepo.CountAdmins(ctx)
			if err != nil {
				return err
			}
			if admins <= 1 {
				return pkgerrors.New(pkgerrors.CodeStateConflict, "cannot delete the last admin")
			}
		}

		return txRepo.Delete(ctx, user.ID)
	})
	if err != nil {
		if typed := pkgerrors.As(err); typed != nil {
			return typed
		}
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "deleting user")
	}
	return nil
}
