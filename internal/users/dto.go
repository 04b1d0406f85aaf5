package users

import (
	"time"

	"github.com/google/uuid"

	"github.com/arunvel/stockkeep-backend/pkg/db/models"
	"github.com/arunvel/stockkeep-backend/pkg/enums"
)

// UserDTO is the transport shape that omits the credential hash.
type UserDTO struct {
	ID        uuid.UUID      `json:"id"`
	Username  string         `json:"username"`
	Role      enums.UserRole `json:"role"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
}

// CreateUserInput holds the validated payload to create an account.
type CreateUserInput struct {
	Username string
	Password string
	Role     enums.UserRole
}

// UpdateUserInput holds optional mutation values for an account.
type UpdateUserInput struct {
	Username *string
	Password *string
	Role     *enums.UserRole
}

// FromModel converts a persisted user into its transport shape.
func FromModel(u *models.User) *UserDTO {
	if u == nil {
		return nil
	}
	return &UserDTO{
		ID:        u.ID,
		Username:  u.Username,
		Role:      u.Role,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

// FromModels converts a slice of users, preserving order.
func FromModels(users []models.User) []UserDTO {
	out := make([]UserDTO, 0, len(users))
	for i := range users {
		out = append(out, *FromModel(&users[i]))
	}
	return out
}
