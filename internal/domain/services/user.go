package services

import (
	"context"

	"shotline/internal/domain/models"
)

// CreateUserRequest represents a request to create a user
type CreateUserRequest struct {
	Username    string `json:"username"`
	Password    string `json:"password"`
	Role        string `json:"role"`
	DisplayName string `json:"display_name"`
}

// UpdateUserRequest represents a partial user update; nil fields are
// left unchanged.
type UpdateUserRequest struct {
	Password    *string `json:"password"`
	Role        *string `json:"role"`
	DisplayName *string `json:"display_name"`
}

// UserService defines business logic operations for users
type UserService interface {
	// Authenticate checks credentials and returns the user
	Authenticate(ctx context.Context, username, password string) (*models.User, error)

	// CreateUser creates a new user
	CreateUser(ctx context.Context, req *CreateUserRequest) (*models.User, error)

	// GetUser retrieves a user by ID
	GetUser(ctx context.Context, id string) (*models.User, error)

	// ListUsers retrieves all users
	ListUsers(ctx context.Context) ([]models.User, error)

	// UpdateUser applies a partial update to a user
	UpdateUser(ctx context.Context, id string, req *UpdateUserRequest) (*models.User, error)

	// DeleteUser removes a user
	DeleteUser(ctx context.Context, id string) error
}
