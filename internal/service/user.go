package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"

	"shotline/internal/auth"
	"shotline/internal/domain"
	"shotline/internal/domain/models"
	"shotline/internal/domain/repositories"
	"shotline/internal/domain/services"
)

// userService implements the UserService interface
type userService struct {
	userRepo repositories.UserRepository
	logger   *slog.Logger
}

// NewUserService creates a new user service
func NewUserService(userRepo repositories.UserRepository, logger *slog.Logger) services.UserService {
	return &userService{
		userRepo: userRepo,
		logger:   logger,
	}
}

// Authenticate checks credentials and returns the user
func (s *userService) Authenticate(ctx context.Context, username, password string) (*models.User, error) {
	user, err := s.userRepo.GetByUsername(ctx, username)
	if err != nil {
		// Same failure for a missing user and a bad password
		return nil, &domain.UnauthorizedError{Message: "invalid credentials"}
	}

	if !auth.CheckPassword(user.PwdHash, password) {
		return nil, &domain.UnauthorizedError{Message: "invalid credentials"}
	}

	return user, nil
}

// CreateUser creates a new user with a hashed password
func (s *userService) CreateUser(ctx context.Context, req *services.CreateUserRequest) (*models.User, error) {
	if err := s.validateCreateRequest(req); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &models.User{
		ID:          uuid.NewString(),
		Username:    req.Username,
		PwdHash:     hash,
		Role:        req.Role,
		DisplayName: req.DisplayName,
		CreatedAt:   time.Now(),
	}
	if user.DisplayName == "" {
		user.DisplayName = req.Username
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	s.logger.Info("user created",
		"id", user.ID,
		"username", user.Username,
		"role", user.Role,
	)

	return user, nil
}

// GetUser retrieves a user by ID
func (s *userService) GetUser(ctx context.Context, id string) (*models.User, error) {
	return s.userRepo.GetByID(ctx, id)
}

// ListUsers retrieves all users
func (s *userService) ListUsers(ctx context.Context) ([]models.User, error) {
	return s.userRepo.List(ctx)
}

// UpdateUser applies a partial update to a user
func (s *userService) UpdateUser(ctx context.Context, id string, req *services.UpdateUserRequest) (*models.User, error) {
	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Password != nil {
		if *req.Password == "" {
			return nil, fmt.Errorf("%w: password cannot be blank", domain.ErrValidation)
		}
		hash, err := auth.HashPassword(*req.Password)
		if err != nil {
			return nil, fmt.Errorf("hash password: %w", err)
		}
		user.PwdHash = hash
	}
	if req.Role != nil {
		if !models.ValidRole(*req.Role) {
			return nil, fmt.Errorf("%w: unknown role %q", domain.ErrValidation, *req.Role)
		}
		user.Role = *req.Role
	}
	if req.DisplayName != nil {
		user.DisplayName = *req.DisplayName
	}

	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}

	s.logger.Info("user updated", "id", user.ID, "username", user.Username)

	return user, nil
}

// DeleteUser removes a user
func (s *userService) DeleteUser(ctx context.Context, id string) error {
	if err := s.userRepo.Delete(ctx, id); err != nil {
		return err
	}

	s.logger.Info("user deleted", "id", id)

	return nil
}

// validateCreateRequest validates a user creation request
func (s *userService) validateCreateRequest(req *services.CreateUserRequest) error {
	if !models.ValidRole(req.Role) {
		return fmt.Errorf("unknown role %q", req.Role)
	}

	return validation.ValidateStruct(req,
		validation.Field(&req.Username,
			validation.Required,
			validation.Length(1, 64),
		),
		validation.Field(&req.Password,
			validation.Required,
			validation.Length(4, 128),
		),
		validation.Field(&req.Role, validation.Required),
	)
}
