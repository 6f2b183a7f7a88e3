package services

import (
	"context"

	"github.com/minsu-kang/postboard_backend/internal/core/domain"
	"github.com/minsu-kang/postboard_backend/internal/dto"
)

// UserSvcFacade defines the interface for user account management.
type UserSvcFacade interface {
	// CreateUser registers a new user with a hashed password.
	// Returns apperrors.ErrDuplicate if the username is taken.
	CreateUser(ctx context.Context, req dto.SignupRequest) (*domain.User, error)

	// Authenticate verifies username/password credentials.
	// Returns apperrors.ErrUnauthorized for an unknown username or a wrong
	// password; callers cannot distinguish the two.
	Authenticate(ctx context.Context, username, password string) (*domain.User, error)

	// GetUserByID retrieves a user by their ID.
	GetUserByID(ctx context.Context, userID string) (*domain.User, error)

	// UpdatePassword verifies the original password, stores the new hash and
	// revokes the user's refresh token so every refresh flow re-authenticates.
	UpdatePassword(ctx context.Context, userID string, req dto.UpdatePasswordRequest) error
}
