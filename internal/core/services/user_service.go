package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/minsu-kang/postboard_backend/internal/apperrors"
	"github.com/minsu-kang/postboard_backend/internal/core/domain"
	portsrepo "github.com/minsu-kang/postboard_backend/internal/core/ports/repositories"
	portssvc "github.com/minsu-kang/postboard_backend/internal/core/ports/services"
	"github.com/minsu-kang/postboard_backend/internal/dto"
	"github.com/minsu-kang/postboard_backend/internal/utils"
	"github.com/google/uuid"
)

// userService implements UserSvcFacade on top of the relational user store.
// It also holds the refresh-token store because a password change must revoke
// the user's refresh token in the same operation.
type userService struct {
	userRepo  portsrepo.UserRepository
	tokenRepo portsrepo.RefreshTokenRepository
}

// NewUserService creates a new user service.
func NewUserService(userRepo portsrepo.UserRepository, tokenRepo portsrepo.RefreshTokenRepository) portssvc.UserSvcFacade {
	return &userService{userRepo: userRepo, tokenRepo: tokenRepo}
}

func (s *userService) CreateUser(ctx context.Context, req dto.SignupRequest) (*domain.User, error) {
	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := domain.User{
		UserID:       uuid.NewString(),
		Username:     req.Username,
		PasswordHash: hash,
		CreatedAt:    time.Now(),
	}

	if err := s.userRepo.SaveUser(ctx, user); err != nil {
		// ErrDuplicate surfaces unchanged so the handler can answer 409.
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return &user, nil
}

func (s *userService) Authenticate(ctx context.Context, username, password string) (*domain.User, error) {
	user, err := s.userRepo.FindUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			// Unknown username and wrong password are indistinguishable.
			return nil, apperrors.ErrUnauthorized
		}
		return nil, fmt.Errorf("failed to find user by username: %w", err)
	}

	if !utils.CheckPasswordHash(password, user.PasswordHash) {
		return nil, apperrors.ErrUnauthorized
	}

	return user, nil
}

func (s *userService) GetUserByID(ctx context.Context, userID string) (*domain.User, error) {
	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get user by ID: %w", err)
	}
	return user, nil
}

func (s *userService) UpdatePassword(ctx context.Context, userID string, req dto.UpdatePasswordRequest) error {
	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return apperrors.ErrNotFound
		}
		return fmt.Errorf("failed to find user for password update: %w", err)
	}

	if !utils.CheckPasswordHash(req.OriginalPassword, user.PasswordHash) {
		return apperrors.ErrUnauthorized
	}

	newHash, err := utils.HashPassword(req.NewPassword)
	if err != nil {
		return fmt.Errorf("failed to hash new password: %w", err)
	}

	if err := s.userRepo.UpdateUserPassword(ctx, userID, newHash); err != nil {
		return fmt.Errorf("failed to update password: %w", err)
	}

	// Force re-authentication on all refresh flows. Access tokens already
	// issued remain valid until their own expiry; they are not tracked
	// server-side.
	if err := s.tokenRepo.DeleteRefreshToken(ctx, userID); err != nil {
		return fmt.Errorf("failed to revoke refresh token after password change: %w", err)
	}

	return nil
}
