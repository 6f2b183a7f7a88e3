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
	"github.com/minsu-kang/postboard_backend/internal/platform/config"
	"github.com/minsu-kang/postboard_backend/internal/utils"
)

// tokenService implements the refresh-token rotation protocol: one refresh
// token slot per user in the key-value store, overwritten on every issue
// (last-writer-wins), deleted on revoke or on a failed validation.
type tokenService struct {
	cfg       *config.Config
	tokenRepo portsrepo.RefreshTokenRepository
}

// NewTokenService creates a new instance of tokenService.
func NewTokenService(cfg *config.Config, tokenRepo portsrepo.RefreshTokenRepository) portssvc.TokenSvcFacade {
	return &tokenService{cfg: cfg, tokenRepo: tokenRepo}
}

func (s *tokenService) IssueTokenPair(ctx context.Context, userID string) (*domain.TokenPair, error) {
	now := time.Now()

	accessToken, err := utils.GenerateToken(userID, utils.TokenTypeAccess, s.cfg.JWTSecret, s.cfg.AccessTokenExpiry, s.cfg.JWTIssuer)
	if err != nil {
		return nil, fmt.Errorf("failed to generate access token: %w", err)
	}

	refreshToken, err := utils.GenerateToken(userID, utils.TokenTypeRefresh, s.cfg.JWTSecret, s.cfg.RefreshTokenExpiry, s.cfg.JWTIssuer)
	if err != nil {
		return nil, fmt.Errorf("failed to generate refresh token: %w", err)
	}

	// Unconditional overwrite: the previous refresh token (if any) becomes
	// unusable the moment this write lands.
	if err := s.tokenRepo.SaveRefreshToken(ctx, userID, refreshToken, s.cfg.RefreshTokenExpiry); err != nil {
		return nil, fmt.Errorf("failed to store refresh token: %w", err)
	}

	return &domain.TokenPair{
		AccessToken:      accessToken,
		RefreshToken:     refreshToken,
		AccessExpiresAt:  now.Add(s.cfg.AccessTokenExpiry),
		RefreshExpiresAt: now.Add(s.cfg.RefreshTokenExpiry),
	}, nil
}

func (s *tokenService) ValidateRefreshToken(ctx context.Context, userID string, presented string) error {
	stored, err := s.tokenRepo.FindRefreshToken(ctx, userID)
	if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
		return fmt.Errorf("failed to look up refresh token: %w", err)
	}

	// Absence never matches, whatever was presented (including the empty
	// string). "Never issued", "expired" and "rotated away" are deliberately
	// indistinguishable to the caller.
	if err != nil || stored != presented {
		if delErr := s.tokenRepo.DeleteRefreshToken(ctx, userID); delErr != nil {
			return fmt.Errorf("failed to delete refresh token on mismatch: %w", delErr)
		}
		return apperrors.ErrUnauthorized
	}

	return nil
}

func (s *tokenService) RevokeRefreshToken(ctx context.Context, userID string) error {
	return s.tokenRepo.DeleteRefreshToken(ctx, userID)
}

func (s *tokenService) ParseRefreshToken(tokenString string) (string, error) {
	claims, err := utils.ParseAndValidateTokenOfType(tokenString, s.cfg.JWTSecret, utils.TokenTypeRefresh)
	if err != nil {
		// Expired, forged and mistyped tokens all fail closed the same way.
		return "", apperrors.ErrUnauthorized
	}
	if claims.Subject == "" {
		return "", apperrors.ErrUnauthorized
	}
	return claims.Subject, nil
}
