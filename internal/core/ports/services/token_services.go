package services

import (
	"context"

	"github.com/minsu-kang/postboard_backend/internal/core/domain"
)

// TokenSvcFacade defines the refresh-token rotation protocol.
//
// The store holds at most one valid refresh token per user; issuing a new pair
// unconditionally overwrites the previous slot (last-writer-wins).
type TokenSvcFacade interface {
	// IssueTokenPair signs a fresh access/refresh token pair for userID and
	// stores the refresh token with its TTL, replacing any previous one.
	IssueTokenPair(ctx context.Context, userID string) (*domain.TokenPair, error)

	// ValidateRefreshToken checks that presented equals the stored refresh
	// token for userID. On any mismatch (including nothing stored) the stored
	// entry is deleted and apperrors.ErrUnauthorized is returned, forcing a
	// full re-login. A match has no side effect.
	ValidateRefreshToken(ctx context.Context, userID string, presented string) error

	// RevokeRefreshToken deletes the stored refresh token for userID.
	// Idempotent.
	RevokeRefreshToken(ctx context.Context, userID string) error

	// ParseRefreshToken verifies signature, expiry and the refresh type tag of
	// a presented token string and returns the user ID it was issued to.
	ParseRefreshToken(tokenString string) (string, error)
}
