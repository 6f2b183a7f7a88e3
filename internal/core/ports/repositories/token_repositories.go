package repositories

import (
	"context"
	"time"
)

// RefreshTokenRepository is the key-value store holding the single active
// refresh token per user. The store's atomic set/get/delete is the only
// coordination the rotation protocol relies on.
type RefreshTokenRepository interface {
	// SaveRefreshToken stores token as the current refresh token for userID,
	// overwriting any previous one, expiring after ttl.
	SaveRefreshToken(ctx context.Context, userID string, token string, ttl time.Duration) error

	// FindRefreshToken returns the stored refresh token for userID, or
	// apperrors.ErrNotFound when none is stored.
	FindRefreshToken(ctx context.Context, userID string) (string, error)

	// DeleteRefreshToken removes the stored refresh token for userID.
	// Deleting an absent entry is not an error.
	DeleteRefreshToken(ctx context.Context, userID string) error
}
