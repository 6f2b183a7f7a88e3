package redisrepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/minsu-kang/postboard_backend/internal/apperrors"
	portsrepo "github.com/minsu-kang/postboard_backend/internal/core/ports/repositories"
	"github.com/redis/go-redis/v9"
)

// refreshTokenKeyPrefix namespaces the per-user refresh-token slot.
const refreshTokenKeyPrefix = "refresh:"

// RedisRefreshTokenRepository stores the single active refresh token per user
// under refresh:<userID> with a TTL. Redis' atomic SET/GET/DEL is the only
// coordination the rotation protocol needs.
type RedisRefreshTokenRepository struct {
	client *redis.Client
}

func NewRefreshTokenRepository(client *redis.Client) portsrepo.RefreshTokenRepository {
	return &RedisRefreshTokenRepository{client: client}
}

// Ensure RedisRefreshTokenRepository implements portsrepo.RefreshTokenRepository
var _ portsrepo.RefreshTokenRepository = (*RedisRefreshTokenRepository)(nil)

func refreshTokenKey(userID string) string {
	return refreshTokenKeyPrefix + userID
}

func (r *RedisRefreshTokenRepository) SaveRefreshToken(ctx context.Context, userID string, token string, ttl time.Duration) error {
	if err := r.client.Set(ctx, refreshTokenKey(userID), token, ttl).Err(); err != nil {
		return fmt.Errorf("failed to store refresh token: %w", err)
	}
	return nil
}

func (r *RedisRefreshTokenRepository) FindRefreshToken(ctx context.Context, userID string) (string, error) {
	token, err := r.client.Get(ctx, refreshTokenKey(userID)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", apperrors.ErrNotFound
		}
		return "", fmt.Errorf("failed to fetch refresh token: %w", err)
	}
	return token, nil
}

func (r *RedisRefreshTokenRepository) DeleteRefreshToken(ctx context.Context, userID string) error {
	// DEL on an absent key affects zero keys and is not an error.
	if err := r.client.Del(ctx, refreshTokenKey(userID)).Err(); err != nil {
		return fmt.Errorf("failed to delete refresh token: %w", err)
	}
	return nil
}
