package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// TokenStore tracks which access tokens are still live. A token that was never
// registered or whose key expired is treated as revoked.
type TokenStore interface {
	Register(ctx context.Context, userID uuid.UUID, tokenID string, ttl time.Duration) error
	IsActive(ctx context.Context, userID uuid.UUID, tokenID string) (bool, error)
}

type redisTokenStore struct {
	client redis.Cmdable
}

func NewTokenStore(client redis.Cmdable) TokenStore {
	return &redisTokenStore{client: client}
}

func AccessTokenKey(userID uuid.UUID, tokenID string) string {
	return fmt.Sprintf("access_token:%s:%s", userID.String(), tokenID)
}

func (s *redisTokenStore) Register(ctx context.Context, userID uuid.UUID, tokenID string, ttl time.Duration) error {
	return s.client.Set(ctx, AccessTokenKey(userID, tokenID), "valid", ttl).Err()
}

func (s *redisTokenStore) IsActive(ctx context.Context, userID uuid.UUID, tokenID string) (bool, error) {
	exists, err := s.client.Exists(ctx, AccessTokenKey(userID, tokenID)).Result()
	if err != nil {
		return false, err
	}
	return exists > 0, nil
}

