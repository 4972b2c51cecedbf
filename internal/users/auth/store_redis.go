// Copyright (c) 2026 Creata. All rights reserved.

package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/creata-app/creata/internal/platform/apperr"
	"github.com/creata-app/creata/internal/platform/constants"
)

// # Redis Reset Token Repository

// redisResetTokenRepository stores password reset tokens in Redis with a
// native TTL. Redis handles expiry; the application never sweeps.
type redisResetTokenRepository struct {
	client *redis.Client
}

// NewRedisResetTokenRepository constructs a Redis backed reset token store.
func NewRedisResetTokenRepository(client *redis.Client) ResetTokenRepository {
	return &redisResetTokenRepository{client: client}
}

func (repository *redisResetTokenRepository) Set(context context.Context, tokenHash, userID string, ttl time.Duration) error {
	key := constants.RedisPrefixResetToken + tokenHash

	if err := repository.client.Set(context, key, userID, ttl).Err(); err != nil {
		return fmt.Errorf("redis: failed to store reset token: %w", err)
	}

	return nil
}

func (repository *redisResetTokenRepository) Get(context context.Context, tokenHash string) (string, error) {
	key := constants.RedisPrefixResetToken + tokenHash

	userID, err := repository.client.Get(context, key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", apperr.Unauthorized("Invalid or expired reset token")
		}
		return "", fmt.Errorf("redis: failed to read reset token: %w", err)
	}

	return userID, nil
}

func (repository *redisResetTokenRepository) Delete(context context.Context, tokenHash string) error {
	key := constants.RedisPrefixResetToken + tokenHash

	if err := repository.client.Del(context, key).Err(); err != nil {
		return fmt.Errorf("redis: failed to delete reset token: %w", err)
	}

	return nil
}
