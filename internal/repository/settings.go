package repository

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/redis/go-redis/v9"
)

const mutedKey = "cazConnectMuted"

type SettingsRepository interface {
	Muted(ctx context.Context) (bool, error)
	SetMuted(ctx context.Context, muted bool) error
}

type dbSettings struct {
	client *redis.Client
}

func NewSettingsRepository(client *redis.Client) SettingsRepository {
	return &dbSettings{
		client: client,
	}
}

// Muted reads the flag the way the host stored it: only "true" means muted.
func (that *dbSettings) Muted(ctx context.Context) (bool, error) {
	response, err := that.client.Get(ctx, mutedKey).Result()

	if errors.Is(err, redis.Nil) {
		return false, nil
	}

	if err != nil {
		return false, fmt.Errorf("failed to get mute flag: %w", err)
	}

	return response == "true", nil
}

func (that *dbSettings) SetMuted(ctx context.Context, muted bool) error {
	if err := that.client.Set(ctx, mutedKey, strconv.FormatBool(muted), 0).Err(); err != nil {
		return fmt.Errorf("failed to set mute flag: %w", err)
	}

	return nil
}
