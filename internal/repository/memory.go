package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
	"github.com/rocketscienceinc/cazconnect-backend/internal/entity"
)

const memoryKey = "cazConnectMemory"

type MemoryRepository interface {
	Load(ctx context.Context) (entity.GameMemory, error)
	Save(ctx context.Context, gameMemory entity.GameMemory) error
}

type dbMemory struct {
	client *redis.Client
}

func NewMemoryRepository(client *redis.Client) MemoryRepository {
	return &dbMemory{
		client: client,
	}
}

// Load returns the stored memory, or an empty one when nothing was saved yet.
func (that *dbMemory) Load(ctx context.Context) (entity.GameMemory, error) {
	response, err := that.client.Get(ctx, memoryKey).Result()

	if errors.Is(err, redis.Nil) {
		return entity.NewGameMemory(), nil
	}

	if err != nil {
		return entity.GameMemory{}, fmt.Errorf("failed to get memory: %w", err)
	}

	gameMemory := entity.NewGameMemory()
	if err = json.Unmarshal([]byte(response), &gameMemory); err != nil {
		return entity.GameMemory{}, fmt.Errorf("failed to unmarshal memory: %w", err)
	}

	return gameMemory, nil
}

func (that *dbMemory) Save(ctx context.Context, gameMemory entity.GameMemory) error {
	memoryJSON, err := json.Marshal(gameMemory)
	if err != nil {
		return fmt.Errorf("could not marshal memory: %w", err)
	}

	if err = that.client.Set(ctx, memoryKey, memoryJSON, 0).Err(); err != nil {
		return fmt.Errorf("failed to set memory: %w", err)
	}

	return nil
}
