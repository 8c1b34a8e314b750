package storage

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/cazconnect-backend/testing/suite"
)

func TestNewRedisStorage(t *testing.T) {
	t.Run("Connects", func(t *testing.T) {
		ctx, st := suite.New(t)

		redisStorage, err := NewRedisStorage(ctx, st.Addr)

		require.NoError(t, err)
		require.NoError(t, redisStorage.Close())
	})

	t.Run("Fails on unreachable address", func(t *testing.T) {
		_, err := NewRedisStorage(context.Background(), "127.0.0.1:1")

		require.Error(t, err)
	})
}
