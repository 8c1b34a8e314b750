package application

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rocketscienceinc/cazconnect-backend/internal/config"
	"github.com/rocketscienceinc/cazconnect-backend/internal/memory"
	"github.com/rocketscienceinc/cazconnect-backend/internal/repository"
	"github.com/rocketscienceinc/cazconnect-backend/internal/repository/storage"
	"github.com/rocketscienceinc/cazconnect-backend/internal/service"
	"github.com/rocketscienceinc/cazconnect-backend/internal/usecase"
	"github.com/rocketscienceinc/cazconnect-backend/transport/rest"
	"github.com/rocketscienceinc/cazconnect-backend/transport/websocket"
)

const stopTrainingTimeout = 10 * time.Second

var ErrAddrNotFound = errors.New("redis host is empty")

// RunApp - runs the application.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "app")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigs
		log.Info("Received signal, shutting down", "signal", sig)
		cancel()
	}()

	if conf.Redis.Host == "" {
		return ErrAddrNotFound
	}

	redisStorage, err := storage.NewRedisStorage(ctx, conf.Redis.GetRedisAddr())
	if err != nil {
		return fmt.Errorf("could not connect to redis storage: %w", err)
	}

	defer func() {
		if err = redisStorage.Close(); err != nil {
			log.Error("could not close redis storage", "error", err)
		}
	}()

	memoryRepo := repository.NewMemoryRepository(redisStorage.Connection)
	settingsRepo := repository.NewSettingsRepository(redisStorage.Connection)

	random := service.NewRandomizer(conf.AI.SeedOrNow())
	store := memory.NewStore(memory.NewBook())
	bot := service.NewBotService(random)
	trainer := service.NewTrainer(logger, store, random)
	hub := websocket.NewHub(logger)
	defer hub.Close()

	gameManager := usecase.NewGameManager(logger, memoryRepo, settingsRepo, store, bot, trainer,
		usecase.WithThinkingDelay(conf.AI.ThinkingDelay),
		usecase.WithTrainingGames(conf.AI.TrainingGames),
		usecase.WithNotifier(hub),
	)

	if err = gameManager.Init(ctx); err != nil {
		return fmt.Errorf("could not initialize game manager: %w", err)
	}

	defer func() {
		stopCtx, stopCancel := context.WithTimeout(context.Background(), stopTrainingTimeout)
		defer stopCancel()

		if _, stopErr := gameManager.StopTraining(stopCtx); stopErr != nil {
			log.Error("could not stop training", "error", stopErr)
		}
	}()

	// run HTTP server
	httpErrCh := make(chan error, 1)
	go func() {
		log.Info("Starting HTTP server", "port", conf.HTTPPort)
		if httpErr := rest.Start(ctx, conf.HTTPPort, rest.NewRouter(logger, gameManager, hub)); httpErr != nil {
			log.Error("HTTP server error", "error", httpErr)
			httpErrCh <- httpErr
		}
	}()

	select {
	case err = <-httpErrCh:
		return fmt.Errorf("HTTP server error: %w", err)
	case <-ctx.Done():
		log.Info("Application context canceled, shutting down")
		return nil
	}
}
