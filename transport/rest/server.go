package rest

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

const shutdownTimeout = 5 * time.Second

// NewRouter wires every HTTP route. training is mounted at /ws/training and may be nil.
func NewRouter(logger *slog.Logger, games gameUseCase, training http.Handler) http.Handler {
	gameHandler := NewGameHandler(logger, games)

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)

	r.Get("/ping", NewPingHandler().PingHandler)

	r.Route("/games", func(r chi.Router) {
		r.Post("/", gameHandler.NewGame)
		r.Route("/{id}", func(r chi.Router) {
			r.Get("/", gameHandler.GetGame)
			r.Get("/moves", gameHandler.LegalMoves)
			r.Post("/moves", gameHandler.MakeTurn)
			r.Post("/reset", gameHandler.Reset)
			r.Put("/settings", gameHandler.UpdateSettings)
		})
	})

	r.Get("/memory", gameHandler.ExportMemory)
	r.Put("/memory", gameHandler.ImportMemory)

	r.Get("/training", gameHandler.TrainingStatus)
	r.Post("/training", gameHandler.StartTraining)
	r.Delete("/training", gameHandler.StopTraining)

	r.Get("/settings/mute", gameHandler.Muted)
	r.Put("/settings/mute", gameHandler.SetMuted)

	if training != nil {
		r.Method(http.MethodGet, "/ws/training", training)
	}

	return r
}

// Start serves handler on port until ctx is cancelled, then shuts the server down gracefully.
func Start(ctx context.Context, port string, handler http.Handler) error {
	srv := &http.Server{
		Addr:         ":" + port,
		Handler:      handler,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  30 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("failed to start server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("failed to shutdown server: %w", err)
	}

	return nil
}
