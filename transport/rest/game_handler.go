package rest

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/rocketscienceinc/cazconnect-backend/internal/entity"
	"github.com/rocketscienceinc/cazconnect-backend/internal/usecase"
	"github.com/rocketscienceinc/cazconnect-backend/internal/wallconnect"
)

const maxMemorySize = 16 << 20

var errBadRequest = errors.New("bad request")

type gameUseCase interface {
	NewGame(ctx context.Context, mode entity.Mode, difficulty entity.Difficulty) (*entity.Game, error)
	GetGame(ctx context.Context, id string) (*entity.Game, error)
	LegalMoves(ctx context.Context, id string) ([]entity.Move, error)
	MakeTurn(ctx context.Context, id string, move entity.Move) (*entity.Game, error)
	Reset(ctx context.Context, id string) (*entity.Game, error)
	UpdateSettings(ctx context.Context, id string, mode entity.Mode, difficulty entity.Difficulty) (*entity.Game, error)

	ExportMemory(ctx context.Context) ([]byte, error)
	ImportMemory(ctx context.Context, data []byte) (wins, losses int, err error)

	StartTraining(games int) (int, error)
	StopTraining(ctx context.Context) (bool, error)
	TrainingStatus() usecase.TrainingStatus

	Muted(ctx context.Context) (bool, error)
	SetMuted(ctx context.Context, muted bool) error
}

type settingsRequest struct {
	Mode       entity.Mode       `json:"mode"`
	Difficulty entity.Difficulty `json:"difficulty"`
}

type trainingRequest struct {
	Games int `json:"games"`
}

type muteRequest struct {
	Muted bool `json:"muted"`
}

type gameResponse struct {
	*entity.Game
	StatusText string        `json:"status_text"`
	LegalMoves []entity.Move `json:"legal_moves"`
}

type importResponse struct {
	Wins    int    `json:"wins"`
	Losses  int    `json:"losses"`
	Message string `json:"message"`
}

type GameHandler struct {
	logger *slog.Logger
	games  gameUseCase
}

func NewGameHandler(logger *slog.Logger, games gameUseCase) *GameHandler {
	return &GameHandler{
		logger: logger.With("component", "rest"),
		games:  games,
	}
}

func (that *GameHandler) NewGame(w http.ResponseWriter, r *http.Request) {
	log := that.logger.With("method", "NewGame")

	request := settingsRequest{Mode: entity.ModePvC, Difficulty: entity.DifficultyMedium}
	if err := decodeOptional(r, &request); err != nil {
		writeError(log, w, err)
		return
	}

	game, err := that.games.NewGame(r.Context(), request.Mode, request.Difficulty)
	if err != nil {
		writeError(log, w, err)
		return
	}

	writeJSON(log, w, http.StatusCreated, newGameResponse(game))
}

func (that *GameHandler) GetGame(w http.ResponseWriter, r *http.Request) {
	log := that.logger.With("method", "GetGame")

	game, err := that.games.GetGame(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(log, w, err)
		return
	}

	writeJSON(log, w, http.StatusOK, newGameResponse(game))
}

func (that *GameHandler) LegalMoves(w http.ResponseWriter, r *http.Request) {
	log := that.logger.With("method", "LegalMoves")

	moves, err := that.games.LegalMoves(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(log, w, err)
		return
	}

	writeJSON(log, w, http.StatusOK, moves)
}

func (that *GameHandler) MakeTurn(w http.ResponseWriter, r *http.Request) {
	log := that.logger.With("method", "MakeTurn")

	var move entity.Move
	if err := json.NewDecoder(r.Body).Decode(&move); err != nil {
		writeError(log, w, fmt.Errorf("%w: %w", errBadRequest, err))
		return
	}

	game, err := that.games.MakeTurn(r.Context(), chi.URLParam(r, "id"), move)
	if err != nil {
		writeError(log, w, err)
		return
	}

	writeJSON(log, w, http.StatusOK, newGameResponse(game))
}

func (that *GameHandler) Reset(w http.ResponseWriter, r *http.Request) {
	log := that.logger.With("method", "Reset")

	game, err := that.games.Reset(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(log, w, err)
		return
	}

	writeJSON(log, w, http.StatusOK, newGameResponse(game))
}

func (that *GameHandler) UpdateSettings(w http.ResponseWriter, r *http.Request) {
	log := that.logger.With("method", "UpdateSettings")

	var request settingsRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		writeError(log, w, fmt.Errorf("%w: %w", errBadRequest, err))
		return
	}

	game, err := that.games.UpdateSettings(r.Context(), chi.URLParam(r, "id"), request.Mode, request.Difficulty)
	if err != nil {
		writeError(log, w, err)
		return
	}

	writeJSON(log, w, http.StatusOK, newGameResponse(game))
}

func (that *GameHandler) ExportMemory(w http.ResponseWriter, r *http.Request) {
	log := that.logger.With("method", "ExportMemory")

	data, err := that.games.ExportMemory(r.Context())
	if err != nil {
		writeError(log, w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Content-Disposition", `attachment; filename="caz-connect-ai-memory.json"`)
	w.WriteHeader(http.StatusOK)

	if _, err = w.Write(data); err != nil {
		log.Error("failed to write memory", "error", err)
	}
}

func (that *GameHandler) ImportMemory(w http.ResponseWriter, r *http.Request) {
	log := that.logger.With("method", "ImportMemory")

	data, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxMemorySize))
	if err != nil {
		writeError(log, w, fmt.Errorf("%w: %w", errBadRequest, err))
		return
	}

	wins, losses, err := that.games.ImportMemory(r.Context(), data)
	if err != nil {
		writeError(log, w, err)
		return
	}

	writeJSON(log, w, http.StatusOK, importResponse{
		Wins:    wins,
		Losses:  losses,
		Message: fmt.Sprintf("AI Memory imported successfully!\nWins: %d\nLosses: %d", wins, losses),
	})
}

func (that *GameHandler) StartTraining(w http.ResponseWriter, r *http.Request) {
	log := that.logger.With("method", "StartTraining")

	var request trainingRequest
	if err := decodeOptional(r, &request); err != nil {
		writeError(log, w, err)
		return
	}

	games, err := that.games.StartTraining(request.Games)
	if err != nil {
		writeError(log, w, err)
		return
	}

	writeJSON(log, w, http.StatusAccepted, trainingRequest{Games: games})
}

func (that *GameHandler) StopTraining(w http.ResponseWriter, r *http.Request) {
	log := that.logger.With("method", "StopTraining")

	if _, err := that.games.StopTraining(r.Context()); err != nil {
		writeError(log, w, err)
		return
	}

	writeJSON(log, w, http.StatusOK, that.games.TrainingStatus())
}

func (that *GameHandler) TrainingStatus(w http.ResponseWriter, _ *http.Request) {
	writeJSON(that.logger.With("method", "TrainingStatus"), w, http.StatusOK, that.games.TrainingStatus())
}

func (that *GameHandler) Muted(w http.ResponseWriter, r *http.Request) {
	log := that.logger.With("method", "Muted")

	muted, err := that.games.Muted(r.Context())
	if err != nil {
		writeError(log, w, err)
		return
	}

	writeJSON(log, w, http.StatusOK, muteRequest{Muted: muted})
}

func (that *GameHandler) SetMuted(w http.ResponseWriter, r *http.Request) {
	log := that.logger.With("method", "SetMuted")

	var request muteRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		writeError(log, w, fmt.Errorf("%w: %w", errBadRequest, err))
		return
	}

	if err := that.games.SetMuted(r.Context(), request.Muted); err != nil {
		writeError(log, w, err)
		return
	}

	writeJSON(log, w, http.StatusOK, request)
}

func newGameResponse(game *entity.Game) gameResponse {
	moves := []entity.Move{}
	if game.IsOngoing() {
		moves = wallconnect.LegalMoves(&game.State.Board, game.State.MovesMade)
	}

	return gameResponse{
		Game:       game,
		StatusText: game.StatusText(),
		LegalMoves: moves,
	}
}

// decodeOptional decodes the body into target, leaving target untouched when the body is empty.
func decodeOptional(r *http.Request, target any) error {
	err := json.NewDecoder(r.Body).Decode(target)
	if err == nil || errors.Is(err, io.EOF) {
		return nil
	}

	return fmt.Errorf("%w: %w", errBadRequest, err)
}
