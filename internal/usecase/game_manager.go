package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/rocketscienceinc/cazconnect-backend/internal/apperror"
	"github.com/rocketscienceinc/cazconnect-backend/internal/entity"
	"github.com/rocketscienceinc/cazconnect-backend/internal/memory"
	"github.com/rocketscienceinc/cazconnect-backend/internal/service"
	"github.com/rocketscienceinc/cazconnect-backend/internal/wallconnect"
)

const (
	MinTrainingGames = 1
	MaxTrainingGames = 10000

	defaultTrainingGames = 100

	ActionTrainingProgress = "training:progress"
	ActionTrainingDone     = "training:done"
)

type memoryRepo interface {
	Load(ctx context.Context) (entity.GameMemory, error)
	Save(ctx context.Context, gameMemory entity.GameMemory) error
}

type settingsRepo interface {
	Muted(ctx context.Context) (bool, error)
	SetMuted(ctx context.Context, muted bool) error
}

type botPlayer interface {
	MakeTurn(game *entity.Game, book *memory.Book) error
}

type trainer interface {
	Run(ctx context.Context, games int, onProgress func(service.Progress)) service.Report
}

// notifier pushes events to whoever listens for them, the websocket hub in production.
type notifier interface {
	Broadcast(action string, payload any)
}

type nopNotifier struct{}

func (nopNotifier) Broadcast(string, any) {}

// TrainingStatus describes the running batch, or the last finished one.
type TrainingStatus struct {
	Running  bool              `json:"running"`
	Progress *service.Progress `json:"progress,omitempty"`
	Report   *service.Report   `json:"report,omitempty"`
	Message  string            `json:"message"`
}

// TrainingSummary is broadcast once a batch is over.
type TrainingSummary struct {
	Report  service.Report `json:"report"`
	Message string         `json:"message"`
}

type session struct {
	mu   sync.Mutex
	game *entity.Game
}

type trainingRun struct {
	cancel   context.CancelFunc
	done     chan struct{}
	progress *service.Progress
}

type GameManagerOption func(manager *GameManager)

// WithThinkingDelay makes the computer wait before answering a human move.
func WithThinkingDelay(delay time.Duration) GameManagerOption {
	return func(manager *GameManager) {
		if delay > 0 {
			manager.thinkingDelay = delay
		}
	}
}

// WithTrainingGames sets the batch size used when a training request does not name one.
func WithTrainingGames(games int) GameManagerOption {
	return func(manager *GameManager) {
		if games > 0 {
			manager.trainingGames = clampTrainingGames(games)
		}
	}
}

func WithNotifier(notify notifier) GameManagerOption {
	return func(manager *GameManager) {
		if notify != nil {
			manager.notifier = notify
		}
	}
}

type GameManager struct {
	logger *slog.Logger

	memoryRepo   memoryRepo
	settingsRepo settingsRepo
	bot          botPlayer
	trainer      trainer
	store        *memory.Store
	notifier     notifier

	thinkingDelay time.Duration
	trainingGames int

	sessionsMu sync.RWMutex
	sessions   map[string]*session

	trainingMu sync.Mutex
	training   *trainingRun
	lastReport *service.Report
}

func NewGameManager(
	logger *slog.Logger,
	memoryRepo memoryRepo,
	settingsRepo settingsRepo,
	store *memory.Store,
	bot botPlayer,
	trainer trainer,
	options ...GameManagerOption,
) *GameManager {
	manager := &GameManager{
		logger: logger.With("component", "game_manager"),

		memoryRepo:   memoryRepo,
		settingsRepo: settingsRepo,
		bot:          bot,
		trainer:      trainer,
		store:        store,
		notifier:     nopNotifier{},

		trainingGames: defaultTrainingGames,
		sessions:      make(map[string]*session),
	}
	for _, option := range options {
		option(manager)
	}

	return manager
}

// Init - loads the persisted memory into the store.
func (that *GameManager) Init(ctx context.Context) error {
	log := that.logger.With("method", "Init")

	gameMemory, err := that.memoryRepo.Load(ctx)
	if err != nil {
		return fmt.Errorf("failed to load memory: %w", err)
	}

	that.store.Replace(memory.FromGameMemory(gameMemory))

	wins, losses := that.store.Counts()
	log.Info("memory loaded", "wins", wins, "losses", losses)

	return nil
}

func (that *GameManager) NewGame(ctx context.Context, mode entity.Mode, difficulty entity.Difficulty) (*entity.Game, error) {
	if err := mode.Validate(); err != nil {
		return nil, err
	}

	if err := difficulty.Validate(); err != nil {
		return nil, err
	}

	game := entity.NewGame(uuid.NewString(), mode, difficulty)

	that.sessionsMu.Lock()
	that.sessions[game.ID] = &session{game: game}
	that.sessionsMu.Unlock()

	that.logger.With("method", "NewGame").Info("game created", "gameID", game.ID, "mode", mode, "difficulty", difficulty)

	return cloneGame(game), nil
}

func (that *GameManager) GetGame(_ context.Context, id string) (*entity.Game, error) {
	current, err := that.getSession(id)
	if err != nil {
		return nil, err
	}

	current.mu.Lock()
	defer current.mu.Unlock()

	return cloneGame(current.game), nil
}

func (that *GameManager) LegalMoves(_ context.Context, id string) ([]entity.Move, error) {
	current, err := that.getSession(id)
	if err != nil {
		return nil, err
	}

	current.mu.Lock()
	defer current.mu.Unlock()

	if current.game.IsFinished() {
		return []entity.Move{}, nil
	}

	return wallconnect.LegalMoves(&current.game.State.Board, current.game.State.MovesMade), nil
}

// MakeTurn - plays the human move and, against the computer, the computer's answer.
func (that *GameManager) MakeTurn(ctx context.Context, id string, move entity.Move) (*entity.Game, error) {
	current, err := that.getSession(id)
	if err != nil {
		return nil, err
	}

	current.mu.Lock()
	defer current.mu.Unlock()

	game := current.game

	if game.IsComputerTurn() {
		return cloneGame(game), apperror.ErrNotYourTurn
	}

	if err = wallconnect.MakeTurn(game, game.State.Mover, move); err != nil {
		return cloneGame(game), fmt.Errorf("failed make turn: %w", err)
	}

	if game.IsFinished() {
		that.recordResult(ctx, game)
		return cloneGame(game), nil
	}

	if game.IsComputerTurn() {
		if err = that.computerTurn(ctx, game); err != nil {
			return cloneGame(game), err
		}
	}

	return cloneGame(game), nil
}

// Reset - starts the next game of the session with the other player opening.
func (that *GameManager) Reset(ctx context.Context, id string) (*entity.Game, error) {
	current, err := that.getSession(id)
	if err != nil {
		return nil, err
	}

	current.mu.Lock()
	defer current.mu.Unlock()

	game := current.game
	game.Restart(game.NextStart)

	if game.IsComputerTurn() {
		if err = that.computerTurn(ctx, game); err != nil {
			return cloneGame(game), err
		}
	}

	return cloneGame(game), nil
}

// UpdateSettings - switches mode and difficulty. The board is cleared and X opens.
func (that *GameManager) UpdateSettings(_ context.Context, id string, mode entity.Mode, difficulty entity.Difficulty) (*entity.Game, error) {
	if err := mode.Validate(); err != nil {
		return nil, err
	}

	if err := difficulty.Validate(); err != nil {
		return nil, err
	}

	current, err := that.getSession(id)
	if err != nil {
		return nil, err
	}

	current.mu.Lock()
	defer current.mu.Unlock()

	current.game.Mode = mode
	current.game.Difficulty = difficulty
	current.game.Restart(entity.PlayerX)

	return cloneGame(current.game), nil
}

func (that *GameManager) computerTurn(ctx context.Context, game *entity.Game) error {
	that.think(ctx)

	var book *memory.Book
	if game.Difficulty == entity.DifficultyLearning {
		book = that.store.Snapshot()
	}

	if err := that.bot.MakeTurn(game, book); err != nil {
		return fmt.Errorf("computer failed to move: %w", err)
	}

	if game.IsFinished() {
		that.recordResult(ctx, game)
	}

	return nil
}

// think waits out the thinking delay. A cancelled ctx cuts the wait short but the move is still made.
func (that *GameManager) think(ctx context.Context) {
	if that.thinkingDelay <= 0 {
		return
	}

	timer := time.NewTimer(that.thinkingDelay)
	defer timer.Stop()

	select {
	case <-timer.C:
	case <-ctx.Done():
	}
}

// recordResult files a finished game against the computer and persists the memory if it changed.
func (that *GameManager) recordResult(ctx context.Context, game *entity.Game) {
	if !game.IsAgainstComputer() {
		return
	}

	if !that.store.Record(game.History, game.Winner) {
		return
	}

	that.persist(ctx, "recordResult")
}

func (that *GameManager) persist(ctx context.Context, method string) {
	log := that.logger.With("method", method)

	if err := that.memoryRepo.Save(ctx, that.store.GameMemory()); err != nil {
		log.Error("failed to save memory", "error", err)
	}
}

// ExportMemory - renders the whole memory as an indented JSON document.
func (that *GameManager) ExportMemory(_ context.Context) ([]byte, error) {
	data, err := memory.Encode(that.store.GameMemory())
	if err != nil {
		return nil, fmt.Errorf("failed to export memory: %w", err)
	}

	return data, nil
}

// ImportMemory - replaces the memory with data. Refused while a training batch is running.
func (that *GameManager) ImportMemory(ctx context.Context, data []byte) (wins, losses int, err error) {
	log := that.logger.With("method", "ImportMemory")

	gameMemory, err := memory.Decode(data)
	if err != nil {
		return 0, 0, err
	}

	if err = that.replaceMemory(memory.FromGameMemory(gameMemory)); err != nil {
		return 0, 0, err
	}

	if err = that.memoryRepo.Save(ctx, that.store.GameMemory()); err != nil {
		return 0, 0, fmt.Errorf("failed to save memory: %w", err)
	}

	wins, losses = that.store.Counts()
	log.Info("memory imported", "wins", wins, "losses", losses)

	return wins, losses, nil
}

// replaceMemory swaps the book under trainingMu so a batch cannot start from the old one.
func (that *GameManager) replaceMemory(book *memory.Book) error {
	that.trainingMu.Lock()
	defer that.trainingMu.Unlock()

	if that.training != nil {
		return apperror.ErrTrainingInProgress
	}

	that.store.Replace(book)

	return nil
}

func (that *GameManager) Muted(ctx context.Context) (bool, error) {
	muted, err := that.settingsRepo.Muted(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to get mute flag: %w", err)
	}

	return muted, nil
}

func (that *GameManager) SetMuted(ctx context.Context, muted bool) error {
	if err := that.settingsRepo.SetMuted(ctx, muted); err != nil {
		return fmt.Errorf("failed to set mute flag: %w", err)
	}

	return nil
}

// StartTraining - launches a self-play batch in the background and returns its size.
// games outside 1..10000 is clamped; zero picks the configured default.
func (that *GameManager) StartTraining(games int) (int, error) {
	if games == 0 {
		games = that.trainingGames
	}
	games = clampTrainingGames(games)

	that.trainingMu.Lock()
	defer that.trainingMu.Unlock()

	if that.training != nil {
		return 0, apperror.ErrTrainingInProgress
	}

	ctx, cancel := context.WithCancel(context.Background())
	run := &trainingRun{
		cancel: cancel,
		done:   make(chan struct{}),
	}
	that.training = run

	go that.train(ctx, run, games)

	that.logger.With("method", "StartTraining").Info("training started", "games", games)

	return games, nil
}

func (that *GameManager) train(ctx context.Context, run *trainingRun, games int) {
	defer close(run.done)
	defer run.cancel()

	report := that.trainer.Run(ctx, games, func(progress service.Progress) {
		that.trainingMu.Lock()
		run.progress = &progress
		that.trainingMu.Unlock()

		that.notifier.Broadcast(ActionTrainingProgress, progress)
	})

	that.persist(context.WithoutCancel(ctx), "train")

	that.trainingMu.Lock()
	that.training = nil
	that.lastReport = &report
	that.trainingMu.Unlock()

	that.notifier.Broadcast(ActionTrainingDone, TrainingSummary{
		Report:  report,
		Message: report.Message(),
	})
}

// StopTraining - cancels the running batch and waits until its games are committed.
// It reports whether a batch was running.
func (that *GameManager) StopTraining(ctx context.Context) (bool, error) {
	that.trainingMu.Lock()
	run := that.training
	that.trainingMu.Unlock()

	if run == nil {
		return false, nil
	}

	run.cancel()

	select {
	case <-run.done:
		return true, nil
	case <-ctx.Done():
		return true, fmt.Errorf("failed to wait for training to stop: %w", ctx.Err())
	}
}

func (that *GameManager) TrainingStatus() TrainingStatus {
	that.trainingMu.Lock()
	defer that.trainingMu.Unlock()

	if that.training != nil {
		status := TrainingStatus{Running: true, Message: "Starting training..."}
		if that.training.progress != nil {
			progress := *that.training.progress
			status.Progress = &progress
			status.Message = progress.Message
		}

		return status
	}

	if that.lastReport != nil {
		report := *that.lastReport
		return TrainingStatus{Report: &report, Message: report.Message()}
	}

	return TrainingStatus{}
}

func (that *GameManager) getSession(id string) (*session, error) {
	that.sessionsMu.RLock()
	defer that.sessionsMu.RUnlock()

	current, ok := that.sessions[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", apperror.ErrGameNotFound, id)
	}

	return current, nil
}

func clampTrainingGames(games int) int {
	return min(max(games, MinTrainingGames), MaxTrainingGames)
}

// cloneGame copies everything a caller could mutate so responses never alias a live session.
func cloneGame(game *entity.Game) *entity.Game {
	cloned := *game
	cloned.History = append(entity.History{}, game.History...)
	if game.WinLine != nil {
		cloned.WinLine = append(entity.Line{}, game.WinLine...)
	}

	if game.LastMove != nil {
		lastMove := *game.LastMove
		cloned.LastMove = &lastMove
	}

	cloned.Scores = make(map[entity.Cell]int, len(game.Scores))
	for player, score := range game.Scores {
		cloned.Scores[player] = score
	}

	return &cloned
}
