package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/rocketscienceinc/cazconnect-backend/internal/entity"
	"github.com/rocketscienceinc/cazconnect-backend/internal/memory"
	"github.com/rocketscienceinc/cazconnect-backend/internal/wallconnect"
)

// Progress is published after every simulated game.
type Progress struct {
	Game    int    `json:"game"`
	Total   int    `json:"total"`
	Wins    int    `json:"wins"`
	Losses  int    `json:"losses"`
	Draws   int    `json:"draws"`
	Message string `json:"message"`
}

// Report summarises a training batch. TotalWins and TotalLosses describe the store after commit.
type Report struct {
	Played      int  `json:"played"`
	Wins        int  `json:"wins"`
	Losses      int  `json:"losses"`
	Draws       int  `json:"draws"`
	Added       int  `json:"added"`
	Cancelled   bool `json:"cancelled"`
	TotalWins   int  `json:"total_wins"`
	TotalLosses int  `json:"total_losses"`
}

func (that Report) Message() string {
	return fmt.Sprintf("AI training complete! Memory now has %d winning paths and %d losing paths.", that.TotalWins, that.TotalLosses)
}

type TrainerOption func(trainer *Trainer)

// WithTrainingDepth overrides the search depth used by both simulated players.
func WithTrainingDepth(depth int) TrainerOption {
	return func(trainer *Trainer) {
		if depth > 0 {
			trainer.depth = depth
		}
	}
}

// Trainer grows the memory by letting the learning policy play itself.
type Trainer struct {
	logger *slog.Logger
	store  *memory.Store
	bot    BotService
	random *Randomizer
	depth  int
}

func NewTrainer(logger *slog.Logger, store *memory.Store, random *Randomizer, options ...TrainerOption) *Trainer {
	trainer := &Trainer{
		logger: logger.With("component", "trainer"),
		store:  store,
		bot:    NewBotService(random),
		random: random,
		depth:  LearningDepth,
	}
	for _, option := range options {
		option(trainer)
	}

	return trainer
}

// Run - plays up to games self-play games against a working copy of the memory and commits it
// once the batch is over. Cancelling ctx stops the batch; finished games are still committed and
// the game in flight is dropped. onProgress, if set, is called after every finished game.
func (that *Trainer) Run(ctx context.Context, games int, onProgress func(Progress)) Report {
	log := that.logger.With("method", "Run")

	working := that.store.Snapshot()
	report := Report{}

	for i := 1; i <= games; i++ {
		if ctx.Err() != nil {
			report.Cancelled = true
			break
		}

		history, winner, finished := that.playGame(ctx, working)
		if !finished {
			report.Cancelled = true
			break
		}

		report.Played++
		switch winner {
		case entity.ComputerPlayer:
			report.Wins++
		case entity.HumanPlayer:
			report.Losses++
		default:
			report.Draws++
		}

		working.Record(history, winner)

		if onProgress != nil {
			onProgress(Progress{
				Game:    i,
				Total:   games,
				Wins:    report.Wins,
				Losses:  report.Losses,
				Draws:   report.Draws,
				Message: fmt.Sprintf("Simulating Game %d of %d...", i, games),
			})
		}
	}

	report.Added = that.store.Commit(working)
	report.TotalWins, report.TotalLosses = that.store.Counts()

	log.Info("training finished",
		"played", report.Played,
		"added", report.Added,
		"cancelled", report.Cancelled,
		"total_wins", report.TotalWins,
		"total_losses", report.TotalLosses,
	)

	return report
}

// playGame plays one game to the end. finished is false when ctx was cancelled mid-game.
func (that *Trainer) playGame(ctx context.Context, working *memory.Book) (history entity.History, winner entity.Cell, finished bool) {
	starter := entity.PlayerX
	if that.random.Intn(2) == 0 {
		starter = entity.PlayerO
	}

	state := entity.NewGameState(starter)
	history = entity.History{}

	for {
		if ctx.Err() != nil {
			return nil, entity.EmptyCell, false
		}

		moves := wallconnect.LegalMoves(&state.Board, state.MovesMade)
		if len(moves) == 0 {
			return history, entity.EmptyCell, true
		}

		player := state.Mover
		move := that.bot.LearningMove(player, moves, state.Board, history, state.MovesMade, working, that.depth)

		next, ok := wallconnect.ApplyMove(state, move)
		if !ok {
			move = moves[that.random.Intn(len(moves))]
			next, _ = wallconnect.ApplyMove(state, move)
		}

		state = next
		history = append(history, entity.MoveHistoryItem{Player: player, Move: move})

		if wallconnect.HasWin(&state.Board, player) {
			return history, player, true
		}
	}
}
