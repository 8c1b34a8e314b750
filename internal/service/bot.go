package service

import (
	"fmt"
	"sync"

	"golang.org/x/exp/rand"

	"github.com/rocketscienceinc/cazconnect-backend/internal/apperror"
	"github.com/rocketscienceinc/cazconnect-backend/internal/entity"
	"github.com/rocketscienceinc/cazconnect-backend/internal/memory"
	"github.com/rocketscienceinc/cazconnect-backend/internal/search"
	"github.com/rocketscienceinc/cazconnect-backend/internal/wallconnect"
)

const (
	LearningDepth = 4

	// expertDeepAfter is the move count after which expert searches one ply deeper.
	expertDeepAfter = 20
)

type BotService interface {
	ChooseMove(state entity.GameState, difficulty entity.Difficulty, history entity.History, book *memory.Book) (entity.Move, error)
	LearningMove(player entity.Cell, moves []entity.Move, board entity.Board, history entity.History, movesMade int, book *memory.Book, depth int) entity.Move
	MakeTurn(game *entity.Game, book *memory.Book) error
}

// Randomizer is a seedable random source that is safe for concurrent use.
type Randomizer struct {
	mu  sync.Mutex
	rng *rand.Rand
}

func NewRandomizer(seed uint64) *Randomizer {
	return &Randomizer{rng: rand.New(rand.NewSource(seed))}
}

func (that *Randomizer) Intn(n int) int {
	that.mu.Lock()
	defer that.mu.Unlock()

	return that.rng.Intn(n)
}

type botService struct {
	random *Randomizer
}

func NewBotService(random *Randomizer) BotService {
	return &botService{random: random}
}

type searchSetting struct {
	depth    int
	evaluate search.Evaluator
}

func searchSettingFor(difficulty entity.Difficulty, movesMade int) (searchSetting, error) {
	switch difficulty {
	case entity.DifficultyMedium:
		return searchSetting{depth: 2, evaluate: search.Tactical}, nil
	case entity.DifficultyHard:
		return searchSetting{depth: 3, evaluate: search.Strategic}, nil
	case entity.DifficultyExpert:
		if movesMade > expertDeepAfter {
			return searchSetting{depth: 4, evaluate: search.Strategic}, nil
		}
		return searchSetting{depth: 3, evaluate: search.Strategic}, nil
	default:
		return searchSetting{}, fmt.Errorf("%w: %q has no search setting", entity.ErrUnknownDifficulty, string(difficulty))
	}
}

// ChooseMove - picks the move for the side to move in state.
func (that *botService) ChooseMove(state entity.GameState, difficulty entity.Difficulty, history entity.History, book *memory.Book) (entity.Move, error) {
	moves := wallconnect.LegalMoves(&state.Board, state.MovesMade)
	if len(moves) == 0 {
		return entity.Move{}, apperror.ErrNoLegalMoves
	}

	switch difficulty {
	case entity.DifficultyEasy:
		return that.easyMove(state.Mover, moves, state.Board), nil
	case entity.DifficultyLearning:
		if book == nil {
			book = memory.NewBook()
		}
		return that.LearningMove(state.Mover, moves, state.Board, history, state.MovesMade, book, LearningDepth), nil
	}

	setting, err := searchSettingFor(difficulty, state.MovesMade)
	if err != nil {
		return entity.Move{}, err
	}

	result := search.Minimax(state.Board, state.MovesMade, state.Mover == entity.ComputerPlayer,
		search.WithDepth(setting.depth),
		search.WithEvaluator(setting.evaluate),
	)
	if !result.Found {
		return moves[0], nil
	}

	return result.Move, nil
}

// MakeTurn - lets the computer play its move in game.
func (that *botService) MakeTurn(game *entity.Game, book *memory.Book) error {
	move, err := that.ChooseMove(game.State, game.Difficulty, game.History, book)
	if err != nil {
		return fmt.Errorf("bot failed to choose move: %w", err)
	}

	if err = wallconnect.MakeTurn(game, game.State.Mover, move); err != nil {
		return fmt.Errorf("bot failed to make turn: %w", err)
	}

	return nil
}

func (that *botService) easyMove(player entity.Cell, moves []entity.Move, board entity.Board) entity.Move {
	if move, ok := tacticalMove(player, moves, board); ok {
		return move
	}

	return that.randomMove(moves)
}

func (that *botService) randomMove(moves []entity.Move) entity.Move {
	return moves[that.random.Intn(len(moves))]
}

// tacticalMove returns a move that wins on the spot, or else one that takes away the opponent's win.
func tacticalMove(player entity.Cell, moves []entity.Move, board entity.Board) (entity.Move, bool) {
	if move, ok := winningMove(player, moves, board); ok {
		return move, true
	}

	return winningMove(player.Opponent(), moves, board)
}

func winningMove(player entity.Cell, moves []entity.Move, board entity.Board) (entity.Move, bool) {
	for _, move := range moves {
		next := board
		next[move.Row][move.Col] = player
		if wallconnect.HasWin(&next, player) {
			return move, true
		}
	}

	return entity.Move{}, false
}
