package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/cazconnect-backend/internal/entity"
	"github.com/rocketscienceinc/cazconnect-backend/internal/memory"
	"github.com/rocketscienceinc/cazconnect-backend/internal/wallconnect"
)

func replay(t *testing.T, key entity.HistoryKey) (entity.GameState, entity.History) {
	t.Helper()

	history, err := key.History()
	require.NoError(t, err)

	state := entity.NewGameState(history[0].Player)
	for _, item := range history {
		var ok bool
		state, ok = wallconnect.ApplyMove(state, item.Move)
		require.True(t, ok, item.Token())
	}

	return state, history
}

func TestAvoidedMoves(t *testing.T) {
	// Given: a loss and a win recorded from the same opening
	book := memory.FromGameMemory(entity.GameMemory{
		Wins:   []entity.MemoryEntry{{Moves: "O:0,0;X:0,7"}},
		Losses: []entity.MemoryEntry{{Moves: "O:0,0;X:0,7;O:1,0"}},
	})

	t.Run("Computer avoids its losing continuation", func(t *testing.T) {
		_, history := replay(t, "O:0,0;X:0,7")

		avoided := avoidedMoves(entity.PlayerO, history, book)

		assert.Equal(t, map[entity.Move]struct{}{{Row: 1, Col: 0}: {}}, avoided)
	})

	t.Run("Human side avoids the computer's wins", func(t *testing.T) {
		_, history := replay(t, "O:0,0")

		avoided := avoidedMoves(entity.PlayerX, history, book)

		assert.Equal(t, map[entity.Move]struct{}{{Row: 0, Col: 7}: {}}, avoided)
	})

	t.Run("Other positions are unaffected", func(t *testing.T) {
		_, history := replay(t, "O:0,0;X:7,7")

		assert.Empty(t, avoidedMoves(entity.PlayerO, history, book))
	})
}

func TestBotService_LearningMove(t *testing.T) {
	bot := &botService{random: NewRandomizer(3)}
	state, history := replay(t, "O:0,0;X:0,7")
	moves := wallconnect.LegalMoves(&state.Board, state.MovesMade)

	t.Run("Recorded losing move is not played", func(t *testing.T) {
		// Given: O once lost after playing (1,0) here
		book := memory.FromGameMemory(entity.GameMemory{
			Losses: []entity.MemoryEntry{{Moves: "O:0,0;X:0,7;O:1,0"}},
		})

		// When: the learning policy picks O's move
		move := bot.LearningMove(entity.PlayerO, moves, state.Board, history, state.MovesMade, book, 2)

		// Then: (1,0) is never chosen
		assert.NotEqual(t, entity.Move{Row: 1, Col: 0}, move)
		assert.Contains(t, moves, move)
	})

	t.Run("Only remaining safe move is chosen", func(t *testing.T) {
		// Given: every move but (7,3) has lost before
		safe := entity.Move{Row: 7, Col: 3}
		book := memory.NewBook()
		for _, move := range moves {
			if move == safe {
				continue
			}
			lost := append(append(entity.History{}, history...), entity.MoveHistoryItem{Player: entity.PlayerO, Move: move})
			book.Add(memory.Loss, lost.Key())
		}

		// When: the learning policy picks O's move
		move := bot.LearningMove(entity.PlayerO, moves, state.Board, history, state.MovesMade, book, 2)

		// Then: it plays the one move never recorded as a loss
		assert.Equal(t, safe, move)
	})

	t.Run("All moves lost falls back to a legal move", func(t *testing.T) {
		book := memory.NewBook()
		for _, move := range moves {
			lost := append(append(entity.History{}, history...), entity.MoveHistoryItem{Player: entity.PlayerO, Move: move})
			book.Add(memory.Loss, lost.Key())
		}

		move := bot.LearningMove(entity.PlayerO, moves, state.Board, history, state.MovesMade, book, 2)

		assert.Contains(t, moves, move)
	})

	t.Run("Immediate block beats memory", func(t *testing.T) {
		// Given: X threatens the top row and the blocking move is recorded as a loss
		blockState, blockHistory := replay(t, "X:0,0;O:7,0;X:0,1;O:7,7;X:0,2")
		book := memory.FromGameMemory(entity.GameMemory{
			Losses: []entity.MemoryEntry{{Moves: "X:0,0;O:7,0;X:0,1;O:7,7;X:0,2;O:0,3"}},
		})
		blockMoves := wallconnect.LegalMoves(&blockState.Board, blockState.MovesMade)

		move := bot.LearningMove(entity.PlayerO, blockMoves, blockState.Board, blockHistory, blockState.MovesMade, book, 2)

		assert.Equal(t, entity.Move{Row: 0, Col: 3}, move)
	})
}
