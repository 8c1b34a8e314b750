package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/cazconnect-backend/internal/entity"
)

func boardFrom(t *testing.T, rows ...string) entity.Board {
	t.Helper()

	require.Len(t, rows, entity.BoardSize)

	var board entity.Board
	for row, line := range rows {
		require.Len(t, line, entity.BoardSize)
		for col, mark := range line {
			switch mark {
			case 'X':
				board[row][col] = entity.PlayerX
			case 'O':
				board[row][col] = entity.PlayerO
			}
		}
	}

	return board
}

func TestMinimax_FirstMoveWinsTies(t *testing.T) {
	// Given: an empty board where every opening scores the same
	var board entity.Board

	// When: the computer searches one ply
	result := Minimax(board, 0, true, WithDepth(1))

	// Then: the first legal move in row-major order is kept
	require.True(t, result.Found)
	assert.Equal(t, entity.Move{Row: 0, Col: 0}, result.Move)
}

func TestMinimax_TakesWin(t *testing.T) {
	// Given: O can complete the second row
	board := boardFrom(t,
		"XXX.....",
		"OOO.....",
		"X.......",
		"........",
		"........",
		"........",
		"........",
		"........",
	)

	// When: O searches two plies
	result := Minimax(board, board.Occupied(), true, WithDepth(2))

	// Then: it wins straight away with the depth bonus of the remaining ply
	require.True(t, result.Found)
	assert.Equal(t, entity.Move{Row: 1, Col: 3}, result.Move)
	assert.Equal(t, WinScore+1*DepthBonus, result.Score)
}

func TestMinimax_MinimizerTakesWin(t *testing.T) {
	// Given: X is to move and can complete the top row
	board := boardFrom(t,
		"XXX.....",
		"OOO.....",
		"........",
		"........",
		"........",
		"........",
		"........",
		"........",
	)

	// When: the search runs for the minimizing side
	result := Minimax(board, board.Occupied(), false, WithDepth(2))

	// Then: X completes its row
	require.True(t, result.Found)
	assert.Equal(t, entity.Move{Row: 0, Col: 3}, result.Move)
	assert.Equal(t, -WinScore-1*DepthBonus, result.Score)
}

func TestMinimax_Terminal(t *testing.T) {
	t.Run("Position already won", func(t *testing.T) {
		board := boardFrom(t,
			"OOOO....",
			"XXX.....",
			"........",
			"........",
			"........",
			"........",
			"........",
			"........",
		)

		result := Minimax(board, board.Occupied(), false, WithDepth(3))

		assert.False(t, result.Found)
		assert.Equal(t, WinScore+3*DepthBonus, result.Score)
	})

	t.Run("No legal moves", func(t *testing.T) {
		board := boardFrom(t,
			"XXOOXXOO",
			"OOXXOOXX",
			"XXOOXXOO",
			"OOXXOOXX",
			"XXOOXXOO",
			"OOXXOOXX",
			"XXOOXXOO",
			"OOXXOOXX",
		)

		result := Minimax(board, 64, true, WithDepth(2))

		assert.False(t, result.Found)
		assert.Equal(t, Tactical(&board, entity.ComputerPlayer), result.Score)
	})
}

func TestMinimax_WithMovesRestrictsRoot(t *testing.T) {
	var board entity.Board

	result := Minimax(board, 0, true, WithDepth(2), WithMoves([]entity.Move{{Row: 7, Col: 7}}))

	require.True(t, result.Found)
	assert.Equal(t, entity.Move{Row: 7, Col: 7}, result.Move)
}

func TestMinimax_PruningMatchesPlainSearch(t *testing.T) {
	boards := map[string]entity.Board{
		"opening": boardFrom(t,
			"...X....",
			"...O....",
			"........",
			"........",
			"........",
			"........",
			"........",
			"........",
		),
		"middle game": boardFrom(t,
			"XO.X....",
			"O..O...X",
			"X.......",
			"........",
			"........",
			".......O",
			"X......X",
			"OX..O..O",
		),
		"threats": boardFrom(t,
			"XX.X....",
			"O.OO....",
			"........",
			"........",
			"........",
			"........",
			"........",
			"O......X",
		),
	}

	for name, board := range boards {
		t.Run(name, func(t *testing.T) {
			for _, maximizing := range []bool{true, false} {
				// Given: the same position searched with and without pruning
				options := []Option{WithDepth(3), WithEvaluator(Strategic)}

				// When: both searches run
				pruned := Minimax(board, board.Occupied(), maximizing, options...)
				plain := Minimax(board, board.Occupied(), maximizing, append(options, withoutPruning())...)

				// Then: they agree on score and move, and pruning visits fewer nodes
				assert.Equal(t, plain.Score, pruned.Score)
				assert.Equal(t, plain.Move, pruned.Move)
				assert.Equal(t, plain.Found, pruned.Found)
				assert.Less(t, pruned.Nodes, plain.Nodes)
			}
		})
	}
}

func TestMinimax_DoesNotTouchBoard(t *testing.T) {
	board := boardFrom(t,
		"X.......",
		"........",
		"........",
		"........",
		"........",
		"........",
		"........",
		".......O",
	)
	before := board

	Minimax(board, 2, true, WithDepth(2))

	assert.Equal(t, before, board)
}
