package wallconnect

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/cazconnect-backend/internal/entity"
)

func TestDetectWin(t *testing.T) {
	t.Run("Diagonal four", func(t *testing.T) {
		// Given: four O's on the main diagonal
		board := boardFrom(t,
			"........",
			"........",
			"..O.....",
			"...O....",
			"....O...",
			".....O..",
			"........",
			"........",
		)

		// When: the win is detected
		line, won := DetectWin(&board, entity.PlayerO)

		// Then: the line is exactly those four cells
		require.True(t, won)
		assert.Equal(t, entity.Line{{Row: 2, Col: 2}, {Row: 3, Col: 3}, {Row: 4, Col: 4}, {Row: 5, Col: 5}}, line)

		_, won = DetectWin(&board, entity.PlayerX)
		assert.False(t, won)
	})

	t.Run("Line is extended in both directions", func(t *testing.T) {
		board := boardFrom(t,
			"........",
			".O......",
			"..O.....",
			"...O....",
			"....O...",
			".....O..",
			"......O.",
			"........",
		)

		line, won := DetectWin(&board, entity.PlayerO)

		require.True(t, won)
		assert.Len(t, line, 6)
		assert.Equal(t, entity.Move{Row: 1, Col: 1}, line[0])
		assert.Equal(t, entity.Move{Row: 6, Col: 6}, line[5])
	})

	t.Run("Anti-diagonal and horizontal", func(t *testing.T) {
		board := boardFrom(t,
			".......X",
			"......X.",
			".....X..",
			"....X...",
			"........",
			"........",
			"........",
			"OOOOO...",
		)

		line, won := DetectWin(&board, entity.PlayerX)
		require.True(t, won)
		assert.Equal(t, entity.Line{{Row: 0, Col: 7}, {Row: 1, Col: 6}, {Row: 2, Col: 5}, {Row: 3, Col: 4}}, line)

		line, won = DetectWin(&board, entity.PlayerO)
		require.True(t, won)
		assert.Len(t, line, 5)
		assert.True(t, HasWin(&board, entity.PlayerO))
	})

	t.Run("Three is not a win", func(t *testing.T) {
		board := boardFrom(t,
			"XXX.....",
			"X.......",
			"X.......",
			"........",
			"........",
			"........",
			"........",
			"........",
		)

		_, won := DetectWin(&board, entity.PlayerX)
		assert.False(t, won)
		assert.False(t, HasWin(&board, entity.PlayerX))
		assert.False(t, HasWin(&board, entity.EmptyCell))
	})

	t.Run("Empty cells never win", func(t *testing.T) {
		// Given: an empty board, where every line is four empty cells
		var board entity.Board

		// When: the empty cell is checked as if it were a player
		_, won := DetectWin(&board, entity.EmptyCell)

		// Then: neither check reports a win
		assert.False(t, won)
		assert.False(t, HasWin(&board, entity.EmptyCell))
	})
}
