package entity

import (
	"errors"
	"fmt"
)

const (
	BoardSize = 8
	WinLength = 4
)

// Cell is the content of a single board square.
type Cell uint8

const (
	EmptyCell Cell = iota
	PlayerX
	PlayerO
)

const (
	// ComputerPlayer is the side the computer plays and the side memory outcomes are recorded for.
	ComputerPlayer = PlayerO
	HumanPlayer    = PlayerX
)

var ErrUnknownCell = errors.New("unknown cell value")

func (that Cell) String() string {
	switch that {
	case PlayerX:
		return "X"
	case PlayerO:
		return "O"
	default:
		return ""
	}
}

// Opponent returns the other player. EmptyCell has no opponent.
func (that Cell) Opponent() Cell {
	switch that {
	case PlayerX:
		return PlayerO
	case PlayerO:
		return PlayerX
	default:
		return EmptyCell
	}
}

func (that Cell) IsPlayer() bool {
	return that == PlayerX || that == PlayerO
}

func (that Cell) MarshalText() ([]byte, error) {
	return []byte(that.String()), nil
}

func (that *Cell) UnmarshalText(text []byte) error {
	cell, err := ParseCell(string(text))
	if err != nil {
		return err
	}

	*that = cell

	return nil
}

func ParseCell(value string) (Cell, error) {
	switch value {
	case "":
		return EmptyCell, nil
	case "X":
		return PlayerX, nil
	case "O":
		return PlayerO, nil
	default:
		return EmptyCell, fmt.Errorf("%w: %q", ErrUnknownCell, value)
	}
}

// Move is a board coordinate.
type Move struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

func (that Move) String() string {
	return fmt.Sprintf("%d,%d", that.Row, that.Col)
}

// Line is the evidence of a win: collinear moves owned by one player.
type Line []Move

// Board is a row-major grid. Being an array, assignment copies it.
type Board [BoardSize][BoardSize]Cell

func InBounds(row, col int) bool {
	return row >= 0 && row < BoardSize && col >= 0 && col < BoardSize
}

func (that *Board) At(move Move) Cell {
	return that[move.Row][move.Col]
}

// Place puts player on an empty in-bounds cell and reports whether it did.
func (that *Board) Place(move Move, player Cell) bool {
	if !InBounds(move.Row, move.Col) || that[move.Row][move.Col] != EmptyCell || !player.IsPlayer() {
		return false
	}

	that[move.Row][move.Col] = player

	return true
}

func (that *Board) Occupied() int {
	count := 0
	for _, row := range that {
		for _, cell := range row {
			if cell != EmptyCell {
				count++
			}
		}
	}

	return count
}

// GameState is the value a turn transitions. MovesMade always equals Board.Occupied().
type GameState struct {
	Board     Board `json:"board"`
	Mover     Cell  `json:"mover"`
	MovesMade int   `json:"moves_made"`
}

func NewGameState(starter Cell) GameState {
	return GameState{Mover: starter}
}
