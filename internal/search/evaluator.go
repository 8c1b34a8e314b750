package search

import (
	"github.com/rocketscienceinc/cazconnect-backend/internal/entity"
	"github.com/rocketscienceinc/cazconnect-backend/internal/wallconnect"
)

// Evaluator scores a board from player's point of view.
type Evaluator func(board *entity.Board, player entity.Cell) int

const (
	scoreFour            = 100000
	scoreThree           = 100
	scoreTwo             = 10
	penaltyOpponentThree = 5000
	penaltyOpponentTwo   = 50
)

// PositionalWeights favours the centre of the board.
var PositionalWeights = [entity.BoardSize][entity.BoardSize]int{
	{3, 4, 5, 7, 7, 5, 4, 3},
	{4, 6, 8, 10, 10, 8, 6, 4},
	{5, 8, 11, 13, 13, 11, 8, 5},
	{7, 10, 13, 16, 16, 13, 10, 7},
	{7, 10, 13, 16, 16, 13, 10, 7},
	{5, 8, 11, 13, 13, 11, 8, 5},
	{4, 6, 8, 10, 10, 8, 6, 4},
	{3, 4, 5, 7, 7, 5, 4, 3},
}

// Tactical sums the score of every 4-cell window on the board.
func Tactical(board *entity.Board, player entity.Cell) int {
	opponent := player.Opponent()
	score := 0
	last := entity.WinLength - 1

	for row := 0; row < entity.BoardSize; row++ {
		for col := 0; col < entity.BoardSize; col++ {
			for _, dir := range wallconnect.Directions {
				if !entity.InBounds(row+last*dir[0], col+last*dir[1]) {
					continue
				}

				var own, theirs, empty int
				for i := 0; i < entity.WinLength; i++ {
					switch board[row+i*dir[0]][col+i*dir[1]] {
					case player:
						own++
					case opponent:
						theirs++
					default:
						empty++
					}
				}

				score += scoreWindow(own, theirs, empty)
			}
		}
	}

	return score
}

func scoreWindow(own, theirs, empty int) int {
	score := 0

	switch {
	case own == 4:
		score += scoreFour
	case own == 3 && empty == 1:
		score += scoreThree
	case own == 2 && empty == 2:
		score += scoreTwo
	}

	switch {
	case theirs == 3 && empty == 1:
		score -= penaltyOpponentThree
	case theirs == 2 && empty == 2:
		score -= penaltyOpponentTwo
	}

	return score
}

// Strategic is Tactical plus the positional weight of every owned cell minus the opponent's.
func Strategic(board *entity.Board, player entity.Cell) int {
	score := Tactical(board, player)

	for row := 0; row < entity.BoardSize; row++ {
		for col := 0; col < entity.BoardSize; col++ {
			switch board[row][col] {
			case entity.EmptyCell:
			case player:
				score += PositionalWeights[row][col]
			default:
				score -= PositionalWeights[row][col]
			}
		}
	}

	return score
}
