package wallconnect

import "github.com/rocketscienceinc/cazconnect-backend/internal/entity"

// Directions probed for a win: horizontal, vertical, down-right, down-left.
var Directions = [4][2]int{{0, 1}, {1, 0}, {1, 1}, {1, -1}}

// DetectWin - finds the first four-in-a-row for player in row-major scan order and returns it
// extended to its full length in both directions.
func DetectWin(board *entity.Board, player entity.Cell) (entity.Line, bool) {
	if !player.IsPlayer() {
		return nil, false
	}

	for row := 0; row < entity.BoardSize; row++ {
		for col := 0; col < entity.BoardSize; col++ {
			if board[row][col] != player {
				continue
			}

			for _, dir := range Directions {
				if runLength(board, player, row, col, dir[0], dir[1]) == entity.WinLength {
					return extendLine(board, player, row, col, dir[0], dir[1]), true
				}
			}
		}
	}

	return nil, false
}

// HasWin is DetectWin without building the line.
func HasWin(board *entity.Board, player entity.Cell) bool {
	if !player.IsPlayer() {
		return false
	}

	for row := 0; row < entity.BoardSize; row++ {
		for col := 0; col < entity.BoardSize; col++ {
			if board[row][col] != player {
				continue
			}

			for _, dir := range Directions {
				if runLength(board, player, row, col, dir[0], dir[1]) == entity.WinLength {
					return true
				}
			}
		}
	}

	return false
}

// runLength counts owned cells starting at (row, col), capped at the win length.
func runLength(board *entity.Board, player entity.Cell, row, col, dr, dc int) int {
	length := 0
	for length < entity.WinLength {
		r, c := row+length*dr, col+length*dc
		if !entity.InBounds(r, c) || board[r][c] != player {
			break
		}
		length++
	}

	return length
}

func extendLine(board *entity.Board, player entity.Cell, row, col, dr, dc int) entity.Line {
	startRow, startCol := row, col
	for entity.InBounds(startRow-dr, startCol-dc) && board[startRow-dr][startCol-dc] == player {
		startRow -= dr
		startCol -= dc
	}

	var line entity.Line
	for r, c := startRow, startCol; entity.InBounds(r, c) && board[r][c] == player; r, c = r+dr, c+dc {
		line = append(line, entity.Move{Row: r, Col: c})
	}

	return line
}
