package wallconnect

import "github.com/rocketscienceinc/cazconnect-backend/internal/entity"

// orthogonal directions used for the chain-to-wall rule. Diagonals never count.
var orthogonal = [4][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}

// IsOnWall reports whether the cell is on the outer ring.
func IsOnWall(row, col int) bool {
	last := entity.BoardSize - 1
	return row == 0 || row == last || col == 0 || col == last
}

// IsLegal - checks whether a piece may be placed on move.
func IsLegal(board *entity.Board, move entity.Move, movesMade int) bool {
	if !entity.InBounds(move.Row, move.Col) || board.At(move) != entity.EmptyCell {
		return false
	}

	if IsOnWall(move.Row, move.Col) {
		return true
	}

	if movesMade == 0 {
		return false
	}

	for _, dir := range orthogonal {
		if chainsToWall(board, move, dir[0], dir[1]) {
			return true
		}
	}

	return false
}

// chainsToWall walks from move towards the edge and requires every cell on the way to be occupied.
func chainsToWall(board *entity.Board, move entity.Move, dr, dc int) bool {
	row, col := move.Row+dr, move.Col+dc
	hasPiece := false

	for entity.InBounds(row, col) {
		if board[row][col] == entity.EmptyCell {
			return false
		}

		hasPiece = true
		row += dr
		col += dc
	}

	return hasPiece
}

// LegalMoves - returns every legal target in row-major order.
func LegalMoves(board *entity.Board, movesMade int) []entity.Move {
	moves := make([]entity.Move, 0, entity.BoardSize*entity.BoardSize)

	for row := 0; row < entity.BoardSize; row++ {
		for col := 0; col < entity.BoardSize; col++ {
			move := entity.Move{Row: row, Col: col}
			if IsLegal(board, move, movesMade) {
				moves = append(moves, move)
			}
		}
	}

	return moves
}

// HasLegalMoves is LegalMoves without the allocation.
func HasLegalMoves(board *entity.Board, movesMade int) bool {
	for row := 0; row < entity.BoardSize; row++ {
		for col := 0; col < entity.BoardSize; col++ {
			if IsLegal(board, entity.Move{Row: row, Col: col}, movesMade) {
				return true
			}
		}
	}

	return false
}

// ApplyMove - places the mover's piece and hands the turn over. An illegal move is refused:
// the state comes back unchanged together with false.
func ApplyMove(state entity.GameState, move entity.Move) (entity.GameState, bool) {
	if !state.Mover.IsPlayer() || !IsLegal(&state.Board, move, state.MovesMade) {
		return state, false
	}

	next := state
	next.Board.Place(move, state.Mover)
	next.MovesMade++
	next.Mover = state.Mover.Opponent()

	return next, true
}
