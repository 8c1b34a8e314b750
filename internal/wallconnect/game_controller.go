package wallconnect

import (
	"fmt"

	"github.com/rocketscienceinc/cazconnect-backend/internal/apperror"
	"github.com/rocketscienceinc/cazconnect-backend/internal/entity"
)

// MakeTurn - applies player's move to the session and settles the game if it ended.
func MakeTurn(gameInstance *entity.Game, player entity.Cell, move entity.Move) error {
	if gameInstance.IsFinished() {
		return apperror.ErrGameFinished
	}

	if gameInstance.State.Mover != player {
		return apperror.ErrNotYourTurn
	}

	next, ok := ApplyMove(gameInstance.State, move)
	if !ok {
		return fmt.Errorf("%w: %s", apperror.ErrIllegalMove, move)
	}

	gameInstance.State = next
	gameInstance.History = append(gameInstance.History, entity.MoveHistoryItem{Player: player, Move: move})
	gameInstance.LastMove = &move

	updateGameStatus(gameInstance, player)

	return nil
}

// updateGameStatus - checks the game status after a move.
func updateGameStatus(gameInstance *entity.Game, player entity.Cell) {
	if line, won := DetectWin(&gameInstance.State.Board, player); won {
		gameInstance.Status = entity.StatusFinished
		gameInstance.Winner = player
		gameInstance.WinLine = line
		if gameInstance.Scores == nil {
			gameInstance.Scores = map[entity.Cell]int{}
		}
		gameInstance.Scores[player]++

		return
	}

	if !HasLegalMoves(&gameInstance.State.Board, gameInstance.State.MovesMade) {
		gameInstance.Status = entity.StatusFinished
		gameInstance.Winner = entity.EmptyCell
	}
}
