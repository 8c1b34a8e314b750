package service

import (
	"github.com/rocketscienceinc/cazconnect-backend/internal/entity"
	"github.com/rocketscienceinc/cazconnect-backend/internal/memory"
	"github.com/rocketscienceinc/cazconnect-backend/internal/search"
)

// LearningMove - plays tactically when it must, otherwise searches among the moves that never
// led player's side to a recorded defeat from this exact history.
func (that *botService) LearningMove(
	player entity.Cell,
	moves []entity.Move,
	board entity.Board,
	history entity.History,
	movesMade int,
	book *memory.Book,
	depth int,
) entity.Move {
	if move, ok := tacticalMove(player, moves, board); ok {
		return move
	}

	avoided := avoidedMoves(player, history, book)

	safe := make([]entity.Move, 0, len(moves))
	for _, move := range moves {
		if _, bad := avoided[move]; !bad {
			safe = append(safe, move)
		}
	}

	if len(safe) == 0 {
		return that.randomMove(moves)
	}

	result := search.Minimax(board, movesMade, player == entity.ComputerPlayer,
		search.WithDepth(depth),
		search.WithEvaluator(search.Strategic),
		search.WithMoves(safe),
	)
	if !result.Found {
		return that.randomMove(moves)
	}

	return result.Move
}

// avoidedMoves collects player's next move in every recorded game that continued from history
// and ended with player's side losing.
func avoidedMoves(player entity.Cell, history entity.History, book *memory.Book) map[entity.Move]struct{} {
	outcome := memory.Win
	if player == entity.ComputerPlayer {
		outcome = memory.Loss
	}

	avoided := make(map[entity.Move]struct{})
	for _, next := range book.Continuations(outcome, history.Key()) {
		if next.Player == player {
			avoided[next.Move] = struct{}{}
		}
	}

	return avoided
}
