package apperror

import "errors"

var (
	ErrGameFinished        = errors.New("game is already finished")
	ErrGameNotFound        = errors.New("game not found")
	ErrNotYourTurn         = errors.New("it's not your turn")
	ErrIllegalMove         = errors.New("move is not legal")
	ErrNoLegalMoves        = errors.New("no legal moves")
	ErrInvalidMemoryFormat = errors.New("invalid memory file format")
	ErrTrainingInProgress  = errors.New("training is already in progress")
)
