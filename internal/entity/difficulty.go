package entity

import (
	"errors"
	"fmt"
)

type Difficulty string

const (
	DifficultyEasy     Difficulty = "easy"
	DifficultyMedium   Difficulty = "medium"
	DifficultyHard     Difficulty = "hard"
	DifficultyExpert   Difficulty = "expert"
	DifficultyLearning Difficulty = "learning"
)

type Mode string

const (
	ModePvC Mode = "pvc"
	ModePvP Mode = "pvp"
)

var (
	ErrUnknownDifficulty = errors.New("unknown difficulty")
	ErrUnknownMode       = errors.New("unknown game mode")
)

func (that Difficulty) Validate() error {
	switch that {
	case DifficultyEasy, DifficultyMedium, DifficultyHard, DifficultyExpert, DifficultyLearning:
		return nil
	default:
		return fmt.Errorf("%w: %q", ErrUnknownDifficulty, string(that))
	}
}

func (that Mode) Validate() error {
	switch that {
	case ModePvC, ModePvP:
		return nil
	default:
		return fmt.Errorf("%w: %q", ErrUnknownMode, string(that))
	}
}
