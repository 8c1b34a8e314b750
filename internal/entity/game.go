package entity

import "fmt"

const (
	StatusFinished = "finished"
	StatusOngoing  = "ongoing"
)

// Game is one interactive session: the live state plus everything the host needs to render it.
type Game struct {
	ID         string       `json:"id"`
	State      GameState    `json:"state"`
	History    History      `json:"history"`
	Mode       Mode         `json:"mode"`
	Difficulty Difficulty   `json:"difficulty"`
	Status     string       `json:"status"`
	Winner     Cell         `json:"winner"`
	WinLine    Line         `json:"win_line,omitempty"`
	LastMove   *Move        `json:"last_move,omitempty"`
	Scores     map[Cell]int `json:"scores"`
	Starter    Cell         `json:"starter"`
	NextStart  Cell         `json:"-"`
}

func NewGame(id string, mode Mode, difficulty Difficulty) *Game {
	game := &Game{
		ID:         id,
		Mode:       mode,
		Difficulty: difficulty,
		Scores:     map[Cell]int{PlayerX: 0, PlayerO: 0},
	}
	game.Restart(PlayerX)

	return game
}

// Restart clears the board and history; scores survive. The starter after this one alternates.
func (that *Game) Restart(starter Cell) {
	that.State = NewGameState(starter)
	that.History = History{}
	that.Status = StatusOngoing
	that.Winner = EmptyCell
	that.WinLine = nil
	that.LastMove = nil
	that.Starter = starter
	that.NextStart = starter.Opponent()
}

func (that *Game) IsFinished() bool {
	return that.Status == StatusFinished
}

func (that *Game) IsOngoing() bool {
	return that.Status == StatusOngoing
}

func (that *Game) IsAgainstComputer() bool {
	return that.Mode == ModePvC
}

// IsComputerTurn reports whether the computer should move next.
func (that *Game) IsComputerTurn() bool {
	return that.IsOngoing() && that.IsAgainstComputer() && that.State.Mover == ComputerPlayer
}

func (that *Game) StatusText() string {
	switch {
	case that.IsFinished() && that.Winner.IsPlayer():
		return fmt.Sprintf("Player %s Wins!", that.Winner)
	case that.IsFinished():
		return "It's a Draw!"
	default:
		return fmt.Sprintf("Player %s's Turn", that.State.Mover)
	}
}
