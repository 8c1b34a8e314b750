package entity

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

const (
	historySeparator = ";"
	playerSeparator  = ":"
	coordSeparator   = ","
)

var ErrMalformedHistory = errors.New("malformed history token")

// MoveHistoryItem is one placement in play order.
type MoveHistoryItem struct {
	Player Cell `json:"player"`
	Move
}

// Token renders the item as "player:row,col".
func (that MoveHistoryItem) Token() string {
	return that.Player.String() + playerSeparator + strconv.Itoa(that.Row) + coordSeparator + strconv.Itoa(that.Col)
}

func ParseToken(token string) (MoveHistoryItem, error) {
	player, coords, found := strings.Cut(token, playerSeparator)
	if !found {
		return MoveHistoryItem{}, fmt.Errorf("%w: %q", ErrMalformedHistory, token)
	}

	mark, err := ParseCell(player)
	if err != nil || !mark.IsPlayer() {
		return MoveHistoryItem{}, fmt.Errorf("%w: %q", ErrMalformedHistory, token)
	}

	rawRow, rawCol, found := strings.Cut(coords, coordSeparator)
	if !found {
		return MoveHistoryItem{}, fmt.Errorf("%w: %q", ErrMalformedHistory, token)
	}

	row, err := strconv.Atoi(rawRow)
	if err != nil {
		return MoveHistoryItem{}, fmt.Errorf("%w: %q", ErrMalformedHistory, token)
	}

	col, err := strconv.Atoi(rawCol)
	if err != nil {
		return MoveHistoryItem{}, fmt.Errorf("%w: %q", ErrMalformedHistory, token)
	}

	return MoveHistoryItem{Player: mark, Move: Move{Row: row, Col: col}}, nil
}

// History is the append-only log of a single game.
type History []MoveHistoryItem

// Key returns the canonical serialization used to store and look up games in memory.
func (that History) Key() HistoryKey {
	tokens := make([]string, len(that))
	for i, item := range that {
		tokens[i] = item.Token()
	}

	return HistoryKey(strings.Join(tokens, historySeparator))
}

// HistoryKey is a canonical history serialization: tokens joined by ";".
type HistoryKey string

func (that HistoryKey) Tokens() []string {
	if that == "" {
		return nil
	}

	return strings.Split(string(that), historySeparator)
}

// Len is the number of moves in the key.
func (that HistoryKey) Len() int {
	if that == "" {
		return 0
	}

	return strings.Count(string(that), historySeparator) + 1
}

// Continuation returns the token that directly follows prefix in the key. Matching is done per
// token, so "O:0,1" is never treated as a prefix of "O:0,10".
func (that HistoryKey) Continuation(prefix HistoryKey) (string, bool) {
	if prefix == "" {
		next, _, _ := strings.Cut(string(that), historySeparator)
		return next, next != ""
	}

	rest, found := strings.CutPrefix(string(that), string(prefix)+historySeparator)
	if !found {
		return "", false
	}

	next, _, _ := strings.Cut(rest, historySeparator)

	return next, next != ""
}

// History parses the key back into items.
func (that HistoryKey) History() (History, error) {
	tokens := that.Tokens()
	history := make(History, 0, len(tokens))

	for _, token := range tokens {
		item, err := ParseToken(token)
		if err != nil {
			return nil, err
		}

		history = append(history, item)
	}

	return history, nil
}
