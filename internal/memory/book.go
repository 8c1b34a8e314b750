package memory

import "github.com/rocketscienceinc/cazconnect-backend/internal/entity"

// Outcome labels a recorded game from the computer's perspective.
type Outcome int

const (
	Win Outcome = iota
	Loss
)

// OutcomeFor maps a winner to the collection the game belongs in. Draws are never recorded.
func OutcomeFor(winner entity.Cell) (Outcome, bool) {
	switch winner {
	case entity.ComputerPlayer:
		return Win, true
	case entity.HumanPlayer:
		return Loss, true
	default:
		return Win, false
	}
}

// keySet keeps insertion order and rejects duplicates.
type keySet struct {
	keys  []entity.HistoryKey
	index map[entity.HistoryKey]struct{}
}

func newKeySet() keySet {
	return keySet{index: make(map[entity.HistoryKey]struct{})}
}

func (that *keySet) add(key entity.HistoryKey) bool {
	if _, ok := that.index[key]; ok {
		return false
	}

	that.index[key] = struct{}{}
	that.keys = append(that.keys, key)

	return true
}

func (that *keySet) clone() keySet {
	cloned := keySet{
		keys:  make([]entity.HistoryKey, len(that.keys)),
		index: make(map[entity.HistoryKey]struct{}, len(that.index)),
	}
	copy(cloned.keys, that.keys)
	for key := range that.index {
		cloned.index[key] = struct{}{}
	}

	return cloned
}

// Book is the set of finished games the computer learned from. The zero value is not usable;
// use NewBook or FromGameMemory.
type Book struct {
	wins   keySet
	losses keySet
}

func NewBook() *Book {
	return &Book{
		wins:   newKeySet(),
		losses: newKeySet(),
	}
}

// FromGameMemory builds a book from the persisted format, dropping duplicate entries.
func FromGameMemory(gameMemory entity.GameMemory) *Book {
	book := NewBook()
	for _, entry := range gameMemory.Wins {
		book.wins.add(entry.Moves)
	}
	for _, entry := range gameMemory.Losses {
		book.losses.add(entry.Moves)
	}

	return book
}

func (that *Book) set(outcome Outcome) *keySet {
	if outcome == Loss {
		return &that.losses
	}

	return &that.wins
}

// Add records key under outcome and reports whether it was new.
func (that *Book) Add(outcome Outcome, key entity.HistoryKey) bool {
	return that.set(outcome).add(key)
}

// Record files a finished game by its winner. Draws and repeats are ignored.
func (that *Book) Record(history entity.History, winner entity.Cell) bool {
	outcome, ok := OutcomeFor(winner)
	if !ok {
		return false
	}

	return that.Add(outcome, history.Key())
}

// Merge adds every game from other and returns how many were new.
func (that *Book) Merge(other *Book) int {
	added := 0
	for _, key := range other.wins.keys {
		if that.wins.add(key) {
			added++
		}
	}
	for _, key := range other.losses.keys {
		if that.losses.add(key) {
			added++
		}
	}

	return added
}

func (that *Book) Clone() *Book {
	return &Book{
		wins:   that.wins.clone(),
		losses: that.losses.clone(),
	}
}

func (that *Book) Wins() []entity.HistoryKey {
	return append([]entity.HistoryKey(nil), that.wins.keys...)
}

func (that *Book) Losses() []entity.HistoryKey {
	return append([]entity.HistoryKey(nil), that.losses.keys...)
}

func (that *Book) Contains(outcome Outcome, key entity.HistoryKey) bool {
	_, ok := that.set(outcome).index[key]
	return ok
}

// Continuations returns the move played right after prefix in every game of outcome that
// extends prefix. Entries that cannot be parsed are skipped.
func (that *Book) Continuations(outcome Outcome, prefix entity.HistoryKey) []entity.MoveHistoryItem {
	var next []entity.MoveHistoryItem

	for _, key := range that.set(outcome).keys {
		token, ok := key.Continuation(prefix)
		if !ok {
			continue
		}

		item, err := entity.ParseToken(token)
		if err != nil {
			continue
		}

		next = append(next, item)
	}

	return next
}

// GameMemory converts the book to the persisted format.
func (that *Book) GameMemory() entity.GameMemory {
	gameMemory := entity.NewGameMemory()
	for _, key := range that.wins.keys {
		gameMemory.Wins = append(gameMemory.Wins, entity.MemoryEntry{Moves: key})
	}
	for _, key := range that.losses.keys {
		gameMemory.Losses = append(gameMemory.Losses, entity.MemoryEntry{Moves: key})
	}

	return gameMemory
}
