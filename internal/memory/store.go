package memory

import (
	"sync"

	"github.com/rocketscienceinc/cazconnect-backend/internal/entity"
)

// Store is the single owner of the live book. Readers get private snapshots; writers replace
// or extend the whole set under the lock, so a reader never sees a half-applied update.
type Store struct {
	mu   sync.RWMutex
	book *Book
}

func NewStore(book *Book) *Store {
	if book == nil {
		book = NewBook()
	}

	return &Store{book: book}
}

// Snapshot returns a copy that is safe to use without further locking.
func (that *Store) Snapshot() *Book {
	that.mu.RLock()
	defer that.mu.RUnlock()

	return that.book.Clone()
}

// Record files a finished interactive game and reports whether the memory changed.
func (that *Store) Record(history entity.History, winner entity.Cell) bool {
	that.mu.Lock()
	defer that.mu.Unlock()

	return that.book.Record(history, winner)
}

// Commit unions a working copy into the store and returns how many games were new.
func (that *Store) Commit(working *Book) int {
	that.mu.Lock()
	defer that.mu.Unlock()

	return that.book.Merge(working)
}

// Replace swaps the whole book, as an import does.
func (that *Store) Replace(book *Book) {
	that.mu.Lock()
	defer that.mu.Unlock()

	that.book = book.Clone()
}

func (that *Store) Counts() (wins, losses int) {
	that.mu.RLock()
	defer that.mu.RUnlock()

	return len(that.book.wins.keys), len(that.book.losses.keys)
}

func (that *Store) GameMemory() entity.GameMemory {
	that.mu.RLock()
	defer that.mu.RUnlock()

	return that.book.GameMemory()
}
