package memory

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rocketscienceinc/cazconnect-backend/internal/entity"
)

func TestStore(t *testing.T) {
	t.Run("Snapshot is detached from the store", func(t *testing.T) {
		store := NewStore(nil)
		snapshot := store.Snapshot()

		snapshot.Add(Win, "O:0,0")

		wins, losses := store.Counts()
		assert.Zero(t, wins)
		assert.Zero(t, losses)
	})

	t.Run("Commit unions a working copy", func(t *testing.T) {
		// Given: a working copy taken before an interactive game was recorded
		store := NewStore(nil)
		working := store.Snapshot()
		working.Add(Win, "O:0,0")
		working.Add(Loss, "X:0,0")
		store.Record(entity.History{{Player: entity.PlayerO, Move: entity.Move{Row: 7, Col: 7}}}, entity.ComputerPlayer)

		// When: the working copy is committed
		added := store.Commit(working)

		// Then: both the training games and the interactive one survive
		assert.Equal(t, 2, added)
		wins, losses := store.Counts()
		assert.Equal(t, 2, wins)
		assert.Equal(t, 1, losses)
	})

	t.Run("Replace swaps the whole book", func(t *testing.T) {
		store := NewStore(nil)
		store.Record(entity.History{{Player: entity.PlayerO, Move: entity.Move{Row: 7, Col: 7}}}, entity.ComputerPlayer)

		replacement := NewBook()
		replacement.Add(Loss, "X:0,0")
		store.Replace(replacement)
		replacement.Add(Loss, "X:0,1")

		assert.Equal(t, entity.GameMemory{
			Wins:   []entity.MemoryEntry{},
			Losses: []entity.MemoryEntry{{Moves: "X:0,0"}},
		}, store.GameMemory())
	})

	t.Run("Concurrent writers", func(t *testing.T) {
		store := NewStore(nil)

		var wg sync.WaitGroup
		for i := 0; i < entity.BoardSize; i++ {
			wg.Add(1)
			go func(col int) {
				defer wg.Done()
				store.Record(entity.History{{Player: entity.PlayerX, Move: entity.Move{Row: 0, Col: col}}}, entity.HumanPlayer)
				store.Snapshot()
			}(i)
		}
		wg.Wait()

		_, losses := store.Counts()
		assert.Equal(t, entity.BoardSize, losses)
	})
}
