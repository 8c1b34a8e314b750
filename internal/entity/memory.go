package entity

// MemoryEntry is one recorded game in the persisted memory blob.
type MemoryEntry struct {
	Moves HistoryKey `json:"moves"`
}

// GameMemory is the persisted memory format. Wins and losses are from the computer's perspective.
type GameMemory struct {
	Wins   []MemoryEntry `json:"wins"`
	Losses []MemoryEntry `json:"losses"`
}

func NewGameMemory() GameMemory {
	return GameMemory{
		Wins:   []MemoryEntry{},
		Losses: []MemoryEntry{},
	}
}
