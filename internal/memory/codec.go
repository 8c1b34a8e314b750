package memory

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/rocketscienceinc/cazconnect-backend/internal/apperror"
	"github.com/rocketscienceinc/cazconnect-backend/internal/entity"
)

type rawEntry struct {
	Moves *entity.HistoryKey `json:"moves"`
}

// Decode parses an exported memory blob. Both "wins" and "losses" must be present and be arrays
// of objects with a non-empty "moves" string.
func Decode(data []byte) (entity.GameMemory, error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return entity.GameMemory{}, fmt.Errorf("%w: %w", apperror.ErrInvalidMemoryFormat, err)
	}

	for _, name := range []string{"wins", "losses"} {
		raw, ok := fields[name]
		if !ok || !isArray(raw) {
			return entity.GameMemory{}, fmt.Errorf("%w: %q must be an array", apperror.ErrInvalidMemoryFormat, name)
		}
	}

	wins, err := decodeEntries("wins", fields["wins"])
	if err != nil {
		return entity.GameMemory{}, err
	}

	losses, err := decodeEntries("losses", fields["losses"])
	if err != nil {
		return entity.GameMemory{}, err
	}

	return entity.GameMemory{Wins: wins, Losses: losses}, nil
}

func decodeEntries(name string, raw json.RawMessage) ([]entity.MemoryEntry, error) {
	var rawEntries []rawEntry
	if err := json.Unmarshal(raw, &rawEntries); err != nil {
		return nil, fmt.Errorf("%w: %s: %w", apperror.ErrInvalidMemoryFormat, name, err)
	}

	entries := make([]entity.MemoryEntry, 0, len(rawEntries))
	for i, entry := range rawEntries {
		if entry.Moves == nil || *entry.Moves == "" {
			return nil, fmt.Errorf("%w: %s[%d] has no moves", apperror.ErrInvalidMemoryFormat, name, i)
		}

		entries = append(entries, entity.MemoryEntry{Moves: *entry.Moves})
	}

	return entries, nil
}

func isArray(raw json.RawMessage) bool {
	trimmed := bytes.TrimSpace(raw)
	return len(trimmed) > 0 && trimmed[0] == '['
}

// Encode renders memory the way it is exported: indented by two spaces.
func Encode(gameMemory entity.GameMemory) ([]byte, error) {
	data, err := json.MarshalIndent(gameMemory, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("could not marshal memory: %w", err)
	}

	return data, nil
}
