package position

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"TrendSentry/internal/model"
)

// LoadState reads the position state from a JSON file. A missing file yields
// the default flat state; a malformed file or an unrecognized open_position
// value is an error, never silently reset, so a real anomaly is not masked.
func LoadState(filePath string) (*model.PositionState, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		if os.IsNotExist(err) {
			return &model.PositionState{}, nil
		}
		return nil, fmt.Errorf("read state file: %w", err)
	}
	var state model.PositionState
	if err := json.Unmarshal(data, &state); err != nil {
		return nil, fmt.Errorf("state file corrupt: %w", err)
	}
	if state.OpenPosition != nil && *state.OpenPosition != model.SideLong {
		return nil, fmt.Errorf("state file corrupt: unrecognized open_position %q", *state.OpenPosition)
	}
	if state.IsOpen() && (state.EntryPrice <= 0 || state.EntryTime.IsZero()) {
		return nil, fmt.Errorf("state file corrupt: open position missing entry price or time")
	}
	if !state.IsOpen() && state.EntryPrice != 0 {
		return nil, fmt.Errorf("state file corrupt: flat state carries entry price %.2f", state.EntryPrice)
	}
	return &state, nil
}

// SaveState writes the position state atomically: the new state is written to
// a temp file and renamed over the old one, so a concurrent reader never
// observes a torn record.
func SaveState(filePath string, state *model.PositionState) error {
	if err := os.MkdirAll(filepath.Dir(filePath), 0o755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(state, "", "  ")
	if err != nil {
		return err
	}
	tmp := filePath + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, filePath)
}
