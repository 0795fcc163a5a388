package position

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"TrendSentry/internal/model"
)

func TestLoadState_MissingFileDefaultsFlat(t *testing.T) {
	state, err := LoadState(filepath.Join(t.TempDir(), "absent.json"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if state.IsOpen() || state.EntryPrice != 0 || !state.EntryTime.IsZero() {
		t.Errorf("expected default flat state, got %+v", state)
	}
}

func TestSaveState_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.json")
	side := model.SideLong
	want := &model.PositionState{
		OpenPosition: &side,
		EntryPrice:   2500.50,
		EntryTime:    time.Date(2024, 6, 3, 10, 0, 0, 0, time.UTC),
	}
	if err := SaveState(path, want); err != nil {
		t.Fatalf("save: %v", err)
	}
	if _, err := os.Stat(path + ".tmp"); !os.IsNotExist(err) {
		t.Error("temp file must not survive a successful save")
	}

	got, err := LoadState(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if !got.IsOpen() || got.EntryPrice != want.EntryPrice || !got.EntryTime.Equal(want.EntryTime) {
		t.Errorf("round trip mismatch: %+v", got)
	}
}

func TestLoadState_CorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadState(path); err == nil {
		t.Fatal("expected error for malformed state file")
	}
}

func TestLoadState_UnrecognizedPositionValue(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.json")
	body := `{"open_position":"SHORT","entry_price":100,"entry_time":"2024-06-03T10:00:00Z"}`
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadState(path); err == nil {
		t.Fatal("unrecognized open_position must be an error, not a silent reset")
	}
}

func TestLoadState_OpenWithoutEntryFields(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.json")
	body := `{"open_position":"LONG","entry_price":0}`
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadState(path); err == nil {
		t.Fatal("open position without entry fields must be an error")
	}
}
