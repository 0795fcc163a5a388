package model

import (
	"testing"
	"time"
)

func TestPositionState_IsOpenOnValue(t *testing.T) {
	// IsOpen must be callable on a plain value, including directly on a
	// function result, since callers chain it off state snapshots.
	flat := func() PositionState { return PositionState{} }
	if flat().IsOpen() {
		t.Error("zero state must be flat")
	}

	side := SideLong
	long := func() PositionState {
		return PositionState{
			OpenPosition: &side,
			EntryPrice:   100,
			EntryTime:    time.Date(2024, 6, 3, 10, 0, 0, 0, time.UTC),
		}
	}
	if !long().IsOpen() {
		t.Error("LONG state must report open")
	}

	other := Side("SHORT")
	if (PositionState{OpenPosition: &other}).IsOpen() {
		t.Error("unrecognized side must not report open")
	}
}
