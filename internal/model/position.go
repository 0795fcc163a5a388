package model

import "time"

// Side is the direction of an open position.
type Side string

// SideLong is the only side the engine opens.
const SideLong Side = "LONG"

// PositionState is the single persisted position. OpenPosition is nil when
// flat; EntryPrice and EntryTime are set if and only if a position is open.
type PositionState struct {
	OpenPosition *Side     `json:"open_position"`
	EntryPrice   float64   `json:"entry_price"`
	EntryTime    time.Time `json:"entry_time,omitzero"`
}

// IsOpen reports whether a long position is currently held.
func (s PositionState) IsOpen() bool {
	return s.OpenPosition != nil && *s.OpenPosition == SideLong
}
