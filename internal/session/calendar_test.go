package session

import (
	"testing"
	"time"
)

func newTestCalendar(t *testing.T) *Calendar {
	t.Helper()
	cal, err := NewCalendar("UTC", "09:15", "15:30", []int{1, 2, 3, 4, 5})
	if err != nil {
		t.Fatalf("new calendar: %v", err)
	}
	return cal
}

func TestAdmit_SessionWindow(t *testing.T) {
	cal := newTestCalendar(t)
	// Monday 2024-06-03.
	day := time.Date(2024, 6, 3, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name  string
		at    time.Time
		admit bool
	}{
		{"mid-session", day.Add(12 * time.Hour), true},
		{"exactly at open", day.Add(9*time.Hour + 15*time.Minute), true},
		{"exactly at close", day.Add(15*time.Hour + 30*time.Minute), true},
		{"one minute before open", day.Add(9*time.Hour + 14*time.Minute), false},
		{"one minute after close", day.Add(15*time.Hour + 31*time.Minute), false},
		{"saturday", day.AddDate(0, 0, 5).Add(12 * time.Hour), false},
		{"sunday", day.AddDate(0, 0, 6).Add(12 * time.Hour), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := cal.Admit(tt.at); got != tt.admit {
				t.Errorf("Admit(%s) = %v, want %v", tt.at, got, tt.admit)
			}
		})
	}
}

func TestAdmit_Idempotent(t *testing.T) {
	cal := newTestCalendar(t)
	at := time.Date(2024, 6, 3, 11, 0, 0, 0, time.UTC)
	first := cal.Admit(at)
	for i := 0; i < 10; i++ {
		if cal.Admit(at) != first {
			t.Fatal("identical clock input must yield identical admit/deny")
		}
	}
}

func TestAdmit_TimezoneConversion(t *testing.T) {
	cal, err := NewCalendar("Asia/Kolkata", "09:15", "15:30", []int{1, 2, 3, 4, 5})
	if err != nil {
		t.Skipf("tzdata unavailable: %v", err)
	}
	// 05:00 UTC Monday is 10:30 IST, inside the session.
	at := time.Date(2024, 6, 3, 5, 0, 0, 0, time.UTC)
	if !cal.Admit(at) {
		t.Error("expected admission after timezone conversion")
	}
	// 12:00 UTC Monday is 17:30 IST, after close.
	if cal.Admit(at.Add(7 * time.Hour)) {
		t.Error("expected denial after session close in local time")
	}
}

func TestNewCalendar_Validation(t *testing.T) {
	if _, err := NewCalendar("UTC", "15:30", "09:15", []int{1}); err == nil {
		t.Error("close before open must be rejected")
	}
	if _, err := NewCalendar("UTC", "9x15", "15:30", []int{1}); err == nil {
		t.Error("malformed clock must be rejected")
	}
	if _, err := NewCalendar("UTC", "09:15", "15:30", []int{7}); err == nil {
		t.Error("weekday out of range must be rejected")
	}
}
