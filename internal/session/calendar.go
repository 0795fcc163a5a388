package session

import (
	"fmt"
	"time"
)

// Calendar decides whether an evaluation cycle is admitted, based on a fixed
// session window and a set of eligible weekdays. Admit is pure and cheap; a
// denied cycle does no further work.
type Calendar struct {
	loc         *time.Location
	openMinute  int
	closeMinute int
	weekdays    map[time.Weekday]bool
}

// NewCalendar builds a calendar from "HH:MM" open/close times in the given
// timezone and a weekday set (0=Sunday .. 6=Saturday).
func NewCalendar(timezone, open, close string, weekdays []int) (*Calendar, error) {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, fmt.Errorf("load timezone %q: %w", timezone, err)
	}
	openMin, err := parseClock(open)
	if err != nil {
		return nil, fmt.Errorf("session open: %w", err)
	}
	closeMin, err := parseClock(close)
	if err != nil {
		return nil, fmt.Errorf("session close: %w", err)
	}
	if closeMin <= openMin {
		return nil, fmt.Errorf("session close %s must be after open %s", close, open)
	}
	days := make(map[time.Weekday]bool, len(weekdays))
	for _, d := range weekdays {
		if d < 0 || d > 6 {
			return nil, fmt.Errorf("invalid weekday %d", d)
		}
		days[time.Weekday(d)] = true
	}
	return &Calendar{loc: loc, openMinute: openMin, closeMinute: closeMin, weekdays: days}, nil
}

// Admit reports whether t falls inside the trading session.
func (c *Calendar) Admit(t time.Time) bool {
	local := t.In(c.loc)
	if !c.weekdays[local.Weekday()] {
		return false
	}
	minute := local.Hour()*60 + local.Minute()
	return minute >= c.openMinute && minute <= c.closeMinute
}

func parseClock(v string) (int, error) {
	var h, m int
	if _, err := fmt.Sscanf(v, "%d:%d", &h, &m); err != nil {
		return 0, fmt.Errorf("parse clock %q: %w", v, err)
	}
	if h < 0 || h > 23 || m < 0 || m > 59 {
		return 0, fmt.Errorf("clock %q out of range", v)
	}
	return h*60 + m, nil
}
