// Package slot turns a doctor's working-hours template into the list of
// bookable time slots for one day. Generation is pure and stateless; slots are
// derived on every query and never persisted.
package slot

import (
	"errors"
	"strings"
	"time"
)

var (
	ErrInvalidClock  = errors.New("invalid clock time, expected HH:MM")
	ErrInvalidWindow = errors.New("invalid working window")
	ErrInvalidBreak  = errors.New("invalid break window")
)

// DefaultInterval is the slot length used when the caller does not configure one.
const DefaultInterval = 15 * time.Minute

const clockLayout = "15:04"

// Slot is one bookable interval. Start/End are 24-hour wall-clock strings,
// DisplayStart/DisplayEnd the matching 12-hour forms shown to users.
type Slot struct {
	Start        string `json:"start"`
	End          string `json:"end"`
	DisplayStart string `json:"display_start"`
	DisplayEnd   string `json:"display_end"`
}

// Window is a doctor's working hours for one day, with an optional break.
// Break bounds are either both set or both empty.
type Window struct {
	Start      string
	End        string
	BreakStart string
	BreakEnd   string
}

// Validate checks the template invariants: start < end and, when a break is
// configured, break-start < break-end with the break fully inside the window.
func (w Window) Validate() error {
	start, err := parseClock(w.Start)
	if err != nil {
		return err
	}
	end, err := parseClock(w.End)
	if err != nil {
		return err
	}
	if !end.After(start) {
		return ErrInvalidWindow
	}

	if w.BreakStart == "" && w.BreakEnd == "" {
		return nil
	}
	if w.BreakStart == "" || w.BreakEnd == "" {
		return ErrInvalidBreak
	}

	bStart, err := parseClock(w.BreakStart)
	if err != nil {
		return err
	}
	bEnd, err := parseClock(w.BreakEnd)
	if err != nil {
		return err
	}
	if !bEnd.After(bStart) {
		return ErrInvalidBreak
	}
	if bStart.Before(start) || bEnd.After(end) {
		return ErrInvalidBreak
	}
	return nil
}

// Generate produces the ordered candidate slots covering [start, end) at the
// given interval. Any slot overlapping the break window is skipped and the
// cursor resumes at break-end. A trailing remainder shorter than the interval
// is dropped. An empty or inverted window yields an empty sequence.
func Generate(w Window, interval time.Duration) ([]Slot, error) {
	if interval <= 0 {
		interval = DefaultInterval
	}

	cur, err := parseClock(w.Start)
	if err != nil {
		return nil, err
	}
	end, err := parseClock(w.End)
	if err != nil {
		return nil, err
	}
	if !end.After(cur) {
		return []Slot{}, nil
	}

	hasBreak := w.BreakStart != "" && w.BreakEnd != ""
	var bStart, bEnd time.Time
	if hasBreak {
		if bStart, err = parseClock(w.BreakStart); err != nil {
			return nil, err
		}
		if bEnd, err = parseClock(w.BreakEnd); err != nil {
			return nil, err
		}
	}

	var slots []Slot
	for cur.Before(end) {
		slotEnd := cur.Add(interval)

		// Skip anything that overlaps the break at all and resume after it.
		if hasBreak && cur.Before(bEnd) && slotEnd.After(bStart) {
			cur = bEnd
			continue
		}

		if !slotEnd.After(end) {
			slots = append(slots, Slot{
				Start:        cur.Format(clockLayout),
				End:          slotEnd.Format(clockLayout),
				DisplayStart: display(cur),
				DisplayEnd:   display(slotEnd),
			})
		}
		cur = slotEnd
	}

	return slots, nil
}

func parseClock(s string) (time.Time, error) {
	t, err := time.Parse(clockLayout, s)
	if err != nil {
		return time.Time{}, ErrInvalidClock
	}
	return t, nil
}

func display(t time.Time) string {
	return strings.ToLower(t.Format("03:04 PM"))
}
