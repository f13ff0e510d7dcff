package eta

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// ErrInvalidFormat is returned for strings that are neither "HH:MM" nor
// "HH:MM-HH:MM".
var ErrInvalidFormat = errors.New("eta must be HH:MM or HH:MM-HH:MM")

const minutesPerDay = 24 * 60

// Window is a single arrival time or an arrival range, in minutes after
// midnight.
type Window struct {
	From    int
	To      int
	IsRange bool
}

// Parse accepts exactly "HH:MM" or "HH:MM-HH:MM", 24-hour and zero padded.
// Anything else is rejected.
func Parse(s string) (Window, error) {
	parts := strings.Split(strings.TrimSpace(s), "-")
	switch len(parts) {
	case 1:
		from, err := parseClock(parts[0])
		if err != nil {
			return Window{}, err
		}
		return Window{From: from, To: from}, nil
	case 2:
		from, err := parseClock(parts[0])
		if err != nil {
			return Window{}, err
		}
		to, err := parseClock(parts[1])
		if err != nil {
			return Window{}, err
		}
		return Window{From: from, To: to, IsRange: true}, nil
	default:
		return Window{}, fmt.Errorf("%w: %q", ErrInvalidFormat, s)
	}
}

// Normalize parses s and returns it in canonical form.
func Normalize(s string) (string, error) {
	w, err := Parse(s)
	if err != nil {
		return "", err
	}
	return w.String(), nil
}

func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}

func parseClock(s string) (int, error) {
	if len(s) != 5 || s[2] != ':' || !isDigit(s[0]) || !isDigit(s[1]) || !isDigit(s[3]) || !isDigit(s[4]) {
		return 0, fmt.Errorf("%w: %q", ErrInvalidFormat, s)
	}
	hours, err := strconv.Atoi(s[:2])
	if err != nil || hours < 0 || hours > 23 {
		return 0, fmt.Errorf("%w: bad hour in %q", ErrInvalidFormat, s)
	}
	minutes, err := strconv.Atoi(s[3:])
	if err != nil || minutes < 0 || minutes > 59 {
		return 0, fmt.Errorf("%w: bad minute in %q", ErrInvalidFormat, s)
	}
	return hours*60 + minutes, nil
}

// Shift moves both ends of the window by d, wrapping around midnight.
func (w Window) Shift(d time.Duration) Window {
	delta := int(d / time.Minute)
	return Window{
		From:    wrap(w.From + delta),
		To:      wrap(w.To + delta),
		IsRange: w.IsRange,
	}
}

func (w Window) String() string {
	if !w.IsRange {
		return formatClock(w.From)
	}
	return formatClock(w.From) + "-" + formatClock(w.To)
}

func wrap(m int) int {
	m %= minutesPerDay
	if m < 0 {
		m += minutesPerDay
	}
	return m
}

func formatClock(m int) string {
	return fmt.Sprintf("%02d:%02d", m/60, m%60)
}
