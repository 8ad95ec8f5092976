package clock

import (
	"errors"
	"fmt"
)

var ErrInvalidClockTime = errors.New("time must be in HH:MM format (00:00-23:59)")

// ClockTime is a wall-clock time of day with minute precision.
type ClockTime struct {
	minutes int
}

// New builds a ClockTime from hour and minute components.
func New(hour, minute int) (ClockTime, error) {
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return ClockTime{}, ErrInvalidClockTime
	}
	return ClockTime{minutes: hour*60 + minute}, nil
}

// Parse accepts the canonical zero-padded "HH:MM" form. A trailing ":SS"
// component, as returned by PostgreSQL time columns, is accepted and dropped.
func Parse(s string) (ClockTime, error) {
	switch len(s) {
	case 5:
	case 8:
		if s[5] != ':' || !isDigit(s[6]) || !isDigit(s[7]) || s[6] > '5' {
			return ClockTime{}, ErrInvalidClockTime
		}
		s = s[:5]
	default:
		return ClockTime{}, ErrInvalidClockTime
	}

	if s[2] != ':' || !isDigit(s[0]) || !isDigit(s[1]) || !isDigit(s[3]) || !isDigit(s[4]) {
		return ClockTime{}, ErrInvalidClockTime
	}

	hour := int(s[0]-'0')*10 + int(s[1]-'0')
	minute := int(s[3]-'0')*10 + int(s[4]-'0')
	return New(hour, minute)
}

// MustParse is Parse for package-level constants. It panics on bad input.
func MustParse(s string) ClockTime {
	t, err := Parse(s)
	if err != nil {
		panic(fmt.Sprintf("clock: MustParse(%q): %v", s, err))
	}
	return t
}

// Minutes returns minutes since midnight.
func (t ClockTime) Minutes() int {
	return t.minutes
}

func (t ClockTime) Hour() int {
	return t.minutes / 60
}

func (t ClockTime) Minute() int {
	return t.minutes % 60
}

// Add offsets t by the given number of minutes, wrapping around midnight.
func (t ClockTime) Add(minutes int) ClockTime {
	m := (t.minutes + minutes) % (24 * 60)
	if m < 0 {
		m += 24 * 60
	}
	return ClockTime{minutes: m}
}

func (t ClockTime) After(u ClockTime) bool {
	return t.minutes > u.minutes
}

func (t ClockTime) Before(u ClockTime) bool {
	return t.minutes < u.minutes
}

func (t ClockTime) Equal(u ClockTime) bool {
	return t.minutes == u.minutes
}

// String returns the canonical "HH:MM" form.
func (t ClockTime) String() string {
	return fmt.Sprintf("%02d:%02d", t.Hour(), t.Minute())
}

// ParsePtr parses an optional value. Nil or empty input yields nil.
func ParsePtr(s *string) (*ClockTime, error) {
	if s == nil || *s == "" {
		return nil, nil
	}
	t, err := Parse(*s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// StringPtr formats an optional value. Nil yields nil.
func StringPtr(t *ClockTime) *string {
	if t == nil {
		return nil
	}
	s := t.String()
	return &s
}

func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}
