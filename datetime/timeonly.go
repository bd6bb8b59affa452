package datetime

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/mrjoshuak/go-numeric/integer"
)

// ErrOutOfRange is returned when a time-of-day component is out of range.
var ErrOutOfRange = errors.New("datetime: time of day out of range")

// Tick is the resolution of TimeOnly.
const Tick = 100 * time.Nanosecond

const ticksPerDay = int64(24 * time.Hour / Tick)

// TimeOnly is a time of day, counted in 100ns ticks since midnight. The
// zero value is midnight.
type TimeOnly struct {
	ticks int64
}

// Midnight and LastTick are the first and last representable times of day.
var (
	Midnight = TimeOnly{}
	LastTick = TimeOnly{ticksPerDay - 1}
)

// NewTimeOnly returns the time of day hour:minute:second plus nanosecond,
// truncated to a whole tick.
func NewTimeOnly(hour, minute, second, nanosecond int) (TimeOnly, error) {
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 || second < 0 || second > 59 ||
		nanosecond < 0 || nanosecond > 999_999_999 {
		return TimeOnly{}, fmt.Errorf("%w: %02d:%02d:%02d.%09d", ErrOutOfRange, hour, minute, second, nanosecond)
	}
	d := time.Duration(hour)*time.Hour + time.Duration(minute)*time.Minute +
		time.Duration(second)*time.Second + time.Duration(nanosecond)
	return TimeOnly{int64(d / Tick)}, nil
}

// TimeOnlyFromTime returns the wall-clock time of day of t in its location.
func TimeOnlyFromTime(t time.Time) TimeOnly {
	h, m, s := t.Clock()
	to, _ := NewTimeOnly(h, m, s, t.Nanosecond())
	return to
}

// TimeOnlyFromDuration converts an elapsed time since midnight. d must lie
// in [0, 24h).
func TimeOnlyFromDuration(d time.Duration) (TimeOnly, error) {
	if d < 0 || d >= 24*time.Hour {
		return TimeOnly{}, fmt.Errorf("%w: %v", ErrOutOfRange, d)
	}
	return TimeOnly{int64(d / Tick)}, nil
}

// Ticks returns the number of 100ns ticks since midnight.
func (t TimeOnly) Ticks() int64 { return t.ticks }

// Duration returns the time elapsed since midnight.
func (t TimeOnly) Duration() time.Duration { return time.Duration(t.ticks) * Tick }

// Hour, Minute and Second return the clock fields of t.
func (t TimeOnly) Hour() int   { return int(t.Duration() / time.Hour) }
func (t TimeOnly) Minute() int { return int(t.Duration() / time.Minute % 60) }
func (t TimeOnly) Second() int { return int(t.Duration() / time.Second % 60) }

// Nanosecond returns the fraction of the second in nanoseconds, always a
// multiple of 100.
func (t TimeOnly) Nanosecond() int { return int(t.Duration() % time.Second) }

// Add returns t+d wrapped onto the clock, and the number of whole days
// the addition crossed (negative when d moves backwards past midnight).
func (t TimeOnly) Add(d time.Duration) (TimeOnly, int) {
	ticks := t.ticks + int64(d/Tick)
	days := ticks / ticksPerDay
	ticks %= ticksPerDay
	if ticks < 0 {
		ticks += ticksPerDay
		days--
	}
	return TimeOnly{ticks}, int(days)
}

// Sub returns the time from u forward to t, wrapping past midnight, so the
// result is always in [0, 24h).
func (t TimeOnly) Sub(u TimeOnly) time.Duration {
	d := t.ticks - u.ticks
	if d < 0 {
		d += ticksPerDay
	}
	return time.Duration(d) * Tick
}

// IsBetween reports whether t lies in the half-open interval [start, end).
// When end is before start the interval wraps past midnight.
func (t TimeOnly) IsBetween(start, end TimeOnly) bool {
	if start.ticks <= end.ticks {
		return t.ticks >= start.ticks && t.ticks < end.ticks
	}
	return t.ticks >= start.ticks || t.ticks < end.ticks
}

// Compare returns -1, 0 or +1 ordering t against u.
func (t TimeOnly) Compare(u TimeOnly) int {
	switch {
	case t.ticks < u.ticks:
		return -1
	case t.ticks > u.ticks:
		return 1
	}
	return 0
}

// On returns the instant on the date of day (in day's location) at time t.
func (t TimeOnly) On(day time.Time) time.Time {
	y, m, d := day.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, day.Location()).Add(t.Duration())
}

// asTime places t on an arbitrary UTC date for formatting.
func (t TimeOnly) asTime() time.Time {
	return time.Date(1, 1, 1, 0, 0, 0, 0, time.UTC).Add(t.Duration())
}

// Format formats t using the time fields of the pattern language. Fields
// that need a date or a zone are rejected. Standard formats "t" and "T"
// use the locale; "o" and "r" give "HH:mm:ss.fffffff" and "HH:mm:ss".
func (t TimeOnly) Format(pattern string, loc *Locale) (string, error) {
	b, err := t.AppendFormat(make([]byte, 0, 16), pattern, loc)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// AppendFormat is like Format but appends to dst.
func (t TimeOnly) AppendFormat(dst []byte, pattern string, loc *Locale) ([]byte, error) {
	if loc == nil {
		loc = Invariant
	}
	if pattern == "" {
		pattern = "t"
	}
	if len(pattern) == 1 {
		switch pattern[0] {
		case 't':
			pattern = loc.ShortTimePattern
		case 'T':
			pattern = loc.LongTimePattern
		case 'o', 'O':
			pattern, loc = "HH':'mm':'ss'.'fffffff", Invariant
		case 'r', 'R':
			pattern, loc = "HH':'mm':'ss", Invariant
		default:
			return dst, fmt.Errorf("%w: unknown standard format %q for a time of day", ErrInvalidFormat, pattern)
		}
	}
	return appendCustom(dst, t.asTime(), pattern, loc, true)
}

// String formats t as "HH:mm".
func (t TimeOnly) String() string {
	s, _ := t.Format("t", Invariant)
	return s
}

// ParseTimeOnly parses "HH:mm", "HH:mm:ss" or "HH:mm:ss.fffffff" (one to
// seven fraction digits).
func ParseTimeOnly(s string) (TimeOnly, error) {
	fields := strings.Split(s, ":")
	if len(fields) < 2 || len(fields) > 3 {
		return TimeOnly{}, fmt.Errorf("datetime: cannot parse %q as a time of day", s)
	}
	var frac string
	if len(fields) == 3 {
		fields[2], frac, _ = strings.Cut(fields[2], ".")
		if len(frac) > maxFractionDigits || strings.Contains(s, ".") && frac == "" {
			return TimeOnly{}, fmt.Errorf("datetime: cannot parse %q as a time of day", s)
		}
	}

	var parts [4]int
	for i, f := range fields {
		if len(f) != 2 || !isDigits(f) {
			return TimeOnly{}, fmt.Errorf("datetime: cannot parse %q as a time of day", s)
		}
		v, err := integer.Parse[int](f, integer.StyleNone)
		if err != nil {
			return TimeOnly{}, fmt.Errorf("datetime: cannot parse %q as a time of day: %w", s, err)
		}
		parts[i] = v
	}
	if frac != "" {
		if !isDigits(frac) {
			return TimeOnly{}, fmt.Errorf("datetime: cannot parse %q as a time of day", s)
		}
		v, err := integer.Parse[int](frac, integer.StyleNone)
		if err != nil {
			return TimeOnly{}, fmt.Errorf("datetime: cannot parse %q as a time of day: %w", s, err)
		}
		for k := len(frac); k < 9; k++ {
			v *= 10
		}
		parts[3] = v
	}
	return NewTimeOnly(parts[0], parts[1], parts[2], parts[3])
}

func isDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// MarshalText implements encoding.TextMarshaler using the "o" format.
func (t TimeOnly) MarshalText() ([]byte, error) {
	return t.AppendFormat(nil, "o", nil)
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (t *TimeOnly) UnmarshalText(text []byte) error {
	v, err := ParseTimeOnly(string(text))
	if err != nil {
		return err
	}
	*t = v
	return nil
}
