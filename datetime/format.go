// Package datetime formats times with a custom pattern language and a
// pluggable locale table, and provides TimeOnly, a time of day with
// 100-nanosecond resolution.
//
// A pattern of a single character selects a standard format from the
// locale (for example "d" for the short date or "T" for the long time).
// Longer patterns are custom: runs of a letter such as "dd" or "MMMM" are
// fields, ':' and '/' are the locale's separators, text in single or double
// quotes is copied verbatim, '\' escapes the next character and '%' makes
// the next character a field on its own.
package datetime

import (
	"errors"
	"fmt"
	"time"
	"unicode/utf8"

	"github.com/mrjoshuak/go-numeric/integer"
)

// ErrInvalidFormat is returned for malformed patterns.
var ErrInvalidFormat = errors.New("datetime: invalid format")

// maxFractionDigits is the resolution of the f and F fields.
const maxFractionDigits = 7

// Fixed patterns of the culture-independent standard formats.
const (
	roundTripPattern = "yyyy'-'MM'-'dd'T'HH':'mm':'ss'.'fffffffK"
	rfc1123Pattern   = "ddd, dd MMM yyyy HH':'mm':'ss 'GMT'"
	sortablePattern  = "yyyy'-'MM'-'dd'T'HH':'mm':'ss"
	universalPattern = "yyyy'-'MM'-'dd HH':'mm':'ss'Z'"
)

// Format formats t according to pattern using loc, or Invariant if loc is
// nil. An empty pattern is the same as "G".
func Format(t time.Time, pattern string, loc *Locale) (string, error) {
	b, err := AppendFormat(make([]byte, 0, 32), t, pattern, loc)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// AppendFormat is like Format but appends to dst.
func AppendFormat(dst []byte, t time.Time, pattern string, loc *Locale) ([]byte, error) {
	if loc == nil {
		loc = Invariant
	}
	if pattern == "" {
		pattern = "G"
	}
	if len(pattern) == 1 {
		var err error
		if pattern, loc, t, err = expandStandard(pattern[0], loc, t); err != nil {
			return dst, err
		}
	}
	return appendCustom(dst, t, pattern, loc, false)
}

// expandStandard maps a standard format letter to its custom pattern.
// Some formats pin the locale or convert t to UTC.
func expandStandard(c byte, loc *Locale, t time.Time) (string, *Locale, time.Time, error) {
	switch c {
	case 'd':
		return loc.ShortDatePattern, loc, t, nil
	case 'D':
		return loc.LongDatePattern, loc, t, nil
	case 'f':
		return loc.LongDatePattern + " " + loc.ShortTimePattern, loc, t, nil
	case 'F':
		return loc.FullDateTimePattern, loc, t, nil
	case 'g':
		return loc.ShortDatePattern + " " + loc.ShortTimePattern, loc, t, nil
	case 'G':
		return loc.ShortDatePattern + " " + loc.LongTimePattern, loc, t, nil
	case 'm', 'M':
		return loc.MonthDayPattern, loc, t, nil
	case 't':
		return loc.ShortTimePattern, loc, t, nil
	case 'T':
		return loc.LongTimePattern, loc, t, nil
	case 'y', 'Y':
		return loc.YearMonthPattern, loc, t, nil
	case 'U':
		return loc.FullDateTimePattern, loc, t.UTC(), nil
	case 'o', 'O':
		return roundTripPattern, Invariant, t, nil
	case 'r', 'R':
		return rfc1123Pattern, Invariant, t.UTC(), nil
	case 's':
		return sortablePattern, Invariant, t, nil
	case 'u':
		return universalPattern, Invariant, t.UTC(), nil
	}
	return "", nil, t, fmt.Errorf("%w: unknown standard format %q", ErrInvalidFormat, c)
}

// repeatCount returns the length of the run of pattern[i] starting at i.
func repeatCount(pattern string, i int) int {
	n := 1
	for i+n < len(pattern) && pattern[i+n] == pattern[i] {
		n++
	}
	return n
}

// appendCustom expands a custom pattern. With timeOnly set, fields that
// need a date or a zone are rejected.
func appendCustom(dst []byte, t time.Time, pattern string, loc *Locale, timeOnly bool) ([]byte, error) {
	year, month, day := t.Date()
	hour, minute, second := t.Clock()
	ticks := t.Nanosecond() / 100

	for i := 0; i < len(pattern); {
		c := pattern[i]
		n := repeatCount(pattern, i)
		if timeOnly && isDateField(c) {
			return dst, fmt.Errorf("%w: %q needs a date", ErrInvalidFormat, c)
		}
		switch c {
		case 'd':
			switch n {
			case 1, 2:
				dst = integer.AppendDecimal(dst, day, n)
			case 3:
				dst = append(dst, loc.AbbrevDayNames[t.Weekday()]...)
			default:
				dst = append(dst, loc.DayNames[t.Weekday()]...)
			}
		case 'M':
			switch n {
			case 1, 2:
				dst = integer.AppendDecimal(dst, int(month), n)
			case 3:
				dst = append(dst, loc.AbbrevMonthNames[month-1]...)
			default:
				dst = append(dst, loc.MonthNames[month-1]...)
			}
		case 'y':
			if n <= 2 {
				y := year % 100
				if y < 0 {
					y = -y
				}
				dst = integer.AppendDecimal(dst, y, n)
			} else {
				dst = integer.AppendDecimal(dst, year, n)
			}
		case 'h':
			h := hour % 12
			if h == 0 {
				h = 12
			}
			dst = integer.AppendDecimal(dst, h, min(n, 2))
		case 'H':
			dst = integer.AppendDecimal(dst, hour, min(n, 2))
		case 'm':
			dst = integer.AppendDecimal(dst, minute, min(n, 2))
		case 's':
			dst = integer.AppendDecimal(dst, second, min(n, 2))
		case 'f', 'F':
			if n > maxFractionDigits {
				return dst, fmt.Errorf("%w: %q repeated %d times", ErrInvalidFormat, c, n)
			}
			dst = appendFraction(dst, ticks, n, c == 'F')
		case 't':
			designator := loc.AMDesignator
			if hour >= 12 {
				designator = loc.PMDesignator
			}
			if n == 1 && designator != "" {
				_, size := utf8.DecodeRuneInString(designator)
				designator = designator[:size]
			}
			dst = append(dst, designator...)
		case 'g':
			dst = append(dst, loc.EraName...)
		case 'z':
			_, offset := t.Zone()
			dst = appendOffset(dst, offset, min(n, 3))
		case 'K':
			if t.Location() == time.UTC {
				dst = append(dst, 'Z')
			} else {
				_, offset := t.Zone()
				dst = appendOffset(dst, offset, 3)
			}
			n = 1
		case ':':
			dst = append(dst, loc.TimeSeparator...)
			n = 1
		case '/':
			dst = append(dst, loc.DateSeparator...)
			n = 1
		case '\'', '"':
			end := i + 1
			for ; end < len(pattern) && pattern[end] != c; end++ {
				if pattern[end] == '\\' {
					end++
					if end == len(pattern) {
						break
					}
				}
				dst = append(dst, pattern[end])
			}
			if end >= len(pattern) {
				return dst, fmt.Errorf("%w: unterminated quote at offset %d", ErrInvalidFormat, i)
			}
			n = end - i + 1
		case '%':
			// "%d" formats a single field without switching to a
			// standard pattern.
			if i+1 >= len(pattern) || pattern[i+1] == '%' {
				return dst, fmt.Errorf("%w: dangling %%", ErrInvalidFormat)
			}
			var err error
			if dst, err = appendCustom(dst, t, pattern[i+1:i+2], loc, timeOnly); err != nil {
				return dst, err
			}
			n = 2
		case '\\':
			if i+1 >= len(pattern) {
				return dst, fmt.Errorf("%w: trailing backslash", ErrInvalidFormat)
			}
			dst = append(dst, pattern[i+1])
			n = 2
		default:
			dst = append(dst, c)
			n = 1
		}
		i += n
	}
	return dst, nil
}

func isDateField(c byte) bool {
	switch c {
	case 'd', 'M', 'y', 'g', 'z', 'K', '/':
		return true
	}
	return false
}

// appendFraction writes the first n of the seven tick digits. With trim,
// trailing zeros are dropped, and a fraction that is all zeros also drops
// a preceding '.'.
func appendFraction(dst []byte, ticks, n int, trim bool) []byte {
	for k := n; k < maxFractionDigits; k++ {
		ticks /= 10
	}
	if !trim {
		return integer.AppendDecimal(dst, ticks, n)
	}
	for n > 0 && ticks%10 == 0 {
		ticks /= 10
		n--
	}
	if n == 0 {
		if len(dst) > 0 && dst[len(dst)-1] == '.' {
			dst = dst[:len(dst)-1]
		}
		return dst
	}
	return integer.AppendDecimal(dst, ticks, n)
}

// appendOffset writes a UTC offset in seconds as "+h" (n=1), "+hh" (n=2)
// or "+hh:mm" (n=3).
func appendOffset(dst []byte, offset, n int) []byte {
	sign := byte('+')
	if offset < 0 {
		sign, offset = '-', -offset
	}
	dst = append(dst, sign)
	hours, minutes := offset/3600, offset/60%60
	switch n {
	case 1:
		return integer.AppendDecimal(dst, hours, 1)
	case 2:
		return integer.AppendDecimal(dst, hours, 2)
	}
	dst = integer.AppendDecimal(dst, hours, 2)
	dst = append(dst, ':')
	return integer.AppendDecimal(dst, minutes, 2)
}
