package integer

import (
	"unicode/utf16"
	"unsafe"
)

// Status is the outcome of the low-level parse primitive.
type Status int

const (
	// StatusOK means the text denoted a representable value.
	StatusOK Status = iota
	// StatusOverflow means the text was lexically valid but out of range.
	StatusOverflow
	// StatusFailed means the text was not a number of the requested kind.
	StatusFailed
)

func (s Status) String() string {
	switch s {
	case StatusOK:
		return "OK"
	case StatusOverflow:
		return "Overflow"
	case StatusFailed:
		return "Failed"
	}
	return "Status(?)"
}

func (s Status) err() error {
	switch s {
	case StatusOverflow:
		return ErrOverflow
	case StatusFailed:
		return ErrFormat
	}
	return nil
}

type codeUnit interface {
	byte | uint16
}

func isWhite[C codeUnit](c C) bool {
	return c == ' ' || (c >= 0x09 && c <= 0x0D)
}

// trailingNulsOnly reports whether s consists only of U+0000.
func trailingNulsOnly[C codeUnit](s []C) bool {
	for _, c := range s {
		if c != 0 {
			return false
		}
	}
	return true
}

func hexDigit[C codeUnit](c C) (uint64, bool) {
	switch {
	case c >= '0' && c <= '9':
		return uint64(c - '0'), true
	case c >= 'a' && c <= 'f':
		return uint64(c-'a') + 10, true
	case c >= 'A' && c <= 'F':
		return uint64(c-'A') + 10, true
	}
	return 0, false
}

// parseCore parses s according to style into the two's-complement bit
// pattern of a value with layout l. It never returns an error; the caller
// decides how to surface a non-OK status. style must already be valid.
func parseCore[C codeUnit](s []C, style NumberStyles, l layout) (UInt128, Status) {
	if style&radixStyles != 0 {
		return parseRadix(s, style, l)
	}

	i, n := 0, len(s)
	if style&AllowLeadingWhite != 0 {
		for i < n && isWhite(s[i]) {
			i++
		}
	}

	neg, signed, parens := false, false, false
	if i < n && style&AllowParentheses != 0 && s[i] == '(' {
		parens, neg = true, true
		i++
	}
	if i < n && !parens && style&AllowLeadingSign != 0 && (s[i] == '-' || s[i] == '+') {
		neg, signed = s[i] == '-', true
		i++
	}

	// Accumulate against the wider of the two bounds; the sign may still
	// arrive as a trailing sign.
	bound := l.maxMagnitude(l.signed)
	boundDiv10, _ := bound.QuoRem64(10)

	var acc UInt128
	digits := 0
	overflow := false
	thousands := style&AllowThousands != 0
	for i < n {
		c := s[i]
		if c >= '0' && c <= '9' {
			d := uint64(c - '0')
			digits++
			i++
			if overflow {
				continue
			}
			if acc.Cmp(boundDiv10) > 0 {
				overflow = true
				continue
			}
			acc = acc.Mul64(10)
			if room := bound.Sub(acc); room.hi == 0 && room.lo < d {
				overflow = true
				continue
			}
			acc = acc.Add64(d)
			continue
		}
		if thousands && c == ',' && digits > 0 {
			i++
			continue
		}
		break
	}
	if digits == 0 {
		return UInt128{}, StatusFailed
	}

	if i < n && !signed && !parens && style&AllowTrailingSign != 0 && (s[i] == '-' || s[i] == '+') {
		neg = s[i] == '-'
		i++
	}
	if parens {
		if i >= n || s[i] != ')' {
			return UInt128{}, StatusFailed
		}
		i++
	}
	if style&AllowTrailingWhite != 0 {
		for i < n && isWhite(s[i]) {
			i++
		}
	}
	if i < n && !trailingNulsOnly(s[i:]) {
		return UInt128{}, StatusFailed
	}

	if overflow || acc.Cmp(l.maxMagnitude(neg && !acc.IsZero())) > 0 {
		return UInt128{}, StatusOverflow
	}
	if neg {
		return UInt128{}.Sub(acc), StatusOK
	}
	return acc, StatusOK
}

// parseRadix handles AllowHexSpecifier and AllowBinarySpecifier. Digits
// denote the raw bit pattern of the target width.
func parseRadix[C codeUnit](s []C, style NumberStyles, l layout) (UInt128, Status) {
	shift := uint(4)
	if style&AllowBinarySpecifier != 0 {
		shift = 1
	}

	i, n := 0, len(s)
	if style&AllowLeadingWhite != 0 {
		for i < n && isWhite(s[i]) {
			i++
		}
	}

	var acc UInt128
	digits := 0
	overflow := false
	for i < n {
		var d uint64
		var ok bool
		if shift == 1 {
			d, ok = uint64(s[i]-'0'), s[i] == '0' || s[i] == '1'
		} else {
			d, ok = hexDigit(s[i])
		}
		if !ok {
			break
		}
		digits++
		i++
		if overflow {
			continue
		}
		if !acc.Rsh(l.bits - shift).IsZero() {
			overflow = true
			continue
		}
		acc = acc.Lsh(shift).Or(UInt128{lo: d})
	}
	if digits == 0 {
		return UInt128{}, StatusFailed
	}
	if style&AllowTrailingWhite != 0 {
		for i < n && isWhite(s[i]) {
			i++
		}
	}
	if i < n && !trailingNulsOnly(s[i:]) {
		return UInt128{}, StatusFailed
	}
	if overflow {
		return UInt128{}, StatusOverflow
	}
	if l.signed && l.bits < 128 {
		pad := 128 - l.bits
		acc = acc.Lsh(pad).Int128().Rsh(pad).UInt128()
	}
	return acc, StatusOK
}

func stringUnits(s string) []byte {
	return unsafe.Slice(unsafe.StringData(s), len(s))
}

func parseText[C codeUnit](s []C, style NumberStyles, l layout) (UInt128, Status, error) {
	if err := style.Validate(); err != nil {
		return UInt128{}, StatusFailed, err
	}
	v, st := parseCore(s, style, l)
	return v, st, st.err()
}

// ParseStatus parses s as a T and reports the tri-state outcome instead of
// an error. An invalid style yields StatusFailed.
func ParseStatus[T Integer](s string, style NumberStyles) (T, Status) {
	v, st, _ := parseText(stringUnits(s), style, layoutOf[T]())
	if st != StatusOK {
		return 0, st
	}
	return narrow[T](v), st
}

// Parse parses s as a T. Errors are *NumError values wrapping ErrFormat,
// ErrOverflow or ErrInvalidStyle.
func Parse[T Integer](s string, style NumberStyles) (T, error) {
	v, _, err := parseText(stringUnits(s), style, layoutOf[T]())
	if err != nil {
		return 0, &NumError{Func: "Parse", Num: s, Err: err}
	}
	return narrow[T](v), nil
}

// ParseBytes parses UTF-8 text as a T.
func ParseBytes[T Integer](b []byte, style NumberStyles) (T, error) {
	v, _, err := parseText(b, style, layoutOf[T]())
	if err != nil {
		return 0, &NumError{Func: "ParseBytes", Num: string(b), Err: err}
	}
	return narrow[T](v), nil
}

// ParseUTF16 parses UTF-16 code units as a T.
func ParseUTF16[T Integer](u []uint16, style NumberStyles) (T, error) {
	v, _, err := parseText(u, style, layoutOf[T]())
	if err != nil {
		return 0, &NumError{Func: "ParseUTF16", Num: utf16String(u), Err: err}
	}
	return narrow[T](v), nil
}

// TryParse parses s as a T. It returns false and zero on any failure;
// overflow and malformed input are not distinguished.
func TryParse[T Integer](s string, style NumberStyles) (T, bool) {
	v, _, err := parseText(stringUnits(s), style, layoutOf[T]())
	if err != nil {
		return 0, false
	}
	return narrow[T](v), true
}

// ParseInt128 parses s as an Int128.
func ParseInt128(s string, style NumberStyles) (Int128, error) {
	v, _, err := parseText(stringUnits(s), style, int128Layout)
	if err != nil {
		return Int128{}, &NumError{Func: "ParseInt128", Num: s, Err: err}
	}
	return v.Int128(), nil
}

// TryParseInt128 parses s as an Int128, returning false on any failure.
func TryParseInt128(s string, style NumberStyles) (Int128, bool) {
	v, _, err := parseText(stringUnits(s), style, int128Layout)
	if err != nil {
		return Int128{}, false
	}
	return v.Int128(), true
}

// ParseUInt128 parses s as a UInt128.
func ParseUInt128(s string, style NumberStyles) (UInt128, error) {
	v, _, err := parseText(stringUnits(s), style, uint128Layout)
	if err != nil {
		return UInt128{}, &NumError{Func: "ParseUInt128", Num: s, Err: err}
	}
	return v, nil
}

// TryParseUInt128 parses s as a UInt128, returning false on any failure.
func TryParseUInt128(s string, style NumberStyles) (UInt128, bool) {
	v, _, err := parseText(stringUnits(s), style, uint128Layout)
	if err != nil {
		return UInt128{}, false
	}
	return v, true
}

func utf16String(u []uint16) string {
	return string(utf16.Decode(u))
}
