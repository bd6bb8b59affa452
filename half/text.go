package half

import (
	"errors"
	"strconv"
	"strings"
)

// ErrSyntax is returned by Parse when the input is not a floating-point
// literal.
var ErrSyntax = errors.New("half: invalid syntax")

// maxDigits is the number of significant decimal digits that always
// round-trip a Half.
const maxDigits = 5

// Parse converts a decimal or hexadecimal floating-point literal to the
// nearest Half. Leading and trailing white space is ignored. Literals out
// of range produce a signed infinity or zero, not an error. "NaN", "Inf"
// and "Infinity" are accepted in any case, with an optional sign.
//
// The literal is first rounded to float64 and then to Half. The two
// roundings agree except for literals within 2**-53 relative of a halfway
// point between adjacent Half values.
func Parse(s string) (Half, error) {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return 0, &strconv.NumError{Func: "half.Parse", Num: s, Err: ErrSyntax}
	}
	return FromFloat64(f), nil
}

// TryParse is like Parse but reports failure as false instead of an error.
func TryParse(s string) (Half, bool) {
	h, err := Parse(s)
	return h, err == nil
}

// String returns the shortest decimal representation that parses back to
// h, using the %v layout of strconv: "NaN", "+Inf" and "-Inf" for the
// special values.
func (h Half) String() string {
	return h.Text('g', -1)
}

// Text formats h like strconv.FormatFloat with the given format byte
// ('e', 'E', 'f', 'g' or 'G') and precision. A precision of -1 uses the
// fewest digits that identify h uniquely among Half values.
func (h Half) Text(format byte, prec int) string {
	return string(h.AppendText(nil, format, prec))
}

// AppendText appends the result of h.Text(format, prec) to dst.
func (h Half) AppendText(dst []byte, format byte, prec int) []byte {
	f := h.Float64()
	if prec >= 0 || !h.IsFinite() || h.IsZero() {
		return strconv.AppendFloat(dst, f, format, prec, 64)
	}
	return strconv.AppendFloat(dst, shortest(h, f), format, -1, 64)
}

// shortest returns the float64 nearest to the shortest decimal that rounds
// to h. Formatting it with precision -1 reproduces exactly those digits.
func shortest(h Half, f float64) float64 {
	var buf [24]byte
	for digits := 1; digits <= maxDigits; digits++ {
		d, _ := strconv.ParseFloat(string(strconv.AppendFloat(buf[:0], f, 'e', digits-1, 64)), 64)
		if FromFloat64(d) == h {
			return d
		}
	}
	return f
}

// MarshalText implements encoding.TextMarshaler.
func (h Half) MarshalText() ([]byte, error) {
	return h.AppendText(nil, 'g', -1), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (h *Half) UnmarshalText(text []byte) error {
	v, err := Parse(string(text))
	if err != nil {
		return err
	}
	*h = v
	return nil
}
