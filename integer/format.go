package integer

const (
	lowerHex = "0123456789abcdef"
	upperHex = "0123456789ABCDEF"

	// maxPrecision bounds the minimum-digit suffix of a format specifier.
	maxPrecision = 99

	pow10to19 = 10_000_000_000_000_000_000
)

// formatSpec is a parsed format specifier.
type formatSpec struct {
	kind    byte // 'D', 'X' or 'B'
	upper   bool
	prec    int
	hasPrec bool
}

// parseFormat parses "", "G", "D", "X" and "B" (either case) with an
// optional decimal minimum-digit count.
func parseFormat(spec string) (formatSpec, error) {
	if spec == "" {
		return formatSpec{kind: 'D'}, nil
	}
	var f formatSpec
	switch c := spec[0]; c {
	case 'G', 'g', 'D', 'd':
		f.kind = 'D'
	case 'X', 'x':
		f.kind, f.upper = 'X', c == 'X'
	case 'B', 'b':
		f.kind = 'B'
	default:
		return formatSpec{}, ErrInvalidFormat
	}
	digits := spec[1:]
	if digits == "" {
		return f, nil
	}
	if len(digits) > 2 {
		return formatSpec{}, ErrInvalidFormat
	}
	for i := 0; i < len(digits); i++ {
		c := digits[i]
		if c < '0' || c > '9' {
			return formatSpec{}, ErrInvalidFormat
		}
		f.prec = f.prec*10 + int(c-'0')
	}
	f.hasPrec = true
	return f, nil
}

// appendMagnitude appends the decimal digits of u.
func appendMagnitude(dst []byte, u UInt128) []byte {
	var buf [MaxDigitCount]byte
	return append(dst, magnitudeDigits(&buf, u)...)
}

// magnitudeDigits writes the decimal digits of u to the end of buf and
// returns the written suffix.
func magnitudeDigits(buf *[MaxDigitCount]byte, u UInt128) []byte {
	i := len(buf)
	for u.hi != 0 {
		var r uint64
		u, r = u.QuoRem64(pow10to19)
		for j := 0; j < 19; j++ {
			i--
			buf[i] = byte('0' + r%10)
			r /= 10
		}
	}
	lo := u.lo
	for lo >= 10 {
		i--
		buf[i] = byte('0' + lo%10)
		lo /= 10
	}
	i--
	buf[i] = byte('0' + lo)
	return buf[i:]
}

func appendZeros(dst []byte, n int) []byte {
	for ; n > 0; n-- {
		dst = append(dst, '0')
	}
	return dst
}

// appendFormatted formats the two's-complement pattern v of layout l.
// v must be sign-extended to 128 bits for signed layouts.
func appendFormatted(dst []byte, v UInt128, l layout, f formatSpec) []byte {
	switch f.kind {
	case 'X', 'B':
		shift, digitsMask, table := uint(4), uint64(0xF), upperHex
		if f.kind == 'B' {
			shift, digitsMask = 1, 1
		}
		if !f.upper {
			table = lowerHex
		}
		v = v.And(MaxUInt128.Rsh(128 - l.bits))
		width := int(l.bits / shift)
		if f.hasPrec {
			width = (128 - v.LeadingZeros() + int(shift) - 1) / int(shift)
			if width == 0 {
				width = 1
			}
			if width < f.prec {
				width = f.prec
			}
		}
		var buf [MaxBinaryDigitCount + maxPrecision]byte
		i := len(buf)
		for j := 0; j < width; j++ {
			i--
			buf[i] = table[v.lo&digitsMask]
			v = v.Rsh(shift)
		}
		return append(dst, buf[i:]...)
	}

	neg := l.signed && int64(v.hi) < 0
	if neg {
		v = UInt128{}.Sub(v)
		dst = append(dst, '-')
	}
	var buf [MaxDigitCount]byte
	digits := magnitudeDigits(&buf, v)
	dst = appendZeros(dst, f.prec-len(digits))
	return append(dst, digits...)
}

// Format formats v according to spec: "" / "G" / "D" for decimal, "X" / "x"
// for hexadecimal and "B" for binary, each with an optional minimum digit
// count. Hex and binary without a count are zero-padded to the full width
// of T.
func Format[T Integer](v T, spec string) (string, error) {
	b, err := AppendFormat(nil, v, spec)
	return string(b), err
}

// AppendFormat appends the formatted form of v to dst.
func AppendFormat[T Integer](dst []byte, v T, spec string) ([]byte, error) {
	f, err := parseFormat(spec)
	if err != nil {
		return dst, err
	}
	return appendFormatted(dst, widen(v), layoutOf[T](), f), nil
}

// AppendDecimal appends v in decimal, zero-padded to at least minDigits
// digits after any sign.
func AppendDecimal[T Integer](dst []byte, v T, minDigits int) []byte {
	return appendFormatted(dst, widen(v), layoutOf[T](), formatSpec{kind: 'D', prec: minDigits})
}

// FormatInt128 formats v according to spec.
func FormatInt128(v Int128, spec string) (string, error) {
	f, err := parseFormat(spec)
	if err != nil {
		return "", err
	}
	return string(appendFormatted(nil, v.UInt128(), int128Layout, f)), nil
}

// FormatUInt128 formats v according to spec.
func FormatUInt128(v UInt128, spec string) (string, error) {
	f, err := parseFormat(spec)
	if err != nil {
		return "", err
	}
	return string(appendFormatted(nil, v, uint128Layout, f)), nil
}
