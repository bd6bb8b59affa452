// Package integer provides fixed-width signed and unsigned integers up to
// 128 bits together with a culture-invariant text and byte codec for them.
//
// Native Go integer types are handled through generic functions; 128-bit
// values use the two-word Int128 and UInt128 structs. Every width shares a
// single parser, formatter and endian codec driven by a small layout
// descriptor (bit width and signedness), so the per-type entry points are
// thin instantiations of the same algorithm.
//
// Parsing reports failures through a tri-state Status internally. Parse
// style functions turn that into a *NumError; TryParse style functions
// return false and a zero value without distinguishing overflow from
// malformed input.
package integer

import (
	"errors"
	"strconv"
	"unsafe"
)

// Integer is the set of native Go integer types handled by the generic
// codec functions.
type Integer interface {
	~int8 | ~int16 | ~int32 | ~int64 | ~int |
		~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uint | ~uintptr
}

// Sizing constants for scratch buffers.
const (
	// MaxDigitCount is the number of decimal digits in MaxUInt128.
	MaxDigitCount = 39
	// MaxHexDigitCount is the number of hex digits in a 128-bit value.
	MaxHexDigitCount = 32
	// MaxBinaryDigitCount is the number of binary digits in a 128-bit value.
	MaxBinaryDigitCount = 128
)

var (
	// ErrFormat is reported when input text is not a number of the
	// requested kind.
	ErrFormat = errors.New("integer: invalid syntax")

	// ErrOverflow is reported when a value is lexically valid but outside
	// the range of the target type, or when checked arithmetic overflows.
	ErrOverflow = errors.New("integer: value out of range")

	// ErrInvalidStyle is returned for unsupported NumberStyles combinations.
	ErrInvalidStyle = errors.New("integer: invalid number style")

	// ErrInvalidFormat is returned for unrecognised format specifiers.
	ErrInvalidFormat = errors.New("integer: invalid format specifier")

	errDivideByZero = errors.New("integer: division by zero")
)

// NumError records a failed conversion.
type NumError struct {
	Func string // the failing function (Parse, ParseInt128, ...)
	Num  string // the input
	Err  error  // ErrFormat, ErrOverflow or ErrInvalidStyle
}

func (e *NumError) Error() string {
	return "integer." + e.Func + ": parsing " + strconv.Quote(e.Num) + ": " + e.Err.Error()
}

func (e *NumError) Unwrap() error { return e.Err }

// layout describes the storage of a fixed-width integer type.
type layout struct {
	bits   uint
	signed bool
}

var (
	int128Layout  = layout{bits: 128, signed: true}
	uint128Layout = layout{bits: 128}
)

func layoutOf[T Integer]() layout {
	var zero T
	return layout{bits: uint(unsafe.Sizeof(zero)) * 8, signed: ^zero < 0}
}

func (l layout) byteCount() int { return int(l.bits / 8) }

// maxMagnitude returns the largest magnitude representable with the given
// sign. For signed layouts the negative bound is one larger than the
// positive bound.
func (l layout) maxMagnitude(negative bool) UInt128 {
	if !l.signed {
		if negative {
			return UInt128{}
		}
		return MaxUInt128.Rsh(128 - l.bits)
	}
	m := MaxUInt128.Rsh(129 - l.bits)
	if negative {
		m = m.Add64(1)
	}
	return m
}

// fits reports whether the 128-bit two's-complement pattern v (interpreted
// per srcSigned) is representable in l.
func (l layout) fits(v UInt128, srcSigned bool) bool {
	neg := srcSigned && int64(v.hi) < 0
	if neg {
		if !l.signed {
			return false
		}
		mag := UInt128{}.Sub(v)
		return mag.Cmp(l.maxMagnitude(true)) <= 0
	}
	return v.Cmp(l.maxMagnitude(false)) <= 0
}

// widen sign- or zero-extends v to a 128-bit pattern.
func widen[T Integer](v T) UInt128 {
	if v < 0 {
		return UInt128{hi: ^uint64(0), lo: uint64(int64(v))}
	}
	return UInt128{lo: uint64(v)}
}

// narrow truncates a 128-bit pattern to T.
func narrow[T Integer](v UInt128) T {
	return T(v.lo)
}

// ByteCount returns the number of bytes written by the endian codec for T.
func ByteCount[T Integer]() int {
	return layoutOf[T]().byteCount()
}

// ShortestBitLength returns the minimum number of bits needed to represent
// v in two's complement (signed types) or binary (unsigned types).
func ShortestBitLength[T Integer](v T) int {
	return shortestBitLength(widen(v), layoutOf[T]().signed)
}

func shortestBitLength(v UInt128, signed bool) int {
	if signed && int64(v.hi) < 0 {
		return 129 - v.Not().LeadingZeros()
	}
	return 128 - v.LeadingZeros()
}

// ShortestBitLength returns the minimum number of two's-complement bits
// needed to represent i.
func (i Int128) ShortestBitLength() int { return shortestBitLength(i.UInt128(), true) }

// ShortestBitLength returns the minimum number of bits needed to represent u.
func (u UInt128) ShortestBitLength() int { return shortestBitLength(u, false) }
