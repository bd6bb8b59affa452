// Package half provides IEEE 754 binary16 half-precision floating-point numbers.
//
// Half-precision floats use 16 bits with the following layout:
//   - 1 bit sign
//   - 5 bits exponent (bias of 15)
//   - 10 bits mantissa (implicit leading 1 for normalized values)
//
// Arithmetic promotes both operands to float32, computes at that precision
// and rounds the result back to Half. This is exact for every operation
// whose float32 result is correctly rounded, but it is not a native
// half-precision ALU.
package half

import (
	"math"
)

// Half represents an IEEE 754 binary16 half-precision floating-point number.
// The underlying storage is a uint16.
type Half uint16

// Constants for half-precision floating-point.
const (
	// Bit layout constants
	signBit      = 0x8000
	exponentMask = 0x7C00
	mantissaMask = 0x03FF
	quietBit     = 0x0200

	// Exponent values
	exponentBias = 15
	maxExponent  = 31

	// Special values
	posInf = Half(0x7C00) // +Infinity
	negInf = Half(0xFC00) // -Infinity
	nan    = Half(0xFE00) // Quiet NaN, the pattern produced by 0/0

	// Zero values
	posZero = Half(0x0000)
	negZero = Half(0x8000)

	// Limits
	maxHalf = Half(0x7BFF) // Largest positive finite value (65504)
	minHalf = Half(0xFBFF) // Most negative finite value (-65504)

	// Smallest positive values
	minPosNormal    = Half(0x0400) // Smallest positive normalized value (~6.1e-5)
	minPosSubnormal = Half(0x0001) // Smallest positive subnormal value (~5.96e-8)
)

// Common constant values
var (
	// Inf is positive infinity.
	Inf = posInf
	// NegInf is negative infinity.
	NegInf = negInf
	// NaN is a quiet NaN value.
	NaN = nan
	// Zero is positive zero.
	Zero = posZero
	// NegZero is negative zero.
	NegZero = negZero
	// One is 1.0.
	One = Half(0x3C00)
	// NegOne is -1.0.
	NegOne = Half(0xBC00)
	// Max is the largest finite positive half-precision value (65504).
	Max = maxHalf
	// Min is the most negative finite half-precision value (-65504).
	Min = minHalf
	// SmallestNormal is the smallest positive normalized value (~6.1e-5).
	SmallestNormal = minPosNormal
	// Epsilon is the smallest positive subnormal value (~5.96e-8).
	Epsilon = minPosSubnormal
)

// FromFloat32 converts a float32 to a Half using round-to-nearest-even.
func FromFloat32(f float32) Half {
	bits := math.Float32bits(f)
	sign := uint16((bits >> 16) & signBit)
	exp := int((bits >> 23) & 0xFF)
	mantissa := uint64(bits & 0x007FFFFF)

	switch exp {
	case 0xFF:
		return specialFromWide(sign, mantissa, 23)
	case 0:
		// float32 subnormals are far below half's smallest subnormal.
		return Half(sign)
	}
	return roundToHalf(sign, exp-127+exponentBias, mantissa, 23)
}

// FromFloat64 converts a float64 to a Half using round-to-nearest-even.
// The conversion rounds once, directly from the 64-bit pattern.
func FromFloat64(f float64) Half {
	bits := math.Float64bits(f)
	sign := uint16((bits >> 48) & signBit)
	exp := int((bits >> 52) & 0x7FF)
	mantissa := bits & (1<<52 - 1)

	switch exp {
	case 0x7FF:
		return specialFromWide(sign, mantissa, 52)
	case 0:
		return Half(sign)
	}
	return roundToHalf(sign, exp-1023+exponentBias, mantissa, 52)
}

// specialFromWide narrows an Inf or NaN whose mantissa has mantBits bits.
// NaN keeps the top payload bits and is always quiet.
func specialFromWide(sign uint16, mantissa uint64, mantBits uint) Half {
	if mantissa == 0 {
		return Half(sign | exponentMask)
	}
	return Half(sign | exponentMask | quietBit | uint16(mantissa>>(mantBits-10)))
}

// roundToHalf rounds a finite normal wide value with rebiased exponent exp
// and a mantBits-bit mantissa (without the implicit bit) to Half.
func roundToHalf(sign uint16, exp int, mantissa uint64, mantBits uint) Half {
	// Overflow
	if exp >= maxExponent {
		return Half(sign | exponentMask)
	}

	// Underflow to zero; exp == -10 can still round up to the smallest
	// subnormal.
	if exp < -10 {
		return Half(sign)
	}

	drop := mantBits - 10

	// Subnormal half
	if exp <= 0 {
		mantissa |= 1 << mantBits
		shift := drop + uint(1-exp)
		if shift > mantBits+1 {
			return Half(sign)
		}

		// Round to nearest even. A carry out of the mantissa lands in the
		// exponent field and yields the smallest normal value.
		halfMantissa := mantissa >> shift
		round := mantissa >> (shift - 1) & 1
		sticky := mantissa & (1<<(shift-1) - 1)
		if round != 0 && (sticky != 0 || halfMantissa&1 != 0) {
			halfMantissa++
		}
		return Half(sign | uint16(halfMantissa))
	}

	// Normalized value
	halfMantissa := mantissa >> drop
	round := (mantissa >> (drop - 1)) & 1
	sticky := mantissa & (1<<(drop-1) - 1)

	if round != 0 && (sticky != 0 || halfMantissa&1 != 0) {
		halfMantissa++
		if halfMantissa > mantissaMask {
			halfMantissa = 0
			exp++
			if exp >= maxExponent {
				return Half(sign | exponentMask) // Overflow to infinity
			}
		}
	}

	return Half(sign | uint16(exp<<10) | uint16(halfMantissa))
}

// Float32 converts a Half to a float32. The conversion is exact.
func (h Half) Float32() float32 {
	sign, exp, mantissa := h.widen(127, 23)
	return math.Float32frombits(uint32(sign<<16) | uint32(exp)<<23 | uint32(mantissa))
}

// Float64 converts a Half to a float64. The conversion is exact.
func (h Half) Float64() float64 {
	sign, exp, mantissa := h.widen(1023, 52)
	return math.Float64frombits(sign<<48 | uint64(exp)<<52 | mantissa)
}

// widen decomposes h into the sign (still at bit 15), biased exponent and
// mantissa of a wider format with the given bias and mantissa width.
func (h Half) widen(bias int, mantBits uint) (sign uint64, exp int, mantissa uint64) {
	sign = uint64(h & signBit)
	exp = int((h >> 10) & 0x1F)
	mantissa = uint64(h & mantissaMask)
	shift := mantBits - 10

	switch exp {
	case 0: // Zero or subnormal
		if mantissa == 0 {
			return sign, 0, 0
		}
		// Normalize: move the leading 1 into the implicit position.
		for mantissa&0x0400 == 0 {
			mantissa <<= 1
			exp--
		}
		exp++
		mantissa &= mantissaMask
		return sign, exp - exponentBias + bias, mantissa << shift

	case maxExponent: // Inf or NaN
		wideMax := 2*bias + 1
		if mantissa == 0 {
			return sign, wideMax, 0
		}
		// NaN: carry the payload into the wide field and set the quiet bit.
		return sign, wideMax, mantissa<<shift | 1<<(mantBits-1)
	}

	return sign, exp - exponentBias + bias, mantissa << shift
}

// IsNaN returns true if h is a NaN value.
func (h Half) IsNaN() bool {
	return h&exponentMask == exponentMask && h&mantissaMask != 0
}

// IsInf returns true if h is positive or negative infinity.
func (h Half) IsInf() bool {
	return h&0x7FFF == exponentMask
}

// IsPosInf returns true if h is positive infinity.
func (h Half) IsPosInf() bool {
	return h == posInf
}

// IsNegInf returns true if h is negative infinity.
func (h Half) IsNegInf() bool {
	return h == negInf
}

// IsZero returns true if h is positive or negative zero.
func (h Half) IsZero() bool {
	return h&0x7FFF == 0
}

// IsNormal returns true if h is a normalized non-zero finite value.
func (h Half) IsNormal() bool {
	exp := h & exponentMask
	return exp != 0 && exp != exponentMask
}

// IsSubnormal returns true if h is a subnormal (denormalized) non-zero value.
func (h Half) IsSubnormal() bool {
	return h&exponentMask == 0 && h&mantissaMask != 0
}

// IsFinite returns true if h is not Inf or NaN.
func (h Half) IsFinite() bool {
	return h&exponentMask != exponentMask
}

// IsNegative returns true if the sign bit of h is set, including -0 and
// negative NaNs.
func (h Half) IsNegative() bool {
	return h&signBit != 0
}

// Sign returns the sign of h: -1 for negative, 0 for zero, 1 for positive.
// NaN returns 0.
func (h Half) Sign() int {
	if h.IsNaN() || h.IsZero() {
		return 0
	}
	if h&signBit != 0 {
		return -1
	}
	return 1
}

// Neg returns the negation of h.
func (h Half) Neg() Half {
	return h ^ signBit
}

// Abs returns the absolute value of h.
func (h Half) Abs() Half {
	return h &^ signBit
}

// CopySign returns a value with the magnitude of h and the sign of s.
func (h Half) CopySign(s Half) Half {
	return h&^signBit | s&signBit
}

// Bits returns the IEEE 754 binary16 representation of h.
func (h Half) Bits() uint16 {
	return uint16(h)
}

// FromBits creates a Half from its IEEE 754 binary16 bit representation.
func FromBits(bits uint16) Half {
	return Half(bits)
}

// Less returns true if h < other.
// NaN comparisons always return false.
func (h Half) Less(other Half) bool {
	if h.IsNaN() || other.IsNaN() {
		return false
	}
	// Handle zeros (positive and negative zero are equal)
	if h.IsZero() && other.IsZero() {
		return false
	}

	hSign := h & signBit
	otherSign := other & signBit

	// Different signs
	if hSign != otherSign {
		return hSign != 0
	}

	// Same sign - compare magnitudes
	hMag := h &^ signBit
	otherMag := other &^ signBit

	if hSign != 0 {
		// Both negative - larger magnitude is smaller
		return hMag > otherMag
	}
	return hMag < otherMag
}

// LessOrEqual returns true if h <= other.
// NaN comparisons always return false.
func (h Half) LessOrEqual(other Half) bool {
	return h.Equal(other) || h.Less(other)
}

// Greater returns true if h > other.
// NaN comparisons always return false.
func (h Half) Greater(other Half) bool {
	return other.Less(h)
}

// GreaterOrEqual returns true if h >= other.
// NaN comparisons always return false.
func (h Half) GreaterOrEqual(other Half) bool {
	return h.Equal(other) || other.Less(h)
}

// Equal returns true if h == other.
// Note: NaN != NaN and +0 == -0.
func (h Half) Equal(other Half) bool {
	if h.IsNaN() || other.IsNaN() {
		return false
	}
	if h.IsZero() && other.IsZero() {
		return true
	}
	return h == other
}

// Compare returns -1, 0 or +1 ordering h against other. Unlike the IEEE
// comparisons it is a total preorder suitable for sorting: NaN orders
// before every other value and equal to any NaN, and -0 equals +0.
func Compare(h, other Half) int {
	switch {
	case h.Less(other):
		return -1
	case other.Less(h):
		return 1
	case h.Equal(other):
		return 0
	case h.IsNaN():
		if other.IsNaN() {
			return 0
		}
		return -1
	}
	return 1
}

// BitIncrement returns the smallest Half that compares greater than h.
// NaN and +Inf are returned unchanged.
func BitIncrement(h Half) Half {
	switch {
	case h&exponentMask == exponentMask:
		if h == negInf {
			return minHalf
		}
		return h
	case h == negZero:
		return Epsilon
	case h&signBit != 0:
		return h - 1
	}
	return h + 1
}

// BitDecrement returns the largest Half that compares less than h.
// NaN and -Inf are returned unchanged.
func BitDecrement(h Half) Half {
	switch {
	case h&exponentMask == exponentMask:
		if h == posInf {
			return maxHalf
		}
		return h
	case h == posZero:
		return Epsilon | signBit
	case h&signBit != 0:
		return h + 1
	}
	return h - 1
}
