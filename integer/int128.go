package integer

import (
	"math"
	"math/big"
)

// Int128 is a signed two's-complement 128-bit integer stored as two 64-bit
// halves. The upper half carries the sign bit.
type Int128 struct {
	hi uint64
	lo uint64
}

var (
	// MaxInt128 is the largest Int128 value, 2^127 - 1.
	MaxInt128 = Int128{hi: math.MaxInt64, lo: math.MaxUint64}
	// MinInt128 is the smallest Int128 value, -2^127.
	MinInt128 = Int128{hi: 1 << 63}
)

// NewInt128 returns the Int128 whose two's-complement bit pattern has the
// given upper and lower 64 bits.
func NewInt128(upper, lower uint64) Int128 {
	return Int128{hi: upper, lo: lower}
}

// Int128From64 sign-extends v to 128 bits.
func Int128From64(v int64) Int128 {
	return Int128{hi: uint64(v >> 63), lo: uint64(v)}
}

// Upper returns the most significant 64 bits of the bit pattern.
func (i Int128) Upper() uint64 { return i.hi }

// Lower returns the least significant 64 bits of the bit pattern.
func (i Int128) Lower() uint64 { return i.lo }

// UInt128 reinterprets the bits of i as an unsigned value.
func (i Int128) UInt128() UInt128 { return UInt128{hi: i.hi, lo: i.lo} }

// IsZero reports whether i == 0.
func (i Int128) IsZero() bool { return i.hi|i.lo == 0 }

// IsNegative reports whether i < 0.
func (i Int128) IsNegative() bool { return int64(i.hi) < 0 }

// Sign returns -1, 0 or +1.
func (i Int128) Sign() int {
	switch {
	case i.IsNegative():
		return -1
	case i.IsZero():
		return 0
	}
	return 1
}

// Equal reports whether i == j.
func (i Int128) Equal(j Int128) bool { return i == j }

// Cmp returns -1, 0 or +1 depending on whether i is less than, equal to or
// greater than j.
func (i Int128) Cmp(j Int128) int {
	if i.hi != j.hi {
		if int64(i.hi) < int64(j.hi) {
			return -1
		}
		return 1
	}
	switch {
	case i.lo < j.lo:
		return -1
	case i.lo > j.lo:
		return 1
	}
	return 0
}

// Add returns i + j, wrapping on overflow.
func (i Int128) Add(j Int128) Int128 {
	return i.UInt128().Add(j.UInt128()).Int128()
}

// AddChecked returns i + j, or ErrOverflow when the sum is out of range.
// Overflow happened iff both operands share a sign and the result's sign
// differs.
func (i Int128) AddChecked(j Int128) (Int128, error) {
	r := i.Add(j)
	if int64((i.hi^r.hi)&(j.hi^r.hi)) < 0 {
		return Int128{}, ErrOverflow
	}
	return r, nil
}

// Sub returns i - j, wrapping on overflow.
func (i Int128) Sub(j Int128) Int128 {
	return i.UInt128().Sub(j.UInt128()).Int128()
}

// SubChecked returns i - j, or ErrOverflow when the difference is out of
// range.
func (i Int128) SubChecked(j Int128) (Int128, error) {
	r := i.Sub(j)
	if int64((i.hi^j.hi)&(i.hi^r.hi)) < 0 {
		return Int128{}, ErrOverflow
	}
	return r, nil
}

// Neg returns -i. Negating MinInt128 yields MinInt128.
func (i Int128) Neg() Int128 {
	return Int128{}.Sub(i)
}

// NegChecked returns -i, or ErrOverflow for MinInt128.
func (i Int128) NegChecked() (Int128, error) {
	if i == MinInt128 {
		return Int128{}, ErrOverflow
	}
	return i.Neg(), nil
}

// Abs returns |i|. Abs(MinInt128) is MinInt128.
func (i Int128) Abs() Int128 {
	if i.IsNegative() {
		return i.Neg()
	}
	return i
}

// magnitude returns |i| as an unsigned value, exact for MinInt128.
func (i Int128) magnitude() UInt128 {
	if i.IsNegative() {
		return UInt128{}.Sub(i.UInt128())
	}
	return i.UInt128()
}

// Mul returns i * j modulo 2^128.
func (i Int128) Mul(j Int128) Int128 {
	return i.UInt128().Mul(j.UInt128()).Int128()
}

// MulChecked returns i * j, or ErrOverflow when the product is out of range.
func (i Int128) MulChecked(j Int128) (Int128, error) {
	p, overflow := mulOverflow(i.magnitude(), j.magnitude())
	if overflow {
		return Int128{}, ErrOverflow
	}
	neg := i.IsNegative() != j.IsNegative()
	limit := MaxInt128.UInt128()
	if neg {
		limit = limit.Add64(1)
	}
	if p.Cmp(limit) > 0 {
		return Int128{}, ErrOverflow
	}
	if neg {
		return p.Int128().Neg(), nil
	}
	return p.Int128(), nil
}

// QuoRem returns the truncated quotient and remainder of i / j. The
// remainder has the sign of i. MinInt128 / -1 wraps to MinInt128.
// It panics if j is zero.
func (i Int128) QuoRem(j Int128) (q, r Int128) {
	uq, ur := i.magnitude().QuoRem(j.magnitude())
	q, r = uq.Int128(), ur.Int128()
	if i.IsNegative() != j.IsNegative() {
		q = q.Neg()
	}
	if i.IsNegative() {
		r = r.Neg()
	}
	return q, r
}

// Quo returns i / j truncated toward zero. It panics if j is zero.
func (i Int128) Quo(j Int128) Int128 {
	q, _ := i.QuoRem(j)
	return q
}

// QuoChecked returns i / j, or ErrOverflow for MinInt128 / -1.
// It panics if j is zero.
func (i Int128) QuoChecked(j Int128) (Int128, error) {
	if i == MinInt128 && j == Int128From64(-1) {
		return Int128{}, ErrOverflow
	}
	return i.Quo(j), nil
}

// Rem returns i % j with the sign of i. It panics if j is zero.
func (i Int128) Rem(j Int128) Int128 {
	_, r := i.QuoRem(j)
	return r
}

// And returns i & j.
func (i Int128) And(j Int128) Int128 { return Int128{hi: i.hi & j.hi, lo: i.lo & j.lo} }

// Or returns i | j.
func (i Int128) Or(j Int128) Int128 { return Int128{hi: i.hi | j.hi, lo: i.lo | j.lo} }

// Xor returns i ^ j.
func (i Int128) Xor(j Int128) Int128 { return Int128{hi: i.hi ^ j.hi, lo: i.lo ^ j.lo} }

// Not returns ^i.
func (i Int128) Not() Int128 { return Int128{hi: ^i.hi, lo: ^i.lo} }

// Lsh returns i << n. Shift counts are taken modulo 128.
func (i Int128) Lsh(n uint) Int128 { return i.UInt128().Lsh(n).Int128() }

// Rsh returns i >> n, shifting in copies of the sign bit. Shift counts are
// taken modulo 128.
func (i Int128) Rsh(n uint) Int128 {
	n &= 127
	switch {
	case n == 0:
		return i
	case n >= 64:
		return Int128{hi: uint64(int64(i.hi) >> 63), lo: uint64(int64(i.hi) >> (n - 64))}
	}
	return Int128{hi: uint64(int64(i.hi) >> n), lo: i.lo>>n | i.hi<<(64-n)}
}

// LeadingZeros returns the number of leading zero bits in the bit pattern.
func (i Int128) LeadingZeros() int { return i.UInt128().LeadingZeros() }

// TrailingZeros returns the number of trailing zero bits in the bit pattern.
func (i Int128) TrailingZeros() int { return i.UInt128().TrailingZeros() }

// OnesCount returns the number of one bits in the bit pattern.
func (i Int128) OnesCount() int { return i.UInt128().OnesCount() }

// Big returns i as a new big.Int.
func (i Int128) Big() *big.Int {
	b := i.magnitude().Big()
	if i.IsNegative() {
		b.Neg(b)
	}
	return b
}

// Float64 returns the nearest float64 to i.
func (i Int128) Float64() float64 {
	f := i.magnitude().Float64()
	if i.IsNegative() {
		return -f
	}
	return f
}

// String returns the decimal representation of i.
func (i Int128) String() string {
	var buf [MaxDigitCount + 1]byte
	b := buf[:0]
	if i.IsNegative() {
		b = append(b, '-')
	}
	return string(appendMagnitude(b, i.magnitude()))
}
