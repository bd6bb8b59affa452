package integer

import (
	"math"
	"math/big"
	"math/bits"
)

// UInt128 is an unsigned 128-bit integer stored as two 64-bit halves.
// All operations reduce modulo 2^128, so every pair is a valid value.
type UInt128 struct {
	hi uint64
	lo uint64
}

// MaxUInt128 is the largest UInt128 value, 2^128 - 1.
var MaxUInt128 = UInt128{hi: math.MaxUint64, lo: math.MaxUint64}

// NewUInt128 returns the UInt128 with the given upper and lower 64 bits.
func NewUInt128(upper, lower uint64) UInt128 {
	return UInt128{hi: upper, lo: lower}
}

// UInt128From64 zero-extends v to 128 bits.
func UInt128From64(v uint64) UInt128 {
	return UInt128{lo: v}
}

// Upper returns the most significant 64 bits.
func (u UInt128) Upper() uint64 { return u.hi }

// Lower returns the least significant 64 bits.
func (u UInt128) Lower() uint64 { return u.lo }

// IsZero reports whether u == 0.
func (u UInt128) IsZero() bool { return u.hi|u.lo == 0 }

// Equal reports whether u == v.
func (u UInt128) Equal(v UInt128) bool { return u == v }

// Cmp returns -1, 0 or +1 depending on whether u is less than, equal to or
// greater than v.
func (u UInt128) Cmp(v UInt128) int {
	switch {
	case u.hi < v.hi:
		return -1
	case u.hi > v.hi:
		return 1
	case u.lo < v.lo:
		return -1
	case u.lo > v.lo:
		return 1
	}
	return 0
}

// Add returns u + v, wrapping on overflow.
func (u UInt128) Add(v UInt128) UInt128 {
	lo, carry := bits.Add64(u.lo, v.lo, 0)
	hi, _ := bits.Add64(u.hi, v.hi, carry)
	return UInt128{hi: hi, lo: lo}
}

// Add64 returns u + v, wrapping on overflow.
func (u UInt128) Add64(v uint64) UInt128 {
	lo, carry := bits.Add64(u.lo, v, 0)
	return UInt128{hi: u.hi + carry, lo: lo}
}

// AddChecked returns u + v, or ErrOverflow when the sum exceeds MaxUInt128.
func (u UInt128) AddChecked(v UInt128) (UInt128, error) {
	lo, carry := bits.Add64(u.lo, v.lo, 0)
	hi, carry := bits.Add64(u.hi, v.hi, carry)
	if carry != 0 {
		return UInt128{}, ErrOverflow
	}
	return UInt128{hi: hi, lo: lo}, nil
}

// Sub returns u - v, wrapping on underflow.
func (u UInt128) Sub(v UInt128) UInt128 {
	lo, borrow := bits.Sub64(u.lo, v.lo, 0)
	hi, _ := bits.Sub64(u.hi, v.hi, borrow)
	return UInt128{hi: hi, lo: lo}
}

// Sub64 returns u - v, wrapping on underflow.
func (u UInt128) Sub64(v uint64) UInt128 {
	lo, borrow := bits.Sub64(u.lo, v, 0)
	return UInt128{hi: u.hi - borrow, lo: lo}
}

// SubChecked returns u - v, or ErrOverflow when v > u.
func (u UInt128) SubChecked(v UInt128) (UInt128, error) {
	lo, borrow := bits.Sub64(u.lo, v.lo, 0)
	hi, borrow := bits.Sub64(u.hi, v.hi, borrow)
	if borrow != 0 {
		return UInt128{}, ErrOverflow
	}
	return UInt128{hi: hi, lo: lo}, nil
}

// Mul returns u * v modulo 2^128.
func (u UInt128) Mul(v UInt128) UInt128 {
	hi, lo := bits.Mul64(u.lo, v.lo)
	hi += u.hi*v.lo + u.lo*v.hi
	return UInt128{hi: hi, lo: lo}
}

// Mul64 returns u * v modulo 2^128.
func (u UInt128) Mul64(v uint64) UInt128 {
	hi, lo := bits.Mul64(u.lo, v)
	hi += u.hi * v
	return UInt128{hi: hi, lo: lo}
}

// MulChecked returns u * v, or ErrOverflow when the product needs more
// than 128 bits.
func (u UInt128) MulChecked(v UInt128) (UInt128, error) {
	p, overflow := mulOverflow(u, v)
	if overflow {
		return UInt128{}, ErrOverflow
	}
	return p, nil
}

// mulOverflow returns the wrapped product and whether the exact product
// exceeded 128 bits.
func mulOverflow(u, v UInt128) (UInt128, bool) {
	if u.hi != 0 && v.hi != 0 {
		return u.Mul(v), true
	}
	hi, lo := bits.Mul64(u.lo, v.lo)
	c1, t1 := bits.Mul64(u.hi, v.lo)
	c2, t2 := bits.Mul64(u.lo, v.hi)
	hi, carry1 := bits.Add64(hi, t1, 0)
	hi, carry2 := bits.Add64(hi, t2, 0)
	return UInt128{hi: hi, lo: lo}, c1|c2|carry1|carry2 != 0
}

// QuoRem returns the quotient and remainder of u / v.
// It panics if v is zero.
func (u UInt128) QuoRem(v UInt128) (q, r UInt128) {
	if v.hi == 0 {
		var r64 uint64
		q, r64 = u.QuoRem64(v.lo)
		return q, UInt128{lo: r64}
	}
	// v >= 2^64, so the quotient fits in 64 bits. Estimate it from the
	// normalised divisor and correct by at most one.
	n := uint(bits.LeadingZeros64(v.hi))
	v1 := v.Lsh(n)
	u1 := u.Rsh(1)
	tq, _ := bits.Div64(u1.hi, u1.lo, v1.hi)
	tq >>= 63 - n
	if tq != 0 {
		tq--
	}
	q = UInt128{lo: tq}
	r = u.Sub(v.Mul64(tq))
	if r.Cmp(v) >= 0 {
		q = q.Add64(1)
		r = r.Sub(v)
	}
	return q, r
}

// QuoRem64 returns the quotient and remainder of u / v.
// It panics if v is zero.
func (u UInt128) QuoRem64(v uint64) (q UInt128, r uint64) {
	if v == 0 {
		panic(errDivideByZero)
	}
	if u.hi < v {
		q.lo, r = bits.Div64(u.hi, u.lo, v)
		return q, r
	}
	q.hi, r = bits.Div64(0, u.hi, v)
	q.lo, r = bits.Div64(r, u.lo, v)
	return q, r
}

// Quo returns u / v. It panics if v is zero.
func (u UInt128) Quo(v UInt128) UInt128 {
	q, _ := u.QuoRem(v)
	return q
}

// Rem returns u % v. It panics if v is zero.
func (u UInt128) Rem(v UInt128) UInt128 {
	_, r := u.QuoRem(v)
	return r
}

// And returns u & v.
func (u UInt128) And(v UInt128) UInt128 { return UInt128{hi: u.hi & v.hi, lo: u.lo & v.lo} }

// Or returns u | v.
func (u UInt128) Or(v UInt128) UInt128 { return UInt128{hi: u.hi | v.hi, lo: u.lo | v.lo} }

// Xor returns u ^ v.
func (u UInt128) Xor(v UInt128) UInt128 { return UInt128{hi: u.hi ^ v.hi, lo: u.lo ^ v.lo} }

// AndNot returns u &^ v.
func (u UInt128) AndNot(v UInt128) UInt128 { return UInt128{hi: u.hi &^ v.hi, lo: u.lo &^ v.lo} }

// Not returns ^u.
func (u UInt128) Not() UInt128 { return UInt128{hi: ^u.hi, lo: ^u.lo} }

// Lsh returns u << n. Shift counts are taken modulo 128, as the runtime's
// shift operators do.
func (u UInt128) Lsh(n uint) UInt128 {
	n &= 127
	switch {
	case n == 0:
		return u
	case n >= 64:
		return UInt128{hi: u.lo << (n - 64)}
	}
	return UInt128{hi: u.hi<<n | u.lo>>(64-n), lo: u.lo << n}
}

// Rsh returns u >> n (logical). Shift counts are taken modulo 128.
func (u UInt128) Rsh(n uint) UInt128 {
	n &= 127
	switch {
	case n == 0:
		return u
	case n >= 64:
		return UInt128{lo: u.hi >> (n - 64)}
	}
	return UInt128{hi: u.hi >> n, lo: u.lo>>n | u.hi<<(64-n)}
}

// LeadingZeros returns the number of leading zero bits in u.
func (u UInt128) LeadingZeros() int {
	if u.hi != 0 {
		return bits.LeadingZeros64(u.hi)
	}
	return 64 + bits.LeadingZeros64(u.lo)
}

// TrailingZeros returns the number of trailing zero bits in u.
func (u UInt128) TrailingZeros() int {
	if u.lo != 0 {
		return bits.TrailingZeros64(u.lo)
	}
	return 64 + bits.TrailingZeros64(u.hi)
}

// OnesCount returns the number of one bits in u.
func (u UInt128) OnesCount() int {
	return bits.OnesCount64(u.hi) + bits.OnesCount64(u.lo)
}

// Int128 reinterprets the bits of u as a signed value.
func (u UInt128) Int128() Int128 { return Int128{hi: u.hi, lo: u.lo} }

// Big returns u as a new big.Int.
func (u UInt128) Big() *big.Int {
	b := new(big.Int).SetUint64(u.hi)
	b.Lsh(b, 64)
	return b.Or(b, new(big.Int).SetUint64(u.lo))
}

// Float64 returns the nearest float64 to u.
func (u UInt128) Float64() float64 {
	if u.hi == 0 {
		return float64(u.lo)
	}
	// Fold the discarded low bits into a sticky bit so the single
	// float64 conversion rounds correctly.
	shift := uint(64 - bits.LeadingZeros64(u.hi))
	top := u.Rsh(shift).lo
	if u.lo&(1<<shift-1) != 0 {
		top |= 1
	}
	return math.Ldexp(float64(top), int(shift))
}

// String returns the decimal representation of u.
func (u UInt128) String() string {
	var buf [MaxDigitCount]byte
	return string(appendMagnitude(buf[:0], u))
}
