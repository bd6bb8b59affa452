package half

import "math"

// Add returns a + b.
func Add(a, b Half) Half { return FromFloat32(a.Float32() + b.Float32()) }

// Sub returns a - b.
func Sub(a, b Half) Half { return FromFloat32(a.Float32() - b.Float32()) }

// Mul returns a * b.
func Mul(a, b Half) Half { return FromFloat32(a.Float32() * b.Float32()) }

// Div returns a / b. Division by zero yields a signed infinity, and 0/0 NaN.
func Div(a, b Half) Half { return FromFloat32(a.Float32() / b.Float32()) }

// Rem returns the remainder of a / b with the sign of a, like math.Mod.
func Rem(a, b Half) Half {
	return FromFloat32(float32(math.Mod(float64(a.Float32()), float64(b.Float32()))))
}

// Inc returns h + 1.
func (h Half) Inc() Half { return Add(h, One) }

// Dec returns h - 1.
func (h Half) Dec() Half { return Sub(h, One) }

// FMA returns a*b + c. The intermediate is computed in float64, in which
// the product of two halves is exact, so only the final narrowing rounds
// more than once.
func FMA(a, b, c Half) Half {
	return FromFloat64(math.FMA(a.Float64(), b.Float64(), c.Float64()))
}

// Sqrt returns the square root of h.
func Sqrt(h Half) Half { return promote1(h, math.Sqrt) }

// Exp returns e**h.
func Exp(h Half) Half { return promote1(h, math.Exp) }

// Log returns the natural logarithm of h.
func Log(h Half) Half { return promote1(h, math.Log) }

// Log2 returns the binary logarithm of h.
func Log2(h Half) Half { return promote1(h, math.Log2) }

// Sin returns the sine of h (radians).
func Sin(h Half) Half { return promote1(h, math.Sin) }

// Cos returns the cosine of h (radians).
func Cos(h Half) Half { return promote1(h, math.Cos) }

// Pow returns x**y.
func Pow(x, y Half) Half {
	return FromFloat32(float32(math.Pow(float64(x.Float32()), float64(y.Float32()))))
}

// promote1 evaluates fn at float32 precision: the float64 result is first
// rounded to float32, then to Half.
func promote1(h Half, fn func(float64) float64) Half {
	return FromFloat32(float32(fn(float64(h.Float32()))))
}

// Minimum returns the smaller of a and b. If either is NaN the result is NaN;
// Minimum(-0, +0) is -0.
func Minimum(a, b Half) Half {
	switch {
	case a.IsNaN():
		return a
	case b.IsNaN():
		return b
	case a.IsZero() && b.IsZero():
		return a | b&signBit
	case a.Less(b):
		return a
	}
	return b
}

// Maximum returns the larger of a and b. If either is NaN the result is NaN;
// Maximum(-0, +0) is +0.
func Maximum(a, b Half) Half {
	switch {
	case a.IsNaN():
		return a
	case b.IsNaN():
		return b
	case a.IsZero() && b.IsZero():
		return a & b
	case a.Less(b):
		return b
	}
	return a
}
