package integer

// AddChecked returns a + b, or ErrOverflow when the mathematical sum does
// not fit in T. For signed types overflow happened iff both operands share
// a sign and the result's sign differs.
func AddChecked[T Integer](a, b T) (T, error) {
	r := a + b
	if layoutOf[T]().signed {
		if (a^r)&(b^r) < 0 {
			return 0, ErrOverflow
		}
		return r, nil
	}
	if r < a {
		return 0, ErrOverflow
	}
	return r, nil
}

// SubChecked returns a - b, or ErrOverflow when the mathematical difference
// does not fit in T.
func SubChecked[T Integer](a, b T) (T, error) {
	r := a - b
	if layoutOf[T]().signed {
		if (a^b)&(a^r) < 0 {
			return 0, ErrOverflow
		}
		return r, nil
	}
	if b > a {
		return 0, ErrOverflow
	}
	return r, nil
}

// MulChecked returns a * b, or ErrOverflow when the mathematical product
// does not fit in T.
func MulChecked[T Integer](a, b T) (T, error) {
	l := layoutOf[T]()
	// Operands are at most 64 bits wide, so the exact product always fits
	// in 128 bits.
	var p UInt128
	if l.signed {
		p = Int128From64(int64(a)).Mul(Int128From64(int64(b))).UInt128()
	} else {
		p = UInt128From64(uint64(a)).Mul(UInt128From64(uint64(b)))
	}
	if !l.fits(p, l.signed) {
		return 0, ErrOverflow
	}
	return narrow[T](p), nil
}

// Convert returns v converted to U, or ErrOverflow when v is not
// representable in U.
func Convert[U, T Integer](v T) (U, error) {
	if !layoutOf[U]().fits(widen(v), layoutOf[T]().signed) {
		return 0, ErrOverflow
	}
	return U(v), nil
}

// Saturate returns v converted to U, clamped to U's range.
func Saturate[U, T Integer](v T) U {
	ul := layoutOf[U]()
	w := widen(v)
	if ul.fits(w, layoutOf[T]().signed) {
		return U(v)
	}
	if v < 0 {
		if !ul.signed {
			return 0
		}
		return narrow[U](UInt128{}.Sub(ul.maxMagnitude(true)))
	}
	return narrow[U](ul.maxMagnitude(false))
}
