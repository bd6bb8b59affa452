package integer

// byteOrder selects the byte order of the endian codec.
type byteOrder bool

const (
	littleEndian byteOrder = false
	bigEndian    byteOrder = true
)

// significant returns the k-th byte of src counting from the most
// significant one.
func (o byteOrder) significant(src []byte, k int) byte {
	if o == bigEndian {
		return src[k]
	}
	return src[len(src)-1-k]
}

// tryRead decodes src, an integer of arbitrary length that is signed two's
// complement unless isUnsigned, into layout l. It fails when the denoted
// value is not representable in l.
func tryRead(src []byte, isUnsigned bool, l layout, o byteOrder) (UInt128, bool) {
	m, n := len(src), l.byteCount()
	if m == 0 {
		return UInt128{}, true
	}

	neg := !isUnsigned && o.significant(src, 0)&0x80 != 0
	var ext byte
	if neg {
		ext = 0xFF
	}

	start := 0
	if m > n {
		start = m - n
		for k := 0; k < start; k++ {
			if o.significant(src, k) != ext {
				return UInt128{}, false
			}
		}
		topSet := o.significant(src, start)&0x80 != 0
		if l.signed && topSet != neg {
			return UInt128{}, false
		}
	} else if l.signed && !neg && m == n && o.significant(src, 0)&0x80 != 0 {
		// An unsigned source using every bit of a signed target.
		return UInt128{}, false
	}
	if neg && !l.signed {
		return UInt128{}, false
	}

	var v UInt128
	if neg {
		v = MaxUInt128
	}
	for k := start; k < m; k++ {
		v = v.Lsh(8).Or(UInt128{lo: uint64(o.significant(src, k))})
	}
	return v, true
}

// tryWrite encodes the low l.bits of v into dst.
func tryWrite(dst []byte, v UInt128, l layout, o byteOrder) (int, bool) {
	n := l.byteCount()
	if len(dst) < n {
		return 0, false
	}
	for k := n - 1; k >= 0; k-- {
		b := byte(v.lo)
		if o == bigEndian {
			dst[k] = b
		} else {
			dst[n-1-k] = b
		}
		v = v.Rsh(8)
	}
	return n, true
}

// TryReadBigEndian decodes a big-endian integer of any length from src.
// The source is two's complement unless isUnsigned is set. It returns
// false and zero when the value does not fit in T.
func TryReadBigEndian[T Integer](src []byte, isUnsigned bool) (T, bool) {
	v, ok := tryRead(src, isUnsigned, layoutOf[T](), bigEndian)
	return narrow[T](v), ok
}

// TryReadLittleEndian is the little-endian counterpart of TryReadBigEndian.
func TryReadLittleEndian[T Integer](src []byte, isUnsigned bool) (T, bool) {
	v, ok := tryRead(src, isUnsigned, layoutOf[T](), littleEndian)
	return narrow[T](v), ok
}

// TryWriteBigEndian writes v to dst in big-endian order. It returns the
// number of bytes written, or false when dst is shorter than ByteCount[T].
func TryWriteBigEndian[T Integer](dst []byte, v T) (int, bool) {
	return tryWrite(dst, widen(v), layoutOf[T](), bigEndian)
}

// TryWriteLittleEndian writes v to dst in little-endian order.
func TryWriteLittleEndian[T Integer](dst []byte, v T) (int, bool) {
	return tryWrite(dst, widen(v), layoutOf[T](), littleEndian)
}

// TryReadInt128BigEndian decodes a big-endian Int128 from src.
func TryReadInt128BigEndian(src []byte, isUnsigned bool) (Int128, bool) {
	v, ok := tryRead(src, isUnsigned, int128Layout, bigEndian)
	return v.Int128(), ok
}

// TryReadInt128LittleEndian decodes a little-endian Int128 from src.
func TryReadInt128LittleEndian(src []byte, isUnsigned bool) (Int128, bool) {
	v, ok := tryRead(src, isUnsigned, int128Layout, littleEndian)
	return v.Int128(), ok
}

// TryReadUInt128BigEndian decodes a big-endian UInt128 from src.
func TryReadUInt128BigEndian(src []byte, isUnsigned bool) (UInt128, bool) {
	return tryRead(src, isUnsigned, uint128Layout, bigEndian)
}

// TryReadUInt128LittleEndian decodes a little-endian UInt128 from src.
func TryReadUInt128LittleEndian(src []byte, isUnsigned bool) (UInt128, bool) {
	return tryRead(src, isUnsigned, uint128Layout, littleEndian)
}

// TryWriteBigEndian writes the 16 bytes of i to dst in big-endian order.
func (i Int128) TryWriteBigEndian(dst []byte) (int, bool) {
	return tryWrite(dst, i.UInt128(), int128Layout, bigEndian)
}

// TryWriteLittleEndian writes the 16 bytes of i to dst in little-endian order.
func (i Int128) TryWriteLittleEndian(dst []byte) (int, bool) {
	return tryWrite(dst, i.UInt128(), int128Layout, littleEndian)
}

// TryWriteBigEndian writes the 16 bytes of u to dst in big-endian order.
func (u UInt128) TryWriteBigEndian(dst []byte) (int, bool) {
	return tryWrite(dst, u, uint128Layout, bigEndian)
}

// TryWriteLittleEndian writes the 16 bytes of u to dst in little-endian order.
func (u UInt128) TryWriteLittleEndian(dst []byte) (int, bool) {
	return tryWrite(dst, u, uint128Layout, littleEndian)
}
