package half

import "encoding/binary"

// unroll is the number of elements converted per loop iteration.
const unroll = 8

// FromFloat32s converts src to Half values in dst and returns the number
// converted. It panics if dst is shorter than src.
func FromFloat32s(dst []Half, src []float32) int {
	n := len(src)
	if len(dst) < n {
		panic("half: destination slice too small")
	}
	dst = dst[:n]

	i := 0
	for ; i+unroll <= n; i += unroll {
		s := src[i : i+unroll : i+unroll]
		d := dst[i : i+unroll : i+unroll]
		d[0] = FromFloat32(s[0])
		d[1] = FromFloat32(s[1])
		d[2] = FromFloat32(s[2])
		d[3] = FromFloat32(s[3])
		d[4] = FromFloat32(s[4])
		d[5] = FromFloat32(s[5])
		d[6] = FromFloat32(s[6])
		d[7] = FromFloat32(s[7])
	}
	for ; i < n; i++ {
		dst[i] = FromFloat32(src[i])
	}
	return n
}

// ToFloat32s widens src into dst and returns the number converted. It
// panics if dst is shorter than src.
func ToFloat32s(dst []float32, src []Half) int {
	n := len(src)
	if len(dst) < n {
		panic("half: destination slice too small")
	}
	dst = dst[:n]

	i := 0
	for ; i+unroll <= n; i += unroll {
		s := src[i : i+unroll : i+unroll]
		d := dst[i : i+unroll : i+unroll]
		d[0] = s[0].Float32()
		d[1] = s[1].Float32()
		d[2] = s[2].Float32()
		d[3] = s[3].Float32()
		d[4] = s[4].Float32()
		d[5] = s[5].Float32()
		d[6] = s[6].Float32()
		d[7] = s[7].Float32()
	}
	for ; i < n; i++ {
		dst[i] = src[i].Float32()
	}
	return n
}

// FromFloat64s converts src to Half values in dst, rounding each value
// once. It panics if dst is shorter than src.
func FromFloat64s(dst []Half, src []float64) int {
	n := len(src)
	if len(dst) < n {
		panic("half: destination slice too small")
	}
	for i, f := range src {
		dst[i] = FromFloat64(f)
	}
	return n
}

// ToFloat64s widens src into dst. It panics if dst is shorter than src.
func ToFloat64s(dst []float64, src []Half) int {
	n := len(src)
	if len(dst) < n {
		panic("half: destination slice too small")
	}
	for i, h := range src {
		dst[i] = h.Float64()
	}
	return n
}

// Encode writes src to dst as consecutive 2-byte values in the given byte
// order and returns the number of bytes written. It panics if dst is
// shorter than 2*len(src).
func Encode(dst []byte, src []Half, order binary.ByteOrder) int {
	n := len(src)
	if len(dst) < 2*n {
		panic("half: destination slice too small")
	}
	if order == binary.LittleEndian {
		i := 0
		for ; i+unroll <= n; i += unroll {
			b := dst[2*i : 2*i+2*unroll : 2*i+2*unroll]
			s := src[i : i+unroll : i+unroll]
			binary.LittleEndian.PutUint16(b[0:], uint16(s[0]))
			binary.LittleEndian.PutUint16(b[2:], uint16(s[1]))
			binary.LittleEndian.PutUint16(b[4:], uint16(s[2]))
			binary.LittleEndian.PutUint16(b[6:], uint16(s[3]))
			binary.LittleEndian.PutUint16(b[8:], uint16(s[4]))
			binary.LittleEndian.PutUint16(b[10:], uint16(s[5]))
			binary.LittleEndian.PutUint16(b[12:], uint16(s[6]))
			binary.LittleEndian.PutUint16(b[14:], uint16(s[7]))
		}
		for ; i < n; i++ {
			binary.LittleEndian.PutUint16(dst[2*i:], uint16(src[i]))
		}
		return 2 * n
	}
	for i, h := range src {
		order.PutUint16(dst[2*i:], uint16(h))
	}
	return 2 * n
}

// Decode reads len(src)/2 values from src in the given byte order into dst
// and returns the number decoded. A trailing odd byte is ignored. It
// panics if dst is too short.
func Decode(dst []Half, src []byte, order binary.ByteOrder) int {
	n := len(src) / 2
	if len(dst) < n {
		panic("half: destination slice too small")
	}
	if order == binary.LittleEndian {
		i := 0
		for ; i+unroll <= n; i += unroll {
			b := src[2*i : 2*i+2*unroll : 2*i+2*unroll]
			d := dst[i : i+unroll : i+unroll]
			d[0] = Half(binary.LittleEndian.Uint16(b[0:]))
			d[1] = Half(binary.LittleEndian.Uint16(b[2:]))
			d[2] = Half(binary.LittleEndian.Uint16(b[4:]))
			d[3] = Half(binary.LittleEndian.Uint16(b[6:]))
			d[4] = Half(binary.LittleEndian.Uint16(b[8:]))
			d[5] = Half(binary.LittleEndian.Uint16(b[10:]))
			d[6] = Half(binary.LittleEndian.Uint16(b[12:]))
			d[7] = Half(binary.LittleEndian.Uint16(b[14:]))
		}
		for ; i < n; i++ {
			dst[i] = Half(binary.LittleEndian.Uint16(src[2*i:]))
		}
		return n
	}
	for i := 0; i < n; i++ {
		dst[i] = Half(order.Uint16(src[2*i:]))
	}
	return n
}

// Clamp limits each value in data to the finite Half range, replacing NaN
// with zero, so that a subsequent FromFloat32s produces no Inf or NaN.
func Clamp(data []float32) {
	const limit = 65504
	for i, v := range data {
		switch {
		case v != v:
			data[i] = 0
		case v > limit:
			data[i] = limit
		case v < -limit:
			data[i] = -limit
		}
	}
}
