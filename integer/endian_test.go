package integer

import (
	"bytes"
	"math"
	"testing"
)

func endianRoundTrip[T Integer](t *testing.T, values ...T) {
	t.Helper()
	n := ByteCount[T]()
	for _, v := range values {
		buf := make([]byte, n)
		if w, ok := TryWriteBigEndian(buf, v); !ok || w != n {
			t.Fatalf("TryWriteBigEndian(%v) = %d, %v", v, w, ok)
		}
		got, ok := TryReadBigEndian[T](buf, !layoutOf[T]().signed)
		if !ok || got != v {
			t.Errorf("big-endian round trip of %v = %v, %v", v, got, ok)
		}

		if w, ok := TryWriteLittleEndian(buf, v); !ok || w != n {
			t.Fatalf("TryWriteLittleEndian(%v) = %d, %v", v, w, ok)
		}
		got, ok = TryReadLittleEndian[T](buf, !layoutOf[T]().signed)
		if !ok || got != v {
			t.Errorf("little-endian round trip of %v = %v, %v", v, got, ok)
		}
	}
}

func TestEndianRoundTrip(t *testing.T) {
	endianRoundTrip[int8](t, math.MinInt8, -1, 0, math.MaxInt8)
	endianRoundTrip[uint8](t, 0, math.MaxUint8)
	endianRoundTrip[int16](t, math.MinInt16, -1, 0, 0x1234, math.MaxInt16)
	endianRoundTrip[uint16](t, 0, 0xBEEF, math.MaxUint16)
	endianRoundTrip[int32](t, math.MinInt32, -1, 0, math.MaxInt32)
	endianRoundTrip[uint32](t, 0, 0xDEADBEEF, math.MaxUint32)
	endianRoundTrip[int64](t, math.MinInt64, -1, 0, math.MaxInt64)
	endianRoundTrip[uint64](t, 0, 0x0102030405060708, math.MaxUint64)

	for _, v := range []Int128{MinInt128, MaxInt128, {}, Int128From64(-2)} {
		buf := make([]byte, 16)
		v.TryWriteBigEndian(buf)
		if got, ok := TryReadInt128BigEndian(buf, false); !ok || got != v {
			t.Errorf("Int128 big-endian round trip of %v = %v, %v", v, got, ok)
		}
		v.TryWriteLittleEndian(buf)
		if got, ok := TryReadInt128LittleEndian(buf, false); !ok || got != v {
			t.Errorf("Int128 little-endian round trip of %v = %v, %v", v, got, ok)
		}
	}
	for _, v := range []UInt128{MaxUInt128, {}, NewUInt128(1, 2)} {
		buf := make([]byte, 16)
		v.TryWriteBigEndian(buf)
		if got, ok := TryReadUInt128BigEndian(buf, true); !ok || got != v {
			t.Errorf("UInt128 big-endian round trip of %v = %v, %v", v, got, ok)
		}
		v.TryWriteLittleEndian(buf)
		if got, ok := TryReadUInt128LittleEndian(buf, true); !ok || got != v {
			t.Errorf("UInt128 little-endian round trip of %v = %v, %v", v, got, ok)
		}
	}
}

func TestWriteByteOrder(t *testing.T) {
	buf := make([]byte, 6)
	n, ok := TryWriteBigEndian(buf, int32(0x01020304))
	if !ok || n != 4 || !bytes.Equal(buf[:4], []byte{1, 2, 3, 4}) {
		t.Errorf("TryWriteBigEndian = %d, %v, % x", n, ok, buf)
	}
	n, ok = TryWriteLittleEndian(buf, int32(0x01020304))
	if !ok || n != 4 || !bytes.Equal(buf[:4], []byte{4, 3, 2, 1}) {
		t.Errorf("TryWriteLittleEndian = %d, %v, % x", n, ok, buf)
	}
	if n, ok := TryWriteBigEndian(make([]byte, 3), int32(1)); ok || n != 0 {
		t.Errorf("TryWriteBigEndian short dst = %d, %v", n, ok)
	}
	if n, ok := MaxInt128.TryWriteLittleEndian(make([]byte, 15)); ok || n != 0 {
		t.Errorf("Int128 TryWriteLittleEndian short dst = %d, %v", n, ok)
	}
}

func TestTryReadBigEndianRules(t *testing.T) {
	tests := []struct {
		name       string
		src        []byte
		isUnsigned bool
		want       int32
		ok         bool
	}{
		{"empty", nil, false, 0, true},
		{"one byte sign extended", []byte{0xFF}, false, -1, true},
		{"one byte unsigned", []byte{0xFF}, true, 255, true},
		{"three bytes sign extended", []byte{0x80, 0x00, 0x01}, false, -0x7FFFFF, true},
		{"four bytes unsigned top bit", []byte{0x80, 0, 0, 0}, true, 0, false},
		{"four bytes signed top bit", []byte{0x80, 0, 0, 0}, false, math.MinInt32, true},
		{"wide zero padded", []byte{0, 0, 0, 0, 0x7F, 0xFF, 0xFF, 0xFF}, false, math.MaxInt32, true},
		{"wide sign padded", []byte{0xFF, 0xFF, 0x80, 0, 0, 0}, false, math.MinInt32, true},
		{"wide sign mismatch", []byte{0xFF, 0xFF, 0x7F, 0, 0, 0}, false, 0, false},
		{"wide positive into sign bit", []byte{0x00, 0x80, 0, 0, 0}, false, 0, false},
		{"wide unsigned positive into sign bit", []byte{0x00, 0x80, 0, 0, 0}, true, 0, false},
		{"wide nonzero high byte", []byte{0x01, 0, 0, 0, 1}, true, 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := TryReadBigEndian[int32](tt.src, tt.isUnsigned)
			if ok != tt.ok || got != tt.want {
				t.Errorf("TryReadBigEndian(% x, %v) = %d, %v, want %d, %v", tt.src, tt.isUnsigned, got, ok, tt.want, tt.ok)
			}

			// The little-endian reader must agree on the reversed bytes.
			rev := make([]byte, len(tt.src))
			for i, b := range tt.src {
				rev[len(rev)-1-i] = b
			}
			got, ok = TryReadLittleEndian[int32](rev, tt.isUnsigned)
			if ok != tt.ok || got != tt.want {
				t.Errorf("TryReadLittleEndian(% x, %v) = %d, %v, want %d, %v", rev, tt.isUnsigned, got, ok, tt.want, tt.ok)
			}
		})
	}
}

func TestTryReadUnsignedTarget(t *testing.T) {
	if _, ok := TryReadBigEndian[uint16]([]byte{0xFF}, false); ok {
		t.Error("negative source read into uint16 succeeded")
	}
	if v, ok := TryReadBigEndian[uint16]([]byte{0xFF, 0xFF}, true); !ok || v != math.MaxUint16 {
		t.Errorf("uint16 from ff ff = %d, %v", v, ok)
	}
	if v, ok := TryReadBigEndian[uint16]([]byte{0, 0, 0xFF, 0xFF}, false); !ok || v != math.MaxUint16 {
		t.Errorf("uint16 from 00 00 ff ff signed = %d, %v", v, ok)
	}
	if _, ok := TryReadBigEndian[uint16]([]byte{0, 1, 0xFF, 0xFF}, true); ok {
		t.Error("uint16 from 00 01 ff ff succeeded")
	}
	if v, ok := TryReadUInt128LittleEndian([]byte{1}, true); !ok || v != UInt128From64(1) {
		t.Errorf("UInt128 from one byte = %v, %v", v, ok)
	}
	if v, ok := TryReadInt128BigEndian([]byte{0x80}, false); !ok || v != Int128From64(-128) {
		t.Errorf("Int128 from 0x80 = %v, %v", v, ok)
	}
}
