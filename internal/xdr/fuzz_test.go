package xdr

import (
	"bytes"
	"testing"

	"github.com/mrjoshuak/go-numeric/integer"
)

// FuzzReader reads every record type from arbitrary data in both orders.
// Reads must never panic and must consume exactly the record width.
func FuzzReader(f *testing.F) {
	f.Add([]byte{})
	f.Add([]byte{0x00, 0x00, 0x00, 0x80})
	f.Add(bytes.Repeat([]byte{0xFF}, 40))

	f.Fuzz(func(t *testing.T, data []byte) {
		for _, order := range []Order{LittleEndian, BigEndian} {
			r := NewReader(data, order)
			steps := []struct {
				width int
				read  func() error
			}{
				{1, func() error { _, err := Read[int8](r); return err }},
				{2, func() error { _, err := r.ReadHalf(); return err }},
				{4, func() error { _, err := Read[uint32](r); return err }},
				{8, func() error { _, err := r.ReadFloat64(); return err }},
				{16, func() error { _, err := r.ReadInt128(); return err }},
				{16, func() error { _, err := r.ReadUInt128(); return err }},
			}
			for _, s := range steps {
				before := r.Pos()
				err := s.read()
				switch {
				case err == nil && r.Pos() != before+s.width:
					t.Fatalf("read of %d bytes moved %d", s.width, r.Pos()-before)
				case err != nil && r.Pos() != before:
					t.Fatalf("failed read moved the position")
				}
			}
		}
	})
}

// FuzzVarWidth checks that a narrow read agrees with sign extension done by
// hand.
func FuzzVarWidth(f *testing.F) {
	f.Add([]byte{0x80}, false)
	f.Add([]byte{0x01, 0x02, 0x03}, true)

	f.Fuzz(func(t *testing.T, data []byte, unsigned bool) {
		if len(data) > 8 {
			data = data[:8]
		}
		r := NewReader(data, BigEndian)
		got, err := ReadVarWidth[int64](r, len(data), unsigned)

		var want uint64
		for _, b := range data {
			want = want<<8 | uint64(b)
		}
		negative := !unsigned && len(data) > 0 && data[0]&0x80 != 0
		if negative && len(data) < 8 {
			want |= ^uint64(0) << (8 * len(data))
		}
		if unsigned && len(data) == 8 && data[0]&0x80 != 0 {
			if err == nil {
				t.Fatalf("unsigned %x fit in int64", data)
			}
			return
		}
		if err != nil || uint64(got) != want {
			t.Fatalf("ReadVarWidth(%x) = %d, %v, want %d", data, got, err, int64(want))
		}
	})
}

// FuzzWriterRoundTrip writes 128-bit values and reads them back.
func FuzzWriterRoundTrip(f *testing.F) {
	f.Add(uint64(0), uint64(0), false)
	f.Add(^uint64(0), uint64(1), true)

	f.Fuzz(func(t *testing.T, hi, lo uint64, big bool) {
		order := LittleEndian
		if big {
			order = BigEndian
		}
		var buf bytes.Buffer
		w := NewWriter(&buf, order)
		w.WriteInt128(integer.NewInt128(hi, lo))
		w.WriteUInt128(integer.NewUInt128(hi, lo))
		r := NewReader(buf.Bytes(), order)
		i, err1 := r.ReadInt128()
		u, err2 := r.ReadUInt128()
		if err1 != nil || err2 != nil || i.Upper() != hi || i.Lower() != lo || u.Upper() != hi || u.Lower() != lo {
			t.Fatalf("round trip of %#x:%#x gave %v, %v", hi, lo, i, u)
		}
	})
}
