package integer

import (
	"errors"
	"math"
	"testing"
)

func TestFormat(t *testing.T) {
	tests := []struct {
		name string
		got  func() (string, error)
		want string
	}{
		{"int32 default", func() (string, error) { return Format(int32(-42), "") }, "-42"},
		{"int32 G", func() (string, error) { return Format(int32(42), "G") }, "42"},
		{"int32 D8", func() (string, error) { return Format(int32(-42), "D8") }, "-00000042"},
		{"int32 D2 no truncation", func() (string, error) { return Format(int32(12345), "D2") }, "12345"},
		{"int32 X", func() (string, error) { return Format(int32(255), "X") }, "000000FF"},
		{"int32 x", func() (string, error) { return Format(int32(255), "x") }, "000000ff"},
		{"int32 X4", func() (string, error) { return Format(int32(255), "X4") }, "00FF"},
		{"int32 X1 negative", func() (string, error) { return Format(int32(-1), "X1") }, "FFFFFFFF"},
		{"int8 X", func() (string, error) { return Format(int8(-2), "X") }, "FE"},
		{"uint16 x2", func() (string, error) { return Format(uint16(0xABCD), "x2") }, "abcd"},
		{"uint8 B", func() (string, error) { return Format(uint8(5), "B") }, "00000101"},
		{"uint8 B0", func() (string, error) { return Format(uint8(5), "B0") }, "101"},
		{"zero X0", func() (string, error) { return Format(uint32(0), "X0") }, "0"},
		{"int64 min", func() (string, error) { return Format(int64(math.MinInt64), "D") }, "-9223372036854775808"},
		{"uint64 max", func() (string, error) { return Format(uint64(math.MaxUint64), "") }, "18446744073709551615"},
		{"int128 min", func() (string, error) { return FormatInt128(MinInt128, "") }, "-170141183460469231731687303715884105728"},
		{"int128 minus one X", func() (string, error) { return FormatInt128(Int128From64(-1), "X") }, "FFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFF"},
		{"uint128 max", func() (string, error) { return FormatUInt128(MaxUInt128, "D") }, "340282366920938463463374607431768211455"},
		{"uint128 2^64", func() (string, error) { return FormatUInt128(NewUInt128(1, 0), "D") }, "18446744073709551616"},
		{"uint128 10^19", func() (string, error) { return FormatUInt128(UInt128From64(10_000_000_000_000_000_000), "D") }, "10000000000000000000"},
		{"uint128 x8", func() (string, error) { return FormatUInt128(NewUInt128(1, 0), "x8") }, "10000000000000000"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.got()
			if err != nil {
				t.Fatalf("error = %v", err)
			}
			if got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestFormatInvalidSpecifier(t *testing.T) {
	for _, spec := range []string{"Q", "N", "D100", "X-1", "D1a", "E"} {
		if _, err := Format(int32(1), spec); !errors.Is(err, ErrInvalidFormat) {
			t.Errorf("Format(1, %q) error = %v, want ErrInvalidFormat", spec, err)
		}
	}
	if _, err := FormatInt128(MaxInt128, "Z"); !errors.Is(err, ErrInvalidFormat) {
		t.Errorf("FormatInt128 error = %v", err)
	}
}

func TestAppendDecimal(t *testing.T) {
	b := AppendDecimal([]byte("t="), 7, 2)
	if string(b) != "t=07" {
		t.Errorf("AppendDecimal = %q", b)
	}
	b = AppendDecimal(nil, int16(-5), 3)
	if string(b) != "-005" {
		t.Errorf("AppendDecimal negative = %q", b)
	}
}

func TestStringer(t *testing.T) {
	if got := MinInt128.String(); got != "-170141183460469231731687303715884105728" {
		t.Errorf("MinInt128.String() = %q", got)
	}
	if got := (UInt128{}).String(); got != "0" {
		t.Errorf("UInt128{}.String() = %q", got)
	}
}

// roundTrip formats v with each specifier and parses it back.
func roundTrip[T Integer](t *testing.T, values []T) {
	t.Helper()
	for _, v := range values {
		s, err := Format(v, "D")
		if err != nil {
			t.Fatalf("Format(%v, D) error = %v", v, err)
		}
		if got, err := Parse[T](s, StyleInteger); err != nil || got != v {
			t.Errorf("Parse(Format(%v, D)=%q) = %v, %v", v, s, got, err)
		}
		for _, spec := range []string{"X", "x", "X1"} {
			s, err := Format(v, spec)
			if err != nil {
				t.Fatalf("Format(%v, %s) error = %v", v, spec, err)
			}
			if got, err := Parse[T](s, StyleHexNumber); err != nil || got != v {
				t.Errorf("Parse(Format(%v, %s)=%q) = %v, %v", v, spec, s, got, err)
			}
		}
		s, _ = Format(v, "B")
		if got, err := Parse[T](s, StyleBinaryNumber); err != nil || got != v {
			t.Errorf("Parse(Format(%v, B)=%q) = %v, %v", v, s, got, err)
		}
	}
}

func TestRoundTripNativeWidths(t *testing.T) {
	roundTrip(t, []int8{math.MinInt8, -1, 0, 1, math.MaxInt8})
	roundTrip(t, []uint8{0, 1, 0x7F, 0x80, math.MaxUint8})
	roundTrip(t, []int16{math.MinInt16, -300, 0, 300, math.MaxInt16})
	roundTrip(t, []uint16{0, 0x8000, math.MaxUint16})
	roundTrip(t, []int32{math.MinInt32, -1, 0, 1, math.MaxInt32})
	roundTrip(t, []uint32{0, 1 << 31, math.MaxUint32})
	roundTrip(t, []int64{math.MinInt64, -1, 0, 1, math.MaxInt64})
	roundTrip(t, []uint64{0, 1 << 63, math.MaxUint64})

	// Exhaustive for 16-bit types.
	for v := math.MinInt16; v <= math.MaxInt16; v++ {
		s, _ := Format(int16(v), "")
		if got, err := Parse[int16](s, StyleInteger); err != nil || got != int16(v) {
			t.Fatalf("int16 round trip %d: %v, %v", v, got, err)
		}
		s, _ = Format(uint16(v), "x")
		if got, err := Parse[uint16](s, StyleHexNumber); err != nil || got != uint16(v) {
			t.Fatalf("uint16 hex round trip %d: %v, %v", v, got, err)
		}
	}
}

func TestRoundTrip128(t *testing.T) {
	values := []Int128{
		MinInt128, MaxInt128, Int128From64(-1), {}, Int128From64(1),
		NewInt128(0x0123_4567_89ab_cdef, 0xfedc_ba98_7654_3210),
		NewInt128(0xffff_ffff_ffff_fff0, 0x1),
	}
	for _, v := range values {
		for _, spec := range []string{"", "X", "x5"} {
			s, err := FormatInt128(v, spec)
			if err != nil {
				t.Fatalf("FormatInt128(%v, %q) error = %v", v, spec, err)
			}
			style := StyleInteger
			if spec != "" {
				style = StyleHexNumber
			}
			if got, err := ParseInt128(s, style); err != nil || got != v {
				t.Errorf("ParseInt128(%q) = %v, %v, want %v", s, got, err, v)
			}
			if got, err := ParseUInt128(mustFormatUInt128(t, v.UInt128(), spec), style); err != nil || got != v.UInt128() {
				t.Errorf("ParseUInt128 round trip of %v = %v, %v", v.UInt128(), got, err)
			}
		}
	}
}

func mustFormatUInt128(t *testing.T, v UInt128, spec string) string {
	t.Helper()
	s, err := FormatUInt128(v, spec)
	if err != nil {
		t.Fatalf("FormatUInt128(%v, %q) error = %v", v, spec, err)
	}
	return s
}

func BenchmarkFormatUInt128(b *testing.B) {
	buf := make([]byte, 0, 64)
	for i := 0; i < b.N; i++ {
		buf = appendFormatted(buf[:0], MaxUInt128, uint128Layout, formatSpec{kind: 'D'})
	}
}

func BenchmarkParseInt64(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_, _ = Parse[int64]("-9223372036854775808", StyleInteger)
	}
}
