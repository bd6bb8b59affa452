package half

import (
	"encoding/json"
	"errors"
	"testing"
)

func TestString(t *testing.T) {
	tests := []struct {
		h    Half
		want string
	}{
		{Zero, "0"},
		{NegZero, "-0"},
		{One, "1"},
		{NegOne, "-1"},
		{FromFloat32(0.1), "0.1"},
		{FromFloat32(1.0 / 3), "0.3333"},
		{FromFloat32(1.5), "1.5"},
		{Max, "65504"},
		{Min, "-65504"},
		{SmallestNormal, "6.104e-05"},
		{Epsilon, "6e-08"},
		{Inf, "+Inf"},
		{NegInf, "-Inf"},
		{NaN, "NaN"},
	}
	for _, tt := range tests {
		if got := tt.h.String(); got != tt.want {
			t.Errorf("%#04x.String() = %q, want %q", tt.h.Bits(), got, tt.want)
		}
	}
}

func TestText(t *testing.T) {
	tests := []struct {
		h      Half
		format byte
		prec   int
		want   string
	}{
		{FromFloat32(1.5), 'f', 2, "1.50"},
		{Max, 'e', -1, "6.5504e+04"},
		{Max, 'f', -1, "65504"},
		{FromFloat32(0.1), 'e', 3, "9.998e-02"},
		{FromFloat32(0.1), 'f', -1, "0.1"},
		{Epsilon, 'g', 3, "5.96e-08"},
	}
	for _, tt := range tests {
		if got := tt.h.Text(tt.format, tt.prec); got != tt.want {
			t.Errorf("%#04x.Text(%c, %d) = %q, want %q", tt.h.Bits(), tt.format, tt.prec, got, tt.want)
		}
	}
}

func TestParse(t *testing.T) {
	tests := []struct {
		in   string
		want Half
	}{
		{"1.5", FromFloat32(1.5)},
		{" 2 ", FromFloat32(2)},
		{"-0", NegZero},
		{"65504", Max},
		{"65520", Inf},
		{"1e10", Inf},
		{"-1e400", NegInf},
		{"1e-400", Zero},
		{"0x1p-24", Epsilon},
		{"inf", Inf},
		{"-Infinity", NegInf},
		{"6e-08", Epsilon},
	}
	for _, tt := range tests {
		got, err := Parse(tt.in)
		if err != nil || got != tt.want {
			t.Errorf("Parse(%q) = %#04x, %v, want %#04x", tt.in, got.Bits(), err, tt.want.Bits())
		}
	}

	if got, err := Parse("NaN"); err != nil || !got.IsNaN() {
		t.Errorf("Parse(NaN) = %#04x, %v", got.Bits(), err)
	}
	for _, in := range []string{"", "abc", "1.5x", "--1", "1e"} {
		if _, err := Parse(in); !errors.Is(err, ErrSyntax) {
			t.Errorf("Parse(%q) error = %v, want ErrSyntax", in, err)
		}
		if _, ok := TryParse(in); ok {
			t.Errorf("TryParse(%q) succeeded", in)
		}
	}
}

func TestStringRoundTripAllBits(t *testing.T) {
	for b := 0; b <= 0xFFFF; b++ {
		h := Half(b)
		if h.IsNaN() {
			continue
		}
		s := h.String()
		got, err := Parse(s)
		if err != nil || got != h {
			t.Fatalf("Parse(%q) = %#04x, %v, want %#04x", s, got.Bits(), err, b)
		}
	}
}

func TestTextMarshaling(t *testing.T) {
	in := []Half{One, FromFloat32(0.1), Inf}
	data, err := json.Marshal(in)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != `["1","0.1","+Inf"]` {
		t.Errorf("json.Marshal = %s", data)
	}
	var out []Half
	if err := json.Unmarshal(data, &out); err != nil {
		t.Fatal(err)
	}
	if len(out) != len(in) || out[0] != in[0] || out[1] != in[1] || out[2] != in[2] {
		t.Errorf("json round trip = %v, want %v", out, in)
	}

	var h Half
	if err := h.UnmarshalText([]byte("bogus")); !errors.Is(err, ErrSyntax) {
		t.Errorf("UnmarshalText(bogus) = %v", err)
	}
}
