package integer

import (
	"math/big"
	"strconv"
	"strings"
	"testing"
)

// FuzzParseInt64 compares decimal parsing against strconv.
func FuzzParseInt64(f *testing.F) {
	f.Add("0")
	f.Add("-9223372036854775808")
	f.Add("9223372036854775808")
	f.Add("+12")
	f.Add("--1")
	f.Add("")

	f.Fuzz(func(t *testing.T, s string) {
		if strings.ContainsRune(s, 0) {
			return // trailing NULs are accepted here but not by strconv
		}
		got, err := Parse[int64](s, AllowLeadingSign)
		want, werr := strconv.ParseInt(s, 10, 64)
		if werr != nil {
			if err == nil {
				t.Fatalf("Parse(%q) = %d, strconv error %v", s, got, werr)
			}
			return
		}
		if err != nil || got != want {
			t.Fatalf("Parse(%q) = %d, %v, want %d", s, got, err, want)
		}
	})
}

// FuzzInt128RoundTrip formats and reparses arbitrary 128-bit values.
func FuzzInt128RoundTrip(f *testing.F) {
	f.Add(uint64(0), uint64(0))
	f.Add(uint64(1<<63), uint64(0))
	f.Add(^uint64(0), ^uint64(0))

	f.Fuzz(func(t *testing.T, hi, lo uint64) {
		v := NewInt128(hi, lo)
		s := v.String()
		if s != v.Big().String() {
			t.Fatalf("String() = %s, big = %s", s, v.Big())
		}
		got, err := ParseInt128(s, StyleInteger)
		if err != nil || got != v {
			t.Fatalf("ParseInt128(%s) = %v, %v", s, got, err)
		}
		u := v.UInt128()
		want := new(big.Int).SetUint64(hi)
		want.Lsh(want, 64).Or(want, new(big.Int).SetUint64(lo))
		if u.String() != want.String() {
			t.Fatalf("UInt128 String() = %s, want %s", u, want)
		}
	})
}
