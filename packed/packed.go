// Package packed searches UTF-16 code units for Latin-1 needles.
//
// Each step loads two vectors of 16-bit units and packs them into a single
// vector of bytes with unsigned saturation, so units above 0xFF become 0xFF.
// Comparisons then run on twice as many lanes as an unpacked search. Needles
// are restricted to [1, 254] so that neither the saturation value 0xFF nor
// zero can produce a false match.
//
// The vectors are emulated with 64-bit words (SWAR): every tier runs the
// same 8-unit word kernel, and a pair is scanned as its first vector then
// its second. The tier only sets the step geometry, that is how many units
// a step covers and where the overlapping final step starts. The host CPU
// picks the tier once at startup: 512-bit with AVX-512BW, 256-bit with
// AVX2, 128-bit with SSE2 or ASIMD. On other hosts Supported reports false
// and every search degrades to a plain scan.
//
// All functions return the index of the first match, or -1.
package packed

// Tier is a vector width.
type Tier int

// Vector tiers, narrowest first.
const (
	TierNone Tier = iota
	Tier128
	Tier256
	Tier512
)

// String returns the tier's width in bits, or "none".
func (t Tier) String() string {
	switch t {
	case Tier128:
		return "128"
	case Tier256:
		return "256"
	case Tier512:
		return "512"
	}
	return "none"
}

// Lanes returns the number of 16-bit code units per vector load.
func (t Tier) Lanes() int {
	switch t {
	case Tier128:
		return 8
	case Tier256:
		return 16
	case Tier512:
		return 32
	}
	return 0
}

var active = detectTier()

// ActiveTier returns the tier chosen for this host.
func ActiveTier() Tier { return active }

// Supported reports whether the packed path is available on this host.
func Supported() bool { return active != TierNone }

// CanUseValue reports whether v can be searched for with the packed path.
// Only values in [1, 254] qualify.
func CanUseValue(v uint16) bool {
	return v-1 < 254
}

func usable(v ...uint16) bool {
	if active == TierNone {
		return false
	}
	for _, x := range v {
		if !CanUseValue(x) {
			return false
		}
	}
	return true
}

// IndexOf returns the index of the first unit equal to v.
func IndexOf(s []uint16, v uint16) int {
	m := newEq1(v)
	if usable(v) {
		return indexPacked(s, m, active.Lanes())
	}
	return indexScalar(s, m)
}

// Contains reports whether v occurs in s.
func Contains(s []uint16, v uint16) bool {
	return IndexOf(s, v) >= 0
}

// IndexOfAnyExcept returns the index of the first unit not equal to v.
func IndexOfAnyExcept(s []uint16, v uint16) int {
	m := except[eq1]{newEq1(v)}
	if usable(v) {
		return indexPacked(s, m, active.Lanes())
	}
	return indexScalar(s, m)
}

// IndexOfAny returns the index of the first unit equal to v0 or v1.
func IndexOfAny(s []uint16, v0, v1 uint16) int {
	m := newEq2(v0, v1)
	if usable(v0, v1) {
		return indexPacked(s, m, active.Lanes())
	}
	return indexScalar(s, m)
}

// IndexOfAnyExcept2 returns the index of the first unit equal to neither
// v0 nor v1.
func IndexOfAnyExcept2(s []uint16, v0, v1 uint16) int {
	m := except[eq2]{newEq2(v0, v1)}
	if usable(v0, v1) {
		return indexPacked(s, m, active.Lanes())
	}
	return indexScalar(s, m)
}

// IndexOfAny3 returns the index of the first unit equal to v0, v1 or v2.
func IndexOfAny3(s []uint16, v0, v1, v2 uint16) int {
	m := newEq3(v0, v1, v2)
	if usable(v0, v1, v2) {
		return indexPacked(s, m, active.Lanes())
	}
	return indexScalar(s, m)
}

// IndexOfAnyExcept3 returns the index of the first unit that is none of
// v0, v1 and v2.
func IndexOfAnyExcept3(s []uint16, v0, v1, v2 uint16) int {
	m := except[eq3]{newEq3(v0, v1, v2)}
	if usable(v0, v1, v2) {
		return indexPacked(s, m, active.Lanes())
	}
	return indexScalar(s, m)
}

// IndexOfAnyInRange returns the index of the first unit c with
// lo <= c <= hi. An empty range (lo > hi) matches nothing.
func IndexOfAnyInRange(s []uint16, lo, hi uint16) int {
	if lo > hi {
		return -1
	}
	m := newInRange(lo, hi)
	if usable(lo, hi) {
		return indexPacked(s, m, active.Lanes())
	}
	return indexScalar(s, m)
}

// IndexOfAnyExceptInRange returns the index of the first unit outside
// [lo, hi]. An empty range (lo > hi) excludes nothing.
func IndexOfAnyExceptInRange(s []uint16, lo, hi uint16) int {
	if lo > hi {
		if len(s) == 0 {
			return -1
		}
		return 0
	}
	m := except[inRange]{newInRange(lo, hi)}
	if usable(lo, hi) {
		return indexPacked(s, m, active.Lanes())
	}
	return indexScalar(s, m)
}
