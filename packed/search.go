package packed

import "math/bits"

// matcher tests code units. match takes a word of eight saturated byte
// lanes and sets the high bit of each lane that matches; unit tests a
// single unsaturated code unit. The two must agree for every unit once
// saturation is taken into account.
type matcher interface {
	match(p uint64) uint64
	unit(c uint16) bool
}

type eq1 struct {
	v  uint16
	vb uint64
}

func newEq1(v uint16) eq1 { return eq1{v, broadcast(byte(v))} }

func (m eq1) match(p uint64) uint64 { return equalBytes(p, m.vb) }
func (m eq1) unit(c uint16) bool    { return c == m.v }

type eq2 struct {
	v0, v1   uint16
	vb0, vb1 uint64
}

func newEq2(v0, v1 uint16) eq2 {
	return eq2{v0, v1, broadcast(byte(v0)), broadcast(byte(v1))}
}

func (m eq2) match(p uint64) uint64 { return equalBytes(p, m.vb0) | equalBytes(p, m.vb1) }
func (m eq2) unit(c uint16) bool    { return c == m.v0 || c == m.v1 }

type eq3 struct {
	v0, v1, v2    uint16
	vb0, vb1, vb2 uint64
}

func newEq3(v0, v1, v2 uint16) eq3 {
	return eq3{v0, v1, v2, broadcast(byte(v0)), broadcast(byte(v1)), broadcast(byte(v2))}
}

func (m eq3) match(p uint64) uint64 {
	return equalBytes(p, m.vb0) | equalBytes(p, m.vb1) | equalBytes(p, m.vb2)
}
func (m eq3) unit(c uint16) bool { return c == m.v0 || c == m.v1 || c == m.v2 }

// inRange matches lo <= c <= hi by subtracting lo and comparing against
// hi-lo; lanes below lo wrap around to large values. Requires lo <= hi.
type inRange struct {
	lo, span   uint16
	lob, spanb uint64
}

func newInRange(lo, hi uint16) inRange {
	return inRange{lo, hi - lo, broadcast(byte(lo)), broadcast(byte(hi - lo))}
}

func (m inRange) match(p uint64) uint64 {
	return ^lessBytes(m.spanb, subBytes(p, m.lob)) & hi8
}
func (m inRange) unit(c uint16) bool { return c-m.lo <= m.span }

// except inverts a matcher for the "except" searches.
type except[M matcher] struct{ m M }

func (n except[M]) match(p uint64) uint64 { return ^n.m.match(p) & hi8 }
func (n except[M]) unit(c uint16) bool    { return !n.m.unit(c) }

// indexScalar is the plain per-unit scan, unrolled by four.
func indexScalar[M matcher](s []uint16, m M) int {
	i := 0
	for ; i+4 <= len(s); i += 4 {
		switch {
		case m.unit(s[i]):
			return i
		case m.unit(s[i+1]):
			return i + 1
		case m.unit(s[i+2]):
			return i + 2
		case m.unit(s[i+3]):
			return i + 3
		}
	}
	for ; i < len(s); i++ {
		if m.unit(s[i]) {
			return i
		}
	}
	return -1
}

// indexPacked finds the first unit matched by m, loading lanes units per
// vector and packing two vectors per step. Inputs shorter than one vector
// use the scalar scan.
func indexPacked[M matcher](s []uint16, m M, lanes int) int {
	n := len(s)
	if n < lanes {
		return indexScalar(s, m)
	}

	step := 2 * lanes
	i := 0
	for ; i+step <= n; i += step {
		if k := scanPair(s[i:i+lanes], s[i+lanes:i+step], m); k >= 0 {
			return i + k
		}
	}
	if i == n {
		return -1
	}

	// The last pair overlaps units already searched. The first vector starts
	// at i unless that would run past the end; the second ends at n.
	first := min(i, n-lanes)
	second := n - lanes
	k := scanPair(s[first:first+lanes], s[second:], m)
	switch {
	case k < 0:
		return -1
	case k < lanes:
		return first + k
	}
	return second + k - lanes
}

// scanPair packs a and b (each one vector long) into 2*len(a) byte lanes,
// a first, and returns the position of the first matching lane or -1.
func scanPair[M matcher](a, b []uint16, m M) int {
	if k := scanVector(a, m); k >= 0 {
		return k
	}
	if k := scanVector(b, m); k >= 0 {
		return len(a) + k
	}
	return -1
}

func scanVector[M matcher](s []uint16, m M) int {
	for j := 0; j+8 <= len(s); j += 8 {
		if mask := m.match(pack8(s[j : j+8])); mask != 0 {
			return j + bits.TrailingZeros64(mask)>>3
		}
	}
	return -1
}
