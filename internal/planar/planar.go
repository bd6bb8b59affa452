// Package planar reorders fixed-width binary records into byte planes and
// delta-codes the result, which makes lists of similar numbers compress
// much better.
//
// With 2-byte records the planes look like this:
//
//	records: [a0 a1] [b0 b1] [c0 c1]
//	planes:  a0 b0 c0 a1 b1 c1
//
// A trailing partial record is kept verbatim after the planes.
package planar

// Split writes the byte planes of the width-byte records in src to dst,
// which must be as long as src. A width of one or less copies src.
func Split(dst, src []byte, width int) {
	if len(dst) < len(src) {
		panic("planar: destination slice too small")
	}
	n := len(src)
	if width > 1 {
		n = len(src) / width
		for plane := 0; plane < width; plane++ {
			out := dst[plane*n : (plane+1)*n]
			for rec := range out {
				out[rec] = src[rec*width+plane]
			}
		}
		n *= width
	}
	copy(dst[n:], src[n:])
}

// Join reverses Split.
func Join(dst, src []byte, width int) {
	if len(dst) < len(src) {
		panic("planar: destination slice too small")
	}
	n := len(src)
	if width > 1 {
		n = len(src) / width
		for plane := 0; plane < width; plane++ {
			in := src[plane*n : (plane+1)*n]
			for rec, b := range in {
				dst[rec*width+plane] = b
			}
		}
		n *= width
	}
	copy(dst[n:], src[n:])
}

// Delta replaces every byte after the first with its difference from the
// byte before it, modulo 256.
func Delta(b []byte) {
	i := len(b) - 1
	for ; i >= 8; i -= 8 {
		b[i] -= b[i-1]
		b[i-1] -= b[i-2]
		b[i-2] -= b[i-3]
		b[i-3] -= b[i-4]
		b[i-4] -= b[i-5]
		b[i-5] -= b[i-6]
		b[i-6] -= b[i-7]
		b[i-7] -= b[i-8]
	}
	for ; i >= 1; i-- {
		b[i] -= b[i-1]
	}
}

// Undelta reverses Delta with a running sum.
func Undelta(b []byte) {
	i := 1
	for ; i+7 < len(b); i += 8 {
		b[i] += b[i-1]
		b[i+1] += b[i]
		b[i+2] += b[i+1]
		b[i+3] += b[i+2]
		b[i+4] += b[i+3]
		b[i+5] += b[i+4]
		b[i+6] += b[i+5]
		b[i+7] += b[i+6]
	}
	for ; i < len(b); i++ {
		b[i] += b[i-1]
	}
}

// Encode returns the delta-coded planes of src.
func Encode(src []byte, width int) []byte {
	out := make([]byte, len(src))
	Split(out, src, width)
	Delta(out)
	return out
}

// Decode reverses Encode. src is left unchanged.
func Decode(src []byte, width int) []byte {
	planes := make([]byte, len(src))
	copy(planes, src)
	Undelta(planes)
	out := make([]byte, len(src))
	Join(out, planes, width)
	return out
}
