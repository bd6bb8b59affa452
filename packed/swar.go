package packed

// Word-parallel helpers. A packed word holds eight byte lanes; byte k of
// the word (bits 8k..8k+7) is lane k.
const (
	lo8  = 0x0101010101010101
	hi8  = 0x8080808080808080
	low7 = 0x7F7F7F7F7F7F7F7F

	lowByte16 = 0x00FF00FF00FF00FF
	unit16    = 0x0001000100010001
)

// broadcast repeats b in every byte lane.
func broadcast(b byte) uint64 {
	return lo8 * uint64(b)
}

// load4 gathers four code units into one word, unit k in bits 16k..16k+15.
func load4(s []uint16) uint64 {
	_ = s[3]
	return uint64(s[0]) | uint64(s[1])<<16 | uint64(s[2])<<32 | uint64(s[3])<<48
}

// packSaturate narrows the four 16-bit lanes of w to bytes, replacing any
// lane above 0xFF with 0xFF, and returns them in the low 32 bits.
func packSaturate(w uint64) uint64 {
	high := (w >> 8) & lowByte16
	sat := ((high + lowByte16) >> 8) & unit16
	x := w&lowByte16 | sat*0xFF
	x = (x | x>>8) & 0x0000FFFF0000FFFF
	return (x | x>>16) & 0xFFFFFFFF
}

// pack8 packs s[0:8] into one word of eight byte lanes.
func pack8(s []uint16) uint64 {
	_ = s[7]
	return packSaturate(load4(s[0:4])) | packSaturate(load4(s[4:8]))<<32
}

// zeroBytes sets the high bit of every byte lane of x that is zero. Unlike
// the usual haszero trick it has no false positives, so the result is
// usable as a position mask.
func zeroBytes(x uint64) uint64 {
	return ^((x&low7 + low7) | x) & hi8
}

// equalBytes sets the high bit of every lane where x and y agree.
func equalBytes(x, y uint64) uint64 {
	return zeroBytes(x ^ y)
}

// subBytes subtracts y from x lane by lane, modulo 256.
func subBytes(x, y uint64) uint64 {
	return ((x | hi8) - (y &^ hi8)) ^ ((x ^ ^y) & hi8)
}

// lessBytes sets the high bit of every lane where x < y, unsigned.
func lessBytes(x, y uint64) uint64 {
	d := subBytes(x, y)
	return (^x&y | ^(x^y)&d) & hi8
}
