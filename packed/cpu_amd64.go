//go:build amd64

package packed

import "golang.org/x/sys/cpu"

func detectTier() Tier {
	switch {
	case cpu.X86.HasAVX512BW:
		return Tier512
	case cpu.X86.HasAVX2:
		return Tier256
	case cpu.X86.HasSSE2:
		return Tier128
	}
	return TierNone
}
