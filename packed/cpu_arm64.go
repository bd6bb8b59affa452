//go:build arm64

package packed

import "golang.org/x/sys/cpu"

// ASIMD registers are 128 bits wide.
func detectTier() Tier {
	if cpu.ARM64.HasASIMD {
		return Tier128
	}
	return TierNone
}
