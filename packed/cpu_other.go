//go:build !amd64 && !arm64

package packed

func detectTier() Tier {
	return TierNone
}
