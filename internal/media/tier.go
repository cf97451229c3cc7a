package media

import (
	"fmt"
	"strings"
)

// Tier selects how much decoding work a scan performs per file. Tiers are
// strictly ordered: each tier runs every check of the tier below it, plus one
// deeper check of its own.
type Tier string

const (
	TierFast   Tier = "fast"
	TierMedium Tier = "medium"
	TierSlow   Tier = "slow"
)

// ParseTier normalizes and validates a tier name from user input.
func ParseTier(raw string) (Tier, error) {
	switch Tier(strings.ToLower(strings.TrimSpace(raw))) {
	case TierFast:
		return TierFast, nil
	case TierMedium:
		return TierMedium, nil
	case TierSlow:
		return TierSlow, nil
	default:
		return "", fmt.Errorf("unsupported tier: %q (must be one of: fast, medium, slow)", raw)
	}
}

// Rank orders tiers by strictness (fast < medium < slow).
func (t Tier) Rank() int {
	switch t {
	case TierFast:
		return 0
	case TierMedium:
		return 1
	case TierSlow:
		return 2
	default:
		return -1
	}
}

// Basis is the one-line rationale for a tier, shown in the run header and
// embedded in every verdict reason produced under that tier.
func (t Tier) Basis() string {
	switch t {
	case TierFast:
		return "fast: container/metadata probe only (ffprobe + exiftool), no pixel decoding; quick, may miss deep corruption"
	case TierMedium:
		return "medium: probe plus first-frame decode with ffmpeg; catches most decode-level damage"
	case TierSlow:
		return "slow: probe, first frame, then a full decode of every stream to a null sink; the full decode alone decides the verdict"
	default:
		return string(t)
	}
}

func (t Tier) String() string {
	return string(t)
}
