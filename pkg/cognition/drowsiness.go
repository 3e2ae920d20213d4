package cognition

import (
	"math"

	"AcawsGolang/internal/entity"
)

// DrowsinessScore rates fatigue 0-100 from PERCLOS, instantaneous eye
// closure, and head nod. With too little closure history it falls back to a
// coarse EAR band so a fresh session still gets a defensible number.
func DrowsinessScore(cfg *Config, blinks *BlinkDetector, f *entity.FacialFeatures) float64 {
	if blinks.ClosureCount() < cfg.PerclosMinEntries {
		switch {
		case f.EyeAspectRatio < 0.15:
			return 80
		case f.EyeAspectRatio < 0.2:
			return 40
		default:
			return 10
		}
	}

	perclos := blinks.Perclos(cfg.PerclosWindow)
	score := math.Min(100, perclos*cfg.PerclosScale)

	if f.EyeAspectRatio < cfg.LowEARThreshold {
		score += cfg.LowEARPenalty
	}
	if f.HeadPitch < cfg.NodPitchThreshold {
		score += cfg.NodPenalty
	}
	return clamp(score, 0, 100)
}
