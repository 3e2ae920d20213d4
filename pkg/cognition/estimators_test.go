package cognition

import (
	"testing"

	"AcawsGolang/internal/entity"
)

func TestCognitiveLoadMovementUsesRecentSamples(t *testing.T) {
	features := &entity.FacialFeatures{EyeAspectRatio: 0.3}

	pushPose := func(yaw, pitch *History, values []float64) {
		for i, v := range values {
			ts := float64(i)
			yaw.Push(v, ts)
			pitch.Push(v, ts)
		}
	}

	noisy := []float64{0.5, -0.5, 0.5, -0.5, 0.5, -0.5, 0.5, -0.5, 0.5, -0.5}
	steady := []float64{0, 0, 0, 0, 0}

	// Restless earlier, settled now: the movement factor must read the
	// settled tail, not the old noise.
	settledYaw, settledPitch := NewHistory(30), NewHistory(30)
	pushPose(settledYaw, settledPitch, append(append([]float64{}, noisy...), steady...))

	restlessYaw, restlessPitch := NewHistory(30), NewHistory(30)
	pushPose(restlessYaw, restlessPitch, append(make([]float64, 10), noisy[:5]...))

	settledLoad := CognitiveLoadScore(features, 0, settledYaw, settledPitch)
	restlessLoad := CognitiveLoadScore(features, 0, restlessYaw, restlessPitch)

	if settledLoad >= restlessLoad {
		t.Errorf("load settled = %v, restless = %v; settled head should score lower",
			settledLoad, restlessLoad)
	}

	// With a steady tail the movement factor is zero regardless of older
	// samples, leaving only the blink and eye factors.
	base := CognitiveLoadScore(features, 0, NewHistory(30), NewHistory(30))
	wantSettled := (0 + 0.1 + 0) / 3 * 100
	if !almostEqual(settledLoad, wantSettled, 1e-9) {
		t.Errorf("settled load = %v, want %v", settledLoad, wantSettled)
	}
	if !almostEqual(base, (0+0.1)/2*100, 1e-9) {
		t.Errorf("base load = %v, want %v", base, (0+0.1)/2*100)
	}
}
