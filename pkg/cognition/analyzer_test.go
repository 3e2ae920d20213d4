package cognition

import (
	"math"
	"testing"

	"AcawsGolang/internal/entity"
)

// syntheticFace builds a centered, front-facing landmark set with the given
// eye aspect ratio. Everything else sits in the neutral range.
func syntheticFace(ear float64) []entity.Landmark {
	lm := make([]entity.Landmark, 478)
	for i := range lm {
		lm[i] = entity.Landmark{X: 0.5, Y: 0.5}
	}

	for i, idx := range faceOvalIdx {
		angle := 2 * math.Pi * float64(i) / float64(len(faceOvalIdx))
		lm[idx] = entity.Landmark{X: 0.5 + 0.2*math.Cos(angle), Y: 0.5 + 0.2*math.Sin(angle)}
	}

	placeEye := func(idx [6]int, left float64) {
		h := 0.06
		v := ear * h
		lm[idx[0]] = entity.Landmark{X: left, Y: 0.5}
		lm[idx[3]] = entity.Landmark{X: left + h, Y: 0.5}
		lm[idx[1]] = entity.Landmark{X: left + 0.01, Y: 0.5 - v/2}
		lm[idx[2]] = entity.Landmark{X: left + 0.04, Y: 0.5 - v/2}
		lm[idx[4]] = entity.Landmark{X: left + 0.04, Y: 0.5 + v/2}
		lm[idx[5]] = entity.Landmark{X: left + 0.01, Y: 0.5 + v/2}
	}
	placeEye(leftEyeIdx, 0.40)
	placeEye(rightEyeIdx, 0.54)

	for _, idx := range leftEyebrowIdx {
		lm[idx] = entity.Landmark{X: 0.43, Y: 0.48}
	}
	for _, idx := range rightEyebrowIdx {
		lm[idx] = entity.Landmark{X: 0.57, Y: 0.48}
	}

	lm[idxUpperLip] = entity.Landmark{X: 0.5, Y: 0.55}
	lm[idxLowerLip] = entity.Landmark{X: 0.5, Y: 0.58}
	lm[idxMouthLeft] = entity.Landmark{X: 0.44, Y: 0.56}
	lm[idxMouthRight] = entity.Landmark{X: 0.56, Y: 0.56}
	lm[idxNoseTip] = entity.Landmark{X: 0.5, Y: 0.56}
	lm[idxNoseBridge] = entity.Landmark{X: 0.5, Y: 0.5}

	// Centered irises.
	lm[idxLeftIris] = entity.Landmark{X: 0.43, Y: 0.5}
	lm[idxRightIris] = entity.Landmark{X: 0.57, Y: 0.5}
	return lm
}

func TestAnalyzeNoSignal(t *testing.T) {
	a := NewAnalyzer(DefaultConfig())

	tests := []struct {
		name      string
		landmarks []entity.Landmark
	}{
		{"nil landmarks", nil},
		{"too few landmarks", make([]entity.Landmark, 10)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			summary := a.Analyze(tt.landmarks, 1.0)
			if summary.CameraEnabled {
				t.Error("CameraEnabled = true, want false")
			}
			if summary.Metrics.Attention.Current != NoSignalPlaceholder {
				t.Errorf("attention current = %q, want placeholder", summary.Metrics.Attention.Current)
			}
			if summary.Metrics.CognitiveLoad.Current != "0%" {
				t.Errorf("cognitive load current = %q, want 0%%", summary.Metrics.CognitiveLoad.Current)
			}
			if summary.Metrics.Attention.RawValue != nil {
				t.Error("no-signal attention should carry no raw value")
			}
		})
	}

	if _, ok := a.State(); ok {
		t.Error("State() reported a frame before any was analyzed")
	}
}

func TestAnalyzeOpenEyes(t *testing.T) {
	a := NewAnalyzer(DefaultConfig())
	face := syntheticFace(0.5)

	var summary *entity.AnalysisSummary
	for i := 0; i < 10; i++ {
		summary = a.Analyze(face, float64(i)*0.1)
	}

	if !summary.CameraEnabled {
		t.Fatal("CameraEnabled = false, want true")
	}
	att := summary.Metrics.Attention
	if att.RawValue == nil {
		t.Fatal("attention raw value missing")
	}
	if *att.RawValue < 60 {
		t.Errorf("attentive face scored %v, want at least 60", *att.RawValue)
	}
	if summary.Metrics.Drowsiness.RawValue == nil || *summary.Metrics.Drowsiness.RawValue > 20 {
		t.Errorf("alert face drowsiness = %v, want low", summary.Metrics.Drowsiness.RawValue)
	}

	state, ok := a.State()
	if !ok {
		t.Fatal("State() missing after analyzed frames")
	}
	if state.AttentionScore != *att.RawValue {
		t.Errorf("state attention %v differs from summary %v", state.AttentionScore, *att.RawValue)
	}
	if state.ConfidenceScore > 0.95 {
		t.Errorf("confidence score %v exceeds cap", state.ConfidenceScore)
	}
}

func TestAnalyzeSustainedClosureSaturatesDrowsiness(t *testing.T) {
	a := NewAnalyzer(DefaultConfig())
	face := syntheticFace(0.1)

	var summary *entity.AnalysisSummary
	for i := 0; i < 70; i++ {
		summary = a.Analyze(face, float64(i)*0.1)
	}

	d := summary.Metrics.Drowsiness
	if d.RawValue == nil {
		t.Fatal("drowsiness raw value missing")
	}
	if *d.RawValue != 100 {
		t.Errorf("drowsiness after sustained closure = %v, want saturated 100", *d.RawValue)
	}
	if d.Quality != "Very Low" {
		t.Errorf("drowsiness quality = %q, want Very Low band for 100", d.Quality)
	}
}

func TestQualityInvertsForLowerIsBetterMetrics(t *testing.T) {
	a := NewAnalyzer(DefaultConfig())
	face := syntheticFace(0.5)

	var summary *entity.AnalysisSummary
	for i := 0; i < 5; i++ {
		summary = a.Analyze(face, float64(i)*0.1)
	}

	d := summary.Metrics.Drowsiness
	if d.RawValue == nil || *d.RawValue > 20 {
		t.Fatalf("alert face drowsiness = %v, want low", d.RawValue)
	}
	if d.Quality != "Excellent" && d.Quality != "Very Good" {
		t.Errorf("low drowsiness quality = %q, want a top band", d.Quality)
	}

	s := summary.Metrics.StressIndicators
	if s.RawValue == nil {
		t.Fatal("stress raw value missing")
	}
	wantStress := qualityBand((100 - *s.RawValue) / 100)
	if s.Quality != wantStress {
		t.Errorf("stress quality = %q, want inverted band %q for %v", s.Quality, wantStress, *s.RawValue)
	}

	att := summary.Metrics.Attention
	if att.RawValue == nil {
		t.Fatal("attention raw value missing")
	}
	wantAtt := qualityBand(*att.RawValue / 100)
	if att.Quality != wantAtt {
		t.Errorf("attention quality = %q, want direct band %q for %v", att.Quality, wantAtt, *att.RawValue)
	}
}

func TestAnalyzerSessionIsolation(t *testing.T) {
	drowsy := NewAnalyzer(DefaultConfig())
	alert := NewAnalyzer(DefaultConfig())

	closed := syntheticFace(0.1)
	open := syntheticFace(0.5)

	var drowsySummary, alertSummary *entity.AnalysisSummary
	for i := 0; i < 70; i++ {
		drowsySummary = drowsy.Analyze(closed, float64(i)*0.1)
	}
	for i := 0; i < 5; i++ {
		alertSummary = alert.Analyze(open, float64(i)*0.1)
	}

	if *drowsySummary.Metrics.Drowsiness.RawValue <= *alertSummary.Metrics.Drowsiness.RawValue {
		t.Errorf("sessions bled state: drowsy %v <= alert %v",
			*drowsySummary.Metrics.Drowsiness.RawValue, *alertSummary.Metrics.Drowsiness.RawValue)
	}
	if alert.FrameCount() != 5 || drowsy.FrameCount() != 70 {
		t.Errorf("frame counts = %d/%d, want 5/70", alert.FrameCount(), drowsy.FrameCount())
	}
}

func TestAnalyzeBaselineAppearsAfterCalibration(t *testing.T) {
	a := NewAnalyzer(DefaultConfig())
	face := syntheticFace(0.5)

	early := a.Analyze(face, 0)
	if early.Metrics.Attention.Baseline != nil {
		t.Error("baseline present before calibration window filled")
	}

	var late *entity.AnalysisSummary
	for i := 1; i <= 15; i++ {
		late = a.Analyze(face, float64(i)*0.1)
	}
	if late.Metrics.Attention.Baseline == nil {
		t.Fatal("baseline missing after calibration window filled")
	}
	if math.Abs(*late.Metrics.Attention.Baseline-*late.Metrics.Attention.RawValue) > 5 {
		t.Errorf("steady-signal baseline %v far from current %v",
			*late.Metrics.Attention.Baseline, *late.Metrics.Attention.RawValue)
	}
}
