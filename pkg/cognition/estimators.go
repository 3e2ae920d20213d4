package cognition

import (
	"math"

	"AcawsGolang/internal/entity"
)

// AttentionScore combines face presence, eye openness, gaze centering, and
// head stability into a 0-100 score. Each factor is an independent band
// lookup; the final score is their mean. No factors yields the neutral 50.
func AttentionScore(f *entity.FacialFeatures, yawHistory *History) float64 {
	var factors []float64

	switch {
	case f.FaceSize > 0.1:
		factors = append(factors, 0.8)
	case f.FaceSize > 0.05:
		factors = append(factors, 0.6)
	default:
		factors = append(factors, 0.3)
	}

	switch {
	case f.EyeAspectRatio > 0.25:
		factors = append(factors, 0.9)
	case f.EyeAspectRatio > 0.2:
		factors = append(factors, 0.7)
	case f.EyeAspectRatio > 0.15:
		factors = append(factors, 0.4)
	default:
		factors = append(factors, 0.1)
	}

	if math.Abs(f.GazeDirectionX) < 0.3 && math.Abs(f.GazeDirectionY) < 0.3 {
		factors = append(factors, 0.8)
	} else {
		factors = append(factors, 0.5)
	}

	if yawHistory.Len() > 3 {
		stability := 1 - math.Min(1, yawHistory.StdDev(3)*5)
		factors = append(factors, stability)
	}

	if len(factors) == 0 {
		return 50
	}
	var sum float64
	for _, v := range factors {
		sum += v
	}
	return clamp(sum/float64(len(factors))*100, 0, 100)
}

// CognitiveLoadScore rates mental effort 0-100 from blink rate, eye strain,
// and head restlessness. An open mouth reads as relaxation and subtracts.
func CognitiveLoadScore(f *entity.FacialFeatures, blinkRate float64, yawHistory, pitchHistory *History) float64 {
	var factors []float64

	if blinkRate > 20 {
		factors = append(factors, math.Min(1, blinkRate/40))
	} else {
		factors = append(factors, math.Max(0, (blinkRate-10)/20))
	}

	switch {
	case f.EyeAspectRatio < 0.15:
		factors = append(factors, 0.8)
	case f.EyeAspectRatio < 0.25:
		factors = append(factors, 0.4)
	default:
		factors = append(factors, 0.1)
	}

	if yawHistory.Len() > 5 && pitchHistory.Len() > 5 {
		movement := (yawHistory.Variance(5) + pitchHistory.Variance(5)) / 2
		factors = append(factors, math.Min(1, movement*10))
	}

	if f.MouthOpenness > 0.05 {
		factors = append(factors, -0.2)
	}

	if len(factors) == 0 {
		return 50
	}
	var sum float64
	for _, v := range factors {
		sum += v
	}
	return clamp(sum/float64(len(factors))*100, 0, 100)
}

// EngagementScore weights attention against classification certainty.
func EngagementScore(attention, emotionConfidence float64) float64 {
	return clamp(attention*0.7+emotionConfidence*100*0.3, 0, 100)
}

// FocusQuality discounts attention by its recent volatility. Until enough
// samples exist it passes attention through unchanged.
func FocusQuality(attention float64, attentionHistory *History) float64 {
	if attentionHistory.Len() <= 10 {
		return attention
	}
	consistency := 1 - math.Min(1, attentionHistory.StdDev(10)/20)
	return clamp(attention*consistency, 0, 100)
}

// StressScore blends cognitive load with emotional instability.
func StressScore(load, emotionStability float64) float64 {
	return clamp(load*0.6+(1-emotionStability)*40, 0, 100)
}

// LearningReadiness is the inverse composite of load, stress, and fatigue.
func LearningReadiness(load, stress, drowsiness float64) float64 {
	return math.Max(0, 100-(load*0.5+stress*0.3+drowsiness*0.2))
}

// DetectMicroExpressions flags brief high-certainty muscle events.
func DetectMicroExpressions(f *entity.FacialFeatures, emotionConfidence float64) []string {
	var found []string
	if f.SmileIntensity > 0.05 && emotionConfidence > 0.7 {
		found = append(found, "genuine_smile")
	}
	if f.EyebrowRaise > 0.04 {
		found = append(found, "surprise_micro")
	}
	return found
}
