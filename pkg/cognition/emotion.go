package cognition

import (
	"math"

	"AcawsGolang/internal/entity"
)

// Emotion labels produced by the classifier.
const (
	EmotionNeutral   = "neutral"
	EmotionHappy     = "happy"
	EmotionSad       = "sad"
	EmotionAngry     = "angry"
	EmotionSurprised = "surprised"
	EmotionFearful   = "fearful"
	EmotionDisgusted = "disgusted"
)

// emotionPriority breaks score ties deterministically.
var emotionPriority = []string{
	EmotionHappy,
	EmotionSad,
	EmotionAngry,
	EmotionSurprised,
	EmotionFearful,
	EmotionDisgusted,
	EmotionNeutral,
}

// EmotionReading is one classification with its certainty.
type EmotionReading struct {
	Label      string
	Confidence float64
	Timestamp  float64
}

// ClassifyEmotion picks the best-scoring label from the additive rules.
func ClassifyEmotion(f *entity.FacialFeatures) EmotionReading {
	return bestEmotion(ScoreEmotions(f))
}

// ScoreEmotions rates the seven basic emotions from geometric facial
// features with additive evidence rules. The neutral baseline keeps the
// classifier from overcommitting on weak signals.
func ScoreEmotions(f *entity.FacialFeatures) map[string]float64 {
	scores := map[string]float64{EmotionNeutral: 0.5}

	if f.SmileIntensity > 0.02 {
		scores[EmotionHappy] += 0.6
	}
	if f.MouthOpenness > 0.05 {
		scores[EmotionSurprised] += 0.4
	}
	if f.SmileIntensity < -0.01 {
		scores[EmotionSad] += 0.5
	}
	if f.EyeAspectRatio < 0.2 {
		scores[EmotionSad] += 0.3
	}
	if f.EyebrowFrown > 0.02 {
		scores[EmotionAngry] += 0.5
	}
	if f.MouthOpenness < 0.02 {
		scores[EmotionAngry] += 0.2
	}
	if f.EyeAspectRatio > 0.3 {
		scores[EmotionSurprised] += 0.4
	}
	if f.MouthOpenness > 0.08 {
		scores[EmotionSurprised] += 0.4
	}
	if f.EyeAspectRatio > 0.35 {
		scores[EmotionFearful] += 0.3
	}
	if f.EyebrowRaise > 0.03 {
		scores[EmotionFearful] += 0.4
	}
	if f.MouthWidth < 0.1 {
		scores[EmotionDisgusted] += 0.4
	}

	return scores
}

func bestEmotion(scores map[string]float64) EmotionReading {
	best := EmotionNeutral
	bestScore := scores[EmotionNeutral]
	for _, label := range emotionPriority {
		if s, ok := scores[label]; ok && s > bestScore {
			best = label
			bestScore = s
		}
	}
	return EmotionReading{
		Label:      best,
		Confidence: math.Min(0.95, bestScore+0.1),
	}
}

// relatedEmotions lists label pairs that plausibly follow each other. A
// transition between related labels is penalized less than an arbitrary jump.
var relatedEmotions = map[[2]string]bool{
	{EmotionHappy, EmotionSurprised}:   true,
	{EmotionSad, EmotionNeutral}:       true,
	{EmotionFearful, EmotionSurprised}: true,
	{EmotionAngry, EmotionDisgusted}:   true,
}

func transitionWeight(from, to string) float64 {
	switch {
	case from == to:
		return 0.6
	case relatedEmotions[[2]string{from, to}] || relatedEmotions[[2]string{to, from}]:
		return 0.15
	default:
		return 0.02
	}
}

// EmotionSmoother damps label flicker by blending the instantaneous
// classification with transition likelihood from recent history.
type EmotionSmoother struct {
	cfg    *Config
	recent *Ring[EmotionReading]
}

func NewEmotionSmoother(cfg *Config) *EmotionSmoother {
	return &EmotionSmoother{
		cfg:    cfg,
		recent: NewRing[EmotionReading](cfg.SmootherDepth),
	}
}

// Smooth rescores every label against the instantaneous evidence and the
// transition likelihood from recent history, so the stabilized pick can land
// on a label that neither the raw classifier nor the previous frame chose.
// The first observation passes through unchanged.
func (s *EmotionSmoother) Smooth(scores map[string]float64, timestamp float64) EmotionReading {
	raw := bestEmotion(scores)
	raw.Timestamp = timestamp
	defer s.recent.Push(raw)

	history := s.recent.Items()
	if len(history) == 0 {
		return raw
	}

	alpha := s.cfg.SmoothingAlpha
	best := EmotionReading{Label: EmotionNeutral, Confidence: -1, Timestamp: timestamp}
	for _, label := range emotionPriority {
		var prior float64
		for _, past := range history {
			prior += transitionWeight(past.Label, label)
		}
		prior /= float64(len(history))

		combined := alpha*scores[label] + (1-alpha)*prior
		if combined > best.Confidence {
			best.Label = label
			best.Confidence = combined
		}
	}

	best.Confidence = math.Min(0.95, best.Confidence+0.1)
	return best
}
