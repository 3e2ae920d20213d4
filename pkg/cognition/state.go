package cognition

// Cognitive state labels assigned by ClassifyState.
const (
	StateFocused    = "focused"
	StateDistracted = "distracted"
	StateFatigued   = "fatigued"
	StateEngaged    = "engaged"
	StateConfused   = "confused"
	StateLearning   = "learning"
	StateUnknown    = "unknown"
)

type stateBand struct {
	label string
	attLo float64
	attHi float64
	engLo float64
	engHi float64
}

// stateBands overlap on purpose; the classifier picks the best-confidence
// match, and declaration order breaks exact ties.
var stateBands = []stateBand{
	{StateFocused, 0.8, 1.0, 0.7, 1.0},
	{StateDistracted, 0.0, 0.4, 0.0, 0.5},
	{StateFatigued, 0.0, 0.6, 0.0, 0.4},
	{StateEngaged, 0.6, 1.0, 0.6, 1.0},
	{StateConfused, 0.3, 0.7, 0.2, 0.6},
	{StateLearning, 0.5, 0.9, 0.4, 0.8},
}

// ClassifyState maps normalized attention and engagement (0-1) to a discrete
// cognitive state. Confidence is the mean of the two inputs; out-of-band
// inputs yield unknown with zero confidence. Deterministic for equal inputs.
func ClassifyState(attention, engagement float64) (string, float64) {
	attention = clamp(attention, 0, 1)
	engagement = clamp(engagement, 0, 1)
	confidence := (attention + engagement) / 2

	best := StateUnknown
	bestConfidence := 0.0
	for _, b := range stateBands {
		if attention < b.attLo || attention > b.attHi {
			continue
		}
		if engagement < b.engLo || engagement > b.engHi {
			continue
		}
		if confidence > bestConfidence {
			best = b.label
			bestConfidence = confidence
		}
	}
	if best == StateUnknown {
		return StateUnknown, 0
	}
	return best, bestConfidence
}
