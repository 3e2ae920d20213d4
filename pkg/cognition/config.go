package cognition

// Config collects every empirical threshold used by the analysis pipeline.
// The defaults are heuristic values carried over from field tuning; override
// individual fields before constructing an Analyzer when calibrating.
type Config struct {
	// History capacities (entries).
	AttentionHistorySize int
	BlinkHistorySize     int
	EmotionHistorySize   int
	HeadPoseHistorySize  int
	GazeHistorySize      int
	FixationHistorySize  int

	// Blink detection.
	BlinkClosureThreshold float64 // EAR below this counts as a closed eye
	BlinkCooldownSeconds  float64 // debounce between blink events
	RequireReopen         bool    // a sustained closure counts once until the eye reopens

	// Gaze segmentation.
	SaccadeThreshold    float64 // minimum inter-sample shift for a saccade
	FixationThreshold   float64 // maximum inter-sample shift within a fixation
	MinFixationDuration float64 // seconds a fixation must last to be recorded

	// Drowsiness (PERCLOS).
	PerclosWindow     int     // trailing blink-history entries examined
	PerclosMinEntries int     // below this, fall back to the EAR band table
	PerclosScale      float64 // perclos fraction -> 0-100 score multiplier
	LowEARThreshold   float64 // current EAR below this adds LowEARPenalty
	LowEARPenalty     float64
	NodPitchThreshold float64 // head pitch below this (degrees) adds NodPenalty
	NodPenalty        float64

	// Baseline calibration.
	BaselineWindowSize int
	BaselineMinSamples int
	BaselineAlpha      float64 // EMA weight of the newest window mean

	// Emotion temporal smoothing.
	SmoothingAlpha float64 // weight of the instantaneous classification
	SmootherDepth  int     // number of past classifications blended

	// Trend detection.
	TrendMinSamples   int     // below this the trend is insufficient_data
	TrendPointsDelta  float64 // 0-100 metrics: mean shift for rising/falling
	TrendSlopeEpsilon float64 // slope magnitude treated as stable
}

func DefaultConfig() Config {
	return Config{
		AttentionHistorySize: 50,
		BlinkHistorySize:     100,
		EmotionHistorySize:   30,
		HeadPoseHistorySize:  20,
		GazeHistorySize:      100,
		FixationHistorySize:  50,

		BlinkClosureThreshold: 0.2,
		BlinkCooldownSeconds:  0.1,
		RequireReopen:         true,

		SaccadeThreshold:    0.1,
		FixationThreshold:   0.05,
		MinFixationDuration: 0.2,

		PerclosWindow:     60,
		PerclosMinEntries: 20,
		PerclosScale:      200,
		LowEARThreshold:   0.18,
		LowEARPenalty:     20,
		NodPitchThreshold: -10,
		NodPenalty:        15,

		BaselineWindowSize: 100,
		BaselineMinSamples: 10,
		BaselineAlpha:      0.1,

		SmoothingAlpha: 0.7,
		SmootherDepth:  5,

		TrendMinSamples:   5,
		TrendPointsDelta:  5,
		TrendSlopeEpsilon: 0.001,
	}
}
