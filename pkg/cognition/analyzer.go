package cognition

import (
	"fmt"
	"image"
	"math"

	"AcawsGolang/internal/entity"
)

// NoSignalPlaceholder is shown for metrics that have no usable input.
const NoSignalPlaceholder = "—"

// Analyzer fuses one learner's landmark stream into cognitive metrics. It
// owns all per-session temporal state and is not safe for concurrent use;
// the owning session serializes calls.
type Analyzer struct {
	cfg Config

	blinks   *BlinkDetector
	gaze     *GazeTracker
	smoother *EmotionSmoother
	emotions *Ring[EmotionReading]
	yaw      *History
	pitch    *History

	attention  *History
	load       *History
	engagement *History
	drowsiness *History
	focus      *History
	stress     *History
	readiness  *History

	attentionBase *Calibrator
	loadBase      *Calibrator

	lastPupil      PupilResult
	lastState      entity.CognitiveState
	lastLabel      string
	lastLabelScore float64
	lastSummary    *entity.AnalysisSummary
	frames         int64
}

func NewAnalyzer(cfg Config) *Analyzer {
	pcfg := &cfg
	return &Analyzer{
		cfg:      cfg,
		blinks:   NewBlinkDetector(pcfg),
		gaze:     NewGazeTracker(pcfg),
		smoother: NewEmotionSmoother(pcfg),
		emotions: NewRing[EmotionReading](cfg.EmotionHistorySize),
		yaw:      NewHistory(cfg.HeadPoseHistorySize),
		pitch:    NewHistory(cfg.HeadPoseHistorySize),

		attention:  NewHistory(cfg.AttentionHistorySize),
		load:       NewHistory(cfg.AttentionHistorySize),
		engagement: NewHistory(cfg.AttentionHistorySize),
		drowsiness: NewHistory(cfg.AttentionHistorySize),
		focus:      NewHistory(cfg.AttentionHistorySize),
		stress:     NewHistory(cfg.AttentionHistorySize),
		readiness:  NewHistory(cfg.AttentionHistorySize),

		attentionBase: NewCalibrator(pcfg),
		loadBase:      NewCalibrator(pcfg),
	}
}

// Analyze processes one frame's landmarks. Fewer landmarks than the face
// mesh provides, or none at all, produces the camera-off summary rather
// than an error so a flaky capture never breaks the stream.
func (a *Analyzer) Analyze(landmarks []entity.Landmark, timestamp float64) *entity.AnalysisSummary {
	features, ok := ExtractFeatures(landmarks)
	if !ok {
		summary := a.noSignalSummary(timestamp)
		a.lastSummary = summary
		return summary
	}
	a.frames++

	a.yaw.Push(features.HeadYaw, timestamp)
	a.pitch.Push(features.HeadPitch, timestamp)
	a.blinks.Observe(features.EyeAspectRatio, timestamp)
	a.gaze.Observe(features.GazeDirectionX, features.GazeDirectionY, timestamp)

	blinkRate := a.blinks.Rate(timestamp)

	attention := safeScore(50, func() float64 {
		return AttentionScore(features, a.yaw)
	})
	load := safeScore(50, func() float64 {
		return CognitiveLoadScore(features, blinkRate, a.yaw, a.pitch)
	})

	emotion := a.smoother.Smooth(ScoreEmotions(features), timestamp)
	a.emotions.Push(emotion)
	stability := a.emotionStability()

	drowsy := safeScore(10, func() float64 {
		return DrowsinessScore(&a.cfg, a.blinks, features)
	})
	engaged := EngagementScore(attention, emotion.Confidence)
	focus := FocusQuality(attention, a.attention)
	stress := StressScore(load, stability)
	ready := LearningReadiness(load, stress, drowsy)
	micro := DetectMicroExpressions(features, emotion.Confidence)

	a.attention.Push(attention, timestamp)
	a.load.Push(load, timestamp)
	a.engagement.Push(engaged, timestamp)
	a.drowsiness.Push(drowsy, timestamp)
	a.focus.Push(focus, timestamp)
	a.stress.Push(stress, timestamp)
	a.readiness.Push(ready, timestamp)
	a.attentionBase.Observe(attention)
	a.loadBase.Observe(load)

	a.lastLabel, a.lastLabelScore = ClassifyState(attention/100, engaged/100)

	a.lastState = entity.CognitiveState{
		AttentionScore:      attention,
		CognitiveLoad:       load,
		EngagementLevel:     engaged,
		EmotionalState:      emotion.Label,
		EmotionalConfidence: emotion.Confidence,
		DrowsinessLevel:     drowsy,
		FocusQuality:        focus,
		StressIndicators:    stress,
		LearningReadiness:   ready,
		MicroExpressions:    micro,
		ConfidenceScore:     math.Min(0.95, (emotion.Confidence+0.8)/2),
	}

	summary := &entity.AnalysisSummary{
		CameraEnabled: true,
		Timestamp:     timestamp,
		Metrics: entity.AnalysisMetrics{
			Attention:         a.scoreReading(attention, a.attention, false, a.attentionBase),
			CognitiveLoad:     a.scoreReading(load, a.load, true, a.loadBase),
			Engagement:        a.scoreReading(engaged, a.engagement, false, nil),
			EmotionalState:    a.emotionReading(emotion),
			Drowsiness:        a.scoreReading(drowsy, a.drowsiness, true, nil),
			FocusQuality:      a.scoreReading(focus, a.focus, false, nil),
			StressIndicators:  a.scoreReading(stress, a.stress, true, nil),
			LearningReadiness: a.scoreReading(ready, a.readiness, false, nil),
		},
		AdvancedMetrics: entity.AdvancedMetrics{
			BlinkRate:        blinkRate,
			EmotionStability: stability,
			MicroExpressions: micro,
			ConfidenceScore:  a.lastState.ConfidenceScore,
			TemporalSamples:  a.attention.Len(),
		},
		Gaze: a.gazeReport(features),
	}
	a.lastSummary = summary
	return summary
}

// ObservePupil feeds an optional grayscale eye crop into the gaze report.
func (a *Analyzer) ObservePupil(eye *image.Gray) {
	a.lastPupil = LocatePupil(eye)
}

// State returns the latest fused state and whether any frame was analyzed.
func (a *Analyzer) State() (entity.CognitiveState, bool) {
	return a.lastState, a.frames > 0
}

// Classification returns the discrete state label and its confidence.
func (a *Analyzer) Classification() (string, float64) {
	if a.frames == 0 {
		return StateUnknown, 0
	}
	return a.lastLabel, a.lastLabelScore
}

func (a *Analyzer) LastSummary() *entity.AnalysisSummary { return a.lastSummary }

func (a *Analyzer) FrameCount() int64 { return a.frames }

// emotionStability is the dominance of the most frequent recent label.
// Short histories default to the neutral midpoint.
func (a *Analyzer) emotionStability() float64 {
	window := a.emotions.Tail(10)
	if len(window) < 5 {
		return 0.5
	}
	counts := make(map[string]int, len(window))
	best := 0
	for _, e := range window {
		counts[e.Label]++
		if counts[e.Label] > best {
			best = counts[e.Label]
		}
	}
	return float64(best) / float64(len(window))
}

// pointsTrend compares the recent mean against the preceding mean on a
// 0-100 metric. lowerIsBetter flips the labels for load-like metrics.
func (a *Analyzer) pointsTrend(h *History, lowerIsBetter bool) string {
	if h.Len() < a.cfg.TrendMinSamples {
		return TrendInsufficient
	}
	samples := h.Samples()
	split := len(samples) - 5
	if split < 1 {
		split = 1
	}
	var olderSum, recentSum float64
	for i, s := range samples {
		if i < split {
			olderSum += s.Value
		} else {
			recentSum += s.Value
		}
	}
	older := olderSum / float64(split)
	recent := recentSum / float64(len(samples)-split)
	diff := recent - older
	switch {
	case math.Abs(diff) <= a.cfg.TrendPointsDelta:
		return TrendStable
	case diff > 0 != lowerIsBetter:
		return TrendImproving
	default:
		return TrendDeclining
	}
}

func (a *Analyzer) scoreReading(value float64, h *History, lowerIsBetter bool, base *Calibrator) entity.MetricReading {
	v := value
	quality := value / 100
	if lowerIsBetter {
		quality = (100 - value) / 100
	}
	reading := entity.MetricReading{
		Quality:  qualityBand(quality),
		Current:  fmt.Sprintf("%.0f%%", value),
		RawValue: &v,
		Trend:    a.pointsTrend(h, lowerIsBetter),
	}
	if base != nil {
		if b, ok := base.Baseline(); ok {
			reading.Baseline = &b
		}
	}
	return reading
}

func (a *Analyzer) emotionReading(e EmotionReading) entity.MetricReading {
	conf := e.Confidence
	return entity.MetricReading{
		Quality:  qualityBand(e.Confidence),
		Current:  e.Label,
		RawValue: &conf,
		Trend:    TrendStable,
	}
}

// noSignalSummary is the camera-off shape: dash placeholders everywhere
// except cognitive load, which reads as zero effort.
func (a *Analyzer) noSignalSummary(timestamp float64) *entity.AnalysisSummary {
	dash := entity.MetricReading{
		Quality: NoSignalPlaceholder,
		Current: NoSignalPlaceholder,
		Trend:   TrendInsufficient,
	}
	zeroLoad := entity.MetricReading{
		Quality: NoSignalPlaceholder,
		Current: "0%",
		Trend:   TrendInsufficient,
	}
	return &entity.AnalysisSummary{
		CameraEnabled: false,
		Timestamp:     timestamp,
		Metrics: entity.AnalysisMetrics{
			Attention:         dash,
			CognitiveLoad:     zeroLoad,
			Engagement:        dash,
			EmotionalState:    dash,
			Drowsiness:        dash,
			FocusQuality:      dash,
			StressIndicators:  dash,
			LearningReadiness: dash,
		},
		AdvancedMetrics: entity.AdvancedMetrics{
			EmotionStability: 0.5,
			TemporalSamples:  a.attention.Len(),
		},
	}
}

func (a *Analyzer) gazeReport(f *entity.FacialFeatures) *entity.GazeReport {
	if a.gaze.Pattern() == GazePatternUnknown {
		return nil
	}
	return &entity.GazeReport{
		PupilDetected: a.lastPupil.Detected,
		GazeX:         f.GazeDirectionX,
		GazeY:         f.GazeDirectionY,
		SaccadeCount:  a.gaze.SaccadeCount(),
		FixationCount: a.gaze.FixationCount(),
		AvgFixation:   a.gaze.AverageFixationDuration(),
		Stability:     a.gaze.Stability(),
		Coverage:      a.gaze.Coverage(),
		Pattern:       a.gaze.Pattern(),
	}
}

// qualityBand maps a normalized 0-1 value to its presentation label.
func qualityBand(v float64) string {
	switch {
	case v >= 0.9:
		return "Excellent"
	case v >= 0.8:
		return "Very Good"
	case v >= 0.7:
		return "Good"
	case v >= 0.6:
		return "Fair"
	case v >= 0.4:
		return "Poor"
	default:
		return "Very Low"
	}
}

// safeScore shields the pipeline from a panicking estimator; one bad frame
// degrades to the neutral default instead of killing the session.
func safeScore(neutral float64, fn func() float64) (score float64) {
	defer func() {
		if r := recover(); r != nil {
			score = neutral
		}
	}()
	return fn()
}
