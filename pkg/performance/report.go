package performance

import (
	"math"

	"AcawsGolang/pkg/cognition"
)

// Report statuses.
const (
	StatusOK           = "ok"
	StatusInsufficient = "insufficient_data"
)

// MetricSnapshot is one graded aggregate in a realtime report.
type MetricSnapshot struct {
	Value float64 `json:"value"`
	Grade string  `json:"grade"`
}

// RealtimeReport is the current aggregate view of tracked performance.
type RealtimeReport struct {
	Status             string         `json:"status"`
	ResponseTime       MetricSnapshot `json:"response_time"`
	Accuracy           MetricSnapshot `json:"accuracy"`
	CognitiveLoadProxy MetricSnapshot `json:"cognitive_load_proxy"`
	LearningEfficiency MetricSnapshot `json:"learning_efficiency"`
	OverallScore       float64        `json:"overall_score"`
	Trend              string         `json:"trend"`
	DataPoints         int            `json:"data_points"`
}

// Realtime summarizes the tracked windows. With fewer than MinSamples
// observations only Status and DataPoints are meaningful.
func (t *Tracker) Realtime() RealtimeReport {
	t.mu.Lock()
	defer t.mu.Unlock()

	points := t.responses.Len() + t.accuracies.Len() + t.completions.Len()
	if points < t.cfg.MinSamples {
		return RealtimeReport{
			Status:     StatusInsufficient,
			Trend:      cognition.TrendInsufficient,
			DataPoints: points,
		}
	}

	rt := t.responses.Mean(t.cfg.TrendWindow)
	acc := t.accuracies.Mean(t.cfg.TrendWindow)
	eff := t.efficiency.Mean(t.cfg.TrendWindow)
	loadProxy := 0.6*math.Min(1, rt/3) + 0.4*(1-acc)

	return RealtimeReport{
		Status:             StatusOK,
		ResponseTime:       MetricSnapshot{Value: rt, Grade: grade(rt, t.cfg.ResponseTime, true)},
		Accuracy:           MetricSnapshot{Value: acc, Grade: grade(acc, t.cfg.Accuracy, false)},
		CognitiveLoadProxy: MetricSnapshot{Value: loadProxy, Grade: grade(loadProxy, t.cfg.CognitiveLoad, true)},
		LearningEfficiency: MetricSnapshot{Value: eff, Grade: grade(eff, t.cfg.LearningEfficiency, false)},
		OverallScore:       0.4*speedScore(rt) + 0.6*acc,
		Trend:              t.trendLocked(),
		DataPoints:         points,
	}
}

// trendLocked labels the normalized efficiency slope. Caller holds mu.
func (t *Tracker) trendLocked() string {
	if t.efficiency.Len() < t.cfg.MinSamples {
		return cognition.TrendInsufficient
	}
	slope := t.efficiency.Slope(t.cfg.TrendWindow)
	switch {
	case math.Abs(slope) <= t.cfg.TrendSlopeEps:
		return cognition.TrendStable
	case slope > 0:
		return cognition.TrendImproving
	default:
		return cognition.TrendDeclining
	}
}
