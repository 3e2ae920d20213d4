package performance

import (
	"math"
	"sync"

	"AcawsGolang/pkg/cognition"
)

// Benchmark thresholds read top-down; the first band the value clears wins.
type Benchmark struct {
	Excellent float64
	Good      float64
	Average   float64
	Poor      float64
}

// Config sizes the tracker's windows and carries the grading benchmarks.
type Config struct {
	ResponseHistorySize   int
	AccuracyHistorySize   int
	CompletionHistorySize int
	EfficiencyHistorySize int

	MinSamples       int     // below this, reports read insufficient_data
	TrendWindow      int     // samples examined for the trend slope
	TrendSlopeEps    float64 // slope magnitude treated as stable
	PredictionWindow float64 // samples for full prediction confidence

	ResponseTime       Benchmark // seconds, lower is better
	Accuracy           Benchmark // fraction, higher is better
	CognitiveLoad      Benchmark // fraction, lower is better
	LearningEfficiency Benchmark // fraction, higher is better
}

func DefaultConfig() Config {
	return Config{
		ResponseHistorySize:   1000,
		AccuracyHistorySize:   500,
		CompletionHistorySize: 500,
		EfficiencyHistorySize: 200,

		MinSamples:       5,
		TrendWindow:      50,
		TrendSlopeEps:    0.001,
		PredictionWindow: 50,

		ResponseTime:       Benchmark{Excellent: 0.5, Good: 1.0, Average: 2.0, Poor: 5.0},
		Accuracy:           Benchmark{Excellent: 0.95, Good: 0.85, Average: 0.75, Poor: 0.6},
		CognitiveLoad:      Benchmark{Excellent: 0.3, Good: 0.6, Average: 0.8, Poor: 0.9},
		LearningEfficiency: Benchmark{Excellent: 0.9, Good: 0.75, Average: 0.6, Poor: 0.4},
	}
}

// Tracker accumulates task-performance observations and grades them against
// the benchmarks. Safe for concurrent use.
type Tracker struct {
	mu  sync.Mutex
	cfg Config

	responses   *cognition.History
	accuracies  *cognition.History
	completions *cognition.History
	efficiency  *cognition.History
}

func NewTracker(cfg Config) *Tracker {
	return &Tracker{
		cfg:         cfg,
		responses:   cognition.NewHistory(cfg.ResponseHistorySize),
		accuracies:  cognition.NewHistory(cfg.AccuracyHistorySize),
		completions: cognition.NewHistory(cfg.CompletionHistorySize),
		efficiency:  cognition.NewHistory(cfg.EfficiencyHistorySize),
	}
}

// RecordResponseTime stores one task latency in seconds.
func (t *Tracker) RecordResponseTime(seconds, timestamp float64) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.responses.Push(seconds, timestamp)
	t.pushEfficiency(timestamp)
}

// RecordAccuracy stores one correctness fraction in [0, 1].
func (t *Tracker) RecordAccuracy(fraction, timestamp float64) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.accuracies.Push(clampUnit(fraction), timestamp)
	t.pushEfficiency(timestamp)
}

// RecordCompletion stores one task-completion fraction in [0, 1].
func (t *Tracker) RecordCompletion(fraction, timestamp float64) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.completions.Push(clampUnit(fraction), timestamp)
}

// pushEfficiency derives the blended speed/accuracy sample. Caller holds mu.
func (t *Tracker) pushEfficiency(timestamp float64) {
	if t.responses.Len() == 0 || t.accuracies.Len() == 0 {
		return
	}
	rt := t.responses.Mean(t.cfg.TrendWindow)
	acc := t.accuracies.Mean(t.cfg.TrendWindow)
	t.efficiency.Push(0.5*speedScore(rt)+0.5*acc, timestamp)
}

// speedScore maps latency to [0, 1] with 2 seconds scoring 1.0.
func speedScore(responseTime float64) float64 {
	return math.Min(1, 2/math.Max(responseTime, 0.1))
}

func clampUnit(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}

// DataPoints is the total number of stored observations.
func (t *Tracker) DataPoints() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.responses.Len() + t.accuracies.Len() + t.completions.Len()
}

// grade bands a value against a benchmark. lowerIsBetter flips the compare
// for latency-like metrics.
func grade(v float64, b Benchmark, lowerIsBetter bool) string {
	meets := func(threshold float64) bool {
		if lowerIsBetter {
			return v <= threshold
		}
		return v >= threshold
	}
	switch {
	case meets(b.Excellent):
		return "excellent"
	case meets(b.Good):
		return "good"
	case meets(b.Average):
		return "average"
	case meets(b.Poor):
		return "poor"
	default:
		return "critical"
	}
}
