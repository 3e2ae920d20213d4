package cognition

import "math"

// Trend labels shared by every estimator that reports direction over time.
// Transitions are pure slope-sign thresholding with no hysteresis; callers
// that need stability must debounce on their side.
const (
	TrendInsufficient = "insufficient_data"
	TrendStable       = "stable"
	TrendImproving    = "improving"
	TrendDeclining    = "declining"
)

// Ring is a bounded FIFO buffer. Once full, each push evicts the oldest
// element. A Ring is owned by exactly one analyzer and is not safe for
// concurrent use.
type Ring[T any] struct {
	capacity int
	items    []T
}

func NewRing[T any](capacity int) *Ring[T] {
	if capacity < 1 {
		capacity = 1
	}
	return &Ring[T]{capacity: capacity, items: make([]T, 0, capacity)}
}

func (r *Ring[T]) Push(v T) {
	if len(r.items) == r.capacity {
		copy(r.items, r.items[1:])
		r.items = r.items[:len(r.items)-1]
	}
	r.items = append(r.items, v)
}

func (r *Ring[T]) Len() int      { return len(r.items) }
func (r *Ring[T]) Capacity() int { return r.capacity }

// Items returns the buffered elements oldest-first. The slice aliases the
// internal buffer; callers must not mutate it.
func (r *Ring[T]) Items() []T { return r.items }

// Tail returns up to the last n elements, oldest-first.
func (r *Ring[T]) Tail(n int) []T {
	if n <= 0 || len(r.items) == 0 {
		return nil
	}
	if n > len(r.items) {
		n = len(r.items)
	}
	return r.items[len(r.items)-n:]
}

// Sample is one timestamped metric observation.
type Sample struct {
	Timestamp float64
	Value     float64
}

// History is a bounded, timestamp-ordered signal buffer with windowed
// statistics. NaN values are skipped on push so gaps in the upstream signal
// do not break slope continuity.
type History struct {
	ring *Ring[Sample]
}

func NewHistory(capacity int) *History {
	return &History{ring: NewRing[Sample](capacity)}
}

func (h *History) Push(value, timestamp float64) {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return
	}
	h.ring.Push(Sample{Timestamp: timestamp, Value: value})
}

func (h *History) Len() int          { return h.ring.Len() }
func (h *History) Samples() []Sample { return h.ring.Items() }

func (h *History) Tail(n int) []Sample { return h.ring.Tail(n) }

func (h *History) Last() (Sample, bool) {
	items := h.ring.Items()
	if len(items) == 0 {
		return Sample{}, false
	}
	return items[len(items)-1], true
}

// Mean over the last n samples. Returns 0 on an empty window.
func (h *History) Mean(n int) float64 {
	window := h.ring.Tail(n)
	if len(window) == 0 {
		return 0
	}
	var sum float64
	for _, s := range window {
		sum += s.Value
	}
	return sum / float64(len(window))
}

// Variance over the last n samples (population variance).
func (h *History) Variance(n int) float64 {
	window := h.ring.Tail(n)
	if len(window) < 2 {
		return 0
	}
	mean := h.Mean(n)
	var sum float64
	for _, s := range window {
		d := s.Value - mean
		sum += d * d
	}
	return sum / float64(len(window))
}

func (h *History) StdDev(n int) float64 {
	return math.Sqrt(h.Variance(n))
}

// Slope fits a least-squares line over the last n samples and returns its
// gradient in value-per-second. With exactly two samples it degrades to the
// two-point delta; with fewer it returns 0.
func (h *History) Slope(n int) float64 {
	window := h.ring.Tail(n)
	if len(window) < 2 {
		return 0
	}
	if len(window) == 2 {
		dt := window[1].Timestamp - window[0].Timestamp
		if math.Abs(dt) < epsilon {
			return 0
		}
		return (window[1].Value - window[0].Value) / dt
	}

	var sumX, sumY float64
	for _, s := range window {
		sumX += s.Timestamp
		sumY += s.Value
	}
	meanX := sumX / float64(len(window))
	meanY := sumY / float64(len(window))

	var num, den float64
	for _, s := range window {
		dx := s.Timestamp - meanX
		num += dx * (s.Value - meanY)
		den += dx * dx
	}
	if den < epsilon {
		return 0
	}
	return num / den
}

// ModeRatio is the fraction of the last n samples equal to the most frequent
// value in that window. Used for stability measures over discrete signals.
func (h *History) ModeRatio(n int) float64 {
	window := h.ring.Tail(n)
	if len(window) == 0 {
		return 0
	}
	counts := make(map[float64]int, len(window))
	best := 0
	for _, s := range window {
		counts[s.Value]++
		if counts[s.Value] > best {
			best = counts[s.Value]
		}
	}
	return float64(best) / float64(len(window))
}

// Trend labels the direction of the last n samples. Positive slope reads as
// improving; pass lowerIsBetter for metrics where a falling value is the
// good direction (fatigue, load).
func (h *History) Trend(n, minSamples int, slopeEpsilon float64, lowerIsBetter bool) string {
	if h.Len() < minSamples {
		return TrendInsufficient
	}
	slope := h.Slope(n)
	switch {
	case math.Abs(slope) <= slopeEpsilon:
		return TrendStable
	case slope > 0 != lowerIsBetter:
		return TrendImproving
	default:
		return TrendDeclining
	}
}
