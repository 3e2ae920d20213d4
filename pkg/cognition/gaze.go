package cognition

import "math"

// Gaze pattern labels derived from fixation stability and screen coverage.
const (
	GazePatternFocused     = "focused"
	GazePatternExploratory = "exploratory"
	GazePatternDistracted  = "distracted"
	GazePatternBalanced    = "balanced"
	GazePatternUnknown     = "unknown"
)

// GazeSample is one gaze direction observation in normalized coordinates.
type GazeSample struct {
	Timestamp float64
	X         float64
	Y         float64
}

// Fixation is a completed dwell of at least MinFixationDuration seconds.
type Fixation struct {
	X        float64
	Y        float64
	Start    float64
	End      float64
	Duration float64
}

// Saccade is one rapid gaze jump between fixations.
type Saccade struct {
	Start     float64
	End       float64
	Amplitude float64
	Duration  float64
}

// GazeTracker segments a gaze sample stream into fixations and saccades and
// classifies the overall viewing pattern. A jump larger than the saccade
// threshold closes the running fixation; small drift below the fixation
// threshold extends it.
type GazeTracker struct {
	cfg *Config

	samples   *Ring[GazeSample]
	fixations *Ring[Fixation]
	saccades  *Ring[Saccade]

	current    GazeSample
	currentSet bool
	dwellStart float64
}

func NewGazeTracker(cfg *Config) *GazeTracker {
	return &GazeTracker{
		cfg:       cfg,
		samples:   NewRing[GazeSample](cfg.GazeHistorySize),
		fixations: NewRing[Fixation](cfg.FixationHistorySize),
		saccades:  NewRing[Saccade](cfg.FixationHistorySize),
	}
}

// Observe records one gaze sample and updates the fixation state machine.
func (t *GazeTracker) Observe(x, y, timestamp float64) {
	s := GazeSample{Timestamp: timestamp, X: x, Y: y}
	t.samples.Push(s)

	if !t.currentSet {
		t.current = s
		t.currentSet = true
		t.dwellStart = timestamp
		return
	}

	dist := math.Hypot(x-t.current.X, y-t.current.Y)
	switch {
	case dist > t.cfg.SaccadeThreshold:
		t.closeFixation(timestamp)
		t.saccades.Push(Saccade{
			Start:     t.current.Timestamp,
			End:       timestamp,
			Amplitude: dist,
			Duration:  timestamp - t.current.Timestamp,
		})
		t.current = s
		t.dwellStart = timestamp
	case dist <= t.cfg.FixationThreshold:
		// drift inside the fixation window, keep the anchor
		t.current.Timestamp = timestamp
	default:
		t.current = s
	}
}

func (t *GazeTracker) closeFixation(end float64) {
	duration := end - t.dwellStart
	if duration < t.cfg.MinFixationDuration {
		return
	}
	t.fixations.Push(Fixation{
		X:        t.current.X,
		Y:        t.current.Y,
		Start:    t.dwellStart,
		End:      end,
		Duration: duration,
	})
}

func (t *GazeTracker) FixationCount() int { return t.fixations.Len() }
func (t *GazeTracker) SaccadeCount() int  { return t.saccades.Len() }

func (t *GazeTracker) AverageFixationDuration() float64 {
	items := t.fixations.Items()
	if len(items) == 0 {
		return 0
	}
	var sum float64
	for _, f := range items {
		sum += f.Duration
	}
	return sum / float64(len(items))
}

// Stability is 1 minus the bounded mean positional variance of recent gaze.
func (t *GazeTracker) Stability() float64 {
	items := t.samples.Items()
	if len(items) < 2 {
		return 1
	}
	var meanX, meanY float64
	for _, s := range items {
		meanX += s.X
		meanY += s.Y
	}
	meanX /= float64(len(items))
	meanY /= float64(len(items))

	var varX, varY float64
	for _, s := range items {
		varX += (s.X - meanX) * (s.X - meanX)
		varY += (s.Y - meanY) * (s.Y - meanY)
	}
	varX /= float64(len(items))
	varY /= float64(len(items))
	return 1 - math.Min(1, (varX+varY)/2)
}

// Coverage estimates how much of the viewing area recent gaze has spanned.
func (t *GazeTracker) Coverage() float64 {
	items := t.samples.Items()
	if len(items) < 2 {
		return 0
	}
	minX, maxX := items[0].X, items[0].X
	minY, maxY := items[0].Y, items[0].Y
	for _, s := range items[1:] {
		minX = math.Min(minX, s.X)
		maxX = math.Max(maxX, s.X)
		minY = math.Min(minY, s.Y)
		maxY = math.Max(maxY, s.Y)
	}
	return math.Min(1, (maxX-minX)*(maxY-minY)/4.0)
}

// Pattern classifies recent viewing behavior. Stability wins over coverage
// so steady reading is focused even across a wide area.
func (t *GazeTracker) Pattern() string {
	if t.samples.Len() < 2 {
		return GazePatternUnknown
	}
	stability := t.Stability()
	coverage := t.Coverage()
	switch {
	case stability > 0.8:
		return GazePatternFocused
	case coverage > 0.6:
		return GazePatternExploratory
	case stability < 0.3:
		return GazePatternDistracted
	default:
		return GazePatternBalanced
	}
}
