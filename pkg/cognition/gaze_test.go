package cognition

import "testing"

func newTestGazeTracker() *GazeTracker {
	cfg := DefaultConfig()
	return NewGazeTracker(&cfg)
}

func TestGazeSaccadeClosesFixation(t *testing.T) {
	g := newTestGazeTracker()

	// Dwell at the origin long enough to qualify as a fixation.
	for i := 0; i <= 5; i++ {
		g.Observe(0.0, 0.0, float64(i)*0.1)
	}
	// A large jump ends the dwell and records one saccade.
	g.Observe(0.5, 0.5, 0.6)

	if got := g.FixationCount(); got != 1 {
		t.Errorf("FixationCount() = %d, want 1", got)
	}
	if got := g.SaccadeCount(); got != 1 {
		t.Errorf("SaccadeCount() = %d, want 1", got)
	}
	if got := g.AverageFixationDuration(); !almostEqual(got, 0.6, 1e-9) {
		t.Errorf("AverageFixationDuration() = %v, want 0.6", got)
	}
}

func TestGazeShortDwellDiscarded(t *testing.T) {
	g := newTestGazeTracker()
	g.Observe(0.0, 0.0, 0.0)
	g.Observe(0.0, 0.0, 0.05)
	g.Observe(0.5, 0.5, 0.1) // jump before MinFixationDuration elapsed

	if got := g.FixationCount(); got != 0 {
		t.Errorf("FixationCount() = %d, want 0", got)
	}
	if got := g.SaccadeCount(); got != 1 {
		t.Errorf("SaccadeCount() = %d, want 1", got)
	}
}

func TestGazeDriftStaysOneFixation(t *testing.T) {
	g := newTestGazeTracker()
	// Sub-threshold drift never opens a new fixation or saccade.
	for i := 0; i <= 10; i++ {
		g.Observe(float64(i)*0.01, 0.0, float64(i)*0.1)
	}
	if got := g.SaccadeCount(); got != 0 {
		t.Errorf("SaccadeCount() = %d, want 0", got)
	}
	if got := g.FixationCount(); got != 0 {
		t.Errorf("FixationCount() = %d, want 0 while the dwell is still open", got)
	}
}

func TestGazePattern(t *testing.T) {
	t.Run("unknown before samples", func(t *testing.T) {
		g := newTestGazeTracker()
		if got := g.Pattern(); got != GazePatternUnknown {
			t.Errorf("Pattern() = %q, want %q", got, GazePatternUnknown)
		}
	})
	t.Run("steady gaze is focused", func(t *testing.T) {
		g := newTestGazeTracker()
		for i := 0; i < 20; i++ {
			g.Observe(0.1, 0.1, float64(i)*0.1)
		}
		if got := g.Pattern(); got != GazePatternFocused {
			t.Errorf("Pattern() = %q, want %q", got, GazePatternFocused)
		}
	})
	t.Run("wide scanning is exploratory", func(t *testing.T) {
		g := newTestGazeTracker()
		corners := [][2]float64{{-1, -1}, {1, -1}, {1, 1}, {-1, 1}}
		for i := 0; i < 20; i++ {
			c := corners[i%len(corners)]
			g.Observe(c[0], c[1], float64(i)*0.1)
		}
		if got := g.Pattern(); got != GazePatternExploratory {
			t.Errorf("Pattern() = %q, want %q", got, GazePatternExploratory)
		}
	})
}
