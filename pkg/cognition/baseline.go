package cognition

// Calibrator learns a per-learner resting value for one metric. The baseline
// only exists after BaselineMinSamples observations and then tracks the
// window mean with an exponential blend so one noisy burst cannot yank it.
type Calibrator struct {
	cfg    *Config
	window *Ring[float64]
	value  float64
	primed bool
}

func NewCalibrator(cfg *Config) *Calibrator {
	return &Calibrator{cfg: cfg, window: NewRing[float64](cfg.BaselineWindowSize)}
}

func (c *Calibrator) Observe(v float64) {
	c.window.Push(v)
	if c.window.Len() < c.cfg.BaselineMinSamples {
		return
	}
	var sum float64
	for _, s := range c.window.Items() {
		sum += s
	}
	mean := sum / float64(c.window.Len())
	if !c.primed {
		c.value = mean
		c.primed = true
		return
	}
	c.value = (1-c.cfg.BaselineAlpha)*c.value + c.cfg.BaselineAlpha*mean
}

// Baseline returns the calibrated value, or false until enough samples exist.
func (c *Calibrator) Baseline() (float64, bool) {
	return c.value, c.primed
}

// Deviation is observed minus baseline; zero until the baseline is primed.
func (c *Calibrator) Deviation(v float64) float64 {
	if !c.primed {
		return 0
	}
	return v - c.value
}
