package cognition

// closureSample is one per-frame eye state observation. The raw stream feeds
// PERCLOS; debounced blink events feed the blink rate.
type closureSample struct {
	Timestamp float64
	Closed    bool
}

// BlinkDetector turns a raw eye-aspect-ratio stream into discrete blink
// events. A closure only counts once per reopen when RequireReopen is set,
// and never more often than the cooldown allows, so a long eye closure is a
// single blink rather than one per frame.
type BlinkDetector struct {
	cfg *Config

	closures   *Ring[closureSample]
	events     *Ring[float64]
	eyesClosed bool
	lastBlink  float64
	hasBlink   bool
}

func NewBlinkDetector(cfg *Config) *BlinkDetector {
	return &BlinkDetector{
		cfg:      cfg,
		closures: NewRing[closureSample](cfg.BlinkHistorySize),
		events:   NewRing[float64](cfg.BlinkHistorySize),
	}
}

// Observe records one frame and reports whether it completed a blink event.
func (d *BlinkDetector) Observe(ear, timestamp float64) bool {
	closed := ear < d.cfg.BlinkClosureThreshold
	d.closures.Push(closureSample{Timestamp: timestamp, Closed: closed})

	if !closed {
		d.eyesClosed = false
		return false
	}
	if d.cfg.RequireReopen && d.eyesClosed {
		return false
	}
	d.eyesClosed = true
	if d.hasBlink && timestamp-d.lastBlink < d.cfg.BlinkCooldownSeconds {
		return false
	}
	d.lastBlink = timestamp
	d.hasBlink = true
	d.events.Push(timestamp)
	return true
}

// Rate returns blink events per minute, counted over the trailing 60 seconds.
func (d *BlinkDetector) Rate(now float64) float64 {
	var count int
	for _, ts := range d.events.Items() {
		if now-ts <= 60 {
			count++
		}
	}
	return float64(count)
}

// Perclos is the fraction of the last n frames with eyes closed.
func (d *BlinkDetector) Perclos(n int) float64 {
	window := d.closures.Tail(n)
	if len(window) == 0 {
		return 0
	}
	var closed int
	for _, s := range window {
		if s.Closed {
			closed++
		}
	}
	return float64(closed) / float64(len(window))
}

// ClosureCount is the number of buffered per-frame observations.
func (d *BlinkDetector) ClosureCount() int { return d.closures.Len() }
