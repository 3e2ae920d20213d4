package performance

import "math"

// Prediction extrapolates the efficiency trend forward in time.
type Prediction struct {
	Status         string  `json:"status"`
	HoursAhead     float64 `json:"hours_ahead"`
	PredictedScore float64 `json:"predicted_score"`
	Confidence     float64 `json:"confidence"`
	Trend          string  `json:"trend"`
	DataPoints     int     `json:"data_points"`
}

// Predict projects learning efficiency hoursAhead hours out by linear
// extrapolation of the recent slope, bounded to [0, 1]. Confidence scales
// with how much of the prediction window is filled.
func (t *Tracker) Predict(hoursAhead float64) Prediction {
	t.mu.Lock()
	defer t.mu.Unlock()

	points := t.efficiency.Len()
	if points < t.cfg.MinSamples {
		return Prediction{
			Status:     StatusInsufficient,
			HoursAhead: hoursAhead,
			DataPoints: points,
		}
	}

	current := t.efficiency.Mean(t.cfg.TrendWindow)
	slope := t.efficiency.Slope(t.cfg.TrendWindow)
	predicted := clampUnit(current + hoursAhead*3600*slope)

	return Prediction{
		Status:         StatusOK,
		HoursAhead:     hoursAhead,
		PredictedScore: predicted,
		Confidence:     math.Min(1, float64(points)/t.cfg.PredictionWindow),
		Trend:          t.trendLocked(),
		DataPoints:     points,
	}
}
