package performanceService

import (
	"AcawsGolang/internal/api/performance"

	"golang.org/x/net/context"
)

func (s *performanceService) Realtime(ctx context.Context, sessionID string) (performance.RealtimeResponse, error) {
	t, ok := s.lookup(sessionID)
	if !ok {
		return performance.RealtimeResponse{}, performance.ErrTrackerUnavailable
	}

	return performance.RealtimeResponse{
		SessionID: sessionID,
		Report:    t.Realtime(),
	}, nil
}

func (s *performanceService) Insights(ctx context.Context, sessionID string) (performance.InsightsResponse, error) {
	t, ok := s.lookup(sessionID)
	if !ok {
		return performance.InsightsResponse{}, performance.ErrTrackerUnavailable
	}

	return performance.InsightsResponse{
		SessionID: sessionID,
		Report:    t.Insights(),
	}, nil
}

func (s *performanceService) Predict(ctx context.Context, sessionID string, hoursAhead float64) (performance.PredictionResponse, error) {
	t, ok := s.lookup(sessionID)
	if !ok {
		return performance.PredictionResponse{}, performance.ErrTrackerUnavailable
	}

	if hoursAhead <= 0 {
		hoursAhead = 1
	}

	return performance.PredictionResponse{
		SessionID:  sessionID,
		HoursAhead: hoursAhead,
		Prediction: t.Predict(hoursAhead),
	}, nil
}
