package performanceService

import (
	"AcawsGolang/internal/api/performance"
	"AcawsGolang/internal/entity"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

func (s *performanceService) RecordMetric(ctx context.Context, req performance.SubmitMetricRequest) (performance.SubmitMetricResponse, error) {
	if !entity.IsValidPerformanceMetricType(req.Type) {
		return performance.SubmitMetricResponse{}, performance.ErrInvalidMetricType
	}

	timestamp := req.Timestamp
	if timestamp == 0 {
		timestamp = float64(time.Now().UnixNano()) / 1e9
	}

	t := s.tracker(req.SessionID)

	switch entity.PerformanceMetricType(req.Type) {
	case entity.PerformanceMetricResponseTime:
		if req.Value <= 0 {
			return performance.SubmitMetricResponse{}, performance.ErrInvalidMetricValue
		}
		t.RecordResponseTime(req.Value, timestamp)
	case entity.PerformanceMetricAccuracy:
		if req.Value < 0 || req.Value > 1 {
			return performance.SubmitMetricResponse{}, performance.ErrInvalidMetricValue
		}
		t.RecordAccuracy(req.Value, timestamp)
	case entity.PerformanceMetricTaskCompletion:
		if req.Value < 0 || req.Value > 1 {
			return performance.SubmitMetricResponse{}, performance.ErrInvalidMetricValue
		}
		t.RecordCompletion(req.Value, timestamp)
	}

	s.persistEvent(ctx, req)

	return performance.SubmitMetricResponse{
		SessionID:  req.SessionID,
		Type:       req.Type,
		DataPoints: t.DataPoints(),
	}, nil
}

func (s *performanceService) persistEvent(ctx context.Context, req performance.SubmitMetricRequest) {
	repoClient, err := s.performanceRepo.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"session_id": req.SessionID,
			"error":      err.Error(),
		}).Error("Failed to create repository client for performance event")
		return
	}

	id, err := s.utils.NewULIDFromTimestamp(time.Now())
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"session_id": req.SessionID,
			"error":      err.Error(),
		}).Error("Failed to generate performance event ID")
		return
	}

	event := entity.PerformanceEvent{
		ID:        id,
		SessionID: req.SessionID,
		Type:      req.Type,
		Value:     req.Value,
	}

	if err := repoClient.Event.SaveEvent(ctx, event); err != nil {
		s.log.WithFields(logrus.Fields{
			"session_id": req.SessionID,
			"error":      err.Error(),
		}).Error("Failed to persist performance event")
	}
}
