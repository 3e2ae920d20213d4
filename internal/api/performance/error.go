package performance

import "errors"

var (
	ErrInvalidMetricType  = errors.New("invalid performance metric type")
	ErrInvalidMetricValue = errors.New("invalid performance metric value")
	ErrTrackerUnavailable = errors.New("performance tracker unavailable")
)
