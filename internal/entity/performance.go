package entity

import "time"

type PerformanceMetricType string

const (
	PerformanceMetricResponseTime   PerformanceMetricType = "response_time"
	PerformanceMetricAccuracy       PerformanceMetricType = "accuracy"
	PerformanceMetricTaskCompletion PerformanceMetricType = "task_completion"
)

func IsValidPerformanceMetricType(metricType string) bool {
	switch PerformanceMetricType(metricType) {
	case PerformanceMetricResponseTime, PerformanceMetricAccuracy, PerformanceMetricTaskCompletion:
		return true
	default:
		return false
	}
}

// PerformanceEvent is one externally supplied performance observation
// (a task answer, a response time) tied to a learner session.
type PerformanceEvent struct {
	ID        string    `json:"id"`
	SessionID string    `json:"session_id"`
	UserID    string    `json:"user_id"`
	Type      string    `json:"type"`
	Value     float64   `json:"value"`
	CreatedAt time.Time `json:"created_at"`
}
