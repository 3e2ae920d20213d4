package performance

import (
	perfPkg "AcawsGolang/pkg/performance"
)

type SubmitMetricRequest struct {
	SessionID string  `json:"session_id" validate:"required"`
	Type      string  `json:"type" validate:"required,oneof=response_time accuracy task_completion"`
	Value     float64 `json:"value"`
	Timestamp float64 `json:"timestamp"`
}

type SubmitMetricResponse struct {
	SessionID  string `json:"session_id"`
	Type       string `json:"type"`
	DataPoints int    `json:"data_points"`
}

type RealtimeResponse struct {
	SessionID string                 `json:"session_id"`
	Report    perfPkg.RealtimeReport `json:"report"`
}

type InsightsResponse struct {
	SessionID string                 `json:"session_id"`
	Report    perfPkg.InsightsReport `json:"report"`
}

type PredictionResponse struct {
	SessionID  string             `json:"session_id"`
	HoursAhead float64            `json:"hours_ahead"`
	Prediction perfPkg.Prediction `json:"prediction"`
}
