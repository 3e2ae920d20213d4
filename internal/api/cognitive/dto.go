package cognitive

import "AcawsGolang/internal/entity"

// AnalyzeRequest carries either a landmark set or a base64 camera frame for
// server-side detection. Landmarks win when both are present.
type AnalyzeRequest struct {
	SessionID     string            `json:"session_id" validate:"required"`
	Landmarks     []entity.Landmark `json:"landmarks"`
	Frame         string            `json:"frame,omitempty"`
	Timestamp     float64           `json:"timestamp"`
	CameraEnabled bool              `json:"camera_enabled"`
}

// StreamMessage is one inbound websocket frame. Type selects the payload:
// "landmarks" carries a landmark set, "frame" carries a base64 camera frame
// for server-side detection, "ping" just refreshes session activity.
type StreamMessage struct {
	Type      string            `json:"type" validate:"required,oneof=landmarks frame ping"`
	SessionID string            `json:"session_id" validate:"required"`
	Landmarks []entity.Landmark `json:"landmarks,omitempty"`
	Frame     string            `json:"frame,omitempty"`
	Timestamp float64           `json:"timestamp"`
}

type StateResponse struct {
	SessionID   string                  `json:"session_id"`
	State       string                  `json:"state"`
	Confidence  float64                 `json:"confidence"`
	Cognitive   entity.CognitiveState   `json:"cognitive_state"`
	FrameCount  int64                   `json:"frame_count"`
	LastSummary *entity.AnalysisSummary `json:"last_summary,omitempty"`
}

type SessionClosedResponse struct {
	SessionID string `json:"session_id"`
	Frames    int64  `json:"frames_analyzed"`
}
