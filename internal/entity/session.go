package entity

import "time"

// LearnerSession tracks one learner's realtime analysis session. Engine state
// is keyed by ID and discarded when the session ends or goes idle.
type LearnerSession struct {
	ID           string    `json:"id"`
	UserID       string    `json:"user_id"`
	ConnectedAt  time.Time `json:"connected_at"`
	LastActivity time.Time `json:"last_activity"`
	FrameCount   int64     `json:"frame_count"`
}
