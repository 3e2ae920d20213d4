package cognitive

import "errors"

var (
	ErrSessionNotFound        = errors.New("learner session not found")
	ErrInvalidLandmarkPayload = errors.New("invalid landmark payload")
	ErrSessionClosed          = errors.New("learner session already closed")
	ErrInternalServerError    = errors.New("internal server error")
)
