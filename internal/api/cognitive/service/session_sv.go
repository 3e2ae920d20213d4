package cognitiveService

import (
	"AcawsGolang/internal/api/cognitive"
	"AcawsGolang/internal/entity"
	pkgCognition "AcawsGolang/pkg/cognition"

	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

func (s *cognitiveService) GetState(ctx context.Context, sessionID string) (cognitive.StateResponse, error) {
	if entry, ok := s.lookup(sessionID); ok {
		entry.mu.Lock()
		state, analyzed := entry.analyzer.State()
		label, confidence := entry.analyzer.Classification()
		frames := entry.analyzer.FrameCount()
		summary := entry.analyzer.LastSummary()
		entry.mu.Unlock()

		if !analyzed {
			return cognitive.StateResponse{
				SessionID: sessionID,
				State:     pkgCognition.StateUnknown,
			}, nil
		}

		return cognitive.StateResponse{
			SessionID:   sessionID,
			State:       label,
			Confidence:  confidence,
			Cognitive:   state,
			FrameCount:  frames,
			LastSummary: summary,
		}, nil
	}

	// Session not in memory. The cached summary may still be live in Redis,
	// and the last persisted snapshot covers a restarted server.
	var cached *entity.AnalysisSummary
	if s.redisServer != nil {
		if payload, err := s.redisServer.GetSessionState(ctx, sessionID); err == nil && payload != "" {
			var summary entity.AnalysisSummary
			if err := jsoniter.UnmarshalFromString(payload, &summary); err == nil {
				cached = &summary
			}
		}
	}

	repoClient, err := s.cognitiveRepo.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"session_id": sessionID,
			"error":      err.Error(),
		}).Error("Failed to create repository client for state read")
		return cognitive.StateResponse{}, err
	}

	record, err := repoClient.Analysis.GetLatestSnapshot(ctx, sessionID)
	if err != nil {
		return cognitive.StateResponse{}, err
	}

	label, confidence := pkgCognition.ClassifyState(record.AttentionScore/100, record.EngagementLevel/100)

	return cognitive.StateResponse{
		SessionID:   sessionID,
		State:       label,
		Confidence:  confidence,
		LastSummary: cached,
		Cognitive: entity.CognitiveState{
			AttentionScore:    record.AttentionScore,
			CognitiveLoad:     record.CognitiveLoad,
			EngagementLevel:   record.EngagementLevel,
			EmotionalState:    record.EmotionalState,
			DrowsinessLevel:   record.DrowsinessLevel,
			LearningReadiness: record.LearningReady,
			ConfidenceScore:   record.ConfidenceScore,
		},
	}, nil
}

func (s *cognitiveService) CloseSession(ctx context.Context, sessionID string) (cognitive.SessionClosedResponse, error) {
	s.mu.Lock()
	entry, ok := s.sessions[sessionID]
	if ok {
		delete(s.sessions, sessionID)
	}
	s.mu.Unlock()

	if !ok {
		return cognitive.SessionClosedResponse{}, cognitive.ErrSessionNotFound
	}

	entry.mu.Lock()
	state, analyzed := entry.analyzer.State()
	summary := entry.analyzer.LastSummary()
	frames := entry.analyzer.FrameCount()
	userID := entry.userID
	entry.mu.Unlock()

	if analyzed && summary != nil {
		s.persistSnapshot(ctx, sessionID, userID, "close", summary, state)
	}

	if err := s.redisServer.DeleteSessionState(ctx, sessionID); err != nil {
		s.log.WithFields(logrus.Fields{
			"session_id": sessionID,
			"error":      err.Error(),
		}).Warn("Failed to drop cached state for closed session")
	}

	s.log.WithFields(logrus.Fields{
		"session_id": sessionID,
		"frames":     frames,
	}).Info("Closed learner session")

	return cognitive.SessionClosedResponse{
		SessionID: sessionID,
		Frames:    frames,
	}, nil
}
