package cognitiveService

import (
	"AcawsGolang/internal/api/cognitive"
	"AcawsGolang/internal/entity"
	pkgCognition "AcawsGolang/pkg/cognition"
	"encoding/base64"
	"image"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

func (s *cognitiveService) Analyze(ctx context.Context, req cognitive.AnalyzeRequest) (*entity.AnalysisSummary, error) {
	if len(req.Landmarks) == 0 && req.Frame != "" {
		frame, err := base64.StdEncoding.DecodeString(req.Frame)
		if err != nil {
			return nil, cognitive.ErrInvalidLandmarkPayload
		}
		return s.AnalyzeFrame(ctx, req.SessionID, frame)
	}

	return s.analyze(ctx, req.SessionID, "", req.Landmarks, nil, req.Timestamp, "rest")
}

// AnalyzeFrame runs server-side landmark detection on a raw camera frame. A
// missing or failing detector degrades to the no-signal summary rather than
// erroring, so a learner keeps receiving state while the detector is down.
func (s *cognitiveService) AnalyzeFrame(ctx context.Context, sessionID string, frame []byte) (*entity.AnalysisSummary, error) {
	if s.landmarkClient == nil {
		return s.analyze(ctx, sessionID, "", nil, nil, 0, "frame")
	}

	result, err := s.landmarkClient.Detect(frame)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"session_id": sessionID,
			"error":      err.Error(),
		}).Warn("Landmark detector call failed, degrading to no-signal")
		return s.analyze(ctx, sessionID, "", nil, nil, 0, "frame")
	}

	var landmarks []entity.Landmark
	var gray *image.Gray
	if result.FaceDetected {
		landmarks = result.Landmarks
		gray, err = s.utils.DecodeGrayFrame(frame)
		if err != nil {
			s.log.WithFields(logrus.Fields{
				"session_id": sessionID,
				"error":      err.Error(),
			}).Warn("Failed to decode frame for pupil localization")
		}
	}

	return s.analyze(ctx, sessionID, "", landmarks, gray, 0, "frame")
}

func (s *cognitiveService) analyze(ctx context.Context, sessionID, userID string, landmarks []entity.Landmark, gray *image.Gray, timestamp float64, source string) (*entity.AnalysisSummary, error) {
	if timestamp == 0 {
		timestamp = float64(time.Now().UnixNano()) / 1e9
	}

	entry := s.session(sessionID, userID)

	entry.mu.Lock()
	if gray != nil {
		if eye := pkgCognition.CropEyeRegion(gray, landmarks); eye != nil {
			entry.analyzer.ObservePupil(eye)
		}
	}
	summary := entry.analyzer.Analyze(landmarks, timestamp)
	entry.lastActivity = time.Now()
	frames := entry.analyzer.FrameCount()
	state, _ := entry.analyzer.State()
	entry.mu.Unlock()

	s.cacheState(ctx, sessionID, summary)

	if summary.CameraEnabled && frames%snapshotEveryFrames == 1 {
		s.persistSnapshot(ctx, sessionID, entry.userID, source, summary, state)
	}

	return summary, nil
}

// cacheState stores the latest summary in Redis so state reads and session
// recovery never block on the analyzer.
func (s *cognitiveService) cacheState(ctx context.Context, sessionID string, summary *entity.AnalysisSummary) {
	if s.redisServer == nil {
		return
	}

	payload, err := jsoniter.MarshalToString(summary)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"session_id": sessionID,
			"error":      err.Error(),
		}).Warn("Failed to marshal summary for cache")
		return
	}

	if err := s.redisServer.SetSessionState(ctx, sessionID, payload, stateCacheTTL); err != nil {
		s.log.WithFields(logrus.Fields{
			"session_id": sessionID,
			"error":      err.Error(),
		}).Warn("Failed to cache session state")
	}
}

func (s *cognitiveService) persistSnapshot(ctx context.Context, sessionID, userID, source string, summary *entity.AnalysisSummary, state entity.CognitiveState) {
	repoClient, err := s.cognitiveRepo.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"session_id": sessionID,
			"error":      err.Error(),
		}).Error("Failed to create repository client for snapshot")
		return
	}

	id, err := s.utils.NewULIDFromTimestamp(time.Now())
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"session_id": sessionID,
			"error":      err.Error(),
		}).Error("Failed to generate snapshot ID")
		return
	}

	record := entity.AnalysisRecord{
		ID:              id,
		SessionID:       sessionID,
		UserID:          userID,
		Source:          source,
		CameraEnabled:   summary.CameraEnabled,
		AttentionScore:  state.AttentionScore,
		CognitiveLoad:   state.CognitiveLoad,
		EngagementLevel: state.EngagementLevel,
		EmotionalState:  state.EmotionalState,
		DrowsinessLevel: state.DrowsinessLevel,
		LearningReady:   state.LearningReadiness,
		ConfidenceScore: state.ConfidenceScore,
	}

	if err := repoClient.Analysis.SaveSnapshot(ctx, record); err != nil {
		s.log.WithFields(logrus.Fields{
			"session_id": sessionID,
			"error":      err.Error(),
		}).Error("Failed to persist analysis snapshot")
	}
}
