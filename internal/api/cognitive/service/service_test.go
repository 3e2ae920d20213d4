package cognitiveService

import (
	"errors"
	"fmt"
	"image"
	"mime/multipart"
	"testing"
	"time"

	"AcawsGolang/internal/api/cognitive"
	cognitiveRepository "AcawsGolang/internal/api/cognitive/repository"
	"AcawsGolang/internal/entity"
	pkgCognition "AcawsGolang/pkg/cognition"
	landmarkPkg "AcawsGolang/pkg/landmark"

	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

type stubAnalysisStore struct {
	saved     []entity.AnalysisRecord
	latest    entity.AnalysisRecord
	latestErr error
	deleted   []string
}

func (s *stubAnalysisStore) SaveSnapshot(_ context.Context, record entity.AnalysisRecord) error {
	s.saved = append(s.saved, record)
	return nil
}

func (s *stubAnalysisStore) GetSnapshotsBySession(_ context.Context, _ string, _ int) ([]entity.AnalysisRecord, error) {
	return nil, nil
}

func (s *stubAnalysisStore) GetLatestSnapshot(_ context.Context, _ string) (entity.AnalysisRecord, error) {
	if s.latestErr != nil {
		return entity.AnalysisRecord{}, s.latestErr
	}
	return s.latest, nil
}

func (s *stubAnalysisStore) DeleteBySession(_ context.Context, sessionID string) error {
	s.deleted = append(s.deleted, sessionID)
	return nil
}

type stubRepository struct {
	analysis *stubAnalysisStore
}

func (r *stubRepository) NewClient(_ bool) (cognitiveRepository.Client, error) {
	return cognitiveRepository.Client{
		Analysis: r.analysis,
		Commit:   func() error { return nil },
		Rollback: func() error { return nil },
	}, nil
}

type stubRedis struct {
	states  map[string]string
	deletes []string
	touches []string
}

func newStubRedis() *stubRedis {
	return &stubRedis{states: make(map[string]string)}
}

func (s *stubRedis) SetSessionState(_ context.Context, sessionID, payload string, _ time.Duration) error {
	s.states[sessionID] = payload
	return nil
}

func (s *stubRedis) GetSessionState(_ context.Context, sessionID string) (string, error) {
	payload, ok := s.states[sessionID]
	if !ok {
		return "", errors.New("not found")
	}
	return payload, nil
}

func (s *stubRedis) DeleteSessionState(_ context.Context, sessionID string) error {
	s.deletes = append(s.deletes, sessionID)
	delete(s.states, sessionID)
	return nil
}

func (s *stubRedis) TouchSessionActivity(_ context.Context, sessionID string, _ time.Duration) error {
	s.touches = append(s.touches, sessionID)
	return nil
}

type stubUtils struct {
	count int
}

func (s *stubUtils) NewULIDFromTimestamp(_ time.Time) (string, error) {
	s.count++
	return fmt.Sprintf("test-ulid-%d", s.count), nil
}

func (s *stubUtils) ValidateImageFile(_ *multipart.FileHeader) error { return nil }

func (s *stubUtils) DecodeGrayFrame(_ []byte) (*image.Gray, error) {
	return image.NewGray(image.Rect(0, 0, 8, 8)), nil
}

type stubLandmarkClient struct {
	result *landmarkPkg.DetectionResult
	err    error
}

func (s *stubLandmarkClient) Detect(_ []byte) (*landmarkPkg.DetectionResult, error) {
	return s.result, s.err
}

func (s *stubLandmarkClient) IsConnected() bool { return true }
func (s *stubLandmarkClient) Reconnect() error  { return nil }
func (s *stubLandmarkClient) Close()            {}

func newTestService(repo *stubAnalysisStore, rds *stubRedis, lm landmarkPkg.IClient) ICognitiveService {
	logger := logrus.New()
	logger.SetLevel(logrus.PanicLevel)
	return NewCognitiveService(logger, &stubRepository{analysis: repo}, rds, lm, &stubUtils{})
}

func TestAnalyzeCreatesSessionAndCachesState(t *testing.T) {
	repo := &stubAnalysisStore{latestErr: cognitive.ErrSessionNotFound}
	rds := newStubRedis()
	svc := newTestService(repo, rds, nil)
	defer svc.Shutdown()

	summary, err := svc.Analyze(context.Background(), cognitive.AnalyzeRequest{
		SessionID: "session-a",
	})
	if err != nil {
		t.Fatalf("Analyze() error = %v", err)
	}
	if summary == nil {
		t.Fatal("Analyze() returned nil summary")
	}
	if summary.CameraEnabled {
		t.Error("no-signal summary should report camera disabled")
	}
	if _, ok := rds.states["session-a"]; !ok {
		t.Error("expected session state to be cached")
	}

	state, err := svc.GetState(context.Background(), "session-a")
	if err != nil {
		t.Fatalf("GetState() error = %v", err)
	}
	if state.State != pkgCognition.StateUnknown {
		t.Errorf("state = %q, want %q before a face is seen", state.State, pkgCognition.StateUnknown)
	}
}

func TestSessionIsolation(t *testing.T) {
	repo := &stubAnalysisStore{latestErr: cognitive.ErrSessionNotFound}
	rds := newStubRedis()
	svc := newTestService(repo, rds, nil)
	defer svc.Shutdown()

	for _, id := range []string{"learner-1", "learner-2"} {
		if _, err := svc.Analyze(context.Background(), cognitive.AnalyzeRequest{SessionID: id}); err != nil {
			t.Fatalf("Analyze(%s) error = %v", id, err)
		}
	}

	if _, err := svc.CloseSession(context.Background(), "learner-1"); err != nil {
		t.Fatalf("CloseSession(learner-1) error = %v", err)
	}

	// learner-2 must survive the close of learner-1.
	if _, err := svc.GetState(context.Background(), "learner-2"); err != nil {
		t.Fatalf("GetState(learner-2) error = %v", err)
	}

	// learner-1 falls through to the repository, which has no snapshot.
	if _, err := svc.GetState(context.Background(), "learner-1"); !errors.Is(err, cognitive.ErrSessionNotFound) {
		t.Errorf("GetState(learner-1) error = %v, want ErrSessionNotFound", err)
	}
}

func TestCloseSession(t *testing.T) {
	repo := &stubAnalysisStore{latestErr: cognitive.ErrSessionNotFound}
	rds := newStubRedis()
	svc := newTestService(repo, rds, nil)
	defer svc.Shutdown()

	if _, err := svc.CloseSession(context.Background(), "ghost"); !errors.Is(err, cognitive.ErrSessionNotFound) {
		t.Errorf("CloseSession(ghost) error = %v, want ErrSessionNotFound", err)
	}

	if _, err := svc.Analyze(context.Background(), cognitive.AnalyzeRequest{SessionID: "s1"}); err != nil {
		t.Fatalf("Analyze() error = %v", err)
	}

	resp, err := svc.CloseSession(context.Background(), "s1")
	if err != nil {
		t.Fatalf("CloseSession() error = %v", err)
	}
	if resp.SessionID != "s1" {
		t.Errorf("SessionID = %q, want s1", resp.SessionID)
	}
	if len(rds.deletes) != 1 || rds.deletes[0] != "s1" {
		t.Errorf("redis deletes = %v, want [s1]", rds.deletes)
	}

	if _, err := svc.CloseSession(context.Background(), "s1"); !errors.Is(err, cognitive.ErrSessionNotFound) {
		t.Errorf("second CloseSession error = %v, want ErrSessionNotFound", err)
	}
}

func TestGetStateSnapshotFallback(t *testing.T) {
	repo := &stubAnalysisStore{
		latest: entity.AnalysisRecord{
			SessionID:       "old-session",
			AttentionScore:  90,
			EngagementLevel: 85,
			CognitiveLoad:   30,
			EmotionalState:  "happy",
		},
	}
	rds := newStubRedis()
	svc := newTestService(repo, rds, nil)
	defer svc.Shutdown()

	state, err := svc.GetState(context.Background(), "old-session")
	if err != nil {
		t.Fatalf("GetState() error = %v", err)
	}
	if state.State != pkgCognition.StateFocused {
		t.Errorf("state = %q, want %q", state.State, pkgCognition.StateFocused)
	}
	if state.Cognitive.AttentionScore != 90 {
		t.Errorf("attention = %v, want 90", state.Cognitive.AttentionScore)
	}
	if state.Cognitive.EmotionalState != "happy" {
		t.Errorf("emotional state = %q, want happy", state.Cognitive.EmotionalState)
	}
}

func TestAnalyzeFrameDegradesWithoutDetector(t *testing.T) {
	repo := &stubAnalysisStore{latestErr: cognitive.ErrSessionNotFound}

	tests := []struct {
		name   string
		client landmarkPkg.IClient
	}{
		{"nil client", nil},
		{"detector error", &stubLandmarkClient{err: errors.New("connection refused")}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := newTestService(repo, newStubRedis(), tt.client)
			defer svc.Shutdown()

			summary, err := svc.AnalyzeFrame(context.Background(), "s1", []byte("jpeg"))
			if err != nil {
				t.Fatalf("AnalyzeFrame() error = %v, want graceful no-signal result", err)
			}
			if summary == nil {
				t.Fatal("AnalyzeFrame() returned nil summary")
			}
			if summary.CameraEnabled {
				t.Error("summary without a detector should report camera disabled")
			}
		})
	}
}

func TestTouchSessionRefreshesActivity(t *testing.T) {
	repo := &stubAnalysisStore{latestErr: cognitive.ErrSessionNotFound}
	rds := newStubRedis()
	svc := newTestService(repo, rds, nil)
	defer svc.Shutdown()

	if _, err := svc.Analyze(context.Background(), cognitive.AnalyzeRequest{SessionID: "s1"}); err != nil {
		t.Fatalf("Analyze() error = %v", err)
	}

	svc.TouchSession("s1")
	if len(rds.touches) != 1 || rds.touches[0] != "s1" {
		t.Errorf("redis touches = %v, want [s1]", rds.touches)
	}

	// Touching an unknown session must not create one or hit redis.
	svc.TouchSession("ghost")
	if len(rds.touches) != 1 {
		t.Errorf("redis touches = %v, want only [s1]", rds.touches)
	}
}

func TestSessionsListsArena(t *testing.T) {
	repo := &stubAnalysisStore{latestErr: cognitive.ErrSessionNotFound}
	svc := newTestService(repo, newStubRedis(), nil)
	defer svc.Shutdown()

	if len(svc.Sessions()) != 0 {
		t.Error("expected empty arena before any analysis")
	}

	for _, id := range []string{"learner-1", "learner-2"} {
		if _, err := svc.Analyze(context.Background(), cognitive.AnalyzeRequest{SessionID: id}); err != nil {
			t.Fatalf("Analyze(%s) error = %v", id, err)
		}
	}

	sessions := svc.Sessions()
	if len(sessions) != 2 {
		t.Fatalf("len(Sessions()) = %d, want 2", len(sessions))
	}

	seen := make(map[string]entity.LearnerSession)
	for _, s := range sessions {
		seen[s.ID] = s
	}
	for _, id := range []string{"learner-1", "learner-2"} {
		s, ok := seen[id]
		if !ok {
			t.Fatalf("Sessions() missing %q", id)
		}
		if s.ConnectedAt.IsZero() || s.LastActivity.IsZero() {
			t.Errorf("session %q has zero timestamps", id)
		}
	}
}

func TestAnalyzeFrameNoFace(t *testing.T) {
	repo := &stubAnalysisStore{latestErr: cognitive.ErrSessionNotFound}
	client := &stubLandmarkClient{result: &landmarkPkg.DetectionResult{FaceDetected: false}}
	svc := newTestService(repo, newStubRedis(), client)
	defer svc.Shutdown()

	summary, err := svc.AnalyzeFrame(context.Background(), "s1", []byte("jpeg"))
	if err != nil {
		t.Fatalf("AnalyzeFrame() error = %v", err)
	}
	if summary.CameraEnabled {
		t.Error("summary without a face should report camera disabled")
	}
}
