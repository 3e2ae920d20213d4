package cognitiveService

import (
	"AcawsGolang/internal/api/cognitive"
	cognitiveRepository "AcawsGolang/internal/api/cognitive/repository"
	"AcawsGolang/internal/entity"
	"AcawsGolang/pkg/cognition"
	landmarkPkg "AcawsGolang/pkg/landmark"
	"AcawsGolang/pkg/redis"
	"AcawsGolang/pkg/utils"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

const (
	sessionIdleTimeout  = 300 * time.Second
	janitorInterval     = 60 * time.Second
	stateCacheTTL       = 10 * time.Minute
	snapshotEveryFrames = 30
)

type ICognitiveService interface {
	Analyze(ctx context.Context, req cognitive.AnalyzeRequest) (*entity.AnalysisSummary, error)
	AnalyzeFrame(ctx context.Context, sessionID string, frame []byte) (*entity.AnalysisSummary, error)
	GetState(ctx context.Context, sessionID string) (cognitive.StateResponse, error)
	CloseSession(ctx context.Context, sessionID string) (cognitive.SessionClosedResponse, error)
	Sessions() []entity.LearnerSession
	TouchSession(sessionID string)
	Shutdown()
}

// learnerSession pairs one analyzer with its activity bookkeeping. The
// session mutex serializes frames; the arena mutex only guards the map.
type learnerSession struct {
	mu           sync.Mutex
	analyzer     *cognition.Analyzer
	userID       string
	connectedAt  time.Time
	lastActivity time.Time
}

type cognitiveService struct {
	log            *logrus.Logger
	cognitiveRepo  cognitiveRepository.Repository
	redisServer    redis.IRedis
	landmarkClient landmarkPkg.IClient
	utils          utils.IUtils
	cfg            cognition.Config

	mu       sync.Mutex
	sessions map[string]*learnerSession
	stop     chan struct{}
	stopOnce sync.Once
}

func NewCognitiveService(
	log *logrus.Logger,
	cr cognitiveRepository.Repository,
	redisServer redis.IRedis,
	landmarkClient landmarkPkg.IClient,
	utils utils.IUtils,
) ICognitiveService {
	s := &cognitiveService{
		log:            log,
		cognitiveRepo:  cr,
		redisServer:    redisServer,
		landmarkClient: landmarkClient,
		utils:          utils,
		cfg:            cognition.DefaultConfig(),
		sessions:       make(map[string]*learnerSession),
		stop:           make(chan struct{}),
	}

	go s.janitor()

	return s
}

// session returns the arena entry for sessionID, creating it lazily.
func (s *cognitiveService) session(sessionID, userID string) *learnerSession {
	s.mu.Lock()
	defer s.mu.Unlock()

	if entry, ok := s.sessions[sessionID]; ok {
		if userID != "" && entry.userID == "" {
			entry.userID = userID
		}
		return entry
	}

	now := time.Now()
	entry := &learnerSession{
		analyzer:     cognition.NewAnalyzer(s.cfg),
		userID:       userID,
		connectedAt:  now,
		lastActivity: now,
	}
	s.sessions[sessionID] = entry

	s.log.WithFields(logrus.Fields{
		"session_id": sessionID,
	}).Info("Created learner session")

	return entry
}

func (s *cognitiveService) lookup(sessionID string) (*learnerSession, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	entry, ok := s.sessions[sessionID]
	return entry, ok
}

// TouchSession refreshes activity without analyzing anything. Used by the
// websocket ping path so an idle but connected learner is not evicted.
func (s *cognitiveService) TouchSession(sessionID string) {
	entry, ok := s.lookup(sessionID)
	if !ok {
		return
	}

	entry.mu.Lock()
	entry.lastActivity = time.Now()
	entry.mu.Unlock()

	if s.redisServer == nil {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	if err := s.redisServer.TouchSessionActivity(ctx, sessionID, stateCacheTTL); err != nil {
		s.log.WithFields(logrus.Fields{
			"session_id": sessionID,
			"error":      err.Error(),
		}).Warn("Failed to refresh session activity key")
	}
}

// Sessions lists the sessions currently held in the arena.
func (s *cognitiveService) Sessions() []entity.LearnerSession {
	s.mu.Lock()
	defer s.mu.Unlock()

	sessions := make([]entity.LearnerSession, 0, len(s.sessions))
	for id, entry := range s.sessions {
		entry.mu.Lock()
		sessions = append(sessions, entity.LearnerSession{
			ID:           id,
			UserID:       entry.userID,
			ConnectedAt:  entry.connectedAt,
			LastActivity: entry.lastActivity,
			FrameCount:   entry.analyzer.FrameCount(),
		})
		entry.mu.Unlock()
	}

	return sessions
}

// janitor evicts sessions idle past the timeout, persisting their final
// snapshot first so a dropped connection still leaves a record.
func (s *cognitiveService) janitor() {
	ticker := time.NewTicker(janitorInterval)
	defer ticker.Stop()

	for {
		select {
		case <-s.stop:
			return
		case <-ticker.C:
			s.evictIdle()
		}
	}
}

func (s *cognitiveService) evictIdle() {
	cutoff := time.Now().Add(-sessionIdleTimeout)

	s.mu.Lock()
	expired := make(map[string]*learnerSession)
	for id, entry := range s.sessions {
		entry.mu.Lock()
		idle := entry.lastActivity.Before(cutoff)
		entry.mu.Unlock()
		if idle {
			expired[id] = entry
		}
	}
	for id := range expired {
		delete(s.sessions, id)
	}
	s.mu.Unlock()

	for id, entry := range expired {
		s.log.WithFields(logrus.Fields{
			"session_id": id,
		}).Info("Evicting idle learner session")

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)

		entry.mu.Lock()
		state, analyzed := entry.analyzer.State()
		summary := entry.analyzer.LastSummary()
		userID := entry.userID
		entry.mu.Unlock()

		if analyzed && summary != nil {
			s.persistSnapshot(ctx, id, userID, "eviction", summary, state)
		}

		if err := s.redisServer.DeleteSessionState(ctx, id); err != nil {
			s.log.WithFields(logrus.Fields{
				"session_id": id,
				"error":      err.Error(),
			}).Warn("Failed to drop cached state for evicted session")
		}
		cancel()
	}
}

func (s *cognitiveService) Shutdown() {
	s.stopOnce.Do(func() { close(s.stop) })
}
