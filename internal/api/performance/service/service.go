package performanceService

import (
	"AcawsGolang/internal/api/performance"
	performanceRepository "AcawsGolang/internal/api/performance/repository"
	perfPkg "AcawsGolang/pkg/performance"
	"AcawsGolang/pkg/utils"
	"sync"

	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

type IPerformanceService interface {
	RecordMetric(ctx context.Context, req performance.SubmitMetricRequest) (performance.SubmitMetricResponse, error)
	Realtime(ctx context.Context, sessionID string) (performance.RealtimeResponse, error)
	Insights(ctx context.Context, sessionID string) (performance.InsightsResponse, error)
	Predict(ctx context.Context, sessionID string, hoursAhead float64) (performance.PredictionResponse, error)
}

type performanceService struct {
	log             *logrus.Logger
	performanceRepo performanceRepository.Repository
	utils           utils.IUtils
	cfg             perfPkg.Config

	mu       sync.Mutex
	trackers map[string]*perfPkg.Tracker
}

func NewPerformanceService(
	log *logrus.Logger,
	pr performanceRepository.Repository,
	utils utils.IUtils,
) IPerformanceService {
	return &performanceService{
		log:             log,
		performanceRepo: pr,
		utils:           utils,
		cfg:             perfPkg.DefaultConfig(),
		trackers:        make(map[string]*perfPkg.Tracker),
	}
}

// tracker returns the per-session tracker, creating it lazily.
func (s *performanceService) tracker(sessionID string) *perfPkg.Tracker {
	s.mu.Lock()
	defer s.mu.Unlock()

	if t, ok := s.trackers[sessionID]; ok {
		return t
	}

	t := perfPkg.NewTracker(s.cfg)
	s.trackers[sessionID] = t

	s.log.WithFields(logrus.Fields{
		"session_id": sessionID,
	}).Info("Created performance tracker")

	return t
}

func (s *performanceService) lookup(sessionID string) (*perfPkg.Tracker, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	t, ok := s.trackers[sessionID]
	return t, ok
}
