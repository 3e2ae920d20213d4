package performanceHandler

import (
	performanceService "AcawsGolang/internal/api/performance/service"
	"AcawsGolang/internal/middleware"
	"AcawsGolang/pkg/utils"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type PerformanceHandler struct {
	log                *logrus.Logger
	validator          *validator.Validate
	middleware         middleware.Middleware
	performanceService performanceService.IPerformanceService
	utils              utils.IUtils
}

func New(
	log *logrus.Logger,
	validate *validator.Validate,
	middleware middleware.Middleware,
	ps performanceService.IPerformanceService,
	utils utils.IUtils,
) *PerformanceHandler {
	return &PerformanceHandler{
		log:                log,
		validator:          validate,
		middleware:         middleware,
		performanceService: ps,
		utils:              utils,
	}
}

func (h *PerformanceHandler) Start(srv fiber.Router) {
	performance := srv.Group("/performance")

	performance.Post("/metric", h.middleware.NewTokenMiddleware, h.SubmitMetric)
	performance.Get("/realtime/:session_id", h.middleware.NewTokenMiddleware, h.Realtime)
	performance.Get("/insights/:session_id", h.middleware.NewTokenMiddleware, h.Insights)
	performance.Get("/prediction/:session_id", h.middleware.NewTokenMiddleware, h.Prediction)
}
