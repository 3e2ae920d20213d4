package cognitiveHandler

import (
	cognitiveService "AcawsGolang/internal/api/cognitive/service"
	"AcawsGolang/internal/middleware"
	"AcawsGolang/pkg/utils"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"
	"github.com/sirupsen/logrus"
)

type CognitiveHandler struct {
	log              *logrus.Logger
	validator        *validator.Validate
	middleware       middleware.Middleware
	cognitiveService cognitiveService.ICognitiveService
	utils            utils.IUtils
}

func New(
	log *logrus.Logger,
	validate *validator.Validate,
	middleware middleware.Middleware,
	cs cognitiveService.ICognitiveService,
	utils utils.IUtils,
) *CognitiveHandler {
	return &CognitiveHandler{
		log:              log,
		validator:        validate,
		middleware:       middleware,
		cognitiveService: cs,
		utils:            utils,
	}
}

func (h *CognitiveHandler) Start(srv fiber.Router) {
	wsMiddleware := func(c *fiber.Ctx) error {
		if websocket.IsWebSocketUpgrade(c) {
			return c.Next()
		}
		return fiber.ErrUpgradeRequired
	}

	cognitive := srv.Group("/cognitive")

	cognitive.Use("/ws", wsMiddleware)
	cognitive.Get("/ws", websocket.New(h.handleWebSocket))

	cognitive.Post("/analyze", h.middleware.NewTokenMiddleware, h.Analyze)
	cognitive.Post("/frame", h.middleware.NewTokenMiddleware, h.AnalyzeFrameUpload)
	cognitive.Get("/sessions", h.middleware.NewTokenMiddleware, h.ListSessions)
	cognitive.Get("/state/:session_id", h.middleware.NewTokenMiddleware, h.GetState)
	cognitive.Delete("/session/:session_id", h.middleware.NewTokenMiddleware, h.DeleteSession)
}
