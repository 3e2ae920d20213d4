package config

import (
	"AcawsGolang/database/postgres"
	cognitiveHandler "AcawsGolang/internal/api/cognitive/handler"
	cognitiveRepository "AcawsGolang/internal/api/cognitive/repository"
	cognitiveService "AcawsGolang/internal/api/cognitive/service"
	performanceHandler "AcawsGolang/internal/api/performance/handler"
	performanceRepository "AcawsGolang/internal/api/performance/repository"
	performanceService "AcawsGolang/internal/api/performance/service"
	"AcawsGolang/internal/middleware"
	landmarkPkg "AcawsGolang/pkg/landmark"
	"AcawsGolang/pkg/redis"
	"AcawsGolang/pkg/utils"
	"fmt"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"
	"os"
)

type ServerOption func(*Server) error

type Server struct {
	engine           *fiber.App
	db               *sqlx.DB
	log              *logrus.Logger
	middleware       middleware.Middleware
	validator        *validator.Validate
	utils            utils.IUtils
	handlers         []handler
	redisServer      redis.IRedis
	landmarkClient   landmarkPkg.IClient
	cognitiveService cognitiveService.ICognitiveService
}

type handler interface {
	Start(srv fiber.Router)
}

func NewServer(options ...ServerOption) (*Server, error) {
	server := &Server{}

	for _, option := range options {
		if err := option(server); err != nil {
			return nil, fmt.Errorf("failed to apply option: %w", err)
		}
	}

	if server.engine == nil {
		return nil, fmt.Errorf("fiber app is required")
	}
	if server.log == nil {
		return nil, fmt.Errorf("logger is required")
	}

	return server, nil
}

func WithFiber(fiberApp *fiber.App) ServerOption {
	return func(s *Server) error {
		s.engine = fiberApp
		return nil
	}
}

func WithLogger(logger *logrus.Logger) ServerOption {
	return func(s *Server) error {
		s.log = logger
		return nil
	}
}

func WithValidator(validator *validator.Validate) ServerOption {
	return func(s *Server) error {
		s.validator = validator
		return nil
	}
}

func WithDatabase() ServerOption {
	return func(s *Server) error {
		db, err := postgres.New()
		if err != nil {
			if s.log != nil {
				s.log.Errorf("Failed to connect to database: %v", err)
			}
			return fmt.Errorf("failed to create database connection: %w", err)
		}
		s.db = db
		return nil
	}
}

func WithRedisServer(redisServer redis.IRedis) ServerOption {
	return func(s *Server) error {
		s.redisServer = redisServer
		return nil
	}
}

func WithLandmarkClient(client landmarkPkg.IClient) ServerOption {
	return func(s *Server) error {
		s.landmarkClient = client
		return nil
	}
}

func WithMiddleware() ServerOption {
	return func(s *Server) error {
		if s.log == nil {
			return fmt.Errorf("logger must be initialized before middleware")
		}
		s.middleware = middleware.New(s.log)
		return nil
	}
}

func WithUtils() ServerOption {
	return func(s *Server) error {
		s.utils = utils.New()
		return nil
	}
}

func (s *Server) RegisterHandler() {
	// Cognitive Domain
	cognitiveRepo := cognitiveRepository.New(s.db, s.log)
	cognitiveServices := cognitiveService.NewCognitiveService(s.log, cognitiveRepo, s.redisServer, s.landmarkClient, s.utils)
	cognitiveHandlers := cognitiveHandler.New(s.log, s.validator, s.middleware, cognitiveServices, s.utils)
	s.cognitiveService = cognitiveServices

	// Performance Domain
	performanceRepo := performanceRepository.New(s.db, s.log)
	performanceServices := performanceService.NewPerformanceService(s.log, performanceRepo, s.utils)
	performanceHandlers := performanceHandler.New(s.log, s.validator, s.middleware, performanceServices, s.utils)

	s.setupHealthCheck()
	s.handlers = append(s.handlers, cognitiveHandlers, performanceHandlers)
}

func (s *Server) Run() error {
	router := s.engine.Group("/api/v1")
	s.engine.Use(s.middleware.NewRequestIDMiddleware())

	for _, h := range s.handlers {
		h.Start(router)
	}

	port := os.Getenv("APP_PORT")
	if port == "" {
		port = "3000"
	}

	if err := s.engine.Listen(fmt.Sprintf(":%s", port)); err != nil {
		s.Shutdown()
		return err
	}

	return nil
}

// Shutdown stops the session janitor and closes the landmark connection.
func (s *Server) Shutdown() {
	if s.cognitiveService != nil {
		s.cognitiveService.Shutdown()
	}
	if s.landmarkClient != nil {
		s.landmarkClient.Close()
	}
}

func (s *Server) setupHealthCheck() {
	s.engine.Get("/", func(ctx *fiber.Ctx) error {
		return ctx.JSON(fiber.Map{
			"message": "Server is Healthy!",
		})
	})
}
