package server

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"scamgraph/internal/config"
	"scamgraph/internal/handler"
	"scamgraph/internal/pipeline"
	"scamgraph/internal/repository"
)

type Server struct {
	router *gin.Engine
	logger *zap.Logger
}

func NewServer(p *pipeline.Pipeline, submissionRepo repository.SubmissionRepository, graphRepo repository.GraphRepository, cfg *config.Config, logger *zap.Logger) *Server {
	router := gin.Default()
	router.Use(cors.Default())

	s := &Server{
		router: router,
		logger: logger,
	}

	s.setupRoutes(p, submissionRepo, graphRepo, cfg)

	return s
}

func (s *Server) setupRoutes(p *pipeline.Pipeline, submissionRepo repository.SubmissionRepository, graphRepo repository.GraphRepository, cfg *config.Config) {
	submissionHandler := handler.NewSubmissionHandler(p, submissionRepo, graphRepo, s.logger, cfg.API.SubmissionsPageSize)
	graphHandler := handler.NewGraphHandler(graphRepo, s.logger)

	api := s.router.Group("/api")
	{
		api.POST("/submit", submissionHandler.Submit)
		api.GET("/graph", graphHandler.GetGraph)
		api.GET("/submissions", submissionHandler.ListSubmissions)
		api.GET("/health", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{
				"status":    "OK",
				"timestamp": time.Now().UTC().Format(time.RFC3339),
			})
		})
	}
}

func (s *Server) Run(addr string) {
	s.logger.Info("Server starting", zap.String("addr", addr))
	if err := s.router.Run(addr); err != nil {
		s.logger.Fatal("Server failed to start", zap.Error(err))
	}
}
