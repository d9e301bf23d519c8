package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	generativeAI "github.com/FACorreiaa/go-genai-sdk/lib"
	"go.uber.org/zap"

	"github.com/FACorreiaa/loci-maps/internal/pkg/config"
)

// Server holds the dependencies for the HTTP server
type Server struct {
	cfg      *config.Config
	logger   *zap.Logger
	aiClient *generativeAI.LLMChatClient
	router   http.Handler
}

// New creates a new Server instance with all dependencies
func New(cfg *config.Config, logger *zap.Logger) (*Server, error) {
	s := &Server{
		cfg:    cfg,
		logger: logger,
	}

	aiClient, err := generativeAI.NewLLMChatClient(context.Background(), cfg.Gemini.APIKey)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize Gemini client: %w", err)
	}
	s.aiClient = aiClient
	logger.Info("Gemini client initialized", zap.String("model", cfg.Gemini.Model))

	return s, nil
}

// HTTPServer creates and configures the HTTP server. WriteTimeout is zero
// because SSE responses stay open for the lifetime of a model stream.
func (s *Server) HTTPServer() *http.Server {
	return &http.Server{
		Addr:        ":" + s.cfg.ServerPort,
		Handler:     s.router,
		IdleTimeout: time.Minute,
		ReadTimeout: 10 * time.Second,
	}
}

// SetRouter sets the HTTP router/handler
func (s *Server) SetRouter(router http.Handler) {
	s.router = router
}

// GetAIClient returns the shared Gemini client
func (s *Server) GetAIClient() *generativeAI.LLMChatClient {
	return s.aiClient
}

// GetLogger returns the logger instance
func (s *Server) GetLogger() *zap.Logger {
	return s.logger
}

// GetConfig returns the configuration
func (s *Server) GetConfig() *config.Config {
	return s.cfg
}
