package api

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/amaumene/movienarr/internal/api/handlers"
	"github.com/amaumene/movienarr/internal/api/middleware"
	"github.com/amaumene/movienarr/internal/config"
	"github.com/amaumene/movienarr/internal/controllers"
	"github.com/amaumene/movienarr/internal/models"
)

// Server represents the HTTP server the command surface calls into
type Server struct {
	server        *http.Server
	db            *models.Database
	watchlistCtrl *controllers.WatchlistController
	logger        *logrus.Logger
}

// NewServer creates a new HTTP server
func NewServer(cfg *config.Config, db *models.Database, watchlistCtrl *controllers.WatchlistController, logger *logrus.Logger) *Server {
	s := &Server{
		db:            db,
		watchlistCtrl: watchlistCtrl,
		logger:        logger,
	}

	mux := http.NewServeMux()
	s.setupRoutes(mux)

	s.server = &http.Server{
		Addr:         ":" + cfg.ServerPort,
		Handler:      middleware.Logging(mux, logger),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	return s
}

// setupRoutes configures all HTTP routes
func (s *Server) setupRoutes(mux *http.ServeMux) {
	healthHandler := handlers.NewHealthHandler(s.logger)
	mux.HandleFunc("GET /health", healthHandler.ServeHTTP)

	statsHandler := handlers.NewStatsHandler(s.db, s.logger)
	mux.HandleFunc("GET /api/stats", statsHandler.ServeHTTP)

	displayHandler := handlers.NewDisplayHandler(s.watchlistCtrl, s.logger)
	mux.HandleFunc("GET /api/displays/to-watch", displayHandler.ToWatch)
	mux.HandleFunc("GET /api/displays/watched", displayHandler.Watched)

	watchlistHandler := handlers.NewWatchlistHandler(s.watchlistCtrl, s.logger)
	mux.HandleFunc("POST /api/{kind}/add", watchlistHandler.Add)
	mux.HandleFunc("POST /api/{kind}/watched", watchlistHandler.Watched)
	mux.HandleFunc("POST /api/{kind}/remove", watchlistHandler.Remove)
	mux.HandleFunc("GET /api/{kind}/random", watchlistHandler.Random)
	mux.HandleFunc("GET /api/{kind}/info/{id}", watchlistHandler.Info)

	searchHandler := handlers.NewSearchHandler(s.watchlistCtrl, s.logger)
	mux.HandleFunc("GET /api/{kind}/search", searchHandler.Provider)
	mux.HandleFunc("GET /api/{kind}/search/to-watch", searchHandler.ToWatch)
	mux.HandleFunc("GET /api/{kind}/search/owned", searchHandler.Owned)

	refreshHandler := handlers.NewRefreshHandler(s.watchlistCtrl, s.logger)
	mux.HandleFunc("POST /api/refresh", refreshHandler.ServeHTTP)
}

// Handler returns the fully routed handler, middleware included
func (s *Server) Handler() http.Handler {
	return s.server.Handler
}

// Start starts the HTTP server
func (s *Server) Start(ctx context.Context) error {
	s.logger.WithField("port", s.server.Addr).Info("Starting HTTP server")

	errChan := make(chan error, 1)
	go func() {
		if err := s.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errChan <- err
		}
	}()

	select {
	case err := <-errChan:
		return fmt.Errorf("server error: %w", err)
	case <-ctx.Done():
		return s.Shutdown(context.Background())
	}
}

// Shutdown gracefully shuts down the HTTP server
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("Shutting down HTTP server")
	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	return s.server.Shutdown(shutdownCtx)
}
