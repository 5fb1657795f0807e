package scheduler

import (
	"context"
	"fmt"

	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"

	"github.com/amaumene/movienarr/internal/controllers"
)

// Scheduler runs the periodic refresh of unreleased entries
type Scheduler struct {
	cron          *cron.Cron
	watchlistCtrl *controllers.WatchlistController
	refreshSpec   string
	logger        *logrus.Logger
}

// NewScheduler creates a new scheduler
func NewScheduler(watchlistCtrl *controllers.WatchlistController, refreshSpec string, logger *logrus.Logger) *Scheduler {
	return &Scheduler{
		cron:          cron.New(),
		watchlistCtrl: watchlistCtrl,
		refreshSpec:   refreshSpec,
		logger:        logger,
	}
}

// Start starts the scheduler
func (s *Scheduler) Start() error {
	s.logger.WithField("spec", s.refreshSpec).Info("Starting scheduler")

	_, err := s.cron.AddFunc(s.refreshSpec, func() {
		s.runRefresh()
	})
	if err != nil {
		return fmt.Errorf("failed to add refresh job: %w", err)
	}

	s.cron.Start()
	s.logger.Info("Scheduler started")
	return nil
}

// Stop stops the scheduler
func (s *Scheduler) Stop() {
	s.logger.Info("Stopping scheduler")
	s.cron.Stop()
}

// runRefresh executes the unreleased-entry refresh job
func (s *Scheduler) runRefresh() {
	s.logger.Info("Running scheduled refresh")

	if err := s.watchlistCtrl.RefreshUnreleased(context.Background()); err != nil {
		s.logger.WithError(err).Error("Refresh job failed")
		return
	}
	s.logger.Info("Refresh job completed")
}
