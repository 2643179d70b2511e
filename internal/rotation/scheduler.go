// Package rotation runs the scheduled jobs: the featured-clinic rotation
// that periodically swaps which sponsored clinics hold the featured strip,
// and the nightly budget maintenance that resets daily remainders and
// pauses spent campaigns.
package rotation

import (
	"context"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"

	"relief-ads/internal/config/configs"
	"relief-ads/internal/core/port"
)

// jobTimeout bounds a single job run so a wedged database cannot pile up
// overlapping runs.
const jobTimeout = time.Minute

// Scheduler owns the cron instance and the job implementations.
type Scheduler struct {
	repo   port.RotationRepository
	cfg    configs.Cron
	logger *slog.Logger
	cron   *cron.Cron
}

// NewScheduler creates a scheduler; call Start to register and run the
// jobs.
func NewScheduler(repo port.RotationRepository, cfg configs.Cron, logger *slog.Logger) *Scheduler {
	return &Scheduler{repo: repo, cfg: cfg, logger: logger, cron: cron.New()}
}

// Start registers the jobs and starts the cron loop. An invalid spec is a
// configuration error and is returned rather than logged away.
func (s *Scheduler) Start() error {
	if _, err := s.cron.AddFunc(s.cfg.FeaturedSpec, s.runFeaturedRotation); err != nil {
		return err
	}
	if _, err := s.cron.AddFunc(s.cfg.BudgetSpec, s.runBudgetMaintenance); err != nil {
		return err
	}
	s.cron.Start()
	s.logger.Info("rotation scheduler started",
		slog.String("featured_spec", s.cfg.FeaturedSpec),
		slog.String("budget_spec", s.cfg.BudgetSpec))
	return nil
}

// Stop halts the cron loop and waits for a running job to finish.
func (s *Scheduler) Stop() {
	<-s.cron.Stop().Done()
}

func (s *Scheduler) runFeaturedRotation() {
	ctx, cancel := context.WithTimeout(context.Background(), jobTimeout)
	defer cancel()
	promoted, err := s.repo.RotateFeaturedClinics(ctx, s.cfg.FeaturedSlots)
	if err != nil {
		s.logger.Error("featured rotation failed", slog.Any("error", err))
		return
	}
	slugs := make([]string, 0, len(promoted))
	for _, c := range promoted {
		slugs = append(slugs, c.Slug)
	}
	s.logger.Info("featured clinics rotated", slog.Int("slots", s.cfg.FeaturedSlots), slog.Any("promoted", slugs))
}

func (s *Scheduler) runBudgetMaintenance() {
	ctx, cancel := context.WithTimeout(context.Background(), jobTimeout)
	defer cancel()
	reset, err := s.repo.ResetDailyBudgets(ctx)
	if err != nil {
		s.logger.Error("daily budget reset failed", slog.Any("error", err))
		return
	}
	paused, err := s.repo.PauseExhaustedCampaigns(ctx)
	if err != nil {
		s.logger.Error("pausing exhausted campaigns failed", slog.Any("error", err))
		return
	}
	s.logger.Info("budget maintenance done", slog.Int64("reset", reset), slog.Int64("paused", paused))
}
