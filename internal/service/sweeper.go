package service

import (
	"context"
	"log/slog"

	"github.com/robfig/cron/v3"
)

// Sweeper periodically marks active campaigns whose end date has passed
// as completed.
type Sweeper struct {
	campaigns *CampaignService
	schedule  string
	log       *slog.Logger
	cron      *cron.Cron
}

// NewSweeper creates a sweeper on the given cron schedule.
func NewSweeper(campaigns *CampaignService, schedule string, log *slog.Logger) *Sweeper {
	return &Sweeper{campaigns: campaigns, schedule: schedule, log: log}
}

// Start registers the sweep job and starts the scheduler. One sweep runs
// immediately so restarts don't leave expired campaigns active until the
// next tick.
func (s *Sweeper) Start(ctx context.Context) error {
	s.sweep(ctx)

	c := cron.New()
	_, err := c.AddFunc(s.schedule, func() { s.sweep(context.Background()) })
	if err != nil {
		return err
	}
	c.Start()
	s.cron = c
	s.log.Info("campaign sweeper started", "schedule", s.schedule)
	return nil
}

// Stop halts the scheduler and waits for a running sweep to finish.
func (s *Sweeper) Stop() {
	if s.cron != nil {
		<-s.cron.Stop().Done()
	}
}

func (s *Sweeper) sweep(ctx context.Context) {
	n, err := s.campaigns.CompleteExpired(ctx)
	if err != nil {
		s.log.Error("campaign sweep failed", "error", err)
		return
	}
	if n > 0 {
		s.log.Info("completed expired campaigns", "count", n)
	}
}
