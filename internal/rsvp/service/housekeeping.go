package service

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/aussiebroadwan/yup/internal/rsvp/metrics"
	"github.com/aussiebroadwan/yup/internal/rsvp/store"
	"github.com/robfig/cron/v3"
)

const DefaultHousekeepingSchedule = "@every 1h"

// HousekeepingService runs periodic maintenance on a cron schedule: it
// closes events that are over and clears stale phone verification secrets.
type HousekeepingService struct {
	Store    store.Store
	Logger   *slog.Logger
	Metrics  *metrics.Metrics
	Schedule string
	Clock    Clock

	cron    *cron.Cron
	initial sync.WaitGroup
}

// NewHousekeepingService creates a service for schedule, a robfig/cron spec
// such as "@every 1h" or "0 * * * *". An empty schedule means hourly.
func NewHousekeepingService(st store.Store, logger *slog.Logger, m *metrics.Metrics, schedule string) *HousekeepingService {
	if schedule == "" {
		schedule = DefaultHousekeepingSchedule
	}
	return &HousekeepingService{
		Store:    st,
		Logger:   logger,
		Metrics:  m,
		Schedule: schedule,
	}
}

// Start schedules the jobs and kicks off one run straight away. It does not
// block.
func (s *HousekeepingService) Start() error {
	c := cron.New(cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger)))
	if _, err := c.AddFunc(s.Schedule, func() { s.RunOnce(context.Background()) }); err != nil {
		return fmt.Errorf("housekeeping schedule %q: %w", s.Schedule, err)
	}
	s.cron = c

	s.initial.Add(1)
	go func() {
		defer s.initial.Done()
		s.RunOnce(context.Background())
	}()

	c.Start()
	s.Logger.Info("housekeeping service started", "schedule", s.Schedule)
	return nil
}

// Stop waits for running jobs and halts the schedule.
func (s *HousekeepingService) Stop() {
	if s.cron == nil {
		return
	}
	<-s.cron.Stop().Done()
	s.initial.Wait()
	s.Logger.Info("housekeeping service stopped")
}

// RunOnce performs every job once. Jobs are independent; one failing does
// not skip the others.
func (s *HousekeepingService) RunOnce(ctx context.Context) {
	now := s.Clock.Now()
	s.Logger.Debug("starting housekeeping")

	closed, err := s.Store.Events().CloseEndedEvents(ctx, now)
	s.record("close_ended_events", closed, err)

	cleared, err := s.Store.Users().ClearStalePhoneVerifications(ctx, now.Add(-PhoneCodeTTL))
	s.record("clear_phone_verifications", cleared, err)
}

func (s *HousekeepingService) record(job string, affected int64, err error) {
	s.Metrics.RecordHousekeeping(job, affected, err == nil)
	if err != nil {
		s.Logger.Error("housekeeping job failed", "job", job, "error", err)
		return
	}
	s.Logger.Info("housekeeping job completed", "job", job, "affected", affected)
}
