package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"

	"github.com/Kingcorpe/practice-manager-api/infrastructure/repository"
	"github.com/Kingcorpe/practice-manager-api/internal/config"
	"github.com/Kingcorpe/practice-manager-api/internal/usecases/revenue"
)

// MaintenanceSweepConfig holds the daily housekeeping job settings.
type MaintenanceSweepConfig struct {
	CronSchedule      string
	StaleProspectDays int
	SweepEnabled      bool
}

// MaintenanceSweepService expires past-due trading alerts and flags
// prospects whose funnel stage has not moved for too many business days.
type MaintenanceSweepService struct {
	scheduler            *gocron.Scheduler
	config               MaintenanceSweepConfig
	alertRepo            repository.AlertRepository
	prospectRepo         repository.ProspectRepository
	sweepRunning         bool
	sweepMutex           sync.Mutex
	lastSweepStartedAt   time.Time
	lastSweepCompletedAt time.Time
}

func NewMaintenanceSweepService(
	alertRepo repository.AlertRepository,
	prospectRepo repository.ProspectRepository,
	appConfig *config.Config,
) *MaintenanceSweepService {
	sweepConfig := MaintenanceSweepConfig{
		CronSchedule:      appConfig.MaintenanceSweep.CronSchedule,
		StaleProspectDays: appConfig.MaintenanceSweep.StaleProspectDays,
		SweepEnabled:      appConfig.MaintenanceSweep.Enabled,
	}

	scheduler := gocron.NewScheduler(time.Local)

	logrus.WithFields(logrus.Fields{
		"cron_schedule":       sweepConfig.CronSchedule,
		"stale_prospect_days": sweepConfig.StaleProspectDays,
		"sweep_enabled":       sweepConfig.SweepEnabled,
	}).Info("Maintenance sweep scheduler configuration loaded")

	return &MaintenanceSweepService{
		scheduler:    scheduler,
		config:       sweepConfig,
		alertRepo:    alertRepo,
		prospectRepo: prospectRepo,
		sweepRunning: false,
	}
}

// Start schedules the daily sweep and wires shutdown to the context.
func (s *MaintenanceSweepService) Start(ctx context.Context) error {
	if !s.config.SweepEnabled {
		logrus.Info("Maintenance sweep disabled by configuration")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Starting maintenance sweep scheduler")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.sweep()
	})
	if err != nil {
		return fmt.Errorf("failed to schedule maintenance sweep: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Stopping maintenance sweep scheduler")
		s.scheduler.Stop()
	}()

	return nil
}

func (s *MaintenanceSweepService) sweep() {
	s.sweepMutex.Lock()
	if s.sweepRunning {
		s.sweepMutex.Unlock()
		logrus.Info("Maintenance sweep already running, skipping")
		return
	}
	startTime := time.Now()
	s.sweepRunning = true
	s.lastSweepStartedAt = startTime
	s.sweepMutex.Unlock()

	defer func() {
		s.sweepMutex.Lock()
		s.sweepRunning = false
		s.lastSweepCompletedAt = time.Now()
		s.sweepMutex.Unlock()
	}()

	logrus.Info("Starting maintenance sweep")

	s.expireAlerts(startTime)
	s.flagStaleProspects(startTime)

	logrus.WithField("duration", time.Since(startTime).String()).Info("Maintenance sweep completed")
}

// expireAlerts flips open alerts whose expiry date has passed.
func (s *MaintenanceSweepService) expireAlerts(now time.Time) {
	today := now.Format(time.DateOnly)

	expired, err := s.alertRepo.ExpireOlderThan(today)
	if err != nil {
		logrus.WithError(err).Error("Failed to expire trading alerts")
		return
	}

	if expired > 0 {
		logrus.WithField("expired", expired).Info("Expired past-due trading alerts")
	}
}

// flagStaleProspects marks active prospects whose stage has been idle for
// longer than the configured number of business days.
func (s *MaintenanceSweepService) flagStaleProspects(now time.Time) {
	cutoff := revenue.SubtractBusinessDays(now, s.config.StaleProspectDays)

	idle, err := s.prospectRepo.ListIdleSince(cutoff.Format(time.RFC3339))
	if err != nil {
		logrus.WithError(err).Error("Failed to list idle prospects")
		return
	}

	if len(idle) == 0 {
		return
	}

	ids := make([]string, len(idle))
	for i, p := range idle {
		ids[i] = p.ID
	}

	marked, err := s.prospectRepo.MarkStale(ids)
	if err != nil {
		logrus.WithError(err).Error("Failed to mark prospects stale")
		return
	}

	logrus.WithFields(logrus.Fields{
		"cutoff": cutoff.Format(time.DateOnly),
		"marked": marked,
	}).Info("Flagged stale prospects")
}

// TriggerManualSweep runs the sweep outside the schedule.
func (s *MaintenanceSweepService) TriggerManualSweep() {
	s.sweepMutex.Lock()
	if s.sweepRunning {
		s.sweepMutex.Unlock()
		logrus.Info("Maintenance sweep already running, ignoring manual trigger")
		return
	}
	s.sweepMutex.Unlock()

	logrus.Info("Starting manual maintenance sweep")
	go s.sweep()
}

// GetStatus reports the scheduler state for the cron status endpoint.
func (s *MaintenanceSweepService) GetStatus() map[string]any {
	s.sweepMutex.Lock()
	defer s.sweepMutex.Unlock()

	return map[string]any{
		"sweep_enabled":           s.config.SweepEnabled,
		"sweep_cron":              s.config.CronSchedule,
		"stale_prospect_days":     s.config.StaleProspectDays,
		"last_sweep_started_at":   s.lastSweepStartedAt,
		"last_sweep_completed_at": s.lastSweepCompletedAt,
	}
}
