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
	"github.com/Kingcorpe/practice-manager-api/internal/domain"
	"github.com/Kingcorpe/practice-manager-api/internal/usecases/revenue"
	"github.com/Kingcorpe/practice-manager-api/pkg/money"
)

// pacingMetrics are the metrics snapshotted for every user each night.
var pacingMetrics = []domain.GoalMetric{
	domain.MetricCommission,
	domain.MetricDividend,
	domain.MetricAUM,
}

// PacingSnapshotSyncConfig holds the nightly snapshot job settings.
type PacingSnapshotSyncConfig struct {
	CronSchedule  string
	RetentionDays int
	SyncEnabled   bool
}

// PacingSnapshotSyncService persists every active user's pacing report
// once a night so dashboards read a single row instead of recomputing
// the full entry history.
type PacingSnapshotSyncService struct {
	scheduler           *gocron.Scheduler
	config              PacingSnapshotSyncConfig
	userRepo            repository.UserRepository
	snapshotRepo        repository.PacingSnapshotRepository
	revenueService      revenue.RevenueService
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
}

func NewPacingSnapshotSyncService(
	userRepo repository.UserRepository,
	snapshotRepo repository.PacingSnapshotRepository,
	revenueService revenue.RevenueService,
	appConfig *config.Config,
) *PacingSnapshotSyncService {
	syncConfig := PacingSnapshotSyncConfig{
		CronSchedule:  appConfig.PacingSync.CronSchedule,
		RetentionDays: appConfig.PacingSync.RetentionDays,
		SyncEnabled:   appConfig.PacingSync.Enabled,
	}

	scheduler := gocron.NewScheduler(time.Local)

	logrus.WithFields(logrus.Fields{
		"cron_schedule":  syncConfig.CronSchedule,
		"retention_days": syncConfig.RetentionDays,
		"sync_enabled":   syncConfig.SyncEnabled,
	}).Info("Pacing snapshot scheduler configuration loaded")

	return &PacingSnapshotSyncService{
		scheduler:      scheduler,
		config:         syncConfig,
		userRepo:       userRepo,
		snapshotRepo:   snapshotRepo,
		revenueService: revenueService,
		syncRunning:    false,
	}
}

// Start schedules the nightly run and wires shutdown to the context.
func (s *PacingSnapshotSyncService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		logrus.Info("Pacing snapshot sync disabled by configuration")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Starting pacing snapshot scheduler")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.syncAllUsers()
	})
	if err != nil {
		return fmt.Errorf("failed to schedule pacing snapshot sync: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Stopping pacing snapshot scheduler")
		s.scheduler.Stop()
	}()

	return nil
}

func (s *PacingSnapshotSyncService) syncAllUsers() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Pacing snapshot sync already running, skipping")
		return
	}
	startTime := time.Now()
	s.syncRunning = true
	s.lastSyncStartedAt = startTime
	s.syncMutex.Unlock()

	defer func() {
		s.syncMutex.Lock()
		s.syncRunning = false
		s.lastSyncCompletedAt = time.Now()
		s.syncMutex.Unlock()
	}()

	logrus.Info("Starting pacing snapshot sync for all active users")

	users, err := s.userRepo.ListUser()
	if err != nil {
		logrus.WithError(err).Error("Failed to list users for pacing snapshot sync")
		return
	}

	snapshots := 0
	for _, user := range users {
		if !user.Active {
			continue
		}
		snapshots += s.snapshotUser(user.ID, startTime)
	}

	removed, err := s.snapshotRepo.DeleteOlderThan(s.config.RetentionDays)
	if err != nil {
		logrus.WithError(err).Error("Failed to prune old pacing snapshots")
	} else if removed > 0 {
		logrus.WithField("removed", removed).Info("Pruned old pacing snapshots")
	}

	logrus.WithFields(logrus.Fields{
		"duration":  time.Since(startTime).String(),
		"users":     len(users),
		"snapshots": snapshots,
	}).Info("Pacing snapshot sync completed")
}

// snapshotUser computes and stores one snapshot per metric, returning
// how many were written.
func (s *PacingSnapshotSyncService) snapshotUser(userID int, asOf time.Time) int {
	written := 0

	for _, metric := range pacingMetrics {
		report, err := s.revenueService.PacingReport(userID, metric, asOf)
		if err != nil {
			logrus.WithFields(logrus.Fields{
				"user_id": userID,
				"metric":  metric,
				"error":   err.Error(),
			}).Error("Failed to compute pacing report for snapshot")
			continue
		}

		snapshot := &domain.PacingSnapshot{
			UserID:  userID,
			Date:    report.AsOf,
			Metric:  metric,
			Monthly: report.Monthly,
			Yearly:  report.Yearly,
		}

		if err := s.snapshotRepo.SaveOrUpdate(snapshot); err != nil {
			logrus.WithFields(logrus.Fields{
				"user_id": userID,
				"metric":  metric,
				"error":   err.Error(),
			}).Error("Failed to store pacing snapshot")
			continue
		}

		logrus.WithFields(logrus.Fields{
			"user_id":          userID,
			"metric":           metric,
			"monthly_received": money.FormatCAD(report.Monthly.Received),
			"monthly_goal":     money.FormatCAD(report.Monthly.GoalAmount),
			"yearly_received":  money.FormatCAD(report.Yearly.Received),
		}).Debug("Stored pacing snapshot")

		written++
	}

	return written
}

// TriggerManualSync runs the snapshot pass outside the schedule.
func (s *PacingSnapshotSyncService) TriggerManualSync() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Pacing snapshot sync already running, ignoring manual trigger")
		return
	}
	s.syncMutex.Unlock()

	logrus.Info("Starting manual pacing snapshot sync")
	go s.syncAllUsers()
}

// GetStatus reports the scheduler state for the cron status endpoint.
func (s *PacingSnapshotSyncService) GetStatus() map[string]any {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	return map[string]any{
		"sync_enabled":           s.config.SyncEnabled,
		"sync_cron":              s.config.CronSchedule,
		"retention_days":         s.config.RetentionDays,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
	}
}
