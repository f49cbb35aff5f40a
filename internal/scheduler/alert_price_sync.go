package scheduler

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"github.com/Kingcorpe/practice-manager-api/infrastructure/integrator/marketdata"
	marketdomain "github.com/Kingcorpe/practice-manager-api/infrastructure/integrator/marketdata/domain"
	"github.com/Kingcorpe/practice-manager-api/infrastructure/repository"
	"github.com/Kingcorpe/practice-manager-api/internal/config"
	"github.com/Kingcorpe/practice-manager-api/internal/domain"
	"github.com/Kingcorpe/practice-manager-api/internal/usecases/alerting"
)

// quoteBatchSize caps symbols per provider call.
const quoteBatchSize = 50

// AlertPriceSyncConfig holds the open-alert price check settings.
type AlertPriceSyncConfig struct {
	CronSchedule        string
	RequestDelaySeconds int
	SyncEnabled         bool
}

// AlertPriceSyncService periodically fetches quotes for every symbol with
// an open alert and triggers the alerts whose target price was reached.
type AlertPriceSyncService struct {
	scheduler           *gocron.Scheduler
	config              AlertPriceSyncConfig
	alertRepo           repository.AlertRepository
	alertService        alerting.AlertService
	marketDataService   marketdata.MarketDataIntegrator
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
}

func NewAlertPriceSyncService(
	alertRepo repository.AlertRepository,
	alertService alerting.AlertService,
	marketDataService marketdata.MarketDataIntegrator,
	appConfig *config.Config,
) *AlertPriceSyncService {
	syncConfig := AlertPriceSyncConfig{
		CronSchedule:        appConfig.AlertPriceSync.CronSchedule,
		RequestDelaySeconds: appConfig.AlertPriceSync.RequestDelaySeconds,
		SyncEnabled:         appConfig.AlertPriceSync.Enabled,
	}

	scheduler := gocron.NewScheduler(time.Local)

	logrus.WithFields(logrus.Fields{
		"cron_schedule":         syncConfig.CronSchedule,
		"request_delay_seconds": syncConfig.RequestDelaySeconds,
		"sync_enabled":          syncConfig.SyncEnabled,
	}).Info("Alert price sync scheduler configuration loaded")

	return &AlertPriceSyncService{
		scheduler:         scheduler,
		config:            syncConfig,
		alertRepo:         alertRepo,
		alertService:      alertService,
		marketDataService: marketDataService,
		syncRunning:       false,
	}
}

// Start schedules the price check and wires shutdown to the context.
func (s *AlertPriceSyncService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		logrus.Info("Alert price sync disabled by configuration")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Starting alert price sync scheduler")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.syncOpenAlerts()
	})
	if err != nil {
		return fmt.Errorf("failed to schedule alert price sync: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Stopping alert price sync scheduler")
		s.scheduler.Stop()
	}()

	return nil
}

func (s *AlertPriceSyncService) syncOpenAlerts() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Alert price sync already running, skipping")
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

	logrus.Info("Starting alert price sync")

	alerts, err := s.alertRepo.ListOpen()
	if err != nil {
		logrus.WithError(err).Error("Failed to list open alerts")
		return
	}

	if len(alerts) == 0 {
		logrus.Info("No open alerts, nothing to check")
		return
	}

	prices := s.fetchPrices(alerts)

	triggered := 0
	for _, alert := range alerts {
		price, ok := prices[alert.Symbol]
		if !ok {
			continue
		}

		if !targetReached(alert, price) {
			continue
		}

		if _, err := s.alertService.Trigger(alert.UserID, alert.ID); err != nil {
			logrus.WithError(err).WithFields(logrus.Fields{
				"alert_id": alert.ID,
				"symbol":   alert.Symbol,
			}).Error("Failed to trigger alert")
			continue
		}

		triggered++
		logrus.WithFields(logrus.Fields{
			"alert_id":     alert.ID,
			"symbol":       alert.Symbol,
			"action":       alert.Action,
			"target_price": alert.TargetPrice.String(),
			"last_price":   price.String(),
		}).Info("Triggered price alert")
	}

	logrus.WithFields(logrus.Fields{
		"open_alerts": len(alerts),
		"triggered":   triggered,
		"duration":    time.Since(startTime).String(),
	}).Info("Alert price sync completed")
}

// fetchPrices resolves the distinct symbols behind the open alerts,
// batching provider calls and pausing between batches.
func (s *AlertPriceSyncService) fetchPrices(alerts []*domain.TradingAlert) map[string]decimal.Decimal {
	seen := make(map[string]struct{}, len(alerts))
	symbols := make([]string, 0, len(alerts))
	for _, alert := range alerts {
		if _, ok := seen[alert.Symbol]; ok {
			continue
		}
		seen[alert.Symbol] = struct{}{}
		symbols = append(symbols, alert.Symbol)
	}
	sort.Strings(symbols)

	prices := make(map[string]decimal.Decimal, len(symbols))
	for start := 0; start < len(symbols); start += quoteBatchSize {
		end := start + quoteBatchSize
		if end > len(symbols) {
			end = len(symbols)
		}

		if start > 0 && s.config.RequestDelaySeconds > 0 {
			time.Sleep(time.Duration(s.config.RequestDelaySeconds) * time.Second)
		}

		batch, err := s.marketDataService.LatestPrices(marketdomain.GetQuotesParams{Symbols: symbols[start:end]})
		if err != nil {
			logrus.WithError(err).WithField("symbols", len(symbols[start:end])).Error("Failed to fetch quotes")
			continue
		}

		for symbol, price := range batch {
			prices[symbol] = price
		}
	}

	return prices
}

// targetReached applies the alert side: buy alerts fire when the price
// falls to the target, sell alerts when it rises to the target.
func targetReached(alert *domain.TradingAlert, price decimal.Decimal) bool {
	switch alert.Action {
	case domain.ActionBuy:
		return price.LessThanOrEqual(alert.TargetPrice)
	case domain.ActionSell:
		return price.GreaterThanOrEqual(alert.TargetPrice)
	default:
		return false
	}
}

// TriggerManualSync runs the price check outside the schedule.
func (s *AlertPriceSyncService) TriggerManualSync() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Alert price sync already running, ignoring manual trigger")
		return
	}
	s.syncMutex.Unlock()

	logrus.Info("Starting manual alert price sync")
	go s.syncOpenAlerts()
}

// GetStatus reports the scheduler state for the cron status endpoint.
func (s *AlertPriceSyncService) GetStatus() map[string]any {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	return map[string]any{
		"sync_enabled":           s.config.SyncEnabled,
		"sync_cron":              s.config.CronSchedule,
		"sync_running":           s.syncRunning,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
	}
}
