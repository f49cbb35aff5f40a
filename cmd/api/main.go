package main

import (
	"context"
	"os"
	"path"
	"runtime"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/Kingcorpe/practice-manager-api/infrastructure/database/postgres"
	"github.com/Kingcorpe/practice-manager-api/infrastructure/integrator/marketdata"
	"github.com/Kingcorpe/practice-manager-api/infrastructure/integrator/marketdata/quoteclient"
	"github.com/Kingcorpe/practice-manager-api/infrastructure/repository"
	"github.com/Kingcorpe/practice-manager-api/internal/api"
	"github.com/Kingcorpe/practice-manager-api/internal/config"
	"github.com/Kingcorpe/practice-manager-api/internal/scheduler"
	"github.com/Kingcorpe/practice-manager-api/internal/usecases/alerting"
	"github.com/Kingcorpe/practice-manager-api/internal/usecases/authenticating"
	"github.com/Kingcorpe/practice-manager-api/internal/usecases/clienting"
	"github.com/Kingcorpe/practice-manager-api/internal/usecases/documents"
	"github.com/Kingcorpe/practice-manager-api/internal/usecases/goals"
	"github.com/Kingcorpe/practice-manager-api/internal/usecases/milestones"
	"github.com/Kingcorpe/practice-manager-api/internal/usecases/portfolios"
	"github.com/Kingcorpe/practice-manager-api/internal/usecases/prospecting"
	"github.com/Kingcorpe/practice-manager-api/internal/usecases/revenue"
)

func main() {
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("Invalid log level: %s, falling back to 'info'", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)
	logrus.Infof("Log level set to: %s", logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pgConn := pgconn(ctx, cfg.Database)
	defer pgConn.Close()

	userRepo := repository.NewUserRepository(pgConn)
	revenueRepo := repository.NewRevenueEntryRepository(pgConn)
	goalRepo := repository.NewGoalRepository(pgConn)
	householdRepo := repository.NewHouseholdRepository(pgConn)
	prospectRepo := repository.NewProspectRepository(pgConn)
	alertRepo := repository.NewAlertRepository(pgConn)
	milestoneRepo := repository.NewMilestoneRepository(pgConn)
	portfolioRepo := repository.NewPortfolioRepository(pgConn)
	documentRepo := repository.NewDocumentRepository(pgConn)
	snapshotRepo := repository.NewPacingSnapshotRepository(pgConn)

	authenticator := authenticating.NewService(userRepo, cfg)

	revenueService := revenue.NewService(revenueRepo, goalRepo)
	goalService := goals.NewService(goalRepo)
	clientService := clienting.NewService(householdRepo)
	prospectService := prospecting.NewService(prospectRepo)
	alertService := alerting.NewService(alertRepo)
	milestoneService := milestones.NewService(milestoneRepo)
	portfolioService := portfolios.NewService(portfolioRepo)
	documentService := documents.NewService(documentRepo)

	pacingSyncService := scheduler.NewPacingSnapshotSyncService(
		userRepo,
		snapshotRepo,
		revenueService,
		cfg,
	)

	maintenanceSweepService := scheduler.NewMaintenanceSweepService(
		alertRepo,
		prospectRepo,
		cfg,
	)

	marketDataService := marketdata.New(cfg, quoteclient.NewClient(cfg))

	if cfg.AlertPriceSync.Enabled {
		if ok, err := marketDataService.CheckConnection(); err != nil || !ok {
			logrus.WithError(err).Warn("Market data provider unreachable, alert price sync will retry on schedule")
		} else {
			logrus.Info("Market data provider connection verified")
		}
	}

	alertPriceSyncService := scheduler.NewAlertPriceSyncService(
		alertRepo,
		alertService,
		marketDataService,
		cfg,
	)

	if err := pacingSyncService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Failed to start pacing snapshot scheduler")
	} else {
		logrus.Info("Pacing snapshot scheduler started")
	}

	if err := maintenanceSweepService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Failed to start maintenance sweep scheduler")
	} else {
		logrus.Info("Maintenance sweep scheduler started")
	}

	if err := alertPriceSyncService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Failed to start alert price sync scheduler")
	} else {
		logrus.Info("Alert price sync scheduler started")
	}

	server, err := api.New(
		cfg,
		revenueService,
		goalService,
		clientService,
		prospectService,
		alertService,
		milestoneService,
		portfolioService,
		documentService,
		authenticator,
		pacingSyncService,
		maintenanceSweepService,
		alertPriceSyncService,
	)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

func configureLogger() {
	_, file, _, _ := runtime.Caller(0)
	dir := path.Dir(file)
	os.Chdir(dir)

	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}

func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("Failed to connect to PostgreSQL")
	}

	err = conn.Ping(ctx)
	if err != nil {
		logrus.WithError(err).Fatal("Failed to ping PostgreSQL")
	}

	logrus.Info("PostgreSQL connection established")
	return conn
}
