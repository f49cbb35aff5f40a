package api

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/justinas/alice"
	"github.com/sirupsen/logrus"

	"github.com/Kingcorpe/practice-manager-api/internal/api/handler"
	"github.com/Kingcorpe/practice-manager-api/internal/api/handler/router"
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
	"github.com/Kingcorpe/practice-manager-api/pkg/middleware"
)

type Server struct {
	httpServer *http.Server
}

func New(
	config *config.Config,
	revenueService revenue.RevenueService,
	goalService goals.GoalService,
	clientService clienting.ClientService,
	prospectService prospecting.ProspectService,
	alertService alerting.AlertService,
	milestoneService milestones.MilestoneService,
	portfolioService portfolios.PortfolioService,
	documentService documents.DocumentService,
	authenticator authenticating.Authenticator,
	pacingSyncService *scheduler.PacingSnapshotSyncService,
	maintenanceSweepService *scheduler.MaintenanceSweepService,
	alertPriceSyncService *scheduler.AlertPriceSyncService,
) (*Server, error) {
	cronServices := handler.CronJobServices{
		PacingSnapshotSyncService: pacingSyncService,
		MaintenanceSweepService:   maintenanceSweepService,
		AlertPriceSyncService:     alertPriceSyncService,
	}

	rt := router.New(
		router.WithRoutes(handler.Healthcheck()...),
		router.WithRoutes(handler.Authentication(authenticator)...),
		router.WithRoutes(handler.User(authenticator)...),
		router.WithRoutes(handler.Revenue(revenueService)...),
		router.WithRoutes(handler.Goals(goalService)...),
		router.WithRoutes(handler.Households(clientService)...),
		router.WithRoutes(handler.Prospects(prospectService)...),
		router.WithRoutes(handler.Alerts(alertService)...),
		router.WithRoutes(handler.Milestones(milestoneService)...),
		router.WithRoutes(handler.Portfolios(portfolioService)...),
		router.WithRoutes(handler.Documents(documentService)...),
		router.WithRoutes(handler.CronJobs(cronServices)...),
	)

	middlewares := []alice.Constructor{
		middleware.LogPanicMiddleware(),
		middleware.LoggingMiddleware(),
		middleware.Cors(),
		middleware.AuthMiddleware(authenticator),
	}

	chained := alice.New(middlewares...).Then(rt)

	srv := &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf("%s:%s", config.Server.Host, config.Server.Port),
			Handler:           chained,
			ReadHeaderTimeout: 2 * time.Second,
		},
	}

	return srv, nil
}

func (s Server) Run(ctx context.Context) error {
	go func() {
		logrus.WithFields(logrus.Fields{
			"address": s.httpServer.Addr,
		}).Info("Server starting")

		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.WithError(err).Error("Error while running server")
		}
	}()

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	select {
	case <-done:
		logrus.Info("Interrupt signal received")
	case <-ctx.Done():
		logrus.Info("Application context cancelled")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	logrus.WithFields(logrus.Fields{
		"timeout": "15s",
	}).Info("Starting graceful shutdown")

	if err := s.Shutdown(shutdownCtx); err != nil {
		logrus.WithError(err).Error("Error during server shutdown")
		return err
	}

	logrus.Info("Server stopped")
	return nil
}

func (s Server) Shutdown(ctx context.Context) error {
	err := s.httpServer.Shutdown(ctx)
	if err != nil {
		return err
	}

	logrus.Info("HTTP server stopped")
	return nil
}
