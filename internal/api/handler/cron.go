package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"

	"github.com/Kingcorpe/practice-manager-api/internal/scheduler"
	"github.com/Kingcorpe/practice-manager-api/pkg/apiErrors"
)

// Cron job types accepted by the manual run endpoint.
const (
	CronJobTypePacing      = "pacing"
	CronJobTypeMaintenance = "maintenance"
	CronJobTypeAlerts      = "alerts"
	CronJobTypeAll         = "all"
)

// CronJobServices groups the schedulers exposed for manual runs.
type CronJobServices struct {
	PacingSnapshotSyncService *scheduler.PacingSnapshotSyncService
	MaintenanceSweepService   *scheduler.MaintenanceSweepService
	AlertPriceSyncService     *scheduler.AlertPriceSyncService
}

// RunCronJob triggers one of the scheduled jobs outside its schedule.
func RunCronJob(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - RunCronJob")

		userClaims, ok := claimsFromRequest(r)
		if !ok || userClaims.UserRoleID != 1 {
			apiErrors.WriteError(w, apiErrors.ErrInsufficientPrivilege, "Only administrators may run cron jobs", nil)
			return
		}

		cronType := httprouter.ParamsFromContext(r.Context()).ByName("type")
		if cronType == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Cron job type not specified", nil)
			return
		}

		switch cronType {
		case CronJobTypePacing:
			if services.PacingSnapshotSyncService == nil {
				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Pacing snapshot service unavailable", nil)
				return
			}
			services.PacingSnapshotSyncService.TriggerManualSync()

		case CronJobTypeMaintenance:
			if services.MaintenanceSweepService == nil {
				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Maintenance sweep service unavailable", nil)
				return
			}
			services.MaintenanceSweepService.TriggerManualSweep()

		case CronJobTypeAlerts:
			if services.AlertPriceSyncService == nil {
				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Alert price sync service unavailable", nil)
				return
			}
			services.AlertPriceSyncService.TriggerManualSync()

		case CronJobTypeAll:
			if services.PacingSnapshotSyncService != nil {
				services.PacingSnapshotSyncService.TriggerManualSync()
			}
			if services.MaintenanceSweepService != nil {
				services.MaintenanceSweepService.TriggerManualSweep()
			}
			if services.AlertPriceSyncService != nil {
				services.AlertPriceSyncService.TriggerManualSync()
			}

		default:
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Invalid cron job type. Accepted values: pacing, maintenance, alerts, all", nil)
			return
		}

		respondJSON(w, http.StatusOK, map[string]any{
			"message": "Cron job started",
			"type":    cronType,
		})
	}
}

// GetCronStatus reports the state of every scheduled job.
func GetCronStatus(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - GetCronStatus")

		userClaims, ok := claimsFromRequest(r)
		if !ok || userClaims.UserRoleID != 1 {
			apiErrors.WriteError(w, apiErrors.ErrInsufficientPrivilege, "Only administrators may check cron job status", nil)
			return
		}

		status := map[string]any{
			"pacing":      services.PacingSnapshotSyncService.GetStatus(),
			"maintenance": services.MaintenanceSweepService.GetStatus(),
			"alerts":      services.AlertPriceSyncService.GetStatus(),
		}

		respondJSON(w, http.StatusOK, status)
	}
}
