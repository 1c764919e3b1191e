package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"
	"github.com/tagmage/tagmage-api/internal/scheduler"
	"github.com/tagmage/tagmage-api/pkg/apiErrors"
)

// CronJobType define o tipo de cron job que pode ser disparada manualmente
const (
	CronJobTypeBackfill = "backfill"
)

// CronJobServices contém os agendadores expostos para disparo manual
type CronJobServices struct {
	BackfillSyncService *scheduler.BackfillSyncService
}

// RunCronJob dispara manualmente uma cron job específica
func RunCronJob(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cronType := httprouter.ParamsFromContext(r.Context()).ByName("type")
		if cronType == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Tipo de cron job não especificado", nil)
			return
		}

		switch cronType {
		case CronJobTypeBackfill:
			if services.BackfillSyncService == nil {
				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Serviço de backfill não disponível", nil)
				return
			}
			services.BackfillSyncService.TriggerManualSync()

		default:
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Tipo de cron job desconhecido: "+cronType, nil)
			return
		}

		logrus.WithField("cron_type", cronType).Info("Cron job disparada manualmente")

		writeJSON(w, http.StatusAccepted, map[string]string{
			"status": "started",
			"type":   cronType,
		})
	}
}

// GetCronStatus devolve o estado atual dos agendadores
func GetCronStatus(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		status := map[string]any{}

		if services.BackfillSyncService != nil {
			status["backfill"] = services.BackfillSyncService.GetStatus()
		}

		writeJSON(w, http.StatusOK, status)
	}
}
