package handler

import (
	"net/http"

	"github.com/tagmage/tagmage-api/internal/config"
	"github.com/tagmage/tagmage-api/internal/usecases/insighting"
	"github.com/tagmage/tagmage-api/pkg/apiErrors"
	"github.com/tagmage/tagmage-api/pkg/log"
	"github.com/tagmage/tagmage-api/pkg/middleware"
	"github.com/tagmage/tagmage-api/pkg/utils"
)

// GetInsightsSummary devolve os KPIs agregados do período para o painel
func GetInsightsSummary(service insighting.Insighter, cfg *config.Config) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		claims, ok := middleware.ClaimsFromContext(r.Context())
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
			return
		}

		start, end, err := utils.ResolveDateRange(
			r.URL.Query().Get("start_date"),
			r.URL.Query().Get("end_date"),
			cfg.BackfillSync.LookbackDays,
		)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidDateRange, err.Error(), nil)
			return
		}

		summary, err := service.GetSummary(claims.TenantID, start, end)
		if err != nil {
			logger.WithError(err).Error("insights: failed to build summary")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, err.Error(), nil)
			return
		}

		writeJSON(w, http.StatusOK, summary)
	})
}

// GetInsightsDaily devolve as linhas diárias do período, para a série temporal
func GetInsightsDaily(service insighting.Insighter, cfg *config.Config) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		claims, ok := middleware.ClaimsFromContext(r.Context())
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
			return
		}

		start, end, err := utils.ResolveDateRange(
			r.URL.Query().Get("start_date"),
			r.URL.Query().Get("end_date"),
			cfg.BackfillSync.LookbackDays,
		)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidDateRange, err.Error(), nil)
			return
		}

		entries, err := service.GetDaily(claims.TenantID, start, end)
		if err != nil {
			logger.WithError(err).Error("insights: failed to list daily entries")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, err.Error(), nil)
			return
		}

		writeJSON(w, http.StatusOK, entries)
	})
}
