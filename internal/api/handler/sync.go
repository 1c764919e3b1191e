package handler

import (
	"net/http"

	"github.com/pkg/errors"
	"github.com/tagmage/tagmage-api/infrastructure/integrator/meta/metaclient"
	"github.com/tagmage/tagmage-api/internal/config"
	"github.com/tagmage/tagmage-api/internal/domain"
	"github.com/tagmage/tagmage-api/internal/usecases/syncing"
	"github.com/tagmage/tagmage-api/pkg/apiErrors"
	"github.com/tagmage/tagmage-api/pkg/log"
	"github.com/tagmage/tagmage-api/pkg/middleware"
	"github.com/tagmage/tagmage-api/pkg/utils"
)

// KickoffSync dispara um backfill síncrono para o tenant autenticado.
// Sem start_date/end_date o período cai no lookback configurado terminando
// hoje; o período é entrada da operação, não constante.
func KickoffSync(service syncing.Syncer, cfg *config.Config) http.Handler {
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

		filters := &domain.InsightFilters{StartDate: &start, EndDate: &end}

		logger.WithFields(log.Fields{
			"tenant_id":  claims.TenantID,
			"start_date": filters.StartDate,
			"end_date":   filters.EndDate,
		}).Info("sync: kickoff requested")

		result, err := service.RunBackfill(r.Context(), claims.TenantID, filters)
		if err != nil {
			logger.WithError(err).Error("sync: backfill failed")

			var credErr *metaclient.CredentialError
			if errors.As(err, &credErr) {
				apiErrors.WriteError(w, apiErrors.ErrProviderCredential, "Credencial do provedor inválida ou expirada", nil)
				return
			}
			if errors.Is(err, syncing.ErrNoConnection) {
				apiErrors.WriteError(w, apiErrors.ErrNoProviderConnection, "Tenant sem conexão ativa com o provedor", nil)
				return
			}
			if errors.Is(err, syncing.ErrNoAccounts) {
				apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Tenant sem contas de anúncios selecionadas", nil)
				return
			}

			apiErrors.WriteError(w, apiErrors.ErrInternalServer, err.Error(), nil)
			return
		}

		writeJSON(w, http.StatusOK, result)
	})
}
