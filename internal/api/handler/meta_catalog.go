package handler

import (
	"net/http"
	"strings"

	"github.com/pkg/errors"

	"github.com/tagmage/tagmage-api/internal/domain"
	"github.com/tagmage/tagmage-api/internal/usecases/account"
	"github.com/tagmage/tagmage-api/pkg/apiErrors"
	"github.com/tagmage/tagmage-api/pkg/log"
	"github.com/tagmage/tagmage-api/pkg/middleware"
)

// ListBusinesses lista os business managers acessíveis pela conexão do tenant
func ListBusinesses(service account.AccountService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		claims, ok := middleware.ClaimsFromContext(r.Context())
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
			return
		}

		businesses, err := service.ListBusinesses(claims.TenantID)
		if err != nil {
			writeCatalogError(w, logger, err, "catalog: failed to list businesses")
			return
		}

		writeJSON(w, http.StatusOK, businesses)
	})
}

// ListAdAccounts lista as contas de anúncios do business informado; sem
// business_id, lista as contas diretas do usuário conectado
func ListAdAccounts(service account.AccountService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		claims, ok := middleware.ClaimsFromContext(r.Context())
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
			return
		}

		businessID := r.URL.Query().Get("business_id")

		accounts, err := service.ListAdAccounts(claims.TenantID, businessID)
		if err != nil {
			writeCatalogError(w, logger, err, "catalog: failed to list ad accounts")
			return
		}

		writeJSON(w, http.StatusOK, accounts)
	})
}

// ListCampaigns lista as campanhas das contas informadas em account_ids
func ListCampaigns(service account.AccountService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		claims, ok := middleware.ClaimsFromContext(r.Context())
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
			return
		}

		accountIDsParam := r.URL.Query().Get("account_ids")
		if accountIDsParam == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Parâmetro account_ids é obrigatório", nil)
			return
		}

		accountIDs := strings.Split(accountIDsParam, ",")

		campaigns, err := service.ListCampaigns(claims.TenantID, accountIDs)
		if err != nil {
			writeCatalogError(w, logger, err, "catalog: failed to list campaigns")
			return
		}

		writeJSON(w, http.StatusOK, campaigns)
	})
}

// SaveSelections persiste as contas e campanhas escolhidas no assistente
func SaveSelections(service account.AccountService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		claims, ok := middleware.ClaimsFromContext(r.Context())
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
			return
		}

		var request domain.SaveSelectionsRequest
		if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Corpo da requisição inválido", nil)
			return
		}

		response, err := service.SaveSelections(claims.TenantID, &request)
		if err != nil {
			writeCatalogError(w, logger, err, "catalog: failed to save selections")
			return
		}

		writeJSON(w, http.StatusOK, response)
	})
}

// writeCatalogError traduz os erros do catálogo para a resposta padronizada
func writeCatalogError(w http.ResponseWriter, logger log.Logger, err error, message string) {
	logger.WithError(err).Error(message)

	var accountErr *account.AccountError
	if errors.As(err, &accountErr) && accountErr.Code != "" {
		apiErrors.WriteError(w, accountErr.Code, accountErr.Error(), nil)
		return
	}

	apiErrors.WriteError(w, apiErrors.ErrExternalService, err.Error(), nil)
}
