package handler

import (
	"net/http"

	"github.com/tagmage/tagmage-api/internal/api/handler/router"
	"github.com/tagmage/tagmage-api/internal/config"
	"github.com/tagmage/tagmage-api/internal/usecases/account"
	"github.com/tagmage/tagmage-api/internal/usecases/insighting"
	"github.com/tagmage/tagmage-api/internal/usecases/syncing"
	"github.com/tagmage/tagmage-api/pkg/middleware"
)

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

// MetaCatalog são as rotas do assistente de conexão: navegação ao vivo no
// catálogo do provedor e persistência das seleções
func MetaCatalog(service account.AccountService) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/meta/businesses",
			Method:      http.MethodGet,
			Handler:     ListBusinesses(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.OwnerOrAdmin()},
		},
		{
			Path:        "/v1/meta/accounts",
			Method:      http.MethodGet,
			Handler:     ListAdAccounts(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.OwnerOrAdmin()},
		},
		{
			Path:        "/v1/meta/campaigns",
			Method:      http.MethodGet,
			Handler:     ListCampaigns(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.OwnerOrAdmin()},
		},
		{
			Path:        "/v1/meta/selections",
			Method:      http.MethodPost,
			Handler:     SaveSelections(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.OwnerOrAdmin()},
		},
	}
}

func Sync(service syncing.Syncer, cfg *config.Config) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/sync/kickoff",
			Method:      http.MethodPost,
			Handler:     KickoffSync(service, cfg),
			Middlewares: []func(http.Handler) http.Handler{middleware.OwnerOrAdmin()},
		},
	}
}

func Insights(service insighting.Insighter, cfg *config.Config) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/insights/summary",
			Method:      http.MethodGet,
			Handler:     GetInsightsSummary(service, cfg),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/insights/daily",
			Method:      http.MethodGet,
			Handler:     GetInsightsDaily(service, cfg),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func CronJobs(services CronJobServices) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/cron/:type/run",
			Method:      http.MethodPost,
			Handler:     RunCronJob(services),
			Middlewares: []func(http.Handler) http.Handler{middleware.OwnerOrAdmin()},
		},
		{
			Path:        "/v1/cron/status",
			Method:      http.MethodGet,
			Handler:     GetCronStatus(services),
			Middlewares: []func(http.Handler) http.Handler{middleware.OwnerOrAdmin()},
		},
	}
}
