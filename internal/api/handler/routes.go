package handler

import (
	"net/http"

	"github.com/webyte/ploutos-ledger-api/infrastructure/integrator/fiscal"
	"github.com/webyte/ploutos-ledger-api/internal/api/handler/router"
	"github.com/webyte/ploutos-ledger-api/internal/usecases/authenticating"
	"github.com/webyte/ploutos-ledger-api/internal/usecases/cashback"
	"github.com/webyte/ploutos-ledger-api/internal/usecases/journaling"
	"github.com/webyte/ploutos-ledger-api/pkg/middleware"
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

func Authentication(service authenticating.Authenticator) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/login",
			Method:  http.MethodPost,
			Handler: Login(service),
		},
		{
			Path:    "/v1/register",
			Method:  http.MethodPost,
			Handler: CreateUser(service),
		},
		{
			Path:        "/v1/me",
			Method:      http.MethodGet,
			Handler:     GetMe(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func User(service authenticating.Authenticator) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/users",
			Method:      http.MethodGet,
			Handler:     ListUsers(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
	}
}

func CashFlow(journal journaling.Journal) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/cashflow/:date",
			Method:      http.MethodGet,
			Handler:     GetCashFlow(journal),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/cashflow/:date",
			Method:      http.MethodPut,
			Handler:     SaveCashFlow(journal),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/cashflow/:date",
			Method:      http.MethodDelete,
			Handler:     ClearCashFlow(journal),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/cashflow/:date/totals",
			Method:      http.MethodGet,
			Handler:     GetCashFlowTotals(journal),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func Cashback(service cashback.CashbackService) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/cashback/:cpf",
			Method:      http.MethodGet,
			Handler:     GetCashbackBalance(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/cashback/:cpf/redeem",
			Method:      http.MethodPost,
			Handler:     RedeemCashback(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func Fiscal(service fiscal.FiscalIntegrator) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/cnpj/:cnpj",
			Method:      http.MethodGet,
			Handler:     LookupCNPJ(service),
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
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/cron/status",
			Method:      http.MethodGet,
			Handler:     GetCronStatus(services),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
	}
}
