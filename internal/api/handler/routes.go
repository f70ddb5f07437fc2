package handler

import (
	"net/http"

	"github.com/vfg2006/ig-dashboard-api/internal/api/handler/router"
	"github.com/vfg2006/ig-dashboard-api/internal/usecases/authenticating"
	"github.com/vfg2006/ig-dashboard-api/internal/usecases/connecting"
	"github.com/vfg2006/ig-dashboard-api/internal/usecases/credentialing"
	"github.com/vfg2006/ig-dashboard-api/internal/usecases/dashboarding"
	"github.com/vfg2006/ig-dashboard-api/pkg/middleware"
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

func Dashboard(service dashboarding.Dashboarder) []router.Route {
	return []router.Route{
		{
			Path:    "/ig-dashboard",
			Method:  http.MethodPost,
			Handler: IGDashboard(service),
		},
	}
}

func OAuth(service connecting.Connector, authenticator authenticating.Authenticator) []router.Route {
	return []router.Route{
		{
			Path:        "/facebook-oauth",
			Method:      http.MethodPost,
			Handler:     FacebookOAuth(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.RequireSession(authenticator)},
		},
		{
			Path:    "/instagram-oauth",
			Method:  http.MethodPost,
			Handler: InstagramOAuth(service),
		},
	}
}

func Tokens(service credentialing.TokenReader) []router.Route {
	return []router.Route{
		{
			Path:    "/get-instagram-token",
			Method:  http.MethodPost,
			Handler: GetInstagramToken(service),
		},
	}
}

func CronJobs(services CronJobServices, devSecret string) []router.Route {
	return []router.Route{
		{
			Path:        "/cron/:type/run",
			Method:      http.MethodPost,
			Handler:     RunCronJob(services),
			Middlewares: []func(http.Handler) http.Handler{middleware.DevSecret(devSecret)},
		},
		{
			Path:        "/cron/:type/status",
			Method:      http.MethodGet,
			Handler:     GetCronStatus(services),
			Middlewares: []func(http.Handler) http.Handler{middleware.DevSecret(devSecret)},
		},
	}
}
