package handler

import (
	"net/http"

	"github.com/vfg2006/design-online-api/internal/api/handler/router"
	"github.com/vfg2006/design-online-api/internal/usecases/dashboarding"
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
			Path:    "/v1/dashboard",
			Method:  http.MethodGet,
			Handler: GetDashboard(service),
		},
		{
			Path:    "/v1/dashboard/metrics",
			Method:  http.MethodGet,
			Handler: GetMetrics(service),
		},
		{
			Path:    "/v1/dashboard/evolution",
			Method:  http.MethodGet,
			Handler: GetEvolution(service),
		},
		{
			Path:    "/v1/dashboard/ranking",
			Method:  http.MethodGet,
			Handler: GetRanking(service),
		},
		{
			Path:    "/v1/dashboard/hourly",
			Method:  http.MethodGet,
			Handler: GetHourly(service),
		},
		{
			Path:    "/v1/dashboard/weekly",
			Method:  http.MethodGet,
			Handler: GetWeekly(service),
		},
		{
			Path:    "/v1/dashboard/vehicles",
			Method:  http.MethodGet,
			Handler: GetVehicles(service),
		},
	}
}

func Publications(service dashboarding.Dashboarder) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/publications",
			Method:  http.MethodGet,
			Handler: ListPublications(service),
		},
		{
			Path:    "/v1/clients",
			Method:  http.MethodGet,
			Handler: ListClients(service),
		},
	}
}

func CronJobs(services CronJobServices) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/cron/:type/run",
			Method:  http.MethodPost,
			Handler: RunCronJob(services),
		},
		{
			Path:    "/v1/cron/status",
			Method:  http.MethodGet,
			Handler: GetCronStatus(services),
		},
	}
}
