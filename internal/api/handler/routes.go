package handler

import (
	"net/http"

	"github.com/vfg2006/funnel-dashboard-api/internal/api/handler/router"
	"github.com/vfg2006/funnel-dashboard-api/internal/usecases/reporting"
)

func Healthcheck(checks ...HealthCheck) []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(checks...),
		},
	}
}

func Dashboard(service reporting.Dashboarder) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/metrics/monthly",
			Method:  http.MethodGet,
			Handler: GetMonthlyMetrics(service),
		},
		{
			Path:    "/v1/metrics/cards",
			Method:  http.MethodGet,
			Handler: GetMetricCards(service),
		},
		{
			Path:    "/v1/funnel",
			Method:  http.MethodGet,
			Handler: GetFunnel(service),
		},
		{
			Path:    "/v1/countries",
			Method:  http.MethodGet,
			Handler: GetCountryBreakdown(service),
		},
		{
			Path:    "/v1/videos",
			Method:  http.MethodGet,
			Handler: GetVideos(service),
		},
		{
			Path:    "/v1/videos/top",
			Method:  http.MethodGet,
			Handler: GetTopPerformer(service),
		},
		{
			Path:    "/v1/dashboard/refresh",
			Method:  http.MethodPost,
			Handler: RefreshDashboard(service),
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
