package handler

import (
	"net/http"

	"github.com/656yash/adwise/internal/api/handler/router"
	"github.com/656yash/adwise/internal/usecases/assisting"
	"github.com/656yash/adwise/internal/usecases/reporting"
)

func Healthcheck(service reporting.Reporter) []router.Route {
	return []router.Route{
		{
			Path:    "/api/health",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(service),
		},
	}
}

func Reporting(service reporting.Reporter) []router.Route {
	return []router.Route{
		{
			Path:    "/api/dashboard/summary",
			Method:  http.MethodGet,
			Handler: GetDashboardSummary(service),
		},
		{
			Path:    "/api/kpi/data",
			Method:  http.MethodGet,
			Handler: GetKPIData(service),
		},
		{
			Path:    "/api/data/detailed",
			Method:  http.MethodGet,
			Handler: GetDetailedData(service),
		},
		{
			Path:    "/api/analytics/trends",
			Method:  http.MethodGet,
			Handler: GetTrends(service),
		},
		{
			Path:    "/api/filters/options",
			Method:  http.MethodGet,
			Handler: GetFilterOptions(service),
		},
	}
}

func Assistant(assistant assisting.Assistant) []router.Route {
	return []router.Route{
		{
			Path:    "/api/assistant/chat",
			Method:  http.MethodPost,
			Handler: PostAssistantChat(assistant),
		},
		{
			Path:    "/api/assistant/status",
			Method:  http.MethodGet,
			Handler: GetAssistantStatus(assistant),
		},
	}
}

func Metrics(handler http.Handler) []router.Route {
	return []router.Route{
		{
			Path:    "/metrics",
			Method:  http.MethodGet,
			Handler: handler,
		},
	}
}

func Store(provider StoreStatusProvider) []router.Route {
	return []router.Route{
		{
			Path:    "/api/store/status",
			Method:  http.MethodGet,
			Handler: GetStoreStatus(provider),
		},
		{
			Path:    "/api/store/refresh",
			Method:  http.MethodPost,
			Handler: RefreshStoreStats(provider),
		},
	}
}
