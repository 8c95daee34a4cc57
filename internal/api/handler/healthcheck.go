package handler

import (
	"net/http"

	"github.com/656yash/adwise/internal/domain"
	"github.com/656yash/adwise/internal/usecases/reporting"
	"github.com/656yash/adwise/pkg/log"
)

const (
	healthyMessage   = "KPI Dashboard API is running"
	unhealthyMessage = "KPI Dashboard API is running, but the database is unreachable"
)

func HealthcheckHandler(service reporting.Reporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		if err := service.Health(); err != nil {
			logger.WithError(err).Error("healthcheck: banco de dados indisponível")
			writeJSON(w, logger, http.StatusServiceUnavailable, domain.HealthStatus{
				Status:  "unhealthy",
				Message: unhealthyMessage,
			})
			return
		}

		writeJSON(w, logger, http.StatusOK, domain.HealthStatus{
			Status:  "healthy",
			Message: healthyMessage,
		})
	})
}
