package handler

import (
	"net/http"

	"github.com/656yash/adwise/internal/usecases/reporting"
	"github.com/656yash/adwise/pkg/log"
)

// GetDashboardSummary retorna o resumo geral, as métricas por plataforma e as campanhas recentes
func GetDashboardSummary(service reporting.Reporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())
		logger.Debug("reporting: buscando resumo do painel")

		summary, err := service.Summary()
		if err != nil {
			writeServiceError(w, logger, err, "Erro ao buscar resumo do painel")
			return
		}

		writeJSON(w, logger, http.StatusOK, summary)
	})
}

func GetKPIData(service reporting.Reporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		filter, err := parseCampaignFilter(r.URL.Query())
		if err != nil {
			writeServiceError(w, logger, err, "Erro ao ler filtros")
			return
		}

		logger.WithFields(log.Fields{
			"filter_platform": filter.Platform,
			"filter_campaign": filter.Campaign,
			"filter_sort_by":  filter.SortBy,
		}).Debug("reporting: buscando dados de KPI")

		response, err := service.KPIData(filter)
		if err != nil {
			writeServiceError(w, logger, err, "Erro ao buscar dados de KPI")
			return
		}

		writeJSON(w, logger, http.StatusOK, response)
	})
}

func GetDetailedData(service reporting.Reporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		filter, err := parseCampaignFilter(r.URL.Query())
		if err != nil {
			writeServiceError(w, logger, err, "Erro ao ler filtros")
			return
		}

		logger.WithFields(log.Fields{
			"filter_platform": filter.Platform,
			"filter_campaign": filter.Campaign,
			"filter_page":     filter.Page,
			"filter_per_page": filter.PerPage,
		}).Debug("reporting: buscando dados detalhados")

		response, err := service.Detailed(filter)
		if err != nil {
			writeServiceError(w, logger, err, "Erro ao buscar dados detalhados")
			return
		}

		writeJSON(w, logger, http.StatusOK, response)
	})
}

func GetTrends(service reporting.Reporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		filter, err := parseTrendsFilter(r.URL.Query())
		if err != nil {
			writeServiceError(w, logger, err, "Erro ao ler filtros")
			return
		}

		response, err := service.Trends(filter)
		if err != nil {
			writeServiceError(w, logger, err, "Erro ao buscar tendências")
			return
		}

		writeJSON(w, logger, http.StatusOK, response)
	})
}

func GetFilterOptions(service reporting.Reporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		options, err := service.FilterOptions()
		if err != nil {
			writeServiceError(w, logger, err, "Erro ao buscar opções de filtro")
			return
		}

		writeJSON(w, logger, http.StatusOK, options)
	})
}
