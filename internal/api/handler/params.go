package handler

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/656yash/adwise/internal/domain"
)

// parseCampaignFilter lê filtros, ordenação e paginação da query string
func parseCampaignFilter(query url.Values) (*domain.CampaignFilter, error) {
	filter, err := parseTrendsFilter(query)
	if err != nil {
		return nil, err
	}

	if sortBy := strings.TrimSpace(query.Get("sort_by")); sortBy != "" {
		filter.SortBy = strings.ToLower(sortBy)
	}

	if sortOrder := query.Get("sort_order"); sortOrder != "" {
		order, err := domain.ParseSortOrder(sortOrder)
		if err != nil {
			return nil, err
		}
		filter.SortOrder = order
	}

	if filter.Page, err = parsePositiveInt(query, "page", domain.DefaultPage); err != nil {
		return nil, err
	}

	if filter.PerPage, err = parsePositiveInt(query, "per_page", domain.DefaultPerPage); err != nil {
		return nil, err
	}

	if err := filter.Validate(); err != nil {
		return nil, err
	}

	return filter, nil
}

// parseTrendsFilter lê apenas plataforma, campanha e intervalo de datas
func parseTrendsFilter(query url.Values) (*domain.CampaignFilter, error) {
	filter := domain.NewCampaignFilter()
	filter.Platform = query.Get("platform")
	filter.Campaign = query.Get("campaign")

	var err error
	if filter.DateFrom, err = parseDate(query, "date_from"); err != nil {
		return nil, err
	}

	if filter.DateTo, err = parseDate(query, "date_to"); err != nil {
		return nil, err
	}

	filter.Normalize()

	return filter, nil
}

func parseDate(query url.Values, name string) (domain.Date, error) {
	date, err := domain.NormalizeDate(query.Get(name))
	if err != nil {
		return "", domain.NewValidationError(domain.ErrInvalidDate, name, err.Error())
	}
	return date, nil
}

func parsePositiveInt(query url.Values, name string, fallback int) (int, error) {
	raw := strings.TrimSpace(query.Get(name))
	if raw == "" {
		return fallback, nil
	}

	value, err := strconv.Atoi(raw)
	if err != nil || value < 1 {
		return 0, domain.NewValidationError(domain.ErrInvalidPagination, name, fmt.Sprintf("valor %q inválido, use um inteiro maior ou igual a 1", raw))
	}

	return value, nil
}
