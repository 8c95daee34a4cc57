package domain

import (
	"fmt"
	"math"
	"strings"
)

// FilterAll é o valor sentinela que equivale a não filtrar
const FilterAll = "all"

const (
	DefaultPage          = 1
	DefaultPerPage       = 20
	MaxPerPage           = 500
	DefaultSortBy        = "date"
	RecentCampaignsLimit = 5
)

type SortOrder string

const (
	SortAsc  SortOrder = "ASC"
	SortDesc SortOrder = "DESC"
)

// sortableColumns mapeia os campos ordenáveis aceitos na API para as colunas da tabela
var sortableColumns = map[string]string{
	"id":          "id",
	"platform":    "platform",
	"campaign":    "campaign",
	"date":        "date",
	"impressions": "impressions",
	"clicks":      "clicks",
	"conversion":  "conversion",
	"spent":       "spent",
	"roi":         "roi",
	"roas":        "roas",
	"cpc":         "cpc",
	"ctr":         "ctr",
	"kpi":         "kpi",
}

// SortColumn retorna a coluna correspondente a um campo ordenável
func SortColumn(field string) (string, bool) {
	column, ok := sortableColumns[field]
	return column, ok
}

// ParseSortOrder aceita ASC ou DESC sem diferenciar maiúsculas
func ParseSortOrder(value string) (SortOrder, error) {
	switch SortOrder(strings.ToUpper(strings.TrimSpace(value))) {
	case SortAsc:
		return SortAsc, nil
	case SortDesc:
		return SortDesc, nil
	default:
		return "", NewValidationError(ErrInvalidSortOrder, "sort_order", fmt.Sprintf("valor %q inválido, use ASC ou DESC", value))
	}
}

// CampaignFilter reúne as restrições de uma requisição: filtros, ordenação e paginação
type CampaignFilter struct {
	Platform  string
	Campaign  string
	DateFrom  Date
	DateTo    Date
	SortBy    string
	SortOrder SortOrder
	Page      int
	PerPage   int
}

// NewCampaignFilter cria um filtro com os valores padrão da API
func NewCampaignFilter() *CampaignFilter {
	return &CampaignFilter{
		SortBy:    DefaultSortBy,
		SortOrder: SortDesc,
		Page:      DefaultPage,
		PerPage:   DefaultPerPage,
	}
}

// Normalize remove o sentinela "all" e espaços sobrando
func (f *CampaignFilter) Normalize() {
	f.Platform = normalizeSentinel(f.Platform)
	f.Campaign = normalizeSentinel(f.Campaign)
}

func normalizeSentinel(value string) string {
	value = strings.TrimSpace(value)
	if strings.EqualFold(value, FilterAll) {
		return ""
	}
	return value
}

// Validate verifica ordenação e paginação antes do filtro chegar ao banco
func (f *CampaignFilter) Validate() error {
	if _, ok := SortColumn(f.SortBy); !ok {
		return NewValidationError(ErrInvalidSortField, "sort_by", fmt.Sprintf("campo %q não pode ser usado para ordenação", f.SortBy))
	}

	if f.SortOrder != SortAsc && f.SortOrder != SortDesc {
		return NewValidationError(ErrInvalidSortOrder, "sort_order", fmt.Sprintf("valor %q inválido, use ASC ou DESC", f.SortOrder))
	}

	if f.Page < 1 {
		return NewValidationError(ErrInvalidPagination, "page", "deve ser maior ou igual a 1")
	}

	if f.PerPage < 1 || f.PerPage > MaxPerPage {
		return NewValidationError(ErrInvalidPagination, "per_page", fmt.Sprintf("deve estar entre 1 e %d", MaxPerPage))
	}

	// O deslocamento (page-1)*per_page precisa caber em um int64
	if int64(f.Page-1) > math.MaxInt64/int64(f.PerPage) {
		return NewValidationError(ErrInvalidPagination, "page", "valor muito alto para o tamanho de página informado")
	}

	return nil
}

// Offset calcula o deslocamento da página atual
func (f *CampaignFilter) Offset() int {
	return (f.Page - 1) * f.PerPage
}

// Applied descreve os filtros efetivamente aplicados, com nulo para os ausentes
func (f *CampaignFilter) Applied() FiltersApplied {
	applied := FiltersApplied{
		SortBy:    f.SortBy,
		SortOrder: f.SortOrder,
	}

	if f.Platform != "" {
		platform := f.Platform
		applied.Platform = &platform
	}
	if f.Campaign != "" {
		campaign := f.Campaign
		applied.Campaign = &campaign
	}
	if f.DateFrom != "" {
		dateFrom := f.DateFrom
		applied.DateFrom = &dateFrom
	}
	if f.DateTo != "" {
		dateTo := f.DateTo
		applied.DateTo = &dateTo
	}

	return applied
}

type FiltersApplied struct {
	Platform  *string   `json:"platform"`
	Campaign  *string   `json:"campaign"`
	DateFrom  *Date     `json:"date_from"`
	DateTo    *Date     `json:"date_to"`
	SortBy    string    `json:"sort_by"`
	SortOrder SortOrder `json:"sort_order"`
}
