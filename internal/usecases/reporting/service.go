// Package reporting monta as respostas do painel a partir da camada de consulta
package reporting

import (
	"github.com/656yash/adwise/infrastructure/repository"
	"github.com/656yash/adwise/internal/domain"
	"github.com/pkg/errors"
)

type Reporter interface {
	Summary() (*domain.DashboardSummary, error)
	KPIData(filter *domain.CampaignFilter) (*domain.KPIDataResponse, error)
	Detailed(filter *domain.CampaignFilter) (*domain.DetailedDataResponse, error)
	Trends(filter *domain.CampaignFilter) (*domain.TrendsResponse, error)
	FilterOptions() (*domain.FilterOptions, error)
	Health() error
}

type Service struct {
	repo repository.CampaignRecordRepository
}

func NewService(repo repository.CampaignRecordRepository) Reporter {
	return &Service{
		repo: repo,
	}
}

// Summary resume a base inteira, sem filtros
func (s *Service) Summary() (*domain.DashboardSummary, error) {
	summary, err := s.repo.AggregateGlobal(nil)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao calcular resumo geral")
	}

	platforms, err := s.repo.AggregateByPlatform(nil)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao calcular métricas por plataforma")
	}

	recent, err := s.repo.Recent(domain.RecentCampaignsLimit)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao buscar campanhas recentes")
	}

	return &domain.DashboardSummary{
		Summary:         summary,
		Platforms:       platforms,
		RecentCampaigns: recent,
	}, nil
}

// KPIData devolve as linhas filtradas e os agregados calculados sobre o mesmo filtro
func (s *Service) KPIData(filter *domain.CampaignFilter) (*domain.KPIDataResponse, error) {
	filter, err := prepare(filter)
	if err != nil {
		return nil, err
	}

	records, err := s.repo.List(filter)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao listar registros de campanha")
	}

	platformMetrics, err := s.repo.AggregateByPlatform(filter)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao calcular métricas por plataforma")
	}

	campaignMetrics, err := s.repo.AggregateByCampaign(filter)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao calcular métricas por campanha")
	}

	return &domain.KPIDataResponse{
		KPIData:         records,
		PlatformMetrics: platformMetrics,
		CampaignMetrics: campaignMetrics,
		FiltersApplied:  filter.Applied(),
	}, nil
}

func (s *Service) Detailed(filter *domain.CampaignFilter) (*domain.DetailedDataResponse, error) {
	filter, err := prepare(filter)
	if err != nil {
		return nil, err
	}

	records, total, err := s.repo.Page(filter)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao paginar registros de campanha")
	}

	return &domain.DetailedDataResponse{
		Data:           records,
		Pagination:     domain.NewPagination(filter.Page, filter.PerPage, total),
		FiltersApplied: filter.Applied(),
	}, nil
}

// Trends aceita filtro nulo, caso em que a série cobre a base inteira
func (s *Service) Trends(filter *domain.CampaignFilter) (*domain.TrendsResponse, error) {
	if filter != nil {
		filter.Normalize()
	}

	daily, err := s.repo.AggregateDaily(filter)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao calcular tendência diária")
	}

	byPlatform, err := s.repo.AggregateByPlatformAndDate(filter)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao calcular tendência por plataforma")
	}

	return &domain.TrendsResponse{
		DailyTrends:    daily,
		PlatformTrends: byPlatform,
	}, nil
}

func (s *Service) FilterOptions() (*domain.FilterOptions, error) {
	platforms, err := s.repo.DistinctPlatforms()
	if err != nil {
		return nil, errors.Wrap(err, "erro ao buscar plataformas")
	}

	campaigns, err := s.repo.DistinctCampaigns()
	if err != nil {
		return nil, errors.Wrap(err, "erro ao buscar campanhas")
	}

	dateRange, err := s.repo.DateRange()
	if err != nil {
		return nil, errors.Wrap(err, "erro ao buscar intervalo de datas")
	}

	return &domain.FilterOptions{
		Platforms: platforms,
		Campaigns: campaigns,
		DateRange: *dateRange,
	}, nil
}

func (s *Service) Health() error {
	return errors.Wrap(s.repo.Ping(), "banco de dados indisponível")
}

// prepare aplica os padrões, remove o sentinela "all" e valida o filtro
func prepare(filter *domain.CampaignFilter) (*domain.CampaignFilter, error) {
	if filter == nil {
		filter = domain.NewCampaignFilter()
	}

	filter.Normalize()
	if err := filter.Validate(); err != nil {
		return nil, err
	}

	return filter, nil
}
