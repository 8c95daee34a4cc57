package reporting

import (
	"errors"
	"testing"

	"github.com/656yash/adwise/infrastructure/repository/mocks"
	"github.com/656yash/adwise/internal/domain"
	pkgerrors "github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestService_Summary(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockCampaignRecordRepository(ctrl)
	service := NewService(mockRepo)

	summary := &domain.SummaryRow{TotalCampaigns: 5, TotalSpent: 1000}
	platforms := []domain.PlatformMetric{{Platform: "Google Ads", Campaigns: 3}}
	recent := []domain.CampaignRecord{{ID: 1, Campaign: "Summer Sale"}}

	mockRepo.EXPECT().AggregateGlobal(nil).Return(summary, nil)
	mockRepo.EXPECT().AggregateByPlatform(nil).Return(platforms, nil)
	mockRepo.EXPECT().Recent(domain.RecentCampaignsLimit).Return(recent, nil)

	result, err := service.Summary()

	require.NoError(t, err)
	assert.Equal(t, summary, result.Summary)
	assert.Equal(t, platforms, result.Platforms)
	assert.Equal(t, recent, result.RecentCampaigns)
}

func TestService_Summary_Error(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockCampaignRecordRepository(ctrl)
	service := NewService(mockRepo)

	dbErr := errors.New("connection reset")
	mockRepo.EXPECT().AggregateGlobal(nil).Return(nil, dbErr)

	_, err := service.Summary()

	assert.Error(t, err)
	assert.Equal(t, dbErr, pkgerrors.Cause(err))
}

func TestService_KPIData_AllEqualsOmitted(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockCampaignRecordRepository(ctrl)
	service := NewService(mockRepo)

	var seen []*domain.CampaignFilter
	capture := func(filter *domain.CampaignFilter) {
		seen = append(seen, filter)
	}

	mockRepo.EXPECT().List(gomock.Any()).
		DoAndReturn(func(filter *domain.CampaignFilter) ([]domain.CampaignRecord, error) {
			capture(filter)
			return []domain.CampaignRecord{}, nil
		}).Times(2)
	mockRepo.EXPECT().AggregateByPlatform(gomock.Any()).
		DoAndReturn(func(filter *domain.CampaignFilter) ([]domain.PlatformMetric, error) {
			capture(filter)
			return []domain.PlatformMetric{}, nil
		}).Times(2)
	mockRepo.EXPECT().AggregateByCampaign(gomock.Any()).
		DoAndReturn(func(filter *domain.CampaignFilter) ([]domain.CampaignMetric, error) {
			capture(filter)
			return []domain.CampaignMetric{}, nil
		}).Times(2)

	withAll := domain.NewCampaignFilter()
	withAll.Platform = "all"
	withAll.Campaign = "ALL"

	first, err := service.KPIData(withAll)
	require.NoError(t, err)

	second, err := service.KPIData(nil)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Nil(t, first.FiltersApplied.Platform)
	assert.Nil(t, first.FiltersApplied.Campaign)
	for _, filter := range seen {
		assert.Empty(t, filter.Platform)
		assert.Empty(t, filter.Campaign)
	}
}

func TestService_KPIData_SameFilterForEveryAggregate(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockCampaignRecordRepository(ctrl)
	service := NewService(mockRepo)

	filter := domain.NewCampaignFilter()
	filter.Platform = "Facebook"
	filter.DateFrom = "2024-01-01"

	mockRepo.EXPECT().List(filter).Return([]domain.CampaignRecord{{ID: 1, Platform: "Facebook"}}, nil)
	mockRepo.EXPECT().AggregateByPlatform(filter).Return([]domain.PlatformMetric{{Platform: "Facebook"}}, nil)
	mockRepo.EXPECT().AggregateByCampaign(filter).Return([]domain.CampaignMetric{}, nil)

	result, err := service.KPIData(filter)

	require.NoError(t, err)
	assert.Len(t, result.KPIData, 1)
	require.NotNil(t, result.FiltersApplied.Platform)
	assert.Equal(t, "Facebook", *result.FiltersApplied.Platform)
	require.NotNil(t, result.FiltersApplied.DateFrom)
	assert.Equal(t, domain.Date("2024-01-01"), *result.FiltersApplied.DateFrom)
	assert.Nil(t, result.FiltersApplied.DateTo)
}

func TestService_KPIData_InvalidSort(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service := NewService(mocks.NewMockCampaignRecordRepository(ctrl))

	filter := domain.NewCampaignFilter()
	filter.SortBy = "budget"

	_, err := service.KPIData(filter)

	assert.True(t, errors.Is(err, domain.ErrInvalidSortField))
}

func TestService_Detailed(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockCampaignRecordRepository(ctrl)
	service := NewService(mockRepo)

	filter := domain.NewCampaignFilter()
	filter.Page = 2
	filter.PerPage = 5

	records := []domain.CampaignRecord{{ID: 6}, {ID: 7}, {ID: 8}, {ID: 9}, {ID: 10}}
	mockRepo.EXPECT().Page(filter).Return(records, int64(20), nil)

	result, err := service.Detailed(filter)

	require.NoError(t, err)
	assert.Equal(t, records, result.Data)
	assert.Equal(t, domain.Pagination{
		Page:       2,
		PerPage:    5,
		TotalCount: 20,
		TotalPages: 4,
		HasNext:    true,
		HasPrev:    true,
	}, result.Pagination)
	assert.Equal(t, "date", result.FiltersApplied.SortBy)
	assert.Equal(t, domain.SortDesc, result.FiltersApplied.SortOrder)
}

func TestService_Detailed_PerPageTooLarge(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service := NewService(mocks.NewMockCampaignRecordRepository(ctrl))

	filter := domain.NewCampaignFilter()
	filter.PerPage = 1000

	_, err := service.Detailed(filter)

	assert.True(t, errors.Is(err, domain.ErrInvalidPagination))
}

func TestService_Trends(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockCampaignRecordRepository(ctrl)
	service := NewService(mockRepo)

	daily := []domain.DailyTrend{{Date: "2024-01-01", DailySpent: 100}}
	byPlatform := []domain.PlatformTrend{{Platform: "Facebook", Date: "2024-01-01"}}

	mockRepo.EXPECT().AggregateDaily(nil).Return(daily, nil)
	mockRepo.EXPECT().AggregateByPlatformAndDate(nil).Return(byPlatform, nil)

	result, err := service.Trends(nil)

	require.NoError(t, err)
	assert.Equal(t, daily, result.DailyTrends)
	assert.Equal(t, byPlatform, result.PlatformTrends)
}

func TestService_FilterOptions(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockCampaignRecordRepository(ctrl)
	service := NewService(mockRepo)

	minDate := domain.Date("2024-01-01")
	maxDate := domain.Date("2024-03-31")

	mockRepo.EXPECT().DistinctPlatforms().Return([]string{"Facebook", "Google Ads"}, nil)
	mockRepo.EXPECT().DistinctCampaigns().Return([]string{"Brand"}, nil)
	mockRepo.EXPECT().DateRange().Return(&domain.DateRange{MinDate: &minDate, MaxDate: &maxDate}, nil)

	result, err := service.FilterOptions()

	require.NoError(t, err)
	assert.Equal(t, []string{"Facebook", "Google Ads"}, result.Platforms)
	assert.Equal(t, []string{"Brand"}, result.Campaigns)
	assert.Equal(t, minDate, *result.DateRange.MinDate)
}

func TestService_Health(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockCampaignRecordRepository(ctrl)
	service := NewService(mockRepo)

	mockRepo.EXPECT().Ping().Return(nil)
	assert.NoError(t, service.Health())

	mockRepo.EXPECT().Ping().Return(errors.New("connection refused"))
	assert.ErrorContains(t, service.Health(), "connection refused")
}
