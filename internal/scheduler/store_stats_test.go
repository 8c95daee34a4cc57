package scheduler

import (
	"context"
	"errors"
	"testing"

	"github.com/656yash/adwise/infrastructure/repository/mocks"
	"github.com/656yash/adwise/internal/config"
	"github.com/656yash/adwise/internal/domain"
	"github.com/656yash/adwise/pkg/metrics"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func datePtr(value string) *domain.Date {
	d := domain.Date(value)
	return &d
}

func newTestService(repo *mocks.MockCampaignRecordRepository, enabled bool) *StoreStatsService {
	cfg := &config.Config{
		StoreStats: config.StoreStats{
			CronSchedule: "*/15 * * * *",
			Enabled:      enabled,
		},
	}
	return NewStoreStatsService(repo, metrics.NewMetrics("adwise", prometheus.NewRegistry()), cfg)
}

func TestStoreStatsService_RefreshStats(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockCampaignRecordRepository(ctrl)
	service := newTestService(mockRepo, true)

	stats := &domain.StoreStats{
		TotalRecords:      20,
		DistinctPlatforms: 4,
		DistinctCampaigns: 5,
		TotalImpressions:  25000,
		TotalClicks:       1200,
		TotalConversions:  60,
		TotalSpent:        4500.5,
		DateRange: domain.DateRange{
			MinDate: datePtr("2024-01-01"),
			MaxDate: datePtr("2024-12-31"),
		},
	}
	mockRepo.EXPECT().Stats().Return(stats, nil)

	require.NoError(t, service.RefreshStats())

	status := service.GetStatus()
	assert.Equal(t, stats, status["stats"])
	assert.Equal(t, false, status["running"])
	assert.NotContains(t, status, "last_error")
}

func TestStoreStatsService_RefreshStats_Error(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockCampaignRecordRepository(ctrl)
	service := newTestService(mockRepo, true)

	mockRepo.EXPECT().Stats().Return(nil, errors.New("connection refused"))

	err := service.RefreshStats()

	assert.Error(t, err)
	status := service.GetStatus()
	assert.Nil(t, status["stats"])
	assert.Equal(t, "connection refused", status["last_error"])
}

func TestStoreStatsService_RefreshStats_SkipsWhenRunning(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockCampaignRecordRepository(ctrl)
	service := newTestService(mockRepo, true)
	service.syncRunning = true

	// Nenhuma chamada ao repositório é esperada
	assert.NoError(t, service.RefreshStats())
}

func TestStoreStatsService_Start_Disabled(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service := newTestService(mocks.NewMockCampaignRecordRepository(ctrl), false)

	assert.NoError(t, service.Start(context.Background()))
	assert.False(t, service.scheduler.IsRunning())
}

func TestStoreStatsService_Start_InvalidCron(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service := newTestService(mocks.NewMockCampaignRecordRepository(ctrl), true)
	service.config.CronSchedule = "não é cron"

	assert.Error(t, service.Start(context.Background()))
}
