package repository

import (
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/656yash/adwise/infrastructure/database"
	"github.com/656yash/adwise/internal/domain"
	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var recordColumns = []string{
	"id", "platform", "campaign", "impressions", "clicks", "conversion",
	"spent", "roi", "roas", "cpc", "ctr", "kpi", "date",
}

func setupRepository(t *testing.T, driver string) (CampaignRecordRepository, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return NewCampaignRecordRepository(database.Wrap(db, driver)), mock
}

func TestBuildPredicate(t *testing.T) {
	t.Run("sem filtro não gera cláusulas", func(t *testing.T) {
		assert.Empty(t, BuildPredicate(nil))
		assert.Empty(t, BuildPredicate(domain.NewCampaignFilter()))
	})

	t.Run("all equivale a omitir", func(t *testing.T) {
		filter := domain.NewCampaignFilter()
		filter.Platform = "All"
		filter.Campaign = "all"

		assert.Empty(t, BuildPredicate(filter))
	})

	t.Run("combina todos os filtros com parâmetros", func(t *testing.T) {
		filter := domain.NewCampaignFilter()
		filter.Platform = "Google Ads"
		filter.Campaign = "Summer Sale"
		filter.DateFrom = "2024-01-01"
		filter.DateTo = "2024-01-31"

		sql, args, err := BuildPredicate(filter).ToSql()

		require.NoError(t, err)
		assert.Equal(t, "(platform = ? AND campaign = ? AND date >= ? AND date <= ?)", sql)
		assert.Equal(t, []interface{}{"Google Ads", "Summer Sale", "2024-01-01", "2024-01-31"}, args)
	})

	t.Run("valores maliciosos continuam sendo parâmetros", func(t *testing.T) {
		filter := domain.NewCampaignFilter()
		filter.Campaign = "x' OR '1'='1"

		sql, args, err := BuildPredicate(filter).ToSql()

		require.NoError(t, err)
		assert.Equal(t, "(campaign = ?)", sql)
		assert.Equal(t, []interface{}{"x' OR '1'='1"}, args)
	})
}

func TestCampaignRecordRepository_AggregateGlobal(t *testing.T) {
	t.Run("aplica o filtro e devolve médias", func(t *testing.T) {
		repo, mock := setupRepository(t, database.DriverPostgres)

		filter := domain.NewCampaignFilter()
		filter.Platform = "Facebook"

		mock.ExpectQuery(regexp.QuoteMeta("FROM campaign_records WHERE (platform = $1)")).
			WithArgs("Facebook").
			WillReturnRows(sqlmock.NewRows([]string{
				"total_campaigns", "total_impressions", "total_clicks", "total_conversions",
				"total_spent", "avg_roi", "avg_roas", "avg_cpc", "avg_ctr",
			}).AddRow(2, 3000, 150, 12, 450.5, 1.5, 3.2, 0.8, 5.0))

		summary, err := repo.AggregateGlobal(filter)

		require.NoError(t, err)
		assert.Equal(t, int64(2), summary.TotalCampaigns)
		assert.Equal(t, int64(3000), summary.TotalImpressions)
		assert.Equal(t, 450.5, summary.TotalSpent)
		require.NotNil(t, summary.AvgROAS)
		assert.Equal(t, 3.2, *summary.AvgROAS)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("conjunto vazio tem somas zeradas e médias nulas", func(t *testing.T) {
		repo, mock := setupRepository(t, database.DriverPostgres)

		mock.ExpectQuery(`SELECT COUNT\(DISTINCT campaign\) AS total_campaigns, .* FROM campaign_records$`).
			WillReturnRows(sqlmock.NewRows([]string{
				"total_campaigns", "total_impressions", "total_clicks", "total_conversions",
				"total_spent", "avg_roi", "avg_roas", "avg_cpc", "avg_ctr",
			}).AddRow(0, 0, 0, 0, 0.0, nil, nil, nil, nil))

		summary, err := repo.AggregateGlobal(nil)

		require.NoError(t, err)
		assert.Zero(t, summary.TotalCampaigns)
		assert.Zero(t, summary.TotalSpent)
		assert.Nil(t, summary.AvgROI)
		assert.Nil(t, summary.AvgROAS)
		assert.Nil(t, summary.AvgCPC)
		assert.Nil(t, summary.AvgCTR)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("erro do banco é propagado", func(t *testing.T) {
		repo, mock := setupRepository(t, database.DriverPostgres)

		mock.ExpectQuery("FROM campaign_records").WillReturnError(errors.New("connection reset"))

		_, err := repo.AggregateGlobal(nil)

		assert.ErrorContains(t, err, "connection reset")
	})
}

func TestCampaignRecordRepository_AggregateByPlatform(t *testing.T) {
	repo, mock := setupRepository(t, database.DriverPostgres)

	mock.ExpectQuery(regexp.QuoteMeta("GROUP BY platform ORDER BY total_spent DESC, platform ASC")).
		WillReturnRows(sqlmock.NewRows([]string{
			"platform", "campaigns", "total_impressions", "total_clicks", "total_conversions",
			"total_spent", "avg_roi", "avg_roas", "avg_cpc", "avg_ctr",
		}).
			AddRow("Google Ads", 10, 50000, 2500, 120, 3000.0, 2.1, 4.5, 1.2, 5.0).
			AddRow("Facebook", 8, 40000, 1800, 90, 2500.0, 1.9, 3.8, 1.4, 4.5))

	metrics, err := repo.AggregateByPlatform(nil)

	require.NoError(t, err)
	require.Len(t, metrics, 2)
	assert.Equal(t, "Google Ads", metrics[0].Platform)
	assert.Equal(t, int64(10), metrics[0].Campaigns)
	assert.Equal(t, 3.8, metrics[1].AvgROAS)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCampaignRecordRepository_AggregateByCampaign_Empty(t *testing.T) {
	repo, mock := setupRepository(t, database.DriverPostgres)

	filter := domain.NewCampaignFilter()
	filter.DateFrom = "2099-01-01"

	mock.ExpectQuery(regexp.QuoteMeta("WHERE (date >= $1) GROUP BY campaign, platform ORDER BY total_spent DESC")).
		WithArgs("2099-01-01").
		WillReturnRows(sqlmock.NewRows([]string{
			"campaign", "platform", "total_impressions", "total_clicks",
			"total_conversions", "total_spent", "avg_roi", "avg_roas",
		}))

	metrics, err := repo.AggregateByCampaign(filter)

	require.NoError(t, err)
	assert.NotNil(t, metrics)
	assert.Empty(t, metrics)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCampaignRecordRepository_AggregateDaily(t *testing.T) {
	repo, mock := setupRepository(t, database.DriverPostgres)

	mock.ExpectQuery(regexp.QuoteMeta("GROUP BY date ORDER BY date ASC")).
		WillReturnRows(sqlmock.NewRows([]string{
			"date", "daily_impressions", "daily_clicks", "daily_conversions",
			"daily_spent", "daily_roi", "daily_roas",
		}).
			AddRow(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), 1000, 50, 5, 100.0, 1.2, 2.5).
			AddRow(time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC), 1200, 60, 6, 110.0, 1.3, 2.6))

	trends, err := repo.AggregateDaily(nil)

	require.NoError(t, err)
	require.Len(t, trends, 2)
	assert.Equal(t, domain.Date("2024-01-01"), trends[0].Date)
	assert.Equal(t, domain.Date("2024-01-02"), trends[1].Date)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCampaignRecordRepository_AggregateByPlatformAndDate(t *testing.T) {
	repo, mock := setupRepository(t, database.DriverSQLite)

	filter := domain.NewCampaignFilter()
	filter.Platform = "Instagram"

	mock.ExpectQuery(regexp.QuoteMeta("WHERE (platform = ?) GROUP BY platform, date ORDER BY platform ASC, date ASC")).
		WithArgs("Instagram").
		WillReturnRows(sqlmock.NewRows([]string{
			"platform", "date", "impressions", "clicks", "conversions", "spent", "roi",
		}).AddRow("Instagram", "2024-01-01", 900, 40, 3, 80.0, 1.1))

	trends, err := repo.AggregateByPlatformAndDate(filter)

	require.NoError(t, err)
	require.Len(t, trends, 1)
	assert.Equal(t, domain.PlatformTrend{
		Platform:    "Instagram",
		Date:        "2024-01-01",
		Impressions: 900,
		Clicks:      40,
		Conversions: 3,
		Spent:       80.0,
		ROI:         1.1,
	}, trends[0])
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCampaignRecordRepository_List(t *testing.T) {
	t.Run("ordena pela coluna pedida com desempate por id", func(t *testing.T) {
		repo, mock := setupRepository(t, database.DriverPostgres)

		filter := domain.NewCampaignFilter()
		filter.SortBy = "roas"
		filter.SortOrder = domain.SortAsc

		mock.ExpectQuery(regexp.QuoteMeta("FROM campaign_records ORDER BY roas ASC, id ASC")).
			WillReturnRows(sqlmock.NewRows(recordColumns).
				AddRow(1, "Google Ads", "Summer Sale", 1000, 50, 5, 100.0, 1.2, 2.5, 2.0, 5.0, 0.9, "2024-01-01"))

		records, err := repo.List(filter)

		require.NoError(t, err)
		require.Len(t, records, 1)
		assert.Equal(t, int64(1), records[0].ID)
		assert.Equal(t, domain.Date("2024-01-01"), records[0].Date)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("campo de ordenação desconhecido não chega ao banco", func(t *testing.T) {
		repo, mock := setupRepository(t, database.DriverPostgres)

		filter := domain.NewCampaignFilter()
		filter.SortBy = "spent; DROP TABLE campaign_records"

		_, err := repo.List(filter)

		assert.True(t, errors.Is(err, domain.ErrInvalidSortField))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("direção desconhecida é rejeitada", func(t *testing.T) {
		repo, _ := setupRepository(t, database.DriverPostgres)

		filter := domain.NewCampaignFilter()
		filter.SortOrder = "RANDOM()"

		_, err := repo.List(filter)

		assert.True(t, errors.Is(err, domain.ErrInvalidSortOrder))
	})
}

func TestCampaignRecordRepository_Page(t *testing.T) {
	t.Run("conta antes de paginar", func(t *testing.T) {
		repo, mock := setupRepository(t, database.DriverPostgres)

		filter := domain.NewCampaignFilter()
		filter.Platform = "Google Ads"
		filter.SortBy = "spent"
		filter.Page = 2
		filter.PerPage = 5

		mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM campaign_records WHERE (platform = $1)")).
			WithArgs("Google Ads").
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(12))

		mock.ExpectQuery(regexp.QuoteMeta("WHERE (platform = $1) ORDER BY spent DESC, id ASC LIMIT 5 OFFSET 5")).
			WithArgs("Google Ads").
			WillReturnRows(sqlmock.NewRows(recordColumns).
				AddRow(6, "Google Ads", "Brand", 1000, 50, 5, 300.0, 1.2, 2.5, 2.0, 5.0, 0.9, "2024-01-06").
				AddRow(7, "Google Ads", "Brand", 1000, 50, 5, 250.0, 1.2, 2.5, 2.0, 5.0, 0.9, "2024-01-07"))

		records, total, err := repo.Page(filter)

		require.NoError(t, err)
		assert.Equal(t, int64(12), total)
		assert.Len(t, records, 2)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("página além do total devolve lista vazia", func(t *testing.T) {
		repo, mock := setupRepository(t, database.DriverPostgres)

		filter := domain.NewCampaignFilter()
		filter.Page = 10

		mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM campaign_records")).
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(3))
		mock.ExpectQuery(regexp.QuoteMeta("ORDER BY date DESC, id ASC LIMIT 20 OFFSET 180")).
			WillReturnRows(sqlmock.NewRows(recordColumns))

		records, total, err := repo.Page(filter)

		require.NoError(t, err)
		assert.Equal(t, int64(3), total)
		assert.NotNil(t, records)
		assert.Empty(t, records)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("paginação inválida", func(t *testing.T) {
		repo, _ := setupRepository(t, database.DriverPostgres)

		filter := domain.NewCampaignFilter()
		filter.PerPage = 0

		_, _, err := repo.Page(filter)

		assert.True(t, errors.Is(err, domain.ErrInvalidPagination))
	})
}

func TestCampaignRecordRepository_Recent(t *testing.T) {
	repo, mock := setupRepository(t, database.DriverPostgres)

	mock.ExpectQuery(regexp.QuoteMeta("FROM campaign_records ORDER BY date DESC, id DESC LIMIT 5")).
		WillReturnRows(sqlmock.NewRows(recordColumns).
			AddRow(9, "Facebook", "Retargeting", 800, 30, 2, 60.0, 0.8, 1.9, 2.0, 3.75, 0.5, "2024-02-01"))

	records, err := repo.Recent(domain.RecentCampaignsLimit)

	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "Retargeting", records[0].Campaign)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCampaignRecordRepository_Distinct(t *testing.T) {
	repo, mock := setupRepository(t, database.DriverPostgres)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT DISTINCT platform FROM campaign_records ORDER BY platform ASC")).
		WillReturnRows(sqlmock.NewRows([]string{"platform"}).
			AddRow("Facebook").
			AddRow("Google Ads"))
	mock.ExpectQuery(regexp.QuoteMeta("SELECT DISTINCT campaign FROM campaign_records ORDER BY campaign ASC")).
		WillReturnRows(sqlmock.NewRows([]string{"campaign"}))

	platforms, err := repo.DistinctPlatforms()
	require.NoError(t, err)
	assert.Equal(t, []string{"Facebook", "Google Ads"}, platforms)

	campaigns, err := repo.DistinctCampaigns()
	require.NoError(t, err)
	assert.Equal(t, []string{}, campaigns)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCampaignRecordRepository_DateRange(t *testing.T) {
	t.Run("tabela com dados", func(t *testing.T) {
		repo, mock := setupRepository(t, database.DriverPostgres)

		mock.ExpectQuery(regexp.QuoteMeta("SELECT MIN(date), MAX(date) FROM campaign_records")).
			WillReturnRows(sqlmock.NewRows([]string{"min", "max"}).
				AddRow(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC)))

		dateRange, err := repo.DateRange()

		require.NoError(t, err)
		require.NotNil(t, dateRange.MinDate)
		assert.Equal(t, domain.Date("2024-01-01"), *dateRange.MinDate)
		assert.Equal(t, domain.Date("2024-12-31"), *dateRange.MaxDate)
	})

	t.Run("tabela vazia", func(t *testing.T) {
		repo, mock := setupRepository(t, database.DriverPostgres)

		mock.ExpectQuery(regexp.QuoteMeta("SELECT MIN(date), MAX(date) FROM campaign_records")).
			WillReturnRows(sqlmock.NewRows([]string{"min", "max"}).AddRow(nil, nil))

		dateRange, err := repo.DateRange()

		require.NoError(t, err)
		assert.Nil(t, dateRange.MinDate)
		assert.Nil(t, dateRange.MaxDate)
	})
}

func TestCampaignRecordRepository_Stats(t *testing.T) {
	repo, mock := setupRepository(t, database.DriverSQLite)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*), COUNT(DISTINCT platform), COUNT(DISTINCT campaign), " +
		"COALESCE(SUM(impressions), 0), COALESCE(SUM(clicks), 0), COALESCE(SUM(conversion), 0), COALESCE(SUM(spent), 0), " +
		"AVG(roi), AVG(roas), MIN(date), MAX(date) FROM campaign_records")).
		WillReturnRows(sqlmock.NewRows([]string{"count", "platforms", "campaigns", "impressions", "clicks", "conversions", "spent", "roi", "roas", "min", "max"}).
			AddRow(20, 4, 5, 25000, 1200, 60, 4500.5, 1.4, 2.2, "2024-01-01", "2024-01-20"))

	stats, err := repo.Stats()

	require.NoError(t, err)
	assert.Equal(t, int64(20), stats.TotalRecords)
	assert.Equal(t, int64(4), stats.DistinctPlatforms)
	assert.Equal(t, int64(5), stats.DistinctCampaigns)
	assert.Equal(t, int64(25000), stats.TotalImpressions)
	assert.Equal(t, int64(1200), stats.TotalClicks)
	assert.Equal(t, int64(60), stats.TotalConversions)
	assert.Equal(t, 4500.5, stats.TotalSpent)
	require.NotNil(t, stats.AvgROI)
	assert.Equal(t, 1.4, *stats.AvgROI)
	require.NotNil(t, stats.AvgROAS)
	assert.Equal(t, 2.2, *stats.AvgROAS)
	assert.Equal(t, domain.Date("2024-01-20"), *stats.DateRange.MaxDate)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCampaignRecordRepository_Stats_EmptyTable(t *testing.T) {
	repo, mock := setupRepository(t, database.DriverPostgres)

	mock.ExpectQuery(regexp.QuoteMeta("FROM campaign_records")).
		WillReturnRows(sqlmock.NewRows([]string{"count", "platforms", "campaigns", "impressions", "clicks", "conversions", "spent", "roi", "roas", "min", "max"}).
			AddRow(0, 0, 0, 0, 0, 0, 0, nil, nil, nil, nil))

	stats, err := repo.Stats()

	require.NoError(t, err)
	assert.Zero(t, stats.TotalSpent)
	assert.Nil(t, stats.AvgROI)
	assert.Nil(t, stats.AvgROAS)
	assert.Nil(t, stats.DateRange.MinDate)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCampaignRecordRepository_Ping(t *testing.T) {
	repo, mock := setupRepository(t, database.DriverPostgres)

	mock.ExpectPing()
	assert.NoError(t, repo.Ping())

	mock.ExpectPing().WillReturnError(errors.New("connection refused"))
	assert.ErrorContains(t, repo.Ping(), "connection refused")
}
