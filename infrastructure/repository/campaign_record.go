// Package repository contém as implementações dos repositórios para acesso aos dados
package repository

import (
	"database/sql"
	"fmt"
	"strings"

	"github.com/656yash/adwise/infrastructure/database"
	"github.com/656yash/adwise/internal/domain"
	"github.com/Masterminds/squirrel"
)

const (
	campaignRecordsTable = "campaign_records"
)

var campaignRecordColumns = []string{
	"id",
	"platform",
	"campaign",
	"impressions",
	"clicks",
	"conversion",
	"spent",
	"roi",
	"roas",
	"cpc",
	"ctr",
	"kpi",
	"date",
}

// CampaignRecordRepository é a camada de consulta e agregação sobre a tabela de campanhas.
// Todas as operações recebem o mesmo filtro, então os agregados de uma requisição
// são calculados sobre o mesmo conjunto de linhas.
type CampaignRecordRepository interface {
	AggregateGlobal(filter *domain.CampaignFilter) (*domain.SummaryRow, error)
	AggregateByPlatform(filter *domain.CampaignFilter) ([]domain.PlatformMetric, error)
	AggregateByCampaign(filter *domain.CampaignFilter) ([]domain.CampaignMetric, error)
	AggregateDaily(filter *domain.CampaignFilter) ([]domain.DailyTrend, error)
	AggregateByPlatformAndDate(filter *domain.CampaignFilter) ([]domain.PlatformTrend, error)
	List(filter *domain.CampaignFilter) ([]domain.CampaignRecord, error)
	Page(filter *domain.CampaignFilter) ([]domain.CampaignRecord, int64, error)
	Recent(limit int) ([]domain.CampaignRecord, error)
	DistinctPlatforms() ([]string, error)
	DistinctCampaigns() ([]string, error)
	DateRange() (*domain.DateRange, error)
	Stats() (*domain.StoreStats, error)
	Ping() error
}

type campaignRecordRepository struct {
	conn    *database.Connection
	builder squirrel.StatementBuilderType
}

func NewCampaignRecordRepository(conn *database.Connection) CampaignRecordRepository {
	return &campaignRecordRepository{
		conn:    conn,
		builder: conn.Builder(),
	}
}

// BuildPredicate monta a conjunção de cláusulas do filtro. Sem filtros a
// conjunção fica vazia e nenhuma cláusula WHERE é gerada.
func BuildPredicate(filter *domain.CampaignFilter) squirrel.And {
	predicate := squirrel.And{}
	if filter == nil {
		return predicate
	}

	if platform := strings.TrimSpace(filter.Platform); platform != "" && !strings.EqualFold(platform, domain.FilterAll) {
		predicate = append(predicate, squirrel.Eq{"platform": platform})
	}

	if campaign := strings.TrimSpace(filter.Campaign); campaign != "" && !strings.EqualFold(campaign, domain.FilterAll) {
		predicate = append(predicate, squirrel.Eq{"campaign": campaign})
	}

	// Datas já chegam normalizadas, a comparação é feita direto na coluna
	if filter.DateFrom != "" {
		predicate = append(predicate, squirrel.GtOrEq{"date": string(filter.DateFrom)})
	}

	if filter.DateTo != "" {
		predicate = append(predicate, squirrel.LtOrEq{"date": string(filter.DateTo)})
	}

	return predicate
}

func (r *campaignRecordRepository) AggregateGlobal(filter *domain.CampaignFilter) (*domain.SummaryRow, error) {
	queryBuilder := r.builder.
		Select(
			"COUNT(DISTINCT campaign) AS total_campaigns",
			"COALESCE(SUM(impressions), 0) AS total_impressions",
			"COALESCE(SUM(clicks), 0) AS total_clicks",
			"COALESCE(SUM(conversion), 0) AS total_conversions",
			"COALESCE(SUM(spent), 0) AS total_spent",
			"AVG(roi) AS avg_roi",
			"AVG(roas) AS avg_roas",
			"AVG(cpc) AS avg_cpc",
			"AVG(ctr) AS avg_ctr",
		).
		From(campaignRecordsTable)

	query, args, err := withPredicate(queryBuilder, filter).ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	var summary domain.SummaryRow
	var avgROI, avgROAS, avgCPC, avgCTR sql.NullFloat64

	err = r.conn.QueryRow(query, args...).Scan(
		&summary.TotalCampaigns,
		&summary.TotalImpressions,
		&summary.TotalClicks,
		&summary.TotalConversions,
		&summary.TotalSpent,
		&avgROI,
		&avgROAS,
		&avgCPC,
		&avgCTR,
	)
	if err != nil {
		return nil, fmt.Errorf("erro ao calcular resumo das campanhas: %w", err)
	}

	summary.AvgROI = nullableFloat(avgROI)
	summary.AvgROAS = nullableFloat(avgROAS)
	summary.AvgCPC = nullableFloat(avgCPC)
	summary.AvgCTR = nullableFloat(avgCTR)

	return &summary, nil
}

func (r *campaignRecordRepository) AggregateByPlatform(filter *domain.CampaignFilter) ([]domain.PlatformMetric, error) {
	queryBuilder := r.builder.
		Select(
			"platform",
			"COUNT(*) AS campaigns",
			"COALESCE(SUM(impressions), 0) AS total_impressions",
			"COALESCE(SUM(clicks), 0) AS total_clicks",
			"COALESCE(SUM(conversion), 0) AS total_conversions",
			"COALESCE(SUM(spent), 0) AS total_spent",
			"AVG(roi) AS avg_roi",
			"AVG(roas) AS avg_roas",
			"AVG(cpc) AS avg_cpc",
			"AVG(ctr) AS avg_ctr",
		).
		From(campaignRecordsTable)

	queryBuilder = withPredicate(queryBuilder, filter).
		GroupBy("platform").
		OrderBy("total_spent DESC", "platform ASC")

	rows, err := r.query(queryBuilder)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	metrics := make([]domain.PlatformMetric, 0)
	for rows.Next() {
		var metric domain.PlatformMetric
		err := rows.Scan(
			&metric.Platform,
			&metric.Campaigns,
			&metric.TotalImpressions,
			&metric.TotalClicks,
			&metric.TotalConversions,
			&metric.TotalSpent,
			&metric.AvgROI,
			&metric.AvgROAS,
			&metric.AvgCPC,
			&metric.AvgCTR,
		)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear métricas por plataforma: %w", err)
		}
		metrics = append(metrics, metric)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return metrics, nil
}

func (r *campaignRecordRepository) AggregateByCampaign(filter *domain.CampaignFilter) ([]domain.CampaignMetric, error) {
	queryBuilder := r.builder.
		Select(
			"campaign",
			"platform",
			"COALESCE(SUM(impressions), 0) AS total_impressions",
			"COALESCE(SUM(clicks), 0) AS total_clicks",
			"COALESCE(SUM(conversion), 0) AS total_conversions",
			"COALESCE(SUM(spent), 0) AS total_spent",
			"AVG(roi) AS avg_roi",
			"AVG(roas) AS avg_roas",
		).
		From(campaignRecordsTable)

	queryBuilder = withPredicate(queryBuilder, filter).
		GroupBy("campaign", "platform").
		OrderBy("total_spent DESC", "campaign ASC", "platform ASC")

	rows, err := r.query(queryBuilder)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	metrics := make([]domain.CampaignMetric, 0)
	for rows.Next() {
		var metric domain.CampaignMetric
		err := rows.Scan(
			&metric.Campaign,
			&metric.Platform,
			&metric.TotalImpressions,
			&metric.TotalClicks,
			&metric.TotalConversions,
			&metric.TotalSpent,
			&metric.AvgROI,
			&metric.AvgROAS,
		)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear métricas por campanha: %w", err)
		}
		metrics = append(metrics, metric)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return metrics, nil
}

func (r *campaignRecordRepository) AggregateDaily(filter *domain.CampaignFilter) ([]domain.DailyTrend, error) {
	queryBuilder := r.builder.
		Select(
			"date",
			"COALESCE(SUM(impressions), 0) AS daily_impressions",
			"COALESCE(SUM(clicks), 0) AS daily_clicks",
			"COALESCE(SUM(conversion), 0) AS daily_conversions",
			"COALESCE(SUM(spent), 0) AS daily_spent",
			"AVG(roi) AS daily_roi",
			"AVG(roas) AS daily_roas",
		).
		From(campaignRecordsTable)

	queryBuilder = withPredicate(queryBuilder, filter).
		GroupBy("date").
		OrderBy("date ASC")

	rows, err := r.query(queryBuilder)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	trends := make([]domain.DailyTrend, 0)
	for rows.Next() {
		var trend domain.DailyTrend
		err := rows.Scan(
			&trend.Date,
			&trend.DailyImpressions,
			&trend.DailyClicks,
			&trend.DailyConversions,
			&trend.DailySpent,
			&trend.DailyROI,
			&trend.DailyROAS,
		)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear tendência diária: %w", err)
		}
		trends = append(trends, trend)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return trends, nil
}

func (r *campaignRecordRepository) AggregateByPlatformAndDate(filter *domain.CampaignFilter) ([]domain.PlatformTrend, error) {
	queryBuilder := r.builder.
		Select(
			"platform",
			"date",
			"COALESCE(SUM(impressions), 0) AS impressions",
			"COALESCE(SUM(clicks), 0) AS clicks",
			"COALESCE(SUM(conversion), 0) AS conversions",
			"COALESCE(SUM(spent), 0) AS spent",
			"AVG(roi) AS roi",
		).
		From(campaignRecordsTable)

	queryBuilder = withPredicate(queryBuilder, filter).
		GroupBy("platform", "date").
		OrderBy("platform ASC", "date ASC")

	rows, err := r.query(queryBuilder)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	trends := make([]domain.PlatformTrend, 0)
	for rows.Next() {
		var trend domain.PlatformTrend
		err := rows.Scan(
			&trend.Platform,
			&trend.Date,
			&trend.Impressions,
			&trend.Clicks,
			&trend.Conversions,
			&trend.Spent,
			&trend.ROI,
		)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear tendência por plataforma: %w", err)
		}
		trends = append(trends, trend)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return trends, nil
}

func (r *campaignRecordRepository) List(filter *domain.CampaignFilter) ([]domain.CampaignRecord, error) {
	orderBy, err := orderClauses(filter)
	if err != nil {
		return nil, err
	}

	queryBuilder := r.builder.
		Select(campaignRecordColumns...).
		From(campaignRecordsTable)

	queryBuilder = withPredicate(queryBuilder, filter).OrderBy(orderBy...)

	return r.selectRecords(queryBuilder)
}

// Page devolve a página pedida e a contagem total de linhas que satisfazem o filtro
func (r *campaignRecordRepository) Page(filter *domain.CampaignFilter) ([]domain.CampaignRecord, int64, error) {
	if filter == nil {
		filter = domain.NewCampaignFilter()
	}

	if filter.Page < 1 || filter.PerPage < 1 {
		return nil, 0, domain.ErrInvalidPagination
	}

	orderBy, err := orderClauses(filter)
	if err != nil {
		return nil, 0, err
	}

	countQuery, countArgs, err := withPredicate(
		r.builder.Select("COUNT(*)").From(campaignRecordsTable),
		filter,
	).ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("erro ao construir a query de contagem: %w", err)
	}

	var total int64
	if err := r.conn.QueryRow(countQuery, countArgs...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("erro ao contar registros de campanha: %w", err)
	}

	queryBuilder := r.builder.
		Select(campaignRecordColumns...).
		From(campaignRecordsTable)

	queryBuilder = withPredicate(queryBuilder, filter).
		OrderBy(orderBy...).
		Limit(uint64(filter.PerPage)).
		Offset(uint64(filter.Offset()))

	records, err := r.selectRecords(queryBuilder)
	if err != nil {
		return nil, 0, err
	}

	return records, total, nil
}

func (r *campaignRecordRepository) Recent(limit int) ([]domain.CampaignRecord, error) {
	queryBuilder := r.builder.
		Select(campaignRecordColumns...).
		From(campaignRecordsTable).
		OrderBy("date DESC", "id DESC")

	if limit > 0 {
		queryBuilder = queryBuilder.Limit(uint64(limit))
	}

	return r.selectRecords(queryBuilder)
}

func (r *campaignRecordRepository) DistinctPlatforms() ([]string, error) {
	return r.distinct("platform")
}

func (r *campaignRecordRepository) DistinctCampaigns() ([]string, error) {
	return r.distinct("campaign")
}

func (r *campaignRecordRepository) DateRange() (*domain.DateRange, error) {
	query, args, err := r.builder.
		Select("MIN(date)", "MAX(date)").
		From(campaignRecordsTable).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	var minDate, maxDate domain.Date
	if err := r.conn.QueryRow(query, args...).Scan(&minDate, &maxDate); err != nil {
		return nil, fmt.Errorf("erro ao buscar intervalo de datas: %w", err)
	}

	return &domain.DateRange{
		MinDate: nullableDate(minDate),
		MaxDate: nullableDate(maxDate),
	}, nil
}

func (r *campaignRecordRepository) Stats() (*domain.StoreStats, error) {
	query, args, err := r.builder.
		Select(
			"COUNT(*)",
			"COUNT(DISTINCT platform)",
			"COUNT(DISTINCT campaign)",
			"COALESCE(SUM(impressions), 0)",
			"COALESCE(SUM(clicks), 0)",
			"COALESCE(SUM(conversion), 0)",
			"COALESCE(SUM(spent), 0)",
			"AVG(roi)",
			"AVG(roas)",
			"MIN(date)",
			"MAX(date)",
		).
		From(campaignRecordsTable).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	var (
		stats            domain.StoreStats
		avgROI, avgROAS  sql.NullFloat64
		minDate, maxDate domain.Date
	)

	err = r.conn.QueryRow(query, args...).Scan(
		&stats.TotalRecords,
		&stats.DistinctPlatforms,
		&stats.DistinctCampaigns,
		&stats.TotalImpressions,
		&stats.TotalClicks,
		&stats.TotalConversions,
		&stats.TotalSpent,
		&avgROI,
		&avgROAS,
		&minDate,
		&maxDate,
	)
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar estatísticas da base: %w", err)
	}

	stats.AvgROI = nullableFloat(avgROI)
	stats.AvgROAS = nullableFloat(avgROAS)

	stats.DateRange = domain.DateRange{
		MinDate: nullableDate(minDate),
		MaxDate: nullableDate(maxDate),
	}

	return &stats, nil
}

func (r *campaignRecordRepository) Ping() error {
	if err := r.conn.Ping(); err != nil {
		return fmt.Errorf("erro ao verificar conexão com o banco: %w", err)
	}
	return nil
}

func (r *campaignRecordRepository) distinct(column string) ([]string, error) {
	queryBuilder := r.builder.
		Select("DISTINCT " + column).
		From(campaignRecordsTable).
		OrderBy(column + " ASC")

	rows, err := r.query(queryBuilder)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	values := make([]string, 0)
	for rows.Next() {
		var value string
		if err := rows.Scan(&value); err != nil {
			return nil, fmt.Errorf("erro ao escanear %s: %w", column, err)
		}
		values = append(values, value)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return values, nil
}

func (r *campaignRecordRepository) selectRecords(queryBuilder squirrel.SelectBuilder) ([]domain.CampaignRecord, error) {
	rows, err := r.query(queryBuilder)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	records := make([]domain.CampaignRecord, 0)
	for rows.Next() {
		record, err := scanCampaignRecord(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear registro de campanha: %w", err)
		}
		records = append(records, *record)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return records, nil
}

func (r *campaignRecordRepository) query(queryBuilder squirrel.SelectBuilder) (*sql.Rows, error) {
	query, args, err := queryBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}

	return rows, nil
}

func scanCampaignRecord(rows *sql.Rows) (*domain.CampaignRecord, error) {
	record := &domain.CampaignRecord{}

	err := rows.Scan(
		&record.ID,
		&record.Platform,
		&record.Campaign,
		&record.Impressions,
		&record.Clicks,
		&record.Conversion,
		&record.Spent,
		&record.ROI,
		&record.ROAS,
		&record.CPC,
		&record.CTR,
		&record.KPI,
		&record.Date,
	)
	if err != nil {
		return nil, err
	}

	return record, nil
}

// withPredicate só adiciona WHERE quando existe ao menos uma cláusula,
// já que uma conjunção vazia vira "(1=1)" no squirrel
func withPredicate(queryBuilder squirrel.SelectBuilder, filter *domain.CampaignFilter) squirrel.SelectBuilder {
	if predicate := BuildPredicate(filter); len(predicate) > 0 {
		return queryBuilder.Where(predicate)
	}
	return queryBuilder
}

// orderClauses traduz o campo e a direção de ordenação em cláusulas ORDER BY.
// O id entra como desempate para que páginas consecutivas não repitam linhas.
func orderClauses(filter *domain.CampaignFilter) ([]string, error) {
	sortBy := domain.DefaultSortBy
	sortOrder := domain.SortDesc
	if filter != nil {
		if filter.SortBy != "" {
			sortBy = filter.SortBy
		}
		if filter.SortOrder != "" {
			sortOrder = filter.SortOrder
		}
	}

	column, ok := domain.SortColumn(sortBy)
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidSortField, sortBy)
	}

	if sortOrder != domain.SortAsc && sortOrder != domain.SortDesc {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidSortOrder, sortOrder)
	}

	clauses := []string{fmt.Sprintf("%s %s", column, sortOrder)}
	if column != "id" {
		clauses = append(clauses, "id ASC")
	}

	return clauses, nil
}

func nullableFloat(value sql.NullFloat64) *float64 {
	if !value.Valid {
		return nil
	}
	v := value.Float64
	return &v
}

func nullableDate(value domain.Date) *domain.Date {
	if value == "" {
		return nil
	}
	return &value
}
