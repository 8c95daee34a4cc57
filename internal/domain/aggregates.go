package domain

// SummaryRow é o resumo global sobre as linhas que satisfazem o filtro.
// As médias ficam nulas quando nenhuma linha é encontrada.
type SummaryRow struct {
	TotalCampaigns   int64    `json:"total_campaigns"`
	TotalImpressions int64    `json:"total_impressions"`
	TotalClicks      int64    `json:"total_clicks"`
	TotalConversions int64    `json:"total_conversions"`
	TotalSpent       float64  `json:"total_spent"`
	AvgROI           *float64 `json:"avg_roi"`
	AvgROAS          *float64 `json:"avg_roas"`
	AvgCPC           *float64 `json:"avg_cpc"`
	AvgCTR           *float64 `json:"avg_ctr"`
}

// PlatformMetric agrega as linhas de uma plataforma
type PlatformMetric struct {
	Platform         string  `json:"platform"`
	Campaigns        int64   `json:"campaigns"`
	TotalImpressions int64   `json:"total_impressions"`
	TotalClicks      int64   `json:"total_clicks"`
	TotalConversions int64   `json:"total_conversions"`
	TotalSpent       float64 `json:"total_spent"`
	AvgROI           float64 `json:"avg_roi"`
	AvgROAS          float64 `json:"avg_roas"`
	AvgCPC           float64 `json:"avg_cpc"`
	AvgCTR           float64 `json:"avg_ctr"`
}

// CampaignMetric agrega as linhas de um par campanha/plataforma
type CampaignMetric struct {
	Campaign         string  `json:"campaign"`
	Platform         string  `json:"platform"`
	TotalImpressions int64   `json:"total_impressions"`
	TotalClicks      int64   `json:"total_clicks"`
	TotalConversions int64   `json:"total_conversions"`
	TotalSpent       float64 `json:"total_spent"`
	AvgROI           float64 `json:"avg_roi"`
	AvgROAS          float64 `json:"avg_roas"`
}

type DailyTrend struct {
	Date             Date    `json:"date"`
	DailyImpressions int64   `json:"daily_impressions"`
	DailyClicks      int64   `json:"daily_clicks"`
	DailyConversions int64   `json:"daily_conversions"`
	DailySpent       float64 `json:"daily_spent"`
	DailyROI         float64 `json:"daily_roi"`
	DailyROAS        float64 `json:"daily_roas"`
}

type PlatformTrend struct {
	Platform    string  `json:"platform"`
	Date        Date    `json:"date"`
	Impressions int64   `json:"impressions"`
	Clicks      int64   `json:"clicks"`
	Conversions int64   `json:"conversions"`
	Spent       float64 `json:"spent"`
	ROI         float64 `json:"roi"`
}

// DateRange é o intervalo de datas presente na base. Os campos ficam nulos
// quando a tabela está vazia.
type DateRange struct {
	MinDate *Date `json:"min_date"`
	MaxDate *Date `json:"max_date"`
}

// StoreStats resume o conteúdo da tabela de campanhas. As médias ficam nulas
// quando a tabela está vazia.
type StoreStats struct {
	TotalRecords      int64     `json:"total_records"`
	DistinctPlatforms int64     `json:"distinct_platforms"`
	DistinctCampaigns int64     `json:"distinct_campaigns"`
	TotalImpressions  int64     `json:"total_impressions"`
	TotalClicks       int64     `json:"total_clicks"`
	TotalConversions  int64     `json:"total_conversions"`
	TotalSpent        float64   `json:"total_spent"`
	AvgROI            *float64  `json:"avg_roi"`
	AvgROAS           *float64  `json:"avg_roas"`
	DateRange         DateRange `json:"date_range"`
}
