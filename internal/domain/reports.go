package domain

// DashboardSummary é a resposta de /dashboard/summary
type DashboardSummary struct {
	Summary         *SummaryRow      `json:"summary"`
	Platforms       []PlatformMetric `json:"platforms"`
	RecentCampaigns []CampaignRecord `json:"recent_campaigns"`
}

// KPIDataResponse é a resposta de /kpi/data
type KPIDataResponse struct {
	KPIData         []CampaignRecord `json:"kpi_data"`
	PlatformMetrics []PlatformMetric `json:"platform_metrics"`
	CampaignMetrics []CampaignMetric `json:"campaign_metrics"`
	FiltersApplied  FiltersApplied   `json:"filters_applied"`
}

// DetailedDataResponse é a resposta de /data/detailed
type DetailedDataResponse struct {
	Data           []CampaignRecord `json:"data"`
	Pagination     Pagination       `json:"pagination"`
	FiltersApplied FiltersApplied   `json:"filters_applied"`
}

// TrendsResponse é a resposta de /analytics/trends
type TrendsResponse struct {
	DailyTrends    []DailyTrend    `json:"daily_trends"`
	PlatformTrends []PlatformTrend `json:"platform_trends"`
}

// FilterOptions lista os valores disponíveis para os filtros da interface
type FilterOptions struct {
	Platforms []string  `json:"platforms"`
	Campaigns []string  `json:"campaigns"`
	DateRange DateRange `json:"date_range"`
}

// HealthStatus é a resposta de /health
type HealthStatus struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}
