// Package domain contém as estruturas de dados do domínio da aplicação
package domain

// CampaignRecord representa um dia observado de uma campanha em uma plataforma
type CampaignRecord struct {
	ID          int64   `json:"id"`
	Platform    string  `json:"platform"`
	Campaign    string  `json:"campaign"`
	Impressions int64   `json:"impressions"`
	Clicks      int64   `json:"clicks"`
	Conversion  int64   `json:"conversion"`
	Spent       float64 `json:"spent"`
	ROI         float64 `json:"roi"`
	ROAS        float64 `json:"roas"`
	CPC         float64 `json:"cpc"`
	CTR         float64 `json:"ctr"`
	KPI         float64 `json:"kpi"`
	Date        Date    `json:"date"`
}
