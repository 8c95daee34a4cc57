// Package metrics registra as métricas Prometheus da API
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/656yash/adwise/internal/domain"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics agrupa as métricas expostas em /metrics
type Metrics struct {
	registry *prometheus.Registry

	// HTTP
	HTTPRequests *prometheus.CounterVec
	HTTPDuration *prometheus.HistogramVec

	// Assistente
	AssistantReplies *prometheus.CounterVec

	// Base de campanhas
	StoreRecords     prometheus.Gauge
	StorePlatforms   prometheus.Gauge
	StoreCampaigns   prometheus.Gauge
	StoreImpressions prometheus.Gauge
	StoreClicks      prometheus.Gauge
	StoreConversions prometheus.Gauge
	StoreSpent       prometheus.Gauge
	StoreLastRefresh prometheus.Gauge
}

// NewMetrics cria as métricas no registry informado
func NewMetrics(namespace string, registry *prometheus.Registry) *Metrics {
	factory := promauto.With(registry)

	return &Metrics{
		registry: registry,
		HTTPRequests: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "http_requests_total",
				Help:      "Total de requisições HTTP atendidas",
			},
			[]string{"method", "route", "status"},
		),
		HTTPDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "http_request_duration_seconds",
				Help:      "Duração das requisições HTTP",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"method", "route"},
		),
		AssistantReplies: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "assistant_replies_total",
				Help:      "Respostas do assistente por origem",
			},
			[]string{"source"},
		),
		StoreRecords: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "store_records",
			Help:      "Quantidade de registros de campanha na base",
		}),
		StorePlatforms: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "store_platforms",
			Help:      "Quantidade de plataformas distintas na base",
		}),
		StoreCampaigns: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "store_campaigns",
			Help:      "Quantidade de campanhas distintas na base",
		}),
		StoreImpressions: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "store_impressions",
			Help:      "Soma das impressões registradas na base",
		}),
		StoreClicks: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "store_clicks",
			Help:      "Soma dos cliques registrados na base",
		}),
		StoreConversions: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "store_conversions",
			Help:      "Soma das conversões registradas na base",
		}),
		StoreSpent: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "store_spent",
			Help:      "Soma do investimento registrado na base",
		}),
		StoreLastRefresh: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "store_stats_last_refresh_timestamp_seconds",
			Help:      "Momento da última coleta de estatísticas da base",
		}),
	}
}

// Handler expõe o registry no formato do Prometheus
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// Register adiciona coletores extras, como o de estatísticas do pool de conexões
func (m *Metrics) Register(collectors ...prometheus.Collector) error {
	for _, c := range collectors {
		if err := m.registry.Register(c); err != nil {
			return err
		}
	}
	return nil
}

func (m *Metrics) RecordRequest(method, route string, status int, duration time.Duration) {
	m.HTTPRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.HTTPDuration.WithLabelValues(method, route).Observe(duration.Seconds())
}

func (m *Metrics) RecordAssistantReply(source domain.ReplySource) {
	m.AssistantReplies.WithLabelValues(string(source)).Inc()
}

func (m *Metrics) UpdateStoreStats(stats *domain.StoreStats, refreshedAt time.Time) {
	m.StoreRecords.Set(float64(stats.TotalRecords))
	m.StorePlatforms.Set(float64(stats.DistinctPlatforms))
	m.StoreCampaigns.Set(float64(stats.DistinctCampaigns))
	m.StoreImpressions.Set(float64(stats.TotalImpressions))
	m.StoreClicks.Set(float64(stats.TotalClicks))
	m.StoreConversions.Set(float64(stats.TotalConversions))
	m.StoreSpent.Set(stats.TotalSpent)
	m.StoreLastRefresh.Set(float64(refreshedAt.Unix()))
}
