// Package scheduler contém os agendamentos em segundo plano da API
package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/656yash/adwise/infrastructure/repository"
	"github.com/656yash/adwise/internal/config"
	"github.com/656yash/adwise/internal/domain"
	"github.com/656yash/adwise/pkg/metrics"
	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
)

type StoreStatsConfig struct {
	CronSchedule string
	Enabled      bool
}

// StoreStatsService coleta periodicamente as estatísticas da base de campanhas
// e publica o resultado nas métricas
type StoreStatsService struct {
	scheduler           *gocron.Scheduler
	config              StoreStatsConfig
	repo                repository.CampaignRecordRepository
	metrics             *metrics.Metrics
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
	lastStats           *domain.StoreStats
	lastErr             error
}

func NewStoreStatsService(
	repo repository.CampaignRecordRepository,
	m *metrics.Metrics,
	cfg *config.Config,
) *StoreStatsService {
	statsConfig := StoreStatsConfig{
		CronSchedule: cfg.StoreStats.CronSchedule,
		Enabled:      cfg.StoreStats.Enabled,
	}

	logrus.WithFields(logrus.Fields{
		"cron_schedule": statsConfig.CronSchedule,
		"enabled":       statsConfig.Enabled,
	}).Info("Configuração do agendador de estatísticas da base carregada")

	return &StoreStatsService{
		scheduler: gocron.NewScheduler(time.Local),
		config:    statsConfig,
		repo:      repo,
		metrics:   m,
	}
}

// Start agenda a coleta e faz uma primeira execução em segundo plano
func (s *StoreStatsService) Start(ctx context.Context) error {
	if !s.config.Enabled {
		logrus.Info("Coleta de estatísticas da base desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de estatísticas da base")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		if err := s.RefreshStats(); err != nil {
			logrus.WithError(err).Error("Erro na coleta de estatísticas da base")
		}
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar coleta de estatísticas da base: %w", err)
	}

	s.scheduler.StartAsync()
	s.TriggerManualSync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de estatísticas da base")
		s.scheduler.Stop()
	}()

	return nil
}

// RefreshStats consulta a base e atualiza as métricas. Execuções concorrentes são ignoradas.
func (s *StoreStatsService) RefreshStats() error {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Coleta de estatísticas da base já em andamento, ignorando")
		return nil
	}
	s.syncRunning = true
	s.lastSyncStartedAt = time.Now()
	s.syncMutex.Unlock()

	stats, err := s.repo.Stats()

	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()
	s.syncRunning = false
	s.lastErr = err

	if err != nil {
		return fmt.Errorf("erro ao buscar estatísticas da base: %w", err)
	}

	s.lastStats = stats
	s.lastSyncCompletedAt = time.Now()

	if s.metrics != nil {
		s.metrics.UpdateStoreStats(stats, s.lastSyncCompletedAt)
	}

	fields := logrus.Fields{
		"store_total_records":      stats.TotalRecords,
		"store_distinct_platforms": stats.DistinctPlatforms,
		"store_distinct_campaigns": stats.DistinctCampaigns,
		"store_total_impressions":  stats.TotalImpressions,
		"store_total_spent":        stats.TotalSpent,
	}
	if stats.DateRange.MinDate != nil && stats.DateRange.MaxDate != nil {
		fields["store_min_date"] = *stats.DateRange.MinDate
		fields["store_max_date"] = *stats.DateRange.MaxDate
	}
	logrus.WithFields(fields).Info("Estatísticas da base atualizadas")

	return nil
}

// TriggerManualSync inicia uma coleta fora do agendamento
func (s *StoreStatsService) TriggerManualSync() {
	go func() {
		if err := s.RefreshStats(); err != nil {
			logrus.WithError(err).Error("Erro na coleta manual de estatísticas da base")
		}
	}()
}

// GetStatus retorna o estado atual do agendador e a última coleta
func (s *StoreStatsService) GetStatus() map[string]any {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	status := map[string]any{
		"enabled":                s.config.Enabled,
		"cron":                   s.config.CronSchedule,
		"running":                s.syncRunning,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
		"stats":                  s.lastStats,
	}
	if s.lastErr != nil {
		status["last_error"] = s.lastErr.Error()
	}

	return status
}
