package main

import (
	"context"

	"github.com/656yash/adwise/infrastructure/database"
	"github.com/656yash/adwise/infrastructure/integrator/openai"
	"github.com/656yash/adwise/infrastructure/repository"
	"github.com/656yash/adwise/internal/api"
	"github.com/656yash/adwise/internal/config"
	"github.com/656yash/adwise/internal/scheduler"
	"github.com/656yash/adwise/internal/usecases/assisting"
	"github.com/656yash/adwise/internal/usecases/reporting"
	"github.com/656yash/adwise/pkg/log"
	"github.com/656yash/adwise/pkg/metrics"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/sirupsen/logrus"
)

const metricsNamespace = "adwise"

func main() {
	log.Configure("info")

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	// Define o nível de log com base na configuração
	logLevel := log.Configure(cfg.App.LogLevel)
	logrus.Infof("Nível de log configurado para: %s", logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	conn := dbconn(ctx, cfg.Database)
	defer conn.Close()

	registry := prometheus.NewRegistry()
	m := metrics.NewMetrics(metricsNamespace, registry)
	if err := m.Register(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		collectors.NewDBStatsCollector(conn.DB, metricsNamespace),
	); err != nil {
		logrus.WithError(err).Fatal("Erro ao registrar coletores de métricas")
	}

	campaignRecordRepo := repository.NewCampaignRecordRepository(conn)

	reporter := reporting.NewService(campaignRecordRepo)

	credentials := assisting.NewCredentials(cfg.OpenAI.APIKey)
	if !credentials.Configured() {
		logrus.Warn("OPENAI_API_KEY não configurada, o assistente responderá apenas com regras e resposta padrão")
	}

	assistant := assisting.NewResponder(
		credentials,
		openai.NewClient(cfg.OpenAI),
		assisting.Config{
			Model:        cfg.OpenAI.Model,
			HistoryLimit: cfg.Assistant.HistoryLimit,
		},
		m,
	)

	storeStatsService := scheduler.NewStoreStatsService(campaignRecordRepo, m, cfg)
	if err := storeStatsService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de estatísticas da base")
	} else {
		logrus.Info("Agendador de estatísticas da base iniciado com sucesso")
	}

	server, err := api.New(cfg, reporter, assistant, storeStatsService, m)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// dbconn cria a conexão com o banco de dados configurado
func dbconn(ctx context.Context, dbConfig config.Database) *database.Connection {
	conn, err := database.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).WithField("driver", dbConfig.Driver).Fatal("Erro ao conectar ao banco de dados")
	}

	logrus.WithField("driver", conn.Driver()).Info("Conexão com o banco de dados estabelecida com sucesso")
	return conn
}
