package api

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/656yash/adwise/internal/api/handler"
	"github.com/656yash/adwise/internal/api/handler/router"
	"github.com/656yash/adwise/internal/config"
	"github.com/656yash/adwise/internal/usecases/assisting"
	"github.com/656yash/adwise/internal/usecases/reporting"
	"github.com/656yash/adwise/pkg/metrics"
	"github.com/656yash/adwise/pkg/middleware"
	"github.com/justinas/alice"
	"github.com/sirupsen/logrus"
)

const shutdownTimeout = 15 * time.Second

type Server struct {
	httpServer *http.Server
}

func New(
	cfg *config.Config,
	reporter reporting.Reporter,
	assistant assisting.Assistant,
	store handler.StoreStatusProvider,
	m *metrics.Metrics,
) (*Server, error) {
	srv := &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port),
			Handler:           NewHandler(cfg, reporter, assistant, store, m),
			ReadHeaderTimeout: 2 * time.Second,
		},
	}

	return srv, nil
}

// NewHandler monta o roteador com a cadeia de middlewares globais
func NewHandler(
	cfg *config.Config,
	reporter reporting.Reporter,
	assistant assisting.Assistant,
	store handler.StoreStatusProvider,
	m *metrics.Metrics,
) http.Handler {
	rt := router.New(
		router.WithRoutes(handler.Healthcheck(reporter)...),
		router.WithRoutes(handler.Reporting(reporter)...),
		router.WithRoutes(handler.Assistant(assistant)...),
		router.WithRoutes(handler.Store(store)...),
		router.WithRoutes(handler.Metrics(m.Handler())...),
	)

	middlewares := []alice.Constructor{
		middleware.LogPanicMiddleware(),
		middleware.MetricsMiddleware(m, rt.Known),
		middleware.LoggingMiddleware(),
		middleware.Cors(cfg.Server.AllowedOrigins),
	}

	return alice.New(middlewares...).Then(rt)
}

func (s Server) Run(ctx context.Context) error {
	go func() {
		logrus.WithFields(logrus.Fields{
			"address": s.httpServer.Addr,
		}).Info("Servidor iniciando")

		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.WithError(err).Error("Erro durante a execução do servidor")
		}
	}()

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	select {
	case <-done:
		logrus.Info("Sinal de interrupção recebido")
	case <-ctx.Done():
		logrus.Info("Contexto de aplicação cancelado")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	logrus.WithFields(logrus.Fields{
		"timeout": shutdownTimeout.String(),
	}).Info("Iniciando desligamento gracioso do servidor")

	if err := s.Shutdown(shutdownCtx); err != nil {
		logrus.WithError(err).Error("Erro durante o desligamento do servidor")
		return err
	}

	logrus.Info("Servidor desligado com sucesso")
	return nil
}

func (s Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
