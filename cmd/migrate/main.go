package main

import (
	"errors"
	"flag"
	"fmt"
	"strconv"

	"github.com/656yash/adwise/internal/config"
	"github.com/656yash/adwise/pkg/log"
	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/database/sqlite"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/sirupsen/logrus"
)

func main() {
	var command string

	flag.StringVar(&command, "cmd", "up", "Comando de migração (up, down, version, force)")
	flag.Parse()

	log.Configure("info")

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	// Cada driver tem seu próprio diretório de scripts
	migrationPath := fmt.Sprintf("file://%s/%s", cfg.Migrations.Path, cfg.Database.Driver)
	databaseURL := config.MigrationURL(cfg.Database)

	logger := logrus.WithFields(logrus.Fields{
		"path":     migrationPath,
		"driver":   cfg.Database.Driver,
		"database": maskDatabaseURL(databaseURL),
	})
	logger.Info("Executando migrações")

	m, err := migrate.New(migrationPath, databaseURL)
	if err != nil {
		logger.WithError(err).Fatal("Erro ao criar instância de migração")
	}
	defer m.Close()

	switch command {
	case "up":
		if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
			logger.WithError(err).Fatal("Falha ao aplicar migrações")
		}
		logger.Info("Migrações aplicadas com sucesso")

	case "down":
		if err := m.Down(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
			logger.WithError(err).Fatal("Falha ao reverter migrações")
		}
		logger.Info("Migrações revertidas com sucesso")

	case "version":
		version, dirty, err := m.Version()
		if err != nil && !errors.Is(err, migrate.ErrNilVersion) {
			logger.WithError(err).Fatal("Erro ao obter versão das migrações")
		}
		logger.WithFields(logrus.Fields{
			"version": version,
			"dirty":   dirty,
		}).Info("Versão atual das migrações")

	case "force":
		if flag.NArg() < 1 {
			logger.Fatal("Informe a versão para o comando force")
		}
		forceVersion, err := strconv.Atoi(flag.Arg(0))
		if err != nil {
			logger.WithError(err).Fatal("Versão inválida para o comando force")
		}
		if err := m.Force(forceVersion); err != nil {
			logger.WithError(err).Fatal("Falha ao forçar versão das migrações")
		}
		logger.WithField("version", forceVersion).Info("Versão das migrações forçada")

	default:
		logger.Fatalf("Comando desconhecido: %s (use: up, down, version, force)", command)
	}
}

// maskDatabaseURL esconde as credenciais da URL nos logs
func maskDatabaseURL(url string) string {
	if len(url) < 20 {
		return "***"
	}
	return url[:12] + "***" + url[len(url)-10:]
}
