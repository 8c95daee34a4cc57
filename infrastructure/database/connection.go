// Package database abre a conexão com o banco onde ficam os registros de campanha
package database

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/656yash/adwise/internal/config"
	"github.com/Masterminds/squirrel"
	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"
)

// Drivers suportados
const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

type Connection struct {
	*sql.DB
	driver string
}

func NewConnection(
	ctx context.Context,
	cfg config.Database,
) (*Connection, error) {
	if cfg.Driver != DriverPostgres && cfg.Driver != DriverSQLite {
		return nil, fmt.Errorf("driver de banco não suportado: %s", cfg.Driver)
	}

	db, err := sql.Open(cfg.Driver, cfg.DSN)
	if err != nil {
		return nil, err
	}

	if cfg.MaxOpenConns > 0 {
		db.SetMaxOpenConns(cfg.MaxOpenConns)
	}

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, err
	}

	return &Connection{DB: db, driver: cfg.Driver}, nil
}

// Wrap usa um *sql.DB já aberto, como o criado pelo sqlmock nos testes
func Wrap(db *sql.DB, driver string) *Connection {
	return &Connection{DB: db, driver: driver}
}

func (c *Connection) Driver() string {
	return c.driver
}

// Placeholder devolve o formato de parâmetros esperado pelo driver
func (c *Connection) Placeholder() squirrel.PlaceholderFormat {
	if c.driver == DriverSQLite {
		return squirrel.Question
	}
	return squirrel.Dollar
}

// Builder cria um StatementBuilder já configurado para o driver
func (c *Connection) Builder() squirrel.StatementBuilderType {
	return squirrel.StatementBuilder.PlaceholderFormat(c.Placeholder())
}
