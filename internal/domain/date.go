package domain

import (
	"database/sql/driver"
	"fmt"
	"strings"
	"time"
)

// Formatos de data aceitos. O formato canônico é ISO (yyyy-mm-dd), o legado
// dd-mm-yyyy vem das planilhas exportadas das plataformas.
const (
	DateLayout       = time.DateOnly
	LegacyDateLayout = "02-01-2006"
)

// Date guarda um dia no formato canônico yyyy-mm-dd
type Date string

// NormalizeDate converte uma data informada pelo cliente para o formato canônico
func NormalizeDate(value string) (Date, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return "", nil
	}

	for _, layout := range []string{DateLayout, LegacyDateLayout} {
		if t, err := time.Parse(layout, value); err == nil {
			return Date(t.Format(DateLayout)), nil
		}
	}

	return "", fmt.Errorf("data inválida %q: use yyyy-mm-dd ou dd-mm-yyyy", value)
}

func (d Date) String() string {
	return string(d)
}

// Scan implementa sql.Scanner. O PostgreSQL devolve colunas DATE como time.Time
// e o SQLite devolve texto, então os dois caminhos são aceitos.
func (d *Date) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		*d = ""
	case time.Time:
		*d = Date(v.Format(DateLayout))
	case []byte:
		return d.scanString(string(v))
	case string:
		return d.scanString(v)
	default:
		return fmt.Errorf("tipo de data não suportado: %T", src)
	}

	return nil
}

func (d *Date) scanString(value string) error {
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		*d = Date(t.Format(DateLayout))
		return nil
	}

	normalized, err := NormalizeDate(value)
	if err != nil {
		return err
	}

	*d = normalized
	return nil
}

// Value implementa driver.Valuer
func (d Date) Value() (driver.Value, error) {
	if d == "" {
		return nil, nil
	}
	return string(d), nil
}
