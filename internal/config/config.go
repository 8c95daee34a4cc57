package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	App        App        `mapstructure:",squash"`
	Server     Server     `mapstructure:",squash"`
	Database   Database   `mapstructure:",squash"`
	OpenAI     OpenAI     `mapstructure:",squash"`
	Assistant  Assistant  `mapstructure:",squash"`
	StoreStats StoreStats `mapstructure:",squash"`
	Migrations Migrations `mapstructure:",squash"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
	Env      string `mapstructure:"app_env"`
}

type Server struct {
	Host           string   `mapstructure:"host"`
	Port           string   `mapstructure:"port"`
	AllowedOrigins []string `mapstructure:"cors_allowed_origins"`
}

type Database struct {
	DSN          string `mapstructure:"-"`
	Driver       string `mapstructure:"database_driver"`
	Password     string `mapstructure:"database_password"`
	URL          string `mapstructure:"database_url"`
	User         string `mapstructure:"database_user"`
	MaxOpenConns int    `mapstructure:"database_max_open_conns"`
}

// OpenAI configura o provedor de chat usado quando nenhuma regra do assistente responde
type OpenAI struct {
	APIKey      string        `mapstructure:"openai_api_key"`
	BaseURL     string        `mapstructure:"openai_base_url"`
	Model       string        `mapstructure:"openai_model"`
	MaxTokens   int           `mapstructure:"openai_max_tokens"`
	Temperature float32       `mapstructure:"openai_temperature"`
	Timeout     time.Duration `mapstructure:"openai_timeout"`
}

type Assistant struct {
	HistoryLimit int `mapstructure:"assistant_history_limit"`
}

type StoreStats struct {
	CronSchedule string `mapstructure:"store_stats_cron"`
	Enabled      bool   `mapstructure:"store_stats_enabled"`
}

type Migrations struct {
	Path string `mapstructure:"migrations_path"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 5000)
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000,http://localhost:5173")

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/adwise?sslmode=disable")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")
	viper.SetDefault("DATABASE_MAX_OPEN_CONNS", 10)

	viper.SetDefault("OPENAI_API_KEY", "")
	viper.SetDefault("OPENAI_BASE_URL", "")
	viper.SetDefault("OPENAI_MODEL", "gpt-3.5-turbo")
	viper.SetDefault("OPENAI_MAX_TOKENS", 500)
	viper.SetDefault("OPENAI_TEMPERATURE", 0.7)
	viper.SetDefault("OPENAI_TIMEOUT", "30s")

	viper.SetDefault("ASSISTANT_HISTORY_LIMIT", 10) // Últimas mensagens enviadas ao provedor

	viper.SetDefault("STORE_STATS_CRON", "*/15 * * * *") // A cada 15 minutos
	viper.SetDefault("STORE_STATS_ENABLED", true)

	viper.SetDefault("MIGRATIONS_PATH", "migrations")

	viper.SetDefault("APP_ENV", "development")
	viper.SetDefault("LOG_LEVEL", "debug")
}

func NewConfig() (*Config, error) {
	// Primeiro carregar o arquivo .env usando godotenv
	loadEnvFile()

	config := &Config{}

	// Configurar valores padrão
	SetDefaults()

	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		logrus.Info("Usando variáveis carregadas pelo godotenv (viper não conseguiu ler .env):", err)
	} else {
		logrus.Info("Arquivo .env lido pelo Viper com sucesso")
	}

	err := viper.Unmarshal(&config, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	))
	if err != nil {
		return nil, err
	}

	config.Database.DSN = BuildDSN(config.Database)

	return config, nil
}

// BuildDSN monta a string de conexão conforme o driver. No SQLite a URL é o caminho do arquivo.
func BuildDSN(db Database) string {
	if db.Driver == "sqlite" {
		return db.URL
	}

	return fmt.Sprintf(
		"%s://%s:%s@%s",
		db.Driver,
		db.User,
		db.Password,
		db.URL,
	)
}

// MigrationURL monta a URL no formato esperado pelo golang-migrate
func MigrationURL(db Database) string {
	if db.Driver == "sqlite" {
		return "sqlite://" + db.URL
	}

	return BuildDSN(db)
}

// Função auxiliar para carregar o arquivo .env usando godotenv
func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual:", err)
		return
	}

	// Tentar várias localizações possíveis para o arquivo .env
	locations := []string{
		filepath.Join(cwd, ".env"),
		filepath.Join(filepath.Dir(cwd), ".env"),
		filepath.Join(cwd, "../../.env"),
	}

	for _, location := range locations {
		logrus.Debug("Tentando carregar .env de:", location)
		if err := godotenv.Load(location); err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}

	logrus.Warn("Não foi possível carregar o arquivo .env de nenhuma localização conhecida")
}
