package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	App          App          `mapstructure:",squash"`
	Server       Server       `mapstructure:",squash"`
	Database     Database     `mapstructure:",squash"`
	Meta         Meta         `mapstructure:",squash"`
	Auth         Auth         `mapstructure:",squash"`
	Encryption   Encryption   `mapstructure:",squash"`
	BackfillSync BackfillSync `mapstructure:",squash"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

type Server struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
}

type Database struct {
	DSN      string `mapstructure:"-"`
	Driver   string `mapstructure:"database_driver"`
	Password string `mapstructure:"database_password"`
	URL      string `mapstructure:"database_url"`
	User     string `mapstructure:"database_user"`
}

type Meta struct {
	BaseURL string `mapstructure:"meta_base_url"`
	URL     string `mapstructure:"meta_url"`
	Version string `mapstructure:"meta_version"`
}

type Auth struct {
	// Secret é a chave de validação dos tokens emitidos pelo provedor de
	// identidade externo; este serviço não emite tokens
	Secret string `mapstructure:"auth_secret"`
}

type Encryption struct {
	// Key decifra os tokens de acesso persistidos em provider_connections
	Key string `mapstructure:"db_encryption_key"`
}

type BackfillSync struct {
	CronSchedule        string `mapstructure:"backfill_sync_cron"`
	LookbackDays        int    `mapstructure:"backfill_sync_lookback_days"`
	RequestDelaySeconds int    `mapstructure:"backfill_sync_request_delay_seconds"`
	MaxConcurrentJobs   int    `mapstructure:"backfill_sync_max_concurrent_jobs"`
	RetentionDays       int    `mapstructure:"backfill_sync_retention_days"`
	Enabled             bool   `mapstructure:"backfill_sync_enabled"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/tagmage")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")

	viper.SetDefault("META_BASE_URL", "https://graph.facebook.com")
	viper.SetDefault("META_VERSION", "v18.0")

	viper.SetDefault("AUTH_SECRET", "your_auth_secret")
	viper.SetDefault("DB_ENCRYPTION_KEY", "")

	// Defaults para o backfill de insights
	viper.SetDefault("BACKFILL_SYNC_CRON", "0 3 * * *")        // Todos os dias às 3h da manhã
	viper.SetDefault("BACKFILL_SYNC_LOOKBACK_DAYS", 90)        // 90 dias de histórico
	viper.SetDefault("BACKFILL_SYNC_REQUEST_DELAY_SECONDS", 2) // 2 segundos entre contas
	viper.SetDefault("BACKFILL_SYNC_MAX_CONCURRENT_JOBS", 3)   // 3 tenants em paralelo
	viper.SetDefault("BACKFILL_SYNC_RETENTION_DAYS", 0)        // 0 mantém tudo
	viper.SetDefault("BACKFILL_SYNC_ENABLED", false)

	viper.SetDefault("LOG_LEVEL", "debug")
}

func NewConfig() (*Config, error) {
	loadEnvFile()

	config := &Config{}

	SetDefaults()

	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		logrus.Info("Usando variáveis de ambiente (viper não conseguiu ler .env):", err)
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

	config.Meta.URL = fmt.Sprintf("%s/%s", config.Meta.BaseURL, config.Meta.Version)

	config.Database.DSN = fmt.Sprintf(
		"%s://%s:%s@%s",
		config.Database.Driver,
		config.Database.User,
		config.Database.Password,
		config.Database.URL,
	)

	return config, nil
}

// loadEnvFile tenta carregar o arquivo .env das localizações usuais
func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual:", err)
		return
	}

	locations := []string{
		filepath.Join(cwd, ".env"),
		filepath.Join(filepath.Dir(cwd), ".env"),
		filepath.Join(cwd, "../.env"),
	}

	for _, location := range locations {
		if err := godotenv.Load(location); err == nil {
			logrus.Info("Arquivo .env carregado de:", location)
			return
		}
	}
}
