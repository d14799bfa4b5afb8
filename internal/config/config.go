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
	Dashboard    Dashboard    `mapstructure:",squash"`
	SnapshotSync SnapshotSync `mapstructure:",squash"`
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

type Dashboard struct {
	// Fuso usado para agrupar a evolução diária. A origem dos registros é
	// timestamptz; o agrupamento em UTC reproduz o comportamento histórico
	// do dashboard.
	EvolutionTimezone  string `mapstructure:"dashboard_evolution_timezone"`
	SnapshotTTLMinutes int    `mapstructure:"dashboard_snapshot_ttl_minutes"`
}

type SnapshotSync struct {
	CronSchedule      string `mapstructure:"snapshot_sync_cron"`
	Enabled           bool   `mapstructure:"snapshot_sync_enabled"`
	MaxConcurrentJobs int    `mapstructure:"snapshot_sync_max_concurrent_jobs"`
	RetentionDays     int    `mapstructure:"snapshot_sync_retention_days"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/design_online")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")

	viper.SetDefault("DASHBOARD_EVOLUTION_TIMEZONE", "UTC")
	viper.SetDefault("DASHBOARD_SNAPSHOT_TTL_MINUTES", 15)

	viper.SetDefault("SNAPSHOT_SYNC_CRON", "0 5 * * *") // Todos os dias às 5h da manhã
	viper.SetDefault("SNAPSHOT_SYNC_ENABLED", false)
	viper.SetDefault("SNAPSHOT_SYNC_MAX_CONCURRENT_JOBS", 3)
	viper.SetDefault("SNAPSHOT_SYNC_RETENTION_DAYS", 90)

	viper.SetDefault("LOG_LEVEL", "debug")
}

func NewConfig() (*Config, error) {
	loadEnvFile() // ONLY LOCAL

	config := &Config{}

	SetDefaults()

	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		logrus.Info("Usando variáveis carregadas pelo godotenv (viper não conseguiu ler .env):", err)
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

	config.Database.DSN = fmt.Sprintf(
		"%s://%s:%s@%s",
		config.Database.Driver,
		config.Database.User,
		config.Database.Password,
		config.Database.URL,
	)

	return config, nil
}

// loadEnvFile carrega o arquivo .env pelo godotenv quando existente
func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual:", err)
		return
	}

	locations := []string{
		filepath.Join(cwd, ".env"),
		filepath.Join(filepath.Dir(cwd), ".env"),
		filepath.Join(cwd, "../../.env"),
	}

	for _, location := range locations {
		if err := godotenv.Load(location); err == nil {
			logrus.Info("Arquivo .env carregado de:", location)
			return
		}
	}

	logrus.Info("Nenhum arquivo .env encontrado, usando variáveis de ambiente")
}
