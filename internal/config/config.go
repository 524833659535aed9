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
	App              App              `mapstructure:",squash"`
	Server           Server           `mapstructure:",squash"`
	Database         Database         `mapstructure:",squash"`
	Metrics          Metrics          `mapstructure:",squash"`
	Booking          Booking          `mapstructure:",squash"`
	GoalProgressSync GoalProgressSync `mapstructure:",squash"`
	SecretKey        string           `mapstructure:"secret_key"`
}

type App struct {
	LogLevel string         `mapstructure:"log_level"`
	Timezone string         `mapstructure:"app_timezone"`
	Location *time.Location `mapstructure:"-"`
}

type Server struct {
	Host           string   `mapstructure:"host"`
	Port           string   `mapstructure:"port"`
	AllowedOrigins []string `mapstructure:"cors_allowed_origins"`
}

type Database struct {
	DSN      string `mapstructure:"-"`
	Driver   string `mapstructure:"database_driver"`
	Password string `mapstructure:"database_password"`
	URL      string `mapstructure:"database_url"`
	User     string `mapstructure:"database_user"`
}

type Metrics struct {
	DefaultInactiveDays int `mapstructure:"metrics_default_inactive_days"`
}

type Booking struct {
	OpeningTime string `mapstructure:"booking_opening_time"` // HH:MM
	ClosingTime string `mapstructure:"booking_closing_time"` // HH:MM, último horário ofertado
	SlotMinutes int    `mapstructure:"booking_slot_minutes"`
}

type GoalProgressSync struct {
	CronSchedule string `mapstructure:"goal_progress_sync_cron"`
	Enabled      bool   `mapstructure:"goal_progress_sync_enabled"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000,http://localhost:5173")

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/salon?sslmode=disable")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")

	viper.SetDefault("SECRET_KEY", "your_secret_key")

	viper.SetDefault("LOG_LEVEL", "debug")
	viper.SetDefault("APP_TIMEZONE", "America/Sao_Paulo")

	viper.SetDefault("METRICS_DEFAULT_INACTIVE_DAYS", 20)

	viper.SetDefault("BOOKING_OPENING_TIME", "09:00")
	viper.SetDefault("BOOKING_CLOSING_TIME", "18:00")
	viper.SetDefault("BOOKING_SLOT_MINUTES", 30)

	viper.SetDefault("GOAL_PROGRESS_SYNC_CRON", "0 * * * *") // A cada hora cheia
	viper.SetDefault("GOAL_PROGRESS_SYNC_ENABLED", false)
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

	if err := config.finalize(); err != nil {
		return nil, err
	}

	return config, nil
}

// finalize preenche os campos derivados e valida o que não tem valor padrão seguro
func (c *Config) finalize() error {
	loc, err := time.LoadLocation(c.App.Timezone)
	if err != nil {
		return fmt.Errorf("fuso horário inválido %q: %w", c.App.Timezone, err)
	}
	c.App.Location = loc

	if c.Metrics.DefaultInactiveDays <= 0 {
		c.Metrics.DefaultInactiveDays = 20
	}

	if c.Booking.SlotMinutes <= 0 {
		return fmt.Errorf("BOOKING_SLOT_MINUTES deve ser positivo: %d", c.Booking.SlotMinutes)
	}

	c.Database.DSN = fmt.Sprintf(
		"%s://%s:%s@%s",
		c.Database.Driver,
		c.Database.User,
		c.Database.Password,
		c.Database.URL,
	)

	return nil
}

// Função auxiliar para carregar o arquivo .env usando godotenv
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
		logrus.Debug("Tentando carregar .env de:", location)
		if err := godotenv.Load(location); err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}

	logrus.Warn("Não foi possível carregar o arquivo .env de nenhuma localização conhecida")
}
