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
	App              App              `mapstructure:",squash"`
	Server           Server           `mapstructure:",squash"`
	Database         Database         `mapstructure:",squash"`
	Auth             Auth             `mapstructure:",squash"`
	PacingSync       PacingSync       `mapstructure:",squash"`
	MaintenanceSweep MaintenanceSweep `mapstructure:",squash"`
	MarketData       MarketData       `mapstructure:",squash"`
	AlertPriceSync   AlertPriceSync   `mapstructure:",squash"`
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

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

type Auth struct {
	Secret string `mapstructure:"auth_secret"`
}

// PacingSync configures the nightly goal-pacing snapshot job.
type PacingSync struct {
	CronSchedule  string `mapstructure:"pacing_sync_cron"`
	Enabled       bool   `mapstructure:"pacing_sync_enabled"`
	RetentionDays int    `mapstructure:"pacing_sync_retention_days"`
}

// MaintenanceSweep configures the daily alert-expiry and stale-prospect
// sweep.
type MaintenanceSweep struct {
	CronSchedule      string `mapstructure:"maintenance_sweep_cron"`
	Enabled           bool   `mapstructure:"maintenance_sweep_enabled"`
	StaleProspectDays int    `mapstructure:"maintenance_sweep_stale_prospect_days"`
}

// MarketData configures the quote provider used by the alert price sync.
type MarketData struct {
	URL         string `mapstructure:"market_data_url"`
	AccessToken string `mapstructure:"market_data_access_token"`
}

// AlertPriceSync configures the open-alert price check job.
type AlertPriceSync struct {
	CronSchedule        string `mapstructure:"alert_price_sync_cron"`
	Enabled             bool   `mapstructure:"alert_price_sync_enabled"`
	RequestDelaySeconds int    `mapstructure:"alert_price_sync_request_delay_seconds"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/practice")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")

	viper.SetDefault("AUTH_SECRET", "your_auth_secret")

	// Pacing snapshot defaults: every night at 2am, keep 400 days
	viper.SetDefault("PACING_SYNC_CRON", "0 2 * * *")
	viper.SetDefault("PACING_SYNC_ENABLED", false)
	viper.SetDefault("PACING_SYNC_RETENTION_DAYS", 400)

	// Maintenance sweep defaults: every night at 3am, prospects are stale
	// after 10 idle business days
	viper.SetDefault("MAINTENANCE_SWEEP_CRON", "0 3 * * *")
	viper.SetDefault("MAINTENANCE_SWEEP_ENABLED", false)
	viper.SetDefault("MAINTENANCE_SWEEP_STALE_PROSPECT_DAYS", 10)

	viper.SetDefault("MARKET_DATA_URL", "https://api.marketdata.test/v1")
	viper.SetDefault("MARKET_DATA_ACCESS_TOKEN", "")

	// Alert price check defaults: every 15 minutes during trading hours
	viper.SetDefault("ALERT_PRICE_SYNC_CRON", "*/15 9-16 * * 1-5")
	viper.SetDefault("ALERT_PRICE_SYNC_ENABLED", false)
	viper.SetDefault("ALERT_PRICE_SYNC_REQUEST_DELAY_SECONDS", 1)

	viper.SetDefault("LOG_LEVEL", "debug")
}

func NewConfig() (*Config, error) {
	// Load .env first so viper's AutomaticEnv sees the values
	loadEnvFile() // ONLY LOCAL

	config := &Config{}

	SetDefaults()

	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		logrus.Info("using variables loaded by godotenv (viper could not read .env):", err)
	} else {
		logrus.Info(".env file read by viper")
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

// loadEnvFile loads the .env file through godotenv, trying the usual
// locations relative to the working directory.
func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("could not determine working directory:", err)
		return
	}

	locations := []string{
		filepath.Join(cwd, ".env"),
		filepath.Join(filepath.Dir(cwd), ".env"),
		filepath.Join(cwd, "../.env"),
		filepath.Join(cwd, "../../.env"),
	}

	for _, location := range locations {
		err := godotenv.Load(location)
		if err == nil {
			logrus.Info(".env loaded from:", location)
			return
		}
	}

	logrus.Warn("no .env file found in any known location")
}
