package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const DefaultRatesURLTemplate = "https://cdn.jsdelivr.net/npm/@fawazahmed0/currency-api@%s/v1/currencies/usd.json"

type HTTPServer struct {
	Port               string `mapstructure:"port"`
	ShutdownTimeoutSec int    `mapstructure:"shutdown_timeout_sec"`
}

type DbServer struct {
	Host     string `mapstructure:"host"`
	Port     string `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Pass     string `mapstructure:"pass"`
	Name     string `mapstructure:"name"`
	SSLMode  string `mapstructure:"sslmode"`
	MaxConns int32  `mapstructure:"max_conns"`
	MinConns int32  `mapstructure:"min_conns"`
}

func (config *DbServer) GetConnectionStr() string {
	sslMode := config.SSLMode
	if sslMode == "" {
		sslMode = "disable"
	}
	return fmt.Sprintf(
		"user=%s password=%s host=%s port=%s dbname=%s sslmode=%s",
		config.User, config.Pass, config.Host, config.Port, config.Name, sslMode,
	)
}

type HTTPClient struct {
	TimeoutSeconds int `mapstructure:"timeout_seconds"`
}

type Logging struct {
	Level string `mapstructure:"level"`
}

type RatesAPI struct {
	// URLTemplate takes the calendar date (YYYY-MM-DD) as its only %s verb.
	URLTemplate string `mapstructure:"url_template"`
}

type Scheduler struct {
	RefreshAt     string `mapstructure:"refresh_at"` // HH:MM in the clock timezone
	RetentionDays int    `mapstructure:"retention_days"`
	RunOnStart    bool   `mapstructure:"run_on_start"`
}

// RefreshTime parses RefreshAt into hours and minutes.
func (s Scheduler) RefreshTime() (uint, uint, error) {
	hh, mm, ok := strings.Cut(s.RefreshAt, ":")
	if !ok {
		return 0, 0, fmt.Errorf("invalid refresh_at %q, want HH:MM", s.RefreshAt)
	}
	h, err := strconv.ParseUint(hh, 10, 8)
	if err != nil || h > 23 {
		return 0, 0, fmt.Errorf("invalid refresh_at hour %q", hh)
	}
	m, err := strconv.ParseUint(mm, 10, 8)
	if err != nil || m > 59 {
		return 0, 0, fmt.Errorf("invalid refresh_at minute %q", mm)
	}
	return uint(h), uint(m), nil
}

type Cache struct {
	MaxItems int64 `mapstructure:"max_items"`
	TTLHours int   `mapstructure:"ttl_hours"`
}

type Clock struct {
	Timezone string `mapstructure:"timezone"`
}

// Location resolves the timezone that defines "today" for rate sets.
func (c Clock) Location() (*time.Location, error) {
	if c.Timezone == "" {
		return time.UTC, nil
	}
	return time.LoadLocation(c.Timezone)
}

type AppConfig struct {
	HTTPServer HTTPServer `mapstructure:"http_server"`
	DbServer   DbServer   `mapstructure:"db_server"`
	HTTPClient HTTPClient `mapstructure:"http_client"`
	Logging    Logging    `mapstructure:"logging"`
	RatesAPI   RatesAPI   `mapstructure:"rates_api"`
	Scheduler  Scheduler  `mapstructure:"scheduler"`
	Cache      Cache      `mapstructure:"cache"`
	Clock      Clock      `mapstructure:"clock"`
}

func Init() (*AppConfig, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("error loading .env file: %w", err)
	}
	return Load("config.yaml")
}

// Load reads the yaml file at path (if it exists) and applies env overrides.
func Load(path string) (*AppConfig, error) {
	var cfg AppConfig

	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")
	if err := v.ReadInConfig(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	v.SetDefault("http_server.port", "8080")
	v.SetDefault("http_server.shutdown_timeout_sec", 10)
	v.SetDefault("db_server.max_conns", 10)
	v.SetDefault("http_client.timeout_seconds", 10)
	v.SetDefault("logging.level", "info")
	v.SetDefault("rates_api.url_template", DefaultRatesURLTemplate)
	v.SetDefault("scheduler.refresh_at", "00:05")
	v.SetDefault("scheduler.retention_days", 30)
	v.SetDefault("scheduler.run_on_start", true)
	v.SetDefault("cache.max_items", 8)
	v.SetDefault("cache.ttl_hours", 25)
	v.SetDefault("clock.timezone", "UTC")

	// http server env vars
	_ = v.BindEnv("http_server.port", "HTTP_PORT")

	// db server env vars
	_ = v.BindEnv("db_server.host", "DB_HOST")
	_ = v.BindEnv("db_server.port", "DB_PORT")
	_ = v.BindEnv("db_server.user", "DB_USER")
	_ = v.BindEnv("db_server.pass", "DB_PASS")
	_ = v.BindEnv("db_server.name", "DB_NAME")
	_ = v.BindEnv("db_server.sslmode", "DB_SSLMODE")
	_ = v.BindEnv("db_server.max_conns", "DB_MAX_CONNS")

	// http client env vars
	_ = v.BindEnv("http_client.timeout_seconds", "HTTP_CLIENT_TIMEOUT_SECONDS")

	_ = v.BindEnv("logging.level", "LOG_LEVEL")
	_ = v.BindEnv("rates_api.url_template", "RATES_API_URL_TEMPLATE")
	_ = v.BindEnv("clock.timezone", "CLOCK_TIMEZONE")

	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshalling config: %w", err)
	}

	return &cfg, nil
}
