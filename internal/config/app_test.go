package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoad_ReadsYAML(t *testing.T) {
	path := writeConfig(t, `
http_server:
  port: "9090"
db_server:
  host: db
  port: "5432"
  user: ledger
  pass: secret
  name: ledger
  max_conns: 4
rates_api:
  url_template: "http://rates.local/%s/usd.json"
scheduler:
  refresh_at: "01:30"
  retention_days: 7
clock:
  timezone: Europe/Berlin
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, "9090", cfg.HTTPServer.Port)
	require.Equal(t, int32(4), cfg.DbServer.MaxConns)
	require.Equal(t, "http://rates.local/%s/usd.json", cfg.RatesAPI.URLTemplate)
	require.Equal(t, 7, cfg.Scheduler.RetentionDays)
	require.Equal(t, "Europe/Berlin", cfg.Clock.Timezone)
	require.Equal(t,
		"user=ledger password=secret host=db port=5432 dbname=ledger sslmode=disable",
		cfg.DbServer.GetConnectionStr(),
	)
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	require.Equal(t, "8080", cfg.HTTPServer.Port)
	require.Equal(t, 10, cfg.HTTPClient.TimeoutSeconds)
	require.Equal(t, "info", cfg.Logging.Level)
	require.Equal(t, DefaultRatesURLTemplate, cfg.RatesAPI.URLTemplate)
	require.Equal(t, "00:05", cfg.Scheduler.RefreshAt)
	require.True(t, cfg.Scheduler.RunOnStart)
	require.Equal(t, int64(8), cfg.Cache.MaxItems)
}

func TestLoad_EnvOverrides(t *testing.T) {
	path := writeConfig(t, `
db_server:
  host: from-file
`)
	t.Setenv("DB_HOST", "from-env")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("RATES_API_URL_TEMPLATE", "http://env/%s")

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, "from-env", cfg.DbServer.Host)
	require.Equal(t, "debug", cfg.Logging.Level)
	require.Equal(t, "http://env/%s", cfg.RatesAPI.URLTemplate)
}

func TestLoad_InvalidYAML(t *testing.T) {
	path := writeConfig(t, "http_server: [")
	_, err := Load(path)
	require.Error(t, err)
}

func TestScheduler_RefreshTime(t *testing.T) {
	h, m, err := Scheduler{RefreshAt: "07:45"}.RefreshTime()
	require.NoError(t, err)
	require.Equal(t, uint(7), h)
	require.Equal(t, uint(45), m)

	for _, bad := range []string{"", "7", "24:00", "12:60", "aa:10"} {
		_, _, err = Scheduler{RefreshAt: bad}.RefreshTime()
		require.Error(t, err, bad)
	}
}

func TestClock_Location(t *testing.T) {
	loc, err := Clock{}.Location()
	require.NoError(t, err)
	require.Equal(t, time.UTC, loc)

	_, err = Clock{Timezone: "Not/AZone"}.Location()
	require.Error(t, err)
}
