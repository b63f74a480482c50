package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/inventario-tracker/pkg/config"
)

func TestLoad_Defaults(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := config.Load()
	require.NoError(t, err)
	assert.Equal(t, "inventario-tracker", cfg.App.Name)
	assert.Equal(t, "127.0.0.1:8080", cfg.HTTP.Addr())
	assert.Equal(t, config.BackendFile, cfg.Storage.Backend)
	assert.Equal(t, 5*time.Second, cfg.Storage.SaveTimeout)
	assert.Equal(t, 5, cfg.Inventory.RecentMovements)
	assert.Equal(t, 7, cfg.Inventory.SeriesDays)
	assert.Equal(t, "produtos", cfg.Export.Filename)
	assert.Equal(t, "utf-8", cfg.Export.CSVCharset)
}

func TestLoad_Env(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("STORAGE_BACKEND", "Redis")
	t.Setenv("HTTP_PORT", "9090")
	t.Setenv("DASHBOARD_SERIES_DAYS", "30")
	t.Setenv("STORAGE_SAVE_TIMEOUT_SECONDS", "2")
	t.Setenv("EXPORT_CSV_CHARSET", "windows-1252")

	cfg, err := config.Load()
	require.NoError(t, err)
	assert.Equal(t, config.BackendRedis, cfg.Storage.Backend)
	assert.Equal(t, 9090, cfg.HTTP.Port)
	assert.Equal(t, 30, cfg.Inventory.SeriesDays)
	assert.Equal(t, 2*time.Second, cfg.Storage.SaveTimeout)
	assert.Equal(t, "windows-1252", cfg.Export.CSVCharset)
}

func TestLoad_ValoresInvalidos(t *testing.T) {
	t.Chdir(t.TempDir())

	t.Setenv("STORAGE_BACKEND", "sqlite")
	_, err := config.Load()
	assert.Error(t, err)

	t.Setenv("STORAGE_BACKEND", "memory")
	t.Setenv("EXPORT_CSV_CHARSET", "utf-16")
	_, err = config.Load()
	assert.Error(t, err)
}

func TestDBConfig_ConnectionString(t *testing.T) {
	c := config.DBConfig{Host: "db", Port: 5432, User: "app", Password: "p@ss:word", DBName: "inv", SSLMode: "disable"}
	assert.Equal(t, "postgres://app:p%40ss%3Aword@db:5432/inv?sslmode=disable", c.ConnectionString())

	c.DatabaseURL = "postgres://x"
	assert.Equal(t, "postgres://x", c.ConnectionString())
}
