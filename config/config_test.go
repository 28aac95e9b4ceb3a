package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.App.Port)
	assert.Equal(t, "development", cfg.App.Env)
	assert.Equal(t, "*", cfg.App.AllowOrigin)
	assert.Equal(t, "disable", cfg.DB.SSLMode)
	assert.Equal(t, 15*time.Minute, cfg.JWT.AccessExpiry)
	assert.Equal(t, 10*time.Minute, cfg.Cache.CatalogTTL)
	assert.False(t, cfg.IsProduction())
}

func TestLoadConfig_FromEnvironment(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("APP_ENV", "production")
	t.Setenv("DB_NAME", "clinic")
	t.Setenv("JWT_ACCESS_EXPIRY", "not-a-duration")
	t.Setenv("CATALOG_CACHE_TTL", "30s")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.True(t, cfg.IsProduction())
	assert.Equal(t, "clinic", cfg.DB.Name)
	assert.Equal(t, 15*time.Minute, cfg.JWT.AccessExpiry, "invalid duration falls back")
	assert.Equal(t, 30*time.Second, cfg.Cache.CatalogTTL)
}

func TestDBConfig_ConnectionStrings(t *testing.T) {
	db := DBConfig{
		Host:     "db",
		Port:     "5432",
		User:     "clinic",
		Password: "p@ss",
		Name:     "portal",
		SSLMode:  "disable",
		TimeZone: "UTC",
	}

	assert.Equal(t, "host=db user=clinic password=p@ss dbname=portal port=5432 sslmode=disable TimeZone=UTC", db.DSN())
	assert.Equal(t, "pgx5://clinic:p%40ss@db:5432/portal?sslmode=disable", db.URL())
}
