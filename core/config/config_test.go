package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadConfig_Defaults(t *testing.T) {
	// Empty directory: no .env, no environment overrides expected for these keys
	cfg, err := LoadConfig(t.TempDir())
	assert.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "mysql", cfg.Database.Driver)
	assert.Equal(t, "console", cfg.Log.Format)
	assert.Equal(t, "catalog-sync", cfg.Storage.Bucket)
	assert.Equal(t, 50, cfg.Storefront.PageSize)
	assert.Equal(t, 300, cfg.Books.CacheTTLSeconds)
}

func TestLoadConfig_EnvOverride(t *testing.T) {
	t.Setenv("STOREFRONT_DOMAIN", "example.myshopify.com")
	t.Setenv("SERVER_PORT", "9090")

	cfg, err := LoadConfig(t.TempDir())
	assert.NoError(t, err)

	assert.Equal(t, "example.myshopify.com", cfg.Storefront.Domain)
	assert.Equal(t, "9090", cfg.Server.Port)
}
