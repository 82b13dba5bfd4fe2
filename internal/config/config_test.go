package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"sayhalo/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, "http", cfg.Backend.Kind)
	assert.Equal(t, DefaultEndpoint, cfg.Backend.Endpoint)
	assert.Equal(t, DefaultTimeout, cfg.Backend.RequestTimeout.Duration)
	assert.Equal(t, models.DefaultSettings(), cfg.Settings())
}

func TestLoadTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	data := `
[backend]
kind = "gemini"
request_timeout = "45s"
api_key_env = "MY_KEY"

[defaults]
model = "gemini-2.5-flash"
temperature = 0.3
system_instruction = "answer in haiku"

[ui]
theme = "dark"
show_errors = true
`
	require.NoError(t, os.WriteFile(path, []byte(data), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())

	assert.Equal(t, "gemini", cfg.Backend.Kind)
	assert.Equal(t, 45*time.Second, cfg.Backend.RequestTimeout.Duration)
	assert.Equal(t, DefaultEndpoint, cfg.Backend.Endpoint, "unset keys keep defaults")
	assert.Equal(t, models.Settings{Temperature: 0.3, Model: "gemini-2.5-flash", SystemInstruction: "answer in haiku"}, cfg.Settings())
	assert.Equal(t, "dark", cfg.UI.Theme)
	assert.True(t, cfg.UI.ShowErrors)

	t.Setenv("MY_KEY", "secret")
	assert.Equal(t, "secret", cfg.APIKey())
}

func TestLoadExplicitMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	require.Error(t, err)
}

func TestLoadInvalidTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("[backend\nkind="), 0o600))
	_, err := Load(path)
	require.Error(t, err)
}

func TestApplyEnvOverrides(t *testing.T) {
	t.Setenv("SAYHALO_BACKEND", "openai")
	t.Setenv("SAYHALO_MODEL", "gemini-2.5-pro")
	t.Setenv("SAYHALO_TEMPERATURE", "0.7")
	t.Setenv("SAYHALO_THEME", "light")
	t.Setenv("OPENROUTER_API_KEY", "or-key")

	cfg := Default()
	cfg.ApplyEnvOverrides()
	assert.Equal(t, "openai", cfg.Backend.Kind)
	assert.Equal(t, "gemini-2.5-pro", cfg.Defaults.Model)
	assert.Equal(t, 0.7, cfg.Defaults.Temperature)
	assert.Equal(t, "light", cfg.UI.Theme)
	assert.Equal(t, "or-key", cfg.APIKey())
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		field  string
	}{
		{"unknown backend", func(c *Config) { c.Backend.Kind = "smoke-signal" }, "backend.kind"},
		{"missing endpoint", func(c *Config) { c.Backend.Endpoint = " " }, "backend.endpoint"},
		{"implicit http without endpoint", func(c *Config) { c.Backend.Kind = ""; c.Backend.Endpoint = "" }, "backend.endpoint"},
		{"negative timeout", func(c *Config) { c.Backend.RequestTimeout.Duration = -time.Second }, "backend.request_timeout"},
		{"empty model", func(c *Config) { c.Defaults.Model = "" }, "defaults.model"},
		{"hot temperature", func(c *Config) { c.Defaults.Temperature = 3 }, "defaults.temperature"},
		{"bad theme", func(c *Config) { c.UI.Theme = "neon" }, "ui.theme"},
		{"bad level", func(c *Config) { c.Log.Level = "loud" }, "log.level"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := Default()
			tc.mutate(cfg)
			err := cfg.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.field)
		})
	}
}

func TestValidateEmptyKindMeansHTTP(t *testing.T) {
	cfg := Default()
	cfg.Backend.Kind = ""
	require.NoError(t, cfg.Validate())
}

func TestLoadDotEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("SAYHALO_TEST_DOTENV=from-file\n"), 0o600))
	t.Setenv("SAYHALO_TEST_DOTENV", "")
	require.NoError(t, os.Unsetenv("SAYHALO_TEST_DOTENV"))

	require.NoError(t, LoadDotEnv(path))
	assert.Equal(t, "from-file", os.Getenv("SAYHALO_TEST_DOTENV"))
}

func TestPaths(t *testing.T) {
	cfg := Default()
	cfg.Storage.DBPath = "/tmp/x.db"
	cfg.Log.File = "/tmp/x.log"
	p, err := cfg.DBPath()
	require.NoError(t, err)
	assert.Equal(t, "/tmp/x.db", p)
	assert.Equal(t, "/tmp/x.log", cfg.LogPath())
}
