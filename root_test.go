package main

import (
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"sayhalo/internal/config"
	"sayhalo/internal/models"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{
		"SAYHALO_BACKEND", "SAYHALO_ENDPOINT", "SAYHALO_BASE_URL", "SAYHALO_MODEL",
		"SAYHALO_TEMPERATURE", "SAYHALO_THEME", "SAYHALO_LOG_LEVEL",
	} {
		t.Setenv(k, "")
	}
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("HOME", t.TempDir())
}

func parse(t *testing.T, args ...string) (*cobra.Command, *rootOptions) {
	t.Helper()
	opts := &rootOptions{}
	cmd := &cobra.Command{Use: "sayhalo"}
	bindFlags(cmd, opts)
	require.NoError(t, cmd.ParseFlags(args))
	return cmd, opts
}

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadConfigDefaults(t *testing.T) {
	clearEnv(t)
	cmd, opts := parse(t)

	cfg, err := loadConfig(cmd, opts)
	require.NoError(t, err)
	assert.Equal(t, "http", cfg.Backend.Kind)
	assert.Equal(t, config.DefaultEndpoint, cfg.Backend.Endpoint)
	assert.Equal(t, models.DefaultSettings(), cfg.Settings())
	assert.Equal(t, config.DefaultTimeout, cfg.Backend.RequestTimeout.Duration)
}

func TestLoadConfigPrecedence(t *testing.T) {
	clearEnv(t)
	path := writeConfig(t, `
[backend]
kind = "http"
endpoint = "http://file.example/api/chat"
request_timeout = "30s"

[defaults]
model = "from-file"
temperature = 0.5

[ui]
theme = "light"
show_errors = true
`)
	t.Setenv("SAYHALO_MODEL", "from-env")
	t.Setenv("SAYHALO_ENDPOINT", "http://env.example/api/chat")

	cmd, opts := parse(t, "--config", path, "--endpoint", "http://flag.example/api/chat", "--theme", "dark", "--debug")
	cfg, err := loadConfig(cmd, opts)
	require.NoError(t, err)

	assert.Equal(t, "http://flag.example/api/chat", cfg.Backend.Endpoint)
	assert.Equal(t, "from-env", cfg.Defaults.Model)
	assert.Equal(t, 0.5, cfg.Defaults.Temperature)
	assert.Equal(t, 30*time.Second, cfg.Backend.RequestTimeout.Duration)
	assert.Equal(t, "dark", cfg.UI.Theme)
	assert.True(t, cfg.UI.ShowErrors)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestLoadConfigRejectsInvalid(t *testing.T) {
	clearEnv(t)
	cmd, opts := parse(t, "--backend", "carrier-pigeon")

	_, err := loadConfig(cmd, opts)
	require.Error(t, err)
	var verr config.ValidationError
	assert.True(t, errors.As(err, &verr))
	assert.Equal(t, "backend.kind", verr.Field)
}

func TestLoadConfigMissingExplicitFile(t *testing.T) {
	clearEnv(t)
	cmd, opts := parse(t, "--config", filepath.Join(t.TempDir(), "nope.toml"))

	_, err := loadConfig(cmd, opts)
	assert.Error(t, err)
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, parseLevel("debug"))
	assert.Equal(t, slog.LevelWarn, parseLevel("WARN"))
	assert.Equal(t, slog.LevelInfo, parseLevel(""))
	assert.Equal(t, slog.LevelInfo, parseLevel("chatty"))
}

type memThemes struct{ value string }

func (m *memThemes) LoadTheme() (string, bool, error) { return m.value, m.value != "", nil }
func (m *memThemes) SaveTheme(v string) error         { m.value = v; return nil }

func TestStartupTheme(t *testing.T) {
	cfg := config.Default()

	cfg.UI.Theme = "light"
	assert.Equal(t, models.ThemeDark, startupTheme(cfg, false, &memThemes{value: "dark"}, nil), "persisted preference beats the config file")
	assert.Equal(t, models.ThemeLight, startupTheme(cfg, true, &memThemes{value: "dark"}, nil), "explicit flag beats the persisted preference")
	assert.Equal(t, models.ThemeLight, startupTheme(cfg, false, &memThemes{}, nil))
	assert.Equal(t, models.ThemeLight, startupTheme(cfg, false, nil, nil))
}

func TestOpenLoggerWritesToFile(t *testing.T) {
	cfg := config.Default()
	cfg.Log.File = filepath.Join(t.TempDir(), "logs", "sayhalo.log")
	cfg.Log.Level = "debug"

	logger, closer, err := openLogger(cfg)
	require.NoError(t, err)
	logger.Debug("hello from test", "request_id", "abc")
	require.NoError(t, closer.Close())

	data, err := os.ReadFile(cfg.Log.File)
	require.NoError(t, err)
	assert.Contains(t, string(data), "hello from test")
	assert.Contains(t, string(data), "request_id=abc")
}
