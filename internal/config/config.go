// Package config loads SayHalo configuration.
//
// Values are resolved in this order, later sources winning:
//   - built-in defaults
//   - <user config dir>/sayhalo/config.toml (or the path given with --config)
//   - SAYHALO_* environment variables (a .env file is loaded first)
//   - command-line flags
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"sayhalo/internal/models"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
)

const (
	AppName         = "sayhalo"
	DefaultEndpoint = "http://localhost:3000/api/chat"
	DefaultTimeout  = 2 * time.Minute
)

type Config struct {
	Backend  BackendConfig  `toml:"backend"`
	Defaults DefaultsConfig `toml:"defaults"`
	UI       UIConfig       `toml:"ui"`
	Storage  StorageConfig  `toml:"storage"`
	Log      LogConfig      `toml:"log"`
}

type BackendConfig struct {
	// Kind is "http", "openai" or "gemini".
	Kind     string `toml:"kind"`
	Endpoint string `toml:"endpoint"`
	// BaseURL overrides the API root for the openai and gemini kinds.
	BaseURL string `toml:"base_url"`
	// APIKeyEnv names the environment variable holding the API key.
	APIKeyEnv      string   `toml:"api_key_env"`
	RequestTimeout Duration `toml:"request_timeout"`
}

type DefaultsConfig struct {
	Model             string  `toml:"model"`
	Temperature       float64 `toml:"temperature"`
	SystemInstruction string  `toml:"system_instruction"`
}

type UIConfig struct {
	// Theme is "light", "dark" or empty to follow the terminal background.
	Theme string `toml:"theme"`
	// ShowErrors renders a notice when a turn fails instead of failing silently.
	ShowErrors bool `toml:"show_errors"`
}

type StorageConfig struct {
	DBPath string `toml:"db_path"`
}

type LogConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

// Duration decodes TOML strings such as "90s".
type Duration struct {
	time.Duration
}

func (d *Duration) UnmarshalText(text []byte) error {
	parsed, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	d.Duration = parsed
	return nil
}

func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.Duration.String()), nil
}

func Default() *Config {
	s := models.DefaultSettings()
	return &Config{
		Backend: BackendConfig{
			Kind:           "http",
			Endpoint:       DefaultEndpoint,
			RequestTimeout: Duration{DefaultTimeout},
		},
		Defaults: DefaultsConfig{
			Model:             s.Model,
			Temperature:       s.Temperature,
			SystemInstruction: s.SystemInstruction,
		},
		Log: LogConfig{Level: "info"},
	}
}

// Dir returns the per-user configuration directory.
func Dir() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		homeDir, herr := os.UserHomeDir()
		if herr != nil {
			return "", err
		}
		configDir = filepath.Join(homeDir, ".config")
	}
	return filepath.Join(configDir, AppName), nil
}

func DefaultPath() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.toml"), nil
}

// Load reads path over the defaults. A missing file is not an error unless
// the path was given explicitly.
func Load(path string) (*Config, error) {
	cfg := Default()
	explicit := path != ""
	if !explicit {
		p, err := DefaultPath()
		if err != nil {
			return cfg, nil
		}
		path = p
	}

	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, os.ErrNotExist) && !explicit {
			return cfg, nil
		}
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

// LoadDotEnv loads .env from the working directory when present.
func LoadDotEnv(files ...string) error {
	if len(files) == 0 {
		if _, err := os.Stat(".env"); err != nil {
			return nil
		}
	}
	return godotenv.Load(files...)
}

func (c *Config) ApplyEnvOverrides() {
	if v := os.Getenv("SAYHALO_BACKEND"); v != "" {
		c.Backend.Kind = v
	}
	if v := os.Getenv("SAYHALO_ENDPOINT"); v != "" {
		c.Backend.Endpoint = v
	}
	if v := os.Getenv("SAYHALO_BASE_URL"); v != "" {
		c.Backend.BaseURL = v
	}
	if v := os.Getenv("SAYHALO_MODEL"); v != "" {
		c.Defaults.Model = v
	}
	if v := os.Getenv("SAYHALO_TEMPERATURE"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			c.Defaults.Temperature = f
		}
	}
	if v := os.Getenv("SAYHALO_THEME"); v != "" {
		c.UI.Theme = v
	}
	if v := os.Getenv("SAYHALO_LOG_LEVEL"); v != "" {
		c.Log.Level = v
	}
}

type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return e.Field + ": " + e.Message
}

func (c *Config) Validate() error {
	var errs []error
	// An empty kind selects the http backend, as backend.New does.
	switch c.Backend.Kind {
	case "", "http":
		if strings.TrimSpace(c.Backend.Endpoint) == "" {
			errs = append(errs, ValidationError{"backend.endpoint", "required for the http backend"})
		}
	case "openai", "gemini":
	default:
		errs = append(errs, ValidationError{"backend.kind", fmt.Sprintf("unknown backend %q", c.Backend.Kind)})
	}
	if c.Backend.RequestTimeout.Duration < 0 {
		errs = append(errs, ValidationError{"backend.request_timeout", "must not be negative"})
	}
	if strings.TrimSpace(c.Defaults.Model) == "" {
		errs = append(errs, ValidationError{"defaults.model", "required"})
	}
	if c.Defaults.Temperature < models.MinTemperature || c.Defaults.Temperature > models.MaxTemperature {
		errs = append(errs, ValidationError{"defaults.temperature", fmt.Sprintf("must be between %g and %g", models.MinTemperature, models.MaxTemperature)})
	}
	if c.UI.Theme != "" {
		if _, ok := models.ParseTheme(c.UI.Theme); !ok {
			errs = append(errs, ValidationError{"ui.theme", fmt.Sprintf("unknown theme %q", c.UI.Theme)})
		}
	}
	switch strings.ToLower(c.Log.Level) {
	case "", "debug", "info", "warn", "error":
	default:
		errs = append(errs, ValidationError{"log.level", fmt.Sprintf("unknown level %q", c.Log.Level)})
	}
	return errors.Join(errs...)
}

// Settings returns the initial chat settings.
func (c *Config) Settings() models.Settings {
	return models.Settings{
		Temperature:       c.Defaults.Temperature,
		Model:             c.Defaults.Model,
		SystemInstruction: c.Defaults.SystemInstruction,
	}
}

// APIKey resolves the key for the direct transports.
func (c *Config) APIKey() string {
	if c.Backend.APIKeyEnv != "" {
		return os.Getenv(c.Backend.APIKeyEnv)
	}
	switch c.Backend.Kind {
	case "openai":
		if k := os.Getenv("OPENROUTER_API_KEY"); k != "" {
			return k
		}
		return os.Getenv("OPENAI_API_KEY")
	case "gemini":
		if k := os.Getenv("GEMINI_API_KEY"); k != "" {
			return k
		}
		return os.Getenv("GOOGLE_API_KEY")
	}
	return ""
}

func (c *Config) DBPath() (string, error) {
	if c.Storage.DBPath != "" {
		return c.Storage.DBPath, nil
	}
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, AppName+".db"), nil
}

func (c *Config) LogPath() string {
	if c.Log.File != "" {
		return c.Log.File
	}
	if dir, err := Dir(); err == nil {
		return filepath.Join(dir, AppName+".log")
	}
	return filepath.Join(os.TempDir(), AppName+".log")
}
