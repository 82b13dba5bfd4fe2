package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"sayhalo/internal/backend"
	"sayhalo/internal/config"
	"sayhalo/internal/db"
	"sayhalo/internal/models"
	"sayhalo/internal/styles"
	"sayhalo/internal/ui"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

var version = "dev"

type rootOptions struct {
	configPath string
	backend    string
	endpoint   string
	model      string
	theme      string
	logFile    string
	debug      bool
}

func newRootCommand() *cobra.Command {
	opts := &rootOptions{}
	cmd := &cobra.Command{
		Use:   "sayhalo",
		Short: "SayHalo - chat with an AI assistant in your terminal",
		Long: `SayHalo is a terminal chat client for a text-generation backend.

Type a prompt and press Enter. The whole conversation is sent with every
turn, and the assistant's reply is shown as plain text. Press F1 inside the
app for keyboard shortcuts.`,
		Version:      version,
		SilenceUsage: true,
		Args:         cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd, opts)
			if err != nil {
				return err
			}
			return run(cmd.Context(), cfg, opts)
		},
	}
	bindFlags(cmd, opts)
	return cmd
}

func bindFlags(cmd *cobra.Command, opts *rootOptions) {
	f := cmd.Flags()
	f.StringVarP(&opts.configPath, "config", "c", "", "Path to config.toml (default: user config dir)")
	f.StringVar(&opts.backend, "backend", "", "Backend kind: http, openai or gemini")
	f.StringVar(&opts.endpoint, "endpoint", "", "Chat endpoint URL for the http backend")
	f.StringVarP(&opts.model, "model", "m", "", "Initial model identifier")
	f.StringVar(&opts.theme, "theme", "", "Force the light or dark theme")
	f.StringVar(&opts.logFile, "log-file", "", "Write logs to this file")
	f.BoolVar(&opts.debug, "debug", false, "Enable debug logging")
}

// loadConfig layers defaults, the config file, .env and SAYHALO_* variables,
// then any flags that were set explicitly.
func loadConfig(cmd *cobra.Command, opts *rootOptions) (*config.Config, error) {
	if err := config.LoadDotEnv(); err != nil {
		return nil, fmt.Errorf("load .env: %w", err)
	}
	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return nil, err
	}
	cfg.ApplyEnvOverrides()

	flags := cmd.Flags()
	if flags.Changed("backend") {
		cfg.Backend.Kind = opts.backend
	}
	if flags.Changed("endpoint") {
		cfg.Backend.Endpoint = opts.endpoint
	}
	if flags.Changed("model") {
		cfg.Defaults.Model = opts.model
	}
	if flags.Changed("theme") {
		cfg.UI.Theme = opts.theme
	}
	if flags.Changed("log-file") {
		cfg.Log.File = opts.logFile
	}
	if opts.debug {
		cfg.Log.Level = "debug"
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration:\n%w", err)
	}
	return cfg, nil
}

func parseLevel(s string) slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.ToLower(s))); err != nil {
		return slog.LevelInfo
	}
	return level
}

// openLogger sends slog output to a file; the terminal belongs to the UI.
func openLogger(cfg *config.Config) (*slog.Logger, io.Closer, error) {
	path := cfg.LogPath()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, nil, fmt.Errorf("create log directory: %w", err)
	}
	f, err := tea.LogToFile(path, config.AppName)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	h := slog.NewTextHandler(f, &slog.HandlerOptions{Level: parseLevel(cfg.Log.Level)})
	return slog.New(h), f, nil
}

// startupTheme picks the initial theme. An explicit --theme wins, then the
// persisted preference, then the config file, then the terminal background.
func startupTheme(cfg *config.Config, forced bool, store ui.ThemeStore, log *slog.Logger) models.Theme {
	configured, ok := models.ParseTheme(cfg.UI.Theme)
	if forced && ok {
		return configured
	}
	fallback := configured
	if !ok {
		fallback = styles.DetectTheme()
	}
	return ui.ResolveTheme(store, fallback, log)
}

func run(ctx context.Context, cfg *config.Config, opts *rootOptions) error {
	logger, closer, err := openLogger(cfg)
	if err != nil {
		return err
	}
	defer closer.Close()
	slog.SetDefault(logger)

	var themes ui.ThemeStore
	if path, err := cfg.DBPath(); err != nil {
		logger.Warn("preference store unavailable", "error", err)
	} else if conn, err := db.Open(path); err != nil {
		logger.Warn("preference store unavailable", "path", path, "error", err)
	} else {
		defer conn.Close()
		themes = db.Prefs{DB: conn}
	}

	completer, err := backend.New(ctx, backend.Options{
		Kind:     cfg.Backend.Kind,
		Endpoint: cfg.Backend.Endpoint,
		BaseURL:  cfg.Backend.BaseURL,
		APIKey:   cfg.APIKey(),
	})
	if err != nil {
		return fmt.Errorf("backend: %w", err)
	}

	settings := cfg.Settings()
	logger.Info("starting",
		"version", version,
		"backend", cfg.Backend.Kind,
		"model", settings.Model,
		"timeout", cfg.Backend.RequestTimeout.Duration,
	)

	m := ui.NewModel(ui.Options{
		Completer:      completer,
		Settings:       settings,
		Theme:          startupTheme(cfg, opts.theme != "", themes, logger),
		Themes:         themes,
		Logger:         logger,
		RequestTimeout: cfg.Backend.RequestTimeout.Duration,
		ShowErrors:     cfg.UI.ShowErrors,
	})
	if _, err := ui.NewProgram(m).Run(); err != nil {
		return fmt.Errorf("run: %w", err)
	}
	logger.Info("exiting", "turns", m.Session.Len())
	return nil
}

func execute() error {
	return newRootCommand().ExecuteContext(context.Background())
}
