package model

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Storage backends.
const (
	BackendJSON   = "json"
	BackendSQLite = "sqlite"
)

// StorageConfig selects where items are persisted.
type StorageConfig struct {
	// Directory holds the storage, archive and temp directories.
	// A leading "~" is expanded to the user's home directory.
	Directory string `mapstructure:"directory" yaml:"directory"`

	// Backend is "json" (default) or "sqlite".
	Backend string `mapstructure:"backend" yaml:"backend"`

	// Validate checks JSON storage files against the item schema on read.
	Validate bool `mapstructure:"validate" yaml:"validate"`
}

// DisplayConfig holds rendering preferences.
type DisplayConfig struct {
	CompleteTasks    bool `mapstructure:"complete_tasks" yaml:"complete_tasks"`
	ProgressOverview bool `mapstructure:"progress_overview" yaml:"progress_overview"`
}

// BoardsConfig holds board defaults.
type BoardsConfig struct {
	Default string `mapstructure:"default" yaml:"default"`
}

// LogConfig controls diagnostic logging on stderr.
type LogConfig struct {
	Level  string `mapstructure:"level" yaml:"level"`
	Format string `mapstructure:"format" yaml:"format"`
}

// AppConfig is the top-level application configuration.
type AppConfig struct {
	Storage StorageConfig `mapstructure:"storage" yaml:"storage"`
	Display DisplayConfig `mapstructure:"display" yaml:"display"`
	Boards  BoardsConfig  `mapstructure:"boards" yaml:"boards"`
	Log     LogConfig     `mapstructure:"log" yaml:"log"`
}

// DefaultConfigPath returns ~/.config/taskbook/config.yaml.
func DefaultConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", "config.yaml")
	}
	return filepath.Join(home, ".config", "taskbook", "config.yaml")
}

// DefaultAppConfig returns the configuration used when no file exists.
func DefaultAppConfig() *AppConfig {
	return &AppConfig{
		Storage: StorageConfig{
			Directory: "~/.taskbook",
			Backend:   BackendJSON,
		},
		Display: DisplayConfig{
			CompleteTasks:    true,
			ProgressOverview: true,
		},
		Boards: BoardsConfig{Default: DefaultBoard},
		Log: LogConfig{
			Level:  "warn",
			Format: "text",
		},
	}
}

func setDefaults(v *viper.Viper) {
	d := DefaultAppConfig()
	v.SetDefault("storage.directory", d.Storage.Directory)
	v.SetDefault("storage.backend", d.Storage.Backend)
	v.SetDefault("storage.validate", d.Storage.Validate)
	v.SetDefault("display.complete_tasks", d.Display.CompleteTasks)
	v.SetDefault("display.progress_overview", d.Display.ProgressOverview)
	v.SetDefault("boards.default", d.Boards.Default)
	v.SetDefault("log.level", d.Log.Level)
	v.SetDefault("log.format", d.Log.Format)
}

// LoadConfig reads configuration from the given YAML file path using Viper.
// TASKBOOK_* environment variables override file values, e.g.
// TASKBOOK_STORAGE_BACKEND. A missing file yields the defaults.
func LoadConfig(path string) (*AppConfig, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")
	v.SetEnvPrefix("TASKBOOK")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var pathErr *os.PathError
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &pathErr) && !errors.As(err, &notFound) {
			return nil, fmt.Errorf("reading config %s: %w", path, err)
		}
	}

	cfg := DefaultAppConfig()
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}

	return cfg, nil
}

// Validate checks enumerated settings.
func (c *AppConfig) Validate() error {
	switch c.Storage.Backend {
	case BackendJSON, BackendSQLite:
	default:
		return fmt.Errorf("unknown storage backend %q", c.Storage.Backend)
	}
	if strings.TrimSpace(c.Boards.Default) == "" {
		c.Boards.Default = DefaultBoard
	}
	return nil
}

// TaskbookDir returns the storage directory with "~" expanded.
func (c *AppConfig) TaskbookDir() string {
	return ExpandHome(c.Storage.Directory)
}

// ExpandHome replaces a leading "~" with the user's home directory.
func ExpandHome(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~"))
}

// SaveConfig writes the given configuration to a YAML file at path,
// creating parent directories if needed.
func SaveConfig(path string, cfg *AppConfig) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating config directory %s: %w", dir, err)
	}

	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")

	v.Set("storage", cfg.Storage)
	v.Set("display", cfg.Display)
	v.Set("boards", cfg.Boards)
	v.Set("log", cfg.Log)

	if err := v.WriteConfigAs(path); err != nil {
		return fmt.Errorf("writing config to %s: %w", path, err)
	}

	return nil
}
