// Package config loads modetoggle configuration from defaults, a config
// file, environment variables, and flags.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes every environment variable read by Load.
const EnvPrefix = "MODETOGGLE"

// Config is the full application configuration.
type Config struct {
	Widget  WidgetConfig  `mapstructure:"widget"`
	Log     LogConfig     `mapstructure:"log"`
	Journal JournalConfig `mapstructure:"journal"`
	TUI     TUIConfig     `mapstructure:"tui"`
}

// WidgetConfig selects and labels the mounted widget.
type WidgetConfig struct {
	Tag     string `mapstructure:"tag"`
	Title   string `mapstructure:"title"`
	Content string `mapstructure:"content"`
	// Something seeds the observed attribute.
	Something string `mapstructure:"something"`
}

// LogConfig controls the zerolog logger.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
	// File is the log destination. "-" writes to stderr.
	File string `mapstructure:"file"`
}

// JournalConfig controls the lifecycle journal. An empty path disables it.
type JournalConfig struct {
	Path string `mapstructure:"path"`
}

// TUIConfig controls the host program.
type TUIConfig struct {
	AltScreen bool `mapstructure:"alt_screen"`
	Mouse     bool `mapstructure:"mouse"`
}

// Log formats.
const (
	LogFormatConsole = "console"
	LogFormatJSON    = "json"
)

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Widget: WidgetConfig{
			Tag:   "my-component",
			Title: "My Component",
		},
		Log: LogConfig{
			Level:  "info",
			Format: LogFormatConsole,
			File:   filepath.Join(StateDir(), "modetoggle.log"),
		},
		TUI: TUIConfig{
			AltScreen: true,
			Mouse:     true,
		},
	}
}

// ConfigDir returns the directory searched for config.yaml.
func ConfigDir() string {
	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		return filepath.Join(dir, "modetoggle")
	}
	if home, err := os.UserHomeDir(); err == nil {
		return filepath.Join(home, ".config", "modetoggle")
	}
	return "."
}

// StateDir returns the directory for logs and the journal.
func StateDir() string {
	if dir := os.Getenv("XDG_STATE_HOME"); dir != "" {
		return filepath.Join(dir, "modetoggle")
	}
	if home, err := os.UserHomeDir(); err == nil {
		return filepath.Join(home, ".local", "state", "modetoggle")
	}
	return "."
}

// Loader reads configuration with viper.
type Loader struct {
	v *viper.Viper
}

// NewLoader creates a loader seeded with defaults.
func NewLoader() *Loader {
	v := viper.New()
	setDefaults(v, Default())
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return &Loader{v: v}
}

func setDefaults(v *viper.Viper, cfg *Config) {
	v.SetDefault("widget.tag", cfg.Widget.Tag)
	v.SetDefault("widget.title", cfg.Widget.Title)
	v.SetDefault("widget.content", cfg.Widget.Content)
	v.SetDefault("widget.something", cfg.Widget.Something)
	v.SetDefault("log.level", cfg.Log.Level)
	v.SetDefault("log.format", cfg.Log.Format)
	v.SetDefault("log.file", cfg.Log.File)
	v.SetDefault("journal.path", cfg.Journal.Path)
	v.SetDefault("tui.alt_screen", cfg.TUI.AltScreen)
	v.SetDefault("tui.mouse", cfg.TUI.Mouse)
}

// BindFlag binds a config key to a command-line flag.
func (l *Loader) BindFlag(key string, flag *pflag.Flag) error {
	if flag == nil {
		return fmt.Errorf("flag for %q is nil", key)
	}
	return l.v.BindPFlag(key, flag)
}

// Load reads the config file (explicit path, or config.yaml in ConfigDir
// when present) and returns the merged, validated configuration.
func (l *Loader) Load(path string) (*Config, error) {
	if path != "" {
		l.v.SetConfigFile(path)
	} else {
		l.v.SetConfigName("config")
		l.v.SetConfigType("yaml")
		l.v.AddConfigPath(ConfigDir())
	}

	if err := l.v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	cfg := &Config{}
	if err := l.v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// ConfigFileUsed returns the config file that was read, if any.
func (l *Loader) ConfigFileUsed() string {
	return l.v.ConfigFileUsed()
}

// Validate checks the configuration for invalid values.
func (c *Config) Validate() error {
	var errs []error
	if strings.TrimSpace(c.Widget.Tag) == "" {
		errs = append(errs, errors.New("widget.tag is required"))
	}
	if _, err := zerolog.ParseLevel(strings.ToLower(c.Log.Level)); err != nil {
		errs = append(errs, fmt.Errorf("log.level %q is invalid", c.Log.Level))
	}
	switch c.Log.Format {
	case LogFormatConsole, LogFormatJSON:
	default:
		errs = append(errs, fmt.Errorf("log.format %q must be %q or %q", c.Log.Format, LogFormatConsole, LogFormatJSON))
	}
	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}
