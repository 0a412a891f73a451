package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/jask/roster/internal/roster"
)

// ErrInvalid wraps every validation failure.
var ErrInvalid = errors.New("invalid config")

const (
	ResultViewList = "list"
	ResultViewRaw  = "raw"
)

// Config holds application configuration.
type Config struct {
	Seed   SeedConfig   `mapstructure:"seed"`
	UI     UIConfig     `mapstructure:"ui"`
	Labels LabelsConfig `mapstructure:"labels"`
	Log    LogConfig    `mapstructure:"log"`
}

// SeedConfig lists the names a fresh roster starts with.
type SeedConfig struct {
	Names []string `mapstructure:"names"`
}

// UIConfig holds presentation settings.
type UIConfig struct {
	ResultView      string `mapstructure:"result_view"`
	SimilarDistance int    `mapstructure:"similar_distance"`
	AltScreen       bool   `mapstructure:"alt_screen"`
}

// LabelsConfig is the table of user-facing strings.
type LabelsConfig struct {
	EnterItem      string `mapstructure:"enter_item"`
	ButtonClick    string `mapstructure:"button_click"`
	ButtonNavigate string `mapstructure:"button_navigate"`
	ResultTitle    string `mapstructure:"result_title"`
}

// LogConfig controls slog output. An empty File discards logs while the TUI
// is running.
type LogConfig struct {
	File  string `mapstructure:"file"`
	Level string `mapstructure:"level"`
}

// DefaultPath is where Load looks when neither ROSTER_CONFIG nor an explicit
// path is given.
func DefaultPath() string {
	if p := os.Getenv("ROSTER_CONFIG"); p != "" {
		return p
	}
	return filepath.Join(os.Getenv("HOME"), ".config", "roster", "config.toml")
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Seed: SeedConfig{Names: roster.DefaultSeed()},
		UI: UIConfig{
			ResultView:      ResultViewList,
			SimilarDistance: 1,
			AltScreen:       true,
		},
		Labels: LabelsConfig{
			EnterItem:      "Enter a student name",
			ButtonClick:    "add",
			ButtonNavigate: "finish",
			ResultTitle:    "Students",
		},
		Log: LogConfig{Level: "info"},
	}
}

// Load reads configuration from path (or DefaultPath when empty) and env.
// Env var overrides use prefix ROSTER_. A missing file is not an error.
func Load(path string) (Config, error) {
	v := viper.New()
	setDefaults(v, Default())

	v.SetConfigType("toml")
	if path == "" {
		path = DefaultPath()
	}
	v.SetConfigFile(path)

	v.SetEnvPrefix("ROSTER")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil && !isNotExist(err) {
		return Config{}, fmt.Errorf("read config %s: %w", path, err)
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// Validate checks enumerated and numeric settings.
func (c Config) Validate() error {
	switch c.UI.ResultView {
	case ResultViewList, ResultViewRaw:
	default:
		return fmt.Errorf("%w: ui.result_view %q (want %q or %q)", ErrInvalid, c.UI.ResultView, ResultViewList, ResultViewRaw)
	}
	if c.UI.SimilarDistance < 0 {
		return fmt.Errorf("%w: ui.similar_distance %d is negative", ErrInvalid, c.UI.SimilarDistance)
	}
	switch strings.ToLower(c.Log.Level) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("%w: log.level %q", ErrInvalid, c.Log.Level)
	}
	return nil
}

// Save writes cfg to path as TOML, creating the directory if needed.
func Save(cfg Config, path string) error {
	if path == "" {
		path = DefaultPath()
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("mkdir config dir: %w", err)
	}

	v := viper.New()
	v.SetConfigType("toml")
	setValues(v.Set, cfg)

	if err := v.WriteConfigAs(path); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

func setDefaults(v *viper.Viper, cfg Config) {
	setValues(v.SetDefault, cfg)
}

func setValues(set func(key string, value any), cfg Config) {
	set("seed.names", cfg.Seed.Names)
	set("ui.result_view", cfg.UI.ResultView)
	set("ui.similar_distance", cfg.UI.SimilarDistance)
	set("ui.alt_screen", cfg.UI.AltScreen)
	set("labels.enter_item", cfg.Labels.EnterItem)
	set("labels.button_click", cfg.Labels.ButtonClick)
	set("labels.button_navigate", cfg.Labels.ButtonNavigate)
	set("labels.result_title", cfg.Labels.ResultTitle)
	set("log.file", cfg.Log.File)
	set("log.level", cfg.Log.Level)
}

func isNotExist(err error) bool {
	var nf viper.ConfigFileNotFoundError
	return errors.As(err, &nf) || errors.Is(err, os.ErrNotExist)
}
