package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
)

// Board sources
const (
	SourcePredefined = "predefined"
	SourceLayout     = "layout"
	SourcePainted    = "painted"
	SourceGenerated  = "generated"
)

// Config holds all configuration for the application
type Config struct {
	Log         LogConfig         `mapstructure:"log"`
	Board       BoardConfig       `mapstructure:"board"`
	Development DevelopmentConfig `mapstructure:"development"`
}

// LogConfig holds logging settings
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// BoardConfig selects where the board comes from and how it is placed.
type BoardConfig struct {
	Source       string             `mapstructure:"source"`
	Layout       [][]int            `mapstructure:"layout"`
	Painted      PaintedConfig      `mapstructure:"painted"`
	Generator    GeneratorConfig    `mapstructure:"generator"`
	Headquarters HeadquartersConfig `mapstructure:"headquarters"`
	Render       RenderConfig       `mapstructure:"render"`
}

// PaintedConfig holds painted tile layers as rows of single-character
// markers, top row first. '.' and ' ' leave a tile unpainted.
type PaintedConfig struct {
	OriginX  int      `mapstructure:"origin_x"`
	OriginY  int      `mapstructure:"origin_y"`
	Terrain  []string `mapstructure:"terrain"`
	Resource []string `mapstructure:"resource"`
}

// GeneratorConfig holds noise layout generation settings
type GeneratorConfig struct {
	Width         int     `mapstructure:"width"`
	Height        int     `mapstructure:"height"`
	Seed          int64   `mapstructure:"seed"`
	VoidThreshold float64 `mapstructure:"void_threshold"`
	Octaves       int     `mapstructure:"octaves"`
	Frequency     float64 `mapstructure:"frequency"`
}

// HeadquartersConfig places the HQ. When disabled the center cell is used.
type HeadquartersConfig struct {
	Enabled bool `mapstructure:"enabled"`
	X       int  `mapstructure:"x"`
	Y       int  `mapstructure:"y"`
}

// RenderConfig holds the cell-to-world mapping used by renderers
type RenderConfig struct {
	CellSize float64 `mapstructure:"cell_size"`
	OffsetX  float64 `mapstructure:"offset_x"`
	OffsetY  float64 `mapstructure:"offset_y"`
}

// DevelopmentConfig holds development/debug settings
type DevelopmentConfig struct {
	VerboseEvents bool `mapstructure:"verbose_events"`
}

var (
	// Global config instance
	cfg *Config
	v   *viper.Viper

	// Settings from the environment overlay, re-applied after every reload
	overlay map[string]interface{}
)

// setViperDefaults sets all default values using Viper's SetDefault
func setViperDefaults(v *viper.Viper) {
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "console")

	v.SetDefault("board.source", SourcePredefined)

	v.SetDefault("board.painted.origin_x", 0)
	v.SetDefault("board.painted.origin_y", 0)

	v.SetDefault("board.generator.width", 21)
	v.SetDefault("board.generator.height", 16)
	v.SetDefault("board.generator.seed", 0)
	v.SetDefault("board.generator.void_threshold", 0.3)
	v.SetDefault("board.generator.octaves", 3)
	v.SetDefault("board.generator.frequency", 0.15)

	v.SetDefault("board.headquarters.enabled", false)
	v.SetDefault("board.headquarters.x", 0)
	v.SetDefault("board.headquarters.y", 0)

	v.SetDefault("board.render.cell_size", 1.0)
	v.SetDefault("board.render.offset_x", 0.5)
	v.SetDefault("board.render.offset_y", 0.5)

	v.SetDefault("development.verbose_events", false)
}

// Init initializes the configuration
func Init(configPath string) error {
	v = viper.New()
	overlay = nil
	setViperDefaults(v)

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
		v.AddConfigPath("/etc/boardcore")
	}

	// BOARD_BOARD_SOURCE overrides board.source, and so on
	v.SetEnvPrefix("BOARD")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		// A missing file falls back to defaults
		if !isNotFound(err) {
			return fmt.Errorf("error reading config file: %w", err)
		}
	}

	loaded, err := decode(v)
	if err != nil {
		return err
	}
	cfg = loaded
	return nil
}

func isNotFound(err error) bool {
	var notFound viper.ConfigFileNotFoundError
	return errors.As(err, &notFound) || errors.Is(err, fs.ErrNotExist)
}

func decode(v *viper.Viper) (*Config, error) {
	c := &Config{}
	if err := v.Unmarshal(c); err != nil {
		return nil, fmt.Errorf("unable to decode config into struct: %w", err)
	}
	if err := Validate(c); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}
	return c, nil
}

// Get returns the global config instance
func Get() *Config {
	if cfg == nil {
		if err := Init(""); err != nil {
			panic("failed to initialize config with defaults: " + err.Error())
		}
	}
	return cfg
}

// LoadEnvironmentConfig merges config.<env>.yaml from the working directory
// over the loaded configuration. The main config file stays the one that is
// reported and watched.
func LoadEnvironmentConfig(env string) error {
	if env == "" {
		return nil
	}

	envFile := fmt.Sprintf("config.%s.yaml", env)
	ov := viper.New()
	ov.SetConfigFile(envFile)
	if err := ov.ReadInConfig(); err != nil {
		if isNotFound(err) {
			return nil
		}
		return fmt.Errorf("error reading environment config %s: %w", envFile, err)
	}

	if err := v.MergeConfigMap(ov.AllSettings()); err != nil {
		return fmt.Errorf("error merging environment config %s: %w", envFile, err)
	}
	merged, err := decode(v)
	if err != nil {
		return err
	}
	overlay = ov.AllSettings()
	cfg = merged
	return nil
}

// reload re-applies the environment overlay after viper has re-read the main
// file and decodes the result.
func reload() (*Config, error) {
	if overlay != nil {
		if err := v.MergeConfigMap(overlay); err != nil {
			return nil, fmt.Errorf("error re-applying environment config: %w", err)
		}
	}
	return decode(v)
}

// Set overrides a single key at runtime. The change is rejected, and the
// previous configuration kept, if the result does not validate.
func Set(key string, value interface{}) error {
	previous := v.Get(key)
	v.Set(key, value)

	updated, err := decode(v)
	if err != nil {
		v.Set(key, previous)
		return err
	}
	cfg = updated
	return nil
}

// ConfigFilePath returns the path of the loaded config file
func ConfigFilePath() string {
	return v.ConfigFileUsed()
}

// WatchConfig reloads the configuration whenever the file changes. onChange
// receives the new configuration, or the error that kept the old one active.
func WatchConfig(onChange func(*Config, error)) {
	v.OnConfigChange(func(e fsnotify.Event) {
		reloaded, err := reload()
		if err == nil {
			cfg = reloaded
		}
		if onChange != nil {
			onChange(cfg, err)
		}
	})
	v.WatchConfig()
}

// Validate validates the configuration values
func Validate(c *Config) error {
	switch c.Log.Level {
	case "trace", "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("log.level must be one of trace, debug, info, warn, error")
	}
	if c.Log.Format != "console" && c.Log.Format != "json" {
		return fmt.Errorf("log.format must be console or json")
	}

	b := c.Board
	switch b.Source {
	case SourcePredefined:
	case SourceLayout:
		if len(b.Layout) == 0 || len(b.Layout[0]) == 0 {
			return fmt.Errorf("board.layout must not be empty when board.source is %q", SourceLayout)
		}
	case SourcePainted:
		if len(b.Painted.Terrain) == 0 {
			return fmt.Errorf("board.painted.terrain must not be empty when board.source is %q", SourcePainted)
		}
	case SourceGenerated:
		g := b.Generator
		if g.Width <= 0 || g.Height <= 0 {
			return fmt.Errorf("board.generator dimensions must be positive")
		}
		if g.VoidThreshold < 0 || g.VoidThreshold >= 1 {
			return fmt.Errorf("board.generator.void_threshold must be in [0, 1)")
		}
		if g.Octaves < 1 {
			return fmt.Errorf("board.generator.octaves must be at least 1")
		}
		if g.Frequency <= 0 {
			return fmt.Errorf("board.generator.frequency must be positive")
		}
	default:
		return fmt.Errorf("board.source must be one of %s, %s, %s, %s",
			SourcePredefined, SourceLayout, SourcePainted, SourceGenerated)
	}

	if b.Render.CellSize <= 0 {
		return fmt.Errorf("board.render.cell_size must be positive")
	}

	return nil
}
