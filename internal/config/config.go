// Package config provides Viper-based configuration loading for the game.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// DefaultFileName is the base name LoadDefault searches for, without extension.
const DefaultFileName = "dragons-escape"

// EnvPrefix prefixes every environment variable override.
const EnvPrefix = "DRAGONS"

// Color modes for DisplayConfig.Color.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// DisplayConfig holds console output settings.
type DisplayConfig struct {
	// Width is the column at which room descriptions are wrapped.
	Width int `mapstructure:"width"`
	// Color is "auto", "always" or "never". Auto enables colour only when
	// stdout is a terminal.
	Color string `mapstructure:"color"`
	// ClearScreen enables the clear-screen sequence between screens.
	ClearScreen bool `mapstructure:"clear_screen"`
}

// AnimationConfig holds the pacing of the decorative animations.
type AnimationConfig struct {
	// Enabled turns the frame animations and feedback pauses on.
	Enabled bool `mapstructure:"enabled"`
	// TitleFrameDelay is the pause after each title frame.
	TitleFrameDelay time.Duration `mapstructure:"title_frame_delay"`
	// TitleLoops is how many times the title frames cycle.
	TitleLoops int `mapstructure:"title_loops"`
	// TreasureFrameDelay is the pause after each treasure frame.
	TreasureFrameDelay time.Duration `mapstructure:"treasure_frame_delay"`
	// TreasureLoops is how many times the treasure icons cycle.
	TreasureLoops int `mapstructure:"treasure_loops"`
	// MoveFrameDelay is the pause after each movement frame.
	MoveFrameDelay time.Duration `mapstructure:"move_frame_delay"`
	// FeedbackPause is the pause after look, movement and error feedback.
	FeedbackPause time.Duration `mapstructure:"feedback_pause"`
}

// LoggingConfig holds structured logging settings.
type LoggingConfig struct {
	// Level is the minimum log level: "debug", "info", "warn", "error".
	Level string `mapstructure:"level"`
	// Format is the log output format: "json" or "console".
	Format string `mapstructure:"format"`
	// Output is a zap output path: "stderr", "stdout" or a file path.
	Output string `mapstructure:"output"`
}

// Config is the top-level application configuration.
type Config struct {
	Display   DisplayConfig   `mapstructure:"display"`
	Animation AnimationConfig `mapstructure:"animation"`
	Logging   LoggingConfig   `mapstructure:"logging"`
}

// Validate checks all configuration invariants.
//
// Postcondition: Returns nil if configuration is valid, or an error describing all violations.
func (c Config) Validate() error {
	var errs []string

	if err := validateDisplay(c.Display); err != nil {
		errs = append(errs, err.Error())
	}
	if err := validateAnimation(c.Animation); err != nil {
		errs = append(errs, err.Error())
	}
	if err := validateLogging(c.Logging); err != nil {
		errs = append(errs, err.Error())
	}

	if len(errs) > 0 {
		return fmt.Errorf("configuration validation failed: %s", strings.Join(errs, "; "))
	}
	return nil
}

func validateDisplay(d DisplayConfig) error {
	var errs []string
	if d.Width < 20 || d.Width > 500 {
		errs = append(errs, fmt.Sprintf("display.width must be 20-500, got %d", d.Width))
	}
	validColors := map[string]bool{ColorAuto: true, ColorAlways: true, ColorNever: true}
	if !validColors[d.Color] {
		errs = append(errs, fmt.Sprintf("display.color must be one of [auto, always, never], got %q", d.Color))
	}
	if len(errs) > 0 {
		return fmt.Errorf("%s", strings.Join(errs, "; "))
	}
	return nil
}

func validateAnimation(a AnimationConfig) error {
	var errs []string
	durations := []struct {
		name  string
		value time.Duration
	}{
		{"animation.title_frame_delay", a.TitleFrameDelay},
		{"animation.treasure_frame_delay", a.TreasureFrameDelay},
		{"animation.move_frame_delay", a.MoveFrameDelay},
		{"animation.feedback_pause", a.FeedbackPause},
	}
	for _, d := range durations {
		if d.value < 0 {
			errs = append(errs, fmt.Sprintf("%s must not be negative", d.name))
		}
	}
	if a.TitleLoops < 1 {
		errs = append(errs, fmt.Sprintf("animation.title_loops must be >= 1, got %d", a.TitleLoops))
	}
	if a.TreasureLoops < 1 {
		errs = append(errs, fmt.Sprintf("animation.treasure_loops must be >= 1, got %d", a.TreasureLoops))
	}
	if len(errs) > 0 {
		return fmt.Errorf("%s", strings.Join(errs, "; "))
	}
	return nil
}

func validateLogging(l LoggingConfig) error {
	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[l.Level] {
		return fmt.Errorf("logging.level must be one of [debug, info, warn, error], got %q", l.Level)
	}
	validFormats := map[string]bool{"json": true, "console": true}
	if !validFormats[l.Format] {
		return fmt.Errorf("logging.format must be one of [json, console], got %q", l.Format)
	}
	if l.Output == "" {
		return errors.New("logging.output must not be empty")
	}
	return nil
}

// Load reads configuration from the given file path, applies environment variable
// overrides, and validates the result.
//
// Precondition: path must be a valid file path to a YAML configuration file.
// Postcondition: Returns a valid Config or a non-nil error.
func Load(path string) (Config, error) {
	v := newViper()
	v.SetConfigFile(path)

	if err := v.ReadInConfig(); err != nil {
		return Config{}, fmt.Errorf("reading config file: %w", err)
	}

	return LoadFromViper(v)
}

// LoadDefault searches the working directory for dragons-escape.yaml. A missing
// file is not an error: defaults and environment overrides apply.
//
// Postcondition: Returns a valid Config or a non-nil error.
func LoadDefault() (Config, error) {
	v := newViper()
	v.SetConfigName(DefaultFileName)
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("reading config file: %w", err)
		}
	}

	return LoadFromViper(v)
}

// LoadFromViper builds a Config from an already-configured Viper instance.
//
// Precondition: v must be non-nil and have configuration values set.
// Postcondition: Returns a valid Config or a non-nil error.
func LoadFromViper(v *viper.Viper) (Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("unmarshalling config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Default returns the configuration used when no file or override is present.
//
// Postcondition: The returned Config passes Validate.
func Default() Config {
	cfg, err := LoadFromViper(newViper())
	if err != nil {
		panic(fmt.Sprintf("default configuration is invalid: %v", err))
	}
	return cfg
}

func newViper() *viper.Viper {
	v := viper.New()

	// Environment variable overrides with DRAGONS_ prefix
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)
	return v
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("display.width", 60)
	v.SetDefault("display.color", ColorAuto)
	v.SetDefault("display.clear_screen", true)

	v.SetDefault("animation.enabled", true)
	v.SetDefault("animation.title_frame_delay", "500ms")
	v.SetDefault("animation.title_loops", 3)
	v.SetDefault("animation.treasure_frame_delay", "200ms")
	v.SetDefault("animation.treasure_loops", 2)
	v.SetDefault("animation.move_frame_delay", "300ms")
	v.SetDefault("animation.feedback_pause", "1s")

	v.SetDefault("logging.level", "error")
	v.SetDefault("logging.format", "console")
	v.SetDefault("logging.output", "stderr")
}
