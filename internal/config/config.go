package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// ErrDesktopNotFound is returned when no --videos-dir override is given and
// the default location under the user's desktop cannot be resolved.
var ErrDesktopNotFound = errors.New("desktop directory not found")

// defaultVideosSubdir is the directory under the desktop that holds the
// input videos when no override is given.
const defaultVideosSubdir = "baseball_vids"

// Config holds all configuration for the application
type Config struct {
	Videos    VideosConfig
	Extractor ExtractorConfig
	Log       LogConfig
}

// VideosConfig holds input selection configuration
type VideosConfig struct {
	Dir   string // videos directory; empty means resolve the desktop default
	Force bool   // reprocess videos that already have frames
}

// ExtractorConfig holds ffmpeg invocation configuration
type ExtractorConfig struct {
	FFmpegPath string
	Timeout    time.Duration
	Quality    int // JPEG quality for -q:v (2-31, lower is better)
}

// LogConfig holds logging configuration
type LogConfig struct {
	Level  string
	Format string
}

// NewFlagSet builds the CLI flag set. The videos directory and the force
// flag are the tool's real surface; the rest is operational.
func NewFlagSet(name string) *pflag.FlagSet {
	flags := pflag.NewFlagSet(name, pflag.ContinueOnError)
	flags.String("videos-dir", "", "directory containing video files (default: ~/Desktop/baseball_vids)")
	flags.Bool("force", false, "reprocess videos that already have extracted frames")
	flags.String("config", "", "optional config file path")
	flags.String("log-level", "info", "log level (debug, info, warn, error)")
	flags.String("log-format", "console", "log format (console, json)")
	return flags
}

// Load reads configuration from defaults, an optional config file,
// environment variables, and the parsed flag set, in increasing precedence
func Load(flags *pflag.FlagSet) (*Config, error) {
	v := viper.New()

	setDefaults(v)

	v.SetEnvPrefix("PITCHFRAMES")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	flagBindings := map[string]string{
		"videos.dir":   "videos-dir",
		"videos.force": "force",
		"log.level":    "log-level",
		"log.format":   "log-format",
	}
	for key, name := range flagBindings {
		if err := v.BindPFlag(key, flags.Lookup(name)); err != nil {
			return nil, fmt.Errorf("failed to bind flag %s: %w", name, err)
		}
	}

	if configPath, _ := flags.GetString("config"); configPath != "" {
		v.SetConfigFile(configPath)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &config, nil
}

func setDefaults(v *viper.Viper) {
	// Videos defaults
	v.SetDefault("videos.dir", "")
	v.SetDefault("videos.force", false)

	// Extractor defaults
	v.SetDefault("extractor.ffmpegpath", "ffmpeg")
	v.SetDefault("extractor.timeout", "300s")
	v.SetDefault("extractor.quality", 2)

	// Log defaults
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "console")
}

// Validate checks configuration values for consistency
func (c *Config) Validate() error {
	if c.Extractor.Timeout <= 0 {
		return fmt.Errorf("extractor timeout must be positive, got %s", c.Extractor.Timeout)
	}
	if c.Extractor.Quality < 2 || c.Extractor.Quality > 31 {
		return fmt.Errorf("extractor quality must be in [2,31], got %d", c.Extractor.Quality)
	}
	if c.Extractor.FFmpegPath == "" {
		return errors.New("extractor ffmpeg path must not be empty")
	}
	return nil
}

// ResolveVideosDir returns the configured videos directory, falling back to
// the default under the user's desktop. The desktop itself must exist for the
// fallback to make sense on this machine; the videos directory below it is
// checked later by discovery.
func (c *Config) ResolveVideosDir() (string, error) {
	if c.Videos.Dir != "" {
		return c.Videos.Dir, nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("%w: cannot resolve home directory: %v", ErrDesktopNotFound, err)
	}

	desktop := filepath.Join(home, "Desktop")
	if _, err := os.Stat(desktop); err != nil {
		return "", fmt.Errorf("%w: %s", ErrDesktopNotFound, desktop)
	}

	return filepath.Join(desktop, defaultVideosSubdir), nil
}
