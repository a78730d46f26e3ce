package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config holds mlref's startup settings.
type Config struct {
	Family     string `mapstructure:"family"`
	Section    string `mapstructure:"section"`
	LockFamily bool   `mapstructure:"lock_family"`
	// Restore reopens the family and section saved in prefs on quit,
	// ahead of Family and Section.
	Restore     bool   `mapstructure:"restore"`
	ContentFile string `mapstructure:"content_file"`
	LogFile     string `mapstructure:"log_file"`
	LogLevel    string `mapstructure:"log_level"`
	Width       int    `mapstructure:"width"`
}

const (
	envPrefix         = "MLREF"
	defaultConfigPath = "~/.config/mlref/config.toml"
	defaultLogFile    = "~/.local/state/mlref/mlref.log"
	defaultLogLevel   = "info"
	defaultFamily     = "regression"
	defaultSection    = "overview"
	defaultWidth      = 80
)

// DefaultPath returns the config location used when none is given.
func DefaultPath() string {
	return defaultConfigPath
}

// Load reads the config at path (or the default location), applies MLREF_*
// environment overrides, and falls back to defaults when the file is missing.
func Load(path string) (Config, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return Config{}, err
	}

	v := viper.New()
	v.SetDefault("family", defaultFamily)
	v.SetDefault("section", defaultSection)
	v.SetDefault("lock_family", false)
	v.SetDefault("restore", true)
	v.SetDefault("content_file", "")
	v.SetDefault("log_file", defaultLogFile)
	v.SetDefault("log_level", defaultLogLevel)
	v.SetDefault("width", defaultWidth)

	v.SetConfigType("toml")
	v.SetConfigFile(resolved)

	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil && !isNotExist(err) {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	return cfg.normalize(), nil
}

func (c Config) normalize() Config {
	c.Family = strings.ToLower(strings.TrimSpace(c.Family))
	c.Section = strings.ToLower(strings.TrimSpace(c.Section))
	c.LogLevel = strings.TrimSpace(c.LogLevel)
	if c.LogLevel == "" {
		c.LogLevel = defaultLogLevel
	}
	if strings.TrimSpace(c.LogFile) == "" {
		c.LogFile = defaultLogFile
	}
	c.LogFile = mustExpand(c.LogFile)
	if strings.TrimSpace(c.ContentFile) != "" {
		c.ContentFile = mustExpand(c.ContentFile)
	}
	if c.Width <= 0 {
		c.Width = defaultWidth
	}
	return c
}

func isNotExist(err error) bool {
	var notFound viper.ConfigFileNotFoundError
	return errors.As(err, &notFound) || errors.Is(err, fs.ErrNotExist)
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return expandPath(defaultConfigPath)
	}
	return expandPath(path)
}

func mustExpand(path string) string {
	expanded, err := expandPath(path)
	if err != nil {
		return path
	}
	return expanded
}

func expandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", fmt.Errorf("path is empty")
	}
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}
