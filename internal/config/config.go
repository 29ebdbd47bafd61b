// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

// Package config loads and edits the comment configuration file.
//
// Configuration sources, highest precedence first:
//  1. Environment variables (COMMENT_AUTHOR, COMMENT_DATE_FORMAT, COMMENT_BACKUPS)
//  2. Configuration file (YAML, TOML or JSON, chosen by extension)
//  3. Default values
package config

import (
	"errors"
	"fmt"
	"os"
	"os/user"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/viper"

	"go.astrophena.name/comment/internal/dateformat"
)

// Config holds the values used when stamping files.
type Config struct {
	// Author is written into newly inserted header blocks.
	Author string `mapstructure:"author" validate:"required"`
	// DateFormat is a dateformat pattern, for example "yyyy-mm-dd".
	DateFormat string `mapstructure:"date_format" validate:"required"`
	// Backups is how many previous versions of each rewritten file to keep.
	Backups int `mapstructure:"backups" validate:"gte=0,lte=100"`
}

// Keys that may be set with [Set].
const (
	KeyAuthor     = "author"
	KeyDateFormat = "date_format"
	KeyBackups    = "backups"
)

var aliases = map[string]string{
	"name":       KeyAuthor,
	"dateformat": KeyDateFormat,
}

// ErrUnknownKey is returned by [Set] for keys it does not recognize.
var ErrUnknownKey = errors.New("unknown configuration key")

// Load reads the configuration from path, applying environment overrides,
// the non-empty string fields of override, and defaults, in that order, and
// validates the result. A missing file is not an error.
//
// getenv is used for environment lookups so that callers can substitute
// their own environment.
func Load(path string, getenv func(string) string, override Config) (Config, error) {
	v := viper.New()
	v.SetConfigFile(path)
	setConfigType(v, path)

	if err := v.ReadInConfig(); err != nil && !isNotFound(err) {
		return Config{}, fmt.Errorf("reading config file: %w", err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decoding config file: %w", err)
	}

	if err := applyEnv(&cfg, getenv); err != nil {
		return Config{}, err
	}
	if override.Author != "" {
		cfg.Author = override.Author
	}
	if override.DateFormat != "" {
		cfg.DateFormat = override.DateFormat
	}
	ApplyDefaults(&cfg)

	if err := Validate(&cfg); err != nil {
		return Config{}, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

func applyEnv(cfg *Config, getenv func(string) string) error {
	if getenv == nil {
		return nil
	}
	if s := getenv("COMMENT_AUTHOR"); s != "" {
		cfg.Author = s
	}
	if s := getenv("COMMENT_DATE_FORMAT"); s != "" {
		cfg.DateFormat = s
	}
	if s := getenv("COMMENT_BACKUPS"); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil {
			return fmt.Errorf("COMMENT_BACKUPS: %w", err)
		}
		cfg.Backups = n
	}
	return nil
}

// ApplyDefaults fills unset fields with default values.
func ApplyDefaults(cfg *Config) {
	if cfg.Author == "" {
		cfg.Author = defaultAuthor()
	}
	if cfg.DateFormat == "" {
		cfg.DateFormat = dateformat.Default
	}
}

func defaultAuthor() string {
	u, err := user.Current()
	if err != nil {
		return ""
	}
	if name, _, _ := strings.Cut(u.Name, ","); name != "" {
		return name
	}
	return u.Username
}

// Set persists key=value in the configuration file at path, creating the
// file and its directory if needed. Other keys in the file are kept.
func Set(path, key, value string) error {
	key = strings.ToLower(strings.TrimSpace(key))
	if canonical, ok := aliases[key]; ok {
		key = canonical
	}
	switch key {
	case KeyAuthor, KeyDateFormat, KeyBackups:
	default:
		return fmt.Errorf("%w: %q", ErrUnknownKey, key)
	}

	v := viper.New()
	v.SetConfigFile(path)
	setConfigType(v, path)
	if err := v.ReadInConfig(); err != nil && !isNotFound(err) {
		return fmt.Errorf("reading config file: %w", err)
	}

	if key == KeyBackups {
		n, err := strconv.Atoi(strings.TrimSpace(value))
		if err != nil {
			return fmt.Errorf("%s: %w", key, err)
		}
		v.Set(key, n)
	} else {
		v.Set(key, value)
	}

	// Validate the would-be result before touching the file.
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return fmt.Errorf("decoding %s: %w", key, err)
	}
	ApplyDefaults(&cfg)
	if err := Validate(&cfg); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	return v.WriteConfigAs(path)
}

// ParseAssignment splits a "key=value" string.
func ParseAssignment(s string) (key, value string, err error) {
	key, value, ok := strings.Cut(s, "=")
	if !ok || strings.TrimSpace(key) == "" {
		return "", "", fmt.Errorf("want key=value, got %q", s)
	}
	return strings.TrimSpace(key), value, nil
}

// DefaultPath returns the default configuration file path:
// $XDG_CONFIG_HOME/comment/config.yaml, falling back to ~/.config.
func DefaultPath(getenv func(string) string) string {
	return filepath.Join(configDir(getenv), "config.yaml")
}

func configDir(getenv func(string) string) string {
	if xdg := getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "comment")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		// Last resort: the current directory.
		return "."
	}
	return filepath.Join(home, ".config", "comment")
}

func setConfigType(v *viper.Viper, path string) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		v.SetConfigType("toml")
	case ".json":
		v.SetConfigType("json")
	default:
		v.SetConfigType("yaml")
	}
}

func isNotFound(err error) bool {
	var nf viper.ConfigFileNotFoundError
	return errors.As(err, &nf) || errors.Is(err, os.ErrNotExist)
}
