// Package config loads plugin settings from the XDG config dir and the environment.
// The resulting Config is an immutable value handed to every component; nothing
// in the plugin reads process-wide globals for endpoints or defaults.
package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/pelletier/go-toml/v2"
	"golang.org/x/text/language"

	perrors "gtranslate/plugin/internal/errors"
	"gtranslate/plugin/internal/xdg"
)

// FileName is the config file name inside the XDG config directory.
const FileName = "config.toml"

// Extractor names accepted by the Extractor setting.
const (
	ExtractorRegex = "regex"
	ExtractorHTML  = "html"
)

// AutoLanguage lets the endpoint detect the source language.
const AutoLanguage = "auto"

// Config holds plugin settings.
type Config struct {
	DefaultFrom      string   `toml:"default_from"`
	DefaultTo        string   `toml:"default_to"`
	CheckURL         string   `toml:"check_url"`
	TranslateURL     string   `toml:"translate_url"`
	UserAgent        string   `toml:"user_agent"`
	WrapLength       int      `toml:"wrap_length"`
	IconPath         string   `toml:"icon_path"`
	Timeout          Duration `toml:"timeout"`
	Extractor        string   `toml:"extractor"`
	StrictExtraction bool     `toml:"strict_extraction"`
	LogLevel         string   `toml:"log_level"`
	LogFile          string   `toml:"log_file"`
}

// Duration is a time.Duration written as a Go duration string ("10s") in TOML.
type Duration time.Duration

func (d *Duration) UnmarshalText(b []byte) error {
	v, err := time.ParseDuration(string(b))
	if err != nil {
		return err
	}
	*d = Duration(v)
	return nil
}

func (d Duration) MarshalText() ([]byte, error) {
	return []byte(time.Duration(d).String()), nil
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		DefaultFrom:  AutoLanguage,
		DefaultTo:    "vi",
		CheckURL:     "https://translate.google.com/",
		TranslateURL: "https://translate.google.com/m",
		// The mobile page serves different markup to unrecognised clients.
		UserAgent:  "Edge, Brave, Firefox, Chrome, Opera",
		WrapLength: 200,
		IconPath:   "Images/gt.png",
		Timeout:    Duration(10 * time.Second),
		Extractor:  ExtractorRegex,
		LogLevel:   "info",
	}
}

// Path returns the path to the config file.
func Path() (string, error) {
	dir, err := xdg.ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, FileName), nil
}

// Load reads configuration; a missing file returns defaults.
// A .env file in the working directory and GTRANSLATE_* variables override the file.
func Load() (Config, error) {
	p, err := Path()
	if err != nil {
		return Config{}, err
	}
	return LoadFile(p)
}

// LoadFile reads configuration from p, then applies environment overrides.
func LoadFile(p string) (Config, error) {
	c := Default()

	data, err := os.ReadFile(p)
	switch {
	case err == nil:
		if err := toml.Unmarshal(data, &c); err != nil {
			return c, perrors.Wrap(perrors.InvalidConfig, "parse "+p, err)
		}
	case errors.Is(err, os.ErrNotExist):
		// defaults
	default:
		return c, err
	}

	// .env is optional; variables may come from the launcher environment.
	_ = godotenv.Load()

	if err := c.applyEnv(); err != nil {
		return c, err
	}
	if err := c.Validate(); err != nil {
		return c, err
	}
	return c, nil
}

func (c *Config) applyEnv() error {
	if v := os.Getenv("GTRANSLATE_FROM"); v != "" {
		c.DefaultFrom = v
	}
	if v := os.Getenv("GTRANSLATE_TO"); v != "" {
		c.DefaultTo = v
	}
	if v := os.Getenv("GTRANSLATE_CHECK_URL"); v != "" {
		c.CheckURL = v
	}
	if v := os.Getenv("GTRANSLATE_TRANSLATE_URL"); v != "" {
		c.TranslateURL = v
	}
	if v := os.Getenv("GTRANSLATE_EXTRACTOR"); v != "" {
		c.Extractor = v
	}
	if v := os.Getenv("GTRANSLATE_LOG_LEVEL"); v != "" {
		c.LogLevel = v
	}
	if v := os.Getenv("GTRANSLATE_WRAP"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return perrors.Wrap(perrors.InvalidConfig, "GTRANSLATE_WRAP", err)
		}
		c.WrapLength = n
	}
	if v := os.Getenv("GTRANSLATE_TIMEOUT"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return perrors.Wrap(perrors.InvalidConfig, "GTRANSLATE_TIMEOUT", err)
		}
		c.Timeout = Duration(d)
	}
	return nil
}

// Validate checks every setting.
func (c Config) Validate() error {
	if c.DefaultFrom != AutoLanguage {
		if err := validLanguage(c.DefaultFrom); err != nil {
			return perrors.Wrap(perrors.InvalidConfig, "default_from", err)
		}
	}
	if c.DefaultTo == AutoLanguage {
		return perrors.New(perrors.InvalidConfig, "default_to cannot be auto")
	}
	if err := validLanguage(c.DefaultTo); err != nil {
		return perrors.Wrap(perrors.InvalidConfig, "default_to", err)
	}
	for name, raw := range map[string]string{"check_url": c.CheckURL, "translate_url": c.TranslateURL} {
		u, err := url.Parse(raw)
		if err != nil {
			return perrors.Wrap(perrors.InvalidConfig, name, err)
		}
		if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
			return perrors.New(perrors.InvalidConfig, fmt.Sprintf("%s must be an absolute http(s) URL, got %q", name, raw))
		}
	}
	if strings.TrimSpace(c.UserAgent) == "" {
		return perrors.New(perrors.InvalidConfig, "user_agent is required")
	}
	if c.WrapLength <= 0 {
		return perrors.New(perrors.InvalidConfig, fmt.Sprintf("wrap_length must be positive, got %d", c.WrapLength))
	}
	if c.Timeout <= 0 {
		return perrors.New(perrors.InvalidConfig, fmt.Sprintf("timeout must be positive, got %s", time.Duration(c.Timeout)))
	}
	switch c.Extractor {
	case ExtractorRegex, ExtractorHTML:
	default:
		return perrors.New(perrors.InvalidConfig, fmt.Sprintf("extractor must be %q or %q, got %q", ExtractorRegex, ExtractorHTML, c.Extractor))
	}
	return nil
}

func validLanguage(code string) error {
	if strings.TrimSpace(code) == "" {
		return errors.New("language code is empty")
	}
	_, err := language.Parse(code)
	return err
}
