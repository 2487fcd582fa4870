// Package config loads the application settings from defaults, an optional
// config file, a .env file, GHPE_* environment variables and command-line flags.
package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/naka-gawa/github-profile-explorer/internal/domain"
	"github.com/naka-gawa/github-profile-explorer/internal/gateway"
)

// AppName names the config directory and the user agent.
const AppName = "github-profile-explorer"

// EnvPrefix prefixes every environment variable, e.g. GHPE_PER_PAGE.
const EnvPrefix = "GHPE"

// Output formats
const (
	FormatTUI  = "tui"
	FormatJSON = "json"
)

// Formats lists the accepted output formats.
var Formats = []string{FormatTUI, FormatJSON}

// Version is reported in the user agent. It is set at build time.
var Version = "dev"

// Config holds every setting of a run.
type Config struct {
	Sort        string        `mapstructure:"sort"`
	Direction   string        `mapstructure:"direction"`
	PerPage     int           `mapstructure:"per_page"`
	Page        int           `mapstructure:"page"`
	APIURL      string        `mapstructure:"api_url"`
	UserAgent   string        `mapstructure:"user_agent"`
	HTTPTimeout time.Duration `mapstructure:"http_timeout"`
	LogLevel    string        `mapstructure:"log_level"`
	Format      string        `mapstructure:"format"`
}

// Default returns the settings used when nothing overrides them.
func Default() *Config {
	return &Config{
		Sort:        "created",
		Direction:   "desc",
		PerPage:     30,
		Page:        1,
		APIURL:      gateway.DefaultBaseURL,
		UserAgent:   AppName + "/" + Version,
		HTTPTimeout: 30 * time.Second,
		LogLevel:    "warn",
		Format:      FormatTUI,
	}
}

// SetDefaults registers default values with v
func SetDefaults(v *viper.Viper) {
	defaults := Default()

	v.SetDefault("sort", defaults.Sort)
	v.SetDefault("direction", defaults.Direction)
	v.SetDefault("per_page", defaults.PerPage)
	v.SetDefault("page", defaults.Page)
	v.SetDefault("api_url", defaults.APIURL)
	v.SetDefault("user_agent", defaults.UserAgent)
	v.SetDefault("http_timeout", defaults.HTTPTimeout)
	v.SetDefault("log_level", defaults.LogLevel)
	v.SetDefault("format", defaults.Format)
}

// Init prepares v: defaults, environment binding and the config file.
// An explicit cfgFile must exist; the default locations are optional.
func Init(v *viper.Viper, cfgFile string) error {
	SetDefaults(v)

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(Dir())
		v.AddConfigPath(".")
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile != "" || !errors.As(err, &notFound) {
			return fmt.Errorf("failed to read config file: %w", err)
		}
	}
	return nil
}

// LoadDotEnv loads variables from the given .env files, or ./.env when none
// are given. Missing files are ignored; variables already set win.
func LoadDotEnv(files ...string) error {
	if len(files) == 0 {
		files = []string{".env"}
	}
	var existing []string
	for _, f := range files {
		if _, err := os.Stat(f); err == nil {
			existing = append(existing, f)
		}
	}
	if len(existing) == 0 {
		return nil
	}
	if err := godotenv.Load(existing...); err != nil {
		return fmt.Errorf("failed to load .env: %w", err)
	}
	return nil
}

// Load reads the configuration from v into a Config struct and validates it
func Load(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks every setting that can be rejected before any request is made.
// Page sizes above the upstream maximum are passed through. The start page is
// checked separately by ValidatePage since only single-page runs use it.
func (c *Config) Validate() error {
	var errs []error
	if !slices.Contains(domain.Sorts, c.Sort) {
		errs = append(errs, fmt.Errorf("sort must be one of %s, got %q", strings.Join(domain.Sorts, "/"), c.Sort))
	}
	if !slices.Contains(domain.Directions, c.Direction) {
		errs = append(errs, fmt.Errorf("direction must be one of %s, got %q", strings.Join(domain.Directions, "/"), c.Direction))
	}
	if c.PerPage < 1 {
		errs = append(errs, fmt.Errorf("per_page must be at least 1, got %d", c.PerPage))
	}
	if u, err := url.Parse(c.APIURL); err != nil || u.Scheme == "" || u.Host == "" {
		errs = append(errs, fmt.Errorf("api_url must be an absolute URL, got %q", c.APIURL))
	}
	if c.HTTPTimeout < 0 {
		errs = append(errs, fmt.Errorf("http_timeout must not be negative, got %s", c.HTTPTimeout))
	}
	if !slices.Contains([]string{"debug", "info", "warn", "error"}, c.LogLevel) {
		errs = append(errs, fmt.Errorf("log_level must be one of debug/info/warn/error, got %q", c.LogLevel))
	}
	if !slices.Contains(Formats, c.Format) {
		errs = append(errs, fmt.Errorf("format must be one of %s, got %q", strings.Join(Formats, "/"), c.Format))
	}
	return errors.Join(errs...)
}

// Dir returns the path to the user's config directory
func Dir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, AppName)
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "." + AppName
	}
	return filepath.Join(home, ".config", AppName)
}

// ValidatePage checks the start page of a single-page run.
func (c *Config) ValidatePage() error {
	if c.Page < 1 {
		return fmt.Errorf("page must be at least 1, got %d", c.Page)
	}
	return nil
}
