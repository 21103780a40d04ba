package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/finsight-app/finsight/domain"
	"github.com/spf13/viper"
)

// Defaults. The backend URL points at a local development server; real
// deployments override it via config file or FINSIGHT_BACKEND_URL.
const (
	DefaultBackendURL     = "http://localhost:8001"
	DefaultShareBaseURL   = "https://finsight-vert.vercel.app"
	DefaultTimeoutSeconds = 30
	DefaultOutputFormat   = "text"
	DefaultTheme          = "light"
)

// Config holds all CLI settings
type Config struct {
	Backend BackendConfig `mapstructure:"backend"`
	Share   ShareConfig   `mapstructure:"share"`
	Output  OutputConfig  `mapstructure:"output"`
}

// BackendConfig points the client at the analysis backend
type BackendConfig struct {
	URL            string `mapstructure:"url"`
	TimeoutSeconds int    `mapstructure:"timeout_seconds"`
}

// ShareConfig configures share link generation
type ShareConfig struct {
	BaseURL string `mapstructure:"base_url"`
}

// OutputConfig holds rendering defaults
type OutputConfig struct {
	Format    string `mapstructure:"format"`
	Directory string `mapstructure:"directory"`
	Theme     string `mapstructure:"theme"`
}

// Default returns the built-in configuration
func Default() *Config {
	return &Config{
		Backend: BackendConfig{
			URL:            DefaultBackendURL,
			TimeoutSeconds: DefaultTimeoutSeconds,
		},
		Share: ShareConfig{
			BaseURL: DefaultShareBaseURL,
		},
		Output: OutputConfig{
			Format:    DefaultOutputFormat,
			Directory: ".",
			Theme:     DefaultTheme,
		},
	}
}

// Timeout returns the backend timeout as a duration
func (c *Config) Timeout() time.Duration {
	if c.Backend.TimeoutSeconds <= 0 {
		return DefaultTimeoutSeconds * time.Second
	}
	return time.Duration(c.Backend.TimeoutSeconds) * time.Second
}

// Theme returns the configured theme as a domain value
func (c *Config) Theme() domain.Theme {
	return domain.Theme(c.Output.Theme)
}

// Validate checks the config for values the client cannot work with
func (c *Config) Validate() error {
	if c.Backend.URL == "" {
		return domain.NewConfigError("backend.url must not be empty", nil)
	}
	if !strings.HasPrefix(c.Backend.URL, "http://") && !strings.HasPrefix(c.Backend.URL, "https://") {
		return domain.NewConfigError(fmt.Sprintf("backend.url must be an http(s) URL: %s", c.Backend.URL), nil)
	}
	if c.Backend.TimeoutSeconds < 0 {
		return domain.NewConfigError("backend.timeout_seconds must not be negative", nil)
	}
	if !domain.Theme(c.Output.Theme).Valid() {
		return domain.NewConfigError(fmt.Sprintf("output.theme must be light or dark: %s", c.Output.Theme), nil)
	}
	switch domain.OutputFormat(c.Output.Format) {
	case domain.OutputFormatText, domain.OutputFormatJSON, domain.OutputFormatYAML, domain.OutputFormatHTML:
	default:
		return domain.NewConfigError(fmt.Sprintf("output.format is not supported: %s", c.Output.Format), nil)
	}
	return nil
}

// DefaultConfigPath returns the standard config file location
func DefaultConfigPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		dir = "."
	}
	return filepath.Join(dir, "finsight", "config.yaml")
}

// Load reads the configuration. Precedence, lowest to highest: built-in
// defaults, the config file (explicit path or the default location), then
// FINSIGHT_* environment variables. A missing file is not an error.
func Load(configPath string) (*Config, error) {
	v := viper.New()

	defaults := Default()
	v.SetDefault("backend.url", defaults.Backend.URL)
	v.SetDefault("backend.timeout_seconds", defaults.Backend.TimeoutSeconds)
	v.SetDefault("share.base_url", defaults.Share.BaseURL)
	v.SetDefault("output.format", defaults.Output.Format)
	v.SetDefault("output.directory", defaults.Output.Directory)
	v.SetDefault("output.theme", defaults.Output.Theme)

	v.SetEnvPrefix("FINSIGHT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	explicit := configPath != ""
	if !explicit {
		configPath = DefaultConfigPath()
	}
	v.SetConfigFile(configPath)
	v.SetConfigType("yaml")

	if err := v.ReadInConfig(); err != nil {
		if explicit {
			return nil, domain.NewConfigError(fmt.Sprintf("failed to read config file: %s", configPath), err)
		}
		// the default file is optional, but a malformed one is an error
		if !os.IsNotExist(err) {
			if _, notFound := err.(viper.ConfigFileNotFoundError); !notFound {
				return nil, domain.NewConfigError(fmt.Sprintf("failed to read config file: %s", configPath), err)
			}
		}
	}

	config := &Config{}
	if err := v.Unmarshal(config); err != nil {
		return nil, domain.NewConfigError("failed to parse configuration", err)
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

// Write saves the configuration as YAML at the given path, creating parent
// directories as needed.
func Write(config *Config, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return domain.NewConfigError("failed to create config directory", err)
	}

	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")
	v.Set("backend", map[string]any{
		"url":             config.Backend.URL,
		"timeout_seconds": config.Backend.TimeoutSeconds,
	})
	v.Set("share", map[string]any{
		"base_url": config.Share.BaseURL,
	})
	v.Set("output", map[string]any{
		"format":    config.Output.Format,
		"directory": config.Output.Directory,
		"theme":     config.Output.Theme,
	})

	if err := v.WriteConfigAs(path); err != nil {
		return domain.NewConfigError(fmt.Sprintf("failed to write config file: %s", path), err)
	}
	return nil
}
