package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds application configuration
type Config struct {
	// Global settings
	Format  string `mapstructure:"format"`
	Quiet   bool   `mapstructure:"quiet"`
	Verbose bool   `mapstructure:"verbose"`

	// Detector settings
	Enabled       bool     `mapstructure:"enabled"`
	WindowMS      int      `mapstructure:"window_ms"`
	SoundCommand  string   `mapstructure:"sound_command"`
	ExtraPatterns []string `mapstructure:"extra_patterns"`
}

// Default returns a Config with default values
func Default() *Config {
	return &Config{
		Format:   "text",
		Quiet:    false,
		Verbose:  false,
		Enabled:  true,
		WindowMS: 2000,
	}
}

// Window returns the debounce window as a duration
func (c *Config) Window() time.Duration {
	if c.WindowMS <= 0 {
		return 2000 * time.Millisecond
	}
	return time.Duration(c.WindowMS) * time.Millisecond
}

// Load loads configuration from files and environment
func Load() (*Config, error) {
	v := viper.New()

	// Set config name and type
	v.SetConfigName("errbell")
	v.SetConfigType("yaml")

	// Add config paths (in order of precedence, lowest first)
	// 1. User config directory
	if configDir, err := os.UserConfigDir(); err == nil {
		v.AddConfigPath(filepath.Join(configDir, "errbell"))
	}
	// 2. Home directory (as .errbell.yaml)
	if home, err := os.UserHomeDir(); err == nil {
		v.AddConfigPath(home)
		v.SetConfigName(".errbell")
	}
	// 3. Current directory
	v.AddConfigPath(".")

	// Environment variables
	v.SetEnvPrefix("ERRBELL")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	// Bind specific environment variables
	v.BindEnv("format", "ERRBELL_FORMAT")
	v.BindEnv("quiet", "ERRBELL_QUIET")
	v.BindEnv("verbose", "ERRBELL_VERBOSE")
	v.BindEnv("enabled", "ERRBELL_ENABLED")
	v.BindEnv("window_ms", "ERRBELL_WINDOW_MS")
	v.BindEnv("sound_command", "ERRBELL_SOUND_COMMAND")

	// Set defaults
	cfg := Default()
	v.SetDefault("format", cfg.Format)
	v.SetDefault("quiet", cfg.Quiet)
	v.SetDefault("verbose", cfg.Verbose)
	v.SetDefault("enabled", cfg.Enabled)
	v.SetDefault("window_ms", cfg.WindowMS)

	// Try to read config file (ignore if not found)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			// Config file was found but another error occurred
			return nil, err
		}
		// Config file not found; use defaults
	}

	// Unmarshal into struct
	if err := v.Unmarshal(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// LoadFromFile loads configuration from a specific file
func LoadFromFile(path string) (*Config, error) {
	v := viper.New()

	v.SetConfigFile(path)

	if err := v.ReadInConfig(); err != nil {
		return nil, err
	}

	cfg := Default()
	if err := v.Unmarshal(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// ConfigFile returns the path to the config file that was loaded
func ConfigFile() string {
	v := viper.New()

	v.SetConfigName("errbell")
	v.SetConfigType("yaml")

	if configDir, err := os.UserConfigDir(); err == nil {
		v.AddConfigPath(filepath.Join(configDir, "errbell"))
	}
	v.AddConfigPath(".")

	if err := v.ReadInConfig(); err == nil {
		return v.ConfigFileUsed()
	}

	// Try .errbell in the home directory
	v.SetConfigName(".errbell")
	if home, err := os.UserHomeDir(); err == nil {
		v.AddConfigPath(home)
	}
	if err := v.ReadInConfig(); err == nil {
		return v.ConfigFileUsed()
	}

	return ""
}
