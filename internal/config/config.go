package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
	"github.com/vncsmyrnk/quickpoll/internal/core/domain"
)

const EnvPrefix = "QUICKPOLL"

type Config struct {
	Addr            string        `mapstructure:"addr"`
	PagePath        string        `mapstructure:"page_path"`
	PublicURL       string        `mapstructure:"public_url"`
	AllowedOrigins  []string      `mapstructure:"allowed_origins"`
	LogLevel        string        `mapstructure:"log_level"`
	LogFile         string        `mapstructure:"log_file"`
	OSC52           bool          `mapstructure:"osc52"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}

// LoadDotEnv reads .env files into the process environment. A missing
// file is not an error.
func LoadDotEnv(files ...string) error {
	err := godotenv.Load(files...)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to load .env: %w", err)
	}
	return nil
}

// New returns a viper instance with defaults set and QUICKPOLL_* variables
// bound.
func New() *viper.Viper {
	v := viper.New()

	v.SetDefault("addr", "0.0.0.0:8080")
	v.SetDefault("page_path", "/")
	v.SetDefault("public_url", "http://localhost:8080/")
	v.SetDefault("allowed_origins", []string{"*"})
	v.SetDefault("log_level", "info")
	v.SetDefault("log_file", "")
	v.SetDefault("osc52", true)
	v.SetDefault("shutdown_timeout", 30*time.Second)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	return v
}

func Load(v *viper.Viper) (Config, error) {
	if file := v.GetString("config"); file != "" {
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if c.Addr == "" {
		return errors.New("addr is required")
	}
	if !strings.HasPrefix(c.PagePath, "/") {
		return fmt.Errorf("page_path must start with '/', got %q", c.PagePath)
	}
	if _, err := domain.ParseLocation(c.PublicURL); err != nil {
		return fmt.Errorf("public_url: %w", err)
	}
	if c.ShutdownTimeout <= 0 {
		return errors.New("shutdown_timeout must be positive")
	}
	return nil
}

// PublicLocation is where share links point when there is no request to
// read the page location from, as in the terminal UI.
func (c Config) PublicLocation() domain.Location {
	loc, _ := domain.ParseLocation(c.PublicURL)
	return loc
}
