package bootstrap

import (
	"github.com/foodops/stockbook/pkg"
)

// Config is the top level configuration struct for the entire application.
type Config struct {
	EnvName           string `env:"ENV_NAME"`
	ServerAddress     string `env:"SERVER_ADDRESS"`
	LogLevel          string `env:"LOG_LEVEL"`
	SettingsFile      string `env:"SETTINGS_FILE"`
	TurnoverCacheFile string `env:"TURNOVER_CACHE_FILE"`
	RecipeFile        string `env:"RECIPE_FILE"`
}

// NewConfig creates an instance of Config.
func NewConfig() *Config {
	cfg := &Config{}

	if err := pkg.SetConfigFromEnvVars(cfg); err != nil {
		panic(err)
	}

	if cfg.ServerAddress == "" {
		cfg.ServerAddress = ":8080"
	}

	if cfg.SettingsFile == "" {
		cfg.SettingsFile = "settings.json"
	}

	if cfg.TurnoverCacheFile == "" {
		cfg.TurnoverCacheFile = "turnover_cache.json"
	}

	if cfg.RecipeFile == "" {
		cfg.RecipeFile = "default_receipt.json"
	}

	return cfg
}
