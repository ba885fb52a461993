package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	UI      UIConfig      `mapstructure:"ui"`
	Listing ListingConfig `mapstructure:"listing"`
	Publish PublishConfig `mapstructure:"publish"`
}

// UIConfig holds presentation settings.
type UIConfig struct {
	CurrencySymbol string `mapstructure:"currency_symbol"`
}

// ListingConfig holds browse/filter defaults.
type ListingConfig struct {
	MaxPrice      float64 `mapstructure:"max_price"`
	MaxDistanceKm float64 `mapstructure:"max_distance_km"`
}

// PublishConfig holds the simulated publish timings.
type PublishConfig struct {
	DelayMs    int `mapstructure:"delay_ms"`
	RedirectMs int `mapstructure:"redirect_ms"`
}

// Load reads configuration from file and env. Env var overrides use prefix TECHMARKET_.
func Load() (Config, error) {
	v := viper.New()

	// default values
	v.SetDefault("ui.currency_symbol", "$")
	v.SetDefault("listing.max_price", 5000.0)
	v.SetDefault("listing.max_distance_km", 50.0)
	v.SetDefault("publish.delay_ms", 2000)
	v.SetDefault("publish.redirect_ms", 2000)

	v.SetConfigType("toml")

	cfgPath := os.Getenv("TECHMARKET_CONFIG")
	if cfgPath != "" {
		v.SetConfigFile(cfgPath)
	} else {
		v.AddConfigPath(filepath.Join(os.Getenv("HOME"), ".config", "techmarket"))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("TECHMARKET")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// read config file if present
	_ = v.ReadInConfig()

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	return c, nil
}

// Save writes the provided config to disk, creating the config directory
// if needed. All settings are non-sensitive preferences.
func Save(cfg Config) error {
	path := os.Getenv("TECHMARKET_CONFIG")
	if path == "" {
		path = filepath.Join(os.Getenv("HOME"), ".config", "techmarket", "config.toml")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("mkdir config dir: %w", err)
	}

	v := viper.New()
	v.SetConfigType("toml")
	v.Set("ui.currency_symbol", cfg.UI.CurrencySymbol)
	v.Set("listing.max_price", cfg.Listing.MaxPrice)
	v.Set("listing.max_distance_km", cfg.Listing.MaxDistanceKm)
	v.Set("publish.delay_ms", cfg.Publish.DelayMs)
	v.Set("publish.redirect_ms", cfg.Publish.RedirectMs)

	if err := v.WriteConfigAs(path); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}
