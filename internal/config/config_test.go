package config

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("TECHMARKET_CONFIG", filepath.Join(t.TempDir(), "missing.toml"))

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, "$", cfg.UI.CurrencySymbol)
	require.Equal(t, 5000.0, cfg.Listing.MaxPrice)
	require.Equal(t, 50.0, cfg.Listing.MaxDistanceKm)
	require.Equal(t, 2000, cfg.Publish.DelayMs)
	require.Equal(t, 2000, cfg.Publish.RedirectMs)
}

func TestEnvOverride(t *testing.T) {
	t.Setenv("TECHMARKET_CONFIG", filepath.Join(t.TempDir(), "missing.toml"))
	t.Setenv("TECHMARKET_LISTING_MAX_PRICE", "9000")
	t.Setenv("TECHMARKET_UI_CURRENCY_SYMBOL", "€")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, 9000.0, cfg.Listing.MaxPrice)
	require.Equal(t, "€", cfg.UI.CurrencySymbol)
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	t.Setenv("TECHMARKET_CONFIG", path)

	cfg, err := Load()
	require.NoError(t, err)
	cfg.Listing.MaxPrice = 7500
	cfg.Publish.DelayMs = 100
	require.NoError(t, Save(cfg))

	got, err := Load()
	require.NoError(t, err)
	require.Equal(t, 7500.0, got.Listing.MaxPrice)
	require.Equal(t, 100, got.Publish.DelayMs)
	require.Equal(t, "$", got.UI.CurrencySymbol)
}
