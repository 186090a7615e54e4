package tax

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalculate(t *testing.T) {
	cfg := DefaultConfig()

	b := Calculate(cfg, 1092.50)
	assert.InDelta(t, 1000.0, b.Sales, 1e-9)
	assert.InDelta(t, 27.5, b.County, 1e-9)
	assert.InDelta(t, 65.0, b.State, 1e-9)
	assert.InDelta(t, 92.5, b.Tax(), 1e-9)
	assert.InDelta(t, b.Total, b.Sales+b.Tax(), 1e-9)
}

func TestCalculate_NotPositive(t *testing.T) {
	cfg := DefaultConfig()

	for _, total := range []float64{0, -12.5} {
		b := Calculate(cfg, total)
		assert.Equal(t, Breakdown{Total: total, Sales: total}, b)
	}
}

func TestConfig_Fits(t *testing.T) {
	cfg := DefaultConfig()

	assert.True(t, cfg.Fits(0))
	assert.True(t, cfg.Fits(99999.99))
	assert.True(t, cfg.Fits(-99999.99))
	assert.False(t, cfg.Fits(100000))
	assert.False(t, cfg.Fits(-100000.5))
}

func TestBreakdown_Write(t *testing.T) {
	cfg := DefaultConfig()

	var sb strings.Builder
	require.NoError(t, Calculate(cfg, 1092.50).Write(&sb, cfg, "March", 2024))

	want := "March 2024\n" +
		"----------------\n" +
		"Total Collected:  $ 1092.50\n" +
		"Sales:            $ 1000.00\n" +
		"County Sales Tax: $   27.50\n" +
		"State Sales Tax:  $   65.00\n" +
		"Total Sales Tax:  $   92.50\n"
	assert.Equal(t, want, sb.String())
}

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tax.yaml")
	require.NoError(t, os.WriteFile(path, []byte("state_rate: 0.07\nwidth: 8\n"), 0o600))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, Config{CountyRate: 0.0275, StateRate: 0.07, Width: 8}, cfg)
}

func TestLoadConfig_Errors(t *testing.T) {
	dir := t.TempDir()

	_, err := LoadConfig(filepath.Join(dir, "missing.yaml"))
	require.ErrorIs(t, err, os.ErrNotExist)

	bad := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("width: [1\n"), 0o600))
	_, err = LoadConfig(bad)
	require.Error(t, err)

	invalid := filepath.Join(dir, "invalid.yaml")
	require.NoError(t, os.WriteFile(invalid, []byte("county_rate: 2\nwidth: 0\n"), 0o600))
	_, err = LoadConfig(invalid)
	require.ErrorContains(t, err, "county_rate")
	require.ErrorContains(t, err, "width")
}
