package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/govalues/money/v2"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.Equal(t, "half-up", cfg.Rounding)
	assert.False(t, cfg.Decimal)
	assert.Empty(t, cfg.Currencies)
	assert.Equal(t, "warn", cfg.Log.Level)
	assert.Equal(t, "text", cfg.Log.Format)
	assert.NoError(t, cfg.Validate())

	mode, err := cfg.RoundingMode()
	require.NoError(t, err)
	assert.Equal(t, money.HalfUp, mode)
}

func TestLoad(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		path := writeFile(t, "moneyctl.yaml", `
rounding: half_even
decimal: true
currencies:
  - crypto.yaml
log:
  level: debug
`)
		cfg, err := Load(path)
		require.NoError(t, err)

		mode, err := cfg.RoundingMode()
		require.NoError(t, err)
		assert.Equal(t, money.HalfEven, mode)
		assert.True(t, cfg.Decimal)
		assert.Equal(t, []string{"crypto.yaml"}, cfg.Currencies)
		assert.Equal(t, "debug", cfg.Log.Level)
		assert.Equal(t, "text", cfg.Log.Format) // default kept
	})

	t.Run("error", func(t *testing.T) {
		tests := map[string]string{
			"malformed":        "rounding: [",
			"unknown rounding": "rounding: nearest",
			"bad log format":   "log:\n  format: xml",
			"bad log level":    "log:\n  level: loud",
		}
		for name, content := range tests {
			t.Run(name, func(t *testing.T) {
				_, err := Load(writeFile(t, "moneyctl.yaml", content))
				assert.Error(t, err)
			})
		}
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
		assert.Error(t, err)
	})
}

func TestApplyFlags(t *testing.T) {
	t.Run("changed flags override", func(t *testing.T) {
		fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
		RegisterFlags(fs)
		require.NoError(t, fs.Parse([]string{"--rounding", "floor", "--currencies", "a.yaml,b.yaml", "--log-format", "json"}))

		cfg := Default()
		cfg.Decimal = true
		cfg.Currencies = []string{"c.yaml"}
		require.NoError(t, cfg.ApplyFlags(fs))

		assert.Equal(t, "floor", cfg.Rounding)
		assert.True(t, cfg.Decimal) // not changed on the command line
		assert.Equal(t, []string{"a.yaml", "b.yaml", "c.yaml"}, cfg.Currencies)
		assert.Equal(t, "json", cfg.Log.Format)
		assert.Equal(t, "warn", cfg.Log.Level)
	})

	t.Run("decimal and level", func(t *testing.T) {
		fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
		RegisterFlags(fs)
		require.NoError(t, fs.Parse([]string{"--decimal", "--log-level", "debug"}))

		cfg := Default()
		require.NoError(t, cfg.ApplyFlags(fs))
		assert.True(t, cfg.Decimal)
		assert.Equal(t, "debug", cfg.Log.Level)
	})

	t.Run("invalid value", func(t *testing.T) {
		fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
		RegisterFlags(fs)
		require.NoError(t, fs.Parse([]string{"--rounding", "sideways"}))

		cfg := Default()
		assert.ErrorIs(t, cfg.ApplyFlags(fs), money.ErrInvalidArgument)
	})
}

func TestLoadCurrencies(t *testing.T) {
	path := writeFile(t, "crypto.yaml", "currencies:\n  - {code: XBT, subunit: 8}\n  - {code: JPY, subunit: 2}\n")

	cfg := Default()
	cfg.Currencies = []string{path}
	agg, err := cfg.LoadCurrencies()
	require.NoError(t, err)
	require.Len(t, agg, 2)

	got, err := agg.SubunitFor(money.MustParseCurr("XBT"))
	require.NoError(t, err)
	assert.Equal(t, 8, got)

	got, err = agg.SubunitFor(money.JPY)
	require.NoError(t, err)
	assert.Equal(t, 2, got)

	got, err = agg.SubunitFor(money.USD)
	require.NoError(t, err)
	assert.Equal(t, 2, got)

	cfg.Currencies = []string{filepath.Join(t.TempDir(), "missing.yaml")}
	_, err = cfg.LoadCurrencies()
	assert.Error(t, err)
}
