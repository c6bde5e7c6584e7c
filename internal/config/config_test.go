package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pattern-catalog/internal/errors"
)

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)

	if diff := cmp.Diff(Default(), cfg); diff != "" {
		t.Errorf("Load() mismatch (-want +got):\n%s", diff)
	}
}

func TestSaveThenLoadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "patterns.yaml")

	cfg := Default()
	cfg.Pricing.Currency = "EUR"
	cfg.Headers.Token = "abc123"
	cfg.Logging.Level = "debug"
	require.NoError(t, cfg.Save(path))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "EUR", loaded.Pricing.Currency)
	assert.Equal(t, "abc123", loaded.Headers.Token)
	assert.Equal(t, "debug", loaded.Logging.Level)
	assert.Equal(t, "application/json", loaded.Headers.ContentType)
}

func TestLoadJSONPartialKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "patterns.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"output":{"no_color":true}}`), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.True(t, cfg.Output.NoColor)
	assert.Equal(t, "text", cfg.Output.DefaultFormat)
	assert.Equal(t, "USD", cfg.Pricing.Currency)
}

func TestEnvironmentOverride(t *testing.T) {
	t.Setenv("PATTERNS_PRICING_CURRENCY", "PLN")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "PLN", cfg.Pricing.Currency)
}

func TestLoadMalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.yaml")
	require.NoError(t, os.WriteFile(path, []byte("output: [unterminated"), 0644))

	_, err := Load(path)
	require.Error(t, err)
	assert.True(t, errors.IsType(err, errors.TypeConfig))
}

func TestMarshalUnknownFormat(t *testing.T) {
	_, err := Default().Marshal("toml")
	assert.True(t, errors.IsType(err, errors.TypeUnsupported))
}
