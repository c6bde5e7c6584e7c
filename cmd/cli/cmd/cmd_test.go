package cmd

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"gopkg.in/yaml.v3"

	"pattern-catalog/internal/config"
	"pattern-catalog/internal/errors"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Cleanup(func() { config.Set(config.Default()) })

	var out bytes.Buffer
	root := NewRootCmd()
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(append([]string{"--no-color"}, args...))
	err := root.Execute()
	return out.String(), err
}

func TestVersion(t *testing.T) {
	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "patterns version "+Version+"\n", out)
}

func TestListText(t *testing.T) {
	out, err := execute(t, "list")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 18) // header, separator, sixteen patterns
	assert.Contains(t, lines[0], "NAME")
	assert.Contains(t, out, "chain-of-responsibility")
}

func TestListJSON(t *testing.T) {
	out, err := execute(t, "list", "--format", "json")
	require.NoError(t, err)

	var demos []struct {
		Name     string `json:"name"`
		Category string `json:"category"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &demos))
	assert.Len(t, demos, 16)
	assert.Equal(t, "abstract-factory", demos[0].Name)
	assert.Equal(t, "creational", demos[0].Category)
}

func TestListYAML(t *testing.T) {
	out, err := execute(t, "list", "-f", "yaml")
	require.NoError(t, err)

	var demos []map[string]string
	require.NoError(t, yaml.Unmarshal([]byte(out), &demos))
	assert.Len(t, demos, 16)
	assert.Equal(t, "visitor", demos[15]["name"])
}

func TestListUnknownFormat(t *testing.T) {
	_, err := execute(t, "list", "--format", "xml")
	require.Error(t, err)
	assert.True(t, errors.IsType(err, errors.TypeUnsupported))
}

func TestRunSelected(t *testing.T) {
	out, err := execute(t, "run", "state", "visitor")
	require.NoError(t, err)

	assert.Contains(t, out, "━━━ state (behavioral) ━━━")
	assert.Contains(t, out, "logged in, token <Some token>")
	assert.Contains(t, out, "spanish delight(10) large")
	assert.NotContains(t, out, "━━━ composite")
}

func TestRunAll(t *testing.T) {
	out, err := execute(t, "run")
	require.NoError(t, err)
	assert.Equal(t, 16, strings.Count(out, "━━━ "))
}

func TestRunUnknown(t *testing.T) {
	_, err := execute(t, "run", "flyweight")
	assert.True(t, errors.IsType(err, errors.TypeNotFound))
}

func TestPrice(t *testing.T) {
	path := filepath.Join(t.TempDir(), "desk.hcl")
	src := `
name = "Desk"
assembly "Cables" {
  equipment "HDMI" {
    price    = "9.99"
    quantity = 2
  }
}
equipment "Lamp" {
  price = 30
}
`
	require.NoError(t, os.WriteFile(path, []byte(src), 0644))

	out, err := execute(t, "price", path)
	require.NoError(t, err)
	assert.Contains(t, out, "Desk  49.98 USD")
	assert.Contains(t, out, "  Cables  19.98 USD")
	assert.Contains(t, out, "Total: 49.98 USD")

	out, err = execute(t, "price", "--breakdown=false", path)
	require.NoError(t, err)
	assert.Equal(t, "49.98 USD\n", out)
}

func TestPriceBadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.hcl")
	require.NoError(t, os.WriteFile(path, []byte(`equipment "x" {}`), 0644))

	_, err := execute(t, "price", path)
	assert.True(t, errors.IsType(err, errors.TypeParsing))
}

func TestHeaders(t *testing.T) {
	out, err := execute(t, "headers")
	require.NoError(t, err)
	assert.Equal(t, "\nAuthorization: token\nContentType: application/json\n"+`Body: {"username" = "joseph"}`+"\n",
		strings.TrimPrefix(out, "Headers with authentication"))

	out, err = execute(t, "headers", "--skip-auth", "--content-type", "text/plain", "--body", "ping")
	require.NoError(t, err)
	assert.Equal(t, "Headers without authentication\nContentType: text/plain\nping\n", out)
}

func TestHeadersFromConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "patterns.yaml")
	require.NoError(t, os.WriteFile(path, []byte("headers:\n  token: from-file\n"), 0644))

	out, err := execute(t, "--config", path, "headers")
	require.NoError(t, err)
	assert.Contains(t, out, "Authorization: from-file\n")
}

func TestConfigShowAndWrite(t *testing.T) {
	out, err := execute(t, "config", "show", "--format", "json")
	require.NoError(t, err)

	var shown config.Config
	require.NoError(t, json.Unmarshal([]byte(out), &shown))
	assert.True(t, shown.Output.NoColor, "--no-color should reach the effective config")

	path := filepath.Join(t.TempDir(), "out.yaml")
	_, err = execute(t, "config", "write", path)
	require.NoError(t, err)

	loaded, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, "USD", loaded.Pricing.Currency)
}

func TestPriceEmptyBillWarns(t *testing.T) {
	dir := t.TempDir()
	logPath := filepath.Join(dir, "patterns.log")
	cfgPath := filepath.Join(dir, "patterns.yaml")
	billPath := filepath.Join(dir, "empty.hcl")

	cfg := "logging:\n  level: warn\n  format: json\n  output: " + logPath + "\n"
	require.NoError(t, os.WriteFile(cfgPath, []byte(cfg), 0644))
	require.NoError(t, os.WriteFile(billPath, []byte(`name = "Nothing"`), 0644))

	out, err := execute(t, "--config", cfgPath, "price", "--breakdown=false", billPath)
	require.NoError(t, err)
	assert.Equal(t, "0 USD\n", out)

	logged, err := os.ReadFile(logPath)
	require.NoError(t, err)
	assert.Contains(t, string(logged), "bill of materials has no equipment")
	assert.NotContains(t, string(logged), "loaded bill of materials")
}
