package hcl

import (
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pattern-catalog/core/composite"
	"pattern-catalog/internal/errors"
)

func TestLoadWorkstation(t *testing.T) {
	doc, err := NewLoader().LoadFile(filepath.Join("testdata", "workstation.hcl"))
	require.NoError(t, err)

	assert.Equal(t, "Lucia's PC", doc.Root.Name())
	assert.Equal(t, "USD", doc.Currency)
	assert.Equal(t, 2, doc.Root.Len())
	// two pop toys: 5310 + 10
	assert.True(t, doc.Root.Price().Equal(decimal.NewFromInt(5320)), "got %s", doc.Root.Price())
	assert.Equal(t, 9, composite.Count(doc.Root))
}

func TestParseDefaultsRootNameToFile(t *testing.T) {
	src := []byte(`
equipment "cable" {
  price = "4.50"
}
equipment "adapter" {
  price = 0.25
}
`)
	doc, err := NewLoader().Parse(src, "desk/cables.hcl")
	require.NoError(t, err)

	assert.Equal(t, "cables", doc.Root.Name())
	assert.Equal(t, "4.75", doc.Root.Price().String())
}

func TestParseEmptyDocument(t *testing.T) {
	doc, err := NewLoader().Parse([]byte(""), "empty.hcl")
	require.NoError(t, err)
	assert.True(t, doc.Root.Price().IsZero())
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		src  string
		kind errors.Type
	}{
		{"syntax", `assembly "x" {`, errors.TypeParsing},
		{"missing price", `equipment "x" {}`, errors.TypeParsing},
		{"unknown attribute", `equipment "x" {
  price = 1
  colour = "red"
}`, errors.TypeParsing},
		{"unknown block", `widget "x" {}`, errors.TypeParsing},
		{"negative price", `equipment "x" { price = -5 }`, errors.TypeInput},
		{"price not numeric", `equipment "x" { price = "cheap" }`, errors.TypeInput},
		{"price is bool", `equipment "x" { price = true }`, errors.TypeInput},
		{"fractional quantity", `equipment "x" {
  price    = 1
  quantity = 1.5
}`, errors.TypeInput},
		{"zero quantity", `equipment "x" {
  price    = 1
  quantity = 0
}`, errors.TypeInput},
		{"quantity above maximum", `equipment "x" {
  price    = 10
  quantity = 10001
}`, errors.TypeInput},
		{"quantity beyond int64", `equipment "x" {
  price    = 10
  quantity = 18446744073709551617
}`, errors.TypeInput},
		{"name not string", `name = 3`, errors.TypeInput},
		{"variable reference", `equipment "x" { price = var.cost }`, errors.TypeParsing},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewLoader().Parse([]byte(tt.src), "bad.hcl")
			require.Error(t, err)
			assert.True(t, errors.IsType(err, tt.kind), "got %v", err)
		})
	}
}

func TestLoadFileMissing(t *testing.T) {
	_, err := NewLoader().LoadFile(filepath.Join(t.TempDir(), "nope.hcl"))
	assert.True(t, errors.IsType(err, errors.TypeInput))
}

func TestQuantityAtMaximum(t *testing.T) {
	src := []byte(`
equipment "screw" {
  price    = "0.01"
  quantity = 10000
}
`)
	doc, err := NewLoader().Parse(src, "screws.hcl")
	require.NoError(t, err)

	assert.Equal(t, 10000, doc.Root.Len())
	assert.Equal(t, "100", doc.Root.Price().String())
}
