// Package hcl - cty value conversion
// Values are checked for unknown and null before they are read.
package hcl

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/zclconf/go-cty/cty"
)

// ctyDecimal converts a number, or a string holding a number, to a decimal.
func ctyDecimal(val cty.Value) (decimal.Decimal, error) {
	if !val.IsKnown() {
		return decimal.Zero, fmt.Errorf("value is not known")
	}
	if val.IsNull() {
		return decimal.Zero, fmt.Errorf("value is null")
	}

	switch val.Type() {
	case cty.Number:
		return decimal.NewFromString(val.AsBigFloat().Text('f', -1))
	case cty.String:
		return decimal.NewFromString(val.AsString())
	default:
		return decimal.Zero, fmt.Errorf("expected number or string, got %s", val.Type().FriendlyName())
	}
}

// ctyString converts a string value.
func ctyString(val cty.Value) (string, error) {
	if !val.IsKnown() || val.IsNull() {
		return "", fmt.Errorf("value is not a known string")
	}
	if val.Type() != cty.String {
		return "", fmt.Errorf("expected string, got %s", val.Type().FriendlyName())
	}
	return val.AsString(), nil
}

// maxQuantity bounds how many times one equipment block is repeated.
const maxQuantity = 10000

// ctyCount converts a whole number between 1 and maxQuantity.
func ctyCount(val cty.Value) (int, error) {
	d, err := ctyDecimal(val)
	if err != nil {
		return 0, err
	}
	if !d.IsInteger() || d.LessThan(decimal.NewFromInt(1)) {
		return 0, fmt.Errorf("expected a whole number of at least 1, got %s", d)
	}
	if d.GreaterThan(decimal.NewFromInt(maxQuantity)) {
		return 0, fmt.Errorf("quantity %s exceeds the maximum of %d", d, maxQuantity)
	}
	return int(d.IntPart()), nil
}
