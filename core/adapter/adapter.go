// Package adapter converts the integer output of Target into the string
// input Adaptee expects.
//
// Two adapters are provided and they are deliberately separate: Converter
// works on data the caller already fetched, LimitAdapter fetches it itself.
package adapter

import (
	"strconv"
	"strings"
)

// MaxLimit is the largest limit Target.Call accepts.
const MaxLimit = 1 << 20

// Target produces integers.
type Target struct{}

// Call returns 0 through limit inclusive. A limit that is negative or above
// MaxLimit yields nothing.
func (Target) Call(limit int) []int {
	if limit < 0 || limit > MaxLimit {
		return nil
	}
	out := make([]int, 0, limit+1)
	for i := 0; i <= limit; i++ {
		out = append(out, i)
	}
	return out
}

// Adaptee consumes strings.
type Adaptee struct{}

// SpecificCall concatenates data in order.
func (Adaptee) SpecificCall(data []string) string {
	return strings.Join(data, "")
}

// Converter adapts data already produced by a Target.
type Converter struct{}

// Convert formats every integer in base 10.
func (Converter) Convert(data []int) []string {
	out := make([]string, len(data))
	for i, v := range data {
		out[i] = strconv.Itoa(v)
	}
	return out
}

// LimitAdapter owns a Target and rebuilds its output on every call.
type LimitAdapter struct {
	target Target
}

// Convert calls the target with limit and formats the result.
func (a LimitAdapter) Convert(limit int) []string {
	return Converter{}.Convert(a.target.Call(limit))
}
