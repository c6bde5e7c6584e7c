// Package factorymethod maps a country to its currency.
package factorymethod

import "fmt"

// Country is a closed set of variants; only this package can add one.
type Country interface {
	isCountry()
}

type (
	Spain  struct{}
	Greece struct{ SomeProperty string }
	USA    struct{ SomeProperty string }
	Poland struct{}
	Canada struct{}
)

func (Spain) isCountry()  {}
func (Greece) isCountry() {}
func (USA) isCountry()    {}
func (Poland) isCountry() {}
func (Canada) isCountry() {}

// Countries returns one value of every variant.
func Countries() []Country {
	return []Country{Spain{}, Greece{}, USA{}, Poland{}, Canada{}}
}

// Currency is an ISO 4217 code.
type Currency struct {
	Code string
}

// CurrencyForCountry returns the currency used in c.
func CurrencyForCountry(c Country) Currency {
	switch c.(type) {
	case Spain, Greece:
		return Currency{Code: "EUR"}
	case USA:
		return Currency{Code: "USD"}
	case Canada:
		return Currency{Code: "CAD"}
	case Poland:
		return Currency{Code: "PLN"}
	default:
		panic(fmt.Sprintf("factorymethod: unhandled country %T", c))
	}
}
