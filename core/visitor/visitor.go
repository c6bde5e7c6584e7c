// Package visitor picks an ice cream scoop size from a contract value.
package visitor

// Scoop is a serving size.
type Scoop int

const (
	Small Scoop = iota
	Medium
	Large
)

func (s Scoop) String() string {
	switch s {
	case Small:
		return "small"
	case Medium:
		return "medium"
	case Large:
		return "large"
	default:
		return "unknown"
	}
}

type (
	VanillaIceCream        struct{ ScoopType Scoop }
	BlueBerryIceCream      struct{ ScoopType Scoop }
	SpanishDelightIceCream struct{ ScoopType Scoop }
)

// Visitor produces a value of type R.
type Visitor[R any] interface {
	Visit() R
}

// Deliver lets the visitor decide what is delivered.
func Deliver[R any](v Visitor[R]) R {
	return v.Visit()
}

// band maps an inclusive contract range to a scoop.
type band struct {
	lo, hi int64
	scoop  Scoop
}

// scoopFor returns the scoop of the first band containing contract, or Large.
func scoopFor(bands []band, contract int64) Scoop {
	for _, b := range bands {
		if contract >= b.lo && contract <= b.hi {
			return b.scoop
		}
	}
	return Large
}

var (
	vanillaBands   = []band{{1, 5, Small}, {5, 10, Medium}}
	blueberryBands = []band{{1, 7, Small}, {7, 20, Medium}}
	spanishBands   = []band{{1, 2, Small}, {2, 7, Medium}}
)

// VisitorA serves vanilla.
type VisitorA struct{ Contract int64 }

func (v VisitorA) Visit() VanillaIceCream {
	return VanillaIceCream{ScoopType: scoopFor(vanillaBands, v.Contract)}
}

// VisitorB serves blueberry.
type VisitorB struct{ Contract int64 }

func (v VisitorB) Visit() BlueBerryIceCream {
	return BlueBerryIceCream{ScoopType: scoopFor(blueberryBands, v.Contract)}
}

// VisitorC serves spanish delight.
type VisitorC struct{ Contract int64 }

func (v VisitorC) Visit() SpanishDelightIceCream {
	return SpanishDelightIceCream{ScoopType: scoopFor(spanishBands, v.Contract)}
}
