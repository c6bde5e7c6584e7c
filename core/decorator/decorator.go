// Package decorator adds behaviour to a coffee machine without touching it.
package decorator

import (
	"fmt"
	"io"
)

// CoffeeMachine writes what it does to w.
type CoffeeMachine interface {
	HotWater(w io.Writer)
	MakeCoffee(w io.Writer)
}

// BasicMachine is the undecorated machine.
type BasicMachine struct{}

func (BasicMachine) HotWater(w io.Writer) {
	fmt.Fprint(w, "hot water")
}

func (BasicMachine) MakeCoffee(w io.Writer) {
	fmt.Fprint(w, "coffee")
}

// FlavouredMachine wraps another machine. HotWater is delegated through the
// embedded interface; MakeCoffee adds the flavour first.
type FlavouredMachine struct {
	CoffeeMachine
}

// Flavoured decorates m.
func Flavoured(m CoffeeMachine) *FlavouredMachine {
	return &FlavouredMachine{CoffeeMachine: m}
}

func (f *FlavouredMachine) MakeCoffee(w io.Writer) {
	fmt.Fprint(w, "add Colombian flavour")
	f.CoffeeMachine.MakeCoffee(w)
}
