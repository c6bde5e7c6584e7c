// Package composite prices a bill of materials held as a tree of equipment.
//
// A Composite never stores its own price. Every call to Price walks the
// subtree and sums what it finds, so appending a child is visible on the
// next read. The same node may be appended more than once, to one parent
// or several, and is counted once per appearance.
package composite

import "github.com/shopspring/decimal"

// Node is anything with a name and a price.
type Node interface {
	Name() string
	Price() decimal.Decimal
}

// Equipment is a leaf with a fixed price.
type Equipment struct {
	name  string
	price decimal.Decimal
}

// NewEquipment creates a leaf.
func NewEquipment(name string, price decimal.Decimal) *Equipment {
	return &Equipment{name: name, price: price}
}

// Name returns the equipment name
func (e *Equipment) Name() string { return e.name }

// Price returns the fixed price
func (e *Equipment) Price() decimal.Decimal { return e.price }

// Composite groups equipment and nested composites.
type Composite struct {
	name     string
	children []Node
}

// New creates an empty composite.
func New(name string) *Composite {
	return &Composite{name: name}
}

// Name returns the composite name
func (c *Composite) Name() string { return c.name }

// AddEquipment appends a leaf and returns c for chaining.
func (c *Composite) AddEquipment(e *Equipment) *Composite {
	c.children = append(c.children, e)
	return c
}

// AddComposite appends a nested composite and returns c for chaining.
func (c *Composite) AddComposite(child *Composite) *Composite {
	c.children = append(c.children, child)
	return c
}

// Price sums the prices of the direct children, recursing into nested
// composites. An empty composite costs zero.
func (c *Composite) Price() decimal.Decimal {
	total := decimal.Zero
	for _, child := range c.children {
		total = total.Add(child.Price())
	}
	return total
}

// Children returns the direct children in insertion order.
func (c *Composite) Children() []Node {
	out := make([]Node, len(c.children))
	copy(out, c.children)
	return out
}

// Len returns the number of direct children.
func (c *Composite) Len() int { return len(c.children) }

// WalkFunc is called for every node visited by Walk. Returning false stops
// descent into that node's children.
type WalkFunc func(n Node, depth int) bool

// Walk visits n and its descendants in pre-order.
func Walk(n Node, fn WalkFunc) {
	walk(n, 0, fn)
}

func walk(n Node, depth int, fn WalkFunc) {
	if !fn(n, depth) {
		return
	}
	c, ok := n.(*Composite)
	if !ok {
		return
	}
	for _, child := range c.children {
		walk(child, depth+1, fn)
	}
}

// Count returns the number of leaves reachable from n, counted once per reference.
func Count(n Node) int {
	leaves := 0
	Walk(n, func(node Node, _ int) bool {
		if _, ok := node.(*Equipment); ok {
			leaves++
		}
		return true
	})
	return leaves
}
