// Package bridge joins a color to any Shape through composition.
package bridge

// Shape renders its own name.
type Shape interface {
	RenderShape() string
}

// Colored renders a shape together with a color.
type Colored interface {
	RenderColorShape() string
}

type namedShape struct {
	name string
}

// NewShape returns a Shape that renders as name.
func NewShape(name string) Shape {
	return namedShape{name: name}
}

func (s namedShape) RenderShape() string { return s.name }

// ColorShape pairs a color with a shape supplied at construction.
type ColorShape struct {
	color string
	shape Shape
}

// NewColorShape creates a colored shape.
func NewColorShape(color string, shape Shape) *ColorShape {
	return &ColorShape{color: color, shape: shape}
}

// RenderColorShape returns "<color> <shape>".
func (c *ColorShape) RenderColorShape() string {
	return c.color + " " + c.shape.RenderShape()
}
