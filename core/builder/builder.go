// Package builder assembles a Component whose parameters are all optional.
package builder

// Component is immutable once built. Unset parameters are nil.
type Component struct {
	Param1 *string
	Param2 *int
	Param3 *bool
}

// Builder collects parameters for a Component.
type Builder struct {
	param1 *string
	param2 *int
	param3 *bool
}

// NewBuilder returns an empty builder.
func NewBuilder() *Builder {
	return &Builder{}
}

func (b *Builder) SetParam1(v string) *Builder {
	b.param1 = &v
	return b
}

func (b *Builder) SetParam2(v int) *Builder {
	b.param2 = &v
	return b
}

func (b *Builder) SetParam3(v bool) *Builder {
	b.param3 = &v
	return b
}

// Build returns a Component holding copies of the values set so far, so
// later setter calls do not leak into components already built.
func (b *Builder) Build() Component {
	return Component{
		Param1: clone(b.param1),
		Param2: clone(b.param2),
		Param3: clone(b.param3),
	}
}

func clone[T any](p *T) *T {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}
