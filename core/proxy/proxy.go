// Package proxy defers loading an image until it is first displayed.
package proxy

import (
	"fmt"
	"io"
)

// Image can be shown.
type Image interface {
	Display()
}

// RealImage is loaded from disk as soon as it is created.
type RealImage struct {
	filename string
	out      io.Writer
}

// NewRealImage loads filename, reporting progress to out.
func NewRealImage(filename string, out io.Writer) *RealImage {
	img := &RealImage{filename: filename, out: out}
	img.loadFromDisk()
	return img
}

func (r *RealImage) loadFromDisk() {
	fmt.Fprintf(r.out, "RealImage: Loading %s\n", r.filename)
}

func (r *RealImage) Display() {
	fmt.Fprintf(r.out, "RealImage: Displaying %s\n", r.filename)
}

// ProxyImage stands in for a RealImage and creates it on first Display.
type ProxyImage struct {
	filename string
	out      io.Writer
	real     *RealImage
}

// NewProxyImage creates a proxy; nothing is loaded yet.
func NewProxyImage(filename string, out io.Writer) *ProxyImage {
	return &ProxyImage{filename: filename, out: out}
}

func (p *ProxyImage) Display() {
	fmt.Fprintf(p.out, "ProxyImage: Displaying %s\n", p.filename)
	if p.real == nil {
		p.real = NewRealImage(p.filename, p.out)
	}
	p.real.Display()
}

// Loaded reports whether the real image exists yet.
func (p *ProxyImage) Loaded() bool { return p.real != nil }
