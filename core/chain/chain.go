// Package chain threads a header string through an ordered sequence of
// handlers, each appending its own line.
//
// Handlers do not point at each other. The Chain owns the adjacency
// relation between handles, which lets Link refuse a successor that would
// close a loop.
package chain

import (
	"fmt"
	"strings"

	"pattern-catalog/internal/errors"
)

// Handler contributes one fragment to the accumulated headers.
type Handler interface {
	Fragment() string
}

// AuthenticationHeader adds an Authorization line.
type AuthenticationHeader struct {
	Token string
}

func (h AuthenticationHeader) Fragment() string { return "Authorization: " + h.Token }

// ContentTypeHeader adds a ContentType line.
type ContentTypeHeader struct {
	ContentType string
}

func (h ContentTypeHeader) Fragment() string { return "ContentType: " + h.ContentType }

// BodyPayloadHeader adds the body verbatim.
type BodyPayloadHeader struct {
	Body string
}

func (h BodyPayloadHeader) Fragment() string { return h.Body }

// Handle identifies a handler registered in a Chain.
type Handle int

// Chain is a registry of handlers plus the successor of each.
type Chain struct {
	handlers []Handler
	next     map[Handle]Handle
}

// New creates an empty chain.
func New() *Chain {
	return &Chain{next: make(map[Handle]Handle)}
}

// Add registers h and returns its handle. The handler starts unlinked.
func (c *Chain) Add(h Handler) Handle {
	c.handlers = append(c.handlers, h)
	return Handle(len(c.handlers) - 1)
}

// Handler returns the handler behind a handle.
func (c *Chain) Handler(h Handle) (Handler, error) {
	if !c.valid(h) {
		return nil, errors.NotFound("handler", fmt.Sprint(int(h)))
	}
	return c.handlers[h], nil
}

// Len returns the number of registered handlers.
func (c *Chain) Len() int { return len(c.handlers) }

// Link makes to the successor of from, replacing any previous successor.
// A link that would make the traversal from to reach from again is refused.
func (c *Chain) Link(from, to Handle) error {
	for _, h := range []Handle{from, to} {
		if !c.valid(h) {
			return errors.NotFound("handler", fmt.Sprint(int(h)))
		}
	}
	for cur, ok := to, true; ok; cur, ok = c.next[cur] {
		if cur == from {
			return errors.Input("link would create a cycle").
				WithContext("from", int(from)).
				WithContext("to", int(to))
		}
	}
	c.next[from] = to
	return nil
}

// Unlink removes the successor of h, if any.
func (c *Chain) Unlink(h Handle) {
	delete(c.next, h)
}

// Next returns the successor of h.
func (c *Chain) Next(h Handle) (Handle, bool) {
	n, ok := c.next[h]
	return n, ok
}

// Pipeline registers the handlers and links them in the order given,
// returning their handles.
func (c *Chain) Pipeline(handlers ...Handler) []Handle {
	handles := make([]Handle, len(handlers))
	for i, h := range handlers {
		handles[i] = c.Add(h)
		if i > 0 {
			// fresh handles cannot form a cycle
			c.next[handles[i-1]] = handles[i]
		}
	}
	return handles
}

// AddHeader appends "\n"+fragment for start and then for every successor,
// in link order. Handlers linked before start are not visited.
func (c *Chain) AddHeader(start Handle, input string) (string, error) {
	if !c.valid(start) {
		return "", errors.NotFound("handler", fmt.Sprint(int(start)))
	}

	var b strings.Builder
	b.WriteString(input)
	for cur, ok := start, true; ok; cur, ok = c.next[cur] {
		b.WriteByte('\n')
		b.WriteString(c.handlers[cur].Fragment())
	}
	return b.String(), nil
}

func (c *Chain) valid(h Handle) bool {
	return h >= 0 && int(h) < len(c.handlers)
}
