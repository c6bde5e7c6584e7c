// Package memento saves and restores an originator's state through opaque
// snapshots kept by a caretaker.
package memento

import (
	"strconv"

	"pattern-catalog/internal/errors"
)

// Memento is a snapshot. Its contents are visible only to this package.
type Memento struct {
	state string
}

// Originator owns the state being snapshotted.
type Originator struct {
	State string
}

// NewOriginator creates an originator in state.
func NewOriginator(state string) *Originator {
	return &Originator{State: state}
}

// CreateMemento snapshots the current state.
func (o *Originator) CreateMemento() Memento {
	return Memento{state: o.State}
}

// RestoreMemento replaces the current state with the snapshot's.
func (o *Originator) RestoreMemento(m Memento) {
	o.State = m.state
}

// CareTaker stores snapshots by insertion index.
type CareTaker struct {
	mementos []Memento
}

// SaveState appends m and returns its index.
func (c *CareTaker) SaveState(m Memento) int {
	c.mementos = append(c.mementos, m)
	return len(c.mementos) - 1
}

// Restore returns the snapshot saved at index.
func (c *CareTaker) Restore(index int) (Memento, error) {
	if index < 0 || index >= len(c.mementos) {
		return Memento{}, errors.NotFound("memento", strconv.Itoa(index)).
			WithContext("saved", len(c.mementos))
	}
	return c.mementos[index], nil
}

// Len returns the number of saved snapshots.
func (c *CareTaker) Len() int { return len(c.mementos) }
