// Package singleton exposes one NetworkDriver per process.
package singleton

import (
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"pattern-catalog/internal/logging"
)

// NetworkDriver is created on first use and shared by every caller.
type NetworkDriver struct {
	id uuid.UUID
}

var (
	once     sync.Once
	instance *NetworkDriver
)

// Driver returns the process-wide driver, creating it on the first call.
func Driver() *NetworkDriver {
	once.Do(func() {
		instance = &NetworkDriver{id: uuid.New()}
		logging.Named("singleton").Info("initializing network driver", zap.Stringer("id", instance.id))
	})
	return instance
}

// ID identifies this instance.
func (d *NetworkDriver) ID() uuid.UUID { return d.id }

// Log reports the driver and returns it.
func (d *NetworkDriver) Log() *NetworkDriver {
	logging.Named("singleton").Debug("network driver", zap.Stringer("id", d.id))
	return d
}
