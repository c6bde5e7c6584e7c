// Package abstractfactory selects a data source factory by kind.
package abstractfactory

import (
	"fmt"

	"pattern-catalog/internal/errors"
)

// DataSource is produced by a Factory.
type DataSource interface {
	Kind() Kind
}

// DatabaseDataSource reads from a database.
type DatabaseDataSource struct{}

func (DatabaseDataSource) Kind() Kind { return KindDatabase }

// NetworkDataSource reads from the network.
type NetworkDataSource struct{}

func (NetworkDataSource) Kind() Kind { return KindNetwork }

// Factory makes data sources of one kind.
type Factory interface {
	MakeDataSource() DataSource
}

// Kind selects a factory.
type Kind int

const (
	KindDatabase Kind = iota + 1
	KindNetwork
)

func (k Kind) String() string {
	switch k {
	case KindDatabase:
		return "database"
	case KindNetwork:
		return "network"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// DatabaseFactory makes DatabaseDataSource values.
type DatabaseFactory struct{}

func (DatabaseFactory) MakeDataSource() DataSource { return DatabaseDataSource{} }

// NetworkFactory makes NetworkDataSource values.
type NetworkFactory struct{}

func (NetworkFactory) MakeDataSource() DataSource { return NetworkDataSource{} }

var factories = map[Kind]func() Factory{
	KindDatabase: func() Factory { return DatabaseFactory{} },
	KindNetwork:  func() Factory { return NetworkFactory{} },
}

// Kinds lists every kind NewFactory accepts.
func Kinds() []Kind {
	return []Kind{KindDatabase, KindNetwork}
}

// NewFactory returns the factory for kind. A kind with no factory yields
// an unsupported argument error and a nil Factory.
func NewFactory(kind Kind) (Factory, error) {
	ctor, ok := factories[kind]
	if !ok {
		return nil, errors.Unsupported(kind.String())
	}
	return ctor(), nil
}
