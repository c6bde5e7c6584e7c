// Package facade hides a key/value database behind a user repository.
package facade

import (
	"go.uber.org/zap"

	"pattern-catalog/internal/logging"
)

// UserIDKey is the key the repository stores the user id under.
const UserIDKey = "USER_ID"

// Database is an in-memory stand-in for a real store.
type Database struct {
	name string
	data map[string]string
}

// NewDatabase creates an empty database.
func NewDatabase(name string) *Database {
	return &Database{name: name, data: make(map[string]string)}
}

// Name returns the database name
func (d *Database) Name() string { return d.name }

// Store sets key to value and returns d for chaining.
func (d *Database) Store(key, value string) *Database {
	d.data[key] = value
	return d
}

// Read returns the value for key.
func (d *Database) Read(key string) (string, bool) {
	v, ok := d.data[key]
	return v, ok
}

// Commit only reports success; nothing is persisted.
func (d *Database) Commit() {
	logging.Named("facade").Info("database saved",
		zap.String("database", d.name),
		zap.Int("keys", len(d.data)),
	)
}

// User is the only entity the repository knows.
type User struct {
	UserID string
}

// Repository is the facade callers use instead of the Database.
type Repository struct {
	db *Database
}

// NewRepository wraps db.
func NewRepository(db *Database) *Repository {
	return &Repository{db: db}
}

// StoreUser stores the user id and commits.
func (r *Repository) StoreUser(u User) {
	r.db.Store(UserIDKey, u.UserID)
	r.db.Commit()
}

// FetchUser returns the stored user id.
func (r *Repository) FetchUser() (string, bool) {
	return r.db.Read(UserIDKey)
}
