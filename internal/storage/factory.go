package storage

import "fmt"

// NewStore builds the backend for the requested kind. An empty kind selects
// the in-memory store; "sqlite" requires a database path and a binary built
// with the sqlite tag.
func NewStore(kind, sqlitePath string) (Store, error) {
	switch kind {
	case "", "memory":
		return NewMemoryStore(), nil
	case "sqlite":
		return newSQLiteStore(sqlitePath)
	default:
		return nil, fmt.Errorf("unknown store kind %q (want memory or sqlite)", kind)
	}
}

// CloseIfSupported closes the store when the backend holds resources; the
// memory store does not and is a no-op.
func CloseIfSupported(store Store) error {
	closer, ok := store.(interface{ Close() error })
	if !ok {
		return nil
	}
	return closer.Close()
}
