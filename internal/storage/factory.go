package storage

import "fmt"

// NewStore builds a store backend by name
func NewStore(kind, sqlitePath string, limits Limits) (Store, error) {
	switch kind {
	case "", "memory":
		return NewMemoryStore(limits), nil
	case "sqlite":
		return NewSQLiteStore(sqlitePath, limits), nil
	default:
		return nil, fmt.Errorf("unsupported store backend: %s", kind)
	}
}

func CloseIfSupported(store Store) error {
	closer, ok := store.(interface{ Close() error })
	if !ok {
		return nil
	}
	return closer.Close()
}
