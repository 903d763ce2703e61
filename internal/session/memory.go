package session

import "errors"

// MemoryStorage is an in-memory Storage used in tests and anywhere a real
// tab-scoped store is unavailable. FailWrites/FailReads simulate a backend
// that rejects operations (storage quota, disabled storage).
type MemoryStorage struct {
	values     map[string]string
	FailWrites bool
	FailReads  bool
}

var errStorageUnavailable = errors.New("session: storage unavailable")

// NewMemoryStorage returns an empty in-memory backend.
func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{values: make(map[string]string)}
}

func (m *MemoryStorage) Get(key string) (string, error) {
	if m.FailReads {
		return "", errStorageUnavailable
	}
	return m.values[key], nil
}

func (m *MemoryStorage) Set(key, value string) error {
	if m.FailWrites {
		return errStorageUnavailable
	}
	m.values[key] = value
	return nil
}

func (m *MemoryStorage) Remove(key string) error {
	delete(m.values, key)
	return nil
}
