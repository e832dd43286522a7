package storage

import (
	"fmt"
	"reflect"
	"sync"
)

// MockShard creates a shard where every call returns the same in-memory storage.
func MockShard(m *MockStorage) Shard {
	return func(shard string) (Persistence, error) {
		return m, nil
	}
}

// MockStorage keeps the stored values in memory.
type MockStorage struct {
	Elements map[Key]interface{}
	lock     sync.RWMutex
}

func NewMockStorage() *MockStorage {
	return &MockStorage{Elements: make(map[Key]interface{})}
}

func (m *MockStorage) Store(k Key, value interface{}) error {
	m.lock.Lock()
	defer m.lock.Unlock()
	m.Elements[k] = value
	return nil
}

// Load copies the stored value into the given pointer, if the types match.
func (m *MockStorage) Load(k Key, value interface{}) error {
	m.lock.RLock()
	defer m.lock.RUnlock()
	v, ok := m.Elements[k]
	if !ok {
		return fmt.Errorf("not found '%v': %w", k, NotFoundErr)
	}
	target := reflect.ValueOf(value)
	if target.Kind() != reflect.Ptr || target.IsNil() {
		return fmt.Errorf("non-pointer target %T: %w", value, CouldNotLoadErr)
	}
	source := reflect.ValueOf(v)
	if source.Kind() == reflect.Ptr {
		source = source.Elem()
	}
	if !source.Type().AssignableTo(target.Elem().Type()) {
		return fmt.Errorf("cannot load %T into %T: %w", v, value, CouldNotLoadErr)
	}
	target.Elem().Set(source)
	return nil
}
