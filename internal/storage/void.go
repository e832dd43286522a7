package storage

import "fmt"

// VoidStorage discards every stored value, so nothing can be loaded back.
type VoidStorage struct{}

// VoidShard creates shards that do not persist anything.
func VoidShard() Shard {
	return func(shard string) (Persistence, error) {
		return VoidStorage{}, nil
	}
}

func (VoidStorage) Store(Key, interface{}) error {
	return nil
}

func (VoidStorage) Load(k Key, _ interface{}) error {
	return fmt.Errorf("nothing stored for '%s': %w", k.Path(), NotFoundErr)
}
