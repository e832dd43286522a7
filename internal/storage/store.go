package storage

import (
	"errors"
	"fmt"
)

const (
	// ModelDir is the table holding trained network snapshots.
	ModelDir = "model"
)

var (
	// DefaultDir is the root folder for the file based storage implementations.
	DefaultDir = "file-storage"
)

// Shard creates a new storage implementation for the given shard.
type Shard func(shard string) (Persistence, error)

var (
	NotFoundErr     = errors.New("not found")
	CouldNotLoadErr = errors.New("could not load")
)

// Key is the storage key for a trained model.
type Key struct {
	Model string `json:"model"`
	Run   string `json:"run"`
	Label string `json:"label"`
}

// Path returns the flat file name for the key.
func (k Key) Path() string {
	return fmt.Sprintf("%s_%s_%s", k.Model, k.Run, k.Label)
}

// Persistence stores and loads values by key.
type Persistence interface {
	Store(k Key, value interface{}) error
	Load(k Key, value interface{}) error
}
