package train

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/drakos74/neurons/internal/math/ml"
	"github.com/drakos74/neurons/internal/storage"
)

const snapshotLabel = "snapshot"

// Key returns the storage key for the network snapshot of the given run.
func Key(net *ml.Network, run string) storage.Key {
	sizes := net.Sizes()
	ss := make([]string, len(sizes))
	for i, s := range sizes {
		ss[i] = strconv.Itoa(s)
	}
	return storage.Key{
		Model: strings.Join(ss, "-"),
		Run:   run,
		Label: snapshotLabel,
	}
}

// Save stores the network snapshot.
func Save(p storage.Persistence, k storage.Key, net *ml.Network) error {
	if err := p.Store(k, net.Snapshot()); err != nil {
		return fmt.Errorf("could not store network '%s': %w", k.Path(), err)
	}
	return nil
}

// Load restores a network from its stored snapshot.
func Load(p storage.Persistence, k storage.Key, options ...ml.Option) (*ml.Network, error) {
	var s ml.Snapshot
	if err := p.Load(k, &s); err != nil {
		return nil, fmt.Errorf("could not load network '%s': %w", k.Path(), err)
	}
	net, err := ml.FromSnapshot(s, options...)
	if err != nil {
		return nil, fmt.Errorf("could not restore network '%s': %w", k.Path(), err)
	}
	return net, nil
}
