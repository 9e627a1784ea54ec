package secrets

import (
	"context"
	"fmt"

	secerrors "github.com/secnix/secnix/internal/errors"
	"github.com/secnix/secnix/internal/gpg"
)

// KeyDirectory resolves key ids against the keyring and normalizes them to
// master key fingerprints. A key id may name a subkey; the canonical
// identity is always the master key that owns it.
//
// Lookups are memoized for the life of the directory. The keyring is
// read-only for the duration of a command (key generation never runs
// concurrently with reconciliation), so the cache cannot go stale.
type KeyDirectory struct {
	engine gpg.Engine
	cache  map[string]Set
}

// NewKeyDirectory returns a directory backed by the given engine.
func NewKeyDirectory(engine gpg.Engine) *KeyDirectory {
	return &KeyDirectory{
		engine: engine,
		cache:  make(map[string]Set),
	}
}

// Canonicalize maps each id (short id, long id, or fingerprint) to the
// fingerprint of the master key owning it, deduplicated. Several ids may
// collapse onto one master, e.g. a subkey and its master both listed.
//
// Returns ErrUnknownKey naming the first id that matches nothing.
func (d *KeyDirectory) Canonicalize(ctx context.Context, ids []string) (Set, error) {
	masters := NewSet()
	for _, id := range ids {
		resolved, err := d.lookup(ctx, id)
		if err != nil {
			return nil, err
		}
		masters = masters.Union(resolved)
	}
	return masters, nil
}

func (d *KeyDirectory) lookup(ctx context.Context, id string) (Set, error) {
	if cached, ok := d.cache[id]; ok {
		return cached, nil
	}

	keys, err := d.engine.ListKeys(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("listing keys for %s: %w", id, err)
	}
	if len(keys) == 0 {
		return nil, fmt.Errorf("%w: %s", secerrors.ErrUnknownKey, id)
	}

	resolved := NewSet()
	for _, key := range keys {
		resolved.Add(Fingerprint(key.Fingerprint))
	}
	d.cache[id] = resolved
	return resolved, nil
}
