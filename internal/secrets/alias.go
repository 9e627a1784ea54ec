package secrets

import (
	"context"
	"fmt"

	"github.com/secnix/secnix/internal/configs"
	secerrors "github.com/secnix/secnix/internal/errors"
)

// AllAlias is the synthesized alias naming the union of every declared
// alias. It may not be declared in the configuration.
const AllAlias = "all"

// MasterAlias is implicitly requested by every node of the secret tree.
const MasterAlias = "master"

// AliasTable maps configuration-declared alias names to sets of canonical
// master fingerprints.
type AliasTable struct {
	aliases map[string]Set
}

// NewAliasTable builds the table from the raw keys configuration,
// canonicalizing every declared key id through the key directory and
// synthesizing the "all" alias as the union of every declared entry.
//
// Returns ErrReservedAlias if the configuration declares "all" itself, and
// ErrUnknownKey if any declared id matches nothing in the keyring.
func NewAliasTable(ctx context.Context, directory *KeyDirectory, raw map[string]configs.KeyList) (*AliasTable, error) {
	if _, ok := raw[AllAlias]; ok {
		return nil, secerrors.ErrReservedAlias
	}

	aliases := make(map[string]Set, len(raw)+1)
	all := NewSet()
	for alias, ids := range raw {
		set, err := directory.Canonicalize(ctx, ids)
		if err != nil {
			return nil, fmt.Errorf("alias %s: %w", alias, err)
		}
		aliases[alias] = set
		all = all.Union(set)
	}
	aliases[AllAlias] = all

	return &AliasTable{aliases: aliases}, nil
}

// Resolve returns the union of the named aliases' fingerprint sets.
// Returns ErrUnknownAlias naming the first absent alias; an unknown alias is
// always an error, never an empty set.
func (t *AliasTable) Resolve(names []string) (Set, error) {
	resolved := NewSet()
	for _, name := range names {
		set, ok := t.aliases[name]
		if !ok {
			return nil, fmt.Errorf("%w: %s", secerrors.ErrUnknownAlias, name)
		}
		resolved = resolved.Union(set)
	}
	return resolved, nil
}
