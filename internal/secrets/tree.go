package secrets

import (
	"fmt"

	secerrors "github.com/secnix/secnix/internal/errors"
)

// workItem pairs a tree node with the alias names accumulated along its
// inheritance chain. Each item owns its inherited slice; children get a
// freshly built slice so branches never share backing arrays.
type workItem struct {
	node      map[string]any
	inherited []string
}

// ResolveTree flattens the nested secret tree into a mapping from relative
// file path to the set of master fingerprints required to decrypt it.
//
// A node's required aliases are its explicit "keys" entries, the mandatory
// master alias, and everything inherited from its ancestors. A node without
// a path is a pure grouping node; a node whose aliases resolve to an empty
// set produces no entry. Two nodes resolving to the same path are a
// configuration error.
func ResolveTree(root map[string]any, table *AliasTable) (map[string]Set, error) {
	resolved := make(map[string]Set)
	queue := []workItem{{node: root}}

	for len(queue) > 0 {
		item := queue[0]
		queue = queue[1:]

		path, err := nodePath(item.node)
		if err != nil {
			return nil, err
		}
		explicit, err := nodeAliases(item.node)
		if err != nil {
			return nil, err
		}

		names := make([]string, 0, len(explicit)+1+len(item.inherited))
		names = append(names, explicit...)
		names = append(names, MasterAlias)
		names = append(names, item.inherited...)

		keys, err := table.Resolve(names)
		if err != nil {
			if path != "" {
				return nil, fmt.Errorf("%s: %w", path, err)
			}
			return nil, err
		}

		if path != "" && len(keys) > 0 {
			if _, dup := resolved[path]; dup {
				return nil, fmt.Errorf("%w: %s", secerrors.ErrDuplicateSecretPath, path)
			}
			resolved[path] = keys
		}

		// Every attribute other than path and keys is a named child.
		for name, value := range item.node {
			if name == "path" || name == "keys" {
				continue
			}
			child, err := childNode(name, value)
			if err != nil {
				return nil, err
			}
			queue = append(queue, workItem{node: child, inherited: names})
		}
	}

	return resolved, nil
}

func nodePath(node map[string]any) (string, error) {
	value, ok := node["path"]
	if !ok {
		return "", nil
	}
	path, ok := value.(string)
	if !ok {
		return "", fmt.Errorf("%w: path must be a string, got %T", secerrors.ErrInvalidSecretTree, value)
	}
	return path, nil
}

func nodeAliases(node map[string]any) ([]string, error) {
	value, ok := node["keys"]
	if !ok {
		return nil, nil
	}
	switch v := value.(type) {
	case string:
		return []string{v}, nil
	case []any:
		names := make([]string, 0, len(v))
		for _, entry := range v {
			name, ok := entry.(string)
			if !ok {
				return nil, fmt.Errorf("%w: alias name must be a string, got %T", secerrors.ErrInvalidSecretTree, entry)
			}
			names = append(names, name)
		}
		return names, nil
	default:
		return nil, fmt.Errorf("%w: keys must be a string or list, got %T", secerrors.ErrInvalidSecretTree, value)
	}
}

// childNode interprets a child attribute value. A bare string is shorthand
// for a node holding only that path.
func childNode(name string, value any) (map[string]any, error) {
	switch v := value.(type) {
	case string:
		return map[string]any{"path": v}, nil
	case map[string]any:
		return v, nil
	default:
		return nil, fmt.Errorf("%w: %s must be a path or attribute set, got %T", secerrors.ErrInvalidSecretTree, name, value)
	}
}
