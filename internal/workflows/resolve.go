package workflows

import (
	"context"

	"github.com/secnix/secnix/internal/configs"
	"github.com/secnix/secnix/internal/gpg"
	"github.com/secnix/secnix/internal/secrets"
)

// resolveConfig loads the secrets configuration and fully resolves the
// secret tree into the path → fingerprint-set mapping. Resolution happens
// before any file is touched, so configuration errors (unknown aliases,
// unknown keys, duplicate paths) abort a command while every file is still
// in its original state.
func resolveConfig(ctx context.Context, configPath string, eval configs.Evaluator, engine gpg.Engine) (*configs.Config, *secrets.KeyDirectory, map[string]secrets.Set, error) {
	if configPath == "" {
		configPath = "."
	}

	config, err := configs.Load(configPath, eval)
	if err != nil {
		return nil, nil, nil, err
	}

	directory := secrets.NewKeyDirectory(engine)
	table, err := secrets.NewAliasTable(ctx, directory, config.Keys)
	if err != nil {
		return nil, nil, nil, err
	}

	resolved, err := secrets.ResolveTree(config.Secrets, table)
	if err != nil {
		return nil, nil, nil, err
	}

	return config, directory, resolved, nil
}
