package workflows

import (
	"context"

	"github.com/secnix/secnix/internal/audit"
	"github.com/secnix/secnix/internal/configs"
	"github.com/secnix/secnix/internal/gpg"
	logger "github.com/secnix/secnix/internal/logging"
	"github.com/secnix/secnix/internal/secrets"
)

// GenerateOptions configures the generate workflow.
type GenerateOptions struct {
	// ConfigPath is the secrets configuration file or its containing
	// directory. Empty means the current directory.
	ConfigPath string

	// Name names the new key. The key's email is synthesized from it and
	// the configured domain.
	Name string

	// KeyFile is where the secret key material is exported. Empty means
	// "<name>.asc" in the current directory.
	KeyFile string

	// Engine is the crypto engine capability.
	Engine gpg.Engine

	// Evaluator overrides the configuration evaluator. Nil means
	// nix-instantiate.
	Evaluator configs.Evaluator

	Logger logger.Logger
}

// GenerateResult contains the outcome of a key generation.
type GenerateResult struct {
	// Fingerprint identifies the new key, ready to be added to the keys
	// table of the configuration.
	Fingerprint secrets.Fingerprint

	// KeyFile is the file holding the sole copy of the private key.
	KeyFile string
}

// Generate creates a new passphrase-less keypair using the configuration's
// generate parameters, exports the private half to a file, and strips it
// from the local keyring.
func Generate(ctx context.Context, opts GenerateOptions) (*GenerateResult, error) {
	configPath := opts.ConfigPath
	if configPath == "" {
		configPath = "."
	}
	config, err := configs.Load(configPath, opts.Evaluator)
	if err != nil {
		return nil, err
	}

	keyFile := opts.KeyFile
	if keyFile == "" {
		keyFile = opts.Name + ".asc"
	}

	opts.Logger.Infof("Generating key for %s", opts.Name)
	generator := secrets.NewGenerator(opts.Engine, config.Generate)
	fingerprint, err := generator.Generate(ctx, opts.Name, keyFile)
	if err != nil {
		return nil, err
	}

	audit.Log(audit.Entry{
		Operation:   "generate",
		ConfigDir:   config.Dir,
		Fingerprint: string(fingerprint),
		KeyFile:     keyFile,
	})
	return &GenerateResult{Fingerprint: fingerprint, KeyFile: keyFile}, nil
}
