package workflows

import (
	"context"

	"github.com/secnix/secnix/internal/audit"
	"github.com/secnix/secnix/internal/gpg"
	logger "github.com/secnix/secnix/internal/logging"
	"github.com/secnix/secnix/internal/secrets"
)

// DecryptOptions configures the decrypt workflow.
type DecryptOptions struct {
	// Paths are the files to decrypt.
	Paths []string

	// Engine is the crypto engine capability.
	Engine gpg.Engine

	Logger logger.Logger
}

// DecryptResult contains the outcome of a decrypt operation.
type DecryptResult struct {
	// DecryptedFiles lists the files rewritten as plaintext.
	DecryptedFiles []string
}

// Decrypt force-decrypts each named file, regardless of configuration: the
// secrets are constructed with an empty required set and no tree lookup
// happens, so any file the resident keys can open is decrypted in place.
func Decrypt(ctx context.Context, opts DecryptOptions) (*DecryptResult, error) {
	directory := secrets.NewKeyDirectory(opts.Engine)

	result := &DecryptResult{}
	for _, path := range opts.Paths {
		opts.Logger.Infof("Decrypting %s", path)
		secret := secrets.NewSecret(path, secrets.NewSet(), opts.Engine, directory, opts.Logger)
		if err := secret.Decrypt(ctx); err != nil {
			return nil, err
		}
		result.DecryptedFiles = append(result.DecryptedFiles, path)
	}

	audit.Log(audit.Entry{
		Operation: "decrypt",
		Files:     result.DecryptedFiles,
	})
	return result, nil
}
