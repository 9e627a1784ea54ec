package workflows

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/secnix/secnix/internal/audit"
	"github.com/secnix/secnix/internal/configs"
	secerrors "github.com/secnix/secnix/internal/errors"
	"github.com/secnix/secnix/internal/gpg"
	logger "github.com/secnix/secnix/internal/logging"
	"github.com/secnix/secnix/internal/secrets"
)

// EncryptOptions configures the encrypt workflow.
type EncryptOptions struct {
	// ConfigPath is the secrets configuration file or its containing
	// directory. Empty means the current directory.
	ConfigPath string

	// Paths are the files (or, with Recursive, directories) to reconcile.
	Paths []string

	// Recursive reconciles every non-excluded file under named directories.
	Recursive bool

	// Engine is the crypto engine capability.
	Engine gpg.Engine

	// Evaluator overrides the configuration evaluator. Nil means
	// nix-instantiate.
	Evaluator configs.Evaluator

	Logger logger.Logger
}

// EncryptResult contains the outcome of an encrypt operation.
type EncryptResult struct {
	// ConfigDir is the directory the configuration was resolved against.
	ConfigDir string

	// ReconciledFiles lists the files brought in line with their required
	// recipient sets, relative to ConfigDir.
	ReconciledFiles []string
}

// Encrypt reconciles each named file against its configured required
// fingerprint set.
//
// The full path map is resolved up front; an unknown alias or key id aborts
// before any file is touched. Per-file failures are fail-fast: files
// reconciled before the failure stay reconciled, and re-running the command
// resumes safely because reconciliation is idempotent.
func Encrypt(ctx context.Context, opts EncryptOptions) (*EncryptResult, error) {
	config, directory, resolved, err := resolveConfig(ctx, opts.ConfigPath, opts.Evaluator, opts.Engine)
	if err != nil {
		return nil, err
	}
	opts.Logger.Debugf("Resolved %d configured secret paths", len(resolved))

	files, err := expandPaths(opts.Paths, opts.Recursive, config.Dir)
	if err != nil {
		return nil, err
	}

	result := &EncryptResult{ConfigDir: config.Dir}
	for _, file := range files {
		rel, err := filepath.Rel(config.Dir, file)
		if err != nil {
			return nil, fmt.Errorf("resolving %s against %s: %w", file, config.Dir, err)
		}

		required, ok := resolved[rel]
		if !ok {
			return nil, fmt.Errorf("%s: %w", rel, secerrors.ErrSecretNotConfigured)
		}

		opts.Logger.Infof("Reconciling %s", rel)
		secret := secrets.NewSecret(file, required, opts.Engine, directory, opts.Logger)
		if err := secret.Reconcile(ctx); err != nil {
			return nil, err
		}
		result.ReconciledFiles = append(result.ReconciledFiles, rel)
	}

	audit.Log(audit.Entry{
		Operation: "encrypt",
		ConfigDir: config.Dir,
		Files:     result.ReconciledFiles,
	})
	return result, nil
}

// expandPaths turns command arguments into the list of files to process.
// Directories are only walked when recursive is set; the walk applies the
// exclusion globs relative to configDir.
func expandPaths(paths []string, recursive bool, configDir string) ([]string, error) {
	var files []string
	for _, path := range paths {
		abs, err := filepath.Abs(path)
		if err != nil {
			return nil, err
		}
		info, err := os.Stat(abs)
		if err != nil {
			return nil, err
		}
		if !info.IsDir() {
			files = append(files, abs)
			continue
		}
		if !recursive {
			return nil, fmt.Errorf("%s is a directory (use --recursive)", path)
		}
		scanned, err := secrets.ScanFiles(abs, configDir)
		if err != nil {
			return nil, err
		}
		files = append(files, scanned...)
	}
	return files, nil
}
