package workflows

import (
	"context"

	"github.com/secnix/secnix/internal/configs"
	logger "github.com/secnix/secnix/internal/logging"
	"github.com/secnix/secnix/internal/secrets"
)

// CheckOptions configures the check workflow.
type CheckOptions struct {
	// ConfigPath is the secrets configuration file or its containing
	// directory. Empty means the current directory.
	ConfigPath string

	// Dir is the directory to scan. Empty means the current directory.
	Dir string

	// Evaluator overrides the configuration evaluator. Nil means
	// nix-instantiate.
	Evaluator configs.Evaluator

	Logger logger.Logger
}

// CheckResult contains the outcome of a check scan.
type CheckResult struct {
	// Scanned is the number of files inspected.
	Scanned int

	// Unencrypted lists the scanned files that are not encrypted.
	Unencrypted []string
}

// Check scans every non-excluded file under the directory and reports the
// ones that are not encrypted. It deliberately includes files absent from
// the configuration, since its job is to stop any plaintext file from being
// committed, configured or not. Classifying a file as plaintext is a
// finding, never an error.
func Check(ctx context.Context, opts CheckOptions) (*CheckResult, error) {
	configPath := opts.ConfigPath
	if configPath == "" {
		configPath = "."
	}
	// Only the configuration's directory matters here: exclusion globs
	// are anchored to it.
	config, err := configs.Load(configPath, opts.Evaluator)
	if err != nil {
		return nil, err
	}

	dir := opts.Dir
	if dir == "" {
		dir = "."
	}

	files, err := secrets.ScanFiles(dir, config.Dir)
	if err != nil {
		return nil, err
	}

	result := &CheckResult{Scanned: len(files)}
	for _, file := range files {
		if !secrets.LooksEncrypted(file) {
			opts.Logger.Debugf("Not encrypted: %s", file)
			result.Unencrypted = append(result.Unencrypted, file)
		}
	}
	return result, nil
}
