// Package errors provides typed error values for the secnix application.
//
// Using sentinel errors allows callers to handle specific error conditions
// programmatically with errors.Is() rather than string matching.
//
// # Error Categories
//
// Errors are grouped by how they propagate:
//
//   - Configuration errors (ErrUnknownAlias, ErrUnknownKey, ErrReservedAlias,
//     ErrDuplicateSecretPath): the path map must resolve fully before any
//     file operation starts, so these abort the whole command up front.
//   - Per-file errors (ErrSecretNotConfigured, ReconcileError): fail the
//     named file; files already reconciled stay reconciled, and re-running
//     the command resumes where it stopped.
//   - ErrUnencryptedSecrets: not a failure message at all, it is the signal
//     that maps a check run to exit code 2.
//
// # Usage
//
// Wrap sentinels with context when returning them:
//
//	return fmt.Errorf("%w: %s", errors.ErrUnknownAlias, name)
//
// and test with errors.Is in the CLI layer.
package errors
