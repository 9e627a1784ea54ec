// Package workflows provides high-level orchestration for secnix commands.
//
// Workflows coordinate the configuration, key directory, and secret
// operations to implement complete user-facing features, independent of CLI
// concerns like flag parsing, spinners, and output formatting.
//
// # Design Philosophy
//
// The cmd/ package should be a thin layer that:
//   - Parses command-line flags and arguments
//   - Calls the appropriate workflow function
//   - Formats the result for display
//
// Workflows handle everything else: loading and resolving the configuration
// up front (so alias and key errors abort before any file is touched),
// walking directories with the exclusion globs applied, reconciling each
// file, and recording audit entries.
//
// # Capabilities
//
// Every workflow takes its collaborators in its Options value: the crypto
// Engine and the configuration Evaluator are injected rather than global,
// so tests run against an in-memory engine and canned JSON. A nil Evaluator
// means the production nix-instantiate evaluation.
//
// # Error Handling
//
// Per-file failures inside a batch are fail-fast: the first error aborts
// the remaining files. Files already reconciled stay reconciled, and the
// whole batch is safe to re-run because reconciling an up-to-date file is a
// no-op.
package workflows
