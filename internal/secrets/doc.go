// Package secrets implements the core of secnix: resolving the declarative
// secret tree into per-file recipient requirements and reconciling files
// against them.
//
// # Resolution
//
// The keys table of the configuration declares aliases, named groups of
// key ids. NewAliasTable canonicalizes every id to a master key fingerprint
// through the KeyDirectory and synthesizes the reserved "all" alias as the
// union of every declared alias. ResolveTree then flattens the nested
// secret tree into a map from relative file path to required fingerprint
// set: each node implicitly requires the master alias, and children inherit
// their ancestors' aliases, so a child's set is always a superset of its
// parent's.
//
// # Reconciliation
//
// A Secret pairs a file with its required set. Reconcile detects the
// current recipient set (via a cheap header heuristic plus the engine's
// packet listing), and when it differs from the required set, decrypts and
// re-encrypts the file. Rewrites go through a same-directory temporary file
// followed by an atomic rename, so an interrupted operation never leaves a
// partially written secret, at worst an orphaned temp file next to an
// untouched original.
//
// Atomicity holds per file only. A batch over many files that fails midway
// leaves earlier files reconciled; re-running the batch is safe because
// reconciliation of an up-to-date file is a no-op.
package secrets
