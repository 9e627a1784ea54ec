package errors

import (
	"errors"
	"fmt"
)

// Configuration errors abort a command before any file is touched.
var (
	// ErrUnknownAlias indicates the configuration references an alias that
	// is not declared in the keys table.
	ErrUnknownAlias = errors.New("unknown key alias")

	// ErrUnknownKey indicates a configured key id matches nothing in the
	// keyring.
	ErrUnknownKey = errors.New("key not found in keyring")

	// ErrReservedAlias indicates the configuration declares an alias named
	// "all", which is synthesized and may not be declared.
	ErrReservedAlias = errors.New(`alias name "all" is reserved`)

	// ErrDuplicateSecretPath indicates two nodes of the secret tree resolve
	// to the same file path.
	ErrDuplicateSecretPath = errors.New("duplicate secret path")

	// ErrInvalidSecretTree indicates a node of the secret tree has a shape
	// the resolver cannot interpret.
	ErrInvalidSecretTree = errors.New("invalid secret tree node")
)

// Per-file errors fail the file they name without invalidating work already
// done on earlier files.
var (
	// ErrSecretNotConfigured indicates a requested path has no entry in the
	// secret tree.
	ErrSecretNotConfigured = errors.New("secret path is not configured")

	// ErrUnencryptedSecrets signals that a check run found plaintext files.
	// It maps to exit code 2, not to an error message.
	ErrUnencryptedSecrets = errors.New("unencrypted secrets found")
)

// Key generation errors.
var (
	// ErrKeyGeneration indicates the engine reported no key after a
	// generation request.
	ErrKeyGeneration = errors.New("failed to generate key")
)

// ReconcileError reports an engine failure while re-encrypting a single
// file. Status carries the engine's diagnostic text.
type ReconcileError struct {
	Path   string
	Status string
}

func (e *ReconcileError) Error() string {
	return fmt.Sprintf("%s: %s", e.Path, e.Status)
}
