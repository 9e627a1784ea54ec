package secrets

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"

	secerrors "github.com/secnix/secnix/internal/errors"
	"github.com/secnix/secnix/internal/gpg"
	logger "github.com/secnix/secnix/internal/logging"
	"github.com/secnix/secnix/internal/utils"
)

// encState is the detected encryption state of a secret file.
type encState int

const (
	stateUnknown encState = iota
	statePlaintext
	stateEncrypted
)

// Secret is a single file that must be encrypted to a required set of
// master fingerprints. The encryption state is detected lazily on first
// access and invalidated by every state-changing operation.
//
// A Secret is owned by the component that constructed it and must not be
// shared across concurrent operations.
type Secret struct {
	path      string
	required  Set
	engine    gpg.Engine
	directory *KeyDirectory
	state     encState
	log       logger.Logger
}

// NewSecret returns a secret for the file at path requiring the given
// fingerprint set. An empty required set is valid and used by forced
// decryption, which bypasses the configured tree.
func NewSecret(path string, required Set, engine gpg.Engine, directory *KeyDirectory, log logger.Logger) *Secret {
	return &Secret{
		path:      path,
		required:  required,
		engine:    engine,
		directory: directory,
		state:     stateUnknown,
		log:       log,
	}
}

// Path returns the secret's file path.
func (s *Secret) Path() string {
	return s.path
}

// Encrypted reports whether the file currently looks encrypted, detecting
// and caching the state on first call.
func (s *Secret) Encrypted() bool {
	if s.state == stateUnknown {
		if LooksEncrypted(s.path) {
			s.state = stateEncrypted
		} else {
			s.state = statePlaintext
		}
	}
	return s.state == stateEncrypted
}

// Reconcile brings the file's actual recipient set in line with the
// required set. A plaintext file has an empty recipient set, so reconciling
// it encrypts it; an encrypted file with a stale recipient set is decrypted
// and re-encrypted; a file already encrypted to exactly the required set is
// left untouched, which makes reconciliation idempotent and batch runs
// resumable.
func (s *Secret) Reconcile(ctx context.Context) error {
	current := NewSet()
	if s.Encrypted() {
		recipients, err := ListRecipients(ctx, s.engine, s.directory, s.path)
		if err != nil {
			return &secerrors.ReconcileError{Path: s.path, Status: err.Error()}
		}
		current = recipients
	}

	if current.Equal(s.required) {
		s.log.Debugf("%s: keys are up to date", s.path)
		return nil
	}

	s.log.Debugf("%s: adding keys: [%s], removing keys: [%s]",
		s.path, s.required.Diff(current), current.Diff(s.required))

	if s.Encrypted() {
		if err := s.Decrypt(ctx); err != nil {
			return err
		}
	}
	return s.Encrypt(ctx)
}

// Encrypt encrypts the file in place to the required fingerprint set. A
// file that already looks encrypted is left alone with a warning.
func (s *Secret) Encrypt(ctx context.Context) error {
	if s.Encrypted() {
		s.log.Warnf("file is already encrypted: %s", s.path)
		return nil
	}
	return s.rewrite(func(dst string) error {
		return s.engine.Encrypt(ctx, s.path, dst, s.required.Sorted())
	}, stateEncrypted)
}

// Decrypt decrypts the file in place using the keys resident in the
// keyring. Decrypting a plaintext file is an engine error.
func (s *Secret) Decrypt(ctx context.Context) error {
	return s.rewrite(func(dst string) error {
		return s.engine.Decrypt(ctx, s.path, dst)
	}, statePlaintext)
}

// rewrite runs op into a temporary file in the target's directory, then
// atomically replaces the target. The temp file lives next to the target so
// the rename cannot cross filesystems. On any failure the temp file is
// removed and the target is untouched; a crash between temp write and
// rename leaves at worst an orphaned temp file.
func (s *Secret) rewrite(op func(dst string) error, next encState) error {
	dir := filepath.Dir(s.path)
	tmp, err := os.CreateTemp(dir, filepath.Base(s.path)+".*")
	if err != nil {
		return &secerrors.ReconcileError{Path: s.path, Status: err.Error()}
	}
	tmpPath := tmp.Name()
	tmp.Close()

	fail := func(cause error) error {
		os.Remove(tmpPath)
		s.state = stateUnknown
		return &secerrors.ReconcileError{Path: s.path, Status: cause.Error()}
	}

	if err := op(tmpPath); err != nil {
		return fail(err)
	}

	// The result should carry the permissions a freshly created file
	// would get, not whatever CreateTemp chose or the source had.
	mode := fs.FileMode(0o666 &^ utils.Umask())
	if err := os.Chmod(tmpPath, mode); err != nil {
		return fail(err)
	}

	if err := os.Rename(tmpPath, s.path); err != nil {
		return fail(err)
	}
	s.state = next
	return nil
}
