package gpg

import "context"

// Key describes a public key known to the keyring. Fingerprint is always the
// fingerprint of the master key, even when the lookup id named a subkey.
type Key struct {
	Fingerprint string
	KeyID       string
	UserIDs     []string
}

// KeySpec parameterizes a key generation request. Generated keys carry no
// passphrase.
type KeySpec struct {
	Type   string
	Length int
	Name   string
	Email  string
}

// PacketStatus collects the machine-readable status of a packet listing.
type PacketStatus struct {
	// EncryptedTo lists the key ids the message is encrypted to, one per
	// ENC_TO status line. The ids are usually subkey ids and need
	// canonicalization before comparing against master fingerprints.
	EncryptedTo []string

	// NeedPassphrase is true if a keypair passphrase would be required.
	NeedPassphrase bool

	// NeedPassphraseSym is true if a symmetric passphrase would be required.
	NeedPassphraseSym bool
}

// Engine is the crypto capability secnix depends on. The production
// implementation shells out to the GnuPG binary; tests substitute an
// in-memory fake.
//
// All operations are synchronous and block until the engine finishes. The
// context is honored by killing the engine subprocess, which leaves the
// keyring and any output files in whatever state the engine left them.
type Engine interface {
	// Encrypt encrypts src to dst for the given recipient fingerprints,
	// unarmored, with key validity checks disabled (always-trust).
	Encrypt(ctx context.Context, src, dst string, recipients []string) error

	// Decrypt decrypts src to dst using whatever private keys are resident.
	Decrypt(ctx context.Context, src, dst string) error

	// ListKeys returns the public keys matching id. A nil slice and nil
	// error means the id matched nothing.
	ListKeys(ctx context.Context, id string) ([]Key, error)

	// ListPackets inspects the packet structure of the file at path without
	// decrypting it. The engine must not prompt for a passphrase.
	ListPackets(ctx context.Context, path string) (*PacketStatus, error)

	// GenerateKey generates a passphrase-less keypair and returns its
	// fingerprint.
	GenerateKey(ctx context.Context, spec KeySpec) (string, error)

	// ExportSecretKey returns the armored secret key material for the
	// given fingerprint.
	ExportSecretKey(ctx context.Context, fingerprint string) ([]byte, error)

	// DeleteSecretKey removes the private half of the key from the
	// keyring, leaving the public half resident.
	DeleteSecretKey(ctx context.Context, fingerprint string) error
}
