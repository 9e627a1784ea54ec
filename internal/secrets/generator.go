package secrets

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/secnix/secnix/internal/configs"
	secerrors "github.com/secnix/secnix/internal/errors"
	"github.com/secnix/secnix/internal/gpg"
)

// Generator creates passphrase-less keypairs for new secret holders.
//
// The private half is exported to a file and removed from the local
// keyring, so the exported file is the sole copy of record; only the public
// half stays resident for encryption.
type Generator struct {
	engine    gpg.Engine
	keyType   string
	keyLength int
	domain    string
}

// NewGenerator returns a generator using the configured algorithm, length
// and email domain. Algorithm and length default to RSA 4096.
func NewGenerator(engine gpg.Engine, config configs.GenerateConfig) *Generator {
	keyType := config.KeyType
	if keyType == "" {
		keyType = "RSA"
	}
	keyLength := config.KeyLength
	if keyLength == 0 {
		keyLength = 4096
	}
	return &Generator{
		engine:    engine,
		keyType:   keyType,
		keyLength: keyLength,
		domain:    config.Domain,
	}
}

// Generate creates a keypair named after name with a synthesized
// name@domain email, exports the secret key to keyPath (default
// "<name>.asc"), deletes the private half from the keyring, and returns the
// new key's fingerprint.
func (g *Generator) Generate(ctx context.Context, name, keyPath string) (Fingerprint, error) {
	if keyPath == "" {
		keyPath = name + ".asc"
	}

	fingerprint, err := g.engine.GenerateKey(ctx, gpg.KeySpec{
		Type:   g.keyType,
		Length: g.keyLength,
		Name:   name,
		Email:  strings.ToLower(name) + "@" + g.domain,
	})
	if err != nil {
		return "", fmt.Errorf("%w: %v", secerrors.ErrKeyGeneration, err)
	}
	if fingerprint == "" {
		return "", secerrors.ErrKeyGeneration
	}

	material, err := g.engine.ExportSecretKey(ctx, fingerprint)
	if err != nil {
		return "", fmt.Errorf("exporting secret key %s: %w", fingerprint, err)
	}
	if err := os.WriteFile(keyPath, material, 0o600); err != nil {
		return "", fmt.Errorf("writing key file %s: %w", keyPath, err)
	}

	if err := g.engine.DeleteSecretKey(ctx, fingerprint); err != nil {
		return "", fmt.Errorf("removing secret key %s from keyring: %w", fingerprint, err)
	}

	return Fingerprint(fingerprint), nil
}
