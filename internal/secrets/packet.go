package secrets

import (
	"context"
	"io"
	"os"

	"github.com/secnix/secnix/internal/gpg"
)

// LooksEncrypted reports whether the file at path starts with what this
// tool itself would have produced: an OpenPGP Public-Key Encrypted Session
// Key packet.
//
// This is a heuristic over the first bytes, not a packet parse. It exists
// only to skip the expensive engine probe on files that are obviously
// plaintext, so any short read or malformed header classifies as
// not-encrypted rather than erroring.
func LooksEncrypted(path string) bool {
	file, err := os.Open(path)
	if err != nil {
		return false
	}
	defer file.Close()

	header := make([]byte, 32)
	n, _ := io.ReadFull(file, header)
	header = header[:n]

	// The packet tag byte always has the high bit set.
	if len(header) == 0 || header[0]&0x80 == 0 {
		return false
	}

	if header[0]&0x40 == 0 {
		// Old packet format: tag in bits 5-2 must be 1 (PKESK).
		if (header[0]&0x3C)>>2 != 1 {
			return false
		}

		// The two low bits select the length encoding, which fixes
		// where the packet body starts.
		var bodyOffset int
		switch header[0] & 0x03 {
		case 0:
			bodyOffset = 2
		case 1:
			bodyOffset = 3
		case 2:
			bodyOffset = 5
		default:
			// Indeterminate length, body follows the tag byte.
			bodyOffset = 1
		}

		// First body byte is the PKESK version, always 3.
		if bodyOffset >= len(header) {
			return false
		}
		return header[bodyOffset] == 3
	}

	// New packet format: tag in the low 6 bits must be 1. GPG does not
	// emit this format for PKESK today, but accept it anyway.
	return header[0]&0x3F == 1
}

// ListRecipients asks the engine for the packet structure of the file at
// path and returns the canonical master fingerprints it is encrypted to.
// The engine is invoked in a mode that cannot prompt for a passphrase.
func ListRecipients(ctx context.Context, engine gpg.Engine, directory *KeyDirectory, path string) (Set, error) {
	status, err := engine.ListPackets(ctx, path)
	if err != nil {
		return nil, err
	}
	return directory.Canonicalize(ctx, status.EncryptedTo)
}
