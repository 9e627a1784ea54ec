package secrets

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/secnix/secnix/internal/gpg/gpgtest"
)

// writeHeader drops a file starting with the given bytes and returns its path.
func writeHeader(t *testing.T, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "secret")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLooksEncrypted(t *testing.T) {
	cases := []struct {
		name string
		data []byte
		want bool
	}{
		{"EmptyFile", []byte{}, false},
		{"SingleByteFile", []byte{0x84}, false},
		{"HighBitClear", []byte{0x20, 0x03, 0x03}, false},
		{"OldFormatWrongTag", []byte{0x88, 0x00, 0x03}, false},
		// Old format, tag 1, each length type places the version byte
		// at a different offset.
		{"OldFormatOneOctetLength", []byte{0x84, 0x0a, 0x03}, true},
		{"OldFormatTwoOctetLength", []byte{0x85, 0x00, 0x0a, 0x03}, true},
		{"OldFormatFourOctetLength", []byte{0x86, 0x00, 0x00, 0x00, 0x0a, 0x03}, true},
		{"OldFormatIndeterminateLength", []byte{0x87, 0x03}, true},
		{"OldFormatWrongVersion", []byte{0x84, 0x0a, 0x04}, false},
		{"OldFormatTruncatedBeforeVersion", []byte{0x86, 0x00, 0x00}, false},
		// New format, tag in the low six bits.
		{"NewFormatPKESK", []byte{0xc1, 0x0a}, true},
		{"NewFormatWrongTag", []byte{0xc2, 0x0a}, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			path := writeHeader(t, tc.data)
			if got := LooksEncrypted(path); got != tc.want {
				t.Errorf("LooksEncrypted(% x) = %t, want %t", tc.data, got, tc.want)
			}
		})
	}

	t.Run("MissingFile", func(t *testing.T) {
		if LooksEncrypted(filepath.Join(t.TempDir(), "gone")) {
			t.Error("LooksEncrypted reported true for a missing file")
		}
	})
}

func TestListRecipients(t *testing.T) {
	engine := gpgtest.NewEngine()
	engine.Register(keyMaster, "AABBCCDDEEFF0011")
	engine.Register(keyOpsA)
	directory := NewKeyDirectory(engine)

	dir := t.TempDir()
	plain := filepath.Join(dir, "db.env")
	if err := os.WriteFile(plain, []byte("TOKEN=hunter2\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	encrypted := filepath.Join(dir, "db.env.gpg")
	// Encrypt to a subkey id and a master fingerprint; listing must come
	// back fully canonicalized.
	if err := engine.Encrypt(context.Background(), plain, encrypted, []string{"AABBCCDDEEFF0011", keyOpsA}); err != nil {
		t.Fatal(err)
	}

	recipients, err := ListRecipients(context.Background(), engine, directory, encrypted)
	if err != nil {
		t.Fatalf("ListRecipients: %v", err)
	}
	want := NewSet(keyMaster, keyOpsA)
	if !recipients.Equal(want) {
		t.Errorf("recipients = {%s}, want {%s}", recipients, want)
	}
}
