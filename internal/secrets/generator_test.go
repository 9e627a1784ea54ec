package secrets

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/secnix/secnix/internal/configs"
	secerrors "github.com/secnix/secnix/internal/errors"
	"github.com/secnix/secnix/internal/gpg/gpgtest"
)

func TestGenerator(t *testing.T) {
	t.Run("ExportsKeyAndStripsPrivateHalf", func(t *testing.T) {
		engine := gpgtest.NewEngine()
		engine.Fingerprint = keyWeb
		generator := NewGenerator(engine, configs.GenerateConfig{Domain: "example.com"})

		keyPath := filepath.Join(t.TempDir(), "backup.asc")
		fingerprint, err := generator.Generate(context.Background(), "Backup", keyPath)
		if err != nil {
			t.Fatalf("Generate: %v", err)
		}
		if fingerprint != Fingerprint(keyWeb) {
			t.Errorf("fingerprint = %s, want %s", fingerprint, keyWeb)
		}

		data, err := os.ReadFile(keyPath)
		if err != nil {
			t.Fatalf("reading exported key: %v", err)
		}
		if !strings.Contains(string(data), "PGP PRIVATE KEY BLOCK") {
			t.Errorf("exported file does not look like secret key material: %q", data)
		}
		info, err := os.Stat(keyPath)
		if err != nil {
			t.Fatal(err)
		}
		if perm := info.Mode().Perm(); perm != 0o600 {
			t.Errorf("key file perm = %o, want 0600", perm)
		}

		if len(engine.Exported) != 1 || engine.Exported[0] != keyWeb {
			t.Errorf("Exported = %v", engine.Exported)
		}
		if len(engine.Deleted) != 1 || engine.Deleted[0] != keyWeb {
			t.Errorf("secret key not deleted from keyring: Deleted = %v", engine.Deleted)
		}
	})

	t.Run("EngineReportsNoKey", func(t *testing.T) {
		engine := gpgtest.NewEngine() // Fingerprint unset, generation fails
		generator := NewGenerator(engine, configs.GenerateConfig{Domain: "example.com"})

		_, err := generator.Generate(context.Background(), "backup", filepath.Join(t.TempDir(), "k.asc"))
		if !errors.Is(err, secerrors.ErrKeyGeneration) {
			t.Errorf("err = %v, want ErrKeyGeneration", err)
		}
		if len(engine.Deleted) != 0 {
			t.Errorf("Deleted = %v, want no deletions on failure", engine.Deleted)
		}
	})

	t.Run("DefaultKeyFileName", func(t *testing.T) {
		engine := gpgtest.NewEngine()
		engine.Fingerprint = keyWeb
		generator := NewGenerator(engine, configs.GenerateConfig{Domain: "example.com"})

		dir := t.TempDir()
		cwd, err := os.Getwd()
		if err != nil {
			t.Fatal(err)
		}
		if err := os.Chdir(dir); err != nil {
			t.Fatal(err)
		}
		defer os.Chdir(cwd)

		if _, err := generator.Generate(context.Background(), "backup", ""); err != nil {
			t.Fatalf("Generate: %v", err)
		}
		if _, err := os.Stat(filepath.Join(dir, "backup.asc")); err != nil {
			t.Errorf("default key file missing: %v", err)
		}
	})
}
