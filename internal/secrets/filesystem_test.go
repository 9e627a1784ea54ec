package secrets

import (
	"os"
	"path/filepath"
	"reflect"
	"sort"
	"testing"
)

func TestIsExcluded(t *testing.T) {
	configDir := "/repo"
	cases := []struct {
		path string
		want bool
	}{
		{"/repo/secrets.nix", true},
		{"/repo/.git", true},
		{"/repo/.git/config", true},
		{"/repo/.pre-commit", true},
		{"/repo/db.env", false},
		{"/repo/sub/db.env", false},
		// *.nix matches a single path segment, so nested nix files are
		// not excluded.
		{"/repo/sub/other.nix", false},
	}
	for _, tc := range cases {
		if got := IsExcluded(configDir, tc.path); got != tc.want {
			t.Errorf("IsExcluded(%s) = %t, want %t", tc.path, got, tc.want)
		}
	}
}

func TestScanFiles(t *testing.T) {
	dir := t.TempDir()
	mkdir := func(path string) {
		t.Helper()
		if err := os.MkdirAll(filepath.Join(dir, path), 0o755); err != nil {
			t.Fatal(err)
		}
	}
	touch := func(path string) {
		t.Helper()
		if err := os.WriteFile(filepath.Join(dir, path), []byte("x"), 0o644); err != nil {
			t.Fatal(err)
		}
	}

	mkdir(".git")
	mkdir("services")
	touch("db.env")
	touch("secrets.nix")
	touch(".pre-commit")
	touch(".git/config")
	touch("services/api.env")

	files, err := ScanFiles(dir, dir)
	if err != nil {
		t.Fatalf("ScanFiles: %v", err)
	}
	sort.Strings(files)
	want := []string{
		filepath.Join(dir, "db.env"),
		filepath.Join(dir, "services", "api.env"),
	}
	if !reflect.DeepEqual(files, want) {
		t.Errorf("ScanFiles = %v, want %v", files, want)
	}
}
