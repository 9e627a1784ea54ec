package configs

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func fakeEvaluator(jsonText string) Evaluator {
	return func(path string) ([]byte, error) {
		return []byte(jsonText), nil
	}
}

func TestKeyListUnmarshal(t *testing.T) {
	t.Run("SingleString", func(t *testing.T) {
		var l KeyList
		if err := json.Unmarshal([]byte(`"ABCD"`), &l); err != nil {
			t.Fatalf("unmarshal: %v", err)
		}
		if !reflect.DeepEqual(l, KeyList{"ABCD"}) {
			t.Errorf("got %v", l)
		}
	})

	t.Run("List", func(t *testing.T) {
		var l KeyList
		if err := json.Unmarshal([]byte(`["A", "B"]`), &l); err != nil {
			t.Fatalf("unmarshal: %v", err)
		}
		if !reflect.DeepEqual(l, KeyList{"A", "B"}) {
			t.Errorf("got %v", l)
		}
	})

	t.Run("InvalidShape", func(t *testing.T) {
		var l KeyList
		if err := json.Unmarshal([]byte(`{"x": 1}`), &l); err == nil {
			t.Error("expected error for object-shaped key list")
		}
	})
}

func TestLoad(t *testing.T) {
	config := `{
		"generate": {"keyType": "RSA", "keyLength": 2048, "domain": "example.com"},
		"keys": {"master": "AAAA", "ops": ["BBBB", "CCCC"]},
		"secrets": {"db": {"path": "db.env", "keys": ["ops"]}}
	}`

	t.Run("FromFile", func(t *testing.T) {
		dir := t.TempDir()
		path := filepath.Join(dir, "secrets.nix")
		if err := os.WriteFile(path, []byte("{}"), 0o644); err != nil {
			t.Fatal(err)
		}

		cfg, err := Load(path, fakeEvaluator(config))
		if err != nil {
			t.Fatalf("Load: %v", err)
		}
		if cfg.Dir != dir {
			t.Errorf("Dir = %s, want %s", cfg.Dir, dir)
		}
		if cfg.Generate.Domain != "example.com" || cfg.Generate.KeyLength != 2048 {
			t.Errorf("Generate = %+v", cfg.Generate)
		}
		if !reflect.DeepEqual(cfg.Keys["ops"], KeyList{"BBBB", "CCCC"}) {
			t.Errorf("Keys[ops] = %v", cfg.Keys["ops"])
		}
		if !reflect.DeepEqual(cfg.Keys["master"], KeyList{"AAAA"}) {
			t.Errorf("Keys[master] = %v", cfg.Keys["master"])
		}
		if _, ok := cfg.Secrets["db"]; !ok {
			t.Error("Secrets tree missing db node")
		}
	})

	t.Run("FromDirectory", func(t *testing.T) {
		dir := t.TempDir()
		cfg, err := Load(dir, fakeEvaluator(config))
		if err != nil {
			t.Fatalf("Load: %v", err)
		}
		if cfg.Dir != dir {
			t.Errorf("Dir = %s, want %s", cfg.Dir, dir)
		}
	})

	t.Run("MissingSecrets", func(t *testing.T) {
		dir := t.TempDir()
		_, err := Load(dir, fakeEvaluator(`{"keys": {}}`))
		if err == nil {
			t.Error("expected error for configuration without secrets")
		}
	})

	t.Run("MissingPath", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "nope.nix"), fakeEvaluator(config))
		if !errors.Is(err, os.ErrNotExist) {
			t.Errorf("err = %v, want not-exist", err)
		}
	})
}

func TestLoadSettingsDefaults(t *testing.T) {
	// Point the user config dir at an empty temp dir so no real settings
	// file is picked up.
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	settings, err := LoadSettings()
	if err != nil {
		t.Fatalf("LoadSettings: %v", err)
	}
	if settings.GPG.Binary != "gpg" {
		t.Errorf("Binary = %q, want gpg", settings.GPG.Binary)
	}
	if settings.GPG.Home != "" {
		t.Errorf("Home = %q, want empty", settings.GPG.Home)
	}
}

func TestSettingsRoundTrip(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	path, err := SettingsPath()
	if err != nil {
		t.Fatal(err)
	}
	want := &Settings{GPG: GPGSettings{Binary: "gpg2", Home: "/tmp/keyring"}}
	if err := SaveTOML(path, want); err != nil {
		t.Fatalf("SaveTOML: %v", err)
	}

	got, err := LoadSettings()
	if err != nil {
		t.Fatalf("LoadSettings: %v", err)
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("settings = %+v, want %+v", got, want)
	}
}
