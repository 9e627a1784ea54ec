package configs

import (
	"fmt"
	"os"
	"path/filepath"
)

// Settings are operator-level options that live outside any secrets
// repository, in the user config dir. Everything has a working default, so
// the file is optional.
type Settings struct {
	GPG GPGSettings `toml:"gpg"`
}

// GPGSettings select which gpg binary and keyring to drive.
type GPGSettings struct {
	// Binary is the gpg executable. Defaults to "gpg" from PATH.
	Binary string `toml:"binary"`

	// Home, when set, is passed as --homedir so an alternate keyring can
	// be used without exporting GNUPGHOME.
	Home string `toml:"home"`
}

// SettingsPath returns the location of the operator settings file.
func SettingsPath() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("getting user config directory: %w", err)
	}
	return filepath.Join(configDir, "secnix", "config.toml"), nil
}

// LoadSettings reads the operator settings file, returning defaults when the
// file does not exist.
func LoadSettings() (*Settings, error) {
	settings := &Settings{GPG: GPGSettings{Binary: "gpg"}}

	path, err := SettingsPath()
	if err != nil {
		return nil, err
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return settings, nil
	}

	if err := LoadTOML(path, settings); err != nil {
		return nil, fmt.Errorf("loading settings: %w", err)
	}
	if settings.GPG.Binary == "" {
		settings.GPG.Binary = "gpg"
	}
	return settings, nil
}

// DataDir returns the directory for machine-local state such as the audit
// log, honoring XDG_DATA_HOME.
func DataDir() (string, error) {
	if dataDir := os.Getenv("XDG_DATA_HOME"); dataDir != "" {
		return filepath.Join(dataDir, "secnix"), nil
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("getting home directory: %w", err)
	}
	return filepath.Join(homeDir, ".local", "share", "secnix"), nil
}
