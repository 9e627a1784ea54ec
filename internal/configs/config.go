package configs

import (
	"encoding/json"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
)

// Config is the declarative secrets configuration, a Nix expression
// evaluated to JSON.
type Config struct {
	// Generate parameterizes new-key creation.
	Generate GenerateConfig `json:"generate"`

	// Keys maps alias names to one or more key ids or fingerprints.
	Keys map[string]KeyList `json:"keys"`

	// Secrets is the nested secret tree. Its shape is heterogeneous
	// (nodes mix path/keys attributes with named children), so it is
	// decoded generically and interpreted by the tree resolver.
	Secrets map[string]any `json:"secrets"`

	// Dir is the directory containing the configuration. Secret paths
	// and exclusion globs are relative to it.
	Dir string `json:"-"`
}

// GenerateConfig holds key-generation parameters.
type GenerateConfig struct {
	KeyType   string `json:"keyType"`
	KeyLength int    `json:"keyLength"`
	Domain    string `json:"domain"`
}

// KeyList accepts either a single key id or a list of key ids, matching the
// two shapes the Nix configuration allows.
type KeyList []string

func (l *KeyList) UnmarshalJSON(data []byte) error {
	var single string
	if err := json.Unmarshal(data, &single); err == nil {
		*l = KeyList{single}
		return nil
	}
	var many []string
	if err := json.Unmarshal(data, &many); err != nil {
		return fmt.Errorf("key list must be a string or list of strings: %w", err)
	}
	*l = KeyList(many)
	return nil
}

// Evaluator turns a configuration path into the JSON it evaluates to.
// Production code uses EvalNix; tests inject a function returning canned
// JSON.
type Evaluator func(path string) ([]byte, error)

// EvalNix evaluates a Nix expression file (or a directory containing
// default.nix) to strict JSON.
func EvalNix(path string) ([]byte, error) {
	cmd := exec.Command("nix-instantiate", "--json", "--strict", "--eval", path)
	out, err := cmd.Output()
	if err != nil {
		if strings.Contains(err.Error(), "executable file not found") {
			return nil, fmt.Errorf("nix-instantiate not found - please install Nix")
		}
		if exitErr, ok := err.(*exec.ExitError); ok && len(exitErr.Stderr) > 0 {
			return nil, fmt.Errorf("evaluating %s: %s", path, strings.TrimSpace(string(exitErr.Stderr)))
		}
		return nil, fmt.Errorf("evaluating %s: %w", path, err)
	}
	return out, nil
}

// Load evaluates and decodes the secrets configuration at path. path may
// name the configuration file itself or its containing directory.
func Load(path string, eval Evaluator) (*Config, error) {
	if eval == nil {
		eval = EvalNix
	}

	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("configuration path: %w", err)
	}
	dir := path
	if !info.IsDir() {
		dir = filepath.Dir(path)
	}
	// Secret paths are resolved relative to this directory from wherever
	// the command runs, so it has to be absolute.
	dir, err = filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("resolving configuration directory: %w", err)
	}

	data, err := eval(path)
	if err != nil {
		return nil, err
	}

	var config Config
	if err := json.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("decoding configuration %s: %w", path, err)
	}
	if config.Secrets == nil {
		return nil, fmt.Errorf("configuration %s has no secrets attribute", path)
	}
	config.Dir = dir
	return &config, nil
}
