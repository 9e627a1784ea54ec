package audit

import (
	"encoding/json"
	"os"
	"os/user"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/secnix/secnix/internal/configs"
)

// Entry represents a single audit log entry.
type Entry struct {
	ID        string `json:"id"`   // Random entry id.
	Timestamp string `json:"ts"`   // RFC3339 with microseconds.
	User      string `json:"user"` // OS user performing the action.
	Operation string `json:"op"`   // Operation name.

	// Optional fields depending on operation.
	Files       []string `json:"files,omitempty"`       // For encrypt/decrypt.
	ConfigDir   string   `json:"config_dir,omitempty"`  // Secrets repository involved.
	Fingerprint string   `json:"fingerprint,omitempty"` // For generate.
	KeyFile     string   `json:"key_file,omitempty"`    // For generate.
}

// Log appends an entry to the audit log under the user data dir.
// If logging fails it silently does nothing: operations must not fail just
// because audit logging failed.
func Log(entry Entry) {
	if entry.ID == "" {
		entry.ID = uuid.New().String()
	}
	if entry.Timestamp == "" {
		entry.Timestamp = time.Now().UTC().Format("2006-01-02T15:04:05.000000Z")
	}
	if entry.User == "" {
		if current, err := user.Current(); err == nil {
			entry.User = current.Username
		}
	}

	dataDir, err := configs.DataDir()
	if err != nil {
		return
	}
	if err := os.MkdirAll(dataDir, 0o700); err != nil {
		return
	}

	logPath := filepath.Join(dataDir, "audit.jsonl")
	f, err := os.OpenFile(logPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o600)
	if err != nil {
		return
	}
	defer f.Close()

	line, err := json.Marshal(entry)
	if err != nil {
		return
	}
	line = append(line, '\n')
	_, _ = f.Write(line)
}
