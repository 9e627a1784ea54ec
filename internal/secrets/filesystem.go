package secrets

import (
	"io/fs"
	"path/filepath"

	"github.com/bmatcuk/doublestar/v4"
)

// excludePatterns are never treated as secrets during a directory scan.
// They match paths relative to the configuration directory.
var excludePatterns = []string{
	"*.nix",
	".git/*",
	".git",
	".pre-commit",
}

// IsExcluded reports whether path is excluded from secret scans. Patterns
// apply to the path relative to configDir.
func IsExcluded(configDir, path string) bool {
	rel, err := filepath.Rel(configDir, path)
	if err != nil {
		return false
	}
	rel = filepath.ToSlash(rel)
	for _, pattern := range excludePatterns {
		if ok, _ := doublestar.Match(pattern, rel); ok {
			return true
		}
	}
	return false
}

// ScanFiles walks root and returns every regular file that is not excluded.
// Excluded directories are pruned without descending into them. This
// includes files absent from the configuration; check deliberately scans
// everything so an unconfigured plaintext file cannot slip into a commit.
func ScanFiles(root, configDir string) ([]string, error) {
	var files []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if path != root && IsExcluded(configDir, path) {
				return filepath.SkipDir
			}
			return nil
		}
		if !d.Type().IsRegular() {
			return nil
		}
		if IsExcluded(configDir, path) {
			return nil
		}
		files = append(files, path)
		return nil
	})
	return files, err
}
