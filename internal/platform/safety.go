package platform

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/aretw0/noty/pkg/adapters/fs"
)

// IsDevRun checks if the current process is running via `go run` or `go test`.
// It relies on the fact that these commands build binaries in temporary directories.
func IsDevRun() bool {
	exe, err := os.Executable()
	if err != nil {
		return false
	}

	if strings.HasPrefix(strings.ToLower(exe), strings.ToLower(os.TempDir())) {
		return true
	}

	return strings.HasSuffix(exe, ".test") || strings.HasSuffix(exe, ".test.exe")
}

// DefaultStorePath returns the per-user store location (~/.noty_notes.json).
func DefaultStorePath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to locate home directory: %w", err)
	}
	return filepath.Join(home, fs.DefaultFileName), nil
}

// ResolveStorePath applies the dev sandbox to userPath.
// Paths already inside the system temp directory are trusted as is; anything
// else is re-rooted under $TMPDIR/noty-dev keeping only the file name.
func ResolveStorePath(userPath string, forceTemp bool) string {
	if !forceTemp {
		return userPath
	}

	clean := filepath.Clean(userPath)
	if userPath != "" {
		rel, err := filepath.Rel(os.TempDir(), clean)
		if err == nil && !strings.HasPrefix(rel, "..") {
			return clean
		}
	}

	name := filepath.Base(clean)
	if userPath == "" || name == "." || name == string(os.PathSeparator) {
		name = fs.DefaultFileName
	}
	return filepath.Join(os.TempDir(), "noty-dev", name)
}
