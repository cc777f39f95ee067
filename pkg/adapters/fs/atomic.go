package fs

import (
	"fmt"
	"os"
	"path/filepath"
)

// TempFilePrefix names the scratch files created next to the store during a save.
// The watcher ignores them.
const TempFilePrefix = "noty-tmp-"

// writeFileAtomic replaces filename with data in one rename, so readers see
// either the previous store or the new one and never a partial write.
// An existing file keeps its permissions; a new one gets perm.
func writeFileAtomic(filename string, data []byte, perm os.FileMode) (err error) {
	if info, statErr := os.Stat(filename); statErr == nil {
		perm = info.Mode().Perm()
	}

	dir := filepath.Dir(filename)
	tmp, err := os.CreateTemp(dir, TempFilePrefix+"*")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpName := tmp.Name()
	defer func() {
		if err != nil {
			_ = os.Remove(tmpName)
		}
	}()

	if _, err = tmp.Write(data); err == nil {
		err = tmp.Sync()
	}
	if closeErr := tmp.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		return fmt.Errorf("write temp file: %w", err)
	}

	if err = os.Chmod(tmpName, perm); err != nil {
		return fmt.Errorf("chmod temp file: %w", err)
	}
	if err = os.Rename(tmpName, filename); err != nil {
		return fmt.Errorf("replace %s: %w", filename, err)
	}

	syncDir(dir)
	return nil
}

// syncDir flushes the rename to disk. Not every platform supports fsync on a
// directory, so failures are ignored.
func syncDir(dir string) {
	d, err := os.Open(dir)
	if err != nil {
		return
	}
	defer d.Close()
	_ = d.Sync()
}
