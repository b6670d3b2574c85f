package video

import (
	"os"
	"path/filepath"
	"sort"

	"github.com/spf13/afero"
)

// FindCandidates lists the files directly inside dir whose name ends with ext.
// Subdirectories are never entered. Symlinks count when they point at a
// regular file. Paths are sorted by name so runs are deterministic regardless
// of the filesystem's listing order.
func FindCandidates(fs afero.Fs, dir, ext string) ([]string, error) {
	entries, err := afero.ReadDir(fs, dir)
	if err != nil {
		return nil, err
	}

	var files []string
	for _, entry := range entries {
		if entry.IsDir() || !HasExtension(entry.Name(), ext) {
			continue
		}
		path := filepath.Join(dir, entry.Name())
		if !isRegularFile(fs, path, entry) {
			continue
		}
		files = append(files, path)
	}

	sort.Strings(files)
	return files, nil
}

// isRegularFile resolves symlinks; dangling links and links to directories
// are not candidates
func isRegularFile(fs afero.Fs, path string, entry os.FileInfo) bool {
	if entry.Mode()&os.ModeSymlink == 0 {
		return entry.Mode().IsRegular()
	}
	target, err := fs.Stat(path)
	if err != nil {
		return false
	}
	return target.Mode().IsRegular()
}
