package sorter

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"
)

// resolveDest picks the destination path for name inside dir.
// proceed is false when the file has to stay where it is.
func resolveDest(fs afero.Fs, policy CollisionPolicy, dir, name string) (dest string, proceed bool, err error) {
	dest = filepath.Join(dir, name)
	if policy == CollisionOverwrite {
		return dest, true, nil
	}

	exists, err := afero.Exists(fs, dest)
	if err != nil || !exists {
		return dest, err == nil, err
	}
	if policy == CollisionSkip {
		return dest, false, nil
	}

	ext := filepath.Ext(name)
	stem := strings.TrimSuffix(name, ext)
	for n := 1; ; n++ {
		candidate := filepath.Join(dir, fmt.Sprintf("%s - dup%d%s", stem, n, ext))
		exists, err := afero.Exists(fs, candidate)
		if err != nil {
			return candidate, false, err
		}
		if !exists {
			return candidate, true, nil
		}
	}
}
