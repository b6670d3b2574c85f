package utils

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"

	"github.com/spf13/afero"
)

// renameFunc is swapped in tests to simulate cross-device renames
var renameFunc = func(fs afero.Fs, oldname, newname string) error {
	return fs.Rename(oldname, newname)
}

// CrossDeviceError marks a rename that failed because source and destination
// live on different filesystems (EXDEV)
type CrossDeviceError struct {
	Src string
	Dst string
	Err error
}

func (e *CrossDeviceError) Error() string {
	return fmt.Sprintf("cross-device rename %q -> %q: %v", e.Src, e.Dst, e.Err)
}

func (e *CrossDeviceError) Unwrap() error { return e.Err }

// IsCrossDevice reports whether err is a CrossDeviceError
func IsCrossDevice(err error) bool {
	var e *CrossDeviceError
	return errors.As(err, &e)
}

// Rename renames src to dst, replacing dst if it exists.
// EXDEV failures are returned as *CrossDeviceError.
func Rename(fs afero.Fs, src, dst string) error {
	if err := renameFunc(fs, src, dst); err != nil {
		if isEXDEV(err) {
			return &CrossDeviceError{Src: src, Dst: dst, Err: err}
		}
		return err
	}
	return nil
}

// MoveFile moves src to dst. When a plain rename is not possible because the
// paths are on different devices, the file is copied and the source removed.
func MoveFile(fs afero.Fs, src, dst string) error {
	err := Rename(fs, src, dst)
	if err == nil || !IsCrossDevice(err) {
		return err
	}

	if err := CopyFile(fs, src, dst); err != nil {
		return err
	}
	if err := fs.Remove(src); err != nil {
		return fmt.Errorf("copied to %s but failed to remove source: %w", dst, err)
	}
	return nil
}

// CopyFile copies src to dst, keeping the permission bits and modification
// time. The data is written to a temporary file next to dst and renamed into
// place, so dst is never left half-written.
func CopyFile(fs afero.Fs, src, dst string) (err error) {
	in, err := fs.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	info, err := in.Stat()
	if err != nil {
		return err
	}
	if !info.Mode().IsRegular() {
		return fmt.Errorf("%s is not a regular file", src)
	}

	tmp, err := afero.TempFile(fs, filepath.Dir(dst), "."+filepath.Base(dst)+".tmp-*")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()
	defer func() {
		if err != nil {
			_ = tmp.Close()
			_ = fs.Remove(tmpName)
		}
	}()

	if _, err = io.Copy(tmp, in); err != nil {
		return err
	}
	if err = tmp.Sync(); err != nil {
		return err
	}
	if err = tmp.Close(); err != nil {
		return err
	}
	if err = fs.Chmod(tmpName, info.Mode().Perm()); err != nil {
		return err
	}
	if err = fs.Chtimes(tmpName, info.ModTime(), info.ModTime()); err != nil {
		return err
	}
	return fs.Rename(tmpName, dst)
}
