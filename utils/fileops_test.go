package utils

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"
)

func TestMoveFile_SameDevice(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/src/a.mp4", []byte("video"), 0644))
	require.NoError(t, fs.MkdirAll("/dst", 0755))

	require.NoError(t, MoveFile(fs, "/src/a.mp4", "/dst/a.mp4"))

	data, err := afero.ReadFile(fs, "/dst/a.mp4")
	require.NoError(t, err)
	require.Equal(t, "video", string(data))

	exists, err := afero.Exists(fs, "/src/a.mp4")
	require.NoError(t, err)
	require.False(t, exists)
}

func TestMoveFile_ReplacesExisting(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/src/a.mp4", []byte("new"), 0644))
	require.NoError(t, afero.WriteFile(fs, "/dst/a.mp4", []byte("old"), 0644))

	require.NoError(t, MoveFile(fs, "/src/a.mp4", "/dst/a.mp4"))

	data, err := afero.ReadFile(fs, "/dst/a.mp4")
	require.NoError(t, err)
	require.Equal(t, "new", string(data))
}

func TestMoveFile_MissingSource(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, fs.MkdirAll("/dst", 0755))

	err := MoveFile(fs, "/src/missing.mp4", "/dst/missing.mp4")
	require.Error(t, err)
	require.False(t, IsCrossDevice(err))
}

func TestMoveFile_OtherRenameErrorsAreNotRetried(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/src/a.mp4", []byte("video"), 0644))

	boom := errors.New("permission denied")
	orig := renameFunc
	renameFunc = func(afero.Fs, string, string) error { return boom }
	t.Cleanup(func() { renameFunc = orig })

	err := MoveFile(fs, "/src/a.mp4", "/dst/a.mp4")
	require.ErrorIs(t, err, boom)

	exists, _ := afero.Exists(fs, "/dst/a.mp4")
	require.False(t, exists)
}

func TestCopyFile_PreservesContentModeAndTime(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "a.mp4")
	dst := filepath.Join(dir, "out", "a.mp4")

	require.NoError(t, os.WriteFile(src, []byte("frame data"), 0640))
	mtime := time.Date(2020, 5, 17, 12, 30, 0, 0, time.UTC)
	require.NoError(t, os.Chtimes(src, mtime, mtime))
	require.NoError(t, os.MkdirAll(filepath.Dir(dst), 0755))

	fs := afero.NewOsFs()
	require.NoError(t, CopyFile(fs, src, dst))

	data, err := os.ReadFile(dst)
	require.NoError(t, err)
	require.Equal(t, "frame data", string(data))

	info, err := os.Stat(dst)
	require.NoError(t, err)
	require.True(t, info.ModTime().Equal(mtime), "mtime %v, expected %v", info.ModTime(), mtime)
	if os.PathSeparator == '/' {
		require.Equal(t, os.FileMode(0640), info.Mode().Perm())
	}

	// source untouched
	_, err = os.Stat(src)
	require.NoError(t, err)

	// no temp files left behind
	entries, err := os.ReadDir(filepath.Dir(dst))
	require.NoError(t, err)
	require.Len(t, entries, 1)
}

func TestCopyFile_Overwrites(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/src/a.mp4", []byte("new"), 0644))
	require.NoError(t, afero.WriteFile(fs, "/dst/a.mp4", []byte("old contents"), 0644))

	require.NoError(t, CopyFile(fs, "/src/a.mp4", "/dst/a.mp4"))

	data, err := afero.ReadFile(fs, "/dst/a.mp4")
	require.NoError(t, err)
	require.Equal(t, "new", string(data))
}

func TestCopyFile_RejectsDirectory(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, fs.MkdirAll("/src/folder.mp4", 0755))
	require.NoError(t, fs.MkdirAll("/dst", 0755))

	require.Error(t, CopyFile(fs, "/src/folder.mp4", "/dst/folder.mp4"))
}

func TestCopyFile_ReadOnlyDestination(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/src/a.mp4", []byte("x"), 0644))

	require.Error(t, CopyFile(afero.NewReadOnlyFs(fs), "/src/a.mp4", "/dst/a.mp4"))
}
