package storage

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"sync"
	"syscall"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileWriter_Path(t *testing.T) {
	assert.Equal(t, "alice.png", NewFileWriter("").Path("alice"))
	assert.Equal(t, filepath.Join("out", "alice.png"), NewFileWriter("out").Path("alice"))
	assert.Equal(t, ".png", NewFileWriter("").Path(""))
}

func TestFileWriter_Write(t *testing.T) {
	dir := t.TempDir()
	w := NewFileWriter(dir)

	path, err := w.Write(context.Background(), "alice", []byte("png bytes"))
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "alice.png"), path)

	got, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "png bytes", string(got))
}

func TestFileWriter_WritesToWorkingDirectory(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)

	path, err := NewFileWriter("").Write(context.Background(), "bob", []byte("x"))
	require.NoError(t, err)
	assert.Equal(t, "bob.png", path)
	assert.FileExists(t, filepath.Join(dir, "bob.png"))
}

func TestFileWriter_Overwrites(t *testing.T) {
	dir := t.TempDir()
	w := NewFileWriter(dir)

	_, err := w.Write(context.Background(), "carol", []byte("first"))
	require.NoError(t, err)
	path, err := w.Write(context.Background(), "carol", []byte("second"))
	require.NoError(t, err)

	got, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "second", string(got))
}

func TestFileWriter_NoTempFilesLeft(t *testing.T) {
	dir := t.TempDir()
	_, err := NewFileWriter(dir).Write(context.Background(), "dave", []byte("x"))
	require.NoError(t, err)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "dave.png", entries[0].Name())
}

func TestFileWriter_LongName(t *testing.T) {
	dir := t.TempDir()
	name := strings.Repeat("a", 245)

	path, err := NewFileWriter(dir).Write(context.Background(), name, []byte("x"))
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, name+".png"), path)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, name+".png", entries[0].Name())
}

func TestFileWriter_OverwriteKeepsMode(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("unix permission bits")
	}

	dir := t.TempDir()
	path := filepath.Join(dir, "hank.png")
	require.NoError(t, os.WriteFile(path, []byte("old"), 0600))
	require.NoError(t, os.Chmod(path, 0640))

	_, err := NewFileWriter(dir).Write(context.Background(), "hank", []byte("new"))
	require.NoError(t, err)

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0640), info.Mode().Perm())
}

func TestFileWriter_MissingDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "missing")
	_, err := NewFileWriter(dir).Write(context.Background(), "erin", []byte("x"))
	require.Error(t, err)

	var werr *WriteError
	require.True(t, errors.As(err, &werr))
	assert.Equal(t, KindInvalidPath, werr.Kind)
	assert.Equal(t, filepath.Join(dir, "erin.png"), werr.Path)
	assert.ErrorIs(t, err, ErrInvalidPath)
	assert.NoFileExists(t, filepath.Join(dir, "erin.png"))
}

func TestFileWriter_PermissionDenied(t *testing.T) {
	if runtime.GOOS == "windows" || os.Geteuid() == 0 {
		t.Skip("permission bits are not enforced for this user")
	}

	dir := t.TempDir()
	require.NoError(t, os.Chmod(dir, 0555))
	t.Cleanup(func() { _ = os.Chmod(dir, 0755) })

	_, err := NewFileWriter(dir).Write(context.Background(), "frank", []byte("x"))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrPermissionDenied)
	assert.NoFileExists(t, filepath.Join(dir, "frank.png"))
}

func TestFileWriter_CanceledContext(t *testing.T) {
	dir := t.TempDir()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewFileWriter(dir).Write(ctx, "gina", []byte("x"))
	assert.ErrorIs(t, err, context.Canceled)
	assert.NoFileExists(t, filepath.Join(dir, "gina.png"))
}

func TestFileWriter_ConcurrentSameDestination(t *testing.T) {
	dir := t.TempDir()
	w := NewFileWriter(dir)
	payload := []byte("identical content")

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := w.Write(context.Background(), "same", payload)
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	got, err := os.ReadFile(filepath.Join(dir, "same.png"))
	require.NoError(t, err)
	assert.Equal(t, payload, got)
	assert.Empty(t, w.locks)
}

func TestClassify(t *testing.T) {
	tests := []struct {
		err  error
		want Kind
	}{
		{err: fs.ErrPermission, want: KindPermission},
		{err: &fs.PathError{Op: "open", Path: "x", Err: syscall.ENOSPC}, want: KindDiskFull},
		{err: fs.ErrNotExist, want: KindInvalidPath},
		{err: fmt.Errorf("wrapped: %w", syscall.ENOTDIR), want: KindInvalidPath},
		{err: errors.New("something else"), want: KindUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.want.String(), func(t *testing.T) {
			assert.Equal(t, tt.want, classify(tt.err))
		})
	}
}

func TestWriteError_Is(t *testing.T) {
	err := newWriteError("x.png", syscall.ENOSPC)
	assert.ErrorIs(t, err, ErrDiskFull)
	assert.ErrorIs(t, err, syscall.ENOSPC)
	assert.NotErrorIs(t, err, ErrPermissionDenied)
	assert.Contains(t, err.Error(), "x.png")
}
