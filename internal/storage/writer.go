// Package storage persists encoded identicons.
package storage

import (
	"context"
	"errors"
	"io/fs"
	"math/rand/v2"
	"os"
	"path/filepath"
	"strconv"
	"sync"
)

// Extension is appended to the name passed to Write.
const Extension = ".png"

// tempPrefix names in-flight files. It does not include the destination
// name, so any name the filesystem accepts for the destination also fits.
const tempPrefix = ".identicon-"

// defaultMode is the mode of new files before the umask is applied.
const defaultMode fs.FileMode = 0666

// Writer persists encoded image bytes under a name and returns the final path.
type Writer interface {
	Write(ctx context.Context, name string, data []byte) (string, error)
}

// FileWriter writes files into Dir. An empty Dir means the current working
// directory. Existing files are replaced.
type FileWriter struct {
	Dir string

	mu    sync.Mutex
	locks map[string]*pathLock
}

type pathLock struct {
	sync.Mutex
	refs int
}

// NewFileWriter creates a writer rooted at dir.
func NewFileWriter(dir string) *FileWriter {
	return &FileWriter{Dir: dir}
}

// Path returns the destination for name.
func (w *FileWriter) Path(name string) string {
	dir := w.Dir
	if dir == "" {
		dir = "."
	}
	return filepath.Join(dir, name+Extension)
}

// Write stores data at Path(name). The data goes to a temporary file in the
// same directory first and is renamed into place, so a failed write never
// leaves a truncated destination behind. Concurrent writes to the same
// destination run one after another.
func (w *FileWriter) Write(ctx context.Context, name string, data []byte) (string, error) {
	path := w.Path(name)
	if err := ctx.Err(); err != nil {
		return "", err
	}

	unlock := w.lock(path)
	defer unlock()

	if err := writeAtomic(path, data); err != nil {
		return "", newWriteError(path, err)
	}
	return path, nil
}

func writeAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)

	// Replaced files keep their mode; new files get defaultMode minus the umask.
	mode, keepMode := defaultMode, false
	if info, err := os.Stat(path); err == nil && info.Mode().IsRegular() {
		mode, keepMode = info.Mode().Perm(), true
	}

	tmp, err := createTemp(dir, mode)
	if err != nil {
		return err
	}
	tmpName := tmp.Name()

	cleanup := func(err error) error {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return err
	}

	if _, err := tmp.Write(data); err != nil {
		return cleanup(err)
	}
	if err := tmp.Sync(); err != nil {
		return cleanup(err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return err
	}
	if keepMode {
		if err := os.Chmod(tmpName, mode); err != nil {
			_ = os.Remove(tmpName)
			return err
		}
	}
	if err := os.Rename(tmpName, path); err != nil {
		_ = os.Remove(tmpName)
		return err
	}
	return nil
}

// createTemp creates a new, uniquely named file in dir with mode (subject to
// the umask). os.CreateTemp always uses 0600.
func createTemp(dir string, mode fs.FileMode) (*os.File, error) {
	for i := 0; i < 10000; i++ {
		name := filepath.Join(dir, tempPrefix+strconv.FormatUint(rand.Uint64(), 36)+".tmp")
		f, err := os.OpenFile(name, os.O_RDWR|os.O_CREATE|os.O_EXCL, mode)
		if errors.Is(err, fs.ErrExist) {
			continue
		}
		return f, err
	}
	return nil, &fs.PathError{Op: "createtemp", Path: filepath.Join(dir, tempPrefix+"*.tmp"), Err: fs.ErrExist}
}

func (w *FileWriter) lock(path string) func() {
	w.mu.Lock()
	if w.locks == nil {
		w.locks = make(map[string]*pathLock)
	}
	l, ok := w.locks[path]
	if !ok {
		l = &pathLock{}
		w.locks[path] = l
	}
	l.refs++
	w.mu.Unlock()

	l.Lock()
	return func() {
		l.Unlock()
		w.mu.Lock()
		l.refs--
		if l.refs == 0 {
			delete(w.locks, path)
		}
		w.mu.Unlock()
	}
}
