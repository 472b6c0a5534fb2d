package storage

import (
	"errors"
	"fmt"
	"io/fs"
	"syscall"
)

var (
	// ErrPermissionDenied is returned when the destination cannot be written.
	ErrPermissionDenied = errors.New("permission denied")

	// ErrInvalidPath is returned when the destination path cannot exist.
	ErrInvalidPath = errors.New("invalid path")

	// ErrDiskFull is returned when the device has no space left.
	ErrDiskFull = errors.New("disk full")
)

// Kind classifies a write failure.
type Kind int

const (
	KindUnknown Kind = iota
	KindPermission
	KindInvalidPath
	KindDiskFull
)

func (k Kind) String() string {
	switch k {
	case KindPermission:
		return "permission"
	case KindInvalidPath:
		return "invalid_path"
	case KindDiskFull:
		return "disk_full"
	default:
		return "unknown"
	}
}

// WriteError describes a failed write to Path.
type WriteError struct {
	Path string
	Kind Kind
	Err  error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("write %s: %v", e.Path, e.Err)
}

func (e *WriteError) Unwrap() error {
	return e.Err
}

// Is matches the sentinel error for the failure kind.
func (e *WriteError) Is(target error) bool {
	switch e.Kind {
	case KindPermission:
		return target == ErrPermissionDenied
	case KindInvalidPath:
		return target == ErrInvalidPath
	case KindDiskFull:
		return target == ErrDiskFull
	}
	return false
}

func newWriteError(path string, err error) *WriteError {
	return &WriteError{Path: path, Kind: classify(err), Err: err}
}

func classify(err error) Kind {
	switch {
	case errors.Is(err, fs.ErrPermission), errors.Is(err, syscall.EROFS):
		return KindPermission
	case errors.Is(err, syscall.ENOSPC):
		return KindDiskFull
	case errors.Is(err, fs.ErrNotExist), errors.Is(err, syscall.ENOTDIR),
		errors.Is(err, syscall.ENAMETOOLONG), errors.Is(err, syscall.EISDIR),
		errors.Is(err, syscall.EINVAL):
		return KindInvalidPath
	default:
		return KindUnknown
	}
}
