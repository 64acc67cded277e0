// Package fs is the filesystem seam used by the persistence layer.
//
// [Real] is the production implementation. Tests substitute their own [FS]
// to inject read, write and lock failures without touching the disk.
package fs

import (
	"context"
	"io"
	"os"
)

// Locker represents a held file lock.
// Call [Locker.Close] to release the lock.
//
// Example:
//
//	lock, err := fsys.Lock(ctx, "task_data.json.lock")
//	if err != nil {
//	    return err // contention past the timeout, or ctx cancelled
//	}
//	defer lock.Close()
type Locker interface {
	io.Closer
}

// FS defines the filesystem operations the data file needs.
type FS interface {
	// ReadFile reads an entire file into memory. See [os.ReadFile].
	// Returns an error satisfying errors.Is(err, [os.ErrNotExist]) if the
	// file does not exist.
	ReadFile(path string) ([]byte, error)

	// WriteFileAtomic replaces the file at path with data.
	// Uses a temp file + rename so readers see either the old or the new
	// content, never a partial write.
	WriteFileAtomic(path string, data []byte) error

	// MkdirAll creates a directory and all parents. See [os.MkdirAll].
	MkdirAll(path string, perm os.FileMode) error

	// Lock acquires an exclusive advisory lock on the file at path,
	// creating it if needed. It waits until the lock is free, ctx is done,
	// or the implementation's timeout expires.
	Lock(ctx context.Context, path string) (Locker, error)
}
