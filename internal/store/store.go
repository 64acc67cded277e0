// Package store loads and saves the tusk data file.
//
// The whole [task.Store] is read at the start of an invocation and written
// back in full at the end. [WithLock] wraps that cycle in an advisory lock
// so concurrent invocations do not lose each other's updates.
package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	tuskfs "github.com/calvinalkan/tusk/internal/fs"
	"github.com/calvinalkan/tusk/internal/task"
)

const dirPerms = 0o755

// LockSuffix is appended to the data file path to name its lock file.
const LockSuffix = ".lock"

// Load reads the data file at path.
//
// A missing file is not an error and yields an empty store. A file that
// cannot be read, is not valid JSON, or does not match the data file schema
// returns an error; the latter two wrap [ErrInvalidDataFile].
func Load(fsys tuskfs.FS, path string) (*task.Store, error) {
	data, err := fsys.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return task.NewStore(), nil
		}

		return nil, fmt.Errorf("load store: read %s: %w", path, err)
	}

	validateErr := validate(data)
	if validateErr != nil {
		return nil, fmt.Errorf("load store: %w %s: %w", ErrInvalidDataFile, path, validateErr)
	}

	st := task.NewStore()

	unmarshalErr := json.Unmarshal(data, st)
	if unmarshalErr != nil {
		return nil, fmt.Errorf("load store: %w %s: %w", ErrInvalidDataFile, path, unmarshalErr)
	}

	return st, nil
}

// Save serializes the full store and atomically replaces the data file,
// creating parent directories as needed. Errors wrap [ErrSaveFailed].
func Save(fsys tuskfs.FS, path string, st *task.Store) error {
	data, err := json.MarshalIndent(st, "", "  ")
	if err != nil {
		return fmt.Errorf("%w: encode: %w", ErrSaveFailed, err)
	}

	data = append(data, '\n')

	mkdirErr := fsys.MkdirAll(filepath.Dir(path), dirPerms)
	if mkdirErr != nil {
		return fmt.Errorf("%w: create dir: %w", ErrSaveFailed, mkdirErr)
	}

	writeErr := fsys.WriteFileAtomic(path, data)
	if writeErr != nil {
		return fmt.Errorf("%w: write %s: %w", ErrSaveFailed, path, writeErr)
	}

	return nil
}

// WithLock runs handler against the store loaded from path while holding an
// exclusive lock on path+[LockSuffix], then saves the store.
//
// The store is saved whenever handler returns nil, even if it only read.
// If handler returns an error nothing is written and the error is returned.
// The lock is always released when this function returns.
func WithLock(ctx context.Context, fsys tuskfs.FS, path string, handler func(st *task.Store) error) (err error) {
	lock, lockErr := fsys.Lock(ctx, path+LockSuffix)
	if lockErr != nil {
		return fmt.Errorf("acquiring lock: %w", lockErr)
	}

	defer func() {
		closeErr := lock.Close()
		if closeErr != nil && err == nil {
			err = fmt.Errorf("releasing lock: %w", closeErr)
		}
	}()

	st, loadErr := Load(fsys, path)
	if loadErr != nil {
		return loadErr
	}

	handleErr := handler(st)
	if handleErr != nil {
		return handleErr
	}

	return Save(fsys, path, st)
}
