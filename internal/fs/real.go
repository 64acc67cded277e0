package fs

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/natefinch/atomic"
	"golang.org/x/sys/unix"
)

// DefaultLockTimeout bounds how long [Real.Lock] waits for a contended lock.
const DefaultLockTimeout = 2 * time.Second

const (
	lockPerms        = 0o644
	dirPerms         = 0o755
	lockPollInterval = 10 * time.Millisecond
)

// ErrLockTimeout is returned when a lock cannot be acquired in time.
var ErrLockTimeout = errors.New("lock timeout")

// Real implements [FS] using the real filesystem.
//
// ReadFile and MkdirAll are passthroughs to the [os] package.
// WriteFileAtomic uses [atomic.WriteFile]. Lock uses flock(2).
type Real struct {
	// LockTimeout bounds Lock. Zero means [DefaultLockTimeout].
	LockTimeout time.Duration
}

// NewReal returns a new [Real] filesystem.
func NewReal() *Real {
	return &Real{LockTimeout: DefaultLockTimeout}
}

// A passthrough wrapper for [os.ReadFile].
func (r *Real) ReadFile(path string) ([]byte, error) {
	return os.ReadFile(path)
}

func (r *Real) WriteFileAtomic(path string, data []byte) error {
	return atomic.WriteFile(path, bytes.NewReader(data))
}

// A passthrough wrapper for [os.MkdirAll].
func (r *Real) MkdirAll(path string, perm os.FileMode) error {
	return os.MkdirAll(path, perm)
}

// realLock holds an exclusive flock on an open file.
// The lock file itself is left on disk; unlinking it while another process
// waits on the same path would let two holders in at once.
type realLock struct {
	file *os.File
}

func (l *realLock) Close() error {
	if l.file == nil {
		return nil
	}

	unlockErr := unix.Flock(int(l.file.Fd()), unix.LOCK_UN)
	closeErr := l.file.Close()
	l.file = nil

	if unlockErr != nil {
		unlockErr = fmt.Errorf("unlocking lock: %w", unlockErr)
	}

	if closeErr != nil {
		closeErr = fmt.Errorf("closing lock fd: %w", closeErr)
	}

	return errors.Join(unlockErr, closeErr)
}

// Lock polls a non-blocking flock so that both the timeout and ctx
// cancellation (SIGINT) are honoured while another process holds the lock.
func (r *Real) Lock(ctx context.Context, path string) (Locker, error) {
	timeout := r.LockTimeout
	if timeout <= 0 {
		timeout = DefaultLockTimeout
	}

	mkdirErr := os.MkdirAll(filepath.Dir(path), dirPerms)
	if mkdirErr != nil {
		return nil, fmt.Errorf("creating lock dir: %w", mkdirErr)
	}

	file, err := os.OpenFile(path, os.O_CREATE|os.O_RDWR, lockPerms)
	if err != nil {
		return nil, fmt.Errorf("opening lock file: %w", err)
	}

	deadline := time.NewTimer(timeout)
	defer deadline.Stop()

	ticker := time.NewTicker(lockPollInterval)
	defer ticker.Stop()

	fd := int(file.Fd())

	for {
		flockErr := unix.Flock(fd, unix.LOCK_EX|unix.LOCK_NB)
		if flockErr == nil {
			return &realLock{file: file}, nil
		}

		if !errors.Is(flockErr, unix.EWOULDBLOCK) && !errors.Is(flockErr, unix.EINTR) {
			_ = file.Close()

			return nil, fmt.Errorf("flock %s: %w", path, flockErr)
		}

		select {
		case <-ctx.Done():
			_ = file.Close()

			return nil, fmt.Errorf("waiting for lock %s: %w", path, ctx.Err())
		case <-deadline.C:
			_ = file.Close()

			return nil, fmt.Errorf("%w: %s", ErrLockTimeout, path)
		case <-ticker.C:
		}
	}
}

// Compile-time interface check.
var _ FS = (*Real)(nil)
