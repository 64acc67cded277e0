package cli

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	tuskfs "github.com/calvinalkan/tusk/internal/fs"
	"github.com/calvinalkan/tusk/internal/store"
	"github.com/calvinalkan/tusk/internal/task"
)

// App is what every command runs against. Config is filled in by [Run]
// after the global flags and config files are resolved, so commands may be
// constructed before it is known.
type App struct {
	Config *task.Config
	FS     tuskfs.FS
}

// update runs fn against the store while holding the data file lock and
// saves the store afterwards. See [store.WithLock].
func (a *App) update(ctx context.Context, o *IO, fn func(st *task.Store)) error {
	path := a.Config.DataFileAbs

	o.Debug("locking data file", "path", path+store.LockSuffix)

	err := store.WithLock(ctx, a.FS, path, func(st *task.Store) error {
		o.Debug("loaded store", "path", path, "accounts", st.Len())
		fn(st)

		return nil
	})
	if err != nil {
		return err
	}

	o.Debug("saved store", "path", path)

	return nil
}

var (
	errUsage        = errors.New("invalid arguments")
	errInvalidID    = errors.New("task id must be an integer")
	errIDOutOfRange = errors.New("task id out of range")
)

// positional checks that args holds exactly the named positional
// arguments.
func positional(args []string, names ...string) error {
	if len(args) < len(names) {
		return fmt.Errorf("%w: missing <%s>", errUsage, names[len(args)])
	}

	if len(args) > len(names) {
		return fmt.Errorf("%w: unexpected argument %q", errUsage, args[len(names)])
	}

	for i, name := range names {
		if args[i] == "" {
			return fmt.Errorf("%w: <%s> cannot be empty", errUsage, name)
		}
	}

	return nil
}

func parseID(s string) (int, error) {
	id, err := strconv.Atoi(s)
	if errors.Is(err, strconv.ErrRange) {
		return 0, fmt.Errorf("%w: %w: %s", errUsage, errIDOutOfRange, s)
	}

	if err != nil {
		return 0, fmt.Errorf("%w: %w: %q", errUsage, errInvalidID, s)
	}

	return id, nil
}
