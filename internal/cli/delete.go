package cli

import (
	"context"

	"github.com/calvinalkan/tusk/internal/task"

	flag "github.com/spf13/pflag"
)

// DeleteCmd returns the delete command.
func DeleteCmd(app *App) *Command {
	return &Command{
		Flags: flag.NewFlagSet("delete", flag.ContinueOnError),
		Usage: "delete <account> <id>",
		Short: "Delete a task from an account",
		Long: `Delete the task at position <id> (as shown by list).
Later tasks move up by one. An id with no task is ignored.`,
		Exec: func(ctx context.Context, o *IO, args []string) error {
			err := positional(args, "account", "id")
			if err != nil {
				return err
			}

			id, err := parseID(args[1])
			if err != nil {
				return err
			}

			return execDelete(ctx, o, app, args[0], id)
		},
	}
}

func execDelete(ctx context.Context, o *IO, app *App, name string, id int) error {
	var found bool

	err := app.update(ctx, o, func(st *task.Store) {
		var acc *task.Account

		acc, found = st.Account(name)
		if found && !acc.DeleteTask(id) {
			o.Debug("delete ignored, no task at id", "account", name, "id", id)
		}
	})
	if err != nil {
		return err
	}

	if !found {
		o.Printf("No such account '%s'\n", name)

		return nil
	}

	o.Printf("Task deleted from account '%s'!\n", name)

	return nil
}
