package cli

import (
	"context"

	"github.com/calvinalkan/tusk/internal/task"

	flag "github.com/spf13/pflag"
)

// ClearCmd returns the clear command.
func ClearCmd(app *App) *Command {
	return &Command{
		Flags: flag.NewFlagSet("clear", flag.ContinueOnError),
		Usage: "clear <account>",
		Short: "Clear all tasks for an account",
		Long:  "Remove every task from an account. The account itself is kept.",
		Exec: func(ctx context.Context, o *IO, args []string) error {
			err := positional(args, "account")
			if err != nil {
				return err
			}

			return execClear(ctx, o, app, args[0])
		},
	}
}

func execClear(ctx context.Context, o *IO, app *App, name string) error {
	var found bool

	err := app.update(ctx, o, func(st *task.Store) {
		var acc *task.Account

		acc, found = st.Account(name)
		if found {
			acc.ClearTasks()
		}
	})
	if err != nil {
		return err
	}

	if !found {
		o.Printf("No such account '%s'\n", name)

		return nil
	}

	o.Printf("Cleared the account '%s'!\n", name)

	return nil
}
