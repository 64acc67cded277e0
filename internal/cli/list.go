package cli

import (
	"context"

	"github.com/calvinalkan/tusk/internal/task"

	flag "github.com/spf13/pflag"
)

// ListCmd returns the list command.
func ListCmd(app *App) *Command {
	return &Command{
		Flags: flag.NewFlagSet("list", flag.ContinueOnError),
		Usage: "list <account>",
		Short: "List all tasks for an account",
		Long: `List all tasks for an account in insertion order.
The number in front of each task is its id for delete, complete and uncomplete.
Ids shift down when an earlier task is deleted.`,
		Exec: func(ctx context.Context, o *IO, args []string) error {
			err := positional(args, "account")
			if err != nil {
				return err
			}

			return execList(ctx, o, app, args[0])
		},
	}
}

func execList(ctx context.Context, o *IO, app *App, name string) error {
	var (
		acc   *task.Account
		found bool
	)

	err := app.update(ctx, o, func(st *task.Store) {
		acc, found = st.Account(name)
	})
	if err != nil {
		return err
	}

	if !found {
		o.Printf("Account '%s' not found. Please create it first.\n", name)

		return nil
	}

	renderTasks(o, newStyles(o.Out(), app.Config.Color), name, acc)

	return nil
}
