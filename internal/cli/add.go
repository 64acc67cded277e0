package cli

import (
	"context"

	"github.com/calvinalkan/tusk/internal/task"

	flag "github.com/spf13/pflag"
)

// AddCmd returns the add command.
func AddCmd(app *App) *Command {
	return &Command{
		Flags: flag.NewFlagSet("add", flag.ContinueOnError),
		Usage: "add <account> <description>",
		Short: "Add a new task to an account",
		Long: `Add a low priority task to the end of an account's list.
The account is created if it does not exist yet.`,
		Exec: func(ctx context.Context, o *IO, args []string) error {
			err := positional(args, "account", "description")
			if err != nil {
				return err
			}

			return execAdd(ctx, o, app, args[0], args[1], task.PriorityLow)
		},
	}
}

// AddWithPriorityCmd returns the add-with-priority command.
func AddWithPriorityCmd(app *App) *Command {
	return &Command{
		Flags: flag.NewFlagSet("add-with-priority", flag.ContinueOnError),
		Usage: "add-with-priority <account> <description> <priority>",
		Short: "Add a task with priority high|medium|low",
		Long: `Add a task with the given priority to the end of an account's list.
The account is created if it does not exist yet.

Priority must be one of high, medium or low (lowercase). Anything else
is stored as low and a warning is printed.`,
		Exec: func(ctx context.Context, o *IO, args []string) error {
			err := positional(args, "account", "description", "priority")
			if err != nil {
				return err
			}

			priority, ok := task.ParsePriority(args[2])
			if !ok {
				o.Warnf("invalid priority %q (want high|medium|low), using %s", args[2], task.PriorityLow)
			}

			return execAdd(ctx, o, app, args[0], args[1], priority)
		},
	}
}

func execAdd(ctx context.Context, o *IO, app *App, name, description string, priority task.Priority) error {
	err := app.update(ctx, o, func(st *task.Store) {
		st.EnsureAccount(name).AddTaskWithPriority(description, priority)
	})
	if err != nil {
		return err
	}

	o.Printf("Task added to account '%s'!\n", name)

	return nil
}
