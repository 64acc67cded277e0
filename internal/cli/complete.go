package cli

import (
	"context"
	"errors"

	"github.com/calvinalkan/tusk/internal/task"

	flag "github.com/spf13/pflag"
)

// CompleteCmd returns the complete command.
func CompleteCmd(app *App) *Command {
	return &Command{
		Flags: flag.NewFlagSet("complete", flag.ContinueOnError),
		Usage: "complete <account> <id>",
		Short: "Mark a task as completed",
		Long:  "Mark the task at position <id> as completed, then list the account.",
		Exec: func(ctx context.Context, o *IO, args []string) error {
			return execSetCompleted(ctx, o, app, args, (*task.Account).CompleteTask)
		},
	}
}

// UncompleteCmd returns the uncomplete command.
func UncompleteCmd(app *App) *Command {
	return &Command{
		Flags: flag.NewFlagSet("uncomplete", flag.ContinueOnError),
		Usage: "uncomplete <account> <id>",
		Short: "Mark a completed task as incomplete",
		Long:  "Mark the task at position <id> as not completed, then list the account.",
		Exec: func(ctx context.Context, o *IO, args []string) error {
			return execSetCompleted(ctx, o, app, args, (*task.Account).UncompleteTask)
		},
	}
}

func execSetCompleted(
	ctx context.Context,
	o *IO,
	app *App,
	args []string,
	mark func(acc *task.Account, id int) error,
) error {
	err := positional(args, "account", "id")
	if err != nil {
		return err
	}

	name := args[0]

	id, err := parseID(args[1])
	if err != nil {
		return err
	}

	var (
		acc     *task.Account
		markErr error
	)

	err = app.update(ctx, o, func(st *task.Store) {
		var ok bool

		acc, ok = st.Account(name)
		if !ok {
			markErr = task.ErrAccountNotFound

			return
		}

		markErr = mark(acc, id)
	})
	if err != nil {
		return err
	}

	switch {
	case errors.Is(markErr, task.ErrAccountNotFound):
		o.Printf("No such account '%s'\n", name)
	case errors.Is(markErr, task.ErrInvalidIndex):
		o.Printf("No such task: %v\n", markErr)
	case markErr != nil:
		return markErr
	default:
		renderTasks(o, newStyles(o.Out(), app.Config.Color), name, acc)
	}

	return nil
}
