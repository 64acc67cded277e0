package cli

import (
	"context"

	"github.com/calvinalkan/tusk/internal/task"

	flag "github.com/spf13/pflag"
)

// AccountsCmd returns the accounts command.
func AccountsCmd(app *App) *Command {
	return &Command{
		Flags: flag.NewFlagSet("accounts", flag.ContinueOnError),
		Usage: "accounts",
		Short: "List accounts with open and total task counts",
		Exec: func(ctx context.Context, o *IO, args []string) error {
			err := positional(args)
			if err != nil {
				return err
			}

			return execAccounts(ctx, o, app)
		},
	}
}

type accountSummary struct {
	name  string
	open  int
	total int
}

func execAccounts(ctx context.Context, o *IO, app *App) error {
	var summaries []accountSummary

	err := app.update(ctx, o, func(st *task.Store) {
		for _, name := range st.Names() {
			acc, _ := st.Account(name)
			summaries = append(summaries, accountSummary{name: name, open: acc.OpenCount(), total: len(acc.Tasks)})
		}
	})
	if err != nil {
		return err
	}

	if len(summaries) == 0 {
		o.Println("No accounts yet.")

		return nil
	}

	for _, s := range summaries {
		o.Printf("%s: %d open, %d total\n", s.name, s.open, s.total)
	}

	return nil
}
