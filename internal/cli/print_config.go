package cli

import (
	"context"

	flag "github.com/spf13/pflag"
)

// PrintConfigCmd returns the print-config command.
func PrintConfigCmd(app *App) *Command {
	return &Command{
		Flags: flag.NewFlagSet("print-config", flag.ContinueOnError),
		Usage: "print-config",
		Short: "Show resolved configuration",
		Long:  "Display the effective configuration and which files it was loaded from.",
		Exec: func(_ context.Context, o *IO, args []string) error {
			err := positional(args)
			if err != nil {
				return err
			}

			execPrintConfig(o, app)

			return nil
		},
	}
}

func execPrintConfig(o *IO, app *App) {
	cfg := app.Config

	o.Println("effective_cwd=" + cfg.EffectiveCwd)
	o.Println("data_file=" + cfg.DataFileAbs)
	o.Println("color=" + cfg.Color)

	o.Println("")
	o.Println("# sources")

	if cfg.Sources.Global == "" && cfg.Sources.Project == "" {
		o.Println("(defaults only)")

		return
	}

	if cfg.Sources.Global != "" {
		o.Println("global_config=" + cfg.Sources.Global)
	}

	if cfg.Sources.Project != "" {
		o.Println("project_config=" + cfg.Sources.Project)
	}
}
