package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	tuskfs "github.com/calvinalkan/tusk/internal/fs"
	"github.com/calvinalkan/tusk/internal/task"

	flag "github.com/spf13/pflag"
)

// Run is the main entry point. Returns exit code.
//
// Exit code 0 covers every command outcome that is reported as text,
// including unknown accounts and task ids. 1 means the command line was
// invalid, or config, locking, loading or saving the data file failed.
//
// A signal on sigCh cancels a pending wait for the data file lock.
func Run(_ io.Reader, out io.Writer, errOut io.Writer, args []string, env map[string]string, sigCh <-chan os.Signal) int {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if sigCh != nil {
		go func() {
			select {
			case <-sigCh:
				cancel()
			case <-ctx.Done():
			}
		}()
	}

	globalFlags := newGlobalFlags()

	if len(args) > 0 {
		args = args[1:]
	}

	app := &App{FS: tuskfs.NewReal()}
	commands := allCommands(app)

	parseErr := globalFlags.fs.Parse(args)
	if parseErr != nil {
		fprintln(errOut, "error:", parseErr)
		printGlobalFlags(errOut, globalFlags.fs)

		return 1
	}

	if globalFlags.help || globalFlags.fs.NArg() == 0 {
		printUsage(out, globalFlags.fs, commands)

		return 0
	}

	if globalFlags.fs.Changed("data-file") && globalFlags.dataFile == "" {
		fprintln(errOut, "error:", task.ErrDataFileEmpty)
		printGlobalFlags(errOut, globalFlags.fs)

		return 1
	}

	logger := newLogger(errOut, globalFlags.verbose)
	o := NewIO(out, errOut, logger)

	cfg, err := task.LoadConfig(task.LoadConfigInput{
		WorkDirOverride:  globalFlags.cwd,
		ConfigPath:       globalFlags.configPath,
		DataFileOverride: globalFlags.dataFile,
		ColorOverride:    globalFlags.color,
		Env:              env,
	})
	if err != nil {
		fprintln(errOut, "error:", err)

		return 1
	}

	o.Debug("resolved config",
		"cwd", cfg.EffectiveCwd,
		"data_file", cfg.DataFileAbs,
		"global", cfg.Sources.Global,
		"project", cfg.Sources.Project,
	)

	app.Config = &cfg

	name := globalFlags.fs.Arg(0)

	for _, cmd := range commands {
		if cmd.Name() == name {
			return cmd.Run(ctx, o, globalFlags.fs.Args()[1:])
		}
	}

	fprintln(errOut, "error: unknown command:", name)
	printUsage(errOut, globalFlags.fs, commands)

	return 1
}

func allCommands(app *App) []*Command {
	return []*Command{
		AddCmd(app),
		AddWithPriorityCmd(app),
		ListCmd(app),
		DeleteCmd(app),
		CompleteCmd(app),
		UncompleteCmd(app),
		ClearCmd(app),
		AccountsCmd(app),
		PrintConfigCmd(app),
	}
}

type globalFlags struct {
	fs         *flag.FlagSet
	cwd        string
	configPath string
	dataFile   string
	color      string
	verbose    bool
	help       bool
}

func newGlobalFlags() *globalFlags {
	g := &globalFlags{fs: flag.NewFlagSet("tusk", flag.ContinueOnError)}

	// Flags after the command name belong to the command.
	g.fs.SetInterspersed(false)
	g.fs.SetOutput(io.Discard)

	g.fs.StringVarP(&g.cwd, "cwd", "C", "", "Run as if started in `dir`")
	g.fs.StringVarP(&g.configPath, "config", "c", "", "Use specified config `file`")
	g.fs.StringVar(&g.dataFile, "data-file", "", "Data file `path` (default "+task.DefaultDataFile+")")
	g.fs.StringVar(&g.color, "color", "", "Color output: auto|always|never (default auto)")
	g.fs.BoolVarP(&g.verbose, "verbose", "v", false, "Log config, locking, load and save steps to stderr")
	g.fs.BoolVarP(&g.help, "help", "h", false, "Show help")

	return g
}

func fprintln(w io.Writer, a ...any) {
	_, _ = fmt.Fprintln(w, a...)
}

func printGlobalFlags(w io.Writer, fs *flag.FlagSet) {
	fprintln(w)
	fprintln(w, "Global flags:")
	fprintln(w, strings.TrimRight(fs.FlagUsages(), "\n"))
}

func printUsage(w io.Writer, fs *flag.FlagSet, commands []*Command) {
	fprintln(w, `Welcome to TUSK!

This CLI app helps you manage your tasks across different accounts.

Usage: tusk [flags] <command> [args]`)

	printGlobalFlags(w, fs)

	width := 0
	for _, cmd := range commands {
		width = max(width, len(cmd.Usage))
	}

	fprintln(w)
	fprintln(w, "Commands:")

	for _, cmd := range commands {
		fprintln(w, cmd.HelpLine(width))
	}

	fprintln(w)
	fprintln(w, `Run "tusk <command> --help" for details on a command.

Enjoy managing your tasks efficiently with TUSK :)!`)
}
