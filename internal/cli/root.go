package cli

import (
	"context"
	"errors"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/tacogips/skadd/internal/config"
	"github.com/tacogips/skadd/internal/debug"
	"github.com/tacogips/skadd/internal/wizard"
)

// Process exit codes.
const (
	ExitOK          = 0
	ExitFailure     = 1
	ExitInterrupted = 130
)

// globalOptions holds the persistent flags shared by every command.
type globalOptions struct {
	configPath string
	noColor    bool
	quiet      bool
	debug      bool

	// cfg is the tool configuration once a command has loaded it.
	cfg *config.Config
}

// newRootCmd builds the command tree. Running the root without a
// subcommand behaves like "skadd new".
func newRootCmd(g *globalOptions) *cobra.Command {
	newOpts := &newOptions{}

	root := &cobra.Command{
		Use:   "skadd",
		Short: "Skript addon project scaffolder",
		Long: `skadd creates a ready-to-build Skript addon (a Bukkit/Paper plugin).

It asks for the addon name, base package, server implementation, Java,
Minecraft and Skript versions, writes a Gradle project with example
Skript elements, and can initialize a git repository over it.

Use "skadd new --answers answers.yaml" to run without prompts.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			debug.SetDebug(g.debug)
			debug.SetNoColor(g.noColor)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runNew(cmd, g, newOpts)
		},
	}

	root.PersistentFlags().StringVar(&g.configPath, FlagConfig, "", DescConfig)
	root.PersistentFlags().BoolVar(&g.noColor, FlagNoColor, false, DescNoColor)
	root.PersistentFlags().BoolVarP(&g.quiet, FlagQuiet, "q", false, DescQuiet)
	root.PersistentFlags().BoolVar(&g.debug, FlagDebug, false, DescDebug)
	addNewFlags(root, newOpts)

	root.AddCommand(newNewCmd(g))
	root.AddCommand(newVersionsCmd(g))
	root.AddCommand(newVersionCmd())
	return root
}

// Execute runs the CLI with the process arguments and returns the exit code.
func Execute() int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return run(ctx, os.Args[1:], os.Stdout)
}

func run(ctx context.Context, args []string, out io.Writer) int {
	return execute(ctx, &globalOptions{}, args, out)
}

func execute(ctx context.Context, g *globalOptions, args []string, out io.Writer) int {
	root := newRootCmd(g)
	root.SetArgs(args)
	root.SetOut(out)
	root.SetErr(out)

	err := root.ExecuteContext(ctx)
	code := exitCode(err)
	if err != nil {
		printer := g.printer(out, g.outputConfig())
		if code == ExitInterrupted {
			printer.Error("Operation was interrupted by user.")
		} else {
			printer.Error("An error occurred: " + err.Error())
		}
	}
	return code
}

// exitCode maps a command error to the process exit status.
func exitCode(err error) int {
	switch {
	case err == nil:
		return ExitOK
	case errors.Is(err, wizard.ErrInterrupted), errors.Is(err, context.Canceled):
		return ExitInterrupted
	default:
		return ExitFailure
	}
}

// loadToolConfig loads the tool configuration. An explicit --config file
// must exist; the default location is optional.
func loadToolConfig(g *globalOptions) (*config.Config, error) {
	loader := config.NewLoader()
	var (
		cfg *config.Config
		err error
	)
	if g.configPath != "" {
		path, perr := config.ExpandPath(g.configPath)
		if perr != nil {
			return nil, perr
		}
		cfg, err = loader.Load(path)
	} else {
		cfg, err = loader.LoadOrDefault("")
	}
	if err != nil {
		return nil, err
	}
	g.cfg = cfg
	return cfg, nil
}

// outputConfig returns the loaded tool configuration. Before a command has
// loaded it, or when loading failed, it falls back to the defaults with
// environment overrides.
func (g *globalOptions) outputConfig() *config.Config {
	if g.cfg != nil {
		return g.cfg
	}
	if cfg, err := config.FromEnv(); err == nil {
		return cfg
	}
	return config.DefaultConfig()
}

// useColor reports whether output written with cfg is colored.
func (g *globalOptions) useColor(cfg *config.Config) bool {
	return cfg.Output.Color && !g.noColor
}

func (g *globalOptions) printer(out io.Writer, cfg *config.Config) *Printer {
	return NewPrinter(out, g.useColor(cfg), g.quiet)
}
