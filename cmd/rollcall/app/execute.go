package app

import (
	"context"
	"errors"
	"os"

	"github.com/spf13/cobra"
)

// Execute runs the rollcall CLI application with the given arguments.
// This is the main entry point called from main.go.
func (a *App) Execute(ctx context.Context, args []string) error {
	rootCmd := a.createRootCommand()
	rootCmd.SetArgs(args)
	return rootCmd.ExecuteContext(ctx)
}

// createRootCommand creates the root cobra command with all subcommands.
func (a *App) createRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:     "rollcall",
		Short:   "Government officials record curation CLI",
		Version: a.version,
		Long: `Rollcall maintains a corpus of YAML records describing government
officials and committees, one file per entity.

It validates records against the corpus schema and jurisdiction metadata,
merges freshly scraped records into existing ones without losing curated
history, and retires officials whose terms have ended.`,
		PersistentPreRunE: a.setupCommand,
		SilenceUsage:      true,
		SilenceErrors:     true,
	}

	// Global flags
	rootCmd.PersistentFlags().StringVar(&a.config.ConfigFile, "config", "", "config file (default is $HOME/.rollcall.yaml)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "verbose output (shortcut for --log-level=debug)")
	rootCmd.PersistentFlags().BoolP("quiet", "q", false, "minimal output (shortcut for --log-level=warn)")
	rootCmd.PersistentFlags().Bool("no-color", false, "disable colored output")
	rootCmd.PersistentFlags().String("data-dir", "", "corpus data directory (default \"data\")")
	rootCmd.PersistentFlags().String("log-level", "", "log level: trace, debug, info, warn, error")

	rootCmd.SetVersionTemplate("rollcall {{.Version}}\n")

	a.registerCommands(rootCmd)

	return rootCmd
}

// setupCommand is called before any command runs.
func (a *App) setupCommand(cmd *cobra.Command, _ []string) error {
	// These flags are defined as persistent flags in createRootCommand,
	// so errors indicate programming errors
	verbose := mustGetBool(cmd, "verbose")
	quiet := mustGetBool(cmd, "quiet")
	noColor := mustGetBool(cmd, "no-color")
	dataDir := mustGetString(cmd, "data-dir")
	logLevel := mustGetString(cmd, "log-level")

	a.config.UpdateFromFlags(verbose, quiet, noColor, dataDir, logLevel)

	// Reinitialize logger with updated config
	logger := NewLogger(a.config)
	a.logger = &logger

	return nil
}

// registerCommands registers all subcommands with the root command.
func (a *App) registerCommands(rootCmd *cobra.Command) {
	rootCmd.AddCommand(a.NewLintCommand())
	rootCmd.AddCommand(a.NewMergeCommand())
	rootCmd.AddCommand(a.NewRetireCommand())
	rootCmd.AddCommand(a.NewVersionCommand())
}

// ExitError carries a specific process exit status for main to use.
type ExitError struct {
	Code int
	Err  error
}

// Error implements the error interface.
func (e *ExitError) Error() string {
	if e.Err != nil {
		return e.Err.Error()
	}
	return "exit"
}

// Unwrap returns the wrapped error.
func (e *ExitError) Unwrap() error {
	return e.Err
}

// ExitOnError prints an error and exits. An *ExitError selects the exit
// status; any other error exits with status 1. Meant for use in main.go.
func ExitOnError(err error) {
	if err == nil {
		return
	}

	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		if exitErr.Err != nil {
			_, _ = os.Stderr.WriteString(exitErr.Err.Error() + "\n")
		}
		os.Exit(exitErr.Code)
	}

	_, _ = os.Stderr.WriteString(err.Error() + "\n")
	os.Exit(1)
}

// mustGetBool retrieves a bool flag that is known to exist.
func mustGetBool(cmd *cobra.Command, name string) bool {
	value, err := cmd.Flags().GetBool(name)
	if err != nil {
		panic("flag " + name + " not defined: " + err.Error())
	}
	return value
}

// mustGetString retrieves a string flag that is known to exist.
func mustGetString(cmd *cobra.Command, name string) string {
	value, err := cmd.Flags().GetString(name)
	if err != nil {
		panic("flag " + name + " not defined: " + err.Error())
	}
	return value
}
