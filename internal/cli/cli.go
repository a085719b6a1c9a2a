// Package cli implements rangectl, a command line tool to evaluate, iterate and encode range expressions over int64.
package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/iotaledger/hive.go/ierrors"
	"github.com/iotaledger/hive.go/log"
	"github.com/iotaledger/hive.go/ranges/internal/config"
)

const (
	// Name is the name of the binary.
	Name = "rangectl"

	// EnvironmentPrefix is the prefix of the environment variables that override parameters.
	EnvironmentPrefix = "RANGECTL"

	flagConfig = "config"
)

// Execute runs rangectl with the arguments of the process and returns its exit code.
func Execute() int {
	return Run(os.Args[1:], os.Stdout, os.Stderr)
}

// Run runs rangectl with the given arguments and returns its exit code. Errors are printed to stderr.
func Run(args []string, stdout io.Writer, stderr io.Writer) int {
	rootCmd := newApp(stdout, stderr).rootCommand()
	rootCmd.SetArgs(args)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(stderr, "Error: %s\n", err)

		return 1
	}

	return 0
}

// app holds the state that is shared by the commands of a single invocation.
type app struct {
	config *config.Configuration
	logger log.Logger
	stdout io.Writer
	stderr io.Writer
}

func newApp(stdout io.Writer, stderr io.Writer) *app {
	return &app{
		config: config.New(),
		stdout: stdout,
		stderr: stderr,
	}
}

func (a *app) rootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:               Name,
		Short:             "Evaluate, iterate and encode range expressions",
		Long:              "rangectl works with range expressions over int64 written as a..<b, a...b, ..<b, ...b, a... or ...\nNamed ranges from the config file can be referenced as @name.",
		SilenceErrors:     true,
		SilenceUsage:      true,
		PersistentPreRunE: a.configure,
	}
	rootCmd.SetOut(a.stdout)
	rootCmd.SetErr(a.stderr)

	rootCmd.PersistentFlags().String(flagConfig, "", "path to a JSON, YAML or TOML config file")
	rootCmd.PersistentFlags().String(config.ParameterLogLevel, config.Defaults[config.ParameterLogLevel].(string), "log level (trace, debug, info, warning, error)")

	rootCmd.AddCommand(
		a.containsCommand(),
		a.sliceCommand(),
		a.iterateCommand(),
		a.clampCommand(),
		a.overlapsCommand(),
		a.encodeCommand(),
		a.decodeCommand(),
		a.configCommand(),
		a.versionCommand(),
	)

	return rootCmd
}

// configure merges the parameters of all sources and sets up the logger.
func (a *app) configure(cmd *cobra.Command, _ []string) error {
	if configFile, _ := cmd.Flags().GetString(flagConfig); configFile != "" {
		if err := a.config.LoadFile(configFile); err != nil {
			return err
		}
	}

	if err := a.config.LoadEnvironmentVars(EnvironmentPrefix); err != nil {
		return ierrors.Wrap(err, "failed to load environment variables")
	}

	if err := a.config.LoadFlagSet(cmd.Flags()); err != nil {
		return ierrors.Wrap(err, "failed to load flags")
	}

	level, err := log.LevelFromString(a.config.String(config.ParameterLogLevel))
	if err != nil {
		return err
	}

	a.logger = log.NewLogger(log.WithName(Name), log.WithLevel(level), log.WithOutput(a.stderr))
	a.logger.LogDebug("configuration loaded", "command", cmd.Name(), "level", log.LevelName(level))

	return nil
}

// runE wraps a command so that precondition violations of the ranges package are reported as errors. Errors that do
// not name an argument yet are attributed to the first one.
func (a *app) runE(command func(cmd *cobra.Command, args []string) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) (err error) {
		var argument string
		if len(args) > 0 {
			argument = args[0]
		}

		defer func() {
			if recovered := recover(); recovered != nil {
				recoveredErr, isError := recovered.(error)
				if !isError {
					panic(recovered)
				}

				err = recoveredErr
			}

			if err != nil {
				a.logger.LogDebug("command failed", "command", cmd.Name(), "err", err)

				var reported *commandError
				if !ierrors.As(err, &reported) {
					err = newCommandError(err, argument)
				}
			}
		}()

		return command(cmd, args)
	}
}
