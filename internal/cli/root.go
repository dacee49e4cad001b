// Package cli implements the command-line interface for hanoi.
package cli

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/gohanoi/internal/config"
)

const version = "0.1.0"

// usageLine is printed for a wrong argument count or an unknown mode.
const usageLine = "usage: hanoi {user, iterative, recursive} {number of plates}"

// errUsage marks argument errors that are reported with usageLine.
var errUsage = errors.New("invalid arguments")

// options holds the global flags and the loaded configuration.
type options struct {
	configPath string
	verbose    bool
	logFile    string
	journalDir string

	cfg     *config.Config
	logSink io.Closer
}

// NewRootCmd builds the command tree.
func NewRootCmd() *cobra.Command {
	o := &options{}

	rootCmd := &cobra.Command{
		Use:   "hanoi {user, iterative, recursive, stack} {number of plates}",
		Short: "Tower of Hanoi player and solver",
		Long: `Tower of Hanoi - play the puzzle by hand or watch it solved.

Modes:
  user       Play from standard input, one move per line:
               move disk from tower: 0, to tower: 2
  iterative  Solve with the closed-form bit-trick solver
  recursive  Solve with the divide-and-conquer solver
  stack      Solve with the divide-and-conquer solver on an explicit stack

The initial board is printed before the run and the final board after it.`,
		Version:       version,
		Args:          validateModeArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return o.setup()
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			return o.teardown()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMode(cmd, o, args)
		},
	}

	rootCmd.PersistentFlags().StringVar(&o.configPath, "config", "", "Config file path (default: ~/.hanoi/config.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&o.verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().StringVar(&o.logFile, "log-file", "", "Write diagnostic logs to this file")
	rootCmd.PersistentFlags().StringVar(&o.journalDir, "journal", "", "Write a JSONL journal of each run into this directory")

	rootCmd.AddCommand(
		newMovesCmd(o),
		newTraceCmd(o),
		newPlayCmd(o),
		newReplayCmd(o),
		newConfigCmd(o),
	)
	return rootCmd
}

// Execute runs the root command and exits with its status.
func Execute() {
	os.Exit(Run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

// Run executes the CLI with the given arguments and streams and returns
// the process exit status.
func Run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	cmd := NewRootCmd()
	cmd.SetArgs(args)
	cmd.SetIn(stdin)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	if err := cmd.Execute(); err != nil {
		if errors.Is(err, errUsage) {
			fmt.Fprintln(stdout, usageLine)
		} else {
			fmt.Fprintln(stderr, err)
		}
		return 1
	}
	return 0
}

// setup loads the config file and starts logging.
func (o *options) setup() error {
	path := o.configPath
	if path == "" {
		if def, err := config.DefaultPath(); err == nil {
			path = def
		}
	}

	cfg, err := config.LoadOrDefault(path)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	// Flags override the file.
	if o.logFile != "" {
		cfg.LogFile = o.logFile
	}
	if o.journalDir != "" {
		cfg.Journal = o.journalDir
	}
	o.cfg = cfg

	sink, err := setupLogging(cfg.LogFile, o.verbose)
	if err != nil {
		return err
	}
	o.logSink = sink
	log.Printf("hanoi %s starting, config=%q", version, path)
	return nil
}

func (o *options) teardown() error {
	if o.logSink == nil {
		return nil
	}
	err := o.logSink.Close()
	o.logSink = nil
	log.SetOutput(io.Discard)
	return err
}
