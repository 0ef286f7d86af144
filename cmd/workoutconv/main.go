// Package main provides the CLI entry point for workoutconv.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/google/uuid"
	"github.com/oldmanchan-jpg/workout-tracker/internal/config"
	"github.com/oldmanchan-jpg/workout-tracker/internal/logging"
	"github.com/oldmanchan-jpg/workout-tracker/pkg/workoutconv"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

const (
	exitOK         = 0
	exitFailure    = 1
	exitUsage      = 2
	exitValidation = 1
)

var (
	configPath string
	engineFlag string
	logLevel   string
	parallel   bool

	cfg    *config.Config
	logger zerolog.Logger
)

// exitError carries the process exit code for an error.
type exitError struct {
	code int
	err  error
}

func (e *exitError) Error() string { return e.err.Error() }
func (e *exitError) Unwrap() error { return e.err }

func usageError(err error) error { return &exitError{code: exitUsage, err: err} }

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run executes the CLI and returns the process exit code.
func run(args []string, stdout, stderr io.Writer) int {
	rootCmd := newRootCmd()
	rootCmd.SetArgs(args)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	err := rootCmd.Execute()
	if err == nil {
		return exitOK
	}

	var ee *exitError
	if !errors.As(err, &ee) && strings.HasPrefix(err.Error(), "unknown command") {
		ee = &exitError{code: exitUsage, err: err}
	}
	if ee != nil {
		if ee.code == exitUsage {
			fmt.Fprintf(stderr, "Error: %v\n\n%s", err, rootCmd.UsageString())
		}
		return ee.code
	}
	fmt.Fprintf(stderr, "Error: %v\n", err)
	return exitFailure
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "workoutconv",
		Short: "Convert workout workbooks into importable template JSON",
		Long: `workoutconv scans a weekly workout workbook (one sheet per week, English or
Italian day headers) and writes the strength, EMOM and circuit templates it
finds as a JSON array accepted by the template importer.`,
		Version:           fmt.Sprintf("%s (commit %s, built %s)", version, commit, date),
		SilenceErrors:     true,
		SilenceUsage:      true,
		PersistentPreRunE: setup,
	}
	rootCmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error { return usageError(err) })

	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to a YAML config file")
	rootCmd.PersistentFlags().StringVar(&engineFlag, "engine", "", "Workbook reader: ooxml, excelize or tealeg")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().BoolVar(&parallel, "parallel", false, "Process sheets concurrently")

	rootCmd.AddCommand(newConvertCmd(), newValidateCmd(), newSectionsCmd())
	return rootCmd
}

// setup loads configuration, applies flag overrides and builds the logger.
func setup(cmd *cobra.Command, _ []string) error {
	var err error
	if cfg, err = config.LoadFromEnv(configPath); err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if engineFlag != "" {
		cfg.Engine = engineFlag
	}
	if logLevel != "" {
		cfg.Log.Level = logLevel
	}
	if cmd.Flags().Changed("parallel") {
		cfg.Parallel = parallel
	}

	if logger, err = logging.New(cmd.ErrOrStderr(), cfg.Log.Level, cfg.Log.Format); err != nil {
		return usageError(err)
	}
	logger = logger.With().Str("run_id", uuid.NewString()).Logger()
	return nil
}

// options builds library options from the loaded configuration.
func options() (workoutconv.Options, error) {
	engine, err := workoutconv.ParseEngine(cfg.Engine)
	if err != nil {
		return workoutconv.Options{}, usageError(err)
	}
	opts := workoutconv.DefaultOptions()
	opts.Engine = engine
	opts.Parallel = cfg.Parallel
	opts.Lexicon = cfg.FullLexicon()
	opts.Logger = logger
	return opts, nil
}

// rangeArgs wraps cobra.RangeArgs so argument errors map to the usage exit code.
func rangeArgs(min, max int) cobra.PositionalArgs {
	check := cobra.RangeArgs(min, max)
	return func(cmd *cobra.Command, args []string) error {
		if err := check(cmd, args); err != nil {
			return usageError(err)
		}
		return nil
	}
}
