package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"time"

	"github.com/oldmanchan-jpg/workout-tracker/internal/watch"
	"github.com/oldmanchan-jpg/workout-tracker/pkg/workoutconv"
	"github.com/oldmanchan-jpg/workout-tracker/pkg/workoutconv/validate"
	"github.com/spf13/cobra"
)

var watchMode bool

func newConvertCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "convert <input.xlsx> [output.json]",
		Short: "Convert a workbook into template JSON",
		Long: `Convert extracts every day section of the workbook, validates the result
against the importer rules and writes it. The output defaults to the input
path with a .json extension. Nothing is written when validation fails.`,
		Args: rangeArgs(1, 2),
		RunE: runConvert,
	}
	cmd.Flags().BoolVar(&watchMode, "watch", false, "Re-convert whenever the input file changes")
	return cmd
}

func runConvert(cmd *cobra.Command, args []string) error {
	inputPath := args[0]
	outputPath := defaultOutputPath(inputPath)
	if len(args) == 2 {
		outputPath = args[1]
	}

	// Validate input file exists
	if _, err := os.Stat(inputPath); os.IsNotExist(err) {
		return usageError(fmt.Errorf("file not found: %s", inputPath))
	}

	opts, err := options()
	if err != nil {
		return err
	}

	convertOnce := func() error {
		return convertFile(cmd, inputPath, outputPath, opts)
	}
	if err := convertOnce(); err != nil {
		return err
	}
	if !watchMode {
		return nil
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	debounce := time.Duration(cfg.Watch.DebounceMillis) * time.Millisecond
	return watch.File(ctx, inputPath, debounce, logger, convertOnce)
}

func convertFile(cmd *cobra.Command, inputPath, outputPath string, opts workoutconv.Options) error {
	result, err := workoutconv.Convert(inputPath, opts)
	if err != nil {
		if errors.Is(err, workoutconv.ErrFileNotFound) {
			return usageError(err)
		}
		return fmt.Errorf("conversion failed: %w", err)
	}

	data, err := workoutconv.Render(result, cfg.PrettyOutput())
	if err != nil {
		var verr *validate.Error
		if errors.As(err, &verr) {
			printValidationFailure(cmd.OutOrStdout(), verr)
			return &exitError{code: exitValidation, err: err}
		}
		return fmt.Errorf("serialization failed: %w", err)
	}

	if err := os.WriteFile(outputPath, data, 0644); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}

	logger.Info().Str("output", outputPath).Int("templates", len(result.Templates)).Msg("conversion written")
	printConversionReport(cmd.OutOrStdout(), result, outputPath, len(data))
	return nil
}

func defaultOutputPath(inputPath string) string {
	return strings.TrimSuffix(inputPath, filepath.Ext(inputPath)) + ".json"
}
