package main

import (
	"errors"
	"fmt"

	"github.com/oldmanchan-jpg/workout-tracker/pkg/workoutconv"
	"github.com/oldmanchan-jpg/workout-tracker/pkg/workoutconv/output"
	"github.com/spf13/cobra"
)

var sectionsJSON bool

func newSectionsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sections <input.xlsx>",
		Short: "List the day sections detected in each sheet",
		Args:  rangeArgs(1, 1),
		RunE:  runSections,
	}
	cmd.Flags().BoolVar(&sectionsJSON, "json", false, "Output sections as JSON")
	return cmd
}

func runSections(cmd *cobra.Command, args []string) error {
	opts, err := options()
	if err != nil {
		return err
	}

	grids, err := workoutconv.LoadGrids(args[0], opts)
	if err != nil {
		if errors.Is(err, workoutconv.ErrFileNotFound) {
			return usageError(err)
		}
		return err
	}
	sheets, err := workoutconv.DescribeSections(grids, opts)
	if err != nil {
		return err
	}

	if !sectionsJSON {
		printSections(cmd.OutOrStdout(), sheets)
		return nil
	}

	var views []output.SectionView
	for _, s := range sheets {
		views = append(views, s.Sections...)
	}
	data, err := output.SectionsToJSON(views, true)
	if err != nil {
		return err
	}
	if _, err := cmd.OutOrStdout().Write(data); err != nil {
		return fmt.Errorf("write sections: %w", err)
	}
	return nil
}
