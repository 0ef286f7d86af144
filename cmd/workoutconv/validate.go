package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/oldmanchan-jpg/workout-tracker/pkg/workoutconv/validate"
	"github.com/spf13/cobra"
)

func newValidateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate <templates.json>",
		Short: "Check a template JSON file against the importer rules",
		Args:  rangeArgs(1, 1),
		RunE:  runValidate,
	}
}

func runValidate(cmd *cobra.Command, args []string) error {
	data, err := os.ReadFile(args[0])
	if err != nil {
		if os.IsNotExist(err) {
			return usageError(fmt.Errorf("file not found: %s", args[0]))
		}
		return err
	}

	n, err := validate.Document(data)
	if err != nil {
		var verr *validate.Error
		if errors.As(err, &verr) {
			printValidationFailure(cmd.OutOrStdout(), verr)
			return &exitError{code: exitValidation, err: err}
		}
		return err
	}

	printValidationOK(cmd.OutOrStdout(), n)
	return nil
}
