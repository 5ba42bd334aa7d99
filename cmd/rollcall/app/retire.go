package app

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/civicdata/rollcall"
	"github.com/civicdata/rollcall/pkg/errors"
	"github.com/civicdata/rollcall/pkg/people"
)

// NewRetireCommand creates the retire command.
func (a *App) NewRetireCommand() *cobra.Command {
	var reason string

	cmd := &cobra.Command{
		Use:   "retire FILE DATE",
		Short: "Retire an official as of a date",
		Long: `Retire ends every active role on the record as of DATE, strips contact
details, and moves the file to the jurisdiction's retired partition.

DATE may be a full or partial date: YYYY, YYYY-MM, or YYYY-MM-DD.

Examples:
  rollcall retire data/nc/legislature/jane-doe-....yml 2026-06-30
  rollcall retire data/nc/executive/gov.yml 2026 --reason "resigned"`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]
			date := people.FuzzyDate(args[1])
			if !date.Valid() {
				return &errors.ValidationError{
					Field:   "date",
					Value:   args[1],
					Message: "must be YYYY, YYYY-MM, or YYYY-MM-DD",
				}
			}

			newPath, err := rollcall.RetireFile(path, date, reason)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "retired to %s\n", newPath)
			return nil
		},
	}

	cmd.Flags().StringVar(&reason, "reason", "", "end reason to record on closed roles")

	return cmd
}
