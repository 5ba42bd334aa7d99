package app

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/spf13/cobra"

	"github.com/civicdata/rollcall"
	"github.com/civicdata/rollcall/pkg/corpus"
	"github.com/civicdata/rollcall/pkg/errors"
	"github.com/civicdata/rollcall/pkg/lint"
	"github.com/civicdata/rollcall/pkg/people"
)

// lintExitCode is the process exit status when lint finds errors, chosen
// to be distinguishable from ordinary failures in CI pipelines.
const lintExitCode = 99

// NewLintCommand creates the lint command.
func (a *App) NewLintCommand() *cobra.Command {
	var (
		fix       bool
		municipal bool
		date      string
	)

	cmd := &cobra.Command{
		Use:   "lint [ABBR...]",
		Short: "Validate jurisdiction records",
		Long: `Lint validates every person and committee record in the given
jurisdictions against the corpus schema, jurisdiction metadata, and
corpus-wide consistency rules (duplicate identifiers, seat occupancy).

Without arguments, every jurisdiction under the data directory is linted.

Examples:
  rollcall lint nc              # Lint one jurisdiction
  rollcall lint nc wy -v        # Lint two, listing warnings too
  rollcall lint nc --fix        # Apply safe automatic fixes
  rollcall lint nc --municipal  # Include municipal officials`,
		RunE: func(cmd *cobra.Command, args []string) error {
			abbrs := args
			if len(abbrs) == 0 {
				var err error
				abbrs, err = a.listJurisdictions()
				if err != nil {
					return err
				}
			}

			if date != "" && !people.FuzzyDate(date).Valid() {
				return &errors.ValidationError{
					Field:   "date",
					Value:   date,
					Message: "must be YYYY, YYYY-MM, or YYYY-MM-DD",
				}
			}

			var opts []lint.Option
			if fix {
				opts = append(opts, lint.WithFix())
			}
			if municipal {
				opts = append(opts, lint.WithMunicipal())
			}
			if date != "" {
				opts = append(opts, lint.WithDate(date))
			}

			registry, err := a.Registry()
			if err != nil {
				return err
			}

			verbose := a.config.Verbose
			totalErrors := 0

			for _, abbr := range abbrs {
				results, err := rollcall.LintJurisdiction(a.config.DataDir, abbr, registry, opts...)
				if err != nil {
					return err
				}

				fmt.Fprintf(cmd.OutOrStdout(), "==== %s ====\n", abbr)
				results.Print(cmd.OutOrStdout(), verbose)
				totalErrors += results.ErrorCount
			}

			if totalErrors > 0 {
				return &ExitError{Code: lintExitCode}
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&fix, "fix", false, "apply safe automatic fixes to records")
	cmd.Flags().BoolVar(&municipal, "municipal", false, "include municipal officials and relax seat accounting")
	cmd.Flags().StringVar(&date, "date", "", "reference date for active checks (default today)")

	return cmd
}

// listJurisdictions returns the jurisdiction abbreviations present under
// the data directory, sorted.
func (a *App) listJurisdictions() ([]string, error) {
	entries, err := os.ReadDir(a.config.DataDir)
	if err != nil {
		return nil, errors.WrapIO("read", a.config.DataDir, err)
	}

	var abbrs []string
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		// Skip non-jurisdiction directories by requiring at least one
		// known partition inside.
		dir := filepath.Join(a.config.DataDir, entry.Name())
		if hasPartition(dir) {
			abbrs = append(abbrs, entry.Name())
		}
	}
	sort.Strings(abbrs)
	return abbrs, nil
}

func hasPartition(dir string) bool {
	partitions := []string{
		corpus.LegislatureDir,
		corpus.ExecutiveDir,
		corpus.MunicipalitiesDir,
		corpus.RetiredDir,
		corpus.CommitteesDir,
	}
	for _, partition := range partitions {
		if info, err := os.Stat(filepath.Join(dir, partition)); err == nil && info.IsDir() {
			return true
		}
	}
	return false
}
