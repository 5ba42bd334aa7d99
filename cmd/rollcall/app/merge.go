package app

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/civicdata/rollcall"
	"github.com/civicdata/rollcall/pkg/corpus"
	"github.com/civicdata/rollcall/pkg/errors"
	"github.com/civicdata/rollcall/pkg/people"
)

// NewMergeCommand creates the merge command.
func (a *App) NewMergeCommand() *cobra.Command {
	var (
		oldFile     string
		newFile     string
		incoming    string
		retirement  string
		keepBothIDs bool
	)

	cmd := &cobra.Command{
		Use:   "merge (--old FILE --new FILE | --incoming ABBR)",
		Short: "Merge scraped records into existing ones",
		Long: `Merge reconciles freshly scraped records with the curated records they
describe. The curated record's id and history win; list entries from the
scrape are appended rather than replacing what curators added by hand.

Pairwise mode merges one file into another and prints the change-set.
Incoming mode merges a whole scraped roster from the incoming directory
into the jurisdiction's corpus, matching records by name or seat.

Examples:
  rollcall merge --old data/nc/legislature/jane-doe-....yml --new scraped/jane.yml
  rollcall merge --old old.yml --new new.yml --keep-both-ids
  rollcall merge --incoming nc
  rollcall merge --incoming nc --retirement 2026-06-30`,
		RunE: func(cmd *cobra.Command, args []string) error {
			switch {
			case incoming != "":
				if oldFile != "" || newFile != "" {
					return errors.NewValidationError("incoming", incoming,
						"cannot combine --incoming with --old/--new")
				}
				return a.runIncomingMerge(cmd, incoming, retirement, keepBothIDs)
			case oldFile != "" && newFile != "":
				return a.runPairwiseMerge(cmd, oldFile, newFile, keepBothIDs)
			default:
				return errors.NewValidationError("merge", nil,
					"either --incoming or both --old and --new are required")
			}
		},
	}

	cmd.Flags().StringVar(&oldFile, "old", "", "existing record file")
	cmd.Flags().StringVar(&newFile, "new", "", "incoming record file")
	cmd.Flags().StringVar(&incoming, "incoming", "", "jurisdiction abbreviation to merge a scraped roster for")
	cmd.Flags().StringVar(&retirement, "retirement", "", "retire existing legislators absent from the roster as of this date")
	cmd.Flags().BoolVar(&keepBothIDs, "keep-both-ids", false, "record a differing incoming id as an identifier")

	return cmd
}

func (a *App) runPairwiseMerge(cmd *cobra.Command, oldFile, newFile string, keepBothIDs bool) error {
	merged, changes, err := rollcall.MergeFiles(oldFile, newFile, keepBothIDs)
	if err != nil {
		return err
	}

	if len(changes) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "no changes")
		return nil
	}

	for _, change := range changes {
		fmt.Fprintln(cmd.OutOrStdout(), change.String())
	}

	if err := corpus.SavePerson(oldFile, &merged); err != nil {
		return err
	}

	a.logger.Info().
		Str("file", oldFile).
		Int("changes", len(changes)).
		Msg("Merged record")

	return nil
}

func (a *App) runIncomingMerge(cmd *cobra.Command, abbr, retirement string, keepBothIDs bool) error {
	date := people.FuzzyDate(retirement)
	if !date.Valid() {
		return errors.NewValidationError("retirement", retirement,
			"must be YYYY, YYYY-MM, or YYYY-MM-DD")
	}

	incomingDir := filepath.Join(a.config.IncomingDir, abbr)
	report, err := rollcall.MergeIncoming(a.config.DataDir, abbr, incomingDir, keepBothIDs, date)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	for _, file := range report.Merged {
		fmt.Fprintf(out, "merged %s\n", file)
	}
	for _, file := range report.Created {
		fmt.Fprintf(out, "created %s\n", file)
	}
	for _, name := range report.Ambiguous {
		fmt.Fprintf(out, "ambiguous match for %s, resolve manually\n", name)
	}
	for _, file := range report.Retired {
		fmt.Fprintf(out, "retired %s\n", file)
	}
	fmt.Fprintf(out, "%d merged, %d created, %d ambiguous, %d retired\n",
		len(report.Merged), len(report.Created), len(report.Ambiguous), len(report.Retired))

	return nil
}
