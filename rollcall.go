// Package rollcall curates a corpus of government-official records: one
// YAML file per person or committee, validated by a structural and
// semantic rule battery, and reconciled against freshly scraped data by a
// curation-preserving merge engine.
//
// The subpackages carry the machinery (pkg/people, pkg/schema, pkg/lint,
// pkg/merge, pkg/corpus, pkg/metadata); this package is the batch driver
// tying them to the on-disk layout.
package rollcall

import (
	"path/filepath"

	"github.com/civicdata/rollcall/pkg/corpus"
	"github.com/civicdata/rollcall/pkg/errors"
	"github.com/civicdata/rollcall/pkg/lint"
	"github.com/civicdata/rollcall/pkg/logging"
	"github.com/civicdata/rollcall/pkg/merge"
	"github.com/civicdata/rollcall/pkg/metadata"
	"github.com/civicdata/rollcall/pkg/people"
)

// personPartitions lists the partitions holding person records, in the
// order a lint run visits them.
var personPartitions = []string{
	corpus.LegislatureDir,
	corpus.ExecutiveDir,
	corpus.MunicipalitiesDir,
	corpus.RetiredDir,
}

// LintJurisdiction runs a full lint pass over one jurisdiction's records
// under dataDir/<abbr>/. Per-file findings accumulate in processing order;
// corpus-wide checks (duplicate identifiers, seat occupancy) run once at
// the end, after every record has contributed. A stale vacancy declaration
// aborts the jurisdiction's run with a BadVacancyError.
func LintJurisdiction(dataDir, abbr string, lookup metadata.Lookup, opts ...lint.Option) (*lint.Results, error) {
	settings, err := metadata.LoadSettings(filepath.Join(dataDir, "settings.yaml"))
	if err != nil {
		return nil, err
	}

	base := []lint.Option{
		lint.WithJurisdiction(abbr),
		lint.WithLookup(lookup),
		lint.WithSettings(settings),
	}
	v := lint.New(append(base, opts...)...)

	fixing := hasFix(opts)
	total := 0
	var toRetire []string

	for _, partition := range personPartitions {
		dir := filepath.Join(dataDir, abbr, partition)
		paths, err := corpus.Walk(dir)
		if err != nil {
			return nil, err
		}

		for _, path := range paths {
			filename := filepath.Base(path)
			person, raw, err := corpus.LoadPerson(path)
			if err != nil {
				v.AddError(filename, err.Error())
				continue
			}

			before := person.GivenName + "\x00" + person.FamilyName
			v.Process(raw, person, filename, corpus.PartitionType(partition))
			total++

			if !fixing {
				continue
			}

			// Persist fixes applied in place. A retirement fix also
			// relocates the file, deferred past the partition walk so
			// the retired pass does not pick the record up twice.
			switch {
			case v.RetirePending(filename):
				if err := corpus.SavePerson(path, person); err != nil {
					return nil, err
				}
				toRetire = append(toRetire, path)
			case before != person.GivenName+"\x00"+person.FamilyName:
				if err := corpus.SavePerson(path, person); err != nil {
					return nil, err
				}
			}
		}
	}

	for _, path := range toRetire {
		if _, err := corpus.MoveToRetired(path); err != nil {
			return nil, err
		}
	}

	committeeDir := filepath.Join(dataDir, abbr, corpus.CommitteesDir)
	paths, err := corpus.Walk(committeeDir)
	if err != nil {
		return nil, err
	}
	for _, path := range paths {
		filename := filepath.Base(path)
		committee, raw, err := corpus.LoadCommittee(path)
		if err != nil {
			v.AddError(filename, err.Error())
			continue
		}
		v.ProcessCommittee(raw, committee, filename)
		total++
	}

	results, err := v.Finalize()
	if err != nil {
		return nil, err
	}

	logging.Info().
		Str("jurisdiction", abbr).
		Int("files", total).
		Int("errors", results.ErrorCount).
		Int("warnings", results.WarningCount).
		Msg("Linted corpus")

	return results, nil
}

// MergeFiles reconciles two record files pairwise, returning the merged
// record and the change-set that produced it. The old file's id wins;
// keepBothIDs preserves a differing new id as an openstates identifier.
func MergeFiles(oldPath, newPath string, keepBothIDs bool) (people.Person, []merge.Change, error) {
	oldPerson, _, err := corpus.LoadPerson(oldPath)
	if err != nil {
		return people.Person{}, nil, err
	}
	newPerson, _, err := corpus.LoadPerson(newPath)
	if err != nil {
		return people.Person{}, nil, err
	}

	changes := merge.ComputeMerge(oldPerson, newPerson, keepBothIDs)
	merged, err := merge.MergePeople(oldPerson, newPerson, keepBothIDs)
	if err != nil {
		return people.Person{}, nil, err
	}
	return merged, changes, nil
}

// IncomingReport summarizes one bulk merge of scraped records into a
// jurisdiction's corpus.
type IncomingReport struct {
	Merged    []string // existing files updated in place
	Created   []string // new files added for unmatched incoming records
	Ambiguous []string // incoming names skipped for manual resolution
	Retired   []string // files relocated to the retired partition
}

// MergeIncoming merges a directory of freshly scraped person records into
// the jurisdiction's legislature partition. Each incoming record is
// matched against the existing roster (exact name, then sole single-seat
// district); matches merge in place, unmatched records become new files,
// and ambiguous matches are skipped for manual resolution. With a
// non-zero retirement date, existing active legislators absent from the
// incoming roster are retired as of that date.
func MergeIncoming(dataDir, abbr, incomingDir string, keepBothIDs bool, retirement people.FuzzyDate) (*IncomingReport, error) {
	dir := filepath.Join(dataDir, abbr, corpus.LegislatureDir)
	existingPaths, err := corpus.Walk(dir)
	if err != nil {
		return nil, err
	}

	candidates := make([]merge.Candidate, 0, len(existingPaths))
	for _, path := range existingPaths {
		person, _, err := corpus.LoadPerson(path)
		if err != nil {
			return nil, err
		}
		candidates = append(candidates, merge.Candidate{File: path, Person: person})
	}

	incomingPaths, err := corpus.Walk(incomingDir)
	if err != nil {
		return nil, err
	}

	date := people.Today()
	report := &IncomingReport{}
	matched := make(map[string]bool, len(candidates))

	for _, path := range incomingPaths {
		incoming, _, err := corpus.LoadPerson(path)
		if err != nil {
			return nil, err
		}

		match, err := merge.FindMatch(incoming, candidates, date)
		switch {
		case err == nil:
			merged, err := merge.MergePeople(match.Person, incoming, keepBothIDs)
			if err != nil {
				return nil, err
			}
			if err := corpus.SavePerson(match.File, &merged); err != nil {
				return nil, err
			}
			matched[match.File] = true
			report.Merged = append(report.Merged, match.File)

		case errors.IsAmbiguousMatch(err):
			report.Ambiguous = append(report.Ambiguous, incoming.Name)

		case errors.IsNotFound(err):
			if incoming.ID == "" {
				incoming.ID = people.NewPersonID()
			}
			dest := filepath.Join(dir, corpus.Filename(incoming.Name, incoming.ID))
			if err := corpus.SavePerson(dest, incoming); err != nil {
				return nil, err
			}
			report.Created = append(report.Created, dest)

		default:
			return nil, err
		}
	}

	if !retirement.IsZero() {
		for _, candidate := range candidates {
			if matched[candidate.File] || len(candidate.Person.ActiveRoles(date)) == 0 {
				continue
			}
			corpus.Retire(candidate.Person, retirement, "")
			if err := corpus.SavePerson(candidate.File, candidate.Person); err != nil {
				return nil, err
			}
			dest, err := corpus.MoveToRetired(candidate.File)
			if err != nil {
				return nil, err
			}
			report.Retired = append(report.Retired, dest)
		}
	}

	logging.Info().
		Str("jurisdiction", abbr).
		Int("merged", len(report.Merged)).
		Int("created", len(report.Created)).
		Int("ambiguous", len(report.Ambiguous)).
		Int("retired", len(report.Retired)).
		Msg("Merged incoming roster")

	return report, nil
}

// RetireFile ends a person's active roles as of date, strips contact
// details, and relocates the file to the retired partition. The new path
// is returned.
func RetireFile(path string, date people.FuzzyDate, reason string) (string, error) {
	person, _, err := corpus.LoadPerson(path)
	if err != nil {
		return "", err
	}

	corpus.Retire(person, date, reason)
	if err := corpus.SavePerson(path, person); err != nil {
		return "", err
	}
	return corpus.MoveToRetired(path)
}

func hasFix(opts []lint.Option) bool {
	probe := lint.New(opts...)
	return probe.Fixing()
}
