// Package lint implements the semantic rule engine: a battery of
// per-record checks layered over structural validation, plus corpus-wide
// accumulators (duplicate identifiers, active-seat occupancy) that are
// reconciled once after every record has been processed.
//
// A Validator is owned by one corpus pass and is not safe for concurrent
// use. Errors, warnings, and fixes are distinct channels: errors gate CI,
// warnings inform, fixes report auto-applied mutations.
package lint

import (
	"sort"

	"github.com/civicdata/rollcall/pkg/metadata"
	"github.com/civicdata/rollcall/pkg/people"
	"github.com/civicdata/rollcall/pkg/schema"
)

// Validator accumulates findings across one full corpus pass.
type Validator struct {
	date           string
	fix            bool
	municipal      bool
	abbr           string
	lookup         metadata.Lookup
	settings       *metadata.Settings
	municipalities map[string]bool

	results  *Results
	dupes    DuplicateTracker
	active   ActiveSeats
	retiring map[string]bool
}

// Option configures a Validator.
type Option func(*Validator)

// WithDate overrides the reference date (YYYY-MM-DD) used for active-role
// decisions, enabling historical lint runs.
func WithDate(date string) Option {
	return func(v *Validator) { v.date = date }
}

// WithFix enables auto-applied mutations: name splitting, and retirement
// of municipal records with no active roles.
func WithFix() Option {
	return func(v *Validator) { v.fix = true }
}

// WithMunicipal runs in lenient municipal mode: missing seats and missing
// active roles downgrade to warnings.
func WithMunicipal() Option {
	return func(v *Validator) { v.municipal = true }
}

// WithJurisdiction sets the jurisdiction abbreviation whose seat counts
// are reconciled at finalization.
func WithJurisdiction(abbr string) Option {
	return func(v *Validator) { v.abbr = abbr }
}

// WithLookup sets the jurisdiction metadata lookup.
func WithLookup(lookup metadata.Lookup) Option {
	return func(v *Validator) { v.lookup = lookup }
}

// WithSettings sets the vacancy/whitelist settings.
func WithSettings(settings *metadata.Settings) Option {
	return func(v *Validator) {
		v.settings = settings
		if v.municipalities == nil {
			v.municipalities = make(map[string]bool)
		}
		for _, ids := range settings.Municipalities {
			for _, id := range ids {
				v.municipalities[id] = true
			}
		}
	}
}

// New creates a Validator for one corpus pass.
func New(opts ...Option) *Validator {
	v := &Validator{
		date:           people.Today(),
		settings:       &metadata.Settings{},
		municipalities: make(map[string]bool),
		results:        newResults(),
		dupes:          NewDuplicateTracker(),
		active:         make(ActiveSeats),
		retiring:       make(map[string]bool),
	}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// Process runs every per-record check against one person record and folds
// its identifiers and active seats into the corpus accumulators. raw is
// the parsed YAML mapping the record was loaded from; structural checks
// run against it so unknown keys are caught.
func (v *Validator) Process(raw map[string]any, p *people.Person, filename string, typ people.PersonType) {
	report := v.results.file(filename)
	retired := typ == people.PersonTypeRetired

	report.Errors = append(report.Errors, schema.Validate(raw, people.PersonSchema())...)

	for _, msg := range ValidateRoles(p, retired, v.date) {
		if msg == "no active roles" && (typ == people.PersonTypeMunicipal || v.municipal) {
			if v.fix {
				// Retire in place: strip contact details, which go stale
				// the moment someone leaves office. Relocation to the
				// retired partition is the caller's step.
				p.ContactDetails = nil
				p.Email = ""
				v.retiring[filename] = true
				report.Fixes = append(report.Fixes, "no active roles, retiring")
				continue
			}
			report.Warnings = append(report.Warnings, msg+", consider retiring")
			continue
		}
		report.Errors = append(report.Errors, msg)
	}

	// Party cardinality applies to serving people only; a record being
	// retired this pass is already on its way out.
	if !retired && !v.retiring[filename] {
		report.Errors = append(report.Errors, ValidateParties(p, v.date)...)
	}

	nameErrs, nameFixes := ValidateName(p, v.fix)
	report.Errors = append(report.Errors, nameErrs...)
	report.Fixes = append(report.Fixes, nameFixes...)

	report.Errors = append(report.Errors, ValidateOffices(p)...)
	report.Warnings = append(report.Warnings, OfficeKindWarnings(p)...)

	report.Errors = append(report.Errors, ValidateJurisdictions(p, v.lookup, v.municipalities)...)

	if retired {
		report.Errors = append(report.Errors, v.oldDistrictErrors(p)...)
	}

	report.Warnings = append(report.Warnings, HTTPWarnings(p, v.settings.HTTPAllow)...)

	v.dupes.Record(p, filename)
	if typ == people.PersonTypeLegislative {
		v.active.Record(p, filename, v.date)
	}
}

// Fixing reports whether auto-applied mutations are enabled.
func (v *Validator) Fixing() bool {
	return v.fix
}

// RetirePending reports whether a fix pass marked the file for relocation
// to the retired partition.
func (v *Validator) RetirePending(filename string) bool {
	return v.retiring[filename]
}

// AddError records an error against a file outside the rule battery, such
// as a record that failed to parse at all.
func (v *Validator) AddError(filename, msg string) {
	report := v.results.file(filename)
	report.Errors = append(report.Errors, msg)
}

// ProcessCommittee runs structural validation for a committee record and
// tracks its id for duplicate detection. Committees carry no seats or
// party memberships, so the person-level semantic rules do not apply.
func (v *Validator) ProcessCommittee(raw map[string]any, c *people.Committee, filename string) {
	report := v.results.file(filename)
	report.Errors = append(report.Errors, schema.Validate(raw, people.CommitteeSchema())...)
	v.dupes.Add("id", c.ID, filename)
}

// oldDistrictErrors resolves the jurisdiction for legacy-district checks.
func (v *Validator) oldDistrictErrors(p *people.Person) []string {
	if v.lookup == nil || v.abbr == "" {
		return nil
	}
	j, err := v.lookup.JurisdictionByAbbr(v.abbr)
	if err != nil {
		return nil
	}
	return ValidateOldDistrictNames(p, j)
}

// Finalize runs the corpus-wide checks: duplicate identifiers and seat
// occupancy. It must only be called after every record has been processed;
// a partial accumulation would misreport both. A stale vacancy declaration
// aborts with a BadVacancyError.
func (v *Validator) Finalize() (*Results, error) {
	v.results.Corpus = append(v.results.Corpus, CheckDuplicates(v.dupes)...)

	if v.lookup != nil && v.abbr != "" {
		if err := v.reconcileSeats(); err != nil {
			return nil, err
		}
	}

	v.results.tally()
	return v.results, nil
}

func (v *Validator) reconcileSeats() error {
	j, err := v.lookup.JurisdictionByAbbr(v.abbr)
	if err != nil {
		return err
	}

	expected, err := ExpectedDistricts(j, v.settings.Vacancies[v.abbr], v.date)
	if err != nil {
		return err
	}

	// Occupants under a chamber type the jurisdiction never declared must
	// still surface, so the comparison covers the union of declared
	// chambers and observed active seats.
	chambers := make(map[people.RoleType]bool, len(j.Chambers))
	for _, chamber := range j.Chambers {
		chambers[chamber.Type] = true
	}
	for chamber := range v.active {
		chambers[chamber] = true
	}
	ordered := make([]people.RoleType, 0, len(chambers))
	for chamber := range chambers {
		ordered = append(ordered, chamber)
	}
	sort.Slice(ordered, func(a, b int) bool { return ordered[a] < ordered[b] })

	for _, chamber := range ordered {
		issues := CompareDistricts(expected[chamber], v.active[chamber])
		v.results.Corpus = append(v.results.Corpus, issues.Unexpected...)
		v.results.Corpus = append(v.results.Corpus, issues.Overfull...)
		if v.municipal {
			v.results.CorpusWarnings = append(v.results.CorpusWarnings, issues.Missing...)
		} else {
			v.results.Corpus = append(v.results.Corpus, issues.Missing...)
		}
	}

	return nil
}
