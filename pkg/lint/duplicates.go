package lint

import (
	"fmt"
	"sort"
	"strings"

	"github.com/civicdata/rollcall/pkg/people"
)

// maxDuplicateExamples caps the filenames shown per duplicate group.
const maxDuplicateExamples = 3

// DuplicateTracker accumulates identifier values across a full corpus pass,
// keyed scheme -> value -> filenames. It is owned by one Validator for the
// duration of one pass.
type DuplicateTracker map[string]map[string][]string

// NewDuplicateTracker creates an empty tracker.
func NewDuplicateTracker() DuplicateTracker {
	return make(DuplicateTracker)
}

// Add records one identifier occurrence.
func (t DuplicateTracker) Add(scheme, value, filename string) {
	if value == "" {
		return
	}
	if t[scheme] == nil {
		t[scheme] = make(map[string][]string)
	}
	t[scheme][value] = append(t[scheme][value], filename)
}

// Record folds every corpus-unique identifier a person carries into the
// tracker: the synthetic id, social handles, and other_identifiers. The
// openstates sentinel schemes are skipped since they collide by design
// after merges.
func (t DuplicateTracker) Record(p *people.Person, filename string) {
	t.Add("id", p.ID, filename)

	for scheme, handle := range p.IDs.Handles() {
		t.Add(scheme, handle, filename)
	}

	for _, other := range p.OtherIdentifiers {
		if other.Scheme == people.SchemeOpenstates || other.Scheme == people.SchemeLegacyOpenstates {
			continue
		}
		t.Add(other.Scheme, other.Identifier, filename)
	}
}

// CheckDuplicates reports every value seen in more than one file, showing
// up to three example filenames plus an overflow count. Run only after
// every record's contribution has been folded in.
func CheckDuplicates(t DuplicateTracker) []string {
	var out []string

	schemes := make([]string, 0, len(t))
	for scheme := range t {
		schemes = append(schemes, scheme)
	}
	sort.Strings(schemes)

	for _, scheme := range schemes {
		values := make([]string, 0, len(t[scheme]))
		for value := range t[scheme] {
			values = append(values, value)
		}
		sort.Strings(values)

		for _, value := range values {
			files := t[scheme][value]
			if len(files) < 2 {
				continue
			}
			examples := files
			suffix := ""
			if len(files) > maxDuplicateExamples {
				examples = files[:maxDuplicateExamples]
				suffix = fmt.Sprintf(" and %d more", len(files)-maxDuplicateExamples)
			}
			out = append(out, fmt.Sprintf("duplicate %s '%s' in %s%s",
				scheme, value, strings.Join(examples, ", "), suffix))
		}
	}

	return out
}
