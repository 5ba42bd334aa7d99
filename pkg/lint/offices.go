package lint

import (
	"fmt"

	"github.com/civicdata/rollcall/pkg/people"
)

// ValidateOffices detects two copy-paste signatures in a person's contact
// offices: more than one Capitol Office entry, and a single concrete
// contact value reused across two different office notes.
func ValidateOffices(p *people.Person) []string {
	var out []string

	capitols := 0
	seen := make(map[string]people.OfficeKind) // value -> first note using it

	for _, office := range p.ContactDetails {
		if office.Note == people.CapitolOffice {
			capitols++
		}

		for field, value := range office.Values() {
			key := field + "\x00" + value
			if prior, ok := seen[key]; ok && prior != office.Note {
				out = append(out, fmt.Sprintf("%s '%s' repeated in %s and %s",
					field, value, prior, office.Note))
				continue
			}
			if _, ok := seen[key]; !ok {
				seen[key] = office.Note
			}
		}
	}

	if capitols > 1 {
		out = append(out, fmt.Sprintf("%d Capitol Office entries, max is 1", capitols))
	}

	return out
}

// OfficeKindWarnings flags unrecognized office notes. An unknown note is
// almost always a typo that would silently create a new, unmerged office
// bucket.
func OfficeKindWarnings(p *people.Person) []string {
	var out []string
	for _, office := range p.ContactDetails {
		if !office.Note.Known() {
			out = append(out, fmt.Sprintf("unknown office note '%s'", office.Note))
		}
	}
	return out
}
