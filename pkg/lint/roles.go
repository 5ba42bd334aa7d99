package lint

import (
	"fmt"

	"github.com/civicdata/rollcall/pkg/people"
)

// ValidateRoles checks active-role cardinality as of the reference date.
// A serving person must hold exactly one active role; a retired person
// must hold none. Violations are returned as strings, never raised.
func ValidateRoles(p *people.Person, retired bool, date string) []string {
	active := len(p.ActiveRoles(date))

	if retired {
		if active > 0 {
			return []string{fmt.Sprintf("%d active roles on retired person", active)}
		}
		return nil
	}

	switch {
	case active == 0:
		return []string{"no active roles"}
	case active > 1:
		return []string{fmt.Sprintf("%d active roles", active)}
	}
	return nil
}

// ValidateParties checks that exactly one party membership is active.
// Historical memberships with end dates may coexist; concurrent ones are
// nonsensical for this domain.
func ValidateParties(p *people.Person, date string) []string {
	active := len(p.ActiveParties(date))

	switch {
	case active == 0:
		return []string{"no active party"}
	case active > 1:
		return []string{fmt.Sprintf("%d active parties", active)}
	}
	return nil
}
