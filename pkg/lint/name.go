package lint

import (
	"fmt"
	"strings"

	"github.com/civicdata/rollcall/pkg/people"
)

// ValidateName proposes splitting a two-part name into given_name and
// family_name when neither is set. With fix the record is mutated in place
// and the mutation reported as a fix; without it the same condition is an
// error naming the proposed split. Names with zero or more than one
// interior space are ambiguous and left alone.
func ValidateName(p *people.Person, fix bool) (errs, fixes []string) {
	if p.GivenName != "" || p.FamilyName != "" {
		return nil, nil
	}

	parts := strings.Split(p.Name, " ")
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return nil, nil
	}
	given, family := parts[0], parts[1]

	if fix {
		p.GivenName = given
		p.FamilyName = family
		return nil, []string{
			fmt.Sprintf("set given_name to '%s'", given),
			fmt.Sprintf("set family_name to '%s'", family),
		}
	}

	return []string{
		fmt.Sprintf("missing given_name that could be set to '%s', run with --fix", given),
		fmt.Sprintf("missing family_name that could be set to '%s', run with --fix", family),
	}, nil
}
