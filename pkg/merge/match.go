package merge

import (
	"github.com/civicdata/rollcall/pkg/errors"
	"github.com/civicdata/rollcall/pkg/people"
)

// Candidate pairs an existing record with the file it came from.
type Candidate struct {
	File   string
	Person *people.Person
}

// FindMatch selects the existing record an incoming one should be merged
// into: an exact name match, or sole occupancy of the same single-seat
// district. Zero candidates returns ErrNotFound; more than one returns an
// AmbiguousMatchError, because the engine never guesses between equally
// plausible matches.
func FindMatch(incoming *people.Person, existing []Candidate, date string) (*Candidate, error) {
	var matches []Candidate

	for i := range existing {
		if existing[i].Person.Name == incoming.Name {
			matches = append(matches, existing[i])
		}
	}

	if len(matches) == 0 {
		if seat, ok := soleSeat(incoming, date); ok {
			for i := range existing {
				if holder, ok := soleSeat(existing[i].Person, date); ok && holder == seat {
					matches = append(matches, existing[i])
				}
			}
		}
	}

	switch len(matches) {
	case 0:
		return nil, errors.NewNotFoundError("match for", incoming.Name)
	case 1:
		return &matches[0], nil
	}

	files := make([]string, len(matches))
	for i, m := range matches {
		files[i] = m.File
	}
	return nil, &errors.AmbiguousMatchError{Incoming: incoming.Name, Candidates: files}
}

// soleSeat returns the single active district-bearing seat a person holds,
// if they hold exactly one.
func soleSeat(p *people.Person, date string) (seat struct {
	Type     people.RoleType
	District string
}, ok bool) {
	count := 0
	for _, role := range p.Roles {
		if role.Type.DistrictBearing() && role.Active(date) {
			count++
			seat.Type = role.Type
			seat.District = role.District
		}
	}
	return seat, count == 1
}
