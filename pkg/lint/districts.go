package lint

import (
	"fmt"
	"sort"
	"strings"

	"github.com/civicdata/rollcall/pkg/errors"
	"github.com/civicdata/rollcall/pkg/metadata"
	"github.com/civicdata/rollcall/pkg/people"
)

// Occupant is one person actively holding a seat, identified for reports.
type Occupant struct {
	File string
	Name string
}

func (o Occupant) String() string {
	return fmt.Sprintf("%s (%s)", o.Name, o.File)
}

// ExpectedSeats maps chamber -> district -> expected occupant count.
type ExpectedSeats map[people.RoleType]map[string]int

// ActiveSeats maps chamber -> district -> persons actively holding a seat.
type ActiveSeats map[people.RoleType]map[string][]Occupant

// Record folds a person's active district-bearing roles into the map.
func (a ActiveSeats) Record(p *people.Person, filename, date string) {
	for _, role := range p.Roles {
		if !role.Type.DistrictBearing() || !role.Active(date) {
			continue
		}
		if a[role.Type] == nil {
			a[role.Type] = make(map[string][]Occupant)
		}
		a[role.Type][role.District] = append(a[role.Type][role.District],
			Occupant{File: filename, Name: p.Name})
	}
}

// ExpectedDistricts computes per-district expected occupancy for a
// jurisdiction, reduced by one for each declared, non-expired vacancy.
// A vacancy whose vacant_until has already passed is stale configuration
// and returns a BadVacancyError, aborting the jurisdiction's run.
func ExpectedDistricts(j *metadata.Jurisdiction, vacancies []metadata.Vacancy, date string) (ExpectedSeats, error) {
	expected := make(ExpectedSeats)
	for _, chamber := range j.Chambers {
		seats := make(map[string]int, len(chamber.Districts))
		for _, district := range chamber.Districts {
			num := district.NumSeats
			if num == 0 {
				num = 1
			}
			seats[district.Name] = num
		}
		expected[chamber.Type] = seats
	}

	for _, vacancy := range vacancies {
		if vacancy.VacantUntil.IsZero() || !vacancy.VacantUntil.After(date) {
			return nil, errors.NewBadVacancyError(j.Abbr,
				vacancy.Chamber.String(), vacancy.District, vacancy.VacantUntil.String())
		}
		if seats, ok := expected[vacancy.Chamber]; ok {
			if _, ok := seats[vacancy.District]; ok {
				seats[vacancy.District]--
			}
		}
	}

	return expected, nil
}

// DistrictIssues separates seat-accounting failures by class so the caller
// can apply the lenient-municipal severity policy to missing seats.
type DistrictIssues struct {
	Unexpected []string // district keys with occupants but no metadata
	Missing    []string // expected seats with fewer occupants than declared
	Overfull   []string // more occupants than seats, with offenders listed
}

// Empty reports whether no issues were found.
func (d DistrictIssues) Empty() bool {
	return len(d.Unexpected) == 0 && len(d.Missing) == 0 && len(d.Overfull) == 0
}

// CompareDistricts reconciles expected seat counts against the persons
// actively holding each district within one chamber.
func CompareDistricts(expected map[string]int, actual map[string][]Occupant) DistrictIssues {
	var issues DistrictIssues

	districts := make([]string, 0, len(actual))
	for district := range actual {
		districts = append(districts, district)
	}
	sort.Strings(districts)

	for _, district := range districts {
		occupants := actual[district]
		seats, known := expected[district]
		if !known {
			issues.Unexpected = append(issues.Unexpected,
				fmt.Sprintf("unexpected district %s", district))
			continue
		}
		if len(occupants) > seats {
			names := make([]string, len(occupants))
			for i, o := range occupants {
				names[i] = o.String()
			}
			issues.Overfull = append(issues.Overfull,
				fmt.Sprintf("too many people in district %s: %s", district, strings.Join(names, ", ")))
		}
	}

	expectedDistricts := make([]string, 0, len(expected))
	for district := range expected {
		expectedDistricts = append(expectedDistricts, district)
	}
	sort.Strings(expectedDistricts)

	for _, district := range expectedDistricts {
		seats := expected[district]
		if have := len(actual[district]); have < seats {
			issues.Missing = append(issues.Missing,
				fmt.Sprintf("missing %d person(s) in district %s", seats-have, district))
		}
	}

	return issues
}
