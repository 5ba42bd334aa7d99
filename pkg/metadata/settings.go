package metadata

import (
	"os"

	"github.com/goccy/go-yaml"

	"github.com/civicdata/rollcall/pkg/errors"
	"github.com/civicdata/rollcall/pkg/people"
)

// Vacancy declares that a seat is intentionally unoccupied until a date.
// Seat accounting reduces the expected occupant count by one per
// non-expired declaration; an expired declaration is a fatal configuration
// error for the jurisdiction's run.
type Vacancy struct {
	Chamber     people.RoleType  `json:"chamber" yaml:"chamber"`
	District    string           `json:"district" yaml:"district"`
	VacantUntil people.FuzzyDate `json:"vacant_until" yaml:"vacant_until"`
}

// Settings is the hand-maintained per-corpus configuration.
type Settings struct {
	// Vacancies maps jurisdiction abbreviation to declared vacancies.
	Vacancies map[string][]Vacancy `json:"vacancies,omitempty" yaml:"vacancies,omitempty"`

	// HTTPAllow lists url prefixes exempt from the https upgrade warning.
	HTTPAllow []string `json:"http_allow,omitempty" yaml:"http_allow,omitempty"`

	// Municipalities lists jurisdiction ids accepted without upstream
	// metadata, keyed by abbreviation.
	Municipalities map[string][]string `json:"municipalities,omitempty" yaml:"municipalities,omitempty"`
}

// LoadSettings reads a settings file. A missing file yields empty settings
// rather than an error; every corpus directory may carry its own.
func LoadSettings(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &Settings{}, nil
		}
		return nil, errors.WrapIO("read", path, err)
	}

	var settings Settings
	if err := yaml.Unmarshal(data, &settings); err != nil {
		return nil, errors.WrapParse("yaml", path, err)
	}

	return &settings, nil
}
