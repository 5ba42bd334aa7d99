// Package metadata provides the jurisdiction lookup consumed by lint's seat
// accounting, plus the per-jurisdiction settings file (vacancy declarations,
// http whitelist). The lookup is an interface so a cached upstream service
// can stand in; the in-package Registry is a YAML-backed implementation used
// for tests and for municipal registries that upstream metadata omits.
package metadata

import (
	"os"

	"github.com/goccy/go-yaml"

	"github.com/civicdata/rollcall/pkg/errors"
	"github.com/civicdata/rollcall/pkg/people"
)

// District is one seat grouping within a chamber.
type District struct {
	Name     string `json:"name" yaml:"name"`
	NumSeats int    `json:"num_seats" yaml:"num_seats"`
}

// Chamber is one chamber of a jurisdiction's legislature.
type Chamber struct {
	Type      people.RoleType `json:"chamber_type" yaml:"chamber_type"`
	Districts []District      `json:"districts" yaml:"districts"`
}

// Jurisdiction is the metadata record for one state or municipality.
type Jurisdiction struct {
	ID              string    `json:"id" yaml:"id"`
	Name            string    `json:"name" yaml:"name"`
	Abbr            string    `json:"abbr" yaml:"abbr"`
	Chambers        []Chamber `json:"chambers,omitempty" yaml:"chambers,omitempty"`
	LegacyDistricts []string  `json:"legacy_districts,omitempty" yaml:"legacy_districts,omitempty"`
}

// Chamber returns the chamber of the given type, or nil if absent.
func (j *Jurisdiction) Chamber(t people.RoleType) *Chamber {
	for i := range j.Chambers {
		if j.Chambers[i].Type == t {
			return &j.Chambers[i]
		}
	}
	return nil
}

// DistrictNames returns every current district name across all chambers.
func (j *Jurisdiction) DistrictNames() map[string]bool {
	names := make(map[string]bool)
	for _, chamber := range j.Chambers {
		for _, district := range chamber.Districts {
			names[district.Name] = true
		}
	}
	return names
}

// IsLegacyDistrict reports whether name was once a valid district name for
// the jurisdiction. Retired records keep the names they served under.
func (j *Jurisdiction) IsLegacyDistrict(name string) bool {
	for _, legacy := range j.LegacyDistricts {
		if legacy == name {
			return true
		}
	}
	return false
}

// Lookup resolves jurisdiction metadata. A miss must be distinguishable via
// errors.IsNotFound, never a sentinel value.
type Lookup interface {
	// Jurisdiction resolves by OCD jurisdiction id.
	Jurisdiction(id string) (*Jurisdiction, error)

	// JurisdictionByAbbr resolves by postal-style abbreviation.
	JurisdictionByAbbr(abbr string) (*Jurisdiction, error)
}

// Registry is an in-memory Lookup.
type Registry struct {
	byID   map[string]*Jurisdiction
	byAbbr map[string]*Jurisdiction
}

// NewRegistry creates a Registry over the given jurisdictions.
func NewRegistry(jurisdictions ...Jurisdiction) *Registry {
	r := &Registry{
		byID:   make(map[string]*Jurisdiction, len(jurisdictions)),
		byAbbr: make(map[string]*Jurisdiction, len(jurisdictions)),
	}
	for i := range jurisdictions {
		j := jurisdictions[i]
		r.byID[j.ID] = &j
		r.byAbbr[j.Abbr] = &j
	}
	return r
}

// Jurisdiction resolves by OCD jurisdiction id.
func (r *Registry) Jurisdiction(id string) (*Jurisdiction, error) {
	if j, ok := r.byID[id]; ok {
		return j, nil
	}
	return nil, errors.NewNotFoundError("jurisdiction", id)
}

// JurisdictionByAbbr resolves by abbreviation.
func (r *Registry) JurisdictionByAbbr(abbr string) (*Jurisdiction, error) {
	if j, ok := r.byAbbr[abbr]; ok {
		return j, nil
	}
	return nil, errors.NewNotFoundError("jurisdiction", abbr)
}

// Add registers another jurisdiction, replacing any prior entry with the
// same id or abbreviation.
func (r *Registry) Add(j Jurisdiction) {
	r.byID[j.ID] = &j
	r.byAbbr[j.Abbr] = &j
}

// LoadRegistry reads a registry from a YAML file containing a list of
// jurisdictions.
func LoadRegistry(path string) (*Registry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.WrapIO("read", path, err)
	}

	var jurisdictions []Jurisdiction
	if err := yaml.Unmarshal(data, &jurisdictions); err != nil {
		return nil, errors.WrapParse("yaml", path, err)
	}

	return NewRegistry(jurisdictions...), nil
}
