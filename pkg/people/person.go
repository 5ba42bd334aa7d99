// Package people defines the typed record model for government officials:
// Person and Committee records, their sub-entities (roles, parties, contact
// offices, links, identifiers), and the enumerations and date forms the
// validation and merge engines key on.
package people

// PersonType tags which corpus partition a record belongs to. Lint
// severity for some rules depends on it.
type PersonType string

// Person types.
const (
	PersonTypeLegislative PersonType = "legislative" // State legislators
	PersonTypeExecutive   PersonType = "executive"   // Governors and statewide officers
	PersonTypeMunicipal   PersonType = "municipal"   // Mayors and municipal officers
	PersonTypeRetired     PersonType = "retired"     // Retired partition
)

// Person is the central record: one officeholder, one file.
type Person struct {
	// Identity
	ID         string    `json:"id" yaml:"id"` // ocd-person/<uuid>
	Name       string    `json:"name" yaml:"name"`
	GivenName  string    `json:"given_name,omitempty" yaml:"given_name,omitempty"`
	FamilyName string    `json:"family_name,omitempty" yaml:"family_name,omitempty"`
	Gender     string    `json:"gender,omitempty" yaml:"gender,omitempty"`
	BirthDate  FuzzyDate `json:"birth_date,omitempty" yaml:"birth_date,omitempty"`
	DeathDate  FuzzyDate `json:"death_date,omitempty" yaml:"death_date,omitempty"`
	Image      string    `json:"image,omitempty" yaml:"image,omitempty"`

	// Memberships
	Party []Party `json:"party,omitempty" yaml:"party,omitempty"`
	Roles []Role  `json:"roles,omitempty" yaml:"roles,omitempty"`

	// Contact surface
	Email          string          `json:"email,omitempty" yaml:"email,omitempty"`
	ContactDetails []ContactDetail `json:"contact_details,omitempty" yaml:"contact_details,omitempty"`

	// Links and provenance
	Links   []Link `json:"links,omitempty" yaml:"links,omitempty"`
	Sources []Link `json:"sources,omitempty" yaml:"sources,omitempty"`

	// History and cross-system identity
	OtherNames       []OtherName       `json:"other_names,omitempty" yaml:"other_names,omitempty"`
	OtherIdentifiers []OtherIdentifier `json:"other_identifiers,omitempty" yaml:"other_identifiers,omitempty"`
	IDs              *PersonIDs        `json:"ids,omitempty" yaml:"ids,omitempty"`

	// Free-form side data; never receives typed-field treatment
	Extras map[string]any `json:"extras,omitempty" yaml:"extras,omitempty"`
}

// ActiveRoles returns the roles active as of the reference date.
func (p *Person) ActiveRoles(ref string) []Role {
	var active []Role
	for _, r := range p.Roles {
		if r.Active(ref) {
			active = append(active, r)
		}
	}
	return active
}

// ActiveParties returns the party memberships active as of the reference date.
func (p *Person) ActiveParties(ref string) []Party {
	var active []Party
	for _, m := range p.Party {
		if m.Active(ref) {
			active = append(active, m)
		}
	}
	return active
}

// Link is a URL with an optional descriptive note.
type Link struct {
	URL  string `json:"url" yaml:"url"`
	Note string `json:"note,omitempty" yaml:"note,omitempty"`
}

// OtherName is a historical name with an optional validity range.
type OtherName struct {
	Name      string    `json:"name" yaml:"name"`
	StartDate FuzzyDate `json:"start_date,omitempty" yaml:"start_date,omitempty"`
	EndDate   FuzzyDate `json:"end_date,omitempty" yaml:"end_date,omitempty"`
}

// OtherIdentifier is an external-system identifier.
type OtherIdentifier struct {
	Scheme     string    `json:"scheme" yaml:"scheme"`
	Identifier string    `json:"identifier" yaml:"identifier"`
	StartDate  FuzzyDate `json:"start_date,omitempty" yaml:"start_date,omitempty"`
	EndDate    FuzzyDate `json:"end_date,omitempty" yaml:"end_date,omitempty"`
}

// Identifier schemes expected to collide across records after merges;
// duplicate detection skips them.
const (
	SchemeOpenstates       = "openstates"
	SchemeLegacyOpenstates = "legacy_openstates"
)

// PersonIDs holds social-media handles. Each handle participates in
// corpus-wide duplicate detection under its field name as the scheme.
type PersonIDs struct {
	Twitter   string `json:"twitter,omitempty" yaml:"twitter,omitempty"`
	Youtube   string `json:"youtube,omitempty" yaml:"youtube,omitempty"`
	Instagram string `json:"instagram,omitempty" yaml:"instagram,omitempty"`
	Facebook  string `json:"facebook,omitempty" yaml:"facebook,omitempty"`
}

// Handles returns the non-empty handles keyed by scheme.
func (ids *PersonIDs) Handles() map[string]string {
	if ids == nil {
		return nil
	}
	handles := make(map[string]string, 4)
	if ids.Twitter != "" {
		handles["twitter"] = ids.Twitter
	}
	if ids.Youtube != "" {
		handles["youtube"] = ids.Youtube
	}
	if ids.Instagram != "" {
		handles["instagram"] = ids.Instagram
	}
	if ids.Facebook != "" {
		handles["facebook"] = ids.Facebook
	}
	return handles
}
