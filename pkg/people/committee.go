package people

// Parent identifies which chamber a committee belongs to.
type Parent string

// Committee parents.
const (
	ParentUpper       Parent = "upper"
	ParentLower       Parent = "lower"
	ParentLegislature Parent = "legislature"
)

// Known reports whether the parent is one of the recognized chambers.
func (p Parent) Known() bool {
	switch p {
	case ParentUpper, ParentLower, ParentLegislature:
		return true
	}
	return false
}

// Committee is a legislative committee record. Committees are recreated
// from scraped data each run and merged against the prior on-file version;
// there is no retired partition for them.
type Committee struct {
	ID             string       `json:"id" yaml:"id"` // ocd-organization/<uuid>
	Name           string       `json:"name" yaml:"name"`
	Parent         Parent       `json:"parent" yaml:"parent"`
	Classification string       `json:"classification,omitempty" yaml:"classification,omitempty"`
	Jurisdiction   string       `json:"jurisdiction" yaml:"jurisdiction"`
	Links          []Link       `json:"links,omitempty" yaml:"links,omitempty"`
	Sources        []Link       `json:"sources,omitempty" yaml:"sources,omitempty"`
	OtherNames     []OtherName  `json:"other_names,omitempty" yaml:"other_names,omitempty"`
	Members        []Membership `json:"members,omitempty" yaml:"members,omitempty"`
}

// Membership is one seat on a committee. PersonID is set once the member
// name has been resolved against the person corpus.
type Membership struct {
	Name     string `json:"name" yaml:"name"`
	Role     string `json:"role,omitempty" yaml:"role,omitempty"`
	PersonID string `json:"person_id,omitempty" yaml:"person_id,omitempty"`
}
