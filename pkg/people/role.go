package people

// RoleType identifies the kind of office a role represents.
type RoleType string

// String returns the string representation of a RoleType.
func (rt RoleType) String() string {
	return string(rt)
}

// Role types.
const (
	RoleUpper                RoleType = "upper"                  // Upper legislative chamber
	RoleLower                RoleType = "lower"                  // Lower legislative chamber
	RoleLegislature          RoleType = "legislature"            // Unicameral or joint legislature
	RoleGovernor             RoleType = "governor"               // Governor
	RoleLtGovernor           RoleType = "lt_governor"            // Lieutenant governor
	RoleMayor                RoleType = "mayor"                  // Mayor
	RoleSecretaryOfState     RoleType = "secretary_of_state"     // Secretary of state
	RoleChiefElectionOfficer RoleType = "chief_election_officer" // Chief election officer
)

// AllRoleTypes lists every recognized role type.
var AllRoleTypes = []RoleType{
	RoleUpper,
	RoleLower,
	RoleLegislature,
	RoleGovernor,
	RoleLtGovernor,
	RoleMayor,
	RoleSecretaryOfState,
	RoleChiefElectionOfficer,
}

// Known reports whether the role type is one of the recognized values.
func (rt RoleType) Known() bool {
	for _, t := range AllRoleTypes {
		if rt == t {
			return true
		}
	}
	return false
}

// DistrictBearing reports whether roles of this type hold a seat in a
// numbered or named district. District is required for these types and
// absent otherwise.
func (rt RoleType) DistrictBearing() bool {
	switch rt {
	case RoleUpper, RoleLower, RoleLegislature:
		return true
	}
	return false
}

// Role is a time-scoped office membership.
type Role struct {
	Type         RoleType  `json:"type" yaml:"type"`
	District     string    `json:"district,omitempty" yaml:"district,omitempty"`
	Jurisdiction string    `json:"jurisdiction" yaml:"jurisdiction"`
	StartDate    FuzzyDate `json:"start_date,omitempty" yaml:"start_date,omitempty"`
	EndDate      FuzzyDate `json:"end_date,omitempty" yaml:"end_date,omitempty"`
	EndReason    string    `json:"end_reason,omitempty" yaml:"end_reason,omitempty"`
}

// Active reports whether the role is held as of the reference date
// (YYYY-MM-DD). A role with no end date, or an end date in the future,
// is active.
func (r Role) Active(ref string) bool {
	return r.EndDate.IsZero() || r.EndDate.After(ref)
}

// Party is a time-scoped party membership.
type Party struct {
	Name      string    `json:"name" yaml:"name"`
	StartDate FuzzyDate `json:"start_date,omitempty" yaml:"start_date,omitempty"`
	EndDate   FuzzyDate `json:"end_date,omitempty" yaml:"end_date,omitempty"`
}

// Active reports whether the membership is current as of the reference date.
func (p Party) Active(ref string) bool {
	return p.EndDate.IsZero() || p.EndDate.After(ref)
}
