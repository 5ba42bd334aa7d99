package people

// OfficeKind labels a contact-detail bundle. Merge and lint logic key on
// exact equality of this value, so recognized kinds are a closed set; an
// unrecognized kind still round-trips but lint warns about it rather than
// silently creating a new office bucket.
type OfficeKind string

// String returns the string representation of an OfficeKind.
func (k OfficeKind) String() string {
	return string(k)
}

// Office kinds.
const (
	CapitolOffice  OfficeKind = "Capitol Office"
	DistrictOffice OfficeKind = "District Office"
	PrimaryOffice  OfficeKind = "Primary Office"
	HomeOffice     OfficeKind = "Home Office"
)

// AllOfficeKinds lists every recognized office kind.
var AllOfficeKinds = []OfficeKind{
	CapitolOffice,
	DistrictOffice,
	PrimaryOffice,
	HomeOffice,
}

// Known reports whether the kind is one of the recognized values.
func (k OfficeKind) Known() bool {
	for _, kind := range AllOfficeKinds {
		if k == kind {
			return true
		}
	}
	return false
}

// ContactDetail is a labelled bundle of contact values for one office.
type ContactDetail struct {
	Note    OfficeKind `json:"note" yaml:"note"`
	Address string     `json:"address,omitempty" yaml:"address,omitempty"`
	Voice   string     `json:"voice,omitempty" yaml:"voice,omitempty"`
	Fax     string     `json:"fax,omitempty" yaml:"fax,omitempty"`
}

// Values returns the concrete contact values present on the office,
// keyed by field name.
func (c ContactDetail) Values() map[string]string {
	values := make(map[string]string, 3)
	if c.Address != "" {
		values["address"] = c.Address
	}
	if c.Voice != "" {
		values["voice"] = c.Voice
	}
	if c.Fax != "" {
		values["fax"] = c.Fax
	}
	return values
}
