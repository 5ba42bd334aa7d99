package people

import (
	"strings"

	"github.com/google/uuid"
)

// Open Civic Data identifier prefixes.
const (
	PersonIDPrefix       = "ocd-person/"
	OrganizationIDPrefix = "ocd-organization/"
	JurisdictionIDPrefix = "ocd-jurisdiction/"
)

// NewPersonID mints a fresh person identifier.
func NewPersonID() string {
	return PersonIDPrefix + uuid.NewString()
}

// NewOrganizationID mints a fresh organization identifier.
func NewOrganizationID() string {
	return OrganizationIDPrefix + uuid.NewString()
}

// IsPersonID reports whether id is a well-formed ocd-person identifier.
func IsPersonID(id string) bool {
	return hasUUIDSuffix(id, PersonIDPrefix)
}

// IsOrganizationID reports whether id is a well-formed ocd-organization
// identifier.
func IsOrganizationID(id string) bool {
	return hasUUIDSuffix(id, OrganizationIDPrefix)
}

// IsJurisdictionID reports whether id looks like a jurisdiction identifier.
// Jurisdiction ids carry a division path rather than a UUID, so only the
// prefix is checked here; resolution happens against the metadata registry.
func IsJurisdictionID(id string) bool {
	return strings.HasPrefix(id, JurisdictionIDPrefix)
}

// UUID extracts the uuid portion of a person or organization id, or ""
// if the id is malformed.
func UUID(id string) string {
	for _, prefix := range []string{PersonIDPrefix, OrganizationIDPrefix} {
		if hasUUIDSuffix(id, prefix) {
			return strings.TrimPrefix(id, prefix)
		}
	}
	return ""
}

func hasUUIDSuffix(id, prefix string) bool {
	if !strings.HasPrefix(id, prefix) {
		return false
	}
	_, err := uuid.Parse(strings.TrimPrefix(id, prefix))
	return err == nil
}
