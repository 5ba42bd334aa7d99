package lint

import (
	"fmt"
	"strings"

	"github.com/civicdata/rollcall/pkg/metadata"
	"github.com/civicdata/rollcall/pkg/people"
)

// ValidateJurisdictions checks that every role's jurisdiction resolves via
// the metadata lookup or belongs to the known-municipality set, since
// municipalities are absent from upstream jurisdiction metadata.
func ValidateJurisdictions(p *people.Person, lookup metadata.Lookup, municipalities map[string]bool) []string {
	var out []string
	for _, role := range p.Roles {
		if role.Jurisdiction == "" {
			continue // structural validation reports the omission
		}
		if municipalities[role.Jurisdiction] {
			continue
		}
		if lookup != nil {
			if _, err := lookup.Jurisdiction(role.Jurisdiction); err == nil {
				continue
			}
		}
		out = append(out, fmt.Sprintf("invalid jurisdiction %s", role.Jurisdiction))
	}
	return out
}

// ValidateOldDistrictNames checks a retired person's districts against both
// current and legacy district names. Jurisdictions rename and renumber
// districts; a historical record keeps the name it served under.
func ValidateOldDistrictNames(p *people.Person, j *metadata.Jurisdiction) []string {
	if j == nil {
		return nil
	}

	current := j.DistrictNames()

	var out []string
	for _, role := range p.Roles {
		if !role.Type.DistrictBearing() || role.District == "" {
			continue
		}
		if current[role.District] || j.IsLegacyDistrict(role.District) {
			continue
		}
		out = append(out, fmt.Sprintf("district %s is not a current or legacy district", role.District))
	}
	return out
}

// HTTPWarnings flags plain-http URLs in image, links, and sources unless
// whitelisted. These are warnings so the https migration can proceed
// gradually without blocking merges.
func HTTPWarnings(p *people.Person, allow []string) []string {
	var out []string

	check := func(url string) {
		if !strings.HasPrefix(url, "http://") {
			return
		}
		for _, prefix := range allow {
			if strings.HasPrefix(url, prefix) {
				return
			}
		}
		out = append(out, fmt.Sprintf("%s is not https", url))
	}

	check(p.Image)
	for _, link := range p.Links {
		check(link.URL)
	}
	for _, source := range p.Sources {
		check(source.URL)
	}

	return out
}
