package people

import (
	"fmt"
	"regexp"

	"github.com/civicdata/rollcall/pkg/schema"
)

var (
	uuidPattern     = `[0-9a-f]{8}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{12}`
	personIDRe      = regexp.MustCompile(`^ocd-person/` + uuidPattern + `$`)
	orgIDRe         = regexp.MustCompile(`^ocd-organization/` + uuidPattern + `$`)
	jurisdictionRe  = regexp.MustCompile(`^ocd-jurisdiction/country:us/[^\s]+$`)
	roleTypeValues = roleTypeStrings()
	parentValues   = []string{string(ParentUpper), string(ParentLower), string(ParentLegislature)}
)

func roleTypeStrings() []string {
	out := make([]string, len(AllRoleTypes))
	for i, t := range AllRoleTypes {
		out[i] = string(t)
	}
	return out
}

// freeText is the rule set shared by every human-entered string field.
func freeText() []schema.Check {
	return []schema.Check{schema.String(), schema.NoNewlines()}
}

// timeRangeFields declares the optional fuzzy-date range carried by
// memberships, names, and identifiers.
func timeRangeFields() map[string]*schema.Field {
	return map[string]*schema.Field{
		"start_date": {Checks: []schema.Check{schema.FuzzyDate()}},
		"end_date":   {Checks: []schema.Check{schema.FuzzyDate()}},
	}
}

func withTimeRange(fields map[string]*schema.Field) map[string]*schema.Field {
	for name, field := range timeRangeFields() {
		fields[name] = field
	}
	return fields
}

func linkSchema() *schema.Schema {
	return &schema.Schema{
		Fields: map[string]*schema.Field{
			"url":  {Required: true, Checks: []schema.Check{schema.URL()}},
			"note": {Checks: freeText()},
		},
	}
}

func roleSchema() *schema.Schema {
	return &schema.Schema{
		Fields: withTimeRange(map[string]*schema.Field{
			"type":         {Required: true, Checks: []schema.Check{schema.Enum(roleTypeValues...)}},
			"district":     {Checks: freeText()},
			"jurisdiction": {Required: true, Checks: []schema.Check{schema.Match(jurisdictionRe, "jurisdiction id")}},
			"end_reason":   {Checks: freeText()},
		}),
		Cross: []schema.CrossCheck{roleDistrictCheck, roleEndReasonCheck},
	}
}

// roleDistrictCheck enforces the conditional district requirement:
// district-bearing role types must carry one, the rest must not.
func roleDistrictCheck(record map[string]any) []string {
	roleType, _ := record["type"].(string)
	district, hasDistrict := record["district"].(string)
	bearing := RoleType(roleType).DistrictBearing()

	switch {
	case bearing && (!hasDistrict || district == ""):
		return []string{fmt.Sprintf("district is required for %s role", roleType)}
	case !bearing && hasDistrict && district != "" && roleType != "":
		return []string{fmt.Sprintf("district is forbidden for %s role", roleType)}
	}
	return nil
}

// roleEndReasonCheck requires an end_date on any role that records why it
// ended.
func roleEndReasonCheck(record map[string]any) []string {
	reason, _ := record["end_reason"].(string)
	endDate, _ := record["end_date"].(string)
	if reason != "" && endDate == "" {
		return []string{"end_date is required when end_reason is set"}
	}
	return nil
}

// PersonSchema returns the structural schema for a Person record.
func PersonSchema() *schema.Schema {
	return &schema.Schema{
		Fields: map[string]*schema.Field{
			"id":          {Required: true, Checks: []schema.Check{schema.Match(personIDRe, "ocd-person id")}},
			"name":        {Required: true, Checks: freeText()},
			"given_name":  {Checks: freeText()},
			"family_name": {Checks: freeText()},
			"gender":      {Checks: freeText()},
			"birth_date":  {Checks: []schema.Check{schema.FuzzyDate()}},
			"death_date":  {Checks: []schema.Check{schema.FuzzyDate()}},
			"image":       {Checks: []schema.Check{schema.URL()}},
			"email":       {Checks: freeText()},

			"party": {Elem: &schema.Schema{
				Fields: withTimeRange(map[string]*schema.Field{
					"name": {Required: true, Checks: freeText()},
				}),
			}},
			"roles": {Elem: roleSchema()},
			"contact_details": {Elem: &schema.Schema{
				Fields: map[string]*schema.Field{
					// Unrecognized notes round-trip; lint warns on them.
					"note":    {Required: true, Checks: freeText()},
					"address": {Checks: freeText()},
					"voice":   {Checks: freeText()},
					"fax":     {Checks: freeText()},
				},
			}},
			"links":   {Elem: linkSchema()},
			"sources": {Elem: linkSchema()},
			"other_names": {Elem: &schema.Schema{
				Fields: withTimeRange(map[string]*schema.Field{
					"name": {Required: true, Checks: freeText()},
				}),
			}},
			"other_identifiers": {Elem: &schema.Schema{
				Fields: withTimeRange(map[string]*schema.Field{
					"scheme":     {Required: true, Checks: freeText()},
					"identifier": {Required: true, Checks: freeText()},
				}),
			}},
			"ids": {Sub: &schema.Schema{
				Fields: map[string]*schema.Field{
					"twitter":   {Checks: freeText()},
					"youtube":   {Checks: freeText()},
					"instagram": {Checks: freeText()},
					"facebook":  {Checks: freeText()},
				},
			}},

			"extras": {Free: true},
		},
	}
}

// CommitteeSchema returns the structural schema for a Committee record.
func CommitteeSchema() *schema.Schema {
	return &schema.Schema{
		Fields: map[string]*schema.Field{
			"id":             {Required: true, Checks: []schema.Check{schema.Match(orgIDRe, "ocd-organization id")}},
			"name":           {Required: true, Checks: freeText()},
			"parent":         {Required: true, Checks: []schema.Check{schema.Enum(parentValues...)}},
			"classification": {Checks: freeText()},
			"jurisdiction":   {Required: true, Checks: []schema.Check{schema.Match(jurisdictionRe, "jurisdiction id")}},
			"links":          {Elem: linkSchema()},
			"sources":        {Elem: linkSchema()},
			"other_names": {Elem: &schema.Schema{
				Fields: withTimeRange(map[string]*schema.Field{
					"name": {Required: true, Checks: freeText()},
				}),
			}},
			"members": {Elem: &schema.Schema{
				Fields: map[string]*schema.Field{
					"name":      {Required: true, Checks: freeText()},
					"role":      {Checks: freeText()},
					"person_id": {Checks: []schema.Check{schema.Match(personIDRe, "ocd-person id")}},
				},
			}},
		},
	}
}
