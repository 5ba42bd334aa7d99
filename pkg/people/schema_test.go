package people

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/civicdata/rollcall/pkg/schema"
)

func validRawPerson() map[string]any {
	return map[string]any{
		"id":   "ocd-person/12345678-0000-0000-0000-1234567890ab",
		"name": "Jane Doe",
		"party": []any{
			map[string]any{"name": "Democratic"},
		},
		"roles": []any{
			map[string]any{
				"type":         "upper",
				"district":     "3",
				"jurisdiction": "ocd-jurisdiction/country:us/state:nc/government",
			},
		},
	}
}

func TestPersonSchemaCleanRecord(t *testing.T) {
	assert.Empty(t, schema.Validate(validRawPerson(), PersonSchema()))
}

func TestPersonSchemaViolations(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(raw map[string]any)
		want   string
	}{
		{
			name:   "missing id",
			mutate: func(raw map[string]any) { delete(raw, "id") },
			want:   "id missing",
		},
		{
			name:   "malformed id",
			mutate: func(raw map[string]any) { raw["id"] = "ocd-person/not-a-uuid" },
			want:   "id: ocd-person/not-a-uuid is not a valid ocd-person id",
		},
		{
			name:   "unknown top-level key",
			mutate: func(raw map[string]any) { raw["nickname"] = "JD" },
			want:   "nickname: extra key",
		},
		{
			name: "district missing on chamber role",
			mutate: func(raw map[string]any) {
				raw["roles"] = []any{
					map[string]any{
						"type":         "upper",
						"jurisdiction": "ocd-jurisdiction/country:us/state:nc/government",
					},
				}
			},
			want: "roles.0: district is required for upper role",
		},
		{
			name: "district forbidden on governor role",
			mutate: func(raw map[string]any) {
				raw["roles"] = []any{
					map[string]any{
						"type":         "governor",
						"district":     "3",
						"jurisdiction": "ocd-jurisdiction/country:us/state:nc/government",
					},
				}
			},
			want: "roles.0: district is forbidden for governor role",
		},
		{
			name: "end_reason without end_date",
			mutate: func(raw map[string]any) {
				raw["roles"] = []any{
					map[string]any{
						"type":         "upper",
						"district":     "3",
						"jurisdiction": "ocd-jurisdiction/country:us/state:nc/government",
						"end_reason":   "resigned",
					},
				}
			},
			want: "roles.0: end_date is required when end_reason is set",
		},
		{
			name: "unknown handle scheme",
			mutate: func(raw map[string]any) {
				raw["ids"] = map[string]any{"myspace": "jane"}
			},
			want: "ids.myspace: extra key",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			raw := validRawPerson()
			tt.mutate(raw)
			got := schema.Validate(raw, PersonSchema())
			assert.Equal(t, []string{tt.want}, got)
		})
	}
}

func TestPersonSchemaUnknownOfficeNote(t *testing.T) {
	// Unrecognized office notes pass structural validation so curated
	// records round-trip; lint owns flagging them as warnings.
	raw := validRawPerson()
	raw["contact_details"] = []any{
		map[string]any{"note": "Branch Office", "voice": "555-0100"},
	}
	assert.Empty(t, schema.Validate(raw, PersonSchema()))
}

func TestCommitteeSchema(t *testing.T) {
	raw := map[string]any{
		"id":           "ocd-organization/12345678-0000-0000-0000-1234567890ab",
		"name":         "Agriculture",
		"parent":       "upper",
		"jurisdiction": "ocd-jurisdiction/country:us/state:nc/government",
		"members": []any{
			map[string]any{"name": "Jane Doe", "role": "chair"},
		},
	}
	assert.Empty(t, schema.Validate(raw, CommitteeSchema()))

	delete(raw, "parent")
	assert.Equal(t, []string{"parent missing"}, schema.Validate(raw, CommitteeSchema()))
}
