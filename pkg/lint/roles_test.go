package lint

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/civicdata/rollcall/pkg/people"
)

const refDate = "2026-06-01"

func TestValidateRoles(t *testing.T) {
	tests := []struct {
		name    string
		roles   []people.Role
		retired bool
		want    []string
	}{
		{
			name:  "one active role is clean",
			roles: []people.Role{{Type: people.RoleUpper, District: "3"}},
		},
		{
			name: "two active roles",
			roles: []people.Role{
				{Type: people.RoleUpper, District: "3"},
				{Type: people.RoleLower, District: "14"},
			},
			want: []string{"2 active roles"},
		},
		{
			name:  "no active roles",
			roles: []people.Role{{Type: people.RoleUpper, District: "3", EndDate: "2020-01-01"}},
			want:  []string{"no active roles"},
		},
		{
			name:    "retired with no active roles is clean",
			roles:   []people.Role{{Type: people.RoleUpper, District: "3", EndDate: "2020-01-01"}},
			retired: true,
		},
		{
			name:    "retired with an active role",
			roles:   []people.Role{{Type: people.RoleUpper, District: "3"}},
			retired: true,
			want:    []string{"1 active roles on retired person"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := &people.Person{Name: "Test Person", Roles: tt.roles}
			assert.Equal(t, tt.want, ValidateRoles(p, tt.retired, refDate))
		})
	}
}

func TestValidateParties(t *testing.T) {
	tests := []struct {
		name    string
		parties []people.Party
		want    []string
	}{
		{
			name:    "one active party is clean",
			parties: []people.Party{{Name: "Democratic"}},
		},
		{
			name: "historical membership alongside active is clean",
			parties: []people.Party{
				{Name: "Republican", EndDate: "2018-01-01"},
				{Name: "Democratic"},
			},
		},
		{
			name: "no active party",
			want: []string{"no active party"},
		},
		{
			name: "two active parties",
			parties: []people.Party{
				{Name: "Democratic"},
				{Name: "Working Families"},
			},
			want: []string{"2 active parties"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := &people.Person{Name: "Test Person", Party: tt.parties}
			assert.Equal(t, tt.want, ValidateParties(p, refDate))
		})
	}
}
