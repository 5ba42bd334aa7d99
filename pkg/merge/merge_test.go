package merge

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/civicdata/rollcall/pkg/people"
)

func basePerson() *people.Person {
	return &people.Person{
		ID:    "ocd-person/11111111-0000-0000-0000-000000000001",
		Name:  "Bob Smith",
		Party: []people.Party{{Name: "Democratic"}},
		Roles: []people.Role{
			{Type: people.RoleUpper, District: "3", Jurisdiction: "ocd-jurisdiction/country:us/state:nc/government"},
		},
		Links: []people.Link{{URL: "https://example.com/bob"}},
	}
}

func TestComputeMergeScalarNeverErases(t *testing.T) {
	old := basePerson()
	old.Email = "bob@example.com"
	updated := &people.Person{ID: old.ID, Name: old.Name}

	changes := ComputeMerge(old, updated, false)
	assert.Empty(t, changes)
}

func TestComputeMergeScalarUpdate(t *testing.T) {
	old := basePerson()
	updated := &people.Person{ID: old.ID, Name: old.Name, Email: "new@example.com"}

	changes := ComputeMerge(old, updated, false)
	require.Len(t, changes, 1)
	assert.Equal(t, OpReplace, changes[0].Op)
	assert.Equal(t, "email", changes[0].Path.String())
	assert.Equal(t, "new@example.com", changes[0].New)
}

func TestComputeMergeNameHistory(t *testing.T) {
	old := basePerson()
	updated := &people.Person{ID: old.ID, Name: "Robert Smith"}

	merged, err := MergePeople(old, updated, false)
	require.NoError(t, err)

	assert.Equal(t, "Robert Smith", merged.Name)
	require.Len(t, merged.OtherNames, 1)
	assert.Equal(t, "Bob Smith", merged.OtherNames[0].Name)
}

func TestComputeMergeNameHistoryNoDuplicate(t *testing.T) {
	// The incoming record already lists the old name; the history trail
	// and the generic list merge must not each append it.
	old := basePerson()
	old.OtherNames = []people.OtherName{{Name: "Bobby Smith"}}
	updated := &people.Person{
		ID:         old.ID,
		Name:       "Robert Smith",
		OtherNames: []people.OtherName{{Name: "Bob Smith"}},
	}

	merged, err := MergePeople(old, updated, false)
	require.NoError(t, err)

	assert.Equal(t, "Robert Smith", merged.Name)
	require.Len(t, merged.OtherNames, 2)
	assert.Equal(t, "Bobby Smith", merged.OtherNames[0].Name)
	assert.Equal(t, "Bob Smith", merged.OtherNames[1].Name)
}

func TestComputeMergeListAppendsOnly(t *testing.T) {
	old := basePerson()
	updated := &people.Person{
		ID:   old.ID,
		Name: old.Name,
		Links: []people.Link{
			{URL: "https://example.com/bob"}, // already present
			{URL: "https://legislature.example.gov/bob"},
		},
	}

	merged, err := MergePeople(old, updated, false)
	require.NoError(t, err)

	assert.Equal(t, []people.Link{
		{URL: "https://example.com/bob"},
		{URL: "https://legislature.example.gov/bob"},
	}, merged.Links)
}

func TestComputeMergeEmptyNewListChangesNothing(t *testing.T) {
	old := basePerson()
	updated := &people.Person{ID: old.ID, Name: old.Name}

	merged, err := MergePeople(old, updated, false)
	require.NoError(t, err)
	assert.Empty(t, cmp.Diff(*old, merged))
}

func TestComputeMergeKeepBothIDs(t *testing.T) {
	old := basePerson()
	updated := &people.Person{
		ID:   "ocd-person/22222222-0000-0000-0000-000000000002",
		Name: old.Name,
	}

	merged, err := MergePeople(old, updated, true)
	require.NoError(t, err)

	// The old id wins; the new one survives as an identifier.
	assert.Equal(t, old.ID, merged.ID)
	require.Len(t, merged.OtherIdentifiers, 1)
	assert.Equal(t, people.OtherIdentifier{
		Scheme:     people.SchemeOpenstates,
		Identifier: updated.ID,
	}, merged.OtherIdentifiers[0])

	// Without the flag the new id is dropped entirely.
	merged, err = MergePeople(old, updated, false)
	require.NoError(t, err)
	assert.Equal(t, old.ID, merged.ID)
	assert.Empty(t, merged.OtherIdentifiers)
}

func TestMergeIdempotent(t *testing.T) {
	old := basePerson()
	updated := &people.Person{
		ID:    "ocd-person/22222222-0000-0000-0000-000000000002",
		Name:  "Robert Smith",
		Email: "rob@example.com",
		Links: []people.Link{{URL: "https://legislature.example.gov/rob"}},
		IDs:   &people.PersonIDs{Twitter: "robsmith"},
		ContactDetails: []people.ContactDetail{
			{Note: people.CapitolOffice, Voice: "555-1234"},
		},
		Extras: map[string]any{"seniority": 4},
	}

	merged, err := MergePeople(old, updated, true)
	require.NoError(t, err)

	// Merging the result with the same incoming record finds nothing to do.
	again := ComputeMerge(&merged, updated, true)
	assert.Empty(t, again)

	twice, err := MergePeople(&merged, updated, true)
	require.NoError(t, err)
	assert.Empty(t, cmp.Diff(merged, twice))
}

func TestMergeIDs(t *testing.T) {
	old := basePerson()
	old.IDs = &people.PersonIDs{Twitter: "oldhandle", Facebook: "bob.smith"}
	updated := &people.Person{
		ID:   old.ID,
		Name: old.Name,
		IDs:  &people.PersonIDs{Twitter: "newhandle"},
	}

	merged, err := MergePeople(old, updated, false)
	require.NoError(t, err)

	// Only the handle the scrape carries is replaced.
	assert.Equal(t, "newhandle", merged.IDs.Twitter)
	assert.Equal(t, "bob.smith", merged.IDs.Facebook)
}

func TestMergeExtras(t *testing.T) {
	old := basePerson()
	old.Extras = map[string]any{"curated": true, "seniority": 3}
	updated := &people.Person{
		ID:     old.ID,
		Name:   old.Name,
		Extras: map[string]any{"seniority": 4, "caucus": "rural"},
	}

	merged, err := MergePeople(old, updated, false)
	require.NoError(t, err)

	assert.Equal(t, map[string]any{
		"curated":   true,
		"seniority": 4,
		"caucus":    "rural",
	}, merged.Extras)
}

func TestApplyRejectsUnknownPath(t *testing.T) {
	p := basePerson()
	err := Apply(p, []Change{Replace(NewPath("no_such_field"), nil, "x")})
	assert.Error(t, err)
}

func TestChangeString(t *testing.T) {
	c := Replace(NewPath("ids", "twitter"), "old", "new")
	assert.Contains(t, c.String(), "ids.twitter")
}

func TestPath(t *testing.T) {
	p := Path{Field("roles"), Index(2), Field("end_date")}
	assert.Equal(t, "roles.2.end_date", p.String())
	assert.Equal(t, "roles", p.Root())
	assert.Equal(t, "", Path{}.Root())
}
