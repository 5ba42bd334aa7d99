package corpus

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/civicdata/rollcall/pkg/people"
)

func TestSaveLoadPerson(t *testing.T) {
	dir := t.TempDir()
	p := &people.Person{
		ID:         people.NewPersonID(),
		Name:       "Jane Doe",
		GivenName:  "Jane",
		FamilyName: "Doe",
		Party:      []people.Party{{Name: "Democratic"}},
		Roles: []people.Role{
			{Type: people.RoleUpper, District: "3", Jurisdiction: "ocd-jurisdiction/country:us/state:nc/government"},
		},
		IDs: &people.PersonIDs{Twitter: "janedoe"},
	}

	path := filepath.Join(dir, "legislature", Filename(p.Name, p.ID))
	require.NoError(t, SavePerson(path, p))

	loaded, raw, err := LoadPerson(path)
	require.NoError(t, err)
	assert.Equal(t, p, loaded)

	// The raw mapping mirrors the typed record and drops empty fields.
	assert.Equal(t, p.ID, raw["id"])
	assert.NotContains(t, raw, "email")
}

func TestSaveLoadCommittee(t *testing.T) {
	dir := t.TempDir()
	c := &people.Committee{
		ID:           people.NewOrganizationID(),
		Name:         "Agriculture",
		Parent:       people.ParentUpper,
		Jurisdiction: "ocd-jurisdiction/country:us/state:nc/government",
		Members:      []people.Membership{{Name: "Jane Doe", Role: "chair"}},
	}

	path := filepath.Join(dir, "committees", Filename(c.Name, c.ID))
	require.NoError(t, SaveCommittee(path, c))

	loaded, _, err := LoadCommittee(path)
	require.NoError(t, err)
	assert.Equal(t, c, loaded)
}

func TestLoadPersonBadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yml")
	require.NoError(t, os.WriteFile(path, []byte("{unclosed"), 0o644))

	_, _, err := LoadPerson(path)
	assert.Error(t, err)
}

func TestWalk(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"b.yml", "a.yml", "notes.txt", "c.yaml"} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("{}"), 0o644))
	}
	require.NoError(t, os.Mkdir(filepath.Join(dir, "sub"), 0o755))

	paths, err := Walk(dir)
	require.NoError(t, err)
	assert.Equal(t, []string{
		filepath.Join(dir, "a.yml"),
		filepath.Join(dir, "b.yml"),
		filepath.Join(dir, "c.yaml"),
	}, paths)
}

func TestWalkMissingDir(t *testing.T) {
	paths, err := Walk(filepath.Join(t.TempDir(), "absent"))
	require.NoError(t, err)
	assert.Nil(t, paths)
}

func TestPartitionType(t *testing.T) {
	assert.Equal(t, people.PersonTypeLegislative, PartitionType(LegislatureDir))
	assert.Equal(t, people.PersonTypeMunicipal, PartitionType(MunicipalitiesDir))
	assert.Equal(t, people.PersonTypeExecutive, PartitionType(ExecutiveDir))
	assert.Equal(t, people.PersonTypeRetired, PartitionType(RetiredDir))
}

func TestRetire(t *testing.T) {
	p := &people.Person{
		ID:    people.NewPersonID(),
		Name:  "Jane Doe",
		Email: "jane@example.gov",
		ContactDetails: []people.ContactDetail{
			{Note: people.CapitolOffice, Voice: "555-1111"},
		},
		Roles: []people.Role{
			{Type: people.RoleUpper, District: "3"},
			{Type: people.RoleLower, District: "9", EndDate: "2018-01-01", EndReason: "term ended"},
		},
	}

	Retire(p, "2026-06-30", "resigned")

	assert.Equal(t, people.FuzzyDate("2026-06-30"), p.Roles[0].EndDate)
	assert.Equal(t, "resigned", p.Roles[0].EndReason)

	// Roles already closed keep their own history.
	assert.Equal(t, people.FuzzyDate("2018-01-01"), p.Roles[1].EndDate)
	assert.Equal(t, "term ended", p.Roles[1].EndReason)

	assert.Empty(t, p.Email)
	assert.Nil(t, p.ContactDetails)
}

func TestMoveToRetired(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, LegislatureDir, "jane-doe.yml")
	require.NoError(t, os.MkdirAll(filepath.Dir(src), 0o755))
	require.NoError(t, os.WriteFile(src, []byte("id: x\n"), 0o644))

	dest, err := MoveToRetired(src)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, RetiredDir, "jane-doe.yml"), dest)

	assert.NoFileExists(t, src)
	assert.FileExists(t, dest)
}
