// Package corpus handles the on-disk layout of the record corpus: one YAML
// file per record, partitioned by record type under a per-jurisdiction data
// directory, with deterministic human-scannable filenames. Retirement
// relocates a file rather than rewriting it elsewhere so external
// references by filename stay traceable through git history.
package corpus

import (
	"os"
	"path/filepath"
	"sort"

	"github.com/goccy/go-yaml"

	"github.com/civicdata/rollcall/pkg/errors"
	"github.com/civicdata/rollcall/pkg/people"
)

// Partition directories under data/<abbr>/.
const (
	LegislatureDir    = "legislature"
	MunicipalitiesDir = "municipalities"
	ExecutiveDir      = "executive"
	RetiredDir        = "retired"
	CommitteesDir     = "committees"
)

// PartitionType maps a partition directory to the person type tag lint
// severity policies key on.
func PartitionType(dir string) people.PersonType {
	switch dir {
	case MunicipalitiesDir:
		return people.PersonTypeMunicipal
	case ExecutiveDir:
		return people.PersonTypeExecutive
	case RetiredDir:
		return people.PersonTypeRetired
	default:
		return people.PersonTypeLegislative
	}
}

// LoadPerson reads one person file, returning both the typed record and
// the raw mapping. Structural validation runs against the raw mapping so
// unknown keys introduced by upstream schema drift are caught.
func LoadPerson(path string) (*people.Person, map[string]any, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, errors.WrapIO("read", path, err)
	}

	var person people.Person
	if err := yaml.Unmarshal(data, &person); err != nil {
		return nil, nil, errors.WrapParse("yaml", path, err)
	}

	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, nil, errors.WrapParse("yaml", path, err)
	}

	return &person, raw, nil
}

// LoadCommittee reads one committee file.
func LoadCommittee(path string) (*people.Committee, map[string]any, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, errors.WrapIO("read", path, err)
	}

	var committee people.Committee
	if err := yaml.Unmarshal(data, &committee); err != nil {
		return nil, nil, errors.WrapParse("yaml", path, err)
	}

	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, nil, errors.WrapParse("yaml", path, err)
	}

	return &committee, raw, nil
}

// SavePerson writes a person record, creating parent directories as
// needed. Empty optional fields are dropped from the output.
func SavePerson(path string, p *people.Person) error {
	return save(path, p)
}

// SaveCommittee writes a committee record.
func SaveCommittee(path string, c *people.Committee) error {
	return save(path, c)
}

func save(path string, record any) error {
	data, err := yaml.Marshal(record)
	if err != nil {
		return errors.WrapParse("yaml", path, err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return errors.WrapIO("create", filepath.Dir(path), err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return errors.WrapIO("write", path, err)
	}
	return nil
}

// Walk returns the record files in a partition directory in sorted order,
// so lint output is reproducible run to run.
func Walk(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, errors.WrapIO("read", dir, err)
	}

	var paths []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		ext := filepath.Ext(entry.Name())
		if ext != ".yml" && ext != ".yaml" {
			continue
		}
		paths = append(paths, filepath.Join(dir, entry.Name()))
	}
	sort.Strings(paths)
	return paths, nil
}
