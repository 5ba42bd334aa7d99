package corpus

import (
	"os"
	"path/filepath"

	"github.com/civicdata/rollcall/pkg/errors"
	"github.com/civicdata/rollcall/pkg/people"
)

// Retire ends every active role as of the given date and strips contact
// details, which go stale the moment someone leaves office. The record is
// mutated in place; relocation to the retired partition is a separate
// step so callers can review before moving files.
func Retire(p *people.Person, date people.FuzzyDate, reason string) {
	for i := range p.Roles {
		if !p.Roles[i].Active(date.String()) {
			continue
		}
		p.Roles[i].EndDate = date
		if reason != "" {
			p.Roles[i].EndReason = reason
		}
	}
	p.ContactDetails = nil
	p.Email = ""
}

// MoveToRetired relocates a record file into the retired partition beside
// its current one, preserving the filename.
func MoveToRetired(path string) (string, error) {
	dir := filepath.Dir(path)
	dest := filepath.Join(filepath.Dir(dir), RetiredDir, filepath.Base(path))

	if err := os.MkdirAll(filepath.Dir(dest), 0o755); err != nil {
		return "", errors.WrapIO("create", filepath.Dir(dest), err)
	}
	if err := os.Rename(path, dest); err != nil {
		return "", errors.WrapIO("move", path, err)
	}
	return dest, nil
}
