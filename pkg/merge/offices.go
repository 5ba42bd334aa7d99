package merge

import (
	"slices"

	"github.com/civicdata/rollcall/pkg/people"
)

// MergeContactDetails combines two office lists per note group. For each
// note present on either side, the combined office starts from the old one
// (or the new one if old has none) and overlays any field the new office
// carries; a note present on only one side passes through unchanged. The
// second return is false when the combined set is field-for-field
// identical to old, signalling no change. Replacement is all-or-nothing
// per note so a scrape that captured only a phone number cannot corrupt
// the rest of an office.
func MergeContactDetails(old, updated []people.ContactDetail) ([]people.ContactDetail, bool) {
	if len(updated) == 0 {
		return nil, false
	}

	newByNote := make(map[people.OfficeKind]people.ContactDetail, len(updated))
	for _, office := range updated {
		if _, ok := newByNote[office.Note]; !ok {
			newByNote[office.Note] = office
		}
	}

	oldNotes := make(map[people.OfficeKind]bool, len(old))
	combined := make([]people.ContactDetail, 0, len(old)+len(updated))

	for _, office := range old {
		oldNotes[office.Note] = true
		if incoming, ok := newByNote[office.Note]; ok {
			combined = append(combined, overlay(office, incoming))
			continue
		}
		combined = append(combined, office)
	}

	added := make(map[people.OfficeKind]bool)
	for _, office := range updated {
		if oldNotes[office.Note] || added[office.Note] {
			continue
		}
		combined = append(combined, office)
		added[office.Note] = true
	}

	if slices.Equal(combined, old) {
		return nil, false
	}
	return combined, true
}

// overlay applies every populated field of the incoming office on top of
// the existing one.
func overlay(existing, incoming people.ContactDetail) people.ContactDetail {
	if incoming.Address != "" {
		existing.Address = incoming.Address
	}
	if incoming.Voice != "" {
		existing.Voice = incoming.Voice
	}
	if incoming.Fax != "" {
		existing.Fax = incoming.Fax
	}
	return existing
}
