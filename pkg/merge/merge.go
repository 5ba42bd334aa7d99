package merge

import (
	"reflect"
	"sort"

	"github.com/civicdata/rollcall/pkg/people"
)

// ComputeMerge computes the change-set aligning old with new. The old
// record's id always wins; with keepBothIDs a differing new id is preserved
// as an openstates identifier so external references to either id survive a
// consolidation.
func ComputeMerge(old, updated *people.Person, keepBothIDs bool) []Change {
	var changes []Change

	if keepBothIDs && updated.ID != "" && old.ID != updated.ID {
		if !hasIdentifier(old.OtherIdentifiers, people.SchemeOpenstates, updated.ID) {
			changes = append(changes, Append(NewPath("other_identifiers"),
				people.OtherIdentifier{Scheme: people.SchemeOpenstates, Identifier: updated.ID}))
		}
	}

	// A name change keeps a trail: the old name moves into other_names.
	// The trail entry counts as already present for the generic list merge
	// below, so an incoming record that also lists the old name does not
	// append it twice.
	knownNames := old.OtherNames
	if updated.Name != "" && old.Name != updated.Name {
		if old.Name != "" && !hasName(old.OtherNames, old.Name) {
			trail := people.OtherName{Name: old.Name}
			changes = append(changes, Append(NewPath("other_names"), trail))
			knownNames = append(append([]people.OtherName(nil), old.OtherNames...), trail)
		}
		changes = append(changes, Replace(NewPath("name"), old.Name, updated.Name))
	}

	scalar(&changes, "given_name", old.GivenName, updated.GivenName)
	scalar(&changes, "family_name", old.FamilyName, updated.FamilyName)
	scalar(&changes, "gender", old.Gender, updated.Gender)
	scalar(&changes, "birth_date", old.BirthDate.String(), updated.BirthDate.String())
	scalar(&changes, "death_date", old.DeathDate.String(), updated.DeathDate.String())
	scalar(&changes, "image", old.Image, updated.Image)
	scalar(&changes, "email", old.Email, updated.Email)

	mergeIDs(&changes, old.IDs, updated.IDs)

	mergeList(&changes, "party", old.Party, updated.Party)
	mergeList(&changes, "roles", old.Roles, updated.Roles)
	mergeList(&changes, "links", old.Links, updated.Links)
	mergeList(&changes, "sources", old.Sources, updated.Sources)
	mergeList(&changes, "other_names", knownNames, updated.OtherNames)
	mergeList(&changes, "other_identifiers", old.OtherIdentifiers, updated.OtherIdentifiers)

	// Offices replace all-or-nothing per note group, never field by field.
	if combined, changed := MergeContactDetails(old.ContactDetails, updated.ContactDetails); changed {
		changes = append(changes, Replace(NewPath("contact_details"), old.ContactDetails, combined))
	}

	if merged, changed := mergeExtras(old.Extras, updated.Extras); changed {
		changes = append(changes, Replace(NewPath("extras"), old.Extras, merged))
	}

	return changes
}

// scalar emits a Replace when the new side carries a differing value. A
// new record never erases a populated old scalar by supplying nothing.
func scalar(changes *[]Change, field, old, updated string) {
	if updated == "" || old == updated {
		return
	}
	*changes = append(*changes, Replace(NewPath(field), old, updated))
}

// mergeList implements the generic list policy: an empty new side changes
// nothing, an empty old side is replaced wholesale, and otherwise every
// new item absent from old (by equality) is appended. Existing items are
// never removed.
func mergeList[T comparable](changes *[]Change, field string, old, updated []T) {
	if len(updated) == 0 {
		return
	}
	if len(old) == 0 {
		*changes = append(*changes, Replace(NewPath(field), old, updated))
		return
	}

	seen := make(map[T]bool, len(old))
	for _, item := range old {
		seen[item] = true
	}
	for _, item := range updated {
		if !seen[item] {
			*changes = append(*changes, Append(NewPath(field), item))
			seen[item] = true
		}
	}
}

// mergeIDs diffs the social-handle block per subfield.
func mergeIDs(changes *[]Change, old, updated *people.PersonIDs) {
	if updated == nil {
		return
	}
	var prior people.PersonIDs
	if old != nil {
		prior = *old
	}

	handle := func(field, oldVal, newVal string) {
		if newVal == "" || oldVal == newVal {
			return
		}
		*changes = append(*changes, Replace(NewPath("ids", field), oldVal, newVal))
	}

	handle("twitter", prior.Twitter, updated.Twitter)
	handle("youtube", prior.Youtube, updated.Youtube)
	handle("instagram", prior.Instagram, updated.Instagram)
	handle("facebook", prior.Facebook, updated.Facebook)
}

// mergeExtras merges the free-form side map: new keys added, conflicting
// keys replaced, old-only keys untouched.
func mergeExtras(old, updated map[string]any) (map[string]any, bool) {
	if len(updated) == 0 {
		return nil, false
	}

	merged := make(map[string]any, len(old)+len(updated))
	for k, v := range old {
		merged[k] = v
	}

	changed := false
	keys := make([]string, 0, len(updated))
	for k := range updated {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		if prior, ok := merged[k]; !ok || !reflect.DeepEqual(prior, updated[k]) {
			merged[k] = updated[k]
			changed = true
		}
	}

	if !changed {
		return nil, false
	}
	return merged, true
}

func hasName(names []people.OtherName, name string) bool {
	for _, n := range names {
		if n.Name == name {
			return true
		}
	}
	return false
}

func hasIdentifier(ids []people.OtherIdentifier, scheme, identifier string) bool {
	for _, id := range ids {
		if id.Scheme == scheme && id.Identifier == identifier {
			return true
		}
	}
	return false
}
