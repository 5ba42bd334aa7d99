package merge

import (
	"github.com/civicdata/rollcall/pkg/errors"
	"github.com/civicdata/rollcall/pkg/people"
)

// ComputeCommitteeMerge computes the change-set aligning an on-file
// committee with a freshly scraped one. Committees are recreated each
// scrape, so the old id, parent, and jurisdiction always win; name changes
// keep a trail in other_names just like people.
func ComputeCommitteeMerge(old, updated *people.Committee) []Change {
	var changes []Change

	if updated.Name != "" && old.Name != updated.Name {
		if old.Name != "" && !hasName(old.OtherNames, old.Name) {
			changes = append(changes, Append(NewPath("other_names"),
				people.OtherName{Name: old.Name}))
		}
		changes = append(changes, Replace(NewPath("name"), old.Name, updated.Name))
	}

	scalar(&changes, "classification", old.Classification, updated.Classification)

	mergeList(&changes, "links", old.Links, updated.Links)
	mergeList(&changes, "sources", old.Sources, updated.Sources)
	mergeList(&changes, "other_names", old.OtherNames, updated.OtherNames)
	mergeList(&changes, "members", old.Members, updated.Members)

	return changes
}

// ApplyCommittee applies a committee change-set in place.
func ApplyCommittee(c *people.Committee, changes []Change) error {
	for _, change := range changes {
		switch {
		case change.Op == OpAppend:
			switch change.Path.Root() {
			case "links":
				c.Links = append(c.Links, change.New.(people.Link))
			case "sources":
				c.Sources = append(c.Sources, change.New.(people.Link))
			case "other_names":
				c.OtherNames = append(c.OtherNames, change.New.(people.OtherName))
			case "members":
				c.Members = append(c.Members, change.New.(people.Membership))
			default:
				return errors.NewValidationError(change.Path.String(), change.New,
					"unknown append target")
			}
		default:
			switch change.Path.Root() {
			case "name":
				c.Name = change.New.(string)
			case "classification":
				c.Classification = change.New.(string)
			case "links":
				c.Links = change.New.([]people.Link)
			case "sources":
				c.Sources = change.New.([]people.Link)
			case "other_names":
				c.OtherNames = change.New.([]people.OtherName)
			case "members":
				c.Members = change.New.([]people.Membership)
			default:
				return errors.NewValidationError(change.Path.String(), change.New,
					"unknown replace target")
			}
		}
	}
	return nil
}

// MergeCommittees computes and applies the change-set, returning the
// merged committee.
func MergeCommittees(old, updated *people.Committee) (people.Committee, error) {
	merged := old.Clone()
	if err := ApplyCommittee(&merged, ComputeCommitteeMerge(old, updated)); err != nil {
		return people.Committee{}, err
	}
	return merged, nil
}
