package merge

import (
	"fmt"

	"github.com/civicdata/rollcall/pkg/errors"
	"github.com/civicdata/rollcall/pkg/people"
)

// Apply applies a change-set to the person in place. Paths are dispatched
// against the declared field set; a path addressing an unknown field is a
// programmer error in the change-set producer and is reported, not
// silently dropped. Applying an empty change-set is a no-op.
func Apply(p *people.Person, changes []Change) error {
	for _, change := range changes {
		var err error
		if change.Op == OpAppend {
			err = applyAppend(p, change)
		} else {
			err = applyReplace(p, change)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

// MergePeople computes and applies the change-set, returning the merged
// record. Merging is idempotent: merging the result with the same new
// record again produces an empty change-set.
func MergePeople(old, updated *people.Person, keepBothIDs bool) (people.Person, error) {
	merged := old.Clone()
	if err := Apply(&merged, ComputeMerge(old, updated, keepBothIDs)); err != nil {
		return people.Person{}, err
	}
	return merged, nil
}

func applyReplace(p *people.Person, change Change) error {
	switch change.Path.Root() {
	case "name":
		p.Name = change.New.(string)
	case "given_name":
		p.GivenName = change.New.(string)
	case "family_name":
		p.FamilyName = change.New.(string)
	case "gender":
		p.Gender = change.New.(string)
	case "birth_date":
		p.BirthDate = people.FuzzyDate(change.New.(string))
	case "death_date":
		p.DeathDate = people.FuzzyDate(change.New.(string))
	case "image":
		p.Image = change.New.(string)
	case "email":
		p.Email = change.New.(string)
	case "ids":
		return applyHandle(p, change)
	case "party":
		p.Party = change.New.([]people.Party)
	case "roles":
		p.Roles = change.New.([]people.Role)
	case "links":
		p.Links = change.New.([]people.Link)
	case "sources":
		p.Sources = change.New.([]people.Link)
	case "other_names":
		p.OtherNames = change.New.([]people.OtherName)
	case "other_identifiers":
		p.OtherIdentifiers = change.New.([]people.OtherIdentifier)
	case "contact_details":
		p.ContactDetails = change.New.([]people.ContactDetail)
	case "extras":
		p.Extras = change.New.(map[string]any)
	default:
		return errors.NewValidationError(change.Path.String(), change.New,
			"unknown replace target")
	}
	return nil
}

func applyAppend(p *people.Person, change Change) error {
	switch change.Path.Root() {
	case "party":
		p.Party = append(p.Party, change.New.(people.Party))
	case "roles":
		p.Roles = append(p.Roles, change.New.(people.Role))
	case "links":
		p.Links = append(p.Links, change.New.(people.Link))
	case "sources":
		p.Sources = append(p.Sources, change.New.(people.Link))
	case "other_names":
		p.OtherNames = append(p.OtherNames, change.New.(people.OtherName))
	case "other_identifiers":
		p.OtherIdentifiers = append(p.OtherIdentifiers, change.New.(people.OtherIdentifier))
	case "contact_details":
		p.ContactDetails = append(p.ContactDetails, change.New.(people.ContactDetail))
	default:
		return errors.NewValidationError(change.Path.String(), change.New,
			"unknown append target")
	}
	return nil
}

func applyHandle(p *people.Person, change Change) error {
	if len(change.Path) != 2 {
		return errors.NewValidationError(change.Path.String(), change.New,
			fmt.Sprintf("malformed ids path of %d steps", len(change.Path)))
	}
	if p.IDs == nil {
		p.IDs = &people.PersonIDs{}
	}
	value := change.New.(string)
	switch change.Path[1].Name {
	case "twitter":
		p.IDs.Twitter = value
	case "youtube":
		p.IDs.Youtube = value
	case "instagram":
		p.IDs.Instagram = value
	case "facebook":
		p.IDs.Facebook = value
	default:
		return errors.NewValidationError(change.Path.String(), change.New,
			"unknown handle")
	}
	return nil
}
