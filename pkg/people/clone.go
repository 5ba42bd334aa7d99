package people

// Clone returns a deep copy of the person. Merge applies change-sets to a
// copy so the caller's original is never mutated.
func (p *Person) Clone() Person {
	clone := *p
	clone.Party = append([]Party(nil), p.Party...)
	clone.Roles = append([]Role(nil), p.Roles...)
	clone.ContactDetails = append([]ContactDetail(nil), p.ContactDetails...)
	clone.Links = append([]Link(nil), p.Links...)
	clone.Sources = append([]Link(nil), p.Sources...)
	clone.OtherNames = append([]OtherName(nil), p.OtherNames...)
	clone.OtherIdentifiers = append([]OtherIdentifier(nil), p.OtherIdentifiers...)
	if p.IDs != nil {
		ids := *p.IDs
		clone.IDs = &ids
	}
	if p.Extras != nil {
		extras := make(map[string]any, len(p.Extras))
		for k, v := range p.Extras {
			extras[k] = v
		}
		clone.Extras = extras
	}
	return clone
}

// Clone returns a deep copy of the committee.
func (c *Committee) Clone() Committee {
	clone := *c
	clone.Links = append([]Link(nil), c.Links...)
	clone.Sources = append([]Link(nil), c.Sources...)
	clone.OtherNames = append([]OtherName(nil), c.OtherNames...)
	clone.Members = append([]Membership(nil), c.Members...)
	return clone
}
