package corpus

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/civicdata/rollcall/pkg/people"
)

var nonSlugRe = regexp.MustCompile(`[^a-z0-9]+`)

// Filename derives the deterministic filename for a record from its name
// and id: a lowercase ascii slug of the name for human scanning, plus the
// id's uuid so renames never collide.
func Filename(name, id string) string {
	slug := Slug(name)
	uuid := people.UUID(id)
	if slug == "" {
		return uuid + ".yml"
	}
	return slug + "-" + uuid + ".yml"
}

// Slug folds a name to a lowercase ascii slug, stripping diacritics so
// "Renée O'Connor" and "Renee OConnor" land on the same filename.
func Slug(name string) string {
	folded, _, err := transform.String(transform.Chain(
		norm.NFD,
		runes.Remove(runes.In(unicode.Mn)),
		norm.NFC,
	), name)
	if err != nil {
		folded = name
	}

	slug := nonSlugRe.ReplaceAllString(strings.ToLower(folded), "-")
	return strings.Trim(slug, "-")
}
