package people

import (
	"regexp"
	"time"
)

// FuzzyDate is a date truncatable to year or year-month precision.
// Valid forms are YYYY, YYYY-MM, and YYYY-MM-DD.
type FuzzyDate string

var fuzzyDateRe = regexp.MustCompile(`^\d{4}(-\d{2}(-\d{2})?)?$`)

// String returns the string representation of a FuzzyDate.
func (d FuzzyDate) String() string {
	return string(d)
}

// IsZero reports whether the date is unset.
func (d FuzzyDate) IsZero() bool {
	return d == ""
}

// Valid reports whether the date matches one of the accepted forms.
// An unset date is valid; callers enforce required-ness separately.
func (d FuzzyDate) Valid() bool {
	if d == "" {
		return true
	}
	return fuzzyDateRe.MatchString(string(d))
}

// After reports whether the date is strictly after the reference date.
// ISO-ordered string comparison is correct across precisions: a role
// ending "2020" is not active on 2020-06-01.
func (d FuzzyDate) After(ref string) bool {
	return string(d) > ref
}

// Before reports whether the date is strictly before the reference date.
func (d FuzzyDate) Before(ref string) bool {
	return string(d) < ref
}

// Today returns the current date in reference-date form (YYYY-MM-DD).
func Today() string {
	return time.Now().Format("2006-01-02")
}
