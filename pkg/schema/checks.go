package schema

import (
	"fmt"
	"regexp"
	"strings"
)

// URL schemes accepted for link-typed fields.
var urlPrefixes = []string{"http://", "https://", "ftp://"}

// String requires the raw value to be a string.
func String() Check {
	return func(value any) string {
		if _, ok := value.(string); !ok {
			return fmt.Sprintf("must be a string, got %T", value)
		}
		return ""
	}
}

// NoNewlines rejects strings containing newline characters. Free-text
// fields with embedded newlines break the one-line report formats
// downstream.
func NoNewlines() Check {
	return stringCheck(func(s string) string {
		if strings.ContainsAny(s, "\n\r") {
			return "must not contain newline"
		}
		return ""
	})
}

// URL requires an http://, https://, or ftp:// prefix.
func URL() Check {
	return stringCheck(func(s string) string {
		for _, prefix := range urlPrefixes {
			if strings.HasPrefix(s, prefix) {
				return ""
			}
		}
		return fmt.Sprintf("%s is not a valid URL", s)
	})
}

// FuzzyDate accepts YYYY, YYYY-MM, or YYYY-MM-DD.
func FuzzyDate() Check {
	re := regexp.MustCompile(`^\d{4}(-\d{2}(-\d{2})?)?$`)
	return stringCheck(func(s string) string {
		if !re.MatchString(s) {
			return fmt.Sprintf("%s is not a valid date", s)
		}
		return ""
	})
}

// Enum accepts only the listed values.
func Enum(values ...string) Check {
	allowed := make(map[string]bool, len(values))
	for _, v := range values {
		allowed[v] = true
	}
	return stringCheck(func(s string) string {
		if !allowed[s] {
			return fmt.Sprintf("%s is not one of %s", s, strings.Join(values, ", "))
		}
		return ""
	})
}

// Match requires the value to match the pattern; desc names the expected
// form in the violation message.
func Match(re *regexp.Regexp, desc string) Check {
	return stringCheck(func(s string) string {
		if !re.MatchString(s) {
			return fmt.Sprintf("%s is not a valid %s", s, desc)
		}
		return ""
	})
}

// stringCheck adapts a string predicate into a Check. Non-string values
// fail with a type message so the string check itself stays simple.
func stringCheck(fn func(s string) string) Check {
	return func(value any) string {
		s, ok := value.(string)
		if !ok {
			return fmt.Sprintf("must be a string, got %T", value)
		}
		return fn(s)
	}
}
