// Package validation provides composable field validators and helpers to apply them to
// a record keyed by a fixed set of field identifiers.
package validation

import (
	"regexp"
	"strings"
)

// Validator checks a single field value. It returns the error message, or "" when the
// value passes.
type Validator func(value string) string

// Required fails when the value is empty or blank.
func Required(message string) Validator {
	return func(value string) string {
		if strings.TrimSpace(value) == "" {
			return message
		}
		return ""
	}
}

// Match fails when value does not fully match re. Blank input always fails, even if re
// would accept it; existing field combinations rely on that.
func Match(re *regexp.Regexp, message string) Validator {
	anchored := regexp.MustCompile(`^(?:` + re.String() + `)$`)
	return func(value string) string {
		if !anchored.MatchString(value) || strings.TrimSpace(value) == "" {
			return message
		}
		return ""
	}
}

// List runs validators in order and returns the first failure message.
func List(validators ...Validator) Validator {
	return func(value string) string {
		for _, v := range validators {
			if msg := v(value); msg != "" {
				return msg
			}
		}
		return ""
	}
}
