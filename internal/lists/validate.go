package lists

import (
	"regexp"
	"unicode/utf8"
)

const (
	// MinNameLength and MaxNameLength bound list and todo names, in characters.
	MinNameLength = 1
	MaxNameLength = 100
)

// disallowed matches any character outside letters, digits and ! . , ? space.
var disallowed = regexp.MustCompile(`[^A-Za-z0-9!.,? ]`)

func validLength(name string) bool {
	n := utf8.RuneCountInString(name)
	return n >= MinNameLength && n <= MaxNameLength
}

// ValidateListName checks a list name against the length and charset rules
// and against the names already in c. The list with id skipID, if any, is
// ignored for the uniqueness check so a list may keep its own name.
func (c *Collection) ValidateListName(name string, skipID int) error {
	switch {
	case !validLength(name):
		return &ValidationError{Message: "List name must be between 1 and 100 characters."}
	case disallowed.MatchString(name):
		return &ValidationError{Message: "List name may only contain letters, numbers, and common punctuation."}
	}
	for _, l := range c.Lists {
		if l.ID != skipID && l.Name == name {
			return &ValidationError{Message: "List name must be unique."}
		}
	}
	return nil
}

// ValidateTodoName checks a todo name against the length and charset rules.
func ValidateTodoName(name string) error {
	switch {
	case !validLength(name):
		return &ValidationError{Message: "Todo must be between 1 and 100 characters."}
	case disallowed.MatchString(name):
		return &ValidationError{Message: "Todo name may only contain letters, numbers, and common punctuation."}
	}
	return nil
}
