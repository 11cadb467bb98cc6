package valueobjects

import (
	"fmt"
	"regexp"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// nameRegex ensures the name contains only valid characters
var nameRegex = regexp.MustCompile(`^[a-zA-Z\s\-'\.]+$`)

var titleCaser = cases.Title(language.English)

// Name represents a person's name value object
type Name struct {
	value string
}

// NewName creates a new Name value object with validation
func NewName(value string) (Name, error) {
	normalized := strings.TrimSpace(value)

	if normalized == "" {
		return Name{}, fmt.Errorf("name cannot be empty")
	}
	if len(normalized) < 2 {
		return Name{}, fmt.Errorf("name must be at least 2 characters long")
	}
	if len(normalized) > 100 {
		return Name{}, fmt.Errorf("name cannot exceed 100 characters")
	}
	if !nameRegex.MatchString(normalized) {
		return Name{}, fmt.Errorf("name contains invalid characters")
	}

	return Name{value: titleCaser.String(strings.ToLower(normalized))}, nil
}

func (n Name) String() string {
	return n.value
}
