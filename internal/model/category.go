// Package model defines the records a markbook is built from.
package model

import (
	"fmt"
	"strings"

	"github.com/Veraticus/markbook/internal/common"
)

// Category is one of the four fixed assessment dimensions.
type Category int

const (
	// CategoryThinking covers thinking and investigation tasks.
	CategoryThinking Category = iota
	// CategoryKnowledge covers knowledge and understanding.
	CategoryKnowledge
	// CategoryCommunication covers communication of ideas.
	CategoryCommunication
	// CategoryApplication covers application of concepts.
	CategoryApplication
)

// NumCategories is the number of assessment categories.
const NumCategories = 4

// Categories lists every category in weighting order.
var Categories = [NumCategories]Category{
	CategoryThinking,
	CategoryKnowledge,
	CategoryCommunication,
	CategoryApplication,
}

var categoryNames = [NumCategories]string{
	"Thinking",
	"Knowledge",
	"Communication",
	"Application",
}

// String returns the display name of the category.
func (c Category) String() string {
	if !c.Valid() {
		return fmt.Sprintf("Category(%d)", int(c))
	}
	return categoryNames[c]
}

// Valid reports whether c is one of the four known categories.
func (c Category) Valid() bool {
	return c >= CategoryThinking && c <= CategoryApplication
}

// ParseCategory matches a label against the known categories, ignoring case
// and surrounding whitespace.
func ParseCategory(label string) (Category, error) {
	trimmed := strings.TrimSpace(label)
	for i, name := range categoryNames {
		if strings.EqualFold(trimmed, name) {
			return Category(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", common.ErrUnknownCategory, label)
}
