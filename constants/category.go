package constants

import (
	"strings"
)

// Category is the canonical usage classification for an extracted receipt.
type Category string

const (
	Meetings      Category = "会議費"
	Transport     Category = "交通費"
	Meals         Category = "飲食代"
	Training      Category = "研修費"
	Supplies      Category = "消耗品費"
	Entertainment Category = "接待交際費"
	Miscellaneous Category = "雑費"
)

var allCategories = []Category{
	Meetings,
	Transport,
	Meals,
	Training,
	Supplies,
	Entertainment,
	Miscellaneous,
}

// FallbackCategory is the classification used when no keyword or
// business-type signal resolves. Usage extraction never returns empty.
const FallbackCategory = Miscellaneous

func AsStringSlice() []string {
	result := make([]string, len(allCategories))
	for i, cat := range allCategories {
		result[i] = string(cat)
	}
	return result
}

// Canonicalize maps free-form category text onto the fixed table.
// Unknown input resolves to Miscellaneous with ok=false.
func Canonicalize(input string) (Category, bool) {
	normalized := strings.TrimSpace(input)
	if normalized == "" {
		return Miscellaneous, false
	}
	for _, cat := range allCategories {
		if normalized == string(cat) {
			return cat, true
		}
	}
	return Miscellaneous, false
}
