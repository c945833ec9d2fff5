package validation

import (
	"regexp"
	"strings"
)

// Character limits enforced on catalog entities. These are the single source
// of truth shared with any client-side pre-validation layer.
const (
	CategoryIDLimit          = 50
	CategoryNameLimit        = 100
	CategoryDescriptionLimit = 500
	ProductIDLimit           = 50
	ProductNameLimit         = 100
	ProductDescriptionLimit  = 1000
	ProductFeaturesLimit     = 2000
)

// IDPattern is the allowed shape for entity IDs: lowercase letters, digits,
// underscores, and dashes only.
var IDPattern = regexp.MustCompile(`^[a-z0-9_-]+$`)

// CleanID trims surrounding whitespace and lowercases an ID so user input
// can be normalized before format checking.
func CleanID(id string) string {
	return strings.ToLower(strings.TrimSpace(id))
}

// IsValidIDFormat reports whether an ID matches IDPattern after cleaning.
// An empty ID is format-valid: emptiness is a REQUIRED concern, not a
// format one.
func IsValidIDFormat(id string) bool {
	if id == "" {
		return true
	}
	return IDPattern.MatchString(CleanID(id))
}
