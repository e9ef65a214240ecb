package utils

import (
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

// strict policy strips all HTML; quotation fields are plain text.
var sanitizePolicy = bluemonday.StrictPolicy()

// SanitizeText removes any HTML markup from free-text input and trims
// surrounding whitespace. Applied to every customer-supplied text field
// before it reaches storage.
func SanitizeText(s string) string {
	return strings.TrimSpace(sanitizePolicy.Sanitize(s))
}
