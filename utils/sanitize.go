package utils

import "github.com/microcosm-cc/bluemonday"

var (
	contentPolicy = bluemonday.UGCPolicy()
	titlePolicy   = bluemonday.StrictPolicy()
)

// SanitizeContent cleans user-submitted HTML to prevent XSS, keeping common
// formatting tags.
func SanitizeContent(input string) string {
	return contentPolicy.Sanitize(input)
}

// SanitizeTitle strips all markup from single-line fields.
func SanitizeTitle(input string) string {
	return titlePolicy.Sanitize(input)
}
