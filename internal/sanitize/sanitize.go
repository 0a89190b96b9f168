// Package sanitize scrubs visitor-typed text before it is stored or sent on.
package sanitize

import (
	"regexp"
	"strings"
)

var (
	angleBrackets = regexp.MustCompile(`[<>]`)
	jsProtocol    = regexp.MustCompile(`(?i)javascript:`)
	eventHandler  = regexp.MustCompile(`(?i)on\w+=`)
)

// Text strips angle brackets, javascript: URLs and inline event handler
// attributes, then trims. It is a small denylist and not an HTML escaper.
func Text(text string) string {
	text = angleBrackets.ReplaceAllString(text, "")
	text = jsProtocol.ReplaceAllString(text, "")
	text = eventHandler.ReplaceAllString(text, "")
	return strings.TrimSpace(text)
}
