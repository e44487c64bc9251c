package bypass

import (
	"regexp"
	"strings"
)

var (
	htmlTagRegexp    = regexp.MustCompile(`<[^>]*>`)
	markupCharRegexp = regexp.MustCompile("[*_~`#>\\[\\]()|]")
	whitespaceRegexp = regexp.MustCompile(`\s+`)
)

// SanitizeReason strips all markup from a free-text bypass reason before it
// lands in an audit event. Only plain text survives.
func SanitizeReason(reason string) string {
	res := htmlTagRegexp.ReplaceAllString(reason, "")
	res = markupCharRegexp.ReplaceAllString(res, "")
	res = whitespaceRegexp.ReplaceAllString(res, " ")
	return strings.TrimSpace(res)
}
