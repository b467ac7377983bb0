package openhours

import "strings"

// DefaultFormat renders times like 9:30am.
const DefaultFormat = "g:ia"

const formatTokens = "aABgGhHiseIOPTZ"

// FilterFormat strips every character that is not a time token, a separator
// in the ',' to ':' range, or whitespace.
func FilterFormat(format string) string {
	var b strings.Builder
	for _, r := range format {
		if allowedFormatRune(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}

func allowedFormatRune(r rune) bool {
	switch {
	case r >= ',' && r <= ':':
		return true
	case r == ' ', r == '\t', r == '\n', r == '\v', r == '\f', r == '\r':
		return true
	default:
		return strings.ContainsRune(formatTokens, r)
	}
}
