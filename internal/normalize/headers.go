package normalize

import (
	"regexp"
	"strings"
)

var multiSpace = regexp.MustCompile(`\s+`)

// Header normalizes a sheet column header: trims, lowercases, and collapses
// whitespace runs into single underscores, so "Pago por Seguro " becomes
// "pago_por_seguro".
func Header(s string) string {
	s = strings.TrimSpace(s)
	s = strings.ToLower(s)
	s = multiSpace.ReplaceAllString(s, "_")
	return s
}

// Name lowercases, collapses whitespace, and trims the input. Used for
// fuzzy header matching when detecting the referring-doctor column.
func Name(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}
	s = strings.ToLower(s)
	return multiSpace.ReplaceAllString(s, " ")
}
