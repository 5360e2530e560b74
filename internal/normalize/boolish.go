package normalize

import "strings"

// Tristate is the result of parsing a free-text yes/no sheet field.
type Tristate int

const (
	Unknown Tristate = iota
	False
	True
)

// The clinic sheet is filled in by hand, so yes/no answers arrive as Spanish
// or English tokens in any casing. Matching is whole-string against the
// trimmed, lowercased input; substrings never match ("sin seguro" is not a
// yes).
var trueTokens = map[string]struct{}{
	"si":   {},
	"sí":   {},
	"yes":  {},
	"true": {},
	"1":    {},
}

var falseTokens = map[string]struct{}{
	"no":    {},
	"false": {},
	"0":     {},
}

// Boolish parses a free-text yes/no field into a Tristate. Anything outside
// the known token sets, including empty input, is Unknown.
func Boolish(s string) Tristate {
	s = strings.ToLower(strings.TrimSpace(s))
	if _, ok := trueTokens[s]; ok {
		return True
	}
	if _, ok := falseTokens[s]; ok {
		return False
	}
	return Unknown
}

// IsTrue collapses the tristate for rule evaluation, where an unknown answer
// is treated as no.
func (t Tristate) IsTrue() bool {
	return t == True
}

func (t Tristate) String() string {
	switch t {
	case True:
		return "true"
	case False:
		return "false"
	default:
		return "unknown"
	}
}
