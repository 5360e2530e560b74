package normalize

import (
	"strconv"
	"strings"
)

// Money parses a currency cell as exported from the clinic sheet: "$1,250.00"
// style formatting is stripped before conversion. Returns ok=false for empty
// or unparseable input; callers substitute 0.
func Money(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	s = strings.ReplaceAll(s, "$", "")
	s = strings.ReplaceAll(s, ",", "")
	s = strings.ReplaceAll(s, " ", "")
	if s == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// Percent parses a pay-percentage cell such as "50", "50%" or "50.5 %" into
// a 0–100 value. Returns ok=false for empty or unparseable input; callers
// substitute the documented default.
func Percent(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	s = strings.TrimSuffix(s, "%")
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}
