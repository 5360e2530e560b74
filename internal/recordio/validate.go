package recordio

import (
	"fmt"
	"strings"

	"github.com/Yehissonpenalo/Dashboardpadilla/internal/model"
)

// ValidateColumns checks that every required canonical column appears in the
// normalized header set. Optional columns may be absent; the features built
// on them degrade instead (no date column: filters are no-ops, no referrer
// column: referrer summaries come back empty).
func ValidateColumns(normalizedHeaders []string) error {
	present := make(map[string]bool)
	for _, h := range normalizedHeaders {
		if col, ok := model.ColumnByName(h); ok {
			present[col.Name] = true
		}
	}

	var missing []string
	for _, col := range model.RawColumns {
		if col.Required && !present[col.Name] {
			missing = append(missing, col.Name)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("missing required column(s): %s", strings.Join(missing, ", "))
	}

	// A sheet with no payment columns at all has nothing to settle.
	if !present[model.ColInsurancePayment] && !present[model.ColPrivatePayment] && !present[model.ColTariffAmount] {
		return fmt.Errorf("no payment columns found; need at least one of: %s, %s, %s",
			model.ColInsurancePayment, model.ColPrivatePayment, model.ColTariffAmount)
	}
	return nil
}

// DetectReferrerColumn scans normalized headers for the referring-doctor
// column. Clinic exports name it inconsistently, so candidates match as
// substrings, first hit wins. An empty candidate list falls back to the
// built-in set. Returns the matched header, its index, and whether anything
// matched.
func DetectReferrerColumn(normalizedHeaders, candidates []string) (string, int, bool) {
	if len(candidates) == 0 {
		candidates = model.ReferrerColumnCandidates
	}
	for i, h := range normalizedHeaders {
		for _, cand := range candidates {
			if strings.Contains(h, cand) {
				return h, i, true
			}
		}
	}
	return "", -1, false
}
