package settle

import (
	"runtime"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/Yehissonpenalo/Dashboardpadilla/internal/model"
)

// BatchResult holds metrics from evaluating one record set.
type BatchResult struct {
	RowsEvaluated int64
	RowsDefaulted int64
	Duration      time.Duration
}

// EvaluateAll enriches every record in the set. Evaluation has no
// cross-record state, so records are fanned out across workers; each result
// lands at the same index as its input, which keeps the output observably
// identical to a sequential pass. Field issues are logged after the fan-in so
// log order is deterministic.
func EvaluateAll(log zerolog.Logger, records []model.BillingRecord, workers int) ([]model.EnrichedRecord, *BatchResult) {
	start := time.Now()

	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	if workers > len(records) {
		workers = len(records)
	}
	if workers < 1 {
		workers = 1
	}

	enriched := make([]model.EnrichedRecord, len(records))
	issuesByRow := make([][]FieldIssue, len(records))

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			for i := w; i < len(records); i += workers {
				enriched[i], issuesByRow[i] = Enrich(records[i])
			}
		}(w)
	}
	wg.Wait()

	var defaulted int64
	for i, issues := range issuesByRow {
		for _, issue := range issues {
			defaulted++
			log.Warn().
				Int("row", i+1).
				Str("field", issue.Field).
				Str("value", issue.Value).
				Msg(issue.Reason)
		}
	}

	dur := time.Since(start)
	log.Info().
		Int("rows", len(records)).
		Int64("rows_defaulted", defaulted).
		Int("workers", workers).
		Str("duration", dur.String()).
		Msg("evaluation complete")

	return enriched, &BatchResult{
		RowsEvaluated: int64(len(records)),
		RowsDefaulted: defaulted,
		Duration:      dur,
	}
}
