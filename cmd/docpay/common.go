package main

import (
	"time"

	"github.com/rs/zerolog"

	"github.com/Yehissonpenalo/Dashboardpadilla/internal/model"
	"github.com/Yehissonpenalo/Dashboardpadilla/internal/recordio"
	"github.com/Yehissonpenalo/Dashboardpadilla/internal/settle"
)

// loadEnriched reads the sheet export into a snapshot and evaluates every
// record's settlement rules.
func loadEnriched(log zerolog.Logger) (*model.Snapshot, []model.EnrichedRecord, *settle.BatchResult, error) {
	snap, err := recordio.Load(log, cfg.FilePath, cfg.ReferrerColumns)
	if err != nil {
		return nil, nil, nil, err
	}
	enriched, batch := settle.EvaluateAll(log, snap.Records, cfg.Workers)
	return snap, enriched, batch, nil
}

// resolveRange turns the --from/--to flags into a concrete interval, falling
// back to the snapshot's own date bounds for unset ends.
func resolveRange(snap *model.Snapshot) (time.Time, time.Time) {
	from, to, _ := cfg.DateRange() // validated earlier
	minDate, maxDate := snap.DateBounds()
	if from.IsZero() {
		from = minDate
	}
	if to.IsZero() {
		to = maxDate
	}
	return from, to
}
