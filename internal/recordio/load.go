package recordio

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/Yehissonpenalo/Dashboardpadilla/internal/model"
	"github.com/Yehissonpenalo/Dashboardpadilla/internal/normalize"
)

// Load reads a sheet export (.csv or .parquet, by extension) into a
// Snapshot: the normalized records plus the detected dataset shape, tagged
// with a fresh run id and the file's SHA-256.
func Load(log zerolog.Logger, path string, referrerCandidates []string) (*model.Snapshot, error) {
	start := time.Now()

	sha, err := normalize.FileHash(path)
	if err != nil {
		return nil, err
	}

	var (
		records     []model.BillingRecord
		hasDates    bool
		referrerCol string
	)

	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		recs, layout, err := readCSV(log, path, referrerCandidates)
		if err != nil {
			return nil, err
		}
		records = recs
		hasDates = layout.hasDates()
		referrerCol = layout.referrerCol
	case ".parquet":
		recs, layout, err := readParquet(path, referrerCandidates)
		if err != nil {
			return nil, err
		}
		records = recs
		hasDates = layout.hasDates
		referrerCol = layout.referrerCol
	default:
		return nil, fmt.Errorf("unsupported file type %q: expected .csv or .parquet", filepath.Ext(path))
	}

	snap := &model.Snapshot{
		Records:        records,
		HasDates:       hasDates,
		HasReferrer:    referrerCol != "",
		ReferrerColumn: referrerCol,
		SourceFile:     path,
		FileSHA256:     sha,
		RunID:          uuid.New(),
		LoadedAt:       time.Now(),
	}

	log.Info().
		Str("file", path).
		Int("rows", len(records)).
		Bool("has_dates", snap.HasDates).
		Str("referrer_column", referrerCol).
		Str("duration", time.Since(start).String()).
		Msg("snapshot loaded")

	return snap, nil
}
