package store

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	"github.com/Yehissonpenalo/Dashboardpadilla/internal/config"
	"github.com/Yehissonpenalo/Dashboardpadilla/internal/model"
	"github.com/Yehissonpenalo/Dashboardpadilla/internal/recordio"
	"github.com/Yehissonpenalo/Dashboardpadilla/internal/settle"
	embedsql "github.com/Yehissonpenalo/Dashboardpadilla/internal/sql"
)

const copyBatchSize = 1024

// PipelineError wraps an error with the phase where it occurred.
type PipelineError struct {
	Phase string
	Err   error
}

func (e *PipelineError) Error() string {
	return fmt.Sprintf("%s: %s", e.Phase, e.Err)
}

func (e *PipelineError) Unwrap() error {
	return e.Err
}

// Run executes the full warehouse load: read → preflight → evaluate → copy →
// finalize.
func Run(ctx context.Context, pool *pgxpool.Pool, log zerolog.Logger, cfg *config.Config) (*model.RunSummary, error) {
	totalStart := time.Now()

	// Phase 1: read the sheet export into a snapshot.
	readStart := time.Now()
	snap, err := recordio.Load(log, cfg.FilePath, cfg.ReferrerColumns)
	if err != nil {
		return nil, &PipelineError{Phase: "read", Err: err}
	}
	readDur := time.Since(readStart)

	summary := &model.RunSummary{
		SourceFile:   snap.SourceFile,
		FileSHA256:   snap.FileSHA256,
		RunID:        snap.RunID.String(),
		RowsRead:     int64(len(snap.Records)),
		DurationRead: readDur,
	}

	// Phase 2: preflight against pay.runs.
	pf, err := Preflight(ctx, pool, log, snap, cfg.Force)
	if err != nil {
		return nil, &PipelineError{Phase: "preflight", Err: err}
	}
	if pf.AlreadyLoaded {
		log.Info().
			Str("run_id", pf.ExistingRunID.String()).
			Str("sha256", snap.FileSHA256).
			Msg("file already loaded, skipping (use --force to re-load)")
		summary.RunID = pf.ExistingRunID.String()
		summary.DurationTotal = time.Since(totalStart)
		return summary, nil
	}

	// Phase 3: evaluate settlement rules.
	enriched, batch := settle.EvaluateAll(log, snap.Records, cfg.Workers)
	summary.RowsEvaluated = batch.RowsEvaluated
	summary.RowsDefaulted = batch.RowsDefaulted
	summary.DurationEvaluate = batch.Duration

	// Phase 4: COPY settlements.
	copied, copyDur, err := copySettlements(ctx, pool, snap, enriched)
	if err != nil {
		_, _ = pool.Exec(ctx, embedsql.FinishRun, snap.RunID, "failed", int64(0), batch.RowsDefaulted)
		return nil, &PipelineError{Phase: "copy", Err: err}
	}
	summary.RowsCopied = copied
	summary.DurationCopy = copyDur

	log.Info().
		Int64("rows_copied", copied).
		Str("duration", copyDur.String()).
		Float64("rows_per_sec", float64(copied)/copyDur.Seconds()).
		Msg("copy complete")

	// Phase 5: finalize run bookkeeping.
	if _, err := pool.Exec(ctx, embedsql.FinishRun, snap.RunID, "loaded", copied, batch.RowsDefaulted); err != nil {
		return nil, &PipelineError{Phase: "finalize", Err: err}
	}
	if cfg.Activate {
		if _, err := pool.Exec(ctx, embedsql.ActivateRun, snap.RunID); err != nil {
			return nil, &PipelineError{Phase: "finalize", Err: err}
		}
		log.Info().Str("run_id", snap.RunID.String()).Msg("run activated")
	}

	summary.DurationTotal = time.Since(totalStart)
	log.Info().
		Int64("rows_read", summary.RowsRead).
		Int64("rows_copied", summary.RowsCopied).
		Int64("rows_defaulted", summary.RowsDefaulted).
		Str("total_duration", summary.DurationTotal.String()).
		Msg("load pipeline complete")

	return summary, nil
}

// copySettlements streams enriched records through a channel-backed
// CopyFromSource into pay.settlements.
func copySettlements(ctx context.Context, pool *pgxpool.Pool, snap *model.Snapshot, enriched []model.EnrichedRecord) (int64, time.Duration, error) {
	start := time.Now()

	ch := make(chan *model.SettlementRow, copyBatchSize)
	go func() {
		defer close(ch)
		for i := range enriched {
			row := model.NewSettlementRow(snap.RunID, int64(i+1), &enriched[i])
			select {
			case ch <- row:
			case <-ctx.Done():
				return
			}
		}
	}()

	copied, err := pool.CopyFrom(ctx,
		pgx.Identifier{"pay", "settlements"},
		model.SettlementColumns(),
		NewChannelSource(ch),
	)
	if err != nil {
		return 0, 0, fmt.Errorf("copy settlements: %w", err)
	}
	return copied, time.Since(start), nil
}
