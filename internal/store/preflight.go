package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	"github.com/Yehissonpenalo/Dashboardpadilla/internal/model"
	embedsql "github.com/Yehissonpenalo/Dashboardpadilla/internal/sql"
)

// PreflightResult reports whether the source file was already loaded and, if
// so, under which run.
type PreflightResult struct {
	AlreadyLoaded bool
	ExistingRunID uuid.UUID
}

// Preflight checks the snapshot's file hash against pay.runs. A previously
// loaded file short-circuits the pipeline unless force is set, in which case
// the old run and its settlements are dropped and the new run registered.
func Preflight(ctx context.Context, pool *pgxpool.Pool, log zerolog.Logger, snap *model.Snapshot, force bool) (*PreflightResult, error) {
	var existingID uuid.UUID
	var status string
	err := pool.QueryRow(ctx, embedsql.FindRunBySHA, snap.FileSHA256).Scan(&existingID, &status)
	switch {
	case err == nil:
		if !force {
			return &PreflightResult{AlreadyLoaded: true, ExistingRunID: existingID}, nil
		}
		log.Info().
			Str("run_id", existingID.String()).
			Str("status", status).
			Msg("dropping previous run for re-load")
		if _, err := pool.Exec(ctx, embedsql.DeleteRun, existingID); err != nil {
			return nil, fmt.Errorf("delete previous run: %w", err)
		}
	case errors.Is(err, pgx.ErrNoRows):
		// first load of this file
	default:
		return nil, fmt.Errorf("look up run by sha: %w", err)
	}

	if _, err := pool.Exec(ctx, embedsql.RegisterRun, snap.RunID, snap.SourceFile, snap.FileSHA256); err != nil {
		return nil, fmt.Errorf("register run: %w", err)
	}

	log.Info().
		Str("run_id", snap.RunID.String()).
		Str("sha256", snap.FileSHA256).
		Msg("run registered")

	return &PreflightResult{}, nil
}
