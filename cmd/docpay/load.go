package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Yehissonpenalo/Dashboardpadilla/internal/exitcode"
	"github.com/Yehissonpenalo/Dashboardpadilla/internal/logging"
	"github.com/Yehissonpenalo/Dashboardpadilla/internal/store"
)

var loadCmd = &cobra.Command{
	Use:   "load",
	Short: "Settle a sheet export and load it into the warehouse",
	RunE:  runLoad,
}

func init() {
	f := loadCmd.Flags()
	f.StringVar(&cfg.FilePath, "file", "", "Path to sheet export, .csv or .parquet (required)")
	f.BoolVar(&cfg.Activate, "activate", false, "Mark this run as the active one for its source file")
	f.BoolVar(&cfg.Force, "force", false, "Re-load even if the file SHA already exists")
	f.IntVar(&cfg.Workers, "workers", 0, "Evaluation workers (default: number of CPUs)")
	_ = loadCmd.MarkFlagRequired("file")
	rootCmd.AddCommand(loadCmd)
}

func runLoad(cmd *cobra.Command, args []string) error {
	log := logging.Setup(cfg.LogFormat)
	ctx := context.Background()

	if err := cfg.ValidateWithDSN(); err != nil {
		log.Error().Err(err).Msg("config validation failed")
		os.Exit(exitcode.UsageError)
	}

	pool, err := store.NewPool(ctx, cfg.DSN)
	if err != nil {
		log.Error().Err(err).Msg("database connection failed")
		os.Exit(exitcode.DBConnError)
	}
	defer pool.Close()

	summary, err := store.Run(ctx, pool, log, &cfg)
	if err != nil {
		if pe, ok := err.(*store.PipelineError); ok {
			log.Error().Err(pe.Err).Str("phase", pe.Phase).Msg("load failed")
			switch pe.Phase {
			case "read", "preflight":
				os.Exit(exitcode.ValidationError)
			case "copy":
				os.Exit(exitcode.CopyError)
			default:
				os.Exit(exitcode.ComputeError)
			}
		}
		log.Error().Err(err).Msg("load failed")
		os.Exit(exitcode.ComputeError)
	}

	fmt.Printf("Load complete: %d rows read, %d settlements loaded (%.1fs)\n",
		summary.RowsRead, summary.RowsCopied, summary.DurationTotal.Seconds())
	return nil
}
