package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Yehissonpenalo/Dashboardpadilla/internal/exitcode"
	"github.com/Yehissonpenalo/Dashboardpadilla/internal/logging"
	"github.com/Yehissonpenalo/Dashboardpadilla/internal/recordio"
	"github.com/Yehissonpenalo/Dashboardpadilla/internal/settle"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export enriched records as CSV",
	RunE:  runExport,
}

func init() {
	f := exportCmd.Flags()
	f.StringVar(&cfg.FilePath, "file", "", "Path to sheet export, .csv or .parquet (required)")
	f.StringVar(&cfg.OutPath, "out", "-", "Output path, \"-\" for stdout")
	f.StringVar(&cfg.From, "from", "", "Inclusive start date (default: earliest record)")
	f.StringVar(&cfg.To, "to", "", "Inclusive end date (default: latest record)")
	f.IntVar(&cfg.Workers, "workers", 0, "Evaluation workers (default: number of CPUs)")
	_ = exportCmd.MarkFlagRequired("file")
	rootCmd.AddCommand(exportCmd)
}

func runExport(cmd *cobra.Command, args []string) error {
	log := logging.Setup(cfg.LogFormat)

	if err := cfg.Validate(); err != nil {
		log.Error().Err(err).Msg("config validation failed")
		os.Exit(exitcode.UsageError)
	}

	snap, enriched, _, err := loadEnriched(log)
	if err != nil {
		log.Error().Err(err).Msg("failed to load sheet export")
		os.Exit(exitcode.ValidationError)
	}

	from, to := resolveRange(snap)
	filtered := settle.FilterByDate(enriched, snap.HasDates, from, to)

	if err := recordio.WriteEnrichedFile(cfg.OutPath, filtered); err != nil {
		log.Error().Err(err).Msg("export failed")
		os.Exit(exitcode.ComputeError)
	}

	if cfg.OutPath != "-" {
		fmt.Printf("Exported %d records to %s\n", len(filtered), cfg.OutPath)
	}
	return nil
}
