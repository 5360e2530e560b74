package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Yehissonpenalo/Dashboardpadilla/internal/exitcode"
	"github.com/Yehissonpenalo/Dashboardpadilla/internal/logging"
	"github.com/Yehissonpenalo/Dashboardpadilla/internal/settle"
)

var planCmd = &cobra.Command{
	Use:   "plan",
	Short: "Dry-run validation and stats (no writes)",
	RunE:  runPlan,
}

func init() {
	planCmd.Flags().StringVar(&cfg.FilePath, "file", "", "Path to sheet export, .csv or .parquet (required)")
	_ = planCmd.MarkFlagRequired("file")
	rootCmd.AddCommand(planCmd)
}

func runPlan(cmd *cobra.Command, args []string) error {
	log := logging.Setup(cfg.LogFormat)

	if err := cfg.Validate(); err != nil {
		log.Error().Err(err).Msg("config validation failed")
		os.Exit(exitcode.UsageError)
	}

	snap, enriched, batch, err := loadEnriched(log)
	if err != nil {
		log.Error().Err(err).Msg("failed to load sheet export")
		os.Exit(exitcode.ValidationError)
	}

	stat, err := os.Stat(cfg.FilePath)
	if err != nil {
		log.Error().Err(err).Msg("failed to stat file")
		os.Exit(exitcode.ValidationError)
	}

	totals := settle.Totals(enriched)
	minDate, maxDate := snap.DateBounds()

	referrerCol := snap.ReferrerColumn
	if referrerCol == "" {
		referrerCol = "(none detected)"
	}

	fmt.Println("=== docpay plan ===")
	fmt.Printf("File:            %s\n", cfg.FilePath)
	fmt.Printf("SHA-256:         %s\n", snap.FileSHA256)
	fmt.Printf("Size:            %d bytes\n", stat.Size())
	fmt.Printf("Records:         %d\n", len(snap.Records))
	fmt.Printf("Doctors:         %d\n", totals.DistinctDoctors)
	fmt.Printf("Date column:     %v\n", snap.HasDates)
	if snap.HasDates {
		fmt.Printf("Date range:      %s .. %s\n", minDate.Format("2006-01-02"), maxDate.Format("2006-01-02"))
	}
	fmt.Printf("Referrer column: %s\n", referrerCol)
	fmt.Printf("Defaulted rows:  %d\n", batch.RowsDefaulted)
	fmt.Println()
	fmt.Printf("Total payments:  %12.2f\n", totals.TotalPayments)
	fmt.Printf("Doctor payouts:  %12.2f\n", totals.DoctorPayments)
	fmt.Printf("Clinic income:   %12.2f (%.2f%% weighted)\n", totals.ClinicNetIncome, totals.ProfitabilityPct)
	fmt.Println("Schema validation: OK")

	return nil
}
