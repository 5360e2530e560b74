package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Yehissonpenalo/Dashboardpadilla/internal/exitcode"
	"github.com/Yehissonpenalo/Dashboardpadilla/internal/logging"
	"github.com/Yehissonpenalo/Dashboardpadilla/internal/settle"
)

var statementCmd = &cobra.Command{
	Use:   "statement",
	Short: "Print the payment statement for one doctor (or all)",
	RunE:  runStatement,
}

func init() {
	f := statementCmd.Flags()
	f.StringVar(&cfg.FilePath, "file", "", "Path to sheet export, .csv or .parquet (required)")
	f.StringVar(&cfg.Doctor, "doctor", settle.AllDoctors, "Paying doctor to report on, or \"all\"")
	f.StringVar(&cfg.From, "from", "", "Inclusive start date (default: earliest record)")
	f.StringVar(&cfg.To, "to", "", "Inclusive end date (default: latest record)")
	_ = statementCmd.MarkFlagRequired("file")
	rootCmd.AddCommand(statementCmd)
}

func runStatement(cmd *cobra.Command, args []string) error {
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
	st := settle.Statement(enriched, snap.HasDates, cfg.Doctor, from, to)
	if st.Empty() {
		fmt.Printf("No records for %q between %s and %s.\n",
			cfg.Doctor, from.Format("2006-01-02"), to.Format("2006-01-02"))
		return nil
	}

	fmt.Printf("=== Statement: %s (%s .. %s) ===\n\n",
		st.Doctor, from.Format("2006-01-02"), to.Format("2006-01-02"))
	fmt.Printf("%-24s %-28s %10s %8s %8s %9s %10s\n",
		"Patient", "Procedure", "Paid", "Lab", "Exp", "Retained", "Payout")
	for _, g := range st.Groups {
		fmt.Printf("%-24s %-28s %10.2f %8.2f %8.2f %9.2f %10.2f\n",
			g.Patient, g.Procedure, g.TotalPayment, g.LabCost, g.Expenses, g.Retention, g.FinalPayout)
	}
	fmt.Printf("\n%-53s %10.2f %8.2f %8.2f %9.2f %10.2f\n",
		"TOTAL", st.Total.TotalPayment, st.Total.LabCost, st.Total.Expenses, st.Total.Retention, st.Total.FinalPayout)

	return nil
}
