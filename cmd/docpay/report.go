package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Yehissonpenalo/Dashboardpadilla/internal/exitcode"
	"github.com/Yehissonpenalo/Dashboardpadilla/internal/logging"
	"github.com/Yehissonpenalo/Dashboardpadilla/internal/settle"
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Print totals plus doctor and referrer rankings",
	RunE:  runReport,
}

func init() {
	f := reportCmd.Flags()
	f.StringVar(&cfg.FilePath, "file", "", "Path to sheet export, .csv or .parquet (required)")
	f.StringVar(&cfg.From, "from", "", "Inclusive start date (default: earliest record)")
	f.StringVar(&cfg.To, "to", "", "Inclusive end date (default: latest record)")
	f.IntVar(&cfg.Workers, "workers", 0, "Evaluation workers (default: number of CPUs)")
	_ = reportCmd.MarkFlagRequired("file")
	rootCmd.AddCommand(reportCmd)
}

func runReport(cmd *cobra.Command, args []string) error {
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
	totals := settle.Totals(filtered)

	fmt.Printf("=== Payment report %s .. %s ===\n\n", from.Format("2006-01-02"), to.Format("2006-01-02"))
	fmt.Printf("Procedures:        %d (%d doctors)\n", totals.Procedures, totals.DistinctDoctors)
	fmt.Printf("Patient payments:  %12.2f\n", totals.TotalPayments)
	fmt.Printf("Doctor payouts:    %12.2f\n", totals.DoctorPayments)
	fmt.Printf("Referrer payouts:  %12.2f\n", totals.ReferrerPayments)
	fmt.Printf("Retentions:        %12.2f\n", totals.Retentions)
	fmt.Printf("Lab costs:         %12.2f\n", totals.LabCosts)
	fmt.Printf("Expenses:          %12.2f\n", totals.Expenses)
	fmt.Printf("Insurer surcharge: %12.2f\n", totals.InsurerSurcharges)
	fmt.Printf("Total costs:       %12.2f\n", totals.Costs)
	fmt.Printf("Clinic net income: %12.2f\n", totals.ClinicNetIncome)
	fmt.Printf("Profitability:     %11.2f%% (weighted)\n", totals.ProfitabilityPct)

	doctors := settle.ByDoctor(filtered)
	if len(doctors) > 0 {
		fmt.Printf("\n%-28s %12s %10s %8s %6s %12s\n",
			"Doctor", "To pay", "Retained", "Avg %", "N", "Per proc")
		for _, d := range doctors {
			fmt.Printf("%-28s %12.2f %10.2f %7.2f%% %6d %12.2f\n",
				d.Doctor, d.DoctorPayments, d.Retentions, d.MeanProfitabilityPct, d.Procedures, d.PerProcedure)
		}
	}

	referrers := settle.ByReferrer(filtered, snap.HasReferrer)
	if len(referrers) > 0 {
		fmt.Printf("\n%-28s %12s %14s %6s %8s\n",
			"Referring doctor", "To pay", "Referred total", "N", "Paid %")
		for _, r := range referrers {
			fmt.Printf("%-28s %12.2f %14.2f %6d %7.2f%%\n",
				r.Referrer, r.ReferrerPayments, r.ReferredTotal, r.Patients, r.PercentagePaid)
		}
	} else if snap.HasReferrer {
		fmt.Println("\nNo referred records in range.")
	}

	return nil
}
