package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Yehissonpenalo/Dashboardpadilla/internal/config"
	"github.com/Yehissonpenalo/Dashboardpadilla/internal/exitcode"
)

var cfg config.Config
var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "docpay",
	Short: "Clinic doctor-payment settlement engine",
	Long: "Computes how much each billing record owes the treating doctor, the referring doctor " +
		"and the clinic, and turns the results into totals, rankings, printable statements, CSV " +
		"exports and Postgres warehouse loads.",
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&cfg.DSN, "dsn", os.Getenv("DATABASE_URL"), "Postgres connection string (or set DATABASE_URL)")
	pf.StringVar(&cfg.LogFormat, "log-format", "text", "Log format: text or json")
	pf.StringVar(&cfgFile, "config", "", "Path to YAML config file")
}

func main() {
	cobra.OnInitialize(func() {
		if cfgFile == "" {
			return
		}
		if err := cfg.LoadFromFile(cfgFile); err != nil {
			fmt.Fprintf(os.Stderr, "config: %v\n", err)
			os.Exit(exitcode.UsageError)
		}
	})

	if err := rootCmd.Execute(); err != nil {
		os.Exit(exitcode.UsageError)
	}
}
