package recordio

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/Yehissonpenalo/Dashboardpadilla/internal/model"
)

// WriteEnriched serializes enriched records as CSV with the stable column
// identifiers from model.ExportColumns(). Downstream export and printing
// collaborators key on these exact names.
func WriteEnriched(w io.Writer, records []model.EnrichedRecord) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(model.ExportColumns()); err != nil {
		return fmt.Errorf("write export header: %w", err)
	}

	for i := range records {
		r := &records[i]

		date := ""
		if r.Date != nil {
			date = r.Date.Format("2006-01-02")
		}

		row := []string{
			r.Patient,
			r.Procedure,
			date,
			r.Doctor,
			r.ReferringDoctor,
			amount(r.InsurancePayment),
			amount(r.PrivatePayment),
			amount(r.LabCost),
			amount(r.Expenses),
			amount(r.TariffAmount),
			r.Referred,
			r.PaysByPercentage,
			r.PayPercent,
			amount(r.TotalPayment),
			amount(r.InsurerSurcharge),
			amount(r.ReferrerPayment),
			amount(r.DoctorPayment),
			amount(r.Retention),
			amount(r.LabDeduction),
			amount(r.ExpenseDeduction),
			amount(r.Costs),
			amount(r.ClinicNetIncome),
			amount(r.ProfitabilityPct),
			amount(r.FinalPayout),
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("write export row %d: %w", i+1, err)
		}
	}

	cw.Flush()
	return cw.Error()
}

// WriteEnrichedFile writes the enriched-record CSV to a file path, or stdout
// when path is "-".
func WriteEnrichedFile(path string, records []model.EnrichedRecord) error {
	if path == "-" {
		return WriteEnriched(os.Stdout, records)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create export file: %w", err)
	}
	if err := WriteEnriched(f, records); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func amount(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}
