package normalize

import (
	"github.com/Yehissonpenalo/Dashboardpadilla/internal/model"
)

// ToBillingRecord converts a Parquet-read SheetRow into a normalized
// BillingRecord: missing money values collapse to 0, the date string is
// parsed, and flag fields keep their raw text for the rule evaluator.
func ToBillingRecord(row *model.SheetRow) model.BillingRecord {
	return model.BillingRecord{
		Patient:   row.Patient,
		Procedure: row.Procedure,
		Date:      ParseDate(row.Date),

		Doctor:          row.Doctor,
		ReferringDoctor: derefStr(row.ReferringDoctor),

		InsurancePayment: derefFloat(row.InsurancePayment),
		PrivatePayment:   derefFloat(row.PrivatePayment),
		LabCost:          derefFloat(row.LabCost),
		Expenses:         derefFloat(row.Expenses),
		TariffAmount:     derefFloat(row.TariffAmount),

		Referred:         derefStr(row.Referred),
		PaysByPercentage: derefStr(row.PaysByPercentage),
		PayPercent:       derefStr(row.PayPercent),
	}
}

func derefStr(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func derefFloat(v *float64) float64 {
	if v == nil {
		return 0
	}
	return *v
}
