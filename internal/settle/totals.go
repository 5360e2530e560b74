package settle

import "github.com/Yehissonpenalo/Dashboardpadilla/internal/model"

// Totals sums the derived fields of a record set into the fixed named-metric
// set. Overall profitability is weighted by payment volume,
// sum(net income) / sum(total payment), so small and large transactions do
// not skew it the way a mean of per-record percentages would.
func Totals(records []model.EnrichedRecord) model.Totals {
	var t model.Totals
	doctors := make(map[string]struct{})

	for i := range records {
		r := &records[i]
		t.TotalPayments += r.TotalPayment
		t.DoctorPayments += r.DoctorPayment
		t.ReferrerPayments += r.ReferrerPayment
		t.Retentions += r.Retention
		t.LabCosts += r.LabCost
		t.Expenses += r.Expenses
		t.InsurerSurcharges += r.InsurerSurcharge
		t.Costs += r.Costs
		t.ClinicNetIncome += r.ClinicNetIncome
		if r.Doctor != "" {
			doctors[r.Doctor] = struct{}{}
		}
	}

	t.Procedures = len(records)
	t.DistinctDoctors = len(doctors)
	if t.TotalPayments > 0 {
		t.ProfitabilityPct = t.ClinicNetIncome / t.TotalPayments * 100
	}
	return t
}
