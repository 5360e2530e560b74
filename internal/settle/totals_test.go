package settle

import (
	"testing"

	"github.com/Yehissonpenalo/Dashboardpadilla/internal/model"
)

func enrichAll(t *testing.T, recs []model.BillingRecord) []model.EnrichedRecord {
	t.Helper()
	out := make([]model.EnrichedRecord, len(recs))
	for i := range recs {
		out[i], _ = Enrich(recs[i])
	}
	return out
}

func TestTotals(t *testing.T) {
	enriched := enrichAll(t, []model.BillingRecord{
		{Doctor: "Dra. Gomez", InsurancePayment: 100, LabCost: 10, Expenses: 5, PaysByPercentage: "si", PayPercent: "50"},
		{Doctor: "Dr. Santos", PrivatePayment: 200, TariffAmount: 80, PaysByPercentage: "no"},
		{Doctor: "Dra. Gomez", PrivatePayment: 50, Referred: "si", TariffAmount: 20},
	})

	totals := Totals(enriched)
	if totals.Procedures != 3 {
		t.Errorf("Procedures = %d, want 3", totals.Procedures)
	}
	if totals.DistinctDoctors != 2 {
		t.Errorf("DistinctDoctors = %d, want 2", totals.DistinctDoctors)
	}
	if !approx(totals.TotalPayments, 350) {
		t.Errorf("TotalPayments = %v, want 350", totals.TotalPayments)
	}

	var doctorSum, netSum float64
	for _, r := range enriched {
		doctorSum += r.DoctorPayment
		netSum += r.ClinicNetIncome
	}
	if !approx(totals.DoctorPayments, doctorSum) {
		t.Errorf("DoctorPayments = %v, want %v", totals.DoctorPayments, doctorSum)
	}
	if !approx(totals.ProfitabilityPct, netSum/350*100) {
		t.Errorf("ProfitabilityPct = %v, want %v", totals.ProfitabilityPct, netSum/350*100)
	}
	// Lab and expense totals come from the raw sheet costs.
	if !approx(totals.LabCosts, 10) || !approx(totals.Expenses, 5) {
		t.Errorf("LabCosts/Expenses = (%v, %v), want (10, 5)", totals.LabCosts, totals.Expenses)
	}
}

// The weighted total and the mean of per-record percentages answer different
// questions and must diverge on volume-skewed data.
func TestTotalsWeightedNotMean(t *testing.T) {
	enriched := enrichAll(t, []model.BillingRecord{
		// tiny transaction, very profitable for the clinic
		{Doctor: "A", PrivatePayment: 10, TariffAmount: 1, PaysByPercentage: "no"},
		// huge transaction, doctor takes 90%
		{Doctor: "A", PrivatePayment: 10000, PaysByPercentage: "si", PayPercent: "90"},
	})

	totals := Totals(enriched)

	var meanPct float64
	for _, r := range enriched {
		meanPct += r.ProfitabilityPct
	}
	meanPct /= float64(len(enriched))

	var netSum, paySum float64
	for _, r := range enriched {
		netSum += r.ClinicNetIncome
		paySum += r.TotalPayment
	}
	wantWeighted := netSum / paySum * 100

	if !approx(totals.ProfitabilityPct, wantWeighted) {
		t.Errorf("weighted profitability = %v, want %v", totals.ProfitabilityPct, wantWeighted)
	}
	if approx(totals.ProfitabilityPct, meanPct) {
		t.Errorf("weighted profitability %v should diverge from mean %v on skewed data",
			totals.ProfitabilityPct, meanPct)
	}
}

func TestTotalsZeroDenominator(t *testing.T) {
	enriched := enrichAll(t, []model.BillingRecord{
		{Doctor: "A", TariffAmount: 100, PaysByPercentage: "no"},
	})

	totals := Totals(enriched)
	if totals.ProfitabilityPct != 0 {
		t.Errorf("ProfitabilityPct = %v, want exactly 0 with no payments", totals.ProfitabilityPct)
	}

	empty := Totals(nil)
	if empty.Procedures != 0 || empty.ProfitabilityPct != 0 {
		t.Errorf("empty set: %+v, want zero totals", empty)
	}
}
