// Package settle implements the clinic's payment settlement rules: the
// per-record rule evaluator plus the aggregation, summary, filtering, and
// statement logic built on top of it.
package settle

import (
	"strings"

	"github.com/Yehissonpenalo/Dashboardpadilla/internal/model"
	"github.com/Yehissonpenalo/Dashboardpadilla/internal/normalize"
)

// Fixed business rates. The 10% rate is applied to three different bases on
// purpose: surcharge and referrer payment come off the total patient payment,
// retention comes off the doctor's post-deduction amount. This asymmetry is
// the stated business rule, not something to consolidate.
const (
	insurerSurchargeRate = 0.10
	referrerRate         = 0.10
	retentionRate        = 0.10
	defaultPayRate       = 0.5
)

// FieldIssue reports one malformed raw field that was substituted with its
// documented default. Issues never abort evaluation of the record.
type FieldIssue struct {
	Field  string
	Value  string
	Reason string
}

// Evaluate computes the full derived-fields block for one record. Pure
// function of the record's raw fields: no I/O, no cross-record state, and
// re-running it yields identical output.
func Evaluate(rec *model.BillingRecord) (model.Derived, []FieldIssue) {
	var d model.Derived
	var issues []FieldIssue

	d.TotalPayment = rec.InsurancePayment + rec.PrivatePayment

	// Flat surcharge whenever any part of the payment came through an
	// insurer, taken from the total, not just the insured portion.
	if rec.InsurancePayment > 0 {
		d.InsurerSurcharge = d.TotalPayment * insurerSurchargeRate
	}

	if normalize.Boolish(rec.Referred).IsTrue() {
		d.ReferrerPayment = d.TotalPayment * referrerRate
	}

	if normalize.Boolish(rec.PaysByPercentage).IsTrue() {
		rate := defaultPayRate
		if strings.TrimSpace(rec.PayPercent) != "" {
			if pct, ok := normalize.Percent(rec.PayPercent); ok {
				rate = pct / 100
			} else {
				issues = append(issues, FieldIssue{
					Field:  model.ColPayPercent,
					Value:  rec.PayPercent,
					Reason: "unparseable percentage, defaulted to 50%",
				})
			}
		}

		// Percentage mode: lab, expenses and the surcharge all come out
		// of the doctor's gross share, floored at zero.
		gross := d.TotalPayment * rate
		pre := gross - rec.LabCost - rec.Expenses - d.InsurerSurcharge
		if pre < 0 {
			pre = 0
		}
		d.Retention = pre * retentionRate
		d.DoctorPayment = pre - d.Retention
		d.LabDeduction = rec.LabCost
		d.ExpenseDeduction = rec.Expenses
	} else {
		// Tariff mode: the doctor gets the schedule amount less the
		// surcharge. Lab and expense costs are not deducted in this mode.
		pre := rec.TariffAmount - d.InsurerSurcharge
		if pre < 0 {
			pre = 0
		}
		d.Retention = pre * retentionRate
		d.DoctorPayment = pre - d.Retention
	}

	d.Costs = d.Retention + d.LabDeduction + d.ExpenseDeduction + d.InsurerSurcharge
	d.ClinicNetIncome = d.TotalPayment - (d.DoctorPayment + d.Costs + d.ReferrerPayment)
	if d.TotalPayment > 0 {
		d.ProfitabilityPct = d.ClinicNetIncome / d.TotalPayment * 100
	}
	d.FinalPayout = d.DoctorPayment

	return d, issues
}

// Enrich evaluates one record and returns it paired with its derived fields.
func Enrich(rec model.BillingRecord) (model.EnrichedRecord, []FieldIssue) {
	derived, issues := Evaluate(&rec)
	return model.EnrichedRecord{BillingRecord: rec, Derived: derived}, issues
}
