package model

import "time"

// BillingRecord is one clinical transaction as supplied by a clinic sheet
// export, after upstream type coercion. Money fields arrive as float64 with
// absent values already collapsed to 0. Flag fields keep their raw sheet text:
// the sheet holds free-form Spanish yes/no answers that the engine parses
// itself, and the pay percentage may carry a "%" suffix or garbage.
type BillingRecord struct {
	Patient   string
	Procedure string
	Date      *time.Time

	Doctor          string
	ReferringDoctor string

	InsurancePayment float64
	PrivatePayment   float64
	LabCost          float64
	Expenses         float64
	TariffAmount     float64

	Referred         string
	PaysByPercentage string
	PayPercent       string
}

// Derived holds every monetary field the rule evaluator computes for one
// record. All fields are >= 0 except ClinicNetIncome, which goes negative
// when payouts and costs exceed what the patient paid.
type Derived struct {
	TotalPayment     float64
	InsurerSurcharge float64
	ReferrerPayment  float64
	DoctorPayment    float64
	Retention        float64
	LabDeduction     float64
	ExpenseDeduction float64
	Costs            float64
	ClinicNetIncome  float64
	ProfitabilityPct float64
	FinalPayout      float64
}

// EnrichedRecord pairs a raw record with its derived-fields block. The
// evaluator produces these as new values; raw records are never mutated.
type EnrichedRecord struct {
	BillingRecord
	Derived
}
