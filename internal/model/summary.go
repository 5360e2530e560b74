package model

import "time"

// Totals is the fixed named-metric set computed over a record set with
// derived fields populated. ProfitabilityPct is volume-weighted:
// sum(clinic net income) / sum(total payment), not a mean of per-record
// percentages.
type Totals struct {
	TotalPayments     float64
	DoctorPayments    float64
	ReferrerPayments  float64
	Retentions        float64
	LabCosts          float64
	Expenses          float64
	InsurerSurcharges float64
	Costs             float64
	ClinicNetIncome   float64
	ProfitabilityPct  float64
	Procedures        int
	DistinctDoctors   int
}

// DoctorSummary is one row of the per-doctor ranking. MeanProfitabilityPct is
// the unweighted mean of per-record percentages: it answers how an average
// case for this doctor performs, not how much net income the doctor drove.
type DoctorSummary struct {
	Doctor               string
	DoctorPayments       float64
	Retentions           float64
	MeanProfitabilityPct float64
	ClinicNetIncome      float64
	Procedures           int
	PerProcedure         float64
}

// ReferrerSummary is one row of the per-referring-doctor ranking, restricted
// to records that are both flagged as referred and carry a positive referrer
// payment.
type ReferrerSummary struct {
	Referrer         string
	ReferrerPayments float64
	ReferredTotal    float64
	Patients         int
	PercentagePaid   float64
}

// StatementGroup is one detail line of the printable statement: all filtered
// records for a (patient, procedure) pair collapsed into summed figures. Lab
// and expense figures are the raw sheet costs, not the pay-mode deductions.
type StatementGroup struct {
	Patient      string
	Procedure    string
	TotalPayment float64
	LabCost      float64
	Expenses     float64
	Retention    float64
	FinalPayout  float64
}

// Statement is the structured aggregate handed to the rendering collaborator:
// detail groups plus a single grand-total row over the whole filtered set.
type Statement struct {
	Doctor string
	From   time.Time
	To     time.Time
	Groups []StatementGroup
	Total  StatementGroup
}

// Empty reports whether the filtered set had no records, i.e. there is
// nothing to render.
func (s *Statement) Empty() bool {
	return len(s.Groups) == 0
}

// RunSummary captures metrics from a single warehouse load run.
type RunSummary struct {
	SourceFile       string
	FileSHA256       string
	RunID            string
	RowsRead         int64
	RowsEvaluated    int64
	RowsDefaulted    int64
	RowsCopied       int64
	DurationRead     time.Duration
	DurationEvaluate time.Duration
	DurationCopy     time.Duration
	DurationTotal    time.Duration
}
