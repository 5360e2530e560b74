package model

import (
	"time"

	"github.com/google/uuid"
)

// SettlementRow is the warehouse-ready flattening of one enriched record,
// tagged with the load run it belongs to.
type SettlementRow struct {
	RunID     uuid.UUID
	RowNumber int64

	Patient   string
	Procedure string
	Date      *time.Time

	Doctor          string
	ReferringDoctor *string

	InsurancePayment float64
	PrivatePayment   float64
	LabCost          float64
	Expenses         float64
	TariffAmount     float64

	Referred         string
	PaysByPercentage string
	PayPercent       string

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

// NewSettlementRow flattens an enriched record for COPY into pay.settlements.
func NewSettlementRow(runID uuid.UUID, rowNum int64, rec *EnrichedRecord) *SettlementRow {
	var referrer *string
	if rec.ReferringDoctor != "" {
		r := rec.ReferringDoctor
		referrer = &r
	}
	return &SettlementRow{
		RunID:            runID,
		RowNumber:        rowNum,
		Patient:          rec.Patient,
		Procedure:        rec.Procedure,
		Date:             rec.Date,
		Doctor:           rec.Doctor,
		ReferringDoctor:  referrer,
		InsurancePayment: rec.InsurancePayment,
		PrivatePayment:   rec.PrivatePayment,
		LabCost:          rec.LabCost,
		Expenses:         rec.Expenses,
		TariffAmount:     rec.TariffAmount,
		Referred:         rec.Referred,
		PaysByPercentage: rec.PaysByPercentage,
		PayPercent:       rec.PayPercent,
		TotalPayment:     rec.TotalPayment,
		InsurerSurcharge: rec.InsurerSurcharge,
		ReferrerPayment:  rec.ReferrerPayment,
		DoctorPayment:    rec.DoctorPayment,
		Retention:        rec.Retention,
		LabDeduction:     rec.LabDeduction,
		ExpenseDeduction: rec.ExpenseDeduction,
		Costs:            rec.Costs,
		ClinicNetIncome:  rec.ClinicNetIncome,
		ProfitabilityPct: rec.ProfitabilityPct,
		FinalPayout:      rec.FinalPayout,
	}
}

// SettlementColumns returns the ordered column names for COPY into
// pay.settlements.
func SettlementColumns() []string {
	return []string{
		"run_id",
		"row_number",
		"paciente",
		"procedimiento",
		"fecha",
		"doctor_a_pagar",
		"doctor_referidor",
		"pago_por_seguro",
		"pago_privado",
		"laboratorio",
		"gastos",
		"monto_a_pagar_por_tarifario",
		"paciente_refido",
		"cobra_por_porcentaje",
		"pct_de_pago",
		"pago_total_paciente",
		"cargo_por_ars",
		"pago_referidor",
		"pago_doctor",
		"retencion",
		"descuento_lab",
		"descuento_gastos",
		"costes",
		"ingreso_clinica",
		"rentabilidad",
		"monto_final_pago",
	}
}

// CopyValues returns the row values in the same order as SettlementColumns(),
// suitable for pgx CopyFromSource.
func (r *SettlementRow) CopyValues() []any {
	return []any{
		r.RunID,
		r.RowNumber,
		r.Patient,
		r.Procedure,
		r.Date,
		r.Doctor,
		r.ReferringDoctor,
		r.InsurancePayment,
		r.PrivatePayment,
		r.LabCost,
		r.Expenses,
		r.TariffAmount,
		r.Referred,
		r.PaysByPercentage,
		r.PayPercent,
		r.TotalPayment,
		r.InsurerSurcharge,
		r.ReferrerPayment,
		r.DoctorPayment,
		r.Retention,
		r.LabDeduction,
		r.ExpenseDeduction,
		r.Costs,
		r.ClinicNetIncome,
		r.ProfitabilityPct,
		r.FinalPayout,
	}
}
