package model

// Raw sheet column identifiers, normalized form (lowercased, spaces collapsed
// to underscores). These are the literal headers the clinic sheet exports and
// the names downstream export/printing consumers rely on.
const (
	ColPatient          = "paciente"
	ColProcedure        = "procedimiento"
	ColDate             = "fecha"
	ColDoctor           = "doctor_a_pagar"
	ColInsurancePayment = "pago_por_seguro"
	ColPrivatePayment   = "pago_privado"
	ColLabCost          = "laboratorio"
	ColExpenses         = "gastos"
	ColTariffAmount     = "monto_a_pagar_por_tarifario"
	ColReferred         = "paciente_refido"
	ColPaysByPercentage = "cobra_por_porcentaje"
	ColPayPercent       = "%_de_pago"
)

// Derived column identifiers used by the export contract and the warehouse
// settlement table.
const (
	ColTotalPayment     = "pago_total_paciente"
	ColInsurerSurcharge = "cargo_por_ars"
	ColReferrerPayment  = "pago_referidor"
	ColDoctorPayment    = "pago_doctor"
	ColRetention        = "retencion"
	ColLabDeduction     = "descuento_lab"
	ColExpenseDeduction = "descuento_gastos"
	ColCosts            = "costes"
	ColClinicNetIncome  = "ingreso_clinica"
	ColProfitabilityPct = "rentabilidad"
	ColFinalPayout      = "monto_final_pago"
)

// Column describes one canonical raw sheet column: its normalized name,
// accepted header aliases seen across clinic exports, and whether a dataset
// is unusable without it.
type Column struct {
	Name     string
	Aliases  []string
	Required bool
}

// RawColumns lists the canonical raw sheet columns in sheet order. The
// referring-doctor column is absent on purpose: its header varies too much
// between exports and is resolved separately by candidate matching.
var RawColumns = []Column{
	{Name: ColPatient, Required: true},
	{Name: ColProcedure},
	{Name: ColDate},
	{Name: ColDoctor, Aliases: []string{"doctor"}, Required: true},
	{Name: ColInsurancePayment, Aliases: []string{"pago_seguro"}},
	{Name: ColPrivatePayment},
	{Name: ColLabCost},
	{Name: ColExpenses},
	{Name: ColTariffAmount, Aliases: []string{"tarifario"}},
	{Name: ColReferred, Aliases: []string{"paciente_referido"}},
	{Name: ColPaysByPercentage},
	{Name: ColPayPercent, Aliases: []string{"pct_de_pago", "porcentaje_de_pago"}},
}

// ReferrerColumnCandidates are the header names tried, in order, when
// auto-detecting which column carries the referring doctor. A header matches
// when it contains one of these as a substring.
var ReferrerColumnCandidates = []string{
	"doctor_referidor",
	"referidor",
	"doctor_referido",
	"medico_referidor",
	"dr_referidor",
	"referido_por",
	"referidor_doctor",
}

// ColumnByName returns the canonical raw column for the given normalized
// header, matching the canonical name first and then aliases. ok is false for
// headers that are not part of the canonical set.
func ColumnByName(name string) (Column, bool) {
	for _, c := range RawColumns {
		if c.Name == name {
			return c, true
		}
		for _, a := range c.Aliases {
			if a == name {
				return c, true
			}
		}
	}
	return Column{}, false
}

// ExportColumns returns the ordered column identifiers for the enriched
// record export: every raw column, the resolved referrer column, then every
// derived column. Downstream consumers rely on this exact ordering and
// naming.
func ExportColumns() []string {
	return []string{
		ColPatient,
		ColProcedure,
		ColDate,
		ColDoctor,
		"doctor_referidor",
		ColInsurancePayment,
		ColPrivatePayment,
		ColLabCost,
		ColExpenses,
		ColTariffAmount,
		ColReferred,
		ColPaysByPercentage,
		ColPayPercent,
		ColTotalPayment,
		ColInsurerSurcharge,
		ColReferrerPayment,
		ColDoctorPayment,
		ColRetention,
		ColLabDeduction,
		ColExpenseDeduction,
		ColCosts,
		ColClinicNetIncome,
		ColProfitabilityPct,
		ColFinalPayout,
	}
}
