package model

// SheetRow mirrors the Parquet schema for a single billing line exported from
// the clinic sheet. Money fields are float64 matching the Parquet
// representation; dates and flags come through as raw strings and get parsed
// during normalization.
type SheetRow struct {
	Patient   string `parquet:"paciente"`
	Procedure string `parquet:"procedimiento"`
	Date      string `parquet:"fecha,optional"`

	Doctor          string  `parquet:"doctor_a_pagar"`
	ReferringDoctor *string `parquet:"doctor_referidor,optional"`

	InsurancePayment *float64 `parquet:"pago_por_seguro,optional"`
	PrivatePayment   *float64 `parquet:"pago_privado,optional"`
	LabCost          *float64 `parquet:"laboratorio,optional"`
	Expenses         *float64 `parquet:"gastos,optional"`
	TariffAmount     *float64 `parquet:"monto_a_pagar_por_tarifario,optional"`

	Referred         *string `parquet:"paciente_refido,optional"`
	PaysByPercentage *string `parquet:"cobra_por_porcentaje,optional"`
	PayPercent       *string `parquet:"pct_de_pago,optional"`
}
