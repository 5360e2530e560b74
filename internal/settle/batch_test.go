package settle

import (
	"fmt"
	"testing"

	"github.com/rs/zerolog"

	"github.com/Yehissonpenalo/Dashboardpadilla/internal/model"
)

func testRecords(n int) []model.BillingRecord {
	recs := make([]model.BillingRecord, n)
	for i := range recs {
		recs[i] = model.BillingRecord{
			Patient:          fmt.Sprintf("Paciente %d", i),
			Doctor:           fmt.Sprintf("Doctor %d", i%7),
			InsurancePayment: float64(i * 10),
			PrivatePayment:   float64(i % 3 * 25),
			LabCost:          float64(i % 5),
			TariffAmount:     float64(i % 11 * 20),
			PaysByPercentage: map[bool]string{true: "si", false: "no"}[i%2 == 0],
			PayPercent:       "40",
		}
	}
	return recs
}

func TestEvaluateAllMatchesSequential(t *testing.T) {
	recs := testRecords(500)

	sequential := make([]model.EnrichedRecord, len(recs))
	for i := range recs {
		sequential[i], _ = Enrich(recs[i])
	}

	for _, workers := range []int{1, 2, 8, 64} {
		parallel, result := EvaluateAll(zerolog.Nop(), recs, workers)
		if result.RowsEvaluated != int64(len(recs)) {
			t.Fatalf("workers=%d: RowsEvaluated = %d, want %d", workers, result.RowsEvaluated, len(recs))
		}
		for i := range sequential {
			if parallel[i] != sequential[i] {
				t.Fatalf("workers=%d: record %d diverges from sequential evaluation", workers, i)
			}
		}
	}
}

func TestEvaluateAllCountsDefaults(t *testing.T) {
	recs := []model.BillingRecord{
		{Doctor: "A", PrivatePayment: 100, PaysByPercentage: "si", PayPercent: "cuarenta"},
		{Doctor: "B", PrivatePayment: 100, PaysByPercentage: "si", PayPercent: "40"},
		{Doctor: "C", PrivatePayment: 100, PaysByPercentage: "no"},
	}

	_, result := EvaluateAll(zerolog.Nop(), recs, 2)
	if result.RowsDefaulted != 1 {
		t.Errorf("RowsDefaulted = %d, want 1", result.RowsDefaulted)
	}
}

func TestEvaluateAllEmpty(t *testing.T) {
	enriched, result := EvaluateAll(zerolog.Nop(), nil, 4)
	if len(enriched) != 0 || result.RowsEvaluated != 0 {
		t.Errorf("empty input: got %d records, %d evaluated", len(enriched), result.RowsEvaluated)
	}
}
