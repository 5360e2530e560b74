package settle

import (
	"math"
	"sort"

	"github.com/Yehissonpenalo/Dashboardpadilla/internal/model"
	"github.com/Yehissonpenalo/Dashboardpadilla/internal/normalize"
)

// ByDoctor groups records by paying doctor and ranks the groups by total
// doctor payment, descending. Ties keep the order doctors first appear in
// the record set. Profitability here is the unweighted mean of per-record
// percentages, deliberately different from the weighted figure in Totals.
func ByDoctor(records []model.EnrichedRecord) []model.DoctorSummary {
	index := make(map[string]int)
	var groups []model.DoctorSummary
	profitSums := make(map[string]float64)

	for i := range records {
		r := &records[i]
		if r.Doctor == "" {
			continue
		}
		gi, ok := index[r.Doctor]
		if !ok {
			gi = len(groups)
			index[r.Doctor] = gi
			groups = append(groups, model.DoctorSummary{Doctor: r.Doctor})
		}
		g := &groups[gi]
		g.DoctorPayments += r.DoctorPayment
		g.Retentions += r.Retention
		g.ClinicNetIncome += r.ClinicNetIncome
		g.Procedures++
		profitSums[r.Doctor] += r.ProfitabilityPct
	}

	for i := range groups {
		g := &groups[i]
		n := g.Procedures
		if n == 0 {
			n = 1
		}
		g.MeanProfitabilityPct = profitSums[g.Doctor] / float64(n)
		g.PerProcedure = g.DoctorPayments / float64(n)
	}

	sort.SliceStable(groups, func(i, j int) bool {
		return groups[i].DoctorPayments > groups[j].DoctorPayments
	})
	return groups
}

// ByReferrer groups records by referring doctor, restricted to records whose
// referred flag parses true AND whose referrer payment is positive; either
// condition alone does not qualify. When the dataset has no referring-doctor
// column, or nothing qualifies, the result is empty, not an error.
func ByReferrer(records []model.EnrichedRecord, hasReferrer bool) []model.ReferrerSummary {
	if !hasReferrer {
		return nil
	}

	index := make(map[string]int)
	var groups []model.ReferrerSummary

	for i := range records {
		r := &records[i]
		if !normalize.Boolish(r.Referred).IsTrue() || r.ReferrerPayment <= 0 {
			continue
		}
		if r.ReferringDoctor == "" {
			continue
		}
		gi, ok := index[r.ReferringDoctor]
		if !ok {
			gi = len(groups)
			index[r.ReferringDoctor] = gi
			groups = append(groups, model.ReferrerSummary{Referrer: r.ReferringDoctor})
		}
		g := &groups[gi]
		g.ReferrerPayments += r.ReferrerPayment
		g.ReferredTotal += r.TotalPayment
		g.Patients++
	}

	for i := range groups {
		g := &groups[i]
		if g.ReferredTotal > 0 {
			g.PercentagePaid = round2(g.ReferrerPayments / g.ReferredTotal * 100)
		}
	}

	sort.SliceStable(groups, func(i, j int) bool {
		return groups[i].ReferrerPayments > groups[j].ReferrerPayments
	})
	return groups
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
