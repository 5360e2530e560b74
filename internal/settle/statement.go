package settle

import (
	"sort"
	"time"

	"github.com/Yehissonpenalo/Dashboardpadilla/internal/model"
)

// Statement builds the printable-statement aggregate for one doctor (or
// AllDoctors) over a date range: records collapsed by (patient, procedure)
// plus a grand-total row over the whole filtered set. Lab and expense figures
// are the raw sheet costs; retention and final payout come from the derived
// fields. An empty filtered set yields a Statement with no groups, which the
// rendering collaborator treats as "nothing to render".
func Statement(records []model.EnrichedRecord, hasDates bool, doctor string, from, to time.Time) model.Statement {
	st := model.Statement{Doctor: doctor, From: from, To: to}

	filtered := FilterByDate(records, hasDates, from, to)
	filtered = FilterByDoctor(filtered, doctor)
	if len(filtered) == 0 {
		return st
	}

	type key struct{ patient, procedure string }
	index := make(map[key]int)

	for i := range filtered {
		r := &filtered[i]
		k := key{r.Patient, r.Procedure}
		gi, ok := index[k]
		if !ok {
			gi = len(st.Groups)
			index[k] = gi
			st.Groups = append(st.Groups, model.StatementGroup{
				Patient:   r.Patient,
				Procedure: r.Procedure,
			})
		}
		g := &st.Groups[gi]
		g.TotalPayment += r.TotalPayment
		g.LabCost += r.LabCost
		g.Expenses += r.Expenses
		g.Retention += r.Retention
		g.FinalPayout += r.FinalPayout

		st.Total.TotalPayment += r.TotalPayment
		st.Total.LabCost += r.LabCost
		st.Total.Expenses += r.Expenses
		st.Total.Retention += r.Retention
		st.Total.FinalPayout += r.FinalPayout
	}

	sort.SliceStable(st.Groups, func(i, j int) bool {
		if st.Groups[i].Patient != st.Groups[j].Patient {
			return st.Groups[i].Patient < st.Groups[j].Patient
		}
		return st.Groups[i].Procedure < st.Groups[j].Procedure
	})
	return st
}
