package settle

import (
	"time"

	"github.com/Yehissonpenalo/Dashboardpadilla/internal/model"
)

// AllDoctors selects every doctor in doctor-filtered views.
const AllDoctors = "all"

// FilterByDate selects records whose date falls inside [from, to], both ends
// inclusive. When the dataset never had a date column (hasDates false) the
// filter is a no-op and the full set comes back unchanged; when the column
// exists, records with no parseable date are excluded.
func FilterByDate(records []model.EnrichedRecord, hasDates bool, from, to time.Time) []model.EnrichedRecord {
	if !hasDates {
		return records
	}
	out := make([]model.EnrichedRecord, 0, len(records))
	for i := range records {
		d := records[i].Date
		if d == nil {
			continue
		}
		if d.Before(from) || d.After(to) {
			continue
		}
		out = append(out, records[i])
	}
	return out
}

// FilterByDoctor selects records for one paying doctor. An empty filter or
// AllDoctors keeps the full set.
func FilterByDoctor(records []model.EnrichedRecord, doctor string) []model.EnrichedRecord {
	if doctor == "" || doctor == AllDoctors {
		return records
	}
	out := make([]model.EnrichedRecord, 0, len(records))
	for i := range records {
		if records[i].Doctor == doctor {
			out = append(out, records[i])
		}
	}
	return out
}
