package model

import (
	"sort"
	"time"

	"github.com/google/uuid"
)

// Snapshot is the result of one load pass over a clinic sheet export: the
// normalized records plus everything consumers need to know about the shape
// of the dataset. Components take a Snapshot instead of probing a shared
// "data loaded" flag.
type Snapshot struct {
	Records []BillingRecord

	// HasDates reports whether the source carried a date column at all.
	// When false the date-range filter is a no-op.
	HasDates bool

	// HasReferrer reports whether a referring-doctor column was detected.
	// When false, referrer-based summaries come back empty.
	HasReferrer bool

	// ReferrerColumn is the detected source header, empty when HasReferrer
	// is false.
	ReferrerColumn string

	SourceFile string
	FileSHA256 string
	RunID      uuid.UUID
	LoadedAt   time.Time
}

// Doctors returns the sorted distinct paying-doctor names in the snapshot.
func (s *Snapshot) Doctors() []string {
	seen := make(map[string]struct{})
	var names []string
	for i := range s.Records {
		d := s.Records[i].Doctor
		if d == "" {
			continue
		}
		if _, ok := seen[d]; ok {
			continue
		}
		seen[d] = struct{}{}
		names = append(names, d)
	}
	sort.Strings(names)
	return names
}

// DateBounds returns the earliest and latest record dates in the snapshot.
// Empty-safe: when no record carries a date, both bounds default to now.
func (s *Snapshot) DateBounds() (time.Time, time.Time) {
	var min, max time.Time
	for i := range s.Records {
		d := s.Records[i].Date
		if d == nil {
			continue
		}
		if min.IsZero() || d.Before(min) {
			min = *d
		}
		if max.IsZero() || d.After(max) {
			max = *d
		}
	}
	if min.IsZero() {
		now := time.Now()
		return now, now
	}
	return min, max
}
