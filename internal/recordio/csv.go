// Package recordio reads clinic sheet exports (CSV or Parquet) into
// normalized snapshots and writes enriched records back out for downstream
// consumers.
package recordio

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"

	"github.com/Yehissonpenalo/Dashboardpadilla/internal/model"
	"github.com/Yehissonpenalo/Dashboardpadilla/internal/normalize"
)

// readCSV streams a CSV sheet export into billing records. Headers are
// normalized before matching; money cells are coerced with bad values
// collapsing to 0 and a warning, never a failed load.
func readCSV(log zerolog.Logger, path string, referrerCandidates []string) ([]model.BillingRecord, *columnLayout, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("open csv: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	r.TrimLeadingSpace = true

	headerRow, err := r.Read()
	if err != nil {
		return nil, nil, fmt.Errorf("read csv header: %w", err)
	}

	layout, err := resolveColumns(headerRow, referrerCandidates)
	if err != nil {
		return nil, nil, err
	}

	var records []model.BillingRecord
	var rowNum, badMoney int64
	for {
		row, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, nil, fmt.Errorf("read csv row %d: %w", rowNum+1, err)
		}
		rowNum++

		rec := model.BillingRecord{
			Patient:          layout.cell(row, model.ColPatient),
			Procedure:        layout.cell(row, model.ColProcedure),
			Date:             normalize.ParseDate(layout.cell(row, model.ColDate)),
			Doctor:           layout.cell(row, model.ColDoctor),
			ReferringDoctor:  layout.referrerCell(row),
			Referred:         layout.cell(row, model.ColReferred),
			PaysByPercentage: layout.cell(row, model.ColPaysByPercentage),
			PayPercent:       layout.cell(row, model.ColPayPercent),
		}

		money := func(col string) float64 {
			raw := layout.cell(row, col)
			if raw == "" {
				return 0
			}
			v, ok := normalize.Money(raw)
			if !ok {
				badMoney++
				log.Warn().Int64("row", rowNum).Str("column", col).Str("value", raw).
					Msg("unparseable amount, treated as 0")
				return 0
			}
			return v
		}
		rec.InsurancePayment = money(model.ColInsurancePayment)
		rec.PrivatePayment = money(model.ColPrivatePayment)
		rec.LabCost = money(model.ColLabCost)
		rec.Expenses = money(model.ColExpenses)
		rec.TariffAmount = money(model.ColTariffAmount)

		records = append(records, rec)
	}

	if badMoney > 0 {
		log.Info().Int64("cells", badMoney).Msg("amount cells defaulted to 0")
	}
	return records, layout, nil
}

// columnLayout maps canonical column names to positions in a CSV row.
type columnLayout struct {
	byName      map[string]int
	referrerCol string // detected source header, "" when absent
	referrerIdx int
}

// resolveColumns normalizes the header row, matches canonical columns and
// aliases, detects the referring-doctor column, and verifies required
// columns are present.
func resolveColumns(headerRow, referrerCandidates []string) (*columnLayout, error) {
	layout := &columnLayout{byName: make(map[string]int), referrerIdx: -1}

	normalized := make([]string, len(headerRow))
	for i, h := range headerRow {
		normalized[i] = normalize.Header(h)
	}

	for i, h := range normalized {
		if col, ok := model.ColumnByName(h); ok {
			if _, dup := layout.byName[col.Name]; !dup {
				layout.byName[col.Name] = i
			}
		}
	}

	if col, idx, ok := DetectReferrerColumn(normalized, referrerCandidates); ok {
		layout.referrerCol = col
		layout.referrerIdx = idx
	}

	if err := ValidateColumns(normalized); err != nil {
		return nil, err
	}
	return layout, nil
}

func (l *columnLayout) cell(row []string, name string) string {
	i, ok := l.byName[name]
	if !ok || i >= len(row) {
		return ""
	}
	return row[i]
}

func (l *columnLayout) referrerCell(row []string) string {
	if l.referrerIdx < 0 || l.referrerIdx >= len(row) {
		return ""
	}
	return row[l.referrerIdx]
}

func (l *columnLayout) hasDates() bool {
	_, ok := l.byName[model.ColDate]
	return ok
}
