package recordio

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/parquet-go/parquet-go"

	"github.com/Yehissonpenalo/Dashboardpadilla/internal/model"
	"github.com/Yehissonpenalo/Dashboardpadilla/internal/normalize"
)

const parquetBatchSize = 1024

// readParquet streams a Parquet sheet export into billing records using the
// generic typed reader.
func readParquet(path string, referrerCandidates []string) ([]model.BillingRecord, *parquetLayout, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("open parquet file: %w", err)
	}
	defer f.Close()

	stat, err := f.Stat()
	if err != nil {
		return nil, nil, fmt.Errorf("stat parquet file: %w", err)
	}

	pf, err := parquet.OpenFile(f, stat.Size())
	if err != nil {
		return nil, nil, fmt.Errorf("open parquet: %w", err)
	}

	reader := parquet.NewGenericReader[model.SheetRow](pf)
	defer reader.Close()

	layout, err := parquetColumns(reader.Schema(), referrerCandidates)
	if err != nil {
		return nil, nil, err
	}

	records := make([]model.BillingRecord, 0, reader.NumRows())
	buf := make([]model.SheetRow, parquetBatchSize)
	for {
		n, readErr := reader.Read(buf)
		for i := 0; i < n; i++ {
			records = append(records, normalize.ToBillingRecord(&buf[i]))
		}
		if readErr == io.EOF {
			break
		}
		if readErr != nil {
			return nil, nil, fmt.Errorf("read parquet rows: %w", readErr)
		}
	}
	return records, layout, nil
}

// parquetLayout records which optional columns the Parquet schema carries.
type parquetLayout struct {
	hasDates    bool
	referrerCol string
}

func parquetColumns(schema *parquet.Schema, referrerCandidates []string) (*parquetLayout, error) {
	headers := make([]string, 0, len(schema.Fields()))
	for _, field := range schema.Fields() {
		headers = append(headers, strings.ToLower(field.Name()))
	}
	if err := ValidateColumns(headers); err != nil {
		return nil, err
	}

	layout := &parquetLayout{}
	for _, h := range headers {
		if h == model.ColDate {
			layout.hasDates = true
		}
	}
	if col, _, ok := DetectReferrerColumn(headers, referrerCandidates); ok {
		layout.referrerCol = col
	}
	return layout, nil
}
