package store

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"google.golang.org/api/sheets/v4"

	"github.com/uhppoted/uhppoted-app-metadata/metadata"
)

// SheetToTSV writes the records in a worksheet range as TSV, in canonical column order. The
// first row of the range must be the header row. Rows without an ID are skipped.
func SheetToTSV(f io.Writer, data *sheets.ValueRange) error {
	if len(data.Values) == 0 {
		return fmt.Errorf("Empty sheet")
	}

	// .. build index
	index := map[string]int{}
	for i, v := range data.Values[0] {
		k := normalise(fmt.Sprintf("%v", v))
		if _, ok := index[k]; ok {
			return fmt.Errorf("Duplicate column name '%v'", v)
		}

		index[k] = i
	}

	header := metadata.Header()
	if _, ok := index[normalise(header[0])]; !ok {
		return fmt.Errorf("Missing '%v' column", header[0])
	}

	// ... records
	records := [][]string{}
	for _, row := range data.Values[1:] {
		record := make([]string, len(header))
		for i, h := range header {
			if ix, ok := index[normalise(h)]; ok && ix < len(row) {
				record[i] = clean(fmt.Sprintf("%v", row[ix]))
			}
		}

		if record[0] == "" {
			continue
		}

		records = append(records, record)
	}

	// ... write to file
	w := csv.NewWriter(f)
	w.Comma = '\t'

	w.Write(header)
	for _, record := range records {
		w.Write(record)
	}

	w.Flush()

	return w.Error()
}

// TSVToRecords reads the metadata records from a TSV file with a header row. Columns are
// matched to record fields by (normalised) header title and unknown columns are ignored.
func TSVToRecords(f io.Reader) ([]*metadata.Record, error) {
	r := csv.NewReader(f)
	r.Comma = '\t'
	r.LazyQuotes = true
	r.FieldsPerRecord = -1

	rows, err := r.ReadAll()
	if err != nil {
		return nil, err
	}

	if len(rows) == 0 {
		return nil, fmt.Errorf("TSV file is empty")
	}

	index := map[string]int{}
	for i, v := range rows[0] {
		index[normalise(v)] = i
	}

	header := metadata.Header()
	if _, ok := index[normalise(header[0])]; !ok {
		return nil, fmt.Errorf("TSV file missing '%v' column", header[0])
	}

	records := []*metadata.Record{}
	for line, row := range rows[1:] {
		values := make([]string, len(header))
		for i, h := range header {
			if ix, ok := index[normalise(h)]; ok && ix < len(row) {
				values[i] = row[ix]
			}
		}

		record, err := metadata.FromRow(values)
		if err != nil {
			return nil, fmt.Errorf("Invalid record at line %v (%w)", line+2, err)
		}

		records = append(records, record)
	}

	return records, nil
}

func clean(v string) string {
	return strings.TrimSpace(v)
}

func normalise(v string) string {
	return strings.ToLower(strings.ReplaceAll(v, " ", ""))
}
