// Package ingest turns uploaded exports and live web search results into
// RawSignals for the brief pipeline.
package ingest

import (
	"context"
	"encoding/csv"
	"io"
	"strings"

	"github.com/rotisserie/eris"
)

// Table is a parsed export: one header row and the data rows beneath it.
// Data rows are padded with "" to the header width.
type Table struct {
	Header []string
	Rows   [][]string
}

// StreamCSV parses r and sends each non-blank record, fields trimmed, to
// the row channel. Both channels are closed when parsing stops.
func StreamCSV(ctx context.Context, r io.Reader) (<-chan []string, <-chan error) {
	rowCh := make(chan []string, 64)
	errCh := make(chan error, 1)

	go func() {
		defer close(rowCh)
		defer close(errCh)

		reader := csv.NewReader(r)
		reader.FieldsPerRecord = -1
		reader.LazyQuotes = true

		for {
			if ctx.Err() != nil {
				errCh <- eris.Wrap(ctx.Err(), "ingest: csv cancelled")
				return
			}

			record, err := reader.Read()
			if err == io.EOF {
				return
			}
			if err != nil {
				errCh <- eris.Wrap(err, "ingest: read csv row")
				return
			}

			for i, field := range record {
				record[i] = strings.TrimSpace(field)
			}
			if blank(record) {
				continue
			}

			select {
			case rowCh <- record:
			case <-ctx.Done():
				errCh <- eris.Wrap(ctx.Err(), "ingest: csv cancelled")
				return
			}
		}
	}()

	return rowCh, errCh
}

// ReadCSV collects a CSV export into a Table. Input with fewer than two
// non-blank lines yields an empty table.
func ReadCSV(ctx context.Context, r io.Reader) (*Table, error) {
	rowCh, errCh := StreamCSV(ctx, r)

	var records [][]string
	for rec := range rowCh {
		records = append(records, rec)
	}
	if err := <-errCh; err != nil {
		return nil, err
	}
	return newTable(records), nil
}

func newTable(records [][]string) *Table {
	t := &Table{}
	if len(records) < 2 {
		return t
	}
	t.Header = records[0]
	for _, rec := range records[1:] {
		row := make([]string, len(t.Header))
		copy(row, rec)
		t.Rows = append(t.Rows, row)
	}
	return t
}

func blank(record []string) bool {
	for _, f := range record {
		if f != "" {
			return false
		}
	}
	return true
}
