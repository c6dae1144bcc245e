package ingest

import (
	"strings"

	"github.com/rotisserie/eris"
	"github.com/tealeg/xlsx/v2"
)

// ReadXLSXFile reads the first sheet of a spreadsheet export.
func ReadXLSXFile(path string) (*Table, error) {
	f, err := xlsx.OpenFile(path)
	if err != nil {
		return nil, eris.Wrap(err, "ingest: open xlsx")
	}
	return sheetTable(f)
}

// ParseXLSX reads the first sheet of an in-memory spreadsheet upload.
func ParseXLSX(data []byte) (*Table, error) {
	f, err := xlsx.OpenBinary(data)
	if err != nil {
		return nil, eris.Wrap(err, "ingest: parse xlsx")
	}
	return sheetTable(f)
}

func sheetTable(f *xlsx.File) (*Table, error) {
	if len(f.Sheets) == 0 {
		return nil, eris.New("ingest: xlsx has no sheets")
	}

	var records [][]string
	for _, row := range f.Sheets[0].Rows {
		if row == nil {
			continue
		}
		cells := make([]string, len(row.Cells))
		for i, cell := range row.Cells {
			cells[i] = strings.TrimSpace(cell.String())
		}
		if blank(cells) {
			continue
		}
		records = append(records, cells)
	}
	return newTable(records), nil
}
