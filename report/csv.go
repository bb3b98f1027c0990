package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
)

// ReadSheet decodes CSV from r into a raw sheet of string cells. Broker
// exports pad preamble rows to odd widths, so ragged records are accepted.
func ReadSheet(r io.Reader) ([][]Cell, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	var sheet [][]Cell
	for {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("decode csv: %w", err)
		}
		row := make([]Cell, len(rec))
		for i, v := range rec {
			row[i] = v
		}
		sheet = append(sheet, row)
	}
	return sheet, nil
}

// ReadSheetFile decodes the CSV file at path into a raw sheet.
func ReadSheetFile(path string) ([][]Cell, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open report: %w", err)
	}
	defer f.Close()
	return ReadSheet(f)
}
