package sheet

import (
	"encoding/csv"
	"strings"

	"github.com/tuumbleweed/xerr"
)

/*
RawRecord is one spreadsheet row as the sheet exported it: column label to
cell text, with labels in whatever casing and accenting the sheet author
used ("MOTORISTA", "Manutenção", " placa "). Values are kept verbatim;
normalization and numeric coercion happen downstream.
*/
type RawRecord map[string]string

/*
ParseRecords parses CSV text into raw records using the first row as the
header. Rows shorter than the header are padded with empty cells and rows
longer than it have the overflow dropped, since hand-maintained sheets are
rarely rectangular. Fully empty rows are skipped.
*/
func ParseRecords(csvText string) (records []RawRecord, e *xerr.Error) {
	reader := csv.NewReader(strings.NewReader(csvText))
	reader.FieldsPerRecord = -1 // tolerate ragged rows
	reader.LazyQuotes = true

	rows, readErr := reader.ReadAll()
	if readErr != nil {
		return records, xerr.NewError(readErr, "Failed to parse CSV feed", nil)
	}

	records = make([]RawRecord, 0, len(rows))
	if len(rows) == 0 {
		return records, e
	}

	header := rows[0]

	for _, row := range rows[1:] {
		if isEmptyRow(row) {
			continue
		}

		record := make(RawRecord, len(header))
		for columnIndex, label := range header {
			value := ""
			if columnIndex < len(row) {
				value = row[columnIndex]
			}
			record[label] = value
		}
		records = append(records, record)
	}

	return records, e
}

func isEmptyRow(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}
