package commands

import (
	"encoding/csv"
	"fmt"
	"io"
)

// rowsToTSV writes worksheet rows as tab separated values. Rows shorter than the widest row
// are padded so that every record has the same number of fields.
func rowsToTSV(f io.Writer, rows [][]string) error {
	if len(rows) == 0 {
		return fmt.Errorf("Empty sheet")
	}

	columns := 0
	for _, row := range rows {
		if len(row) > columns {
			columns = len(row)
		}
	}

	w := csv.NewWriter(f)
	w.Comma = '\t'

	for _, row := range rows {
		record := make([]string, columns)
		copy(record, row)

		if err := w.Write(record); err != nil {
			return err
		}
	}

	w.Flush()

	return w.Error()
}
