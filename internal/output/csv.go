/*
PURPOSE:
  Writes experiment rows to a CSV file.
  Ensures data integrity by flushing writes immediately.

REQUIREMENTS:
  - One file per run; every experiment's rows share one header.
  - Cells for columns the report does not declare are left empty, so
    "not applicable" never reads as a real zero.

ARCHITECTURE INTEGRATION:
  - Called by: internal/engine
  - Consumes: internal/model.Row

ERROR HANDLING:
  - Returns error on file creation or write failure.

IMPLEMENTATION RULES:
  - Use encoding/csv.
  - Flush() after every write.

USAGE:
  w, err := output.NewCSVWriter("results.csv")
  w.WriteReport(rep)
  w.Close()

MAINTENANCE:
  - New Row fields only need a model.Column in model.AllColumns.
*/

package output

import (
	"encoding/csv"
	"os"
	"strconv"

	"github.com/daryltucker/cmbench/internal/model"
)

// CSVHeader is the column order of CSV output.
var CSVHeader = func() []string {
	h := []string{"experiment"}
	for _, c := range model.AllColumns {
		h = append(h, string(c))
	}
	return h
}()

// CSVWriter handles writing rows to a CSV file.
type CSVWriter struct {
	file   *os.File
	writer *csv.Writer
}

// NewCSVWriter creates a new CSVWriter.
// It overwrites the file if it exists.
func NewCSVWriter(path string) (*CSVWriter, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, err
	}

	w := csv.NewWriter(f)
	if err := w.Write(CSVHeader); err != nil {
		f.Close()
		return nil, err
	}
	w.Flush()

	return &CSVWriter{
		file:   f,
		writer: w,
	}, nil
}

// WriteReport writes every row of rep to the CSV file.
func (cw *CSVWriter) WriteReport(rep model.Report) error {
	for _, r := range rep.Rows {
		if err := cw.writer.Write(csvRecord(rep, r)); err != nil {
			return err
		}
	}
	cw.writer.Flush()
	return cw.writer.Error()
}

func csvRecord(rep model.Report, r model.Row) []string {
	record := []string{r.Experiment}
	for _, c := range model.AllColumns {
		switch {
		case c == model.ColWorkload:
			record = append(record, r.Workload)
		case c == model.ColMethod:
			record = append(record, r.Method)
		case rep.Has(c):
			record = append(record, formatFloat(r.Value(c)))
		default:
			record = append(record, "")
		}
	}
	return record
}

// Close closes the underlying file.
func (cw *CSVWriter) Close() error {
	cw.writer.Flush()
	return cw.file.Close()
}

// formatFloat keeps full precision so CSV output round-trips.
func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
