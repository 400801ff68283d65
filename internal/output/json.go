/*
PURPOSE:
  Writes experiment rows to a JSON Lines file (NDJSON).
  Optimized for machine parsing.

REQUIREMENTS:
  - One JSON object per Row, in report order.
  - Only the numeric columns the report declares are emitted; zeros that
    apply are kept.

ARCHITECTURE INTEGRATION:
  - Called by: internal/engine
  - Consumes: internal/model.Row

ERROR HANDLING:
  - Returns error on file creation or write failure.

IMPLEMENTATION RULES:
  - Use encoding/json.NewEncoder.

USAGE:
  w, err := output.NewJSONWriter("results.jsonl")
  w.WriteReport(rep)
  w.Close()
*/

package output

import (
	"encoding/json"
	"os"

	"github.com/daryltucker/cmbench/internal/model"
)

// JSONWriter handles writing rows to a JSON Lines file.
type JSONWriter struct {
	file    *os.File
	encoder *json.Encoder
}

// NewJSONWriter creates a new JSONWriter.
func NewJSONWriter(path string) (*JSONWriter, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, err
	}

	return &JSONWriter{
		file:    f,
		encoder: json.NewEncoder(f),
	}, nil
}

// WriteReport writes every row of rep as one JSON line each.
func (jw *JSONWriter) WriteReport(rep model.Report) error {
	for _, r := range rep.Rows {
		record := map[string]any{
			"experiment": r.Experiment,
			"workload":   r.Workload,
			"method":     r.Method,
		}
		for _, c := range rep.Columns {
			if c == model.ColWorkload || c == model.ColMethod {
				continue
			}
			record[string(c)] = r.Value(c)
		}
		if err := jw.encoder.Encode(record); err != nil {
			return err
		}
	}
	return nil
}

// Close closes the underlying file.
func (jw *JSONWriter) Close() error {
	return jw.file.Close()
}
