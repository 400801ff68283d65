package output

import (
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/dustin/go-humanize"

	"github.com/daryltucker/cmbench/internal/model"
)

var defaultHeaders = map[model.Column]string{
	model.ColWorkload:  "Workload",
	model.ColMethod:    "Method",
	model.ColF1:        "F1 (%)",
	model.ColAvgTokens: "Avg Tokens",
	model.ColCostPer1K: "Cost/1k ($)",
	model.ColEScore:    "E-Score",
	model.ColLatencyMS: "Latency (ms)",

	model.ColCostPerQuery: "Cost / Query ($)",
}

// WriteTable renders rep as a fixed-width text table followed by its notes.
func WriteTable(w io.Writer, rep model.Report) error {
	headers := make([]string, len(rep.Columns))
	widths := make([]int, len(rep.Columns))
	for i, c := range rep.Columns {
		headers[i] = header(rep, c)
		widths[i] = len(headers[i])
	}

	cells := make([][]string, len(rep.Rows))
	for r, row := range rep.Rows {
		cells[r] = make([]string, len(rep.Columns))
		for i, c := range rep.Columns {
			cells[r][i] = cell(rep, row, c)
			widths[i] = max(widths[i], len(cells[r][i]))
		}
	}

	total := 0
	for _, wd := range widths {
		total += wd
	}
	total += 3 * (len(widths) - 1)

	var b strings.Builder
	fmt.Fprintf(&b, "\n%s [%s]\n", rep.Title, rep.ID)
	b.WriteString(strings.Repeat("=", total) + "\n")
	writeLine(&b, headers, widths)
	b.WriteString(strings.Repeat("-", total) + "\n")
	for _, line := range cells {
		writeLine(&b, line, widths)
	}
	b.WriteString(strings.Repeat("=", total) + "\n")
	for _, n := range rep.Notes {
		fmt.Fprintf(&b, "Note: %s\n", n)
	}

	_, err := io.WriteString(w, b.String())
	return err
}

func writeLine(b *strings.Builder, fields []string, widths []int) {
	for i, f := range fields {
		if i > 0 {
			b.WriteString(" | ")
		}
		if i == len(fields)-1 {
			b.WriteString(f)
			continue
		}
		fmt.Fprintf(b, "%-*s", widths[i], f)
	}
	b.WriteString("\n")
}

func header(rep model.Report, c model.Column) string {
	if h, ok := rep.Headers[c]; ok {
		return h
	}
	return defaultHeaders[c]
}

func decimals(rep model.Report, c model.Column) int {
	if d, ok := rep.Decimals[c]; ok {
		return d
	}
	return 2
}

func cell(rep model.Report, row model.Row, c model.Column) string {
	switch c {
	case model.ColWorkload:
		return row.Workload
	case model.ColMethod:
		return row.Method
	case model.ColAvgTokens:
		if row.AvgTokens == math.Trunc(row.AvgTokens) {
			return humanize.Comma(int64(row.AvgTokens))
		}
		return humanize.CommafWithDigits(row.AvgTokens, decimals(rep, c))
	}
	return fmt.Sprintf("%.*f", decimals(rep, c), row.Value(c))
}
