package adaptor

import (
	"fmt"
	"strings"

	"seat-booking/internal/dto/response"
)

// RenderChart lays the seat chart out row-major: column headings with
// a gap where the aisle runs, then one line per row with the aisle
// inline as X. Reserved seats always show the generic marker; the
// projection already stripped references.
func RenderChart(chart *response.ChartResponse) string {
	var b strings.Builder

	b.WriteString("\n--- Booking Status ---\n")

	b.WriteString("    ")
	for _, col := range []string{"A", "B", "C", " ", "D", "E", "F"} {
		b.WriteString(col)
		b.WriteByte(' ')
	}
	b.WriteByte('\n')

	for _, row := range chart.Rows {
		fmt.Fprintf(&b, "%02d: ", row.Row)
		for _, cell := range row.Cells {
			b.WriteString(cell)
			b.WriteByte(' ')
		}
		b.WriteByte('\n')
	}

	b.WriteString("----------------------\n\n")

	return b.String()
}
