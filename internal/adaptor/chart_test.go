package adaptor

import (
	"strings"
	"testing"

	"seat-booking/internal/dto/response"
)

func TestRenderChartLayout(t *testing.T) {
	chart := &response.ChartResponse{
		Rows: []response.ChartRow{
			{Row: 1, Cells: []string{"R", "F", "F", "X", "F", "F", "F"}},
			{Row: 77, Cells: []string{"F", "F", "F", "X", "S", "S", "S"}},
		},
	}

	out := RenderChart(chart)
	lines := strings.Split(out, "\n")

	if lines[1] != "--- Booking Status ---" {
		t.Fatalf("unexpected title line %q", lines[1])
	}
	if lines[2] != "    A B C   D E F " {
		t.Fatalf("unexpected header %q", lines[2])
	}
	if lines[3] != "01: R F F X F F F " {
		t.Fatalf("unexpected row line %q", lines[3])
	}
	if lines[4] != "77: F F F X S S S " {
		t.Fatalf("unexpected storage row %q", lines[4])
	}
}
