package response

import "seat-booking/internal/data/entity"

// ChartColumns is the display order of one cabin row: the three port
// seats, the aisle, then the three starboard seats.
var ChartColumns = []byte{'A', 'B', 'C', entity.AisleColumn, 'D', 'E', 'F'}

// ChartRow holds the display markers for a single row in column
// display order.
type ChartRow struct {
	Row   int      `json:"row"`
	Cells []string `json:"cells"`
}

type ChartResponse struct {
	Rows []ChartRow `json:"rows"`
}

// MarkerFor projects a seat status to its chart marker. Anything that
// is not free, aisle, or storage shows the generic reserved marker so
// booking references never leak into the chart.
func MarkerFor(status entity.SeatStatus) string {
	switch status {
	case entity.SeatStatusFree:
		return "F"
	case entity.SeatStatusAisle:
		return "X"
	case entity.SeatStatusStorage:
		return "S"
	default:
		return "R"
	}
}
