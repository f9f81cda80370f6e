package planner

import "cutiplan/internal/dateutil"

// Stats aggregates one year of leave records for display.
type Stats struct {
	MonthlyData [12]int           `json:"monthlyData"`
	TypeData    map[LeaveType]int `json:"typeData"`
	TotalUsed   int               `json:"totalUsed"`
}

// YearlyStats counts leave entries falling in year per calendar month
// (0=Jan) and per leave type, zero-filled for unused types. The result
// is stable under reordering of the input; entries with malformed
// dates are skipped.
func YearlyStats(leaves []LeaveEntry, year int) Stats {
	stats := Stats{TypeData: make(map[LeaveType]int, len(LeaveTypes()))}
	for _, t := range LeaveTypes() {
		stats.TypeData[t] = 0
	}

	for _, leave := range leaves {
		date, err := dateutil.ParseKey(leave.Date)
		if err != nil || date.Year() != year {
			continue
		}
		stats.MonthlyData[int(date.Month())-1]++
		stats.TypeData[leave.Type]++
		stats.TotalUsed++
	}
	return stats
}
