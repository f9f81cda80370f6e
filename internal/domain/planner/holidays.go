package planner

// ResolveHolidays merges the public-holiday table with user-defined
// custom holidays into one ordered list: table entries first in table
// order, then customs in insertion order. Sources are not deduplicated;
// a custom holiday on a public-holiday date yields two entries, and
// consumers must handle multiple holidays per date.
func ResolveHolidays(table []Holiday, customHolidays []CustomHoliday) []Holiday {
	resolved := make([]Holiday, 0, len(table)+len(customHolidays))
	resolved = append(resolved, table...)
	for _, ch := range customHolidays {
		resolved = append(resolved, Holiday{
			Date:      ch.Date,
			Name:      ch.Name,
			IsFederal: false,
			States:    []string{},
		})
	}
	return resolved
}

// HolidaysOn returns every resolved holiday falling on the given date
// key. A date with no holiday yields an empty result, not an error.
func HolidaysOn(resolved []Holiday, dateKey string) []Holiday {
	var matches []Holiday
	for _, h := range resolved {
		if h.Date == dateKey {
			matches = append(matches, h)
		}
	}
	return matches
}
