package planner

import (
	"fmt"
	"sort"
	"time"

	"cutiplan/internal/dateutil"
)

type SuggestionType string

const (
	SuggestionNatural SuggestionType = "natural"
	SuggestionBridge  SuggestionType = "bridge"
	SuggestionMega    SuggestionType = "mega"
)

// maxSuggestions caps the list at the earliest actionable opportunities.
const maxSuggestions = 4

// Suggestion is one long-weekend recommendation for an upcoming holiday.
type Suggestion struct {
	Holiday      Holiday        `json:"holiday"`
	Suggestion   string         `json:"suggestion"`
	Type         SuggestionType `json:"type"`
	DatesToApply []string       `json:"datesToApply"`
	ImpactDays   int            `json:"impactDays"`
}

// Suggest scans resolved holidays strictly after now's day and proposes
// leave-day strategies per the holiday's weekday:
//
//	Friday/Monday   natural 3-day weekend, nothing to book
//	Tuesday         bridge the preceding Monday for 4 days
//	Thursday        bridge the following Friday for 4 days
//	Wednesday       book Mon-Tue (or Thu-Fri) for 5 days
//	Saturday/Sunday no suggestion
//
// Holidays already covered by a leave entry are skipped, as are bridge
// days the user has booked. Results are in ascending holiday-date order
// and capped at four; holidays with malformed dates are dropped.
func Suggest(resolved []Holiday, leaves []LeaveEntry, now time.Time) []Suggestion {
	booked := make(map[string]bool, len(leaves))
	for _, l := range leaves {
		booked[l.Date] = true
	}

	type dated struct {
		Holiday
		day time.Time
	}
	var future []dated
	for _, h := range resolved {
		day, err := dateutil.ParseKey(h.Date)
		if err != nil {
			continue
		}
		if dateutil.IsFutureDay(day, now) {
			future = append(future, dated{Holiday: h, day: day})
		}
	}
	sort.SliceStable(future, func(i, j int) bool {
		return future[i].day.Before(future[j].day)
	})

	var list []Suggestion
	for _, h := range future {
		if booked[h.Date] {
			continue
		}

		switch h.day.Weekday() {
		case time.Friday, time.Monday:
			list = append(list, Suggestion{
				Holiday:      h.Holiday,
				Suggestion:   "Enjoy a natural 3-day break!",
				Type:         SuggestionNatural,
				DatesToApply: []string{},
				ImpactDays:   3,
			})

		case time.Tuesday:
			bridge := dateutil.AddDays(h.day, -1)
			if key := dateutil.Key(bridge); !booked[key] {
				list = append(list, Suggestion{
					Holiday:      h.Holiday,
					Suggestion:   fmt.Sprintf("Take leave on %s (Mon) for 4 days off!", bridge.Format("Jan 2")),
					Type:         SuggestionBridge,
					DatesToApply: []string{key},
					ImpactDays:   4,
				})
			}

		case time.Thursday:
			bridge := dateutil.AddDays(h.day, 1)
			if key := dateutil.Key(bridge); !booked[key] {
				list = append(list, Suggestion{
					Holiday:      h.Holiday,
					Suggestion:   fmt.Sprintf("Take leave on %s (Fri) for 4 days off!", bridge.Format("Jan 2")),
					Type:         SuggestionBridge,
					DatesToApply: []string{key},
					ImpactDays:   4,
				})
			}

		case time.Wednesday:
			mon := dateutil.Key(dateutil.AddDays(h.day, -2))
			tue := dateutil.Key(dateutil.AddDays(h.day, -1))
			list = append(list, Suggestion{
				Holiday:      h.Holiday,
				Suggestion:   "Take Mon-Tue or Thu-Fri for a 5-day escape!",
				Type:         SuggestionMega,
				DatesToApply: []string{tue, mon},
				ImpactDays:   5,
			})
		}
	}

	if len(list) > maxSuggestions {
		list = list[:maxSuggestions]
	}
	return list
}
