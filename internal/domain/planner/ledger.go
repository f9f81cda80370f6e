package planner

import (
	"errors"
	"strings"

	"github.com/google/uuid"

	"cutiplan/internal/dateutil"
)

var (
	ErrInvalidDate         = errors.New("invalid date")
	ErrInvalidLeaveType    = errors.New("invalid leave type")
	ErrEmptyName           = errors.New("holiday name is empty")
	ErrNegativeEntitlement = errors.New("entitlement must be non-negative")
)

// UpsertLeave returns a new collection with entry applied. An existing
// entry on the same date is replaced in place, keeping its position and
// its id when entry carries none; otherwise entry is appended with a
// generated id. Invalid input leaves the collection unchanged.
func UpsertLeave(leaves []LeaveEntry, entry LeaveEntry) ([]LeaveEntry, error) {
	if _, err := dateutil.ParseKey(entry.Date); err != nil {
		return leaves, ErrInvalidDate
	}
	if !entry.Type.Valid() {
		return leaves, ErrInvalidLeaveType
	}

	next := make([]LeaveEntry, len(leaves))
	copy(next, leaves)

	for i, existing := range next {
		if existing.Date == entry.Date {
			if entry.ID == "" {
				entry.ID = existing.ID
			}
			next[i] = entry
			return next, nil
		}
	}

	if entry.ID == "" {
		entry.ID = uuid.NewString()
	}
	return append(next, entry), nil
}

// RemoveLeave returns a new collection without entries on the given
// date key. A miss is a no-op, not an error.
func RemoveLeave(leaves []LeaveEntry, dateKey string) []LeaveEntry {
	next := make([]LeaveEntry, 0, len(leaves))
	for _, l := range leaves {
		if l.Date != dateKey {
			next = append(next, l)
		}
	}
	return next
}

// UpsertCustomHoliday mirrors UpsertLeave over custom holidays. The
// name must be non-empty after trimming; the trimmed name is stored.
func UpsertCustomHoliday(holidays []CustomHoliday, holiday CustomHoliday) ([]CustomHoliday, error) {
	if _, err := dateutil.ParseKey(holiday.Date); err != nil {
		return holidays, ErrInvalidDate
	}
	holiday.Name = strings.TrimSpace(holiday.Name)
	if holiday.Name == "" {
		return holidays, ErrEmptyName
	}

	next := make([]CustomHoliday, len(holidays))
	copy(next, holidays)

	for i, existing := range next {
		if existing.Date == holiday.Date {
			if holiday.ID == "" {
				holiday.ID = existing.ID
			}
			next[i] = holiday
			return next, nil
		}
	}

	if holiday.ID == "" {
		holiday.ID = uuid.NewString()
	}
	return append(next, holiday), nil
}

func RemoveCustomHoliday(holidays []CustomHoliday, dateKey string) []CustomHoliday {
	next := make([]CustomHoliday, 0, len(holidays))
	for _, h := range holidays {
		if h.Date != dateKey {
			next = append(next, h)
		}
	}
	return next
}

// Balance returns entitlement minus the number of recorded leave days.
// Over-used leave yields a negative balance; it is not clamped.
func Balance(entitlement int, leaves []LeaveEntry) int {
	return entitlement - len(leaves)
}
