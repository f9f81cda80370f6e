package planner

import (
	"errors"
	"reflect"
	"testing"
)

func TestUpsertLeaveAppendsAndGeneratesID(t *testing.T) {
	leaves, err := UpsertLeave(nil, LeaveEntry{Date: "2026-03-02", Type: LeaveAnnual})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(leaves) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(leaves))
	}
	if leaves[0].ID == "" {
		t.Fatal("expected generated id")
	}
}

func TestUpsertLeaveReplacesByDate(t *testing.T) {
	leaves := []LeaveEntry{
		{ID: "a", Date: "2026-03-02", Type: LeaveAnnual},
		{ID: "b", Date: "2026-03-03", Type: LeaveMedical},
	}

	next, err := UpsertLeave(leaves, LeaveEntry{Date: "2026-03-02", Type: LeaveEmergency, Note: "urgent"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(next) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(next))
	}
	if next[0].ID != "a" {
		t.Fatalf("expected inherited id a, got %s", next[0].ID)
	}
	if next[0].Type != LeaveEmergency || next[0].Note != "urgent" {
		t.Fatalf("entry not replaced: %+v", next[0])
	}
	if next[1].ID != "b" {
		t.Fatal("unrelated entry must keep its position")
	}
	if leaves[0].Type != LeaveAnnual {
		t.Fatal("input collection must not be mutated")
	}
}

func TestUpsertLeaveIdempotent(t *testing.T) {
	entry := LeaveEntry{ID: "x", Date: "2026-04-06", Type: LeaveUnpaid}

	once, err := UpsertLeave(nil, entry)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	twice, err := UpsertLeave(once, entry)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(once, twice) {
		t.Fatalf("expected idempotent upsert, got %+v vs %+v", once, twice)
	}
}

func TestUpsertLeaveUniquePerDate(t *testing.T) {
	var leaves []LeaveEntry
	var err error
	for _, typ := range []LeaveType{LeaveAnnual, LeaveMedical, LeaveOthers} {
		leaves, err = UpsertLeave(leaves, LeaveEntry{Date: "2026-05-04", Type: typ})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}
	if len(leaves) != 1 {
		t.Fatalf("expected single entry per date, got %d", len(leaves))
	}
	if leaves[0].Type != LeaveOthers {
		t.Fatalf("expected most recent upsert to win, got %s", leaves[0].Type)
	}
}

func TestUpsertLeaveRejectsInvalidInput(t *testing.T) {
	leaves := []LeaveEntry{{ID: "a", Date: "2026-03-02", Type: LeaveAnnual}}

	next, err := UpsertLeave(leaves, LeaveEntry{Date: "not-a-date", Type: LeaveAnnual})
	if !errors.Is(err, ErrInvalidDate) {
		t.Fatalf("expected ErrInvalidDate, got %v", err)
	}
	if !reflect.DeepEqual(next, leaves) {
		t.Fatal("state must be unchanged on rejection")
	}

	next, err = UpsertLeave(leaves, LeaveEntry{Date: "2026-03-05", Type: "Sabbatical"})
	if !errors.Is(err, ErrInvalidLeaveType) {
		t.Fatalf("expected ErrInvalidLeaveType, got %v", err)
	}
	if !reflect.DeepEqual(next, leaves) {
		t.Fatal("state must be unchanged on rejection")
	}
}

func TestRemoveLeave(t *testing.T) {
	leaves := []LeaveEntry{
		{ID: "a", Date: "2026-03-02", Type: LeaveAnnual},
		{ID: "b", Date: "2026-03-03", Type: LeaveMedical},
	}

	next := RemoveLeave(leaves, "2026-03-02")
	if len(next) != 1 || next[0].ID != "b" {
		t.Fatalf("unexpected result: %+v", next)
	}

	miss := RemoveLeave(leaves, "2026-12-31")
	if !reflect.DeepEqual(miss, leaves) {
		t.Fatal("miss must be a no-op")
	}
}

func TestUpsertCustomHolidayValidation(t *testing.T) {
	holidays := []CustomHoliday{{ID: "h1", Date: "2026-07-07", Name: "Team Day"}}

	next, err := UpsertCustomHoliday(holidays, CustomHoliday{Date: "2026-07-08", Name: "   "})
	if !errors.Is(err, ErrEmptyName) {
		t.Fatalf("expected ErrEmptyName, got %v", err)
	}
	if !reflect.DeepEqual(next, holidays) {
		t.Fatal("state must be unchanged on rejection")
	}

	next, err = UpsertCustomHoliday(holidays, CustomHoliday{Date: "2026-07-08", Name: "  Offsite  "})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if next[1].Name != "Offsite" {
		t.Fatalf("expected trimmed name, got %q", next[1].Name)
	}
	if next[1].ID == "" {
		t.Fatal("expected generated id")
	}
}

func TestUpsertCustomHolidayReplacesByDate(t *testing.T) {
	holidays := []CustomHoliday{{ID: "h1", Date: "2026-07-07", Name: "Team Day"}}

	next, err := UpsertCustomHoliday(holidays, CustomHoliday{Date: "2026-07-07", Name: "Company Day"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(next) != 1 || next[0].ID != "h1" || next[0].Name != "Company Day" {
		t.Fatalf("unexpected result: %+v", next)
	}
}

func TestRemoveCustomHoliday(t *testing.T) {
	holidays := []CustomHoliday{{ID: "h1", Date: "2026-07-07", Name: "Team Day"}}
	if got := RemoveCustomHoliday(holidays, "2026-07-07"); len(got) != 0 {
		t.Fatalf("expected empty collection, got %+v", got)
	}
	if got := RemoveCustomHoliday(holidays, "2026-07-08"); len(got) != 1 {
		t.Fatal("miss must be a no-op")
	}
}

func TestBalance(t *testing.T) {
	if got := Balance(14, nil); got != 14 {
		t.Fatalf("expected 14, got %d", got)
	}

	five := make([]LeaveEntry, 5)
	if got := Balance(14, five); got != 9 {
		t.Fatalf("expected 9, got %d", got)
	}

	seven := make([]LeaveEntry, 7)
	if got := Balance(5, seven); got != -2 {
		t.Fatalf("expected -2, got %d", got)
	}
}
