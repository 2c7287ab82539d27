package schedule

import (
	"testing"
	"time"
)

// 2025-06-02 is a Monday.
func monday() time.Time {
	return time.Date(2025, 6, 2, 0, 0, 0, 0, time.Local)
}

func at(date time.Time, hour, minute int) time.Time {
	return time.Date(date.Year(), date.Month(), date.Day(), hour, minute, 0, 0, date.Location())
}

func TestIsOpenOn_ClosedDays(t *testing.T) {
	hours := DefaultBusinessHours()

	sunday := time.Date(2025, 6, 1, 0, 0, 0, 0, time.Local)
	thursday := time.Date(2025, 6, 5, 0, 0, 0, 0, time.Local)

	if hours.IsOpenOn(sunday) {
		t.Error("shop should be closed on Sunday")
	}
	if hours.IsOpenOn(thursday) {
		t.Error("shop should be closed on Thursday")
	}
	if !hours.IsOpenOn(monday()) {
		t.Error("shop should be open on Monday")
	}
}

func TestSlots_ClosedDayYieldsNone(t *testing.T) {
	hours := DefaultBusinessHours()
	thursday := time.Date(2025, 6, 5, 0, 0, 0, 0, time.Local)

	slots := hours.Slots(thursday, at(thursday, 8, 0))
	if len(slots) != 0 {
		t.Errorf("closed day produced %d slots, want 0", len(slots))
	}
}

func TestSlots_HalfHourGranularity(t *testing.T) {
	hours := DefaultBusinessHours()
	hours.SlotMinutes = 30

	slots := hours.Slots(monday(), at(monday(), 8, 0))
	if len(slots) != 20 {
		t.Fatalf("slot count = %d, want 20", len(slots))
	}
	if slots[0] != "09:00" {
		t.Errorf("first slot = %q, want %q", slots[0], "09:00")
	}
	if slots[len(slots)-1] != "18:30" {
		t.Errorf("last slot = %q, want %q", slots[len(slots)-1], "18:30")
	}
}

func TestSlots_HourlyGranularity(t *testing.T) {
	hours := DefaultBusinessHours()

	slots := hours.Slots(monday(), at(monday(), 8, 0))
	if len(slots) != 10 {
		t.Fatalf("slot count = %d, want 10", len(slots))
	}
	if slots[0] != "09:00" {
		t.Errorf("first slot = %q, want %q", slots[0], "09:00")
	}
	if slots[len(slots)-1] != "18:00" {
		t.Errorf("last slot = %q, want %q", slots[len(slots)-1], "18:00")
	}
}

func TestSlots_ExcludesPastAndCurrentTimes(t *testing.T) {
	hours := DefaultBusinessHours()

	// At exactly 12:00, the 12:00 slot is not strictly in the future
	slots := hours.Slots(monday(), at(monday(), 12, 0))
	for _, s := range slots {
		if s == "12:00" {
			t.Error("slot equal to the current moment should be excluded")
		}
	}
	if len(slots) == 0 {
		t.Fatal("expected afternoon slots to remain")
	}
	if slots[0] != "13:00" {
		t.Errorf("first slot = %q, want %q", slots[0], "13:00")
	}
}

func TestSlots_NonEmptyBeforeEndOfDay(t *testing.T) {
	hours := DefaultBusinessHours()

	for day := 0; day < 7; day++ {
		date := monday().AddDate(0, 0, day)
		if !hours.IsOpenOn(date) {
			continue
		}
		slots := hours.Slots(date, at(date, 18, 0))
		if len(slots) == 0 {
			t.Errorf("open day %s before close produced no slots", date.Weekday())
		}
	}
}

func TestSlots_Deterministic(t *testing.T) {
	hours := DefaultBusinessHours()
	now := at(monday(), 8, 0)

	first := hours.Slots(monday(), now)
	second := hours.Slots(monday(), now)
	if len(first) != len(second) {
		t.Fatalf("slot counts differ: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if first[i] != second[i] {
			t.Errorf("slot %d differs: %q vs %q", i, first[i], second[i])
		}
	}
}
