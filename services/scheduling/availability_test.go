package scheduling

import (
	"errors"
	"testing"

	"medicalkz/models"
)

func newTestEngine(appts []models.Appointment) *Engine {
	users := &fakeUserStore{users: map[string]*models.User{
		"doc-1": {
			ID:   "doc-1",
			Role: models.RoleDoctor,
			DoctorProfile: &models.DoctorProfile{
				Availability: models.WeeklyAvailability{
					WorkingDays:  []string{"MONDAY", "TUESDAY", "WEDNESDAY", "THURSDAY", "FRIDAY"},
					WorkingHours: models.WorkingHours{Start: "09:00", End: "17:00"},
				},
			},
		},
		"pat-1": {ID: "pat-1", Role: models.RolePatient},
	}}
	return NewEngine(users, &ConflictDetector{Appointments: &fakeAppointmentStore{appointments: appts}})
}

func TestWeekdayName(t *testing.T) {
	tests := []struct {
		date string
		want string
	}{
		{"2024-01-01", "MONDAY"},
		{"2024-01-06", "SATURDAY"},
		{"2024-01-07", "SUNDAY"},
	}
	for _, tc := range tests {
		got, err := WeekdayName(tc.date)
		if err != nil {
			t.Errorf("WeekdayName(%s): unexpected error %v", tc.date, err)
			continue
		}
		if got != tc.want {
			t.Errorf("WeekdayName(%s) = %s, want %s", tc.date, got, tc.want)
		}
	}
}

func TestWeekdayNameRejectsMalformedDate(t *testing.T) {
	_, err := WeekdayName("01/01/2024")
	var schedErr *Error
	if !errors.As(err, &schedErr) || schedErr.Code != CodeInvalidDate {
		t.Fatalf("expected %s error, got %v", CodeInvalidDate, err)
	}
}

func TestIsValidWeekdayName(t *testing.T) {
	for _, name := range []string{"SUNDAY", "MONDAY", "TUESDAY", "WEDNESDAY", "THURSDAY", "FRIDAY", "SATURDAY"} {
		if !IsValidWeekdayName(name) {
			t.Errorf("%s should be a valid weekday name", name)
		}
	}
	for _, name := range []string{"monday", "Mon", "FUNDAY", ""} {
		if IsValidWeekdayName(name) {
			t.Errorf("%s should not be a valid weekday name", name)
		}
	}
}

func TestGetAvailabilityWorkingDayAllFree(t *testing.T) {
	engine := newTestEngine(nil)

	// 2024-01-01 is a Monday.
	day, err := engine.GetAvailability("doc-1", "2024-01-01")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !day.IsWorkingDay {
		t.Fatal("Monday should be a working day")
	}
	if day.WorkingHours == nil || day.WorkingHours.Start != "09:00" || day.WorkingHours.End != "17:00" {
		t.Errorf("working hours = %+v", day.WorkingHours)
	}
	if len(day.Slots) != 16 {
		t.Fatalf("got %d slots, want 16", len(day.Slots))
	}
	for _, slot := range day.Slots {
		if !slot.IsAvailable {
			t.Errorf("slot %s-%s should be available on an empty calendar", slot.StartTime, slot.EndTime)
		}
	}
}

func TestGetAvailabilityMarksBookedSlot(t *testing.T) {
	engine := newTestEngine([]models.Appointment{
		{ID: "a1", DoctorID: "doc-1", Date: "2024-01-01", StartTime: "10:00", EndTime: "10:30", Status: models.StatusConfirmed},
	})

	day, err := engine.GetAvailability("doc-1", "2024-01-01")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	unavailable := 0
	for _, slot := range day.Slots {
		if slot.StartTime == "10:00" {
			if slot.IsAvailable {
				t.Error("10:00-10:30 should be marked unavailable")
			}
			unavailable++
		} else if !slot.IsAvailable {
			t.Errorf("slot %s-%s should remain available", slot.StartTime, slot.EndTime)
		}
	}
	if unavailable != 1 {
		t.Errorf("expected exactly one unavailable slot, found %d", unavailable)
	}
}

func TestGetAvailabilityCancelledBookingFreesSlot(t *testing.T) {
	engine := newTestEngine([]models.Appointment{
		{ID: "a1", DoctorID: "doc-1", Date: "2024-01-01", StartTime: "10:00", EndTime: "10:30", Status: models.StatusCancelled},
	})

	day, err := engine.GetAvailability("doc-1", "2024-01-01")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, slot := range day.Slots {
		if !slot.IsAvailable {
			t.Errorf("slot %s-%s blocked by a cancelled booking", slot.StartTime, slot.EndTime)
		}
	}
}

func TestGetAvailabilityNonWorkingDay(t *testing.T) {
	engine := newTestEngine(nil)

	// 2024-01-07 is a Sunday; the doctor works Monday through Friday.
	day, err := engine.GetAvailability("doc-1", "2024-01-07")
	if err != nil {
		t.Fatalf("a non-working day is a normal outcome, not an error: %v", err)
	}
	if day.IsWorkingDay {
		t.Error("Sunday should not be a working day")
	}
	if len(day.Slots) != 0 {
		t.Errorf("got %d slots on a non-working day, want 0", len(day.Slots))
	}
}

func TestGetAvailabilityUnknownDoctor(t *testing.T) {
	engine := newTestEngine(nil)

	for _, id := range []string{"missing", "pat-1"} {
		_, err := engine.GetAvailability(id, "2024-01-01")
		var schedErr *Error
		if !errors.As(err, &schedErr) || schedErr.Code != CodeUnknownClinician {
			t.Errorf("GetAvailability(%s): expected %s error, got %v", id, CodeUnknownClinician, err)
		}
	}
}

func TestGetAvailabilityRejectsMalformedDate(t *testing.T) {
	engine := newTestEngine(nil)

	_, err := engine.GetAvailability("doc-1", "Jan 1 2024")
	var schedErr *Error
	if !errors.As(err, &schedErr) || schedErr.Code != CodeInvalidDate {
		t.Fatalf("expected %s error, got %v", CodeInvalidDate, err)
	}
}

func TestGetAvailabilityIsIdempotent(t *testing.T) {
	engine := newTestEngine([]models.Appointment{
		{ID: "a1", DoctorID: "doc-1", Date: "2024-01-01", StartTime: "14:00", EndTime: "14:30", Status: models.StatusScheduled},
	})

	first, err := engine.GetAvailability("doc-1", "2024-01-01")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := engine.GetAvailability("doc-1", "2024-01-01")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(first.Slots) != len(second.Slots) {
		t.Fatalf("slot counts differ: %d vs %d", len(first.Slots), len(second.Slots))
	}
	for i := range first.Slots {
		if first.Slots[i] != second.Slots[i] {
			t.Errorf("slot %d differs between identical queries: %+v vs %+v", i, first.Slots[i], second.Slots[i])
		}
	}
}
