package scheduling

import (
	"fmt"
	"time"

	userRepo "medicalkz/database/repository/user"
	"medicalkz/models"
)

// weekdayNames is the explicit Sunday=0..Saturday=6 mapping used to match a
// calendar date against a doctor's working-day set. Spelled out rather than
// derived so the numbering convention is pinned in one place.
var weekdayNames = map[time.Weekday]string{
	time.Sunday:    "SUNDAY",
	time.Monday:    "MONDAY",
	time.Tuesday:   "TUESDAY",
	time.Wednesday: "WEDNESDAY",
	time.Thursday:  "THURSDAY",
	time.Friday:    "FRIDAY",
	time.Saturday:  "SATURDAY",
}

// IsValidWeekdayName reports whether name is one of SUNDAY..SATURDAY.
func IsValidWeekdayName(name string) bool {
	for _, n := range weekdayNames {
		if n == name {
			return true
		}
	}
	return false
}

// WeekdayName returns the uppercase weekday name for an ISO "YYYY-MM-DD" date.
func WeekdayName(date string) (string, error) {
	day, err := time.Parse("2006-01-02", date)
	if err != nil {
		return "", NewInvalidDateError(fmt.Sprintf("date %q is not in YYYY-MM-DD format", date))
	}
	return weekdayNames[day.Weekday()], nil
}

// Engine computes bookable slots for a doctor and date. It holds no state of
// its own; every query recomputes availability from the doctor's weekly
// pattern and the current set of active appointments.
type Engine struct {
	Users    userRepo.UserRepository
	Conflict *ConflictDetector
}

// NewEngine wires the availability engine over the given stores.
func NewEngine(users userRepo.UserRepository, appts *ConflictDetector) *Engine {
	return &Engine{Users: users, Conflict: appts}
}

// GetAvailability resolves the doctor's weekly pattern, cuts the working
// window into slots at the default granularity and annotates each slot with
// its booked/free status. A non-working day is a normal outcome, not an error.
func (e *Engine) GetAvailability(doctorID, date string) (*models.DayAvailability, error) {
	doctor, err := e.Users.GetByID(doctorID)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve doctor %s: %w", doctorID, err)
	}
	if doctor == nil || doctor.Role != models.RoleDoctor || doctor.DoctorProfile == nil {
		return nil, NewUnknownClinicianError("invalid doctor ID")
	}

	dayName, err := WeekdayName(date)
	if err != nil {
		return nil, err
	}

	availability := doctor.DoctorProfile.Availability
	if !containsDay(availability.WorkingDays, dayName) {
		return &models.DayAvailability{IsWorkingDay: false, Slots: []models.Slot{}}, nil
	}

	window, err := ParseInterval(availability.WorkingHours.Start, availability.WorkingHours.End)
	if err != nil {
		return nil, fmt.Errorf("doctor %s has malformed working hours: %w", doctorID, err)
	}

	candidates := GenerateSlots(window, DefaultSlotGranularityMinutes)
	slots := make([]models.Slot, 0, len(candidates))
	for _, candidate := range candidates {
		conflicted, err := e.Conflict.HasConflict(doctorID, date, candidate)
		if err != nil {
			return nil, err
		}
		slots = append(slots, models.Slot{
			StartTime:   candidate.Start.String(),
			EndTime:     candidate.End.String(),
			IsAvailable: !conflicted,
		})
	}

	hours := models.WorkingHours{Start: availability.WorkingHours.Start, End: availability.WorkingHours.End}
	return &models.DayAvailability{
		IsWorkingDay: true,
		WorkingHours: &hours,
		Slots:        slots,
	}, nil
}

func containsDay(days []string, name string) bool {
	for _, d := range days {
		if d == name {
			return true
		}
	}
	return false
}
