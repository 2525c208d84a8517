package scheduling

import (
	"fmt"

	appointmentRepo "medicalkz/database/repository/appointment"
	"medicalkz/models"
	"medicalkz/utils"

	"go.uber.org/zap"
)

// inactiveStatuses are excluded from conflict and availability computation.
// Cancelled and no-show records are history, not occupancy.
var inactiveStatuses = []models.AppointmentStatus{
	models.StatusCancelled,
	models.StatusNoShow,
}

// ConflictDetector answers whether a candidate interval collides with an
// existing active booking. It is stateless: every call re-reads the store,
// because concurrent booking attempts can race and a cached answer would lie.
type ConflictDetector struct {
	Appointments appointmentRepo.AppointmentRepository
}

// HasConflict reports whether any non-cancelled, non-no-show appointment for
// the doctor on the date overlaps the candidate interval.
func (cd *ConflictDetector) HasConflict(doctorID, date string, candidate Interval) (bool, error) {
	return cd.HasConflictExcluding(doctorID, date, candidate, "")
}

// HasConflictExcluding is HasConflict with one appointment left out of the
// comparison. Rescheduling uses it so an appointment cannot conflict with
// its own previous time.
func (cd *ConflictDetector) HasConflictExcluding(doctorID, date string, candidate Interval, excludeApptID string) (bool, error) {
	existing, err := cd.Appointments.FindByDoctorAndDate(doctorID, date, inactiveStatuses)
	if err != nil {
		return false, fmt.Errorf("failed to fetch appointments for conflict check: %w", err)
	}

	for _, appt := range existing {
		if excludeApptID != "" && appt.ID == excludeApptID {
			continue
		}
		booked, err := ParseInterval(appt.StartTime, appt.EndTime)
		if err != nil {
			// A stored appointment that no longer parses should never block
			// the whole calendar; log and treat it as occupying nothing.
			utils.GetLogger().Warn("skipping appointment with unparsable interval",
				zap.String("appointmentID", appt.ID), zap.Error(err))
			continue
		}
		if Overlaps(candidate, booked) {
			return true, nil
		}
	}
	return false, nil
}
