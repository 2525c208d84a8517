package appointmentRepo

import (
	"errors"

	"medicalkz/models"
)

// ErrOverlappingBooking is returned by Create when the transactional overlap
// guard finds an active appointment already occupying the requested interval.
var ErrOverlappingBooking = errors.New("an active appointment already occupies the requested interval")

// AppointmentRepository defines methods for appointment data access. It is the
// appointment store the scheduling engine reads and the lifecycle writes.
type AppointmentRepository interface {
	// GetByID retrieves an appointment by its unique ID, or nil when absent.
	GetByID(id string) (*models.Appointment, error)
	// FindByDoctorAndDate retrieves the doctor's appointments on a date,
	// skipping the given statuses. Used by conflict and availability checks.
	FindByDoctorAndDate(doctorID, date string, excludeStatuses []models.AppointmentStatus) ([]models.Appointment, error)
	// List retrieves appointments matching the filter in ascending
	// (date, startTime) order, page by page, along with the total match count.
	List(filter models.AppointmentFilter) ([]models.Appointment, int64, error)
	// Create inserts a new appointment inside a transaction that re-checks the
	// no-overlap invariant; returns ErrOverlappingBooking when it would break.
	Create(appt *models.Appointment) error
	// Update replaces an existing appointment document.
	Update(appt *models.Appointment) error
	// Delete hard-removes an appointment. Distinct from cancellation.
	Delete(id string) error
}
