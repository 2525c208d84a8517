package appointment

import "medicalkz/models"

// AppointmentService governs admission and every later mutation of a booking.
// Every operation receives the authenticated caller; the service authorizes
// against that identity but never authenticates.
type AppointmentService interface {
	// Create admits a new appointment after resolving the target doctor and
	// re-checking the requested interval for conflicts.
	Create(caller models.Caller, req CreateRequest) (*models.Appointment, error)
	// Get returns one appointment, visible to its patient, its doctor or an admin.
	Get(caller models.Caller, id string) (*models.Appointment, error)
	// List returns the caller's appointments page by page. Patients see their
	// own bookings, doctors their own calendar, admins everything.
	List(caller models.Caller, filter models.AppointmentFilter) ([]models.Appointment, int64, error)
	// Update applies field changes through the doctor/admin path, enforcing
	// the lifecycle state machine and re-checking conflicts on reschedule.
	Update(caller models.Caller, id string, update models.AppointmentUpdate) (*models.Appointment, error)
	// Cancel is the dedicated cancel action, the only transition a patient may drive.
	Cancel(caller models.Caller, id string) (*models.Appointment, error)
	// Delete hard-removes an appointment. Doctors and admins only.
	Delete(caller models.Caller, id string) error
}

// CreateRequest carries a booking request across the boundary. Dates are
// "YYYY-MM-DD", times "HH:MM"; both are parsed and rejected before admission.
type CreateRequest struct {
	PatientID       string                 `json:"patientId"`
	DoctorID        string                 `json:"doctorId" binding:"required"`
	Date            string                 `json:"date" binding:"required"`
	StartTime       string                 `json:"startTime" binding:"required"`
	EndTime         string                 `json:"endTime" binding:"required"`
	AppointmentType models.AppointmentType `json:"appointmentType"`
	Reason          string                 `json:"reason"`
	Symptoms        []string               `json:"symptoms"`
	IsTelehealth    bool                   `json:"isTelehealth"`
}
