package appointment

import (
	"errors"
	"fmt"
	"time"

	appointmentRepo "medicalkz/database/repository/appointment"
	userRepo "medicalkz/database/repository/user"
	"medicalkz/models"
	"medicalkz/services/scheduling"
	"medicalkz/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// DefaultAppointmentService is the production implementation of AppointmentService.
type DefaultAppointmentService struct {
	Repo     appointmentRepo.AppointmentRepository
	Users    userRepo.UserRepository
	Conflict *scheduling.ConflictDetector
}

// Create admits a new appointment. The conflict check here is a fast reject;
// the repository re-checks inside a transaction because concurrent requests
// for the same doctor can race between this read and the write.
func (s *DefaultAppointmentService) Create(caller models.Caller, req CreateRequest) (*models.Appointment, error) {
	patientID := req.PatientID
	if patientID == "" {
		patientID = caller.ID
	}
	if caller.Role == models.RolePatient && patientID != caller.ID {
		return nil, NewNotAuthorizedError("patients can only book appointments for themselves")
	}

	doctor, err := s.Users.GetByID(req.DoctorID)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve doctor: %w", err)
	}
	if doctor == nil || doctor.Role != models.RoleDoctor {
		return nil, scheduling.NewUnknownClinicianError("invalid doctor ID")
	}

	if _, err := scheduling.WeekdayName(req.Date); err != nil {
		return nil, err
	}
	candidate, err := scheduling.ParseInterval(req.StartTime, req.EndTime)
	if err != nil {
		return nil, err
	}

	conflicted, err := s.Conflict.HasConflict(req.DoctorID, req.Date, candidate)
	if err != nil {
		return nil, err
	}
	if conflicted {
		return nil, scheduling.NewSlotUnavailableError("doctor is not available at the requested time")
	}

	apptType := req.AppointmentType
	if apptType == "" {
		apptType = models.TypeRegular
	}

	appt := &models.Appointment{
		ID:              uuid.New().String(),
		PatientID:       patientID,
		DoctorID:        req.DoctorID,
		Date:            req.Date,
		StartTime:       candidate.Start.String(),
		EndTime:         candidate.End.String(),
		Status:          models.StatusScheduled,
		AppointmentType: apptType,
		Reason:          req.Reason,
		Symptoms:        req.Symptoms,
		IsTelehealth:    req.IsTelehealth || apptType == models.TypeTelehealth,
	}

	if err := s.Repo.Create(appt); err != nil {
		if errors.Is(err, appointmentRepo.ErrOverlappingBooking) {
			return nil, scheduling.NewSlotUnavailableError("doctor is not available at the requested time")
		}
		return nil, err
	}

	utils.GetLogger().Info("appointment created",
		zap.String("appointmentID", appt.ID),
		zap.String("doctorID", appt.DoctorID),
		zap.String("date", appt.Date))
	return appt, nil
}

// Get returns one appointment, visible to its patient, its doctor or an admin.
func (s *DefaultAppointmentService) Get(caller models.Caller, id string) (*models.Appointment, error) {
	appt, err := s.Repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if appt == nil {
		return nil, NewNotFoundError("appointment not found")
	}
	if !s.isParticipantOrAdmin(caller, appt) {
		return nil, NewNotAuthorizedError("not authorized to view this appointment")
	}
	return appt, nil
}

// List returns the caller's appointments. The role scope is applied on top of
// whatever filter the caller supplied.
func (s *DefaultAppointmentService) List(caller models.Caller, filter models.AppointmentFilter) ([]models.Appointment, int64, error) {
	switch caller.Role {
	case models.RolePatient:
		filter.PatientID = caller.ID
	case models.RoleDoctor:
		filter.DoctorID = caller.ID
	}
	return s.Repo.List(filter)
}

// Update applies field changes through the doctor/admin path. Patients are
// rejected here outright: their only permitted mutation is the dedicated
// cancel action.
func (s *DefaultAppointmentService) Update(caller models.Caller, id string, update models.AppointmentUpdate) (*models.Appointment, error) {
	appt, err := s.Repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if appt == nil {
		return nil, NewNotFoundError("appointment not found")
	}
	if !s.isParticipantOrAdmin(caller, appt) {
		return nil, NewNotAuthorizedError("not authorized to update this appointment")
	}
	if caller.Role == models.RolePatient {
		return nil, NewNotAuthorizedError("patients can only cancel appointments")
	}

	now := time.Now()

	if update.Status != nil && *update.Status != appt.Status {
		if !RoleMaySet(caller.Role, *update.Status) {
			return nil, NewNotAuthorizedError(
				fmt.Sprintf("role %s may not set status %s", caller.Role, *update.Status))
		}
		if err := applyTransition(appt, *update.Status, now); err != nil {
			return nil, err
		}
	}

	rescheduled := false
	if update.Date != nil {
		appt.Date = *update.Date
		rescheduled = true
	}
	if update.StartTime != nil {
		appt.StartTime = *update.StartTime
		rescheduled = true
	}
	if update.EndTime != nil {
		appt.EndTime = *update.EndTime
		rescheduled = true
	}
	if rescheduled {
		if _, err := scheduling.WeekdayName(appt.Date); err != nil {
			return nil, err
		}
		candidate, err := scheduling.ParseInterval(appt.StartTime, appt.EndTime)
		if err != nil {
			return nil, err
		}
		appt.StartTime = candidate.Start.String()
		appt.EndTime = candidate.End.String()
		conflicted, err := s.Conflict.HasConflictExcluding(appt.DoctorID, appt.Date, candidate, appt.ID)
		if err != nil {
			return nil, err
		}
		if conflicted {
			return nil, scheduling.NewSlotUnavailableError("doctor is not available at the requested time")
		}
	}

	if update.AppointmentType != nil {
		appt.AppointmentType = *update.AppointmentType
	}
	if update.Reason != nil {
		appt.Reason = *update.Reason
	}
	if update.Symptoms != nil {
		appt.Symptoms = update.Symptoms
	}
	if update.Diagnosis != nil {
		appt.Diagnosis = *update.Diagnosis
	}
	if update.TreatmentPlan != nil {
		appt.TreatmentPlan = *update.TreatmentPlan
	}
	if update.Notes != nil {
		appt.Notes = *update.Notes
	}
	if update.TelehealthLink != nil {
		appt.TelehealthLink = *update.TelehealthLink
		appt.IsTelehealth = *update.TelehealthLink != ""
	}

	if err := s.Repo.Update(appt); err != nil {
		return nil, err
	}
	return appt, nil
}

// Cancel is the dedicated cancel action. Any participant (or an admin) may
// cancel, from any non-terminal state.
func (s *DefaultAppointmentService) Cancel(caller models.Caller, id string) (*models.Appointment, error) {
	appt, err := s.Repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if appt == nil {
		return nil, NewNotFoundError("appointment not found")
	}
	if !s.isParticipantOrAdmin(caller, appt) {
		return nil, NewNotAuthorizedError("not authorized to cancel this appointment")
	}

	if err := applyTransition(appt, models.StatusCancelled, time.Now()); err != nil {
		return nil, err
	}
	if err := s.Repo.Update(appt); err != nil {
		return nil, err
	}

	utils.GetLogger().Info("appointment cancelled",
		zap.String("appointmentID", appt.ID),
		zap.String("cancelledBy", caller.ID))
	return appt, nil
}

// Delete hard-removes an appointment. Only the owning doctor or an admin may
// delete; cancellation is the patient-facing path.
func (s *DefaultAppointmentService) Delete(caller models.Caller, id string) error {
	appt, err := s.Repo.GetByID(id)
	if err != nil {
		return err
	}
	if appt == nil {
		return NewNotFoundError("appointment not found")
	}
	if caller.Role != models.RoleAdmin && !(caller.Role == models.RoleDoctor && caller.ID == appt.DoctorID) {
		return NewNotAuthorizedError("not authorized to delete this appointment")
	}
	return s.Repo.Delete(id)
}

// isParticipantOrAdmin reports whether the caller owns either side of the
// appointment or is a platform administrator. Checked before any state
// inspection so outsiders learn nothing about the record.
func (s *DefaultAppointmentService) isParticipantOrAdmin(caller models.Caller, appt *models.Appointment) bool {
	if caller.Role == models.RoleAdmin {
		return true
	}
	return caller.ID == appt.PatientID || caller.ID == appt.DoctorID
}
