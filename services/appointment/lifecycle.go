package appointment

import (
	"fmt"
	"time"

	"medicalkz/models"
)

// allowedTransitions encodes the booking state machine:
// SCHEDULED → CONFIRMED → COMPLETED, with CANCELLED and NO_SHOW reachable
// from any non-terminal state. Terminal states map to an empty set.
var allowedTransitions = map[models.AppointmentStatus]map[models.AppointmentStatus]bool{
	models.StatusScheduled: {
		models.StatusConfirmed: true,
		models.StatusCancelled: true,
		models.StatusNoShow:    true,
	},
	models.StatusConfirmed: {
		models.StatusCompleted: true,
		models.StatusCancelled: true,
		models.StatusNoShow:    true,
	},
	models.StatusCompleted: {},
	models.StatusCancelled: {},
	models.StatusNoShow:    {},
}

// roleTransitionPolicy maps (role, target status) to allow/deny. Patients may
// only move an appointment to CANCELLED; doctors and admins may drive the full
// state machine. Kept as a table so the transition matrix is testable directly.
var roleTransitionPolicy = map[models.Role]map[models.AppointmentStatus]bool{
	models.RolePatient: {
		models.StatusCancelled: true,
	},
	models.RoleDoctor: {
		models.StatusConfirmed: true,
		models.StatusCompleted: true,
		models.StatusCancelled: true,
		models.StatusNoShow:    true,
	},
	models.RoleAdmin: {
		models.StatusConfirmed: true,
		models.StatusCompleted: true,
		models.StatusCancelled: true,
		models.StatusNoShow:    true,
	},
}

// CanTransition reports whether the state machine permits moving from one
// status to another.
func CanTransition(from, to models.AppointmentStatus) bool {
	return allowedTransitions[from][to]
}

// RoleMaySet reports whether the role is ever permitted to set the target
// status, independent of the current state.
func RoleMaySet(role models.Role, to models.AppointmentStatus) bool {
	return roleTransitionPolicy[role][to]
}

// applyTransition validates and performs a status change, recording the
// transition timestamp the new status carries.
func applyTransition(appt *models.Appointment, to models.AppointmentStatus, now time.Time) error {
	if !CanTransition(appt.Status, to) {
		return NewInvalidTransitionError(
			fmt.Sprintf("cannot move appointment from %s to %s", appt.Status, to))
	}
	appt.Status = to
	switch to {
	case models.StatusConfirmed:
		appt.ConfirmedAt = &now
	case models.StatusCompleted:
		appt.CompletedAt = &now
	case models.StatusCancelled:
		appt.CancelledAt = &now
	}
	return nil
}
