package models

import "time"

// AppointmentStatus is the lifecycle state of a booking.
type AppointmentStatus string

const (
	StatusScheduled AppointmentStatus = "SCHEDULED"
	StatusConfirmed AppointmentStatus = "CONFIRMED"
	StatusCompleted AppointmentStatus = "COMPLETED"
	StatusCancelled AppointmentStatus = "CANCELLED"
	StatusNoShow    AppointmentStatus = "NO_SHOW"
)

// AppointmentType categorizes a booking.
type AppointmentType string

const (
	TypeRegular      AppointmentType = "REGULAR"
	TypeFollowUp     AppointmentType = "FOLLOW_UP"
	TypeEmergency    AppointmentType = "EMERGENCY"
	TypeConsultation AppointmentType = "CONSULTATION"
	TypeTelehealth   AppointmentType = "TELEHEALTH"
)

// Appointment represents a booked consultation between a patient and a doctor.
// Cancellation is a status transition; deletion is a hard remove.
type Appointment struct {
	ID              string            `bson:"id" json:"id"`
	PatientID       string            `bson:"patientId" json:"patientId"`
	DoctorID        string            `bson:"doctorId" json:"doctorId"`
	Date            string            `bson:"date" json:"date"`           // "YYYY-MM-DD"
	StartTime       string            `bson:"startTime" json:"startTime"` // "HH:MM"
	EndTime         string            `bson:"endTime" json:"endTime"`     // "HH:MM"
	Status          AppointmentStatus `bson:"status" json:"status"`
	AppointmentType AppointmentType   `bson:"appointmentType" json:"appointmentType"`
	Reason          string            `bson:"reason,omitempty" json:"reason,omitempty"`
	Symptoms        []string          `bson:"symptoms,omitempty" json:"symptoms,omitempty"`
	Diagnosis       string            `bson:"diagnosis,omitempty" json:"diagnosis,omitempty"`
	TreatmentPlan   string            `bson:"treatmentPlan,omitempty" json:"treatmentPlan,omitempty"`
	Notes           string            `bson:"notes,omitempty" json:"notes,omitempty"`
	IsTelehealth    bool              `bson:"isTelehealth,omitempty" json:"isTelehealth,omitempty"`
	TelehealthLink  string            `bson:"telehealthLink,omitempty" json:"telehealthLink,omitempty"`
	CreatedAt       time.Time         `bson:"created_at" json:"createdAt"`
	UpdatedAt       time.Time         `bson:"updated_at" json:"updatedAt"`
	ConfirmedAt     *time.Time        `bson:"confirmedAt,omitempty" json:"confirmedAt,omitempty"`
	CompletedAt     *time.Time        `bson:"completedAt,omitempty" json:"completedAt,omitempty"`
	CancelledAt     *time.Time        `bson:"cancelledAt,omitempty" json:"cancelledAt,omitempty"`
}

// IsTerminal reports whether no further lifecycle transition is permitted.
func (s AppointmentStatus) IsTerminal() bool {
	return s == StatusCompleted || s == StatusCancelled || s == StatusNoShow
}

// AppointmentFilter narrows appointment listings.
type AppointmentFilter struct {
	PatientID string
	DoctorID  string
	StartDate string // inclusive, "YYYY-MM-DD"
	EndDate   string // inclusive, "YYYY-MM-DD"
	Status    AppointmentStatus
	Page      int
	Limit     int
}

// AppointmentUpdate carries the fields a doctor (or admin) may change through
// the generic update operation. Nil pointers leave the stored value untouched.
type AppointmentUpdate struct {
	Date            *string            `json:"date,omitempty"`
	StartTime       *string            `json:"startTime,omitempty"`
	EndTime         *string            `json:"endTime,omitempty"`
	Status          *AppointmentStatus `json:"status,omitempty"`
	AppointmentType *AppointmentType   `json:"appointmentType,omitempty"`
	Reason          *string            `json:"reason,omitempty"`
	Symptoms        []string           `json:"symptoms,omitempty"`
	Diagnosis       *string            `json:"diagnosis,omitempty"`
	TreatmentPlan   *string            `json:"treatmentPlan,omitempty"`
	Notes           *string            `json:"notes,omitempty"`
	TelehealthLink  *string            `json:"telehealthLink,omitempty"`
}
