package models

import "time"

// Role identifies what a caller is allowed to do on the platform.
type Role string

const (
	RolePatient Role = "PATIENT"
	RoleDoctor  Role = "DOCTOR"
	RoleAdmin   Role = "ADMIN"
)

// WorkingHours is a doctor's single daily availability window. Times are
// zero-padded "HH:MM" strings; zero-padding makes them ordered under plain
// string comparison.
type WorkingHours struct {
	Start string `bson:"start" json:"start"`
	End   string `bson:"end" json:"end"`
}

// WeeklyAvailability describes on which weekdays and hours a doctor accepts
// bookings. Mutated only through the profile-update operation.
type WeeklyAvailability struct {
	WorkingDays              []string     `bson:"workingDays" json:"workingDays"` // e.g. ["MONDAY", "TUESDAY"]
	WorkingHours             WorkingHours `bson:"workingHours" json:"workingHours"`
	IsAvailableForHomeVisits bool         `bson:"isAvailableForHomeVisits" json:"isAvailableForHomeVisits"`
}

// DoctorProfile holds doctor-specific fields, present when Role is DOCTOR.
type DoctorProfile struct {
	MedicalLicenseID string             `bson:"medicalLicenseId" json:"medicalLicenseId"`
	Specialization   string             `bson:"specialization" json:"specialization"`
	ClinicAddress    string             `bson:"clinicAddress,omitempty" json:"clinicAddress,omitempty"`
	Availability     WeeklyAvailability `bson:"availability" json:"availability"`
}

// PatientProfile holds patient-specific fields, present when Role is PATIENT.
type PatientProfile struct {
	DateOfBirth string `bson:"dateOfBirth" json:"dateOfBirth"` // "YYYY-MM-DD"
	Gender      string `bson:"gender" json:"gender"`
	Address     string `bson:"address,omitempty" json:"address,omitempty"`
}

// User represents a platform account: patient, doctor or administrator.
type User struct {
	ID             string          `bson:"id" json:"id"`
	Email          string          `bson:"email" json:"email"`
	PasswordHash   string          `bson:"passwordHash" json:"-"`
	FullName       string          `bson:"fullName" json:"fullName"`
	PhoneNumber    string          `bson:"phoneNumber,omitempty" json:"phoneNumber,omitempty"`
	Role           Role            `bson:"role" json:"role"`
	DoctorProfile  *DoctorProfile  `bson:"doctorProfile,omitempty" json:"doctorProfile,omitempty"`
	PatientProfile *PatientProfile `bson:"patientProfile,omitempty" json:"patientProfile,omitempty"`
	TokenHash      string          `bson:"tokenHash,omitempty" json:"-"`
	CreatedAt      time.Time       `bson:"created_at" json:"createdAt"`
	UpdatedAt      time.Time       `bson:"updated_at" json:"updatedAt"`
}

// Caller is the authenticated identity every engine operation receives.
// The engine never authenticates; it only authorizes against this identity.
type Caller struct {
	ID   string
	Role Role
}
