package user

import "medicalkz/models"

// UserService handles account registration, authentication and profile access.
type UserService interface {
	// Register creates a new account with a role-appropriate profile.
	Register(req RegistrationRequest) (*AuthResponse, error)
	// Authenticate verifies credentials and issues a fresh token.
	Authenticate(email, password string) (*AuthResponse, error)
	// GetUserByID returns a user record.
	GetUserByID(id string) (*models.User, error)
	// GetDoctors lists the doctor directory.
	GetDoctors() ([]models.User, error)
	// UpdateAvailability replaces a doctor's weekly availability. This is the
	// only mutation path for the weekly pattern.
	UpdateAvailability(doctorID string, availability models.WeeklyAvailability) error
}

// RegistrationRequest carries a new account across the boundary.
type RegistrationRequest struct {
	Email          string                  `json:"email" binding:"required,email"`
	Password       string                  `json:"password" binding:"required,min=6"`
	FullName       string                  `json:"fullName" binding:"required"`
	PhoneNumber    string                  `json:"phoneNumber"`
	Role           models.Role             `json:"role" binding:"required"`
	DoctorProfile  *models.DoctorProfile   `json:"doctorProfile,omitempty"`
	PatientProfile *models.PatientProfile  `json:"patientProfile,omitempty"`
}

// AuthResponse is returned on successful registration or login.
type AuthResponse struct {
	ID       string      `json:"id"`
	Token    string      `json:"token"`
	Email    string      `json:"email"`
	FullName string      `json:"fullName"`
	Role     models.Role `json:"role"`
}
