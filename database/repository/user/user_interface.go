package userRepo

import "medicalkz/models"

// UserRepository defines methods for user data access. It doubles as the
// clinician directory the scheduling engine consults.
type UserRepository interface {
	// GetByID retrieves a user by its unique ID.
	GetByID(id string) (*models.User, error)
	// GetByEmail retrieves a user by its email address, or nil when absent.
	GetByEmail(email string) (*models.User, error)
	// GetDoctors retrieves all users holding the DOCTOR role.
	GetDoctors() ([]models.User, error)
	// Create inserts a new user record.
	Create(user *models.User) error
	// Update modifies an existing user record.
	Update(user *models.User) error
	// UpdateDoctorAvailability replaces the weekly availability on a doctor profile.
	UpdateDoctorAvailability(id string, availability models.WeeklyAvailability) error
	// UpdateTokenHash stores the hash of the caller's current auth token.
	UpdateTokenHash(id string, tokenHash string) error
	// Delete removes a user record by its ID.
	Delete(id string) error
}
