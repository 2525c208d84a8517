package handlers

import (
	userRepo "medicalkz/database/repository/user"
)

// HandlerBundle groups the handlers and the repositories the route layer
// needs for middleware wiring.
type HandlerBundle struct {
	UserRepo userRepo.UserRepository

	Auth         *AuthHandler
	Doctors      *DoctorHandler
	Appointments *AppointmentHandler
	Availability *AvailabilityHandler
}
