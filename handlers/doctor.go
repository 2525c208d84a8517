package handlers

import (
	"errors"
	"net/http"

	"medicalkz/middleware"
	"medicalkz/models"
	"medicalkz/services/scheduling"
	"medicalkz/services/user"

	"github.com/gin-gonic/gin"
)

// DoctorHandler exposes the doctor directory and profile endpoints.
type DoctorHandler struct {
	UserService user.UserService
}

// NewDoctorHandler creates a DoctorHandler backed by the given service.
func NewDoctorHandler(svc user.UserService) *DoctorHandler {
	return &DoctorHandler{UserService: svc}
}

// ListDoctorsHandler handles GET /api/doctors.
func (h *DoctorHandler) ListDoctorsHandler(c *gin.Context) {
	doctors, err := h.UserService.GetDoctors()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": len(doctors), "data": doctors})
}

// UpdateAvailabilityHandler handles PUT /api/doctors/availability. Doctors
// update their own weekly pattern; this is the only mutation path for it.
func (h *DoctorHandler) UpdateAvailabilityHandler(c *gin.Context) {
	caller, ok := middleware.CallerFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing caller identity"})
		return
	}

	var availability models.WeeklyAvailability
	if err := c.ShouldBindJSON(&availability); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	if err := h.UserService.UpdateAvailability(caller.ID, availability); err != nil {
		var schedErr *scheduling.Error
		if errors.As(err, &schedErr) {
			respondServiceError(c, err)
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "availability updated"})
}
