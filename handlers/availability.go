package handlers

import (
	"net/http"
	"time"

	"medicalkz/services/scheduling"

	"github.com/gin-gonic/gin"
)

// AvailabilityHandler exposes the doctor availability calendar.
type AvailabilityHandler struct {
	Engine *scheduling.Engine
}

// NewAvailabilityHandler creates an AvailabilityHandler over the given engine.
func NewAvailabilityHandler(engine *scheduling.Engine) *AvailabilityHandler {
	return &AvailabilityHandler{Engine: engine}
}

// GetDoctorAvailabilityHandler handles
// GET /api/appointments/doctor/:doctorId/availability?date=YYYY-MM-DD.
// The date defaults to today when omitted.
func (h *AvailabilityHandler) GetDoctorAvailabilityHandler(c *gin.Context) {
	doctorID := c.Param("doctorId")
	date := c.Query("date")
	if date == "" {
		date = time.Now().Format("2006-01-02")
	}

	availability, err := h.Engine.GetAvailability(doctorID, date)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"isWorkingDay": availability.IsWorkingDay,
		"workingHours": availability.WorkingHours,
		"data":         availability.Slots,
	})
}
