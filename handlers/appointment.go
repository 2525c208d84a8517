package handlers

import (
	"math"
	"net/http"
	"strconv"

	"medicalkz/middleware"
	"medicalkz/models"
	"medicalkz/services/appointment"

	"github.com/gin-gonic/gin"
)

// AppointmentHandler exposes the booking lifecycle endpoints.
type AppointmentHandler struct {
	Service appointment.AppointmentService
}

// NewAppointmentHandler creates an AppointmentHandler backed by the given service.
func NewAppointmentHandler(svc appointment.AppointmentService) *AppointmentHandler {
	return &AppointmentHandler{Service: svc}
}

// CreateHandler handles POST /api/appointments.
func (h *AppointmentHandler) CreateHandler(c *gin.Context) {
	caller, ok := middleware.CallerFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing caller identity"})
		return
	}

	var req appointment.CreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	appt, err := h.Service.Create(caller, req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"data": appt})
}

// GetHandler handles GET /api/appointments/:id.
func (h *AppointmentHandler) GetHandler(c *gin.Context) {
	caller, ok := middleware.CallerFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing caller identity"})
		return
	}

	appt, err := h.Service.Get(caller, c.Param("id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": appt})
}

// ListHandler handles GET /api/appointments with pagination and filters.
func (h *AppointmentHandler) ListHandler(c *gin.Context) {
	caller, ok := middleware.CallerFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing caller identity"})
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))
	filter := models.AppointmentFilter{
		StartDate: c.Query("startDate"),
		EndDate:   c.Query("endDate"),
		Status:    models.AppointmentStatus(c.Query("status")),
		Page:      page,
		Limit:     limit,
	}

	appts, total, err := h.Service.List(caller, filter)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	if limit < 1 {
		limit = 10
	}
	c.JSON(http.StatusOK, gin.H{
		"count": len(appts),
		"pagination": gin.H{
			"total": total,
			"page":  page,
			"limit": limit,
			"pages": int(math.Ceil(float64(total) / float64(limit))),
		},
		"data": appts,
	})
}

// UpdateHandler handles PUT /api/appointments/:id (generic update path).
func (h *AppointmentHandler) UpdateHandler(c *gin.Context) {
	caller, ok := middleware.CallerFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing caller identity"})
		return
	}

	var update models.AppointmentUpdate
	if err := c.ShouldBindJSON(&update); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	appt, err := h.Service.Update(caller, c.Param("id"), update)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": appt})
}

// CancelHandler handles PUT /api/appointments/:id/cancel (dedicated cancel action).
func (h *AppointmentHandler) CancelHandler(c *gin.Context) {
	caller, ok := middleware.CallerFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing caller identity"})
		return
	}

	appt, err := h.Service.Cancel(caller, c.Param("id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": appt})
}

// DeleteHandler handles DELETE /api/appointments/:id.
func (h *AppointmentHandler) DeleteHandler(c *gin.Context) {
	caller, ok := middleware.CallerFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing caller identity"})
		return
	}

	if err := h.Service.Delete(caller, c.Param("id")); err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": gin.H{}})
}
