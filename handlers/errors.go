package handlers

import (
	"errors"
	"net/http"

	"medicalkz/services/appointment"
	"medicalkz/services/scheduling"
	"medicalkz/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// respondServiceError maps typed service errors onto HTTP statuses. Every
// rejection carries the violated invariant's message so the client can tell
// "pick another time" from "pick another doctor" from "not allowed".
func respondServiceError(c *gin.Context, err error) {
	var schedErr *scheduling.Error
	if errors.As(err, &schedErr) {
		status := http.StatusBadRequest
		if schedErr.Code == scheduling.CodeSlotUnavailable {
			status = http.StatusConflict
		}
		c.JSON(status, gin.H{"error": schedErr.Message, "code": schedErr.Code})
		return
	}

	var apptErr *appointment.Error
	if errors.As(err, &apptErr) {
		var status int
		switch apptErr.Code {
		case appointment.CodeNotFound:
			status = http.StatusNotFound
		case appointment.CodeNotAuthorized:
			status = http.StatusForbidden
		case appointment.CodeInvalidTransition:
			status = http.StatusConflict
		default:
			status = http.StatusBadRequest
		}
		c.JSON(status, gin.H{"error": apptErr.Message, "code": apptErr.Code})
		return
	}

	utils.GetLogger().Error("unhandled service error", zap.Error(err))
	c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
}
