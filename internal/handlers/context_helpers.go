package handlers

import (
	"github.com/gin-gonic/gin"

	domain "github.com/Mmasetshaba28/haircut-booking/internal/domain/appointment"
	"github.com/Mmasetshaba28/haircut-booking/internal/httperr"
	"github.com/Mmasetshaba28/haircut-booking/internal/middleware"
)

func actorFrom(c *gin.Context) domain.Actor {
	return domain.Actor{
		UserID: c.MustGet(middleware.ContextUserID).(uint),
		Role:   c.GetString(middleware.ContextUserRole),
	}
}

func requestIDFrom(c *gin.Context) string {
	return c.GetString(middleware.ContextRequestID)
}

// writeBusinessError maps core error codes onto transport statuses.
func writeBusinessError(c *gin.Context, err error) {
	code, ok := httperr.BusinessCode(err)
	if !ok {
		httperr.Internal(c, "internal_error", "Something went wrong.")
		return
	}

	switch code {
	case httperr.CodeInvalidService, httperr.CodeOutsideBusinessHours:
		httperr.BadRequest(c, code, "Invalid booking request.")
	case httperr.CodeServiceNotFound, httperr.CodeAppointmentNotFound:
		httperr.NotFound(c, code, "Not found.")
	case httperr.CodeSlotTaken:
		httperr.Conflict(c, code, "The selected time slot is already booked.")
	case httperr.CodeInvalidState:
		httperr.Conflict(c, code, "The appointment cannot change state this way.")
	case httperr.CodeForbidden:
		httperr.Forbidden(c, code, "You may not act on this appointment.")
	default:
		httperr.Internal(c, code, "Something went wrong.")
	}
}
