package handlers

import (
	"errors"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	domain "github.com/Mmasetshaba28/haircut-booking/internal/domain/appointment"
	"github.com/Mmasetshaba28/haircut-booking/internal/httperr"
	"github.com/Mmasetshaba28/haircut-booking/internal/httpresp"
	ucAppointment "github.com/Mmasetshaba28/haircut-booking/internal/usecase/appointment"
)

// ======================================================
// HANDLER
// ======================================================

type AppointmentHandler struct {
	createUC     *ucAppointment.CreateAppointment
	transitionUC *ucAppointment.TransitionAppointment
	deleteUC     *ucAppointment.DeleteAppointment
	listUC       *ucAppointment.ListAppointments
	slotsUC      *ucAppointment.GetAvailability

	repo domain.Repository
	loc  *time.Location
}

func NewAppointmentHandler(
	createUC *ucAppointment.CreateAppointment,
	transitionUC *ucAppointment.TransitionAppointment,
	deleteUC *ucAppointment.DeleteAppointment,
	listUC *ucAppointment.ListAppointments,
	slotsUC *ucAppointment.GetAvailability,
	repo domain.Repository,
	loc *time.Location,
) *AppointmentHandler {
	return &AppointmentHandler{
		createUC:     createUC,
		transitionUC: transitionUC,
		deleteUC:     deleteUC,
		listUC:       listUC,
		slotsUC:      slotsUC,
		repo:         repo,
		loc:          loc,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateAppointmentRequest struct {
	CustomerName  string `json:"customer_name" binding:"required"`
	CustomerEmail string `json:"customer_email" binding:"required,email"`
	CustomerPhone string `json:"customer_phone" binding:"required"`
	ServiceID     uint   `json:"service_id" binding:"required"`
	Date          string `json:"date" binding:"required"` // YYYY-MM-DD
	Time          string `json:"time" binding:"required"` // HH:mm
	Notes         string `json:"notes"`
}

// ======================================================
// AVAILABLE SLOTS (public)
// ======================================================

func (h *AppointmentHandler) AvailableSlots(c *gin.Context) {
	dateStr := c.Query("date")
	serviceIDStr := c.Query("serviceId")

	if dateStr == "" || serviceIDStr == "" {
		httperr.BadRequest(c, "missing_params", "Date and service are required.")
		return
	}

	serviceID, err := strconv.ParseUint(serviceIDStr, 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_service_id", "Service id must be numeric.")
		return
	}

	date, err := time.ParseInLocation("2006-01-02", dateStr, h.loc)
	if err != nil {
		httperr.BadRequest(c, "invalid_date", "Date must be YYYY-MM-DD.")
		return
	}

	slots, err := h.slotsUC.Execute(c.Request.Context(), date, uint(serviceID))
	if err != nil {
		writeBusinessError(c, err)
		return
	}

	c.JSON(200, gin.H{
		"date":  dateStr,
		"slots": slots,
	})
}

// ======================================================
// CREATE
// ======================================================

func (h *AppointmentHandler) Create(c *gin.Context) {
	actor := actorFrom(c)

	var req CreateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid booking data.")
		return
	}

	startsAt, err := time.ParseInLocation(
		"2006-01-02 15:04",
		req.Date+" "+req.Time,
		h.loc,
	)
	if err != nil {
		httperr.BadRequest(c, "invalid_date_or_time", "Invalid date or time.")
		return
	}

	ap, err := h.createUC.Execute(c.Request.Context(), ucAppointment.CreateAppointmentInput{
		Actor:         actor,
		CustomerName:  req.CustomerName,
		CustomerEmail: req.CustomerEmail,
		CustomerPhone: req.CustomerPhone,
		ServiceID:     req.ServiceID,
		StartsAt:      startsAt,
		Notes:         req.Notes,
		RequestID:     requestIDFrom(c),
	})
	if err != nil {
		writeBusinessError(c, err)
		return
	}

	httpresp.Created(c, ap)
}

// ======================================================
// LISTS
// ======================================================

func (h *AppointmentHandler) ListMine(c *gin.Context) {
	aps, err := h.listUC.Mine(c.Request.Context(), actorFrom(c))
	if err != nil {
		httperr.Internal(c, "failed_to_list_appointments", "Could not load appointments.")
		return
	}

	httpresp.List(c, aps)
}

func (h *AppointmentHandler) ListAll(c *gin.Context) {
	aps, err := h.listUC.All(c.Request.Context())
	if err != nil {
		httperr.Internal(c, "failed_to_list_appointments", "Could not load appointments.")
		return
	}

	httpresp.List(c, aps)
}

func (h *AppointmentHandler) Get(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_appointment_id", "Appointment id must be numeric.")
		return
	}

	ap, err := h.repo.GetAppointment(c.Request.Context(), uint(id))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			httperr.NotFound(c, httperr.CodeAppointmentNotFound, "Appointment not found.")
			return
		}
		httperr.Internal(c, "failed_to_load_appointment", "Could not load appointment.")
		return
	}

	if err := domain.Authorize(actorFrom(c), ap.UserID, domain.CapabilityOwnerOrAdmin); err != nil {
		writeBusinessError(c, err)
		return
	}

	httpresp.OK(c, ap)
}

// ======================================================
// LIFECYCLE
// ======================================================

func (h *AppointmentHandler) Confirm(c *gin.Context) {
	h.transition(c, domain.EventConfirm)
}

func (h *AppointmentHandler) Complete(c *gin.Context) {
	h.transition(c, domain.EventComplete)
}

func (h *AppointmentHandler) Cancel(c *gin.Context) {
	h.transition(c, domain.EventCancel)
}

func (h *AppointmentHandler) transition(c *gin.Context, ev domain.Event) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_appointment_id", "Appointment id must be numeric.")
		return
	}

	err = h.transitionUC.Execute(
		c.Request.Context(),
		actorFrom(c),
		uint(id),
		ev,
		requestIDFrom(c),
	)
	if err != nil {
		writeBusinessError(c, err)
		return
	}

	httpresp.NoContent(c)
}

// ======================================================
// DELETE (hard, admin)
// ======================================================

func (h *AppointmentHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_appointment_id", "Appointment id must be numeric.")
		return
	}

	err = h.deleteUC.Execute(
		c.Request.Context(),
		actorFrom(c),
		uint(id),
		requestIDFrom(c),
	)
	if err != nil {
		writeBusinessError(c, err)
		return
	}

	httpresp.NoContent(c)
}
