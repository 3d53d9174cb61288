package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	domain "github.com/salonova-app/booking-api/internal/domain/booking"
	"github.com/salonova-app/booking-api/internal/httperr"
	"github.com/salonova-app/booking-api/internal/i18n"
	"github.com/salonova-app/booking-api/internal/middleware"
	ucAppointment "github.com/salonova-app/booking-api/internal/usecase/appointment"
)

// ======================================================
// HANDLER
// ======================================================

type AppointmentHandler struct {
	createUC     *ucAppointment.CreateAppointment
	confirmUC    *ucAppointment.ConfirmAppointment
	cancelUC     *ucAppointment.CancelAppointment
	completeUC   *ucAppointment.CompleteAppointment
	rescheduleUC *ucAppointment.RescheduleAppointment
	listUC       *ucAppointment.ListForUser
	quoteUC      *ucAppointment.GetQuote
	availUC      *ucAppointment.GetAvailability

	msgs *i18n.Bundle
}

func NewAppointmentHandler(
	createUC *ucAppointment.CreateAppointment,
	confirmUC *ucAppointment.ConfirmAppointment,
	cancelUC *ucAppointment.CancelAppointment,
	completeUC *ucAppointment.CompleteAppointment,
	rescheduleUC *ucAppointment.RescheduleAppointment,
	listUC *ucAppointment.ListForUser,
	quoteUC *ucAppointment.GetQuote,
	availUC *ucAppointment.GetAvailability,
	msgs *i18n.Bundle,
) *AppointmentHandler {
	return &AppointmentHandler{
		createUC:     createUC,
		confirmUC:    confirmUC,
		cancelUC:     cancelUC,
		completeUC:   completeUC,
		rescheduleUC: rescheduleUC,
		listUC:       listUC,
		quoteUC:      quoteUC,
		availUC:      availUC,
		msgs:         msgs,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateAppointmentRequest struct {
	BusinessID  uint   `json:"business_id" binding:"required"`
	EmployeeID  uint   `json:"employee_id" binding:"required"`
	ServiceID   uint   `json:"service_id" binding:"required"`
	Date        string `json:"date" binding:"required"` // YYYY-MM-DD
	Time        string `json:"time" binding:"required"` // time label
	PromotionID *uint  `json:"promotion_id"`
	Notes       string `json:"notes"`
}

type UpdateAppointmentRequest struct {
	Status *string `json:"status,omitempty" binding:"omitempty,oneof=pending confirmed completed cancelled"`
	Date   *string `json:"date,omitempty"`
	Time   *string `json:"time,omitempty"`
}

type QuoteRequest struct {
	BusinessID  uint  `json:"business_id" binding:"required"`
	ServiceID   uint  `json:"service_id" binding:"required"`
	PromotionID *uint `json:"promotion_id"`
}

// ======================================================
// CREATE
// ======================================================

func (h *AppointmentHandler) Create(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	var req CreateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", h.msgs.T(localeOf(c), "invalid_request"))
		return
	}

	ap, err := h.createUC.Execute(
		c.Request.Context(),
		ucAppointment.CreateAppointmentInput{
			UserID:      userID,
			BusinessID:  req.BusinessID,
			EmployeeID:  req.EmployeeID,
			ServiceID:   req.ServiceID,
			Date:        req.Date,
			Time:        req.Time,
			PromotionID: req.PromotionID,
			Notes:       req.Notes,
		},
	)

	if err != nil {
		h.writeBookingError(c, err)
		return
	}

	c.JSON(http.StatusCreated, ap)
}

// ======================================================
// LIST (upcoming / past tabs)
// ======================================================

func (h *AppointmentHandler) List(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	result, err := h.listUC.Execute(c.Request.Context(), userID)
	if err != nil {
		httperr.Internal(c, "failed_to_list_appointments", h.msgs.T(localeOf(c), "internal_error"))
		return
	}

	c.JSON(http.StatusOK, result)
}

// ======================================================
// UPDATE (status change or reschedule)
// ======================================================

func (h *AppointmentHandler) Update(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		httperr.BadRequest(c, "invalid_request", h.msgs.T(localeOf(c), "invalid_request"))
		return
	}
	appointmentID := uint(id)

	var req UpdateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", h.msgs.T(localeOf(c), "invalid_request"))
		return
	}

	// Reschedule takes priority over a plain status write.
	if req.Date != nil && req.Time != nil {
		ap, err := h.rescheduleUC.Execute(
			c.Request.Context(),
			ucAppointment.RescheduleAppointmentInput{
				UserID:        userID,
				AppointmentID: appointmentID,
				Date:          *req.Date,
				Time:          *req.Time,
			},
		)
		if err != nil {
			h.writeBookingError(c, err)
			return
		}
		c.JSON(http.StatusOK, ap)
		return
	}

	if req.Status == nil {
		httperr.BadRequest(c, "invalid_request", h.msgs.T(localeOf(c), "invalid_request"))
		return
	}

	var (
		ap  any
		ucE error
	)

	switch domain.NormalizeStatus(*req.Status) {
	case domain.StatusConfirmed:
		ap, ucE = h.confirmUC.Execute(c.Request.Context(), userID, appointmentID)
	case domain.StatusCompleted:
		ap, ucE = h.completeUC.Execute(c.Request.Context(), userID, appointmentID)
	case domain.StatusCancelled:
		ap, ucE = h.cancelUC.Execute(c.Request.Context(), userID, appointmentID)
	default:
		httperr.BadRequest(c, "invalid_state", h.msgs.T(localeOf(c), "invalid_state"))
		return
	}

	if ucE != nil {
		h.writeBookingError(c, ucE)
		return
	}

	c.JSON(http.StatusOK, ap)
}

// ======================================================
// CANCEL (shortcut the client uses directly)
// ======================================================

func (h *AppointmentHandler) Cancel(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		httperr.BadRequest(c, "invalid_request", h.msgs.T(localeOf(c), "invalid_request"))
		return
	}

	ap, err := h.cancelUC.Execute(c.Request.Context(), userID, uint(id))
	if err != nil {
		h.writeBookingError(c, err)
		return
	}

	c.JSON(http.StatusOK, ap)
}

// ======================================================
// QUOTE (pricing preview for the booking screen)
// ======================================================

func (h *AppointmentHandler) Quote(c *gin.Context) {
	var req QuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", h.msgs.T(localeOf(c), "invalid_request"))
		return
	}

	quote, err := h.quoteUC.Execute(
		c.Request.Context(),
		ucAppointment.QuoteInput{
			BusinessID:  req.BusinessID,
			ServiceID:   req.ServiceID,
			PromotionID: req.PromotionID,
		},
	)
	if err != nil {
		h.writeBookingError(c, err)
		return
	}

	c.JSON(http.StatusOK, quote)
}

// ======================================================
// AVAILABILITY
// ======================================================

func (h *AppointmentHandler) Availability(c *gin.Context) {
	businessID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		httperr.BadRequest(c, "invalid_request", h.msgs.T(localeOf(c), "invalid_request"))
		return
	}

	employeeID, err1 := strconv.ParseUint(c.Query("employee_id"), 10, 32)
	serviceID, err2 := strconv.ParseUint(c.Query("service_id"), 10, 32)
	dateStr := c.Query("date")
	if err1 != nil || err2 != nil || dateStr == "" {
		httperr.BadRequest(c, "missing_params", h.msgs.T(localeOf(c), "invalid_request"))
		return
	}

	// The use case parses the date in the business's own timezone.
	slots, err := h.availUC.Execute(
		c.Request.Context(),
		domain.AvailabilityInput{
			BusinessID: uint(businessID),
			EmployeeID: uint(employeeID),
			ServiceID:  uint(serviceID),
			Date:       dateStr,
		},
	)
	if err != nil {
		h.writeBookingError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"date":  dateStr,
		"slots": slots,
	})
}

// ======================================================
// ERROR MAPPING
// ======================================================

func (h *AppointmentHandler) writeBookingError(c *gin.Context, err error) {
	code := httperr.BusinessCode(err)
	locale := localeOf(c)

	switch code {
	case "business_not_found", "appointment_not_found":
		httperr.NotFound(c, code, h.msgs.T(locale, code))
	case "time_conflict":
		httperr.Conflict(c, code, h.msgs.T(locale, code))
	case "service_not_found", "employee_not_found", "promotion_not_found",
		"invalid_date_or_time", "too_soon", "outside_working_hours", "invalid_state":
		httperr.BadRequest(c, code, h.msgs.T(locale, code))
	default:
		httperr.Internal(c, "internal_error", h.msgs.T(locale, "internal_error"))
	}
}
