package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/salonova-app/booking-api/internal/httperr"
	"github.com/salonova-app/booking-api/internal/httpresp"
	"github.com/salonova-app/booking-api/internal/i18n"
	"github.com/salonova-app/booking-api/internal/models"
)

// ProviderHandler exposes the bookable staff of a business.
type ProviderHandler struct {
	db   *gorm.DB
	msgs *i18n.Bundle
}

func NewProviderHandler(db *gorm.DB, msgs *i18n.Bundle) *ProviderHandler {
	return &ProviderHandler{db: db, msgs: msgs}
}

func (h *ProviderHandler) ListByBusiness(c *gin.Context) {
	businessID := c.Param("id")

	var employees []models.Employee
	if err := h.db.
		Where("business_id = ? AND active = true", businessID).
		Order("id ASC").
		Find(&employees).Error; err != nil {

		httperr.Internal(c, "failed_to_list_employees", h.msgs.T(localeOf(c), "internal_error"))
		return
	}

	httpresp.List(c, employees)
}

func (h *ProviderHandler) Get(c *gin.Context) {
	id := c.Param("id")

	var employee models.Employee
	if err := h.db.
		Preload("Business").
		First(&employee, id).Error; err != nil {

		httperr.NotFound(c, "employee_not_found", h.msgs.T(localeOf(c), "employee_not_found"))
		return
	}

	var hours []models.WorkingHours
	h.db.
		Where("employee_id = ?", employee.ID).
		Order("weekday ASC").
		Find(&hours)

	c.JSON(http.StatusOK, gin.H{
		"employee":      employee,
		"working_hours": hours,
	})
}
