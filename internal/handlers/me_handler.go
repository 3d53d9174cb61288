package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/salonova-app/booking-api/internal/httperr"
	"github.com/salonova-app/booking-api/internal/i18n"
	"github.com/salonova-app/booking-api/internal/middleware"
	"github.com/salonova-app/booking-api/internal/models"
)

type MeHandler struct {
	db   *gorm.DB
	msgs *i18n.Bundle
}

func NewMeHandler(db *gorm.DB, msgs *i18n.Bundle) *MeHandler {
	return &MeHandler{db: db, msgs: msgs}
}

// UpdateMeRequest carries the profile fields and the client preferences
// the app persists between sessions (locale, selected city, dark mode).
type UpdateMeRequest struct {
	Name     *string `json:"name,omitempty"`
	Phone    *string `json:"phone,omitempty"`
	Locale   *string `json:"locale,omitempty"`
	CityID   *uint   `json:"city_id,omitempty"`
	DarkMode *bool   `json:"dark_mode,omitempty"`
}

func (h *MeHandler) GetMe(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	var user models.User
	if err := h.db.First(&user, userID).Error; err != nil {
		httperr.Internal(c, "user_not_found", h.msgs.T(localeOf(c), "internal_error"))
		return
	}

	c.JSON(http.StatusOK, userPayload(&user))
}

func (h *MeHandler) UpdateMe(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	var user models.User
	if err := h.db.First(&user, userID).Error; err != nil {
		httperr.Internal(c, "user_not_found", h.msgs.T(localeOf(c), "internal_error"))
		return
	}

	var req UpdateMeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", h.msgs.T(localeOf(c), "invalid_request"))
		return
	}

	if req.Name != nil {
		user.Name = *req.Name
	}
	if req.Phone != nil {
		user.Phone = *req.Phone
	}
	if req.Locale != nil && (*req.Locale == "en" || *req.Locale == "vi") {
		user.Locale = *req.Locale
	}
	if req.CityID != nil {
		var count int64
		h.db.Model(&models.City{}).Where("id = ?", *req.CityID).Count(&count)
		if count == 0 {
			httperr.BadRequest(c, "city_not_found", h.msgs.T(localeOf(c), "city_not_found"))
			return
		}
		user.CityID = req.CityID
	}
	if req.DarkMode != nil {
		user.DarkMode = *req.DarkMode
	}

	if err := h.db.Save(&user).Error; err != nil {
		httperr.Internal(c, "failed_to_update_user", h.msgs.T(localeOf(c), "internal_error"))
		return
	}

	c.JSON(http.StatusOK, userPayload(&user))
}
