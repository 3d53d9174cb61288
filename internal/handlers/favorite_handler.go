package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/salonova-app/booking-api/internal/httperr"
	"github.com/salonova-app/booking-api/internal/httpresp"
	"github.com/salonova-app/booking-api/internal/i18n"
	"github.com/salonova-app/booking-api/internal/middleware"
	"github.com/salonova-app/booking-api/internal/models"
)

type FavoriteHandler struct {
	db   *gorm.DB
	msgs *i18n.Bundle
}

func NewFavoriteHandler(db *gorm.DB, msgs *i18n.Bundle) *FavoriteHandler {
	return &FavoriteHandler{db: db, msgs: msgs}
}

type AddFavoriteRequest struct {
	BusinessID uint `json:"business_id" binding:"required"`
}

func (h *FavoriteHandler) List(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	var favorites []models.Favorite
	if err := h.db.
		Preload("Business").
		Preload("Business.City").
		Preload("Business.Category").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&favorites).Error; err != nil {

		httperr.Internal(c, "failed_to_list_favorites", h.msgs.T(localeOf(c), "internal_error"))
		return
	}

	httpresp.List(c, favorites)
}

func (h *FavoriteHandler) Add(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	var req AddFavoriteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", h.msgs.T(localeOf(c), "invalid_request"))
		return
	}

	var count int64
	h.db.Model(&models.Business{}).Where("id = ?", req.BusinessID).Count(&count)
	if count == 0 {
		httperr.NotFound(c, "business_not_found", h.msgs.T(localeOf(c), "business_not_found"))
		return
	}

	fav := models.Favorite{
		UserID:     userID,
		BusinessID: req.BusinessID,
	}

	// The unique index on (user, business) makes repeat adds fail, which
	// the client treats as success.
	if err := h.db.Create(&fav).Error; err != nil {
		httperr.BadRequest(c, "favorite_exists", h.msgs.T(localeOf(c), "favorite_exists"))
		return
	}

	c.JSON(http.StatusCreated, fav)
}

func (h *FavoriteHandler) Remove(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)
	businessID := c.Param("businessId")

	if err := h.db.
		Where("user_id = ? AND business_id = ?", userID, businessID).
		Delete(&models.Favorite{}).Error; err != nil {

		httperr.Internal(c, "failed_to_remove_favorite", h.msgs.T(localeOf(c), "internal_error"))
		return
	}

	c.Status(http.StatusNoContent)
}
