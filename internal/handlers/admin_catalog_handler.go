package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/salonova-app/booking-api/internal/cache"
	"github.com/salonova-app/booking-api/internal/httperr"
	"github.com/salonova-app/booking-api/internal/i18n"
	"github.com/salonova-app/booking-api/internal/models"
)

type AdminCatalogHandler struct {
	db    *gorm.DB
	cache *cache.Cache
	msgs  *i18n.Bundle
}

func NewAdminCatalogHandler(db *gorm.DB, cc *cache.Cache, msgs *i18n.Bundle) *AdminCatalogHandler {
	return &AdminCatalogHandler{db: db, cache: cc, msgs: msgs}
}

type CityRequest struct {
	Name   string `json:"name" binding:"required"`
	NameVi string `json:"name_vi"`
	Active *bool  `json:"active"`
}

type CategoryRequest struct {
	Name   string `json:"name" binding:"required"`
	NameVi string `json:"name_vi"`
	Icon   string `json:"icon"`
	Active *bool  `json:"active"`
}

// --------- Cities ---------

func (h *AdminCatalogHandler) CreateCity(c *gin.Context) {
	var req CityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", h.msgs.T(localeOf(c), "invalid_request"))
		return
	}

	city := models.City{Name: req.Name, NameVi: req.NameVi, Active: true}
	if req.Active != nil {
		city.Active = *req.Active
	}

	if err := h.db.Create(&city).Error; err != nil {
		httperr.Internal(c, "failed_to_create_city", h.msgs.T(localeOf(c), "internal_error"))
		return
	}

	h.cache.Invalidate(c.Request.Context(), cache.KeyCities)
	c.JSON(http.StatusCreated, city)
}

func (h *AdminCatalogHandler) UpdateCity(c *gin.Context) {
	id := c.Param("id")

	var city models.City
	if err := h.db.First(&city, id).Error; err != nil {
		httperr.NotFound(c, "city_not_found", h.msgs.T(localeOf(c), "city_not_found"))
		return
	}

	var req CityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", h.msgs.T(localeOf(c), "invalid_request"))
		return
	}

	city.Name = req.Name
	city.NameVi = req.NameVi
	if req.Active != nil {
		city.Active = *req.Active
	}

	if err := h.db.Save(&city).Error; err != nil {
		httperr.Internal(c, "failed_to_update_city", h.msgs.T(localeOf(c), "internal_error"))
		return
	}

	h.cache.Invalidate(c.Request.Context(), cache.KeyCities)
	c.JSON(http.StatusOK, city)
}

// --------- Categories ---------

func (h *AdminCatalogHandler) CreateCategory(c *gin.Context) {
	var req CategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", h.msgs.T(localeOf(c), "invalid_request"))
		return
	}

	category := models.Category{
		Name:   req.Name,
		NameVi: req.NameVi,
		Icon:   req.Icon,
		Active: true,
	}
	if req.Active != nil {
		category.Active = *req.Active
	}

	if err := h.db.Create(&category).Error; err != nil {
		httperr.Internal(c, "failed_to_create_category", h.msgs.T(localeOf(c), "internal_error"))
		return
	}

	h.cache.Invalidate(c.Request.Context(), cache.KeyCategories)
	c.JSON(http.StatusCreated, category)
}

func (h *AdminCatalogHandler) UpdateCategory(c *gin.Context) {
	id := c.Param("id")

	var category models.Category
	if err := h.db.First(&category, id).Error; err != nil {
		httperr.NotFound(c, "category_not_found", h.msgs.T(localeOf(c), "category_not_found"))
		return
	}

	var req CategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", h.msgs.T(localeOf(c), "invalid_request"))
		return
	}

	category.Name = req.Name
	category.NameVi = req.NameVi
	category.Icon = req.Icon
	if req.Active != nil {
		category.Active = *req.Active
	}

	if err := h.db.Save(&category).Error; err != nil {
		httperr.Internal(c, "failed_to_update_category", h.msgs.T(localeOf(c), "internal_error"))
		return
	}

	h.cache.Invalidate(c.Request.Context(), cache.KeyCategories)
	c.JSON(http.StatusOK, category)
}
