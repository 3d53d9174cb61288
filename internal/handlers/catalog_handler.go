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

// CatalogHandler serves the small lookup lists every screen needs.
// They change rarely, so both go through the cache.
type CatalogHandler struct {
	db    *gorm.DB
	cache *cache.Cache
	msgs  *i18n.Bundle
}

func NewCatalogHandler(db *gorm.DB, cc *cache.Cache, msgs *i18n.Bundle) *CatalogHandler {
	return &CatalogHandler{db: db, cache: cc, msgs: msgs}
}

func (h *CatalogHandler) ListCities(c *gin.Context) {
	var cities []models.City
	if h.cache.GetJSON(c.Request.Context(), cache.KeyCities, &cities) {
		c.JSON(http.StatusOK, cities)
		return
	}

	if err := h.db.
		Where("active = true").
		Order("name ASC").
		Find(&cities).Error; err != nil {

		httperr.Internal(c, "failed_to_list_cities", h.msgs.T(localeOf(c), "internal_error"))
		return
	}

	h.cache.SetJSON(c.Request.Context(), cache.KeyCities, cities)
	c.JSON(http.StatusOK, cities)
}

func (h *CatalogHandler) ListCategories(c *gin.Context) {
	var categories []models.Category
	if h.cache.GetJSON(c.Request.Context(), cache.KeyCategories, &categories) {
		c.JSON(http.StatusOK, categories)
		return
	}

	if err := h.db.
		Where("active = true").
		Order("id ASC").
		Find(&categories).Error; err != nil {

		httperr.Internal(c, "failed_to_list_categories", h.msgs.T(localeOf(c), "internal_error"))
		return
	}

	h.cache.SetJSON(c.Request.Context(), cache.KeyCategories, categories)
	c.JSON(http.StatusOK, categories)
}
