package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/salonova-app/booking-api/internal/cache"
	"github.com/salonova-app/booking-api/internal/httperr"
	"github.com/salonova-app/booking-api/internal/i18n"
	"github.com/salonova-app/booking-api/internal/models"
)

const recentBusinessLimit = 10

type BusinessHandler struct {
	db    *gorm.DB
	cache *cache.Cache
	msgs  *i18n.Bundle
}

func NewBusinessHandler(db *gorm.DB, cc *cache.Cache, msgs *i18n.Bundle) *BusinessHandler {
	return &BusinessHandler{db: db, cache: cc, msgs: msgs}
}

// ======================================================
// LIST / SEARCH
// ======================================================

func (h *BusinessHandler) List(c *gin.Context) {
	q := h.db.Preload("City").Preload("Category")

	if cityID := c.Query("city_id"); cityID != "" {
		q = q.Where("city_id = ?", cityID)
	}
	if categoryID := c.Query("category_id"); categoryID != "" {
		q = q.Where("category_id = ?", categoryID)
	}

	var businesses []models.Business
	if err := q.Order("name ASC").Find(&businesses).Error; err != nil {
		httperr.Internal(c, "failed_to_list_businesses", h.msgs.T(localeOf(c), "internal_error"))
		return
	}

	c.JSON(http.StatusOK, businesses)
}

func (h *BusinessHandler) Search(c *gin.Context) {
	query := strings.TrimSpace(strings.ToLower(c.Query("q")))
	if query == "" {
		c.JSON(http.StatusOK, []models.Business{})
		return
	}

	like := "%" + query + "%"

	var businesses []models.Business
	if err := h.db.
		Preload("City").
		Preload("Category").
		Where("LOWER(name) LIKE ? OR LOWER(address) LIKE ? OR LOWER(description) LIKE ?", like, like, like).
		Order("rating DESC").
		Limit(50).
		Find(&businesses).Error; err != nil {

		httperr.Internal(c, "failed_to_search_businesses", h.msgs.T(localeOf(c), "internal_error"))
		return
	}

	c.JSON(http.StatusOK, businesses)
}

// ======================================================
// GET (detail with services + staff)
// ======================================================

func (h *BusinessHandler) Get(c *gin.Context) {
	id := c.Param("id")

	var business models.Business
	if err := h.db.
		Preload("City").
		Preload("Category").
		First(&business, id).Error; err != nil {

		httperr.NotFound(c, "business_not_found", h.msgs.T(localeOf(c), "business_not_found"))
		return
	}

	var services []models.Service
	h.db.
		Where("business_id = ? AND active = true", business.ID).
		Order("id ASC").
		Find(&services)

	var employees []models.Employee
	h.db.
		Where("business_id = ? AND active = true", business.ID).
		Order("id ASC").
		Find(&employees)

	var promotions []models.Promotion
	h.db.
		Where("business_id = ? AND active = true", business.ID).
		Order("id ASC").
		Find(&promotions)

	c.JSON(http.StatusOK, gin.H{
		"business":   business,
		"services":   services,
		"employees":  employees,
		"promotions": promotions,
	})
}

// ======================================================
// RECOMMENDED / RECENT (cached)
// ======================================================

func (h *BusinessHandler) Recommended(c *gin.Context) {
	var cityID uint
	if v := c.Query("city_id"); v != "" {
		if n, err := strconv.ParseUint(v, 10, 32); err == nil {
			cityID = uint(n)
		}
	}

	key := cache.KeyRecommended(cityID)

	var businesses []models.Business
	if h.cache.GetJSON(c.Request.Context(), key, &businesses) {
		c.JSON(http.StatusOK, businesses)
		return
	}

	q := h.db.
		Preload("City").
		Preload("Category").
		Where("recommended = true")

	if cityID != 0 {
		q = q.Where("city_id = ?", cityID)
	}

	if err := q.Order("rating DESC").Find(&businesses).Error; err != nil {
		httperr.Internal(c, "failed_to_list_businesses", h.msgs.T(localeOf(c), "internal_error"))
		return
	}

	h.cache.SetJSON(c.Request.Context(), key, businesses)
	c.JSON(http.StatusOK, businesses)
}

func (h *BusinessHandler) Recent(c *gin.Context) {
	var businesses []models.Business
	if h.cache.GetJSON(c.Request.Context(), cache.KeyRecent, &businesses) {
		c.JSON(http.StatusOK, businesses)
		return
	}

	if err := h.db.
		Preload("City").
		Preload("Category").
		Order("created_at DESC").
		Limit(recentBusinessLimit).
		Find(&businesses).Error; err != nil {

		httperr.Internal(c, "failed_to_list_businesses", h.msgs.T(localeOf(c), "internal_error"))
		return
	}

	h.cache.SetJSON(c.Request.Context(), cache.KeyRecent, businesses)
	c.JSON(http.StatusOK, businesses)
}
