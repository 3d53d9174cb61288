package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/salonova-app/booking-api/internal/cache"
	domain "github.com/salonova-app/booking-api/internal/domain/booking"
	"github.com/salonova-app/booking-api/internal/httperr"
	"github.com/salonova-app/booking-api/internal/i18n"
	"github.com/salonova-app/booking-api/internal/models"
)

type StatsHandler struct {
	db    *gorm.DB
	cache *cache.Cache
	msgs  *i18n.Bundle
}

func NewStatsHandler(db *gorm.DB, cc *cache.Cache, msgs *i18n.Bundle) *StatsHandler {
	return &StatsHandler{db: db, cache: cc, msgs: msgs}
}

type StatsOverview struct {
	Businesses   int64            `json:"businesses"`
	Users        int64            `json:"users"`
	Appointments int64            `json:"appointments"`
	ByStatus     map[string]int64 `json:"appointments_by_status"`
}

func (h *StatsHandler) Overview(c *gin.Context) {
	var overview StatsOverview
	if h.cache.GetJSON(c.Request.Context(), cache.KeyStats, &overview) {
		c.JSON(http.StatusOK, overview)
		return
	}

	overview.ByStatus = make(map[string]int64)

	if err := h.db.Model(&models.Business{}).Count(&overview.Businesses).Error; err != nil {
		httperr.Internal(c, "failed_to_load_stats", h.msgs.T(localeOf(c), "internal_error"))
		return
	}
	h.db.Model(&models.User{}).Count(&overview.Users)
	h.db.Model(&models.Appointment{}).Count(&overview.Appointments)

	type statusCount struct {
		Status string
		Count  int64
	}
	var rows []statusCount
	h.db.Model(&models.Appointment{}).
		Select("status, COUNT(*) as count").
		Group("status").
		Scan(&rows)

	// Legacy rows may carry unnormalized tokens, fold them in.
	for _, row := range rows {
		overview.ByStatus[string(domain.NormalizeStatus(row.Status))] += row.Count
	}

	h.cache.SetJSON(c.Request.Context(), cache.KeyStats, overview)
	c.JSON(http.StatusOK, overview)
}
