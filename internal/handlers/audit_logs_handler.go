package handlers

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/salonova-app/booking-api/internal/httperr"
	"github.com/salonova-app/booking-api/internal/httpresp"
	"github.com/salonova-app/booking-api/internal/i18n"
	"github.com/salonova-app/booking-api/internal/models"
)

type AuditLogsHandler struct {
	db   *gorm.DB
	msgs *i18n.Bundle
}

func NewAuditLogsHandler(db *gorm.DB, msgs *i18n.Bundle) *AuditLogsHandler {
	return &AuditLogsHandler{db: db, msgs: msgs}
}

func (h *AuditLogsHandler) List(c *gin.Context) {
	action := c.Query("action")
	entity := c.Query("entity")
	businessID := c.Query("business_id")
	fromStr := c.Query("from")
	toStr := c.Query("to")

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	if page <= 0 {
		page = 1
	}

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	if limit <= 0 || limit > 200 {
		limit = 50
	}

	offset := (page - 1) * limit

	q := h.db.Model(&models.AuditLog{})

	if businessID != "" {
		q = q.Where("business_id = ?", businessID)
	}
	if action != "" {
		q = q.Where("action = ?", action)
	}
	if entity != "" {
		q = q.Where("entity = ?", entity)
	}
	if fromStr != "" {
		if from, err := time.Parse("2006-01-02", fromStr); err == nil {
			q = q.Where("created_at >= ?", from)
		}
	}
	if toStr != "" {
		if to, err := time.Parse("2006-01-02", toStr); err == nil {
			q = q.Where("created_at <= ?", to.Add(24*time.Hour))
		}
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		httperr.Internal(c, "audit_count_failed", h.msgs.T(localeOf(c), "internal_error"))
		return
	}

	var logs []models.AuditLog
	if err := q.
		Order("created_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&logs).Error; err != nil {

		httperr.Internal(c, "audit_list_failed", h.msgs.T(localeOf(c), "internal_error"))
		return
	}

	httpresp.Paged(c, logs, total, page, limit)
}
