package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/salonova-app/booking-api/internal/cache"
	"github.com/salonova-app/booking-api/internal/httperr"
	"github.com/salonova-app/booking-api/internal/i18n"
	"github.com/salonova-app/booking-api/internal/models"
	"github.com/salonova-app/booking-api/internal/storage"
	"github.com/salonova-app/booking-api/internal/timezone"
)

// AdminBusinessHandler is the management surface that used to live in a
// separate admin API. Same transport, role-guarded routes.
type AdminBusinessHandler struct {
	db     *gorm.DB
	cache  *cache.Cache
	photos *storage.PhotoStore
	msgs   *i18n.Bundle
}

func NewAdminBusinessHandler(
	db *gorm.DB,
	cc *cache.Cache,
	photos *storage.PhotoStore,
	msgs *i18n.Bundle,
) *AdminBusinessHandler {
	return &AdminBusinessHandler{db: db, cache: cc, photos: photos, msgs: msgs}
}

// --------- Requests ---------

type CreateBusinessRequest struct {
	Name        string `json:"name" binding:"required"`
	Slug        string `json:"slug" binding:"required"`
	CityID      uint   `json:"city_id" binding:"required"`
	CategoryID  uint   `json:"category_id" binding:"required"`
	Phone       string `json:"phone"`
	Address     string `json:"address"`
	Description string `json:"description"`
	Timezone    string `json:"timezone"`
}

type UpdateBusinessRequest struct {
	Name              *string  `json:"name,omitempty"`
	Phone             *string  `json:"phone,omitempty"`
	Address           *string  `json:"address,omitempty"`
	Description       *string  `json:"description,omitempty"`
	CityID            *uint    `json:"city_id,omitempty"`
	CategoryID        *uint    `json:"category_id,omitempty"`
	Recommended       *bool    `json:"recommended,omitempty"`
	Rating            *float64 `json:"rating,omitempty"`
	MinAdvanceMinutes *int     `json:"min_advance_minutes,omitempty"`
}

type CreateServiceRequest struct {
	Name          string   `json:"name" binding:"required"`
	Description   string   `json:"description"`
	DurationMin   int      `json:"duration_min" binding:"required,min=1"`
	Price         float64  `json:"price" binding:"required"`
	OriginalPrice *float64 `json:"original_price"`
	OnPromotion   bool     `json:"on_promotion"`
	PromotionID   *uint    `json:"promotion_id"`
	Category      string   `json:"category"`
}

type CreateEmployeeRequest struct {
	Name  string `json:"name" binding:"required"`
	Title string `json:"title"`
}

type CreatePromotionRequest struct {
	Title    string `json:"title" binding:"required"`
	Discount string `json:"discount" binding:"required"`
}

type WorkingDayConfig struct {
	Weekday    int    `json:"weekday" binding:"min=0,max=6"`
	Active     bool   `json:"active"`
	StartTime  string `json:"start_time" binding:"hhmm"`
	EndTime    string `json:"end_time" binding:"hhmm"`
	BreakStart string `json:"break_start" binding:"hhmm"`
	BreakEnd   string `json:"break_end" binding:"hhmm"`
}

type WorkingHoursUpdateRequest struct {
	Days []WorkingDayConfig `json:"days" binding:"required"`
}

// --------- Business CRUD ---------

func (h *AdminBusinessHandler) Create(c *gin.Context) {
	var req CreateBusinessRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", h.msgs.T(localeOf(c), "invalid_request"))
		return
	}

	slug := strings.ToLower(strings.TrimSpace(req.Slug))

	var count int64
	h.db.Model(&models.Business{}).Where("slug = ?", slug).Count(&count)
	if count > 0 {
		httperr.BadRequest(c, "slug_already_exists", h.msgs.T(localeOf(c), "invalid_request"))
		return
	}

	tz := req.Timezone
	if !timezone.IsValid(tz) {
		tz = timezone.DefaultTimezone
	}

	business := models.Business{
		Name:        req.Name,
		Slug:        slug,
		CityID:      req.CityID,
		CategoryID:  req.CategoryID,
		Phone:       req.Phone,
		Address:     req.Address,
		Description: req.Description,
		Timezone:    tz,
	}

	if err := h.db.Create(&business).Error; err != nil {
		httperr.Internal(c, "failed_to_create_business", h.msgs.T(localeOf(c), "internal_error"))
		return
	}

	h.invalidateBusinessLists(c, business.CityID)
	c.JSON(http.StatusCreated, business)
}

func (h *AdminBusinessHandler) Update(c *gin.Context) {
	id := c.Param("id")

	var business models.Business
	if err := h.db.First(&business, id).Error; err != nil {
		httperr.NotFound(c, "business_not_found", h.msgs.T(localeOf(c), "business_not_found"))
		return
	}

	var req UpdateBusinessRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", h.msgs.T(localeOf(c), "invalid_request"))
		return
	}

	if req.Name != nil {
		business.Name = *req.Name
	}
	if req.Phone != nil {
		business.Phone = *req.Phone
	}
	if req.Address != nil {
		business.Address = *req.Address
	}
	if req.Description != nil {
		business.Description = *req.Description
	}
	if req.CityID != nil {
		business.CityID = *req.CityID
	}
	if req.CategoryID != nil {
		business.CategoryID = *req.CategoryID
	}
	if req.Recommended != nil {
		business.Recommended = *req.Recommended
	}
	if req.Rating != nil {
		business.Rating = *req.Rating
	}
	if req.MinAdvanceMinutes != nil && *req.MinAdvanceMinutes >= 0 {
		business.MinAdvanceMinutes = *req.MinAdvanceMinutes
	}

	if err := h.db.Save(&business).Error; err != nil {
		httperr.Internal(c, "failed_to_update_business", h.msgs.T(localeOf(c), "internal_error"))
		return
	}

	h.invalidateBusinessLists(c, business.CityID)
	c.JSON(http.StatusOK, business)
}

func (h *AdminBusinessHandler) Delete(c *gin.Context) {
	id := c.Param("id")

	var business models.Business
	if err := h.db.First(&business, id).Error; err != nil {
		httperr.NotFound(c, "business_not_found", h.msgs.T(localeOf(c), "business_not_found"))
		return
	}

	if err := h.db.Delete(&business).Error; err != nil {
		httperr.Internal(c, "failed_to_delete_business", h.msgs.T(localeOf(c), "internal_error"))
		return
	}

	h.invalidateBusinessLists(c, business.CityID)
	c.Status(http.StatusNoContent)
}

// --------- Photo ---------

func (h *AdminBusinessHandler) UploadPhoto(c *gin.Context) {
	id := c.Param("id")

	var business models.Business
	if err := h.db.First(&business, id).Error; err != nil {
		httperr.NotFound(c, "business_not_found", h.msgs.T(localeOf(c), "business_not_found"))
		return
	}

	file, _, err := c.Request.FormFile("photo")
	if err != nil {
		httperr.BadRequest(c, "missing_photo", h.msgs.T(localeOf(c), "invalid_request"))
		return
	}
	defer file.Close()

	url, err := h.photos.UploadBusinessPhoto(c.Request.Context(), business.ID, file)
	if err != nil {
		httperr.Internal(c, "failed_to_upload_photo", h.msgs.T(localeOf(c), "internal_error"))
		return
	}

	business.PhotoURL = url
	if err := h.db.Save(&business).Error; err != nil {
		httperr.Internal(c, "failed_to_update_business", h.msgs.T(localeOf(c), "internal_error"))
		return
	}

	h.invalidateBusinessLists(c, business.CityID)
	c.JSON(http.StatusOK, gin.H{"photo_url": url})
}

// --------- Services / Employees / Promotions ---------

func (h *AdminBusinessHandler) CreateService(c *gin.Context) {
	id := c.Param("id")

	var business models.Business
	if err := h.db.First(&business, id).Error; err != nil {
		httperr.NotFound(c, "business_not_found", h.msgs.T(localeOf(c), "business_not_found"))
		return
	}

	var req CreateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", h.msgs.T(localeOf(c), "invalid_request"))
		return
	}

	svc := models.Service{
		BusinessID:    business.ID,
		Name:          req.Name,
		Description:   req.Description,
		DurationMin:   req.DurationMin,
		Price:         req.Price,
		OriginalPrice: req.OriginalPrice,
		OnPromotion:   req.OnPromotion,
		PromotionID:   req.PromotionID,
		Category:      strings.ToLower(req.Category),
		Active:        true,
	}

	if err := h.db.Create(&svc).Error; err != nil {
		httperr.Internal(c, "failed_to_create_service", h.msgs.T(localeOf(c), "internal_error"))
		return
	}

	c.JSON(http.StatusCreated, svc)
}

func (h *AdminBusinessHandler) CreateEmployee(c *gin.Context) {
	id := c.Param("id")

	var business models.Business
	if err := h.db.First(&business, id).Error; err != nil {
		httperr.NotFound(c, "business_not_found", h.msgs.T(localeOf(c), "business_not_found"))
		return
	}

	var req CreateEmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", h.msgs.T(localeOf(c), "invalid_request"))
		return
	}

	employee := models.Employee{
		BusinessID: business.ID,
		Name:       req.Name,
		Title:      req.Title,
		Active:     true,
	}

	if err := h.db.Create(&employee).Error; err != nil {
		httperr.Internal(c, "failed_to_create_employee", h.msgs.T(localeOf(c), "internal_error"))
		return
	}

	c.JSON(http.StatusCreated, employee)
}

func (h *AdminBusinessHandler) CreatePromotion(c *gin.Context) {
	id := c.Param("id")

	var business models.Business
	if err := h.db.First(&business, id).Error; err != nil {
		httperr.NotFound(c, "business_not_found", h.msgs.T(localeOf(c), "business_not_found"))
		return
	}

	var req CreatePromotionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", h.msgs.T(localeOf(c), "invalid_request"))
		return
	}

	promo := models.Promotion{
		BusinessID: business.ID,
		Title:      req.Title,
		Discount:   req.Discount,
		Active:     true,
	}

	if err := h.db.Create(&promo).Error; err != nil {
		httperr.Internal(c, "failed_to_create_promotion", h.msgs.T(localeOf(c), "internal_error"))
		return
	}

	c.JSON(http.StatusCreated, promo)
}

// --------- Working hours ---------

func (h *AdminBusinessHandler) SetWorkingHours(c *gin.Context) {
	employeeID := c.Param("employeeId")

	var employee models.Employee
	if err := h.db.First(&employee, employeeID).Error; err != nil {
		httperr.NotFound(c, "employee_not_found", h.msgs.T(localeOf(c), "employee_not_found"))
		return
	}

	var req WorkingHoursUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", h.msgs.T(localeOf(c), "invalid_request"))
		return
	}

	if err := h.db.
		Where("employee_id = ?", employee.ID).
		Delete(&models.WorkingHours{}).Error; err != nil {

		httperr.Internal(c, "failed_to_clear_existing_hours", h.msgs.T(localeOf(c), "internal_error"))
		return
	}

	var toCreate []models.WorkingHours
	for _, d := range req.Days {
		toCreate = append(toCreate, models.WorkingHours{
			EmployeeID: employee.ID,
			Weekday:    d.Weekday,
			Active:     d.Active,
			StartTime:  d.StartTime,
			EndTime:    d.EndTime,
			BreakStart: d.BreakStart,
			BreakEnd:   d.BreakEnd,
		})
	}

	if len(toCreate) > 0 {
		if err := h.db.Create(&toCreate).Error; err != nil {
			httperr.Internal(c, "failed_to_save_working_hours", h.msgs.T(localeOf(c), "internal_error"))
			return
		}
	}

	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// --------- Cache ---------

func (h *AdminBusinessHandler) invalidateBusinessLists(c *gin.Context, cityID uint) {
	h.cache.Invalidate(
		c.Request.Context(),
		cache.KeyRecent,
		cache.KeyStats,
		cache.KeyRecommended(0),
		cache.KeyRecommended(cityID),
	)
}
