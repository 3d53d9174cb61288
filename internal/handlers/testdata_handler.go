package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/salonova-app/booking-api/internal/cache"
	"github.com/salonova-app/booking-api/internal/httperr"
	"github.com/salonova-app/booking-api/internal/i18n"
	"github.com/salonova-app/booking-api/internal/models"
	"github.com/salonova-app/booking-api/internal/timezone"
)

// TestDataHandler populates a fresh database with a browsable sample
// catalog, so a client can be pointed at an empty environment and still
// have businesses to book.
type TestDataHandler struct {
	db    *gorm.DB
	cache *cache.Cache
	msgs  *i18n.Bundle
}

func NewTestDataHandler(db *gorm.DB, cc *cache.Cache, msgs *i18n.Bundle) *TestDataHandler {
	return &TestDataHandler{db: db, cache: cc, msgs: msgs}
}

type sampleSet struct {
	Cities     []models.City
	Categories []models.Category
	Businesses []models.Business
	Employees  []models.Employee
	Services   []models.Service
	Promotions []models.Promotion
	Hours      []models.WorkingHours
}

// sampleDataSet builds the fixture graph. IDs are assigned explicitly so
// the cross-references hold without inspecting insert results.
func sampleDataSet() sampleSet {
	original := 250000.0

	set := sampleSet{
		Cities: []models.City{
			{ID: 1, Name: "Ho Chi Minh City", NameVi: "Thành phố Hồ Chí Minh", Active: true},
			{ID: 2, Name: "Hanoi", NameVi: "Hà Nội", Active: true},
			{ID: 3, Name: "Da Nang", NameVi: "Đà Nẵng", Active: true},
		},
		Categories: []models.Category{
			{ID: 1, Name: "Hair Salon", NameVi: "Tiệm tóc", Icon: "scissors", Active: true},
			{ID: 2, Name: "Barber", NameVi: "Cắt tóc nam", Icon: "razor", Active: true},
			{ID: 3, Name: "Nails", NameVi: "Làm móng", Icon: "nail", Active: true},
			{ID: 4, Name: "Spa", NameVi: "Spa", Icon: "lotus", Active: true},
		},
		Businesses: []models.Business{
			{
				ID: 1, Name: "Mây Spa", Slug: "may-spa",
				CityID: 1, CategoryID: 4,
				Address: "12 Nguyễn Huệ, Quận 1",
				Rating:  4.8, ReviewCount: 124, Recommended: true,
				Timezone: timezone.DefaultTimezone, MinAdvanceMinutes: 60,
			},
			{
				ID: 2, Name: "Saigon Barber House", Slug: "saigon-barber-house",
				CityID: 1, CategoryID: 2,
				Address: "45 Lê Lợi, Quận 1",
				Rating:  4.6, ReviewCount: 89, Recommended: true,
				Timezone: timezone.DefaultTimezone, MinAdvanceMinutes: 30,
			},
			{
				ID: 3, Name: "Hà Nội Hair Studio", Slug: "ha-noi-hair-studio",
				CityID: 2, CategoryID: 1,
				Address: "8 Tràng Tiền, Hoàn Kiếm",
				Rating:  4.4, ReviewCount: 57,
				Timezone: timezone.DefaultTimezone, MinAdvanceMinutes: 60,
			},
		},
		Employees: []models.Employee{
			{ID: 1, BusinessID: 1, Name: "Linh", Title: "Senior therapist", Active: true},
			{ID: 2, BusinessID: 1, Name: "Trang", Title: "Therapist", Active: true},
			{ID: 3, BusinessID: 2, Name: "Minh", Title: "Master barber", Active: true},
			{ID: 4, BusinessID: 3, Name: "Hương", Title: "Stylist", Active: true},
		},
		Services: []models.Service{
			{ID: 1, BusinessID: 1, Name: "Full body massage", DurationMin: 60, Price: 350000, Active: true},
			{ID: 2, BusinessID: 1, Name: "Facial treatment", DurationMin: 45, Price: 200000, OriginalPrice: &original, OnPromotion: true, Active: true},
			{ID: 3, BusinessID: 2, Name: "Haircut", DurationMin: 30, Price: 120000, Active: true},
			{ID: 4, BusinessID: 2, Name: "Hot towel shave", DurationMin: 30, Price: 90000, Active: true},
			{ID: 5, BusinessID: 3, Name: "Cut and style", DurationMin: 45, Price: 180000, Active: true},
		},
		Promotions: []models.Promotion{
			{ID: 1, BusinessID: 2, Title: "Weekday morning deal", Discount: "20%", Active: true},
			{ID: 2, BusinessID: 1, Title: "First visit gift", Discount: "Free Service", Active: true},
		},
	}

	// Tuesday through Sunday, lunch break midday.
	for _, emp := range set.Employees {
		for weekday := 2; weekday <= 6; weekday++ {
			set.Hours = append(set.Hours, models.WorkingHours{
				EmployeeID: emp.ID,
				Weekday:    weekday,
				StartTime:  "09:00",
				EndTime:    "19:00",
				BreakStart: "12:00",
				BreakEnd:   "13:00",
				Active:     true,
			})
		}
	}

	return set
}

// Seed inserts the sample catalog once. A database that already has
// businesses is left untouched.
func (h *TestDataHandler) Seed(c *gin.Context) {
	var existing int64
	if err := h.db.Model(&models.Business{}).Count(&existing).Error; err != nil {
		httperr.Internal(c, "seed_failed", h.msgs.T(localeOf(c), "internal_error"))
		return
	}

	if existing > 0 {
		c.JSON(http.StatusOK, gin.H{"seeded": false, "businesses": existing})
		return
	}

	set := sampleDataSet()

	err := h.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&set.Cities).Error; err != nil {
			return err
		}
		if err := tx.Create(&set.Categories).Error; err != nil {
			return err
		}
		if err := tx.Create(&set.Businesses).Error; err != nil {
			return err
		}
		if err := tx.Create(&set.Employees).Error; err != nil {
			return err
		}
		if err := tx.Create(&set.Services).Error; err != nil {
			return err
		}
		if err := tx.Create(&set.Promotions).Error; err != nil {
			return err
		}
		return tx.Create(&set.Hours).Error
	})
	if err != nil {
		httperr.Internal(c, "seed_failed", h.msgs.T(localeOf(c), "internal_error"))
		return
	}

	h.cache.Invalidate(
		c.Request.Context(),
		cache.KeyCities,
		cache.KeyCategories,
		cache.KeyRecent,
		cache.KeyStats,
		cache.KeyRecommended(0),
	)
	for _, city := range set.Cities {
		h.cache.Invalidate(c.Request.Context(), cache.KeyRecommended(city.ID))
	}

	c.JSON(http.StatusCreated, gin.H{
		"seeded":     true,
		"cities":     len(set.Cities),
		"categories": len(set.Categories),
		"businesses": len(set.Businesses),
		"employees":  len(set.Employees),
		"services":   len(set.Services),
		"promotions": len(set.Promotions),
	})
}
