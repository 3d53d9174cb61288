package handlers

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/salonova-app/booking-api/internal/config"
	"github.com/salonova-app/booking-api/internal/httperr"
	"github.com/salonova-app/booking-api/internal/i18n"
	"github.com/salonova-app/booking-api/internal/models"
)

type AuthHandler struct {
	db     *gorm.DB
	config *config.Config
	msgs   *i18n.Bundle
}

func NewAuthHandler(db *gorm.DB, cfg *config.Config, msgs *i18n.Bundle) *AuthHandler {
	return &AuthHandler{db: db, config: cfg, msgs: msgs}
}

// --------- Requests ---------

type RegisterRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
	Phone    string `json:"phone"`
	Locale   string `json:"locale"`
	CityID   *uint  `json:"city_id"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// --------- Handlers ---------

func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", h.msgs.T(localeOf(c), "invalid_request"))
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	var count int64
	h.db.Model(&models.User{}).Where("email = ?", email).Count(&count)
	if count > 0 {
		httperr.BadRequest(c, "email_already_exists", h.msgs.T(localeOf(c), "email_already_exists"))
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		httperr.Internal(c, "failed_to_hash_password", h.msgs.T(localeOf(c), "internal_error"))
		return
	}

	locale := req.Locale
	if locale != "vi" {
		locale = "en"
	}

	user := models.User{
		Name:         req.Name,
		Email:        email,
		PasswordHash: string(hashed),
		Phone:        req.Phone,
		Role:         "customer",
		Locale:       locale,
		CityID:       req.CityID,
	}

	if err := h.db.Create(&user).Error; err != nil {
		httperr.Internal(c, "failed_to_create_user", h.msgs.T(localeOf(c), "internal_error"))
		return
	}

	token, err := h.generateToken(&user)
	if err != nil {
		httperr.Internal(c, "failed_to_generate_token", h.msgs.T(localeOf(c), "internal_error"))
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"user":  userPayload(&user),
		"token": token,
	})
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", h.msgs.T(localeOf(c), "invalid_request"))
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	var user models.User
	if err := h.db.Where("email = ?", email).First(&user).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			httperr.Unauthorized(c, "invalid_credentials", h.msgs.T(localeOf(c), "invalid_credentials"))
			return
		}
		httperr.Internal(c, "internal_error", h.msgs.T(localeOf(c), "internal_error"))
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		httperr.Unauthorized(c, "invalid_credentials", h.msgs.T(localeOf(c), "invalid_credentials"))
		return
	}

	token, err := h.generateToken(&user)
	if err != nil {
		httperr.Internal(c, "failed_to_generate_token", h.msgs.T(localeOf(c), "internal_error"))
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"user":  userPayload(&user),
		"token": token,
	})
}

func userPayload(user *models.User) gin.H {
	return gin.H{
		"id":        user.ID,
		"name":      user.Name,
		"email":     user.Email,
		"phone":     user.Phone,
		"role":      user.Role,
		"locale":    user.Locale,
		"city_id":   user.CityID,
		"dark_mode": user.DarkMode,
	}
}

// --------- JWT ---------

func (h *AuthHandler) generateToken(user *models.User) (string, error) {
	claims := jwt.MapClaims{
		"sub":    user.ID,
		"role":   user.Role,
		"locale": user.Locale,
		"exp":    time.Now().Add(24 * time.Hour).Unix(),
		"iat":    time.Now().Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(h.config.JWTSecret))
}
