package handlers

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/salonova-app/booking-api/internal/middleware"
)

// localeOf picks the response language: token claim first, then the
// Accept-Language header, default English.
func localeOf(c *gin.Context) string {
	if v, ok := c.Get(middleware.ContextLocale); ok {
		if s, ok := v.(string); ok && s != "" {
			return s
		}
	}

	if strings.HasPrefix(strings.ToLower(c.GetHeader("Accept-Language")), "vi") {
		return "vi"
	}

	return "en"
}
