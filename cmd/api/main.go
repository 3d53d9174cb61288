package main

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/salonova-app/booking-api/internal/cache"
	"github.com/salonova-app/booking-api/internal/config"
	dbpkg "github.com/salonova-app/booking-api/internal/db"
	"github.com/salonova-app/booking-api/internal/i18n"
	"github.com/salonova-app/booking-api/internal/logger"
	"github.com/salonova-app/booking-api/internal/middleware"
	"github.com/salonova-app/booking-api/internal/routes"
	"github.com/salonova-app/booking-api/internal/validators"
)

func main() {

	cfg := config.Load()
	log := logger.New(cfg.LogLevel, cfg.LogPretty)

	db := dbpkg.NewDB(cfg, log)

	cc := cache.New(cfg, log)
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	if err := cc.Ping(ctx); err != nil {
		log.Warn().Err(err).Msg("redis unreachable, list caching disabled")
	}
	cancel()

	msgs, err := i18n.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load locale tables")
	}

	validators.Register()

	r := gin.Default()

	r.Use(middleware.CORSMiddleware())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	routes.RegisterRoutes(r, db, cfg, cc, msgs, log)

	log.Info().Str("addr", cfg.Addr()).Msg("server running")
	if err := r.Run(cfg.Addr()); err != nil {
		log.Fatal().Err(err).Msg("failed to start server")
	}
}
