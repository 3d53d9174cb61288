package db

import (
	"time"

	"github.com/rs/zerolog"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/salonova-app/booking-api/internal/config"
	"github.com/salonova-app/booking-api/internal/models"
	"github.com/salonova-app/booking-api/internal/timezone"
)

func NewDB(cfg *config.Config, log zerolog.Logger) *gorm.DB {
	db, err := gorm.Open(postgres.Open(cfg.DBUrl), &gorm.Config{
		PrepareStmt: true,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect database")
	}

	sqlDB, err := db.DB()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to get sql.DB")
	}

	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)
	sqlDB.SetConnMaxIdleTime(10 * time.Minute)

	if err := db.AutoMigrate(
		&models.City{},
		&models.Category{},
		&models.Business{},
		&models.User{},
		&models.Employee{},
		&models.Service{},
		&models.Promotion{},
		&models.WorkingHours{},
		&models.TimeSlot{},
		&models.Appointment{},
		&models.Favorite{},
		&models.AuditLog{},
	); err != nil {
		log.Fatal().Err(err).Msg("failed to migrate")
	}

	db.Exec(
		`UPDATE businesses SET timezone = ? WHERE timezone IS NULL OR timezone = ''`,
		timezone.DefaultTimezone,
	)

	return db
}
