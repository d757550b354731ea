package db

import (
	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/Eesar1/booking-system/internal/config"
	"github.com/Eesar1/booking-system/internal/models"
)

// seedAdmin creates the first admin account from the environment.
// Registration only ever produces customers, so without this there would be
// no way to reach the admin endpoints on a fresh database.
func seedAdmin(db *gorm.DB, cfg *config.Config) {
	if cfg.AdminPassword == "" {
		return
	}

	var count int64
	if err := db.Model(&models.User{}).
		Where("role = ?", "admin").
		Count(&count).Error; err != nil {
		log.Error().Err(err).Msg("admin seed check failed")
		return
	}
	if count > 0 {
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(cfg.AdminPassword), bcrypt.DefaultCost)
	if err != nil {
		log.Error().Err(err).Msg("failed to hash admin password")
		return
	}

	admin := models.User{
		Name:         cfg.AdminName,
		Email:        cfg.AdminEmail,
		PasswordHash: string(hashed),
		Role:         "admin",
	}

	if err := db.Create(&admin).Error; err != nil {
		log.Error().Err(err).Msg("failed to seed admin user")
		return
	}

	log.Info().Str("email", admin.Email).Msg("seeded admin user")
}
