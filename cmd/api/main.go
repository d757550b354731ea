package main

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"

	"github.com/Eesar1/booking-system/internal/config"
	dbpkg "github.com/Eesar1/booking-system/internal/db"
	"github.com/Eesar1/booking-system/internal/logger"
	"github.com/Eesar1/booking-system/internal/middleware"
	"github.com/Eesar1/booking-system/internal/routes"
)

func main() {

	cfg := config.Load()
	logger.Init("booking-api", cfg.Env)

	db := dbpkg.NewDB(cfg)

	var rdb *redis.Client
	if cfg.RedisAddr != "" {
		rdb = redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
	}

	r := gin.Default()

	r.Use(middleware.CORSMiddleware())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"message": "Appointment booking API running",
		})
	})

	routes.RegisterRoutes(r, db, rdb, cfg)

	log.Info().Str("addr", cfg.Addr()).Msg("server running")
	if err := r.Run(cfg.Addr()); err != nil {
		log.Fatal().Err(err).Msg("failed to start server")
	}
}
