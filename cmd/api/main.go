package main

import (
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/bilemo/phone-shop-api/internal/config"
	dbpkg "github.com/bilemo/phone-shop-api/internal/db"
	"github.com/bilemo/phone-shop-api/internal/middleware"
	"github.com/bilemo/phone-shop-api/internal/routes"
)

func main() {

	if err := godotenv.Load(); err != nil {
		log.Debug().Msg("no .env file found")
	}

	zerolog.TimeFieldFormat = time.RFC3339
	logger := zerolog.New(os.Stdout).With().
		Timestamp().
		Str("service", "phone-shop-api").
		Logger()
	log.Logger = logger

	cfg := config.Load()
	db := dbpkg.NewDB(cfg)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.RequestLogger(logger))
	r.Use(middleware.CORSMiddleware())

	routes.RegisterRoutes(r, db, cfg)

	logger.Info().Str("addr", cfg.Addr()).Msg("server running")
	if err := r.Run(cfg.Addr()); err != nil {
		logger.Fatal().Err(err).Msg("failed to start server")
	}
}
