package main

import (
	"os"
	"time"

	"shophub/config"
	_ "shophub/docs"
	"shophub/middleware"
	"shophub/models"
	"shophub/routes"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// @title ShopHub API
// @version 1.0
// @description Storefront backend: catalog, per-user cart and token auth.
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	config.LoadConfig()

	if config.AppConfig.AppEnv == "production" {
		gin.SetMode(gin.ReleaseMode)
		log.Logger = zerolog.New(os.Stderr).With().Timestamp().Logger()
	}

	models.InitDB()
	defer models.CloseDB()

	models.InitRedis()
	defer models.CloseRedis()

	if err := os.MkdirAll(config.AppConfig.UploadDir, os.ModePerm); err != nil {
		log.Fatal().Err(err).Msg("failed to create upload directory")
	}

	router := gin.Default()
	router.Use(middleware.CORSMiddleware())
	routes.SetupRoutes(router)

	port := ":" + config.AppConfig.Port
	log.Info().Str("port", config.AppConfig.Port).Msg("server starting")

	if err := router.Run(port); err != nil {
		log.Fatal().Err(err).Msg("failed to start server")
	}
}
