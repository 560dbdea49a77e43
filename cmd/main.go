package main

import (
	"context"
	"errors"
	"os/signal"
	"syscall"
	"time"

	agency "github.com/SergioDzul/agencyGiuseppi"
	"github.com/SergioDzul/agencyGiuseppi/internal/api/handler/endpoints"
	"github.com/SergioDzul/agencyGiuseppi/internal/api/models"
	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/graceful"
	"github.com/gin-gonic/gin"
)

func main() {
	agency.InitConfig(".env")
	gin.SetMode(gin.ReleaseMode)

	if agency.GetConfig().Mode == "dev" {
		if err := models.Migrate(agency.DB); err != nil {
			agency.Logger.Fatal().Err(err).Msg("Failed to migrate database")
		}
		agency.Logger.Info().Msg("Database migrated successfully")
		gin.SetMode(gin.DebugMode)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	router, err := graceful.Default(graceful.WithAddr(agency.GetConfig().ApiPort))
	if err != nil {
		panic(err)
	}
	defer stop()
	defer router.Close()

	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "PATCH", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	initAPI(router)

	agency.Logger.Debug().Msgf("Starting agency API on port %s", agency.GetConfig().ApiPort)
	if err = router.RunWithContext(ctx); err != nil && !errors.Is(err, context.Canceled) {
		agency.Logger.Fatal().Msg(err.Error())
		panic(err)
	}
}

func initAPI(router *graceful.Graceful) {
	endpoints.UserHandler(router, agency.DB, agency.Logger)
	endpoints.JobHandler(router, agency.DB, agency.Logger)
	endpoints.HitHandler(router, agency.DB, agency.Logger)
}
