package main

import (
	"context"
	"log"
	"os"

	"event-management-api/config"
	"event-management-api/internal/database"
	"event-management-api/internal/handler"
	"event-management-api/internal/mailer"
	"event-management-api/internal/repository"
	"event-management-api/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func main() {
	cfg := config.LoadConfig()

	pool, err := database.InitDatabase(&cfg.Database)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer pool.Close()

	if err := database.InitSchema(context.Background(), pool); err != nil {
		log.Fatalf("Failed to initialize schema: %v", err)
	}

	if err := os.MkdirAll(cfg.Upload.Dir, 0o755); err != nil {
		log.Fatalf("Failed to create upload directory: %v", err)
	}

	eventRepo := repository.NewEventRepository(pool)
	registrationRepo := repository.NewRegistrationRepository(pool)
	smtpMailer := mailer.NewSMTPMailer(&cfg.SMTP)

	eventService := service.NewEventService(eventRepo)
	registrationService := service.NewRegistrationService(eventRepo, registrationRepo, smtpMailer)

	router := gin.Default()
	router.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"message": "pong",
		})
	})
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	handler.NewEventHandler(eventService, cfg.Upload.Dir).RegisterRoutes(router)
	handler.NewRegistrationHandler(registrationService).RegisterRoutes(router)

	router.Run(":" + cfg.Server.Port)
}
