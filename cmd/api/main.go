package main

import (
	"fmt"
	"log"
	"os"

	"powergas-profit/internal/api/handlers"
	"powergas-profit/internal/api/middleware"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	port := os.Getenv("API_PORT")
	if port == "" {
		port = "8080"
	}

	var logger *zap.Logger
	var err error
	if os.Getenv("API_ENV") == "production" {
		gin.SetMode(gin.ReleaseMode)
		logger, err = zap.NewProduction()
	} else {
		logger, err = zap.NewDevelopment()
	}
	if err != nil {
		log.Fatalf("Failed to build logger: %v", err)
	}
	defer logger.Sync()

	router := gin.New()
	router.Use(middleware.CORS())
	router.Use(middleware.Logger(logger))
	router.Use(middleware.ErrorHandler())

	tripHandler := handlers.NewTripHandler()
	compareHandler := handlers.NewCompareHandler(logger)

	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	api := router.Group("/api/v1")
	{
		api.POST("/trip", tripHandler.Calculate)
		api.POST("/compare", compareHandler.Compare)
	}

	addr := fmt.Sprintf(":%s", port)
	logger.Info("starting API server", zap.String("addr", addr))
	if err := router.Run(addr); err != nil {
		logger.Fatal("server exited", zap.Error(err))
	}
}
