package main

import (
	"log"

	"github.com/tomaspozo/hackathon-platform/config"
	"github.com/tomaspozo/hackathon-platform/database"
	_ "github.com/tomaspozo/hackathon-platform/docs"
	"github.com/tomaspozo/hackathon-platform/middleware"
	v1 "github.com/tomaspozo/hackathon-platform/routes/v1"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// @title Hackathon Platform API
// @version 1.0
// @description REST API for hackathon lifecycle management, teams, submissions and judging
// @BasePath /api/v1
// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}
	config.Init()

	database.InitDB()
	database.InitCache()

	// Keep runtime gauges fresh for the metrics endpoint
	middleware.UpdateSystemMetrics()

	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{config.ClientUrl},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
	}))

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	v1.Register(r)

	if err := r.Run(config.ListenAddr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
