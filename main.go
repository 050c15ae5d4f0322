package main

import (
	"log"

	"api/config"
	"api/database"
	"api/middleware"
	"api/routes"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// @title Chess Club API
// @version 1.0
// @description Backend API for the chess club web application: signup/signin, tournament listings and puzzle image sets.
// @BasePath /
func main() {
	config.LoadConfig()
	gin.SetMode(config.GinMode)

	database.InitDB()
	defer database.CloseDB()
	database.InitCache()

	r := gin.Default()

	// Allow requests from specific origins
	r.Use(cors.New(cors.Config{
		AllowOrigins: config.AllowedOrigins,
		AllowMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders: []string{"Origin", "Content-Type", "Accept"},
	}))

	middleware.UpdateSystemMetrics()
	routes.Register(r)

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	log.Println("Starting server on port ", config.ServerPort)
	if err := r.Run(":" + config.ServerPort); err != nil {
		log.Fatal("failed to start server: ", err)
	}
}
