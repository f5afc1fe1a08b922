package main

import (
	"log"
	"os"

	"gallery-service/database"
	"gallery-service/middleware"
	"gallery-service/routes"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	connStr := os.Getenv("DATABASE_URL")
	if connStr == "" {
		if err := godotenv.Load(".env"); err != nil {
			log.Println(err)
		}
		connStr = os.Getenv("DATABASE_URL")
	}

	database.Connect(connStr)
	defer database.Close()

	r := gin.Default()

	corsOrigin := os.Getenv("CORS_ORIGIN")
	if corsOrigin == "" {
		corsOrigin = "http://localhost:3000"
	}
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{corsOrigin},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
	}))
	r.Use(middleware.RequestID())
	r.Use(middleware.ErrorHandler())

	routes.Setup(r)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Printf("gallery-service listening on :%s", port)
	log.Fatal(r.Run(":" + port))
}
