package main

import (
	"log"
	"net/http"
	"os"

	"github.com/ellamuslich/sela-kota/db"
	"github.com/ellamuslich/sela-kota/internal/handler"
	"github.com/ellamuslich/sela-kota/internal/repository"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {

	godotenv.Load()

	err := db.Connect()
	if err != nil {
		log.Fatalf("error connecting to DB: %v", err)
	}
	defer db.Close()

	storyRepo := repository.NewStoryRepository(db.DB)
	storyHandler := handler.NewStoryHandler(storyRepo)

	r := gin.Default()

	// The map front end is served from arbitrary origins (local dev
	// ports, static hosting), so CORS stays wide open.
	r.Use(cors.New(cors.Config{
		AllowAllOrigins: true,
		AllowMethods:    []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:    []string{"Origin", "Content-Type"},
	}))

	r.HandleMethodNotAllowed = true
	r.NoMethod(func(c *gin.Context) {
		c.JSON(http.StatusMethodNotAllowed, gin.H{"error": "Method not allowed"})
	})

	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "Sela Kota API is running!"})
	})
	r.GET("/api/stories", storyHandler.ListStories)
	r.POST("/api/stories", storyHandler.CreateStory)
	r.GET("/api/categories", storyHandler.GetCategories)
	r.GET("/health", storyHandler.GetHealth)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	err = r.Run(":" + port)
	if err != nil {
		log.Fatalf("error starting server: %v", err)
	}
}
