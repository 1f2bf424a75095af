package main

import (
	"log"
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/reda-h/wellness-companion/internal/config"
	"github.com/reda-h/wellness-companion/internal/database"
	"github.com/reda-h/wellness-companion/internal/handlers"
	"github.com/reda-h/wellness-companion/internal/repository"
	"github.com/reda-h/wellness-companion/internal/services"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Set Gin mode
	gin.SetMode(cfg.GinMode)

	// Connect to database
	if err := database.Connect(cfg); err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Run migrations
	if err := database.Migrate(); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Initialize Gin router
	r := gin.Default()

	// The browser client may be served from anywhere
	r.Use(cors.Default())

	// Initialize services
	userRepo := repository.NewUserRepository(database.GetDB())
	authService := services.NewAuthService(userRepo)
	chatService := services.NewChatService(cfg.OpenAIAPIKey)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authService)
	contentHandler := handlers.NewContentHandler()
	chatHandler := handlers.NewChatHandler(chatService)

	// Health check endpoint
	r.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "API is running")
	})

	// Auth routes (all public; the server issues no tokens)
	r.POST("/register", authHandler.Register)
	r.POST("/login", authHandler.Login)
	r.GET("/users", authHandler.ListUsers)

	// Content library
	r.GET("/exercises", contentHandler.ListExercises)
	r.GET("/trimesters/:trimester", contentHandler.GetTrimesterGuide)
	r.GET("/wellness/today", contentHandler.WellnessToday)

	// Wellness assistant
	r.POST("/chat", chatHandler.Chat)

	// Start server
	log.Printf("Server starting on :%s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
