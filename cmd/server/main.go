package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"socialconnect/backend/internal/auth"
	"socialconnect/backend/internal/config"
	"socialconnect/backend/internal/database"
	"socialconnect/backend/internal/handler"
	"socialconnect/backend/internal/seed"
	"socialconnect/backend/internal/store"

	// Swagger imports
	_ "socialconnect/backend/docs" // This is important for swag to find the generated docs

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// @title           SocialConnect API
// @version         1.0
// @description     This is the API for the SocialConnect service.
// @host            localhost:8080
// @BasePath        /api/v1
// @securityDefinitions.apiKey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg := config.Load()

	// An empty DATABASE_URL selects the in-memory store.
	var st store.Store
	if cfg.DatabaseURL != "" {
		st = store.NewGormStore(database.Connect(cfg.DatabaseURL))
	} else {
		log.Println("DATABASE_URL not set, using in-memory store")
		st = store.NewMemStore()
	}

	h := handler.New(st, cfg.JWTSecret)

	if cfg.SeedDemoData {
		if err := seed.Demo(h); err != nil {
			log.Fatalf("Failed to seed demo data: %v", err)
		}
		log.Println("Demo data seeded.")
	}

	router := gin.Default()

	// Swagger route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health check endpoint
	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "pong",
		})
	})

	// API v1 routes
	apiV1 := router.Group("/api/v1")
	{
		// Auth routes
		authRoutes := apiV1.Group("/auth")
		{
			authRoutes.POST("/register", h.Register)
			authRoutes.POST("/login", h.Login)
			authRoutes.GET("/me", auth.Middleware(cfg.JWTSecret), h.GetMe)
		}

		// Everything below requires an authenticated actor.
		protected := apiV1.Group("")
		protected.Use(auth.Middleware(cfg.JWTSecret))
		{
			// User routes
			protected.GET("/users", h.GetUsers)
			protected.GET("/users/:id", h.GetUserByID)
			protected.GET("/users/:id/posts", h.GetUserPosts)

			// Post routes
			protected.POST("/posts", h.CreatePost)
			protected.GET("/posts/feed", h.GetFeed)
			protected.GET("/posts/:id", h.GetPost)

			// Interaction routes
			protected.POST("/posts/:id/comments", h.CreateComment)
			protected.POST("/posts/:id/like", h.LikePost)
			protected.DELETE("/posts/:id/like", h.UnlikePost)

			// Friendship routes
			protected.POST("/friend-requests", h.SendFriendRequest)
			protected.PUT("/friend-requests/:id", h.UpdateFriendRequest)
			protected.GET("/friend-requests", h.GetFriendRequests)
			protected.GET("/friends", h.GetFriends)

			// Notification routes
			protected.GET("/notifications", h.GetNotifications)
			protected.PUT("/notifications/:id/read", h.MarkNotificationRead)
		}
	}

	addr := ":" + cfg.Port
	fmt.Println("Server is running on " + addr)
	fmt.Println("Swagger UI is available at http://localhost:" + cfg.Port + "/swagger/index.html")
	log.Fatal(router.Run(addr))
}
