package main

import (
	"fmt"
	"log"
	"net/http"

	"meeplevision/backend/internal/auth"
	"meeplevision/backend/internal/bgg"
	"meeplevision/backend/internal/catalog"
	"meeplevision/backend/internal/config"
	"meeplevision/backend/internal/database"
	"meeplevision/backend/internal/handler"
	"meeplevision/backend/internal/store"

	"github.com/gin-gonic/gin"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"

	// Swagger imports
	_ "meeplevision/backend/docs" // This is important for swag to find the generated docs

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func init() {
	config.LoadConfig()
}

// @title           MeepleVision API
// @version         1.0
// @description     Board-game lookup and rating service backed by the BGG catalog.
// @host            localhost:8080
// @BasePath        /api
// @securityDefinitions.apiKey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg := config.AppConfig

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("%v", err)
	}

	games := store.NewGameStore(db)
	ratings := store.NewRatingStore(db)
	users := store.NewUserStore(db)

	source := bgg.NewClient(bgg.Config{
		SearchBaseURL: cfg.BGGSearchBaseURL,
		ThingBaseURL:  cfg.BGGThingBaseURL,
	})

	oauthCfg := &oauth2.Config{
		ClientID:     cfg.GoogleClientID,
		ClientSecret: cfg.GoogleClientSecret,
		RedirectURL:  cfg.OAuthRedirectURL,
		Scopes:       []string{"profile", "email"},
		Endpoint:     google.Endpoint,
	}

	h := handler.New(
		catalog.NewResolver(games, source),
		catalog.NewMatcher(games),
		games,
		ratings,
		users,
		oauthCfg,
		cfg.FrontendURL,
	)

	router := gin.Default()

	// Swagger route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health check endpoint
	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "pong",
		})
	})

	// Auth routes
	authRoutes := router.Group("/auth")
	{
		authRoutes.GET("/google/login", h.GoogleLogin)
		authRoutes.GET("/google/callback", h.GoogleCallback)
		authRoutes.GET("/status", auth.OptionalAuthMiddleware(), h.AuthStatus)
		authRoutes.GET("/logout", h.Logout)
	}

	// API routes (protected)
	api := router.Group("/api")
	api.Use(auth.AuthMiddleware())
	{
		api.GET("/search", h.SearchGames)
		api.GET("/lookup", h.LookupGame)
		api.GET("/suggest", h.SuggestGames)

		api.GET("/games", h.ListGames)
		api.POST("/games", h.CreateGame)

		api.POST("/ratings", h.SubmitRating)
		api.GET("/ratings/myGames", h.GetMyGames) // Must be before /ratings/:gameId
		api.GET("/ratings/:gameId", h.GetGameRatings)
	}

	fmt.Printf("Server is running on %s\n", cfg.ListenAddr)
	fmt.Printf("Swagger UI is available at http://localhost%s/swagger/index.html\n", cfg.ListenAddr)
	log.Fatal(router.Run(cfg.ListenAddr))
}
