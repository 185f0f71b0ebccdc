package main

import (
	"log"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	c "github.com/okanay/backend-translate-lingua/configs"
	db "github.com/okanay/backend-translate-lingua/database"
	"github.com/okanay/backend-translate-lingua/handlers"
	AdminHandler "github.com/okanay/backend-translate-lingua/handlers/admin"
	TranslationHandler "github.com/okanay/backend-translate-lingua/handlers/translation"
	UserHandler "github.com/okanay/backend-translate-lingua/handlers/user"
	"github.com/okanay/backend-translate-lingua/middlewares"
	AIRepository "github.com/okanay/backend-translate-lingua/repositories/ai"
	TokenRepository "github.com/okanay/backend-translate-lingua/repositories/token"
	TranslationRepository "github.com/okanay/backend-translate-lingua/repositories/translation"
	UserRepository "github.com/okanay/backend-translate-lingua/repositories/user"
	AIService "github.com/okanay/backend-translate-lingua/services/ai"
	cache "github.com/okanay/backend-translate-lingua/services/cache"
)

func main() {
	// Environment Variables and Database Connection
	if err := godotenv.Load(".env"); err != nil {
		log.Println("Warning: .env file not loaded, using environment variables")
	}

	sqlDB, err := db.Init(os.Getenv("DATABASE_URL"))
	if err != nil {
		log.Fatalf("Error connecting to database: %v", err)
	}
	defer sqlDB.Close()

	// Repository Initialization
	ur := UserRepository.NewRepository(sqlDB)
	tr := TokenRepository.NewRepository(sqlDB)
	xr := TranslationRepository.NewRepository(sqlDB)
	ar := AIRepository.NewRepository(os.Getenv("OPENAI_API_KEY"))

	// Service Initialization
	ais := AIService.NewAIService(ar)
	cacheService := cache.NewCache(24 * time.Hour)

	// Handler Initialization
	mainHandler := handlers.NewHandler()
	uh := UserHandler.NewHandler(ur, tr)
	th := TranslationHandler.NewHandler(xr, ais)
	ah := AdminHandler.NewHandler(cacheService)

	// Middleware Initialization
	aiRateLimit := middlewares.NewAIRateLimitMiddleware(cacheService)

	// Router Initialize
	router := gin.Default()
	router.Use(c.CorsConfig())

	// Global Routes
	router.GET("/", mainHandler.Index)
	router.NoRoute(mainHandler.NotFound)

	// Public Auth Routes
	auth := router.Group("/auth")
	auth.Use(middlewares.RateLimit(cacheService))
	auth.POST("/register", uh.CreateNewUser)
	auth.POST("/login", uh.Login)

	// Authenticated Routes
	authed := router.Group("/")
	authed.Use(middlewares.AuthMiddleware(ur, tr))

	authed.GET("/auth/me", uh.GetMe)
	authed.POST("/auth/logout", uh.Logout)

	// Translation Routes
	translations := authed.Group("/translations")
	translations.GET("", th.SelectTranslations)
	translations.GET("/:id", th.SelectTranslationByID)
	translations.PATCH("/:id/favorite", th.UpdateFavorite)
	translations.DELETE("/:id", th.DeleteTranslation)

	// AI-backed routes carry the per-user AI rate limit
	aiRoutes := translations.Group("")
	aiRoutes.Use(middlewares.PermissionMiddleware(c.PermissionTranslate))
	aiRoutes.Use(aiRateLimit.RateLimit())
	aiRoutes.POST("", th.CreateTranslation)
	aiRoutes.POST("/detect", th.DetectLanguage)

	// Admin Routes
	admin := authed.Group("/admin")
	admin.Use(middlewares.PermissionMiddleware(c.PermissionManageCache))
	admin.GET("/cache/stats", ah.GetCacheStats)
	admin.DELETE("/cache", ah.ClearAllCache)
	admin.DELETE("/cache/prefix", ah.ClearCacheWithPrefix)

	// Start Server
	err = router.Run(":" + os.Getenv("PORT"))
	if err != nil {
		log.Fatalf("Error starting server: %v", err)
	}
}
