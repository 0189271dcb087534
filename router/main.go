package router

import (
	"log"
	"time"

	"github.com/collegefinder/api/config"
	"github.com/collegefinder/api/database"
	auth_handlers "github.com/collegefinder/api/handlers/auth"
	college_handlers "github.com/collegefinder/api/handlers/college"
	"github.com/collegefinder/api/services"
	"github.com/collegefinder/api/utils/auth"
	"github.com/collegefinder/api/utils/cache"
	"github.com/collegefinder/api/utils/middleware"
	"github.com/collegefinder/api/utils/response"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupRoutes(app *fiber.App, store database.Storage, env *config.EnviornmentVariable) {
	if env.JWT_SECRET == "" {
		log.Fatal("JWT_SECRET environment variable is not set")
	}

	jwtIssuer := env.JWT_ISSUER
	if jwtIssuer == "" {
		jwtIssuer = "collegefinder-api"
	}

	jwtConfig := auth.JWTConfig{
		Secret:        env.JWT_SECRET,
		Expiry:        24 * time.Hour,
		RefreshExpiry: 7 * 24 * time.Hour,
		Issuer:        jwtIssuer,
	}
	jwtManager := auth.NewJWTManager(jwtConfig)

	// Get DB instance (type assert from interface)
	db, ok := store.GetDB().(*gorm.DB)
	if !ok {
		log.Fatal("Failed to get GORM DB instance")
	}

	// Redis backs the login brute-force protection and the college list
	// cache. The API stays up without it.
	redisURL := env.REDIS_URL
	if redisURL == "" {
		redisURL = "redis://localhost:6379/0"
	}

	redisCache, err := cache.NewRedisCache(redisURL)
	if err != nil {
		log.Printf("Warning: Failed to connect to Redis: %v. Brute force protection and list caching are disabled.", err)
		redisCache = nil
	}

	var bruteForceProtection *middleware.BruteForceProtection
	if redisCache != nil {
		bruteForceProtection = middleware.NewBruteForceProtection(redisCache)
	}

	authMiddleware := middleware.NewAuthMiddleware(jwtManager, db)
	authHandler := auth_handlers.NewAuthHandler(db, jwtManager, bruteForceProtection, env)

	imageFetcher := services.NewImageFetcher(time.Duration(env.IMAGE_FETCH_TIMEOUT) * time.Second)
	collegeService := services.NewCollegeService(db, imageFetcher)
	relationService := services.NewRelationService(db)
	collegeHandler := college_handlers.NewCollegeHandler(collegeService, relationService, redisCache, env.PUBLIC_BASE_URL)

	// Root and health
	app.Get("/", func(c *fiber.Ctx) error {
		return response.SuccessWithMessage(c, "Welcome to the Users Auth & College APIs", nil)
	})
	app.Get("/health", func(c *fiber.Ctx) error {
		if err := store.HealthCheck(); err != nil {
			return response.Error(c, fiber.StatusServiceUnavailable, "Database unreachable", "SERVICE_UNAVAILABLE")
		}
		return response.SuccessWithMessage(c, "ok", nil)
	})

	// Auth routes
	authGroup := app.Group("/auth")
	authGroup.Post("/register", authHandler.Register)
	if bruteForceProtection != nil {
		authGroup.Post("/login", bruteForceProtection.CheckAndRecordAttempt(), authHandler.Login)
	} else {
		authGroup.Post("/login", authHandler.Login)
	}
	authGroup.Get("/me", authMiddleware.Required(), authHandler.GetProfile)

	// College routes. Static segments are registered before the :id
	// parameter routes so /college/like etc. are not captured by :id.
	collegeGroup := app.Group("/college")
	collegeGroup.Post("/", collegeHandler.CreateCollege)
	collegeGroup.Get("/", collegeHandler.ListColleges)

	collegeGroup.Post("/like/:college_id", collegeHandler.ToggleLike)
	collegeGroup.Get("/liked/:user_id", collegeHandler.GetLikedColleges)

	collegeGroup.Post("/compare/:user_id/:college_id", collegeHandler.AddToCompare)
	collegeGroup.Delete("/compare/:user_id/:college_id", collegeHandler.RemoveFromCompare)
	collegeGroup.Get("/compare/:user_id", collegeHandler.GetComparedColleges)

	collegeGroup.Get("/name/:college_name", collegeHandler.GetCollegesByName)

	collegeGroup.Get("/:id", collegeHandler.GetCollege)
	collegeGroup.Get("/:id/image", collegeHandler.GetCollegeImage)
	collegeGroup.Delete("/:id", collegeHandler.DeleteCollege)
}
