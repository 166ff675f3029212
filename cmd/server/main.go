package main

import (
	"log"
	"strings"
	"time"

	"book-scout/backend/internal/config"
	"book-scout/backend/internal/handler"
	"book-scout/backend/internal/middleware"
	"book-scout/backend/internal/recommend"
	"book-scout/backend/internal/recommend/gateway"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"golang.org/x/time/rate"
)

// maxRequestBody caps the /api/recommend request body.
const maxRequestBody = 200 << 10 // 200 KB

func main() {
	godotenv.Load(".env.local")

	cfg := config.Load()
	log.Printf("[INFO] Starting Book Scout env=%s mock_mode=%t", cfg.Env, cfg.MockMode)

	var gw gateway.Gateway
	if cfg.MockMode {
		gw = gateway.NewMockGateway()
		log.Println("[INFO] Mock gateway active, no external calls will be made")
	} else {
		gw = gateway.NewGeminiGateway(cfg.GeminiAPIKey, cfg.GeminiModel)
		log.Printf("[INFO] Gemini gateway active model=%s api_key=%s", cfg.GeminiModel, cfg.MaskedAPIKey())
		if cfg.GeminiAPIKey == "" {
			log.Println("[WARN] GEMINI_API_KEY is not set; live recommendations will fail until it is provided")
		}
	}

	svc := recommend.NewService(gw)
	recommendHandler := handler.NewRecommendHandler(svc)
	healthHandler := handler.NewHealthHandler(gw.Name(), cfg.MockMode)

	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.Default()

	// Security headers (before CORS)
	r.Use(middleware.SecurityHeaders())

	allowedOrigins := []string{}
	if gin.Mode() != gin.ReleaseMode {
		allowedOrigins = append(allowedOrigins, "http://localhost:5173")
	}
	if cfg.CloudRunURL != "" {
		allowedOrigins = append(allowedOrigins, cfg.CloudRunURL)
	}
	allowedOrigins = append(allowedOrigins, cfg.ExtraOrigins...)

	r.Use(cors.New(cors.Config{
		AllowOrigins:     allowedOrigins,
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Content-Type", "Accept-Language"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	ipLimiter := middleware.NewIPRateLimiter(rate.Limit(cfg.RequestsPerSecond), cfg.Burst)
	dailyQuota := middleware.NewDailyQuota(cfg.DailyQuota)
	log.Printf("[INFO] Rate limiting enabled rps=%.1f burst=%d daily_quota=%d",
		cfg.RequestsPerSecond, cfg.Burst, cfg.DailyQuota)

	// Health check endpoints (outside /api group, no rate limiting)
	r.GET("/health", healthHandler.HandleHealth)
	r.GET("/ready", healthHandler.HandleReadiness)

	api := r.Group("/api")
	{
		api.GET("/health", healthHandler.HandleAPIHealth)
		api.POST("/recommend",
			middleware.BodySizeLimit(maxRequestBody),
			middleware.RateLimit(ipLimiter, dailyQuota),
			recommendHandler.Handle)
	}

	if cfg.Env == "production" {
		r.Static("/assets", "/app/static/assets")

		r.NoRoute(func(c *gin.Context) {
			if strings.HasPrefix(c.Request.URL.Path, "/api") {
				c.JSON(404, gin.H{"error": "Not found"})
				return
			}
			c.File("/app/static/index.html")
		})
	}

	log.Printf("[INFO] Server ready port=%s allowed_origins=%v", cfg.Port, allowedOrigins)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatalf("[FATAL] Failed to start server: %v", err)
	}
}
