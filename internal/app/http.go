package app

import (
	"context"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"auth-gateway/internal/auth/account"
	"auth-gateway/internal/auth/admin"
	"auth-gateway/internal/auth/handler"
	"auth-gateway/internal/auth/resolver"
	"auth-gateway/internal/auth/stepup"
	"auth-gateway/internal/config"
	"auth-gateway/internal/middleware"
	"auth-gateway/internal/provider/supabase"
)

func setupHTTP(ctx context.Context, cfg config.Config) (*gin.Engine, func() error, error) {

	infra, err := setupInfra(cfg)
	if err != nil {
		return nil, nil, err
	}

	// ----------------------------
	// Provider clients
	// ----------------------------

	authClient := supabase.NewAuth(cfg.SupabaseURL, cfg.SupabaseAnonKey, cfg.ProviderTimeout)
	adminClient := supabase.NewAdmin(cfg.SupabaseURL, cfg.SupabaseServiceKey, cfg.ProviderTimeout)
	profiles := supabase.NewProfiles(cfg.SupabaseURL, cfg.SupabaseServiceKey, cfg.ProviderTimeout)

	// ----------------------------
	// Dependencies
	// ----------------------------

	identityResolver := resolver.NewProviderResolver(authClient)
	verifier := stepup.NewVerifier(authClient)
	mutator := admin.NewMutator(adminClient, profiles)
	accounts := account.NewService(verifier, mutator)

	authHandler := handler.NewHandler(authClient, accounts)
	authMiddleware := middleware.NewAuthMiddleware(identityResolver)

	limit := func(c *gin.Context) { c.Next() }
	if infra.Redis != nil {
		limit = middleware.RateLimit(
			middleware.NewRedisCounter(infra.Redis.Client),
			cfg.RateLimitPerMinute,
			time.Minute,
		)
	}

	// ----------------------------
	// Router
	// ----------------------------

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestID())
	router.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Content-Type", "Authorization"},
		AllowCredentials: true,
	}))

	// ----------------------------
	// Routes
	// ----------------------------

	authHandler.RegisterRoutes(
		router,
		middleware.GinRequireAuth(authMiddleware),
		limit,
	)

	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	router.Static("/public", "./public")

	router.GET("/", func(c *gin.Context) {
		c.File("./public/index.html")
	})

	// ----------------------------
	// Cleanup
	// ----------------------------

	cleanup := func() error {
		if infra.Redis != nil {
			return infra.Redis.Close()
		}
		return nil
	}

	return router, cleanup, nil
}
