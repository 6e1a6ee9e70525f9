package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/eceelesgerli/redline-cybersecurity-platforms/internal/config"
	"github.com/eceelesgerli/redline-cybersecurity-platforms/internal/database"
	"github.com/eceelesgerli/redline-cybersecurity-platforms/internal/handler"
	"github.com/eceelesgerli/redline-cybersecurity-platforms/internal/middleware"
	"github.com/eceelesgerli/redline-cybersecurity-platforms/internal/repository"
	"github.com/eceelesgerli/redline-cybersecurity-platforms/internal/service"
	"github.com/eceelesgerli/redline-cybersecurity-platforms/internal/uploader"
	"github.com/eceelesgerli/redline-cybersecurity-platforms/pkg/token"
)

func main() {
	// Initialize structured logging
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Validate configuration
	if err := cfg.Validate(); err != nil {
		slog.Error("invalid configuration", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Initialize database connection
	db := database.NewSurrealDB(database.Config{
		Host:      cfg.Database.Host,
		Port:      cfg.Database.Port,
		User:      cfg.Database.User,
		Password:  cfg.Database.Password,
		Namespace: cfg.Database.Namespace,
		Database:  cfg.Database.Database,
	})

	ctx := context.Background()
	if err := db.Connect(ctx); err != nil {
		slog.Error("failed to connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer func() { _ = db.Close() }()

	slog.Info("connected to database",
		slog.String("host", cfg.Database.Host),
		slog.String("database", cfg.Database.Database),
	)

	// Initialize token service
	secret := cfg.Auth.JWTSecret
	if secret == "" {
		secret = "your-secret-key"
		slog.Warn("JWT_SECRET not set, using development default")
	}
	tokenService, err := token.NewService(token.Config{
		Secret:     []byte(secret),
		Issuer:     cfg.Auth.Issuer,
		Expiration: cfg.Auth.TokenTTL,
	})
	if err != nil {
		slog.Error("failed to initialize token service", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Initialize image store. Hero slide uploads are disabled when
	// Cloudinary is not configured.
	var imageStore uploader.ImageStore
	if cfg.Cloudinary.IsConfigured() {
		imageStore, err = uploader.NewCloudinaryStore(uploader.Config{
			CloudName: cfg.Cloudinary.CloudName,
			APIKey:    cfg.Cloudinary.APIKey,
			APISecret: cfg.Cloudinary.APISecret,
			Folder:    cfg.Cloudinary.Folder,
		})
		if err != nil {
			slog.Error("failed to initialize image store", slog.String("error", err.Error()))
			os.Exit(1)
		}
	}

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	adminRepo := repository.NewAdminRepository(db)
	categoryRepo := repository.NewCategoryRepository(db)
	topicRepo := repository.NewTopicRepository(db)
	replyRepo := repository.NewReplyRepository(db)
	blogRepo := repository.NewBlogRepository(db)
	toolRepo := repository.NewToolRepository(db)
	slideRepo := repository.NewHeroSlideRepository(db)
	settingsRepo := repository.NewSettingsRepository(db)

	// Initialize services
	authService := service.NewAuthService(service.AuthServiceConfig{
		UserRepo:     userRepo,
		AdminRepo:    adminRepo,
		TokenService: tokenService,
	})

	forumService := service.NewForumService(service.ForumServiceConfig{
		CategoryRepo: categoryRepo,
		TopicRepo:    topicRepo,
		ReplyRepo:    replyRepo,
		UserRepo:     userRepo,
	})

	blogService := service.NewBlogService(service.BlogServiceConfig{
		BlogRepo: blogRepo,
	})

	toolService := service.NewToolService(service.ToolServiceConfig{
		ToolRepo: toolRepo,
	})

	slideService := service.NewHeroSlideService(service.HeroSlideServiceConfig{
		SlideRepo: slideRepo,
		Images:    imageStore,
		Logger:    logger,
	})

	settingsService := service.NewSettingsService(service.SettingsServiceConfig{
		SettingsRepo: settingsRepo,
		CacheTTL:     cfg.Settings.CacheTTL,
	})

	// Initialize rate limiter
	rateLimiter := middleware.NewRateLimiter(middleware.RateLimitConfig{
		Rate:   cfg.RateLimit.Rate,
		Window: cfg.RateLimit.Window,
		Burst:  cfg.RateLimit.Burst,
	})
	defer rateLimiter.Stop()

	// Initialize handlers
	authHandler := handler.NewAuthHandler(handler.AuthHandlerConfig{
		AuthService:  authService,
		CookieMaxAge: cfg.Auth.TokenTTL,
		CookieSecure: cfg.Auth.CookieSecure || cfg.IsProduction(),
	})
	forumHandler := handler.NewForumHandler(forumService)
	blogHandler := handler.NewBlogHandler(blogService)
	toolHandler := handler.NewToolHandler(toolService)
	slideHandler := handler.NewHeroSlideHandler(slideService)
	settingsHandler := handler.NewSettingsHandler(settingsService)
	healthHandler := handler.NewHealthHandler(db)

	// Create router and register routes
	mux := http.NewServeMux()

	adminAuth := middleware.AdminAuth(tokenService)
	memberAuth := middleware.MemberAuth(tokenService)
	optionalMember := middleware.OptionalMemberAuth(tokenService)

	// Health check endpoint
	mux.HandleFunc("GET /health", healthHandler.Health)

	// Admin auth endpoints
	mux.HandleFunc("POST /api/auth/login", authHandler.AdminLogin)
	mux.HandleFunc("POST /api/auth/logout", authHandler.AdminLogout)
	mux.Handle("GET /api/auth/me", adminAuth(http.HandlerFunc(authHandler.AdminMe)))

	// Member auth endpoints
	mux.HandleFunc("POST /api/user/register", authHandler.Register)
	mux.HandleFunc("POST /api/user/login", authHandler.MemberLogin)
	mux.HandleFunc("POST /api/user/logout", authHandler.MemberLogout)
	mux.Handle("GET /api/user/me", memberAuth(http.HandlerFunc(authHandler.MemberMe)))

	// Forum endpoints
	mux.HandleFunc("GET /api/forum/categories", forumHandler.ListCategories)
	// Public forum reads accept, but do not require, a member session.
	mux.Handle("GET /api/forum/topics", optionalMember(http.HandlerFunc(forumHandler.ListTopics)))
	mux.Handle("POST /api/forum/topics", memberAuth(http.HandlerFunc(forumHandler.CreateTopic)))
	mux.Handle("GET /api/forum/topics/{slug}", optionalMember(http.HandlerFunc(forumHandler.GetTopic)))
	mux.Handle("PATCH /api/forum/topics/{id}/moderate", adminAuth(http.HandlerFunc(forumHandler.ModerateTopic)))
	mux.Handle("POST /api/forum/replies", memberAuth(http.HandlerFunc(forumHandler.CreateReply)))

	// Blog endpoints
	mux.HandleFunc("GET /api/blogs", blogHandler.List)
	mux.Handle("POST /api/blogs", adminAuth(http.HandlerFunc(blogHandler.Create)))
	mux.HandleFunc("GET /api/blogs/slug/{slug}", blogHandler.GetBySlug)
	mux.HandleFunc("GET /api/blogs/{id}", blogHandler.Get)
	mux.Handle("PUT /api/blogs/{id}", adminAuth(http.HandlerFunc(blogHandler.Update)))
	mux.Handle("DELETE /api/blogs/{id}", adminAuth(http.HandlerFunc(blogHandler.Delete)))

	// Tool endpoints
	mux.HandleFunc("GET /api/tools", toolHandler.List)
	mux.Handle("POST /api/tools", adminAuth(http.HandlerFunc(toolHandler.Create)))
	mux.HandleFunc("GET /api/tools/{id}", toolHandler.Get)
	mux.Handle("PUT /api/tools/{id}", adminAuth(http.HandlerFunc(toolHandler.Update)))
	mux.Handle("DELETE /api/tools/{id}", adminAuth(http.HandlerFunc(toolHandler.Delete)))

	// Hero slide endpoints
	mux.HandleFunc("GET /api/hero-slides", slideHandler.List)
	mux.Handle("POST /api/hero-slides", adminAuth(http.HandlerFunc(slideHandler.Create)))
	mux.Handle("PUT /api/hero-slides/{id}", adminAuth(http.HandlerFunc(slideHandler.Update)))
	mux.Handle("DELETE /api/hero-slides/{id}", adminAuth(http.HandlerFunc(slideHandler.Delete)))

	// Settings endpoints
	mux.HandleFunc("GET /api/settings", settingsHandler.Get)
	mux.Handle("PUT /api/settings", adminAuth(http.HandlerFunc(settingsHandler.Update)))

	// Apply global middleware
	wrapped := middleware.Chain(
		mux,
		middleware.RequestID,
		middleware.Logger,
		middleware.Recovery,
		middleware.CORS(cfg.Server.AllowedOrigins),
		middleware.RateLimit(rateLimiter),
		middleware.Maintenance(settingsService),
		middleware.Compress,
	)

	// Create HTTP server
	server := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      wrapped,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  120 * time.Second,
	}

	// Start server in goroutine
	go func() {
		slog.Info("starting server",
			slog.String("port", cfg.Server.Port),
			slog.String("env", cfg.Server.Env),
		)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server error", slog.String("error", err.Error()))
			os.Exit(1)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.Error("server forced to shutdown", slog.String("error", err.Error()))
	}

	slog.Info("server exited")
}
