// Command seed-admin creates a back office administrator account.
//
// Admin accounts cannot be registered through the API; this tool is the
// only way to provision one. Run it once against a fresh database:
//
//	seed-admin -email admin@example.com -name "Site Admin"
//
// The password is read from the ADMIN_PASSWORD environment variable, or
// from the -password flag for local development.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/eceelesgerli/redline-cybersecurity-platforms/internal/config"
	"github.com/eceelesgerli/redline-cybersecurity-platforms/internal/database"
	"github.com/eceelesgerli/redline-cybersecurity-platforms/internal/repository"
	"github.com/eceelesgerli/redline-cybersecurity-platforms/internal/service"
	"github.com/eceelesgerli/redline-cybersecurity-platforms/pkg/token"
)

func main() {
	var (
		email    = flag.String("email", "", "admin email address (required)")
		name     = flag.String("name", "", "admin display name (required)")
		password = flag.String("password", "", "admin password (falls back to ADMIN_PASSWORD)")
	)
	flag.Parse()

	logger := slog.New(slog.NewJSONHandler(os.Stderr, nil))
	slog.SetDefault(logger)

	if *email == "" || *name == "" {
		fmt.Fprintln(os.Stderr, "usage: seed-admin -email <email> -name <name> [-password <password>]")
		os.Exit(2)
	}

	pass := *password
	if pass == "" {
		pass = os.Getenv("ADMIN_PASSWORD")
	}
	if pass == "" {
		fmt.Fprintln(os.Stderr, "password required: set -password or ADMIN_PASSWORD")
		os.Exit(2)
	}

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	db := database.NewSurrealDB(database.Config{
		Host:      cfg.Database.Host,
		Port:      cfg.Database.Port,
		User:      cfg.Database.User,
		Password:  cfg.Database.Password,
		Namespace: cfg.Database.Namespace,
		Database:  cfg.Database.Database,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := db.Connect(ctx); err != nil {
		slog.Error("failed to connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer func() { _ = db.Close() }()

	secret := cfg.Auth.JWTSecret
	if secret == "" {
		secret = "your-secret-key"
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

	authService := service.NewAuthService(service.AuthServiceConfig{
		UserRepo:     repository.NewUserRepository(db),
		AdminRepo:    repository.NewAdminRepository(db),
		TokenService: tokenService,
	})

	admin, err := authService.CreateAdmin(ctx, *email, pass, *name)
	if err != nil {
		slog.Error("failed to create admin", slog.String("error", err.Error()))
		os.Exit(1)
	}

	fmt.Printf("created admin %s (%s)\n", admin.Name, admin.Email)
}
