// Package main is the entry point for the ImoGuru API server.
// It loads configuration, connects to services, sets up routing, and starts
// the HTTP server with graceful shutdown support.
package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"imoguru/internal/branding"
	"imoguru/internal/cache"
	"imoguru/internal/compose"
	"imoguru/internal/config"
	"imoguru/internal/database"
	"imoguru/internal/handlers"
	"imoguru/internal/mailer"
	"imoguru/internal/metrics"
	"imoguru/internal/router"
	"imoguru/internal/session"
	"imoguru/internal/share"
	"imoguru/internal/storage"
	"imoguru/internal/store"
)

func main() {
	// Structured logger — outputs JSON in production, text in development.
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}))
	slog.SetDefault(logger)

	// Load configuration from environment variables.
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	slog.Info("configuration loaded",
		"env", cfg.Env,
		"addr", cfg.Addr(),
	)

	// Connect to PostgreSQL.
	db, err := database.Connect(cfg.DSN())
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	// Run pending migrations.
	if err := database.Migrate(db); err != nil {
		slog.Error("failed to run migrations", "error", err)
		os.Exit(1)
	}

	// Seed development data (no-op if data already exists).
	if cfg.IsDev() {
		if err := database.Seed(db); err != nil {
			slog.Error("failed to seed database", "error", err)
			os.Exit(1)
		}
	}

	// Connect to Valkey (Redis-compatible cache + session store).
	valkeyClient, err := cache.ConnectValkey(cfg.ValkeyHost, cfg.ValkeyPort, cfg.ValkeyPassword)
	if err != nil {
		slog.Error("failed to connect to valkey", "error", err)
		os.Exit(1)
	}
	defer valkeyClient.Close()

	// Initialize session store backed by Valkey.
	// In non-development environments, mark session cookies as Secure (HTTPS-only).
	secureCookies := !cfg.IsDev()
	sessionStore := session.NewStore(valkeyClient, secureCookies)

	// Initialize data stores.
	userStore := store.NewUserStore(db)
	companyStore := store.NewCompanyStore(db)
	propertyStore := store.NewPropertyStore(db)
	mediaStore := store.NewMediaStore(db)
	templateStore := store.NewTemplateStore(db)
	shareEventStore := store.NewShareEventStore(db)
	settingStore := store.NewSiteSettingStore(db)

	// Connect to S3-compatible object storage (optional — app works without it).
	storageClient, err := storage.New(
		cfg.S3Endpoint, cfg.S3Region, cfg.S3AccessKey, cfg.S3SecretKey,
		cfg.S3BucketPublic, cfg.S3BucketPrivate, cfg.S3PublicURL,
	)
	if err != nil {
		slog.Error("failed to initialize S3 storage", "error", err)
		os.Exit(1)
	}
	if storageClient != nil {
		slog.Info("s3 storage connected",
			"endpoint", cfg.S3Endpoint,
			"photo_bucket", cfg.S3BucketPublic,
			"document_bucket", cfg.S3BucketPrivate,
		)
	} else {
		slog.Warn("s3 storage not configured — media uploads disabled")
	}

	// SES mailer (optional — without it the email channel degrades to a
	// mailto: deep link).
	var emailSender share.EmailSender
	if cfg.EmailEnabled() {
		sesClient, err := mailer.New(context.Background(), cfg.SESRegion, cfg.SESSender)
		if err != nil {
			slog.Error("failed to initialize SES mailer", "error", err)
			os.Exit(1)
		}
		emailSender = sesClient
		slog.Info("ses mailer configured", "region", cfg.SESRegion, "sender", cfg.SESSender)
	} else {
		slog.Warn("ses not configured — email shares fall back to mailto links")
	}

	// Branding resolution with a short-lived Valkey cache in front.
	brandingCache := cache.NewBrandingCache(valkeyClient, cache.DefaultBrandingTTL)
	brandingResolver := branding.NewResolver(settingStore, companyStore, brandingCache, cfg.DefaultAppName)

	// Share pipeline services.
	dispatcher := share.NewDispatcher(shareEventStore, emailSender)
	imageLoader := compose.NewHTTPLoader(0)
	aggregator := metrics.NewAggregator(propertyStore, shareEventStore)

	// Create handler groups with their dependencies.
	h := router.Handlers{
		Auth:       handlers.NewAuth(sessionStore, userStore, cfg.DefaultAppName),
		Properties: handlers.NewProperties(propertyStore, mediaStore),
		Media:      handlers.NewMedia(mediaStore, propertyStore, storageClient),
		Templates:  handlers.NewTemplates(templateStore, propertyStore, mediaStore, brandingResolver, cfg.BaseURL),
		Share:      handlers.NewShare(propertyStore, mediaStore, templateStore, shareEventStore, brandingResolver, dispatcher, imageLoader, cfg.BaseURL),
		Dashboard:  handlers.NewDashboard(aggregator, shareEventStore, propertyStore),
		Settings:   handlers.NewSettings(settingStore, companyStore, brandingCache),
		Users:      handlers.NewUsers(userStore),
	}

	// Set up the Chi router with all middleware and routes.
	r := router.New(h, sessionStore)

	// Create the HTTP server with sensible timeouts.
	// WriteTimeout must accommodate export endpoints that fetch and
	// rasterize listing photos.
	srv := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      r,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 90 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	// Start the server in a goroutine so we can listen for shutdown signals.
	go func() {
		slog.Info("server starting", "addr", cfg.Addr())
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	// Graceful shutdown: wait for SIGINT or SIGTERM, then drain connections.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit
	slog.Info("shutdown signal received", "signal", sig)

	// Give active requests up to 30 seconds to complete.
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("server forced to shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("server stopped gracefully")
}
