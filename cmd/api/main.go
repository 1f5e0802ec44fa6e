package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/samparc/medical-api/internal/cache"
	"github.com/samparc/medical-api/internal/chat"
	"github.com/samparc/medical-api/internal/config"
	"github.com/samparc/medical-api/internal/handlers"
	"github.com/samparc/medical-api/internal/middleware"
	"github.com/samparc/medical-api/internal/services"
	"github.com/samparc/medical-api/internal/store/backend"
	"github.com/samparc/medical-api/internal/utils"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	log.Printf("API_PORT: %s", cfg.Port)
	log.Printf("STORAGE_DRIVER: %s", cfg.StorageDriver)

	utils.ConfigureJWT(cfg.JWTSecret, cfg.TokenTTL)
	utils.PasswordCost = cfg.BcryptCost
	admins, err := cfg.Admins()
	if err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	if len(admins) == 0 {
		log.Println("ADMIN_CREDENTIALS is NOT SET, admin login disabled.")
	}

	// --- Database Connection ---
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	db, err := backend.Open(ctx, cfg)
	cancel()
	if err != nil {
		return fmt.Errorf("failed to connect to storage: %w", err)
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := db.Close(ctx); err != nil {
			log.Printf("Closing storage: %v", err)
		}
	}()

	var contentCache *cache.ContentCache
	if cfg.RedisAddr != "" {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		contentCache, err = cache.NewContentCache(ctx, cfg.RedisAddr, cfg.RedisPassword, cfg.ContentCacheTTL)
		cancel()
		if err != nil {
			log.Printf("Redis unavailable, serving content without cache: %v", err)
			contentCache = nil
		}
		defer contentCache.Close()
	}

	if cfg.SeedSellerEmail != "" {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		_, err := services.EnsureApprovedSeller(ctx, db, services.SeedSeller{
			Name:         cfg.SeedSellerName,
			BusinessName: cfg.SeedSellerBusiness,
			Email:        cfg.SeedSellerEmail,
			Password:     cfg.SeedSellerPassword,
		})
		cancel()
		if err != nil {
			log.Printf("Seed seller not ensured: %v", err)
		}
	}

	// --- Initialize Services ---
	notificationSvc := services.NewNotificationService(cfg, chat.Samparc.Name)

	// --- Initialize Handlers with DB and Services ---
	h := handlers.NewHandler(db, notificationSvc, contentCache, admins)

	// --- Gin Router ---
	r := gin.Default()

	// ---  Middleware ---
	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORSOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", middleware.RequestIDHeader},
		ExposeHeaders:    []string{middleware.RequestIDHeader, "Content-Disposition"},
		AllowCredentials: true,
	}))
	r.Use(middleware.RequestID())
	r.Use(middleware.Metrics())

	// --- Routes ---
	h.RegisterRoutes(r, middleware.NewRateLimiter(cfg.RateLimitRPS, cfg.RateLimitBurst))

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	stop, release := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer release()
	log.Printf("Starting server on port %s", cfg.Port)
	return serve(stop, srv, 10*time.Second)
}

// serve runs srv until ctx is done or the listener fails. When ctx is done the
// server is shut down gracefully.
func serve(ctx context.Context, srv *http.Server, shutdownTimeout time.Duration) error {
	errCh := make(chan error, 1)
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	log.Println("Shutting down server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}
	return nil
}
