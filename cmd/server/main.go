package main // Entry point package

import (
	"context" // shutdown coordination
	"log"     // Logging library
	"os"      // signal values
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"    // .env loader for local development
	"github.com/labstack/echo/v4" // Echo web framework

	"github.com/iliyamo/pc-capacity-market/internal/audit"
	"github.com/iliyamo/pc-capacity-market/internal/config"
	"github.com/iliyamo/pc-capacity-market/internal/database"
	"github.com/iliyamo/pc-capacity-market/internal/handler"
	"github.com/iliyamo/pc-capacity-market/internal/launcher"
	"github.com/iliyamo/pc-capacity-market/internal/market"
	"github.com/iliyamo/pc-capacity-market/internal/middleware"
	"github.com/iliyamo/pc-capacity-market/internal/queue"
	"github.com/iliyamo/pc-capacity-market/internal/repository"
	"github.com/iliyamo/pc-capacity-market/internal/router"
	queue_publisher "github.com/iliyamo/pc-capacity-market/internal/service"
	"github.com/iliyamo/pc-capacity-market/internal/sweeper"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, relying on environment")
	}
	cfg := config.Load() // Load environment config

	db, err := database.Open(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
	if err != nil {
		log.Fatalf("database: %v", err)
	}
	defer db.Close()
	if err := database.EnsureSchema(context.Background(), db); err != nil {
		log.Fatalf("schema: %v", err)
	}

	auditLog := audit.New(cfg.AuditLogFile)
	pool := launcher.NewPool(cfg.LaunchCmd, cfg.LauncherWorkers, cfg.LauncherQueue, auditLog)

	svc := market.NewService(
		repository.NewSlotRepo(db),
		repository.NewBookingRepo(db),
		auditLog,
		pool,
		market.Bounds{
			HoursMin: cfg.SlotHoursMin,
			HoursMax: cfg.SlotHoursMax,
			PriceMin: cfg.SlotPriceMin,
			PriceMax: cfg.SlotPriceMax,
		},
	)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Background expiry sweep alongside the per-request sweep; both go
	// through the same compare-and-set so they never double-log.
	go sweeper.New(svc.SweepExpiredBookings, cfg.SweepInterval).Run(ctx)

	// Background consumer appending session.started events to logs/session.log.
	go func() {
		if err := queue.StartSessionConsumer(); err != nil {
			log.Printf("session consumer stopped: %v", err)
		}
	}()

	e := echo.New() // Create Echo instance
	if rdb := config.NewRedisClient(); rdb != nil {
		e.Use(middleware.NewTokenBucket(config.LoadRateLimitConfig(), rdb))
	} else {
		log.Println("redis unavailable, rate limiting disabled")
	}
	router.RegisterRoutes(e, router.Handlers{
		Auth:    handler.NewAuthHandler(cfg.JWTSecret, cfg.AccessTTLMin),
		Admin:   handler.NewAdminHandler(svc),
		Seller:  handler.NewSellerHandler(svc),
		Buyer:   handler.NewBuyerHandler(svc, queue_publisher.PublishSessionStarted),
		Session: handler.NewSessionHandler(svc),
		Logs:    handler.NewLogHandler(auditLog),
	}, cfg.JWTSecret)

	addr := ":" + cfg.Port                                // Address string with port
	log.Printf("listening on %s (env=%s)", addr, cfg.Env) // Print startup info

	go func() {
		if err := e.Start(addr); err != nil { // Start HTTP server
			log.Printf("server stopped: %v", err)
			stop()
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Printf("http shutdown: %v", err)
	}
	if err := pool.Shutdown(shutdownCtx); err != nil {
		log.Printf("launcher shutdown: %v", err)
	}
}
