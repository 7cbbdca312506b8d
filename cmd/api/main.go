package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"ministry/tender-engine/internal/config"
	"ministry/tender-engine/internal/handlers"
	"ministry/tender-engine/internal/models"
	"ministry/tender-engine/internal/repositories"
	"ministry/tender-engine/internal/services"
	"ministry/tender-engine/internal/tender"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("❌ Failed to load config: %v", err)
	}
	log.Println("✅ Config loaded successfully")

	// Initialize record store and public listing publisher
	var (
		store     repositories.RecordStore
		publisher services.Publisher
	)
	switch cfg.Store.Driver {
	case config.StoreDriverMemory:
		store = repositories.NewMemoryRecordStore()
		publisher = services.NewLogPublisher()
		log.Println("⚠️  Using in-memory record store; data is lost on restart")
	default:
		db, err := config.InitDatabase(cfg, &repositories.Record{}, &services.PublicListing{})
		if err != nil {
			log.Fatalf("❌ Failed to initialize database: %v", err)
		}
		store = repositories.NewRecordStore(db)
		publisher = services.NewGormPublisher(db)
	}

	// Initialize repositories
	tenderRepo := repositories.NewTenderRepository(store)
	bidRepo := repositories.NewBidRepository(store)
	vendorRepo := repositories.NewVendorWorkflowRepository(store)
	log.Println("✅ Repositories initialized successfully")

	// Initialize services
	notifier := services.NewLogNotifier()
	if cfg.Notify.WebhookURL != "" {
		notifier = services.NewWebhookNotifier(cfg.Notify.WebhookURL, cfg.Notify.Timeout)
		log.Printf("✅ Notifications go to %s\n", cfg.Notify.WebhookURL)
	}

	gate := services.NewWorkflowGateService(vendorRepo, time.Now)
	gate.Subscribe(func(status models.VendorWorkflowStatus) {
		log.Printf("🪪 Vendor %s workflow updated, award eligible: %t\n", status.VendorID, tender.IsAwardEligible(&status))
	})

	tenderService := services.NewTenderService(
		tenderRepo,
		bidRepo,
		gate,
		notifier,
		publisher,
		cfg.Notify.MinistryRecipientID,
		time.Now,
	)
	log.Println("✅ Services initialized successfully")

	// Initialize worker
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	worker := services.NewWorker(tenderService, cfg.Worker.RecheckInterval)
	worker.Start(ctx)
	worker.Trigger()
	log.Println("✅ Worker started successfully")

	// Create Fiber app
	app := fiber.New(fiber.Config{
		AppName:      "Tender Engine API",
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		ErrorHandler: customErrorHandler,
	})

	// Middleware
	app.Use(recover.New())
	app.Use(logger.New(logger.Config{
		Format:     "[${time}] ${status} - ${latency} ${method} ${path}\n",
		TimeFormat: "2006-01-02 15:04:05",
	}))

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))

	// Routes
	api := app.Group("/api/v1")

	// Health check
	api.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status": "healthy",
			"store":  cfg.Store.Driver,
			"time":   time.Now(),
		})
	})

	handlers.Register(api, handlers.Handlers{
		Tender: handlers.NewTenderHandler(tenderService),
		Bid:    handlers.NewBidHandler(tenderService),
		Award:  handlers.NewAwardHandler(tenderService),
		Vendor: handlers.NewVendorHandler(gate),
	})
	log.Println("✅ Handlers initialized")

	// Root route
	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"message": "Tender Engine API",
			"version": "1.0.0",
			"endpoints": []string{
				"GET /api/v1/tenders",
				"POST /api/v1/tenders",
				"GET /api/v1/tenders/:id",
				"PUT /api/v1/tenders/:id",
				"POST /api/v1/tenders/:id/publish",
				"POST /api/v1/tenders/recheck",
				"POST /api/v1/tenders/:id/bids",
				"GET /api/v1/tenders/:id/bids",
				"GET /api/v1/tenders/:id/bids/:bidderId/scores",
				"PUT /api/v1/tenders/:id/bids/:bidderId/scores",
				"POST /api/v1/tenders/:id/finalize",
				"POST /api/v1/tenders/:id/award",
				"GET /api/v1/tenders/:id/post-award",
				"POST /api/v1/tenders/:id/post-award/steps/:step",
				"POST /api/v1/tenders/:id/post-award/close",
				"GET /api/v1/vendors/:id/workflow",
				"PUT /api/v1/vendors/:id/workflow",
				"GET /api/v1/vendors/:id/eligibility",
			},
		})
	})

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-quit
		log.Println("\n🛑 Shutting down server...")
		worker.Stop()
		cancel()
		if err := app.Shutdown(); err != nil {
			log.Printf("❌ Server forced to shutdown: %v", err)
		}
	}()

	// Start server
	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	log.Printf("🚀 Server starting on %s\n", addr)
	log.Printf("📖 API Documentation: http://localhost%s\n", addr)

	if err := app.Listen(addr); err != nil {
		log.Fatalf("❌ Failed to start server: %v", err)
	}
}

func customErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError

	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
	}

	return c.Status(code).JSON(models.ErrorResponse{
		Error: err.Error(),
		Code:  fmt.Sprintf("HTTP_%d", code),
	})
}
