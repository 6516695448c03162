package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"time"

	"amc-backend/internal/auth"
	"amc-backend/internal/cache"
	"amc-backend/internal/config"
	"amc-backend/internal/database"
	"amc-backend/internal/db"
	"amc-backend/internal/handlers"
	"amc-backend/internal/health"
	h "amc-backend/internal/http"
	"amc-backend/internal/mailer"
	"amc-backend/internal/middleware"
	"amc-backend/internal/monitoring"
	"amc-backend/internal/repositories"
	"amc-backend/internal/services"
	"amc-backend/internal/storage"
	"amc-backend/migrations"
)

func main() {
	port := flag.Int("port", 0, "Server port (overrides config)")
	flag.Parse()

	// Load configuration
	cfg := config.Load()
	if *port != 0 {
		cfg.Server.Port = *port
	}

	// Connect to PostgreSQL
	pool := db.Connect(cfg)
	defer pool.Close()

	// Initialize Redis cache (optional - graceful fallback if unavailable)
	if err := cache.Init(); err != nil {
		log.Printf("[Redis] Cache unavailable: %v (option lists will hit the database)", err)
	} else {
		log.Println("[Redis] Cache connected successfully")
	}

	// Run embedded database migrations on startup
	log.Println("Running database migrations...")
	migrator := database.NewMigrator(pool, migrations.FS, ".")
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := migrator.RunMigrations(ctx); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Initialize health checker
	healthChecker := health.NewHealthChecker(pool)

	// Start monitoring server in background
	go monitoring.NewServer(pool, cfg.Server.MonitoringPort).Start()

	// Initialize JWT manager
	jwtManager := auth.NewJWTManager(cfg)

	// Initialize repositories
	userRepo := repositories.NewUserRepository(pool)
	customerRepo := repositories.NewCustomerRepository(pool)
	locationRepo := repositories.NewLocationRepository(pool)
	brandRepo := repositories.NewBrandRepository(pool)
	categoryRepo := repositories.NewCategoryRepository(pool)
	productRepo := repositories.NewProductRepository(pool)
	invoiceRepo := repositories.NewInvoiceRepository(pool)
	proposalRepo := repositories.NewProposalRepository(pool)
	documentRepo := repositories.NewDocumentRepository(pool)
	emailRecordRepo := repositories.NewEmailRecordRepository(pool)
	mailSetupRepo := repositories.NewMailSetupRepository(pool)
	dashboardRepo := repositories.NewDashboardRepository(pool)

	// Initialize document storage and mail transport
	store := storage.New(cfg)
	mail := mailer.New(cfg, mailSetupRepo)

	// Initialize services
	userService := services.NewUserService(userRepo, jwtManager)
	customerService := services.NewCustomerService(customerRepo)
	locationService := services.NewLocationService(locationRepo, customerRepo)
	catalogService := services.NewCatalogService(brandRepo, categoryRepo, productRepo)
	invoiceService := services.NewInvoiceService(invoiceRepo, customerRepo, locationRepo)
	proposalService := services.NewProposalService(proposalRepo, customerRepo, locationRepo, invoiceRepo)
	documentService := services.NewDocumentService(proposalService, documentRepo, store)
	emailService := services.NewEmailService(proposalService, emailRecordRepo, mail)
	mailSetupService := services.NewMailSetupService(mailSetupRepo)
	dashboardService := services.NewDashboardService(dashboardRepo)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(userService)
	customerHandler := handlers.NewCustomerHandler(customerService)
	locationHandler := handlers.NewLocationHandler(locationService)
	catalogHandler := handlers.NewCatalogHandler(catalogService)
	invoiceHandler := handlers.NewInvoiceHandler(invoiceService)
	proposalHandler := handlers.NewProposalHandler(proposalService, documentService, emailService)
	documentHandler := handlers.NewDocumentHandler(documentService, emailService)
	mailSetupHandler := handlers.NewMailSetupHandler(mailSetupService)
	dashboardHandler := handlers.NewDashboardHandler(dashboardService)
	healthHandler := handlers.NewHealthHandler(healthChecker)

	// Initialize middleware
	authMiddleware := middleware.NewAuthMiddleware(jwtManager, userRepo)
	corsMiddleware := middleware.NewCORS(cfg)

	// Create router
	router := h.NewRouter(
		authHandler,
		customerHandler,
		locationHandler,
		catalogHandler,
		invoiceHandler,
		proposalHandler,
		documentHandler,
		mailSetupHandler,
		dashboardHandler,
		healthHandler,
		authMiddleware,
		cfg.Storage.LocalDir,
	)

	// Wrap with panic recovery, metrics, request logging and CORS
	handler := middleware.PanicRecovery(
		middleware.MetricsMiddleware(
			middleware.RequestLogging(
				corsMiddleware(router))))

	// Start server
	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	log.Printf("Server running on %s", addr)
	if err := http.ListenAndServe(addr, handler); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}
