package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"nitp-innovhub/internal/adapters/http/middleware"
	"nitp-innovhub/internal/adapters/http/routes"
	"nitp-innovhub/internal/adapters/persistence/models"
	"nitp-innovhub/internal/adapters/persistence/repositories"
	"nitp-innovhub/internal/config"
	"nitp-innovhub/internal/core/services"

	"github.com/gofiber/fiber/v2"

	_ "nitp-innovhub/docs" // Swagger docs
)

// @title NITP Innovation Hub API
// @version 1.0
// @description Student community portal for NIT Patna: mentorship, guidance and the study resource vault
// @termsOfService http://swagger.io/terms/

// @contact.name API Support
// @contact.email support@hub.nitp.ac.in

// @license.name Apache 2.0
// @license.url http://www.apache.org/licenses/LICENSE-2.0.html

// @host hub.nitp.ac.in
// @BasePath /api/v1
// @schemes https

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("❌ Failed to load configuration: %v", err)
	}

	// Connect to database
	db, err := config.ConnectDatabase(cfg)
	if err != nil {
		log.Fatalf("❌ Failed to connect to database: %v", err)
	}
	defer config.CloseDatabase()

	// Auto migrate (creates tables if not exist)
	if err := models.AutoMigrate(db); err != nil {
		log.Fatalf("❌ Failed to auto migrate: %v", err)
	}
	log.Println("✅ Database migration completed")

	// Seed admin account
	if err := config.NewSeeder(db, cfg).Run(); err != nil {
		log.Printf("⚠️ Warning: Failed to seed admin account: %v", err)
	}

	// Seed site content and the branch catalog
	if err := config.SeedSiteData(db); err != nil {
		log.Printf("⚠️ Warning: Failed to seed site data: %v", err)
	}

	// Start maintenance jobs (token purge, inquiry auto-resolve)
	maintenanceService := services.NewMaintenanceService(
		repositories.NewRefreshTokenRepository(db),
		repositories.NewInquiryRepository(db),
	)
	maintenanceService.Start()
	defer maintenanceService.Stop()

	// Create Fiber app
	app := fiber.New(fiber.Config{
		AppName:      "NITP Innovation Hub API v1.0",
		ErrorHandler: middleware.CustomErrorHandler,
	})

	// Setup middlewares
	middleware.Setup(app, cfg)

	// Setup routes (pass db and cfg for dependency injection)
	routes.Setup(app, db, cfg)

	// Graceful shutdown
	go gracefulShutdown(app)

	// Start server
	log.Printf("🚀 Server starting on port %s [MODE: %s]", cfg.Port, cfg.AppMode)
	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Fatalf("❌ Failed to start server: %v", err)
	}
}

// gracefulShutdown handles graceful shutdown
func gracefulShutdown(app *fiber.App) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("🛑 Shutting down server...")
	if err := app.Shutdown(); err != nil {
		log.Printf("❌ Error during shutdown: %v", err)
	}
	log.Println("✅ Server stopped gracefully")
}
