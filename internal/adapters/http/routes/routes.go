package routes

import (
	"nitp-innovhub/internal/adapters/http/handlers"
	"nitp-innovhub/internal/adapters/http/middleware"
	"nitp-innovhub/internal/adapters/persistence/repositories"
	"nitp-innovhub/internal/config"
	"nitp-innovhub/internal/core/services"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
	"gorm.io/gorm"
)

// Setup configures all routes for the application
func Setup(app *fiber.App, db *gorm.DB, cfg *config.Config) {
	// Initialize repositories
	userRepo := repositories.NewUserRepository(db)
	refreshTokenRepo := repositories.NewRefreshTokenRepository(db)
	appRepo := repositories.NewApplicationRepository(db)
	inquiryRepo := repositories.NewInquiryRepository(db)
	profileRepo := repositories.NewMentorProfileRepository(db)
	requestRepo := repositories.NewMentorRequestRepository(db)
	messageRepo := repositories.NewChatMessageRepository(db)
	branchRepo := repositories.NewBranchRepository(db)
	subjectRepo := repositories.NewSubjectRepository(db)
	resourceRepo := repositories.NewResourceRepository(db)
	siteRepo := repositories.NewSiteRepository(db)

	// Initialize services
	authService := services.NewAuthService(userRepo, refreshTokenRepo, cfg)
	userService := services.NewUserService(userRepo)
	directoryService := services.NewDirectoryService()
	appService := services.NewApplicationService(appRepo, directoryService, cfg)
	guidanceService := services.NewGuidanceService(profileRepo, requestRepo, messageRepo, userRepo, cfg)
	vaultService := services.NewVaultService(branchRepo, subjectRepo, resourceRepo)
	siteService := services.NewSiteService(siteRepo, inquiryRepo, cfg)

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler()
	authHandler := handlers.NewAuthHandler(authService, cfg)
	userHandler := handlers.NewUserHandler(userService)
	appHandler := handlers.NewApplicationHandler(appService)
	guidanceHandler := handlers.NewGuidanceHandler(guidanceService)
	vaultHandler := handlers.NewVaultHandler(vaultService)
	siteHandler := handlers.NewSiteHandler(siteService)

	// Health check & root routes
	app.Get("/", healthHandler.Root)
	app.Get("/health", healthHandler.HealthCheck)

	// Swagger documentation
	app.Get("/swagger/*", swagger.HandlerDefault)

	// API v1 group
	apiV1 := app.Group("/api/v1")
	setupAPIV1Routes(apiV1, healthHandler, authHandler, userHandler, appHandler,
		guidanceHandler, vaultHandler, siteHandler, cfg)
}

// setupAPIV1Routes configures API v1 routes
func setupAPIV1Routes(
	router fiber.Router,
	healthHandler *handlers.HealthHandler,
	authHandler *handlers.AuthHandler,
	userHandler *handlers.UserHandler,
	appHandler *handlers.ApplicationHandler,
	guidanceHandler *handlers.GuidanceHandler,
	vaultHandler *handlers.VaultHandler,
	siteHandler *handlers.SiteHandler,
	cfg *config.Config,
) {
	// API Info
	router.Get("/", healthHandler.APIInfo)

	// Auth routes (public)
	authRoutes := router.Group("/auth")
	setupAuthRoutes(authRoutes, authHandler, cfg)

	// Public site content (cacheable)
	siteRoutes := router.Group("/site")
	siteRoutes.Use(middleware.SiteContentCache())
	setupSiteRoutes(siteRoutes, siteHandler)

	// Public mentor application (strict limiter: 3 req/min/IP)
	router.Post("/applications", middleware.StrictRateLimiter(), appHandler.Submit)

	// Public contact inquiry (strict limiter: 3 req/min/IP)
	router.Post("/inquiries", middleware.StrictRateLimiter(), siteHandler.SubmitInquiry)

	// Guidance routes
	guidanceRoutes := router.Group("/guidance")
	setupGuidanceRoutes(guidanceRoutes, guidanceHandler, cfg)

	// Vault routes (public, cacheable)
	vaultRoutes := router.Group("/vault")
	vaultRoutes.Use(middleware.SiteContentCache())
	setupVaultRoutes(vaultRoutes, vaultHandler)

	// User management routes (Admin only)
	userRoutes := router.Group("/users")
	userRoutes.Use(middleware.AuthMiddleware(cfg))
	userRoutes.Use(middleware.AdminOnly())
	setupUserRoutes(userRoutes, userHandler)

	// Profile routes (Authenticated users)
	profileRoutes := router.Group("/profile")
	profileRoutes.Use(middleware.AuthMiddleware(cfg))
	setupProfileRoutes(profileRoutes, userHandler)

	// Admin routes
	adminRoutes := router.Group("/admin")
	adminRoutes.Use(middleware.AuthMiddleware(cfg))
	adminRoutes.Use(middleware.AdminOnly())
	setupAdminRoutes(adminRoutes, appHandler, vaultHandler, siteHandler)
}

// setupAuthRoutes configures authentication routes
func setupAuthRoutes(router fiber.Router, handler *handlers.AuthHandler, cfg *config.Config) {
	// Public routes (5 req/min/IP on credential endpoints)
	router.Post("/register", middleware.AuthRateLimiter(), handler.Register)
	router.Post("/login", middleware.AuthRateLimiter(), handler.Login)
	router.Post("/refresh", handler.RefreshToken)
	router.Post("/logout", handler.Logout)

	// Protected routes
	router.Get("/me", middleware.AuthMiddleware(cfg), handler.Me)
	router.Post("/logout-all", middleware.AuthMiddleware(cfg), handler.LogoutAll)
}

// setupSiteRoutes configures public site content routes
func setupSiteRoutes(router fiber.Router, handler *handlers.SiteHandler) {
	router.Get("/config", handler.GetConfiguration)
	router.Get("/navbar", handler.GetNavbarLinks)
	router.Get("/cards", handler.GetBentoCards)
	router.Get("/roadmaps", handler.GetRoadmaps)
}

// setupGuidanceRoutes configures mentor directory, request and chat routes
func setupGuidanceRoutes(router fiber.Router, handler *handlers.GuidanceHandler, cfg *config.Config) {
	// Directory is public; authenticated viewers get approved-request links
	router.Get("/mentors", middleware.OptionalAuth(cfg), handler.ListMentors)

	// Everything else requires a session
	router.Post("/mentors/:id/requests", middleware.AuthMiddleware(cfg), handler.CreateRequest)
	router.Get("/dashboard", middleware.AuthMiddleware(cfg), middleware.NoCacheHeaders(), handler.Dashboard)
	// Only mentors approve; ownership is checked against the caller's profile
	router.Put("/requests/:id/approve", middleware.AuthMiddleware(cfg), middleware.MentorOrAdmin(), handler.ApproveRequest)
	router.Get("/requests/:id/chat", middleware.AuthMiddleware(cfg), middleware.NoCacheHeaders(), handler.GetChat)
	router.Post("/requests/:id/chat", middleware.AuthMiddleware(cfg), handler.PostMessage)
}

// setupVaultRoutes configures public vault routes
func setupVaultRoutes(router fiber.Router, handler *handlers.VaultHandler) {
	router.Get("/resources", handler.ListResources)
	router.Get("/branches", handler.ListBranches)
	router.Get("/subjects", handler.ListSubjects)
}

// setupUserRoutes configures user management routes (Admin only)
func setupUserRoutes(router fiber.Router, handler *handlers.UserHandler) {
	router.Get("/", handler.ListUsers)
	router.Get("/:id", handler.GetUser)
	router.Put("/:id", handler.UpdateUser)
	router.Delete("/:id", handler.DeleteUser)
}

// setupProfileRoutes configures profile routes (Authenticated)
func setupProfileRoutes(router fiber.Router, handler *handlers.UserHandler) {
	router.Get("/", handler.GetProfile)
	router.Put("/", handler.UpdateProfile)
	router.Put("/password", handler.ChangePassword)
}

// setupAdminRoutes configures admin routes
func setupAdminRoutes(
	router fiber.Router,
	appHandler *handlers.ApplicationHandler,
	vaultHandler *handlers.VaultHandler,
	siteHandler *handlers.SiteHandler,
) {
	// Mentor application review
	router.Get("/applications", appHandler.List)
	router.Put("/applications/:id/approve", appHandler.Approve)
	router.Put("/applications/:id/reject", appHandler.Reject)
	router.Post("/applications/bulk", appHandler.BulkReview)

	// Inquiries
	router.Get("/inquiries", siteHandler.ListInquiries)
	router.Put("/inquiries/:id/resolve", siteHandler.ResolveInquiry)

	// Site content
	router.Put("/site/config", siteHandler.UpdateConfiguration)
	router.Post("/site/navbar", siteHandler.CreateNavbarLink)
	router.Put("/site/navbar/:id", siteHandler.UpdateNavbarLink)
	router.Delete("/site/navbar/:id", siteHandler.DeleteNavbarLink)
	router.Post("/site/cards", siteHandler.CreateBentoCard)
	router.Put("/site/cards/:id", siteHandler.UpdateBentoCard)
	router.Delete("/site/cards/:id", siteHandler.DeleteBentoCard)
	router.Post("/site/roadmaps", siteHandler.CreateRoadmap)
	router.Put("/site/roadmaps/:id", siteHandler.UpdateRoadmap)
	router.Delete("/site/roadmaps/:id", siteHandler.DeleteRoadmap)

	// Vault catalog
	router.Post("/vault/branches", vaultHandler.CreateBranch)
	router.Post("/vault/subjects", vaultHandler.CreateSubject)
	router.Post("/vault/resources", vaultHandler.CreateResource)
	router.Put("/vault/resources/:id", vaultHandler.UpdateResource)
	router.Delete("/vault/resources/:id", vaultHandler.DeleteResource)
}
