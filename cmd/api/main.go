package main

import (
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

	"github.com/ZamaMehdi/RecruitProo/internal/auth"
	"github.com/ZamaMehdi/RecruitProo/internal/config"
	"github.com/ZamaMehdi/RecruitProo/internal/handlers"
	"github.com/ZamaMehdi/RecruitProo/internal/repositories"
	"github.com/ZamaMehdi/RecruitProo/internal/services"
)

func main() {
	// Load configuration
	cfg := config.Load()
	log.Println("✅ Config loaded successfully")

	// Initialize database
	db, err := config.InitDatabase(cfg)
	if err != nil {
		log.Fatalf("❌ Failed to initialize database: %v", err)
	}

	// Initialize repositories
	userRepo := repositories.NewUserRepository(db)
	jobRepo := repositories.NewJobRepository(db)
	applicationRepo := repositories.NewApplicationRepository(db)
	log.Println("✅ Repositories initialized successfully")

	// Initialize services
	storageService := services.NewStorageService(cfg.Storage.UploadPath)
	if err := storageService.EnsureUploadDir(); err != nil {
		log.Fatalf("❌ Failed to create upload directory: %v", err)
	}

	tokenProvider := auth.NewTokenProvider(cfg.JWT.Secret, cfg.JWT.TTL)
	authService := services.NewAuthService(userRepo, tokenProvider)
	userService := services.NewUserService(userRepo)
	jobService := services.NewJobService(jobRepo)
	applicationService := services.NewApplicationService(applicationRepo, jobRepo)
	queryService := services.NewApplicationQueryService(applicationRepo)
	log.Println("✅ Services initialized successfully")

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authService)
	profileHandler := handlers.NewProfileHandler(userService)
	jobHandler := handlers.NewJobHandler(jobService)
	adminJobHandler := handlers.NewAdminJobHandler(jobService)
	applicationHandler := handlers.NewApplicationHandler(applicationService, queryService)
	adminApplicationHandler := handlers.NewAdminApplicationHandler(applicationService, queryService)
	uploadHandler := handlers.NewUploadHandler(storageService, cfg.Storage.MaxFileSize)
	log.Println("✅ Handlers initialized")

	// Create Fiber app
	app := fiber.New(fiber.Config{
		AppName:      "RecruitProo API",
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		BodyLimit:    int(cfg.Storage.MaxFileSize),
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
		AllowMethods: "GET,POST,PATCH,PUT,DELETE,OPTIONS",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))

	app.Use(auth.Middleware(tokenProvider))

	// Routes
	api := app.Group("/api/v1")

	// Health check
	api.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status": "healthy",
			"time":   time.Now(),
		})
	})

	// Public + applicant endpoints
	api.Post("/auth/register", authHandler.HandleRegister)
	api.Post("/auth/login", authHandler.HandleLogin)
	api.Get("/jobs", jobHandler.HandleListPublic)
	api.Post("/jobs/:id/apply", applicationHandler.HandleApply)
	api.Get("/applications", applicationHandler.HandleListOwn)
	api.Get("/profile", profileHandler.HandleGet)
	api.Patch("/profile", profileHandler.HandleUpdate)
	api.Post("/uploads", uploadHandler.HandleUpload)

	// Admin endpoints
	api.Get("/admin/jobs", adminJobHandler.HandleList)
	api.Post("/admin/jobs", adminJobHandler.HandleCreate)
	api.Get("/admin/jobs/:id", adminJobHandler.HandleGet)
	api.Patch("/admin/jobs/:id", adminJobHandler.HandleUpdate)
	api.Get("/admin/applications", adminApplicationHandler.HandleList)
	api.Get("/admin/applications/:id", adminApplicationHandler.HandleGetDetail)
	api.Patch("/admin/applications/:id/status", adminApplicationHandler.HandleUpdateStatus)

	// Uploaded resumes
	app.Static("/uploads", cfg.Storage.UploadPath)

	// Root route
	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"message": "RecruitProo API",
			"version": "1.0.0",
			"endpoints": []string{
				"GET /api/v1/jobs",
				"POST /api/v1/jobs/:id/apply",
				"GET /api/v1/applications",
				"GET /api/v1/admin/jobs",
				"GET /api/v1/admin/applications",
			},
		})
	})

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-quit
		log.Println("\n🛑 Shutting down server...")
		if err := app.Shutdown(); err != nil {
			log.Printf("❌ Server forced to shutdown: %v", err)
		}
	}()

	// Start server
	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	log.Printf("🚀 Server starting on %s\n", addr)

	if err := app.Listen(addr); err != nil {
		log.Fatalf("❌ Failed to start server: %v", err)
	}
}

func customErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError

	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
	}

	return c.Status(code).JSON(fiber.Map{
		"error": err.Error(),
		"code":  code,
	})
}
