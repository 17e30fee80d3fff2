package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"eclipselink-handoff-backend/internal/ai"
	"eclipselink-handoff-backend/internal/config"
	"eclipselink-handoff-backend/internal/database"
	"eclipselink-handoff-backend/internal/handler"
	"eclipselink-handoff-backend/internal/middleware"
	"eclipselink-handoff-backend/internal/repository"
	"eclipselink-handoff-backend/internal/service"
	"eclipselink-handoff-backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	// 1. Load configuration
	cfg := config.LoadConfig()
	log.Println("Configuration loaded successfully")

	// 2. Initialize JWT utilities with config
	utils.InitJWT(cfg.JWT.AccessSecret, cfg.JWT.AccessTokenExpiry)

	// 3. Initialize database connection and schema
	db := database.Connect(cfg)
	if err := database.Migrate(db); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}
	if err := database.Seed(db); err != nil {
		log.Fatalf("Failed to seed database: %v", err)
	}

	// 4. Initialize repositories
	patientRepo := repository.NewPatientRepository(db)
	handoffRepo := repository.NewHandoffRepository(db)
	auditRepo := repository.NewAuditRepository(db)
	userRepo := repository.NewUserRepository(db)

	// 5. Initialize services
	generator := ai.NewTemplateGenerator()
	authService := service.NewAuthService(userRepo)
	handoffService := service.NewHandoffService(handoffRepo, auditRepo, generator)
	analyticsService := service.NewAnalyticsService(handoffRepo)
	assistantService := service.NewAssistantService(patientRepo, handoffRepo)
	familyService := service.NewFamilyService(patientRepo, handoffRepo)
	auditService := service.NewAuditService(auditRepo)
	workerService := service.NewWorkerService(handoffRepo, handoffService)

	// 6. Start background worker in goroutine
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go workerService.Start(ctx)

	// 7. Setup Gin mode
	gin.SetMode(cfg.Server.GinMode)

	// 8. Setup Gin router
	r := gin.Default()

	// Apply CORS middleware
	r.Use(middleware.CORS(cfg))

	// 9. Register handlers
	authHandler := handler.NewAuthHandler(authService)
	handoffHandler := handler.NewHandoffHandler(handoffService)
	patientHandler := handler.NewPatientHandler(patientRepo, handoffRepo)
	userHandler := handler.NewUserHandler(userRepo)
	analyticsHandler := handler.NewAnalyticsHandler(analyticsService)
	auditHandler := handler.NewAuditHandler(auditService)
	assistantHandler := handler.NewAssistantHandler(assistantService)
	familyHandler := handler.NewFamilyHandler(familyService)

	// 10. Define routes
	// Health check endpoint
	r.GET("/health", func(c *gin.Context) {
		utils.SuccessResponse(c, gin.H{
			"status":  "healthy",
			"service": "eclipselink-handoff-backend",
		})
	})

	// Auth routes (public)
	auth := r.Group("/auth")
	{
		auth.POST("/login", authHandler.Login)
	}

	// Application routes (authenticated)
	api := r.Group("/")
	api.Use(middleware.AuthMiddleware())
	{
		handoffs := api.Group("/handoffs")
		{
			handoffs.GET("", handoffHandler.List)
			handoffs.POST("", handoffHandler.Create)
			handoffs.GET("/:id", handoffHandler.Get)
			handoffs.PUT("/:id/sbar", handoffHandler.UpdateSBAR)
			handoffs.POST("/:id/generate", handoffHandler.Generate)
			handoffs.POST("/:id/complete", handoffHandler.Complete)
			handoffs.GET("/:id/pdf", handoffHandler.ExportPDF)
			handoffs.GET("/:id/audit", handoffHandler.Trail)
		}

		patients := api.Group("/patients")
		{
			patients.GET("", patientHandler.List)
			patients.POST("", patientHandler.Create)
			patients.GET("/:patientID/handoffs", patientHandler.Handoffs)
		}

		api.GET("/users", userHandler.List)
		api.GET("/analytics", analyticsHandler.Dashboard)
		api.GET("/audit", auditHandler.List)
		api.GET("/audit/summary", auditHandler.Summary)
		api.POST("/assistant/chat", assistantHandler.Chat)
		api.GET("/family/:patientID/updates", familyHandler.Updates)
	}

	// 11. Setup graceful shutdown
	go func() {
		log.Printf("Server starting on port %s", cfg.Server.Port)
		if err := r.Run(":" + cfg.Server.Port); err != nil {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	// Cancel background worker context
	cancel()
	log.Println("Server exited")
}
