package main

import (
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/joho/godotenv"

	"github.com/danhluom/thiepcuoi-backend/internal/config"
	"github.com/danhluom/thiepcuoi-backend/internal/handler"
	"github.com/danhluom/thiepcuoi-backend/internal/middleware"
	"github.com/danhluom/thiepcuoi-backend/internal/models"
	"github.com/danhluom/thiepcuoi-backend/internal/repository"
	"github.com/danhluom/thiepcuoi-backend/internal/service"
	"github.com/danhluom/thiepcuoi-backend/pkg/database"
	"github.com/danhluom/thiepcuoi-backend/pkg/email"
	"github.com/danhluom/thiepcuoi-backend/pkg/googleauth"
	"github.com/danhluom/thiepcuoi-backend/pkg/logger"
	"github.com/danhluom/thiepcuoi-backend/pkg/payment"
	"github.com/danhluom/thiepcuoi-backend/pkg/qrcode"
	"github.com/danhluom/thiepcuoi-backend/pkg/sheets"
	"github.com/danhluom/thiepcuoi-backend/pkg/storage"
	"github.com/danhluom/thiepcuoi-backend/pkg/utils"
)

func main() {
	// .env is optional outside local development.
	_ = godotenv.Load()

	log := logger.New()
	defer log.Sync()

	cfg := config.LoadConfig()

	db := database.NewDatabase()

	// Repositories
	userRepo := repository.NewUserRepository(db)
	invRepo := repository.NewInvitationRepository(db)
	rsvpRepo := repository.NewRSVPRepository(db)
	planRepo := repository.NewPlanRepository(db)

	// Object storage is optional; without it oversized media stays inline.
	var objStorage storage.ObjectStorage
	if cfg.StorageConfigured() {
		r2, err := storage.NewCloudflareStorage(cfg)
		if err != nil {
			log.Fatalw("R2 storage init failed", "err", err)
		}
		objStorage = r2
	} else {
		log.Infow("object storage not configured, media is stored inline")
	}

	sheetClient := sheets.NewClient()
	emailService := email.NewEmailService(log)
	verifier := googleauth.NewVerifier(cfg.GoogleClientID)
	stripeService := payment.NewStripeService(cfg.StripeSecretKey, cfg.PublicURL)

	// Services
	userService := service.NewUserService(userRepo, cfg, log)
	authService := service.NewAuthService(verifier, userService)
	invService := service.NewInvitationService(invRepo, sheetClient, cfg.PublicURL, log)
	mediaService := service.NewMediaService(invService, objStorage, log)
	rsvpService := service.NewRSVPService(rsvpRepo, invRepo, userRepo, sheetClient, emailService, log)
	planService := service.NewPlanService(planRepo, stripeService, log)

	validator := utils.NewValidator()
	qrService := qrcode.NewQRService()

	// Handlers
	authHandler := handler.NewAuthHandler(authService, validator)
	invHandler := handler.NewInvitationHandler(invService, qrService, validator)
	mediaHandler := handler.NewMediaHandler(mediaService, validator)
	rsvpHandler := handler.NewRSVPHandler(rsvpService, invService, validator)
	userHandler := handler.NewUserHandler(userService, validator)
	planHandler := handler.NewPlanHandler(planService)

	app := fiber.New(fiber.Config{
		BodyLimit: 25 * 1024 * 1024,
	})

	app.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.PublicURL + ", http://localhost:5173",
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
		AllowMethods:     "GET, POST, PUT, PATCH, DELETE",
		AllowCredentials: true,
	}))
	app.Use(fiberlogger.New())
	app.Use(limiter.New(limiter.Config{
		Max:        60,
		Expiration: 1 * time.Minute,
		KeyGenerator: func(c *fiber.Ctx) string {
			return c.IP()
		},
	}))

	api := app.Group("/api")

	// Public routes
	auth := api.Group("/auth")
	auth.Post("/google", authHandler.GoogleLogin)

	api.Get("/guest/:code", invHandler.GetGuestView)
	api.Post("/guest/:code/rsvp", rsvpHandler.SubmitRSVP)
	api.Get("/plans", planHandler.GetPlans)

	// Protected routes
	api.Use(middleware.AuthMiddleware())
	{
		user := api.Group("/user")
		user.Get("/profile", userHandler.GetMyProfile)

		canEdit := middleware.RequireRole(models.RoleEditor, models.RoleAdmin)

		invitations := api.Group("/invitations")
		invitations.Get("/", invHandler.GetInvitations)
		invitations.Get("/:code", invHandler.GetInvitation)
		invitations.Get("/:code/links", invHandler.GetLinks)
		invitations.Get("/:code/qrcode", invHandler.GetQRCode)
		invitations.Get("/:code/autosave", invHandler.AutosaveStatus)
		invitations.Get("/:code/rsvps", rsvpHandler.GetRSVPs)

		invitations.Post("/", canEdit, invHandler.CreateInvitation)
		invitations.Put("/:code", canEdit, invHandler.UpdateInvitation)
		invitations.Patch("/:code/autosave", canEdit, invHandler.Autosave)
		invitations.Delete("/:code", canEdit, invHandler.DeleteInvitation)
		invitations.Post("/:code/images", canEdit, mediaHandler.UploadImage)
		invitations.Post("/:code/music", canEdit, mediaHandler.UploadMusic)
		invitations.Post("/:code/check-sheet", canEdit, rsvpHandler.CheckSheetConnection)

		payments := api.Group("/payments")
		payments.Post("/checkout/:planId", planHandler.CreateCheckoutSession)

		// Admin routes
		admin := api.Group("/admin", middleware.RequireRole(models.RoleAdmin))
		admin.Get("/users", userHandler.GetAllUsers)
		admin.Put("/users/:id/role", userHandler.UpdateUserRole)
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	go func() {
		if err := app.Listen(":" + port); err != nil {
			log.Fatalw("server stopped", "err", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Infow("shutting down")
	if err := app.Shutdown(); err != nil {
		log.Errorw("server shutdown failed", "err", err)
	}
	// Flush any autosave still pending in the debounce window.
	invService.Close()
}
