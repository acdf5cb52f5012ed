package main

import (
	"log"
	"os"

	"github.com/gin-contrib/sessions"
	redisStore "github.com/gin-contrib/sessions/redis"
	"github.com/gin-gonic/gin"
	"github.com/mcastaneda/employment-cert-api/internal/config"
	"github.com/mcastaneda/employment-cert-api/internal/constants"
	"github.com/mcastaneda/employment-cert-api/internal/database"
	"github.com/mcastaneda/employment-cert-api/internal/handlers"
	"github.com/mcastaneda/employment-cert-api/internal/middleware"
	"github.com/mcastaneda/employment-cert-api/internal/pdf"
	"github.com/mcastaneda/employment-cert-api/internal/repository"
	"github.com/mcastaneda/employment-cert-api/internal/services"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Set Gin mode
	gin.SetMode(cfg.GinMode)

	// Connect to database
	if err := database.Connect(cfg); err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Run migrations
	if err := database.Migrate(); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Certificates are written here on demand
	if err := os.MkdirAll(cfg.CertDir, 0o755); err != nil {
		log.Fatalf("Failed to create certificate directory: %v", err)
	}

	// Initialize Gin router
	r := gin.Default()

	// Setup session middleware with Redis
	redisAddr := cfg.RedisHost + ":" + cfg.RedisPort
	store, err := redisStore.NewStore(
		10,        // Redis pool size
		"tcp",     // network type
		redisAddr, // Redis address from config
		"",        // username (empty for default user)
		"",        // password (empty = no password)
		[]byte(cfg.SessionSecret), // authentication key
	)
	if err != nil {
		log.Fatalf("Failed to create Redis store: %v", err)
	}
	// Configure session options based on environment
	isProduction := cfg.GinMode == "release"
	store.Options(sessions.Options{
		Path:     "/",
		MaxAge:   86400 * 7, // 7 days
		HttpOnly: true,
		Secure:   isProduction, // true in production (HTTPS), false in development
		SameSite: 2,            // SameSite=Lax (1=Strict, 2=Lax, 3=None)
	})
	r.Use(sessions.Sessions(constants.SessionCookieName, store))

	// Initialize repositories and services
	db := database.GetDB()
	personRepo := repository.NewPersonRepository(db)
	accountRepo := repository.NewAccountRepository(db)
	employmentRepo := repository.NewEmploymentRepository(db)

	authService := services.NewAuthService(personRepo, accountRepo)
	employmentService := services.NewEmploymentService(accountRepo, employmentRepo)
	certificateService := services.NewCertificateService(
		personRepo,
		accountRepo,
		employmentRepo,
		pdf.DefaultLayout(cfg.LogoPath),
		cfg.CertDir,
	)

	// Initialize handlers
	pageHandler := handlers.NewPageHandler()
	authHandler := handlers.NewAuthHandler(authService)
	dashboardHandler := handlers.NewDashboardHandler(authService, employmentService)
	employmentHandler := handlers.NewEmploymentHandler(employmentService)
	certificateHandler := handlers.NewCertificateHandler(certificateService)

	// Public routes
	r.GET("/", pageHandler.Index)
	r.GET("/registro", pageHandler.RegistrationPage)
	r.POST("/registro", authHandler.Register)
	r.GET("/login", pageHandler.LoginPage)
	r.POST("/login", authHandler.Login)
	r.POST("/cerrar_sesion", authHandler.Logout)

	// Protected routes
	protected := r.Group("/")
	protected.Use(middleware.RequireAuth())
	{
		protected.GET("/dashboard", dashboardHandler.Dashboard)
		protected.POST("/agregar_historial_empleo", employmentHandler.AddRecord)
		protected.POST("/generar_certificado", certificateHandler.Generate)
	}

	// Start server
	log.Println("Server starting on :8080")
	if err := r.Run(":8080"); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
