package routes

import (
	"errors"
	"net/http"

	"HospitalManagement/config"
	"HospitalManagement/controllers"
	"HospitalManagement/handlers"
	"HospitalManagement/middlewares"
	"HospitalManagement/repositories"
	"HospitalManagement/services"
	"HospitalManagement/utils"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// Dependencies are the optional collaborators of the router. CodeStore and
// Mailer may be left nil, which disables password reset.
type Dependencies struct {
	Logger    *logrus.Logger
	Registry  *prometheus.Registry
	CodeStore services.CodeStore
	Mailer    services.ResetMailer
}

// SetupRoutes initializes the routes and middleware for the server
func SetupRoutes(cfg *config.AppConfig, db *gorm.DB, deps Dependencies) (*gin.Engine, error) {
	if cfg == nil || db == nil {
		return nil, errors.New("config and database are required")
	}
	if deps.Logger == nil {
		deps.Logger = utils.NewLogger(cfg.LogLevel)
	}
	if deps.Registry == nil {
		deps.Registry = prometheus.NewRegistry()
	}

	if cfg.IsDevelopment() {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middlewares.LoggingMiddleware(deps.Logger))
	router.Use(middlewares.SecurityHeaders())
	router.Use(middlewares.CorsMiddleware(cfg.CORSAllowedOrigins))
	router.Use(middlewares.NewMetrics(deps.Registry).Middleware())

	if cfg.RateLimitRPS > 0 {
		router.Use(middlewares.NewRateLimiterMiddleware(middlewares.RateLimiterConfig{
			RequestsPerSecond: cfg.RateLimitRPS,
			Burst:             cfg.RateLimitBurst,
		}))
	}

	tokens, err := utils.NewTokenMaker(cfg.JWT.Format, utils.TokenSettings{
		Key:      cfg.JWT.Key,
		Issuer:   cfg.JWT.Issuer,
		Audience: cfg.JWT.Audience,
		TTL:      cfg.TokenLifetime(),
	})
	if err != nil {
		return nil, err
	}

	// Initialize repositories, services, and handlers
	authService, err := services.NewAuthService(
		repositories.NewUserRepository(db),
		tokens,
		deps.CodeStore,
		deps.Mailer,
		cfg.BcryptCost,
		deps.Logger,
	)
	if err != nil {
		return nil, err
	}

	authHandler := handlers.NewAuthHandler(authService)
	patientHandler := handlers.NewPatientHandler(repositories.NewPatientRepository(db))
	doctorHandler := handlers.NewDoctorHandler(repositories.NewDoctorRepository(db))
	appointmentHandler := handlers.NewAppointmentHandler(repositories.NewAppointmentRepository(db))
	billingHandler := handlers.NewBillingHandler(repositories.NewBillingRepository(db))
	clinicalHandler := handlers.NewClinicalHandler(repositories.NewClinicalRepository(db))

	// Register routes
	api := router.Group("/api")

	controllers.NewAuthController(authHandler, tokens).RegisterRoutes(api)
	controllers.SetupPatientRoutes(api, tokens, patientHandler)
	controllers.SetupDoctorRoutes(api, tokens, doctorHandler)
	controllers.SetupAppointmentRoutes(api, tokens, appointmentHandler)
	controllers.SetupBillingRoutes(api, tokens, billingHandler)
	controllers.SetupClinicalRoutes(api, tokens, clinicalHandler)

	controllers.SetupRootRoute(
		router,
		handlers.NewHealthHandler(db),
		promhttp.HandlerFor(deps.Registry, promhttp.HandlerOpts{}),
	)

	router.NoRoute(func(c *gin.Context) {
		middlewares.HttpError(c, http.StatusNotFound, "Route not found")
	})

	return router, nil
}
