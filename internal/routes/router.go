package routes

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/jmoiron/sqlx"
	"gorm.io/gorm"

	"auto-pana/garaje/internal/api"
	"auto-pana/garaje/internal/common"
	"auto-pana/garaje/internal/config"
	"auto-pana/garaje/internal/db/repositories"
	"auto-pana/garaje/internal/logging"
	"auto-pana/garaje/internal/metrics"
	"auto-pana/garaje/internal/middleware"
	"auto-pana/garaje/internal/services"
)

// RegisterRoutes wires repositories, services and handlers onto a chi
// router with the global middleware stack.
func RegisterRoutes(
	cfg config.Config,
	sqlxDB *sqlx.DB,
	gormDB *gorm.DB,
	cache common.CacheInterface,
	metricsReg *metrics.MetricsRegistry,
	upSince time.Time,
) http.Handler {
	r := chi.NewRouter()

	// global middleware
	r.Use(middleware.RequestIDMiddleware)
	r.Use(middleware.MetricsMiddleware(metricsReg))
	r.Use(middleware.RateLimitMiddleware)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.CORSOrigins,
		AllowedMethods:   []string{"GET", "POST", "PATCH", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Request-ID"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	logging.Info("Router initialized with metrics and logging middleware")

	// repositories and services
	userRepo := repositories.NewAppUserRepositoryGORM(gormDB)
	vehicleRepo := repositories.NewUserVehicleRepositoryGORM(gormDB)
	consentRepo := repositories.NewConsentRepositoryGORM(gormDB)

	registrationSvc := services.NewRegistrationService(userRepo, consentRepo, metricsReg)
	vehicleSyncSvc := services.NewVehicleSyncService(userRepo, vehicleRepo, metricsReg)
	statsSvc := services.NewStatsService(
		userRepo,
		vehicleRepo,
		cache,
		time.Duration(cfg.StatsCacheTTLSeconds)*time.Second,
		metricsReg,
	)

	// health check
	r.Get("/healthCheck", api.HealthCheckHandler(sqlxDB, upSince))

	r.Route("/api", func(r chi.Router) {
		r.Route("/users", func(r chi.Router) {
			r.Post("/register", api.RegisterUserHandler(registrationSvc))
			r.Patch("/consent", api.UpdateConsentHandler(registrationSvc))
			r.Get("/by-email/{email}", api.UserByEmailHandler(registrationSvc))
			r.Get("/{userID}/vehicles", api.UserVehiclesHandler(vehicleSyncSvc))
		})

		r.Post("/vehicles/sync", api.SyncVehicleHandler(vehicleSyncSvc))
		r.Get("/analytics/stats", api.StatsHandler(statsSvc))
	})

	return r
}
