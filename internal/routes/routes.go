package routes

import (
	"log/slog"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/reservation-api/internal/audit"
	"github.com/BruksfildServices01/reservation-api/internal/config"
	domain "github.com/BruksfildServices01/reservation-api/internal/domain/reservation"
	"github.com/BruksfildServices01/reservation-api/internal/handlers"
	"github.com/BruksfildServices01/reservation-api/internal/middleware"
	ucReservation "github.com/BruksfildServices01/reservation-api/internal/usecase/reservation"
)

// Deps are the collaborators built once at startup.
type Deps struct {
	Store    domain.Repository
	Audit    *audit.Dispatcher
	Log      *slog.Logger
	Limiter  middleware.Limiter     // nil disables rate limiting
	Uploader ucReservation.Uploader // nil disables backups
	Checks   []handlers.ReadyCheck
}

func NewRouter(cfg *config.Config, deps Deps) *gin.Engine {
	r := gin.New()
	if err := r.SetTrustedProxies(cfg.TrustedProxies); err != nil {
		deps.Log.Error("invalid trusted proxies, using peer address", "err", err)
		_ = r.SetTrustedProxies(nil)
	}
	RegisterRoutes(r, cfg, deps)
	return r
}

func RegisterRoutes(r *gin.Engine, cfg *config.Config, deps Deps) {

	// ======================================================
	// 🌍 MIDDLEWARE GLOBAL
	// ======================================================
	r.Use(
		gin.Recovery(),
		middleware.RequestIDMiddleware(),
		middleware.AccessLogMiddleware(deps.Log),
		middleware.CORSMiddleware(),
		middleware.BodyLimitMiddleware(cfg.MaxBodyBytes),
	)

	// ======================================================
	// 🧠 USE CASES
	// ======================================================
	createUC := ucReservation.NewCreateReservation(deps.Store, deps.Audit)
	listUC := ucReservation.NewListReservations(deps.Store, deps.Audit)
	exportUC := ucReservation.NewExportReservations(deps.Store, deps.Audit)

	var backupUC *ucReservation.BackupReservations
	if deps.Uploader != nil {
		backupUC = ucReservation.NewBackupReservations(deps.Store, deps.Uploader, deps.Audit, cfg.Timezone)
	}

	// ======================================================
	// 🧩 HANDLERS
	// ======================================================
	healthHandler := handlers.NewHealthHandler(deps.Checks...)
	reservationHandler := handlers.NewReservationHandler(createUC, deps.Log)
	adminHandler := handlers.NewAdminHandler(listUC, exportUC, backupUC, deps.Log)

	r.GET("/health", healthHandler.Health)
	r.GET("/readyz", healthHandler.Ready)

	// ------------------------------
	// 🌐 PUBLIC
	// ------------------------------
	submit := []gin.HandlerFunc{}
	if deps.Limiter != nil {
		submit = append(submit, middleware.RateLimitMiddleware(deps.Limiter, deps.Log))
	}
	submit = append(submit, reservationHandler.Create)
	r.POST("/reservations", submit...)

	// ------------------------------
	// 🔐 ADMIN
	// ------------------------------
	admin := r.Group("/admin")
	admin.Use(middleware.AdminKeyMiddleware(cfg))
	{
		admin.GET("/reservations", adminHandler.List)
		admin.GET("/reservations/export", adminHandler.Export)
		admin.POST("/reservations/backup", adminHandler.Backup)
	}
}

// RateLimitWindow is the window used with Config.RateLimitPerMinute.
const RateLimitWindow = time.Minute
