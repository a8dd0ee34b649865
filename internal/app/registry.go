package app

import (
	"database/sql"
	"os"

	"github.com/Assetizer-RealTech-Private-Limited/ERP/internal/attendance"
	"github.com/Assetizer-RealTech-Private-Limited/ERP/internal/auth"
	"github.com/Assetizer-RealTech-Private-Limited/ERP/internal/employee"
	"github.com/Assetizer-RealTech-Private-Limited/ERP/internal/geoip"
	"github.com/Assetizer-RealTech-Private-Limited/ERP/internal/mailer"
	"github.com/Assetizer-RealTech-Private-Limited/ERP/internal/messaging/kafka"
	"github.com/Assetizer-RealTech-Private-Limited/ERP/internal/middleware"
	"github.com/Assetizer-RealTech-Private-Limited/ERP/internal/passwordreset"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func registerModules(
	router *gin.Engine,
	db *sql.DB,
	gormDB *gorm.DB,
	rdb *redis.Client,
) error {
	router.Use(middleware.RequestID())
	router.Use(middleware.ContextLogger(zap.L()))
	router.Use(middleware.CORS())

	// --- Repositories ---
	employeeRepo := employee.NewRepository(gormDB)
	attendanceRepo := attendance.NewRepository(gormDB)
	resetRequestRepo := passwordreset.NewRequestRepository(gormDB)
	outboxRepo := kafka.NewOutboxRepository(db)

	// --- Supporting infrastructure ---
	resolver := geoip.NewIPAPIResolver()
	notifier := mailer.NewSMTPNotifier(mailer.Config{
		Host:     os.Getenv("SMTP_HOST"),
		Port:     os.Getenv("SMTP_PORT"),
		From:     os.Getenv("SMTP_FROM"),
		Password: os.Getenv("SMTP_PASSWORD"),
	})

	var otpStore passwordreset.ChallengeStore
	if rdb != nil {
		otpStore = passwordreset.NewRedisStore(rdb)
	} else {
		otpStore = passwordreset.NewMemoryStore()
	}

	// --- Services ---
	employeeService := employee.NewServiceWithOutbox(db, employeeRepo, outboxRepo, rdb)
	attendanceService := attendance.NewServiceWithOutbox(db, attendanceRepo, resolver, outboxRepo)
	authService := auth.NewService(employeeRepo)
	resetService := passwordreset.NewService(employeeRepo, otpStore, notifier, resetRequestRepo)

	// --- Handlers ---
	employeeHandler := employee.NewHandler(employeeService)
	attendanceHandler := attendance.NewHandler(attendanceService)
	authHandler := auth.NewHandler(authService)
	resetHandler := passwordreset.NewHandler(resetService)

	// --- Routes ---
	api := router.Group("/")
	{
		auth.RegisterRoutes(api, authHandler)
		employee.RegisterRoutes(api, employeeHandler)
		attendance.RegisterRoutes(api, attendanceHandler)
		passwordreset.RegisterRoutes(api, resetHandler)
	}

	return nil
}
