package app

import (
	"os"

	"github.com/Assetizer-RealTech-Private-Limited/ERP/internal/attendance"
	"github.com/Assetizer-RealTech-Private-Limited/ERP/internal/employee"
	"github.com/Assetizer-RealTech-Private-Limited/ERP/internal/passwordreset"
	"github.com/Assetizer-RealTech-Private-Limited/ERP/internal/shared/connection"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const outboxSchema = `
CREATE TABLE IF NOT EXISTS outbox_events (
	id            UUID PRIMARY KEY,
	request_id    TEXT,
	aggregate_type TEXT NOT NULL,
	aggregate_id  TEXT NOT NULL,
	event_type    TEXT NOT NULL,
	topic         TEXT NOT NULL,
	payload       JSONB NOT NULL,
	status        TEXT NOT NULL DEFAULT 'pending',
	retry_count   INT NOT NULL DEFAULT 0,
	error_message TEXT,
	next_retry_at TIMESTAMPTZ,
	processed_at  TIMESTAMPTZ,
	created_at    TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	updated_at    TIMESTAMPTZ NOT NULL DEFAULT NOW()
)`

// BuildApp connects the infrastructure, migrates the schema and mounts
// every module on the router.
func BuildApp(router *gin.Engine) error {
	gormDB, err := connection.ConnectGORMWithRetry(
		os.Getenv("DB_HOST"),
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_NAME"),
		os.Getenv("DB_PORT"),
		os.Getenv("DB_SSLMODE"),
		5,
	)
	if err != nil {
		return err
	}

	if err := migrate(gormDB); err != nil {
		return err
	}

	db, err := gormDB.DB()
	if err != nil {
		return err
	}

	// Redis is optional: without it the employee list cache is skipped
	// and OTP challenges live in process memory.
	rdb := redisClientFromEnv()

	return registerModules(router, db, gormDB, rdb)
}

func migrate(gormDB *gorm.DB) error {
	if err := gormDB.AutoMigrate(
		&employee.Employee{},
		&attendance.AttendanceLog{},
		&passwordreset.ResetRequest{},
	); err != nil {
		return err
	}
	return gormDB.Exec(outboxSchema).Error
}

func redisClientFromEnv() *redis.Client {
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		zap.L().Info("REDIS_ADDR not set, running without redis")
		return nil
	}

	rdb, err := connection.ConnectRedisWithRetry(addr, 5)
	if err != nil {
		zap.L().Warn("redis unavailable, continuing without it", zap.Error(err))
		return nil
	}
	return rdb
}
