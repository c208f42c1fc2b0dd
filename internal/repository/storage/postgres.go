package storage

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewPostgresStorage - opens a gorm connection and checks it.
func NewPostgresStorage(ctx context.Context, dsn string, log *slog.Logger) (*gorm.DB, error) {
	conn, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: newGormLogger(log),
	})
	if err != nil {
		return nil, fmt.Errorf("can't open database: %w", err)
	}

	sqlDB, err := conn.DB()
	if err != nil {
		return nil, fmt.Errorf("can't get database handle: %w", err)
	}

	sqlDB.SetMaxOpenConns(20)
	sqlDB.SetConnMaxIdleTime(5 * time.Minute)

	if err = sqlDB.PingContext(ctx); err != nil {
		return nil, fmt.Errorf("can't connect to database: %w", err)
	}

	return conn, nil
}

// ClosePostgres - closes the underlying connection pool.
func ClosePostgres(conn *gorm.DB) error {
	sqlDB, err := conn.DB()
	if err != nil {
		return fmt.Errorf("can't get database handle: %w", err)
	}

	return sqlDB.Close()
}

type gormLogger struct {
	log   *slog.Logger
	level logger.LogLevel
}

func newGormLogger(log *slog.Logger) logger.Interface {
	return &gormLogger{
		log:   log.With("component", "gorm"),
		level: logger.Warn,
	}
}

func (that *gormLogger) LogMode(level logger.LogLevel) logger.Interface {
	return &gormLogger{log: that.log, level: level}
}

func (that *gormLogger) Info(ctx context.Context, msg string, args ...interface{}) {
	if that.level >= logger.Info {
		that.log.InfoContext(ctx, fmt.Sprintf(msg, args...))
	}
}

func (that *gormLogger) Warn(ctx context.Context, msg string, args ...interface{}) {
	if that.level >= logger.Warn {
		that.log.WarnContext(ctx, fmt.Sprintf(msg, args...))
	}
}

func (that *gormLogger) Error(ctx context.Context, msg string, args ...interface{}) {
	if that.level >= logger.Error {
		that.log.ErrorContext(ctx, fmt.Sprintf(msg, args...))
	}
}

func (that *gormLogger) Trace(ctx context.Context, begin time.Time, fc func() (string, int64), err error) {
	if that.level <= logger.Silent {
		return
	}

	// record-not-found is an expected outcome for lookups
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) && that.level >= logger.Error {
		sql, rows := fc()
		that.log.ErrorContext(ctx, "query failed", "sql", sql, "rows", rows, "elapsed", time.Since(begin), "error", err)
		return
	}

	if that.level >= logger.Info {
		sql, rows := fc()
		that.log.DebugContext(ctx, "query", "sql", sql, "rows", rows, "elapsed", time.Since(begin))
	}
}
