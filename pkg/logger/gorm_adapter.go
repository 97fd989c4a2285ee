package logger

import (
	"context"
	"errors"
	"fmt"
	"time"

	"userdir/infrastructure/persistence"

	"go.uber.org/zap"
	gormlogger "gorm.io/gorm/logger"
)

type GormLoggerConfig struct {
	SlowThreshold time.Duration

	// IgnoreRecordNotFoundError absent rows are an expected lookup result
	// for the user store, so this defaults to true.
	IgnoreRecordNotFoundError bool
}

func DefaultGormLoggerConfig() *GormLoggerConfig {
	return &GormLoggerConfig{
		SlowThreshold:             200 * time.Millisecond,
		IgnoreRecordNotFoundError: true,
	}
}

// GormLoggerAdapter routes gorm output through zap, tagged with the request id
// carried by the query context.
type GormLoggerAdapter struct {
	logLevel gormlogger.LogLevel
	logger   *zap.Logger
	config   *GormLoggerConfig
}

func NewGormLoggerAdapter(logLevel gormlogger.LogLevel) *GormLoggerAdapter {
	return NewGormLoggerAdapterWithConfig(logLevel, DefaultGormLoggerConfig())
}

func NewGormLoggerAdapterWithConfig(logLevel gormlogger.LogLevel, config *GormLoggerConfig) *GormLoggerAdapter {
	if config == nil {
		config = DefaultGormLoggerConfig()
	}
	return &GormLoggerAdapter{
		logLevel: logLevel,
		logger:   Get().Named("gorm"),
		config:   config,
	}
}

// ParseGormLevel maps a config level name to a gorm level; unknown names are Warn.
func ParseGormLevel(level string) gormlogger.LogLevel {
	switch level {
	case "debug", "info":
		return gormlogger.Info
	case "error":
		return gormlogger.Error
	case "silent":
		return gormlogger.Silent
	default:
		return gormlogger.Warn
	}
}

func (l *GormLoggerAdapter) LogMode(logLevel gormlogger.LogLevel) gormlogger.Interface {
	return &GormLoggerAdapter{logLevel: logLevel, logger: l.logger, config: l.config}
}

func (l *GormLoggerAdapter) withContext(ctx context.Context) *zap.Logger {
	if requestID := persistence.RequestIDFromContext(ctx); requestID != "" {
		return l.logger.With(zap.String("request_id", requestID))
	}
	return l.logger
}

func (l *GormLoggerAdapter) Info(ctx context.Context, msg string, args ...interface{}) {
	if l.logLevel >= gormlogger.Info {
		l.withContext(ctx).Info(fmt.Sprintf(msg, args...))
	}
}

func (l *GormLoggerAdapter) Warn(ctx context.Context, msg string, args ...interface{}) {
	if l.logLevel >= gormlogger.Warn {
		l.withContext(ctx).Warn(fmt.Sprintf(msg, args...))
	}
}

func (l *GormLoggerAdapter) Error(ctx context.Context, msg string, args ...interface{}) {
	if l.logLevel >= gormlogger.Error {
		l.withContext(ctx).Error(fmt.Sprintf(msg, args...))
	}
}

func (l *GormLoggerAdapter) Trace(ctx context.Context, begin time.Time, fc func() (sql string, rowsAffected int64), err error) {
	if l.logLevel <= gormlogger.Silent {
		return
	}

	sql, rows := fc()
	elapsed := time.Since(begin)
	fields := []zap.Field{
		zap.String("sql", sql),
		zap.Duration("elapsed", elapsed),
		zap.Int64("rows", rows),
	}
	log := l.withContext(ctx)

	if err != nil && l.logLevel >= gormlogger.Error {
		if errors.Is(err, gormlogger.ErrRecordNotFound) && l.config.IgnoreRecordNotFoundError {
			return
		}
		log.Error("Database operation failed", append(fields, zap.Error(err))...)
		return
	}

	if l.config.SlowThreshold != 0 && elapsed > l.config.SlowThreshold && l.logLevel >= gormlogger.Warn {
		log.Warn("Slow SQL query", append(fields, zap.String("type", "slow_query"))...)
		return
	}

	if l.logLevel >= gormlogger.Info {
		log.Debug("SQL query executed", fields...)
	}
}
