// Package database manages the GORM database connection lifecycle.
package database

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"ticketdesk/internal/shared/config"
	"ticketdesk/internal/shared/logger"
)

var (
	db   *gorm.DB
	once sync.Once
)

// Init initializes the database connection with the given configuration
func Init(cfg *config.DatabaseConfig) error {
	var initErr error
	once.Do(func() {
		dsn := cfg.GetDSN()

		gormConfig := &gorm.Config{
			Logger: newFilteredLogger(),
			NowFunc: func() time.Time {
				return time.Now().UTC()
			},
		}

		var err error
		db, err = gorm.Open(mysql.Open(dsn), gormConfig)
		if err != nil {
			initErr = fmt.Errorf("failed to connect to database: %w", err)
			return
		}

		sqlDB, err := db.DB()
		if err != nil {
			initErr = fmt.Errorf("failed to get underlying sql.DB: %w", err)
			return
		}

		sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
		sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
		sqlDB.SetConnMaxLifetime(time.Duration(cfg.ConnMaxLifetime) * time.Minute)

		if err := sqlDB.Ping(); err != nil {
			initErr = fmt.Errorf("failed to ping database: %w", err)
			return
		}

		logger.Info("database connection established",
			"host", cfg.Host,
			"port", cfg.Port,
			"database", cfg.Database,
		)
	})
	return initErr
}

// Get returns the database connection
func Get() *gorm.DB {
	return db
}

// Close closes the database connection
func Close() error {
	if db == nil {
		return nil
	}
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}
	return sqlDB.Close()
}

// filteredLogger drops record-not-found noise and routes slow queries
// and errors through the application logger.
type filteredLogger struct {
	slowThreshold time.Duration
}

func newFilteredLogger() gormlogger.Interface {
	return &filteredLogger{slowThreshold: 200 * time.Millisecond}
}

func (l *filteredLogger) LogMode(gormlogger.LogLevel) gormlogger.Interface {
	return l
}

func (l *filteredLogger) Info(ctx context.Context, msg string, args ...interface{}) {
	logger.Info(fmt.Sprintf(msg, args...))
}

func (l *filteredLogger) Warn(ctx context.Context, msg string, args ...interface{}) {
	logger.Warn(fmt.Sprintf(msg, args...))
}

func (l *filteredLogger) Error(ctx context.Context, msg string, args ...interface{}) {
	logger.Error(fmt.Sprintf(msg, args...))
}

func (l *filteredLogger) Trace(ctx context.Context, begin time.Time, fc func() (string, int64), err error) {
	elapsed := time.Since(begin)

	if err != nil && !strings.Contains(err.Error(), "record not found") {
		sql, rows := fc()
		logger.Error("query failed", "error", err, "sql", sql, "rows", rows, "elapsed", elapsed)
		return
	}

	if elapsed > l.slowThreshold {
		sql, rows := fc()
		logger.Warn("slow query", "sql", sql, "rows", rows, "elapsed", elapsed)
	}
}
