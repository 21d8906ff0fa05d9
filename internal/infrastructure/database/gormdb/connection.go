// Package gormdb implements the domain repositories on top of gorm.
package gormdb

import (
	"fmt"
	"strings"
	"time"

	"rudereminder/internal/domain/entity"
	"rudereminder/internal/pkg/logger"

	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// Supported values for Config.Driver.
const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
	DriverMySQL    = "mysql"
)

// Config selects the database and how chatty gorm is.
type Config struct {
	Driver   string
	DSN      string
	LogLevel string // silent, error, warn, info
}

// printfWriter routes gorm's printf style logger into the application logger.
type printfWriter struct {
	log logger.Logger
}

func (w printfWriter) Printf(format string, args ...any) {
	w.log.Debug(fmt.Sprintf(format, args...))
}

// Open connects to the configured database and migrates the schema.
func Open(cfg Config, log logger.Logger) (*gorm.DB, error) {
	dialector, err := dialectorFor(cfg)
	if err != nil {
		return nil, err
	}

	gormLog := gormlogger.New(printfWriter{log: log}, gormlogger.Config{
		SlowThreshold:             200 * time.Millisecond,
		LogLevel:                  gormLogLevel(cfg.LogLevel),
		IgnoreRecordNotFoundError: true,
		Colorful:                  false,
	})

	db, err := gorm.Open(dialector, &gorm.Config{Logger: gormLog})
	if err != nil {
		return nil, fmt.Errorf("🔴 ERROR: failed to connect to %s database: %w", cfg.Driver, err)
	}
	if cfg.Driver == DriverSQLite || cfg.Driver == "" {
		// SQLite allows a single writer; in-memory databases are per connection.
		sqlDB, err := db.DB()
		if err != nil {
			return nil, fmt.Errorf("🔴 ERROR: failed to get underlying *sql.DB: %w", err)
		}
		sqlDB.SetMaxOpenConns(1)
	}
	log.Info("Successfully connected to database", "driver", cfg.Driver)

	if err := AutoMigrate(db); err != nil {
		return nil, err
	}
	if err := SeedRudePhrases(db); err != nil {
		return nil, err
	}
	log.Info("Database schema migration completed")
	return db, nil
}

func dialectorFor(cfg Config) (gorm.Dialector, error) {
	switch strings.ToLower(cfg.Driver) {
	case DriverSQLite, "":
		dsn := cfg.DSN
		if dsn == "" {
			dsn = "reminders.db"
		}
		return sqlite.Open(dsn), nil
	case DriverPostgres:
		return postgres.Open(cfg.DSN), nil
	case DriverMySQL:
		return mysql.Open(cfg.DSN), nil
	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.Driver)
	}
}

func gormLogLevel(s string) gormlogger.LogLevel {
	switch strings.ToLower(s) {
	case "silent":
		return gormlogger.Silent
	case "error":
		return gormlogger.Error
	case "info":
		return gormlogger.Info
	default:
		return gormlogger.Warn
	}
}

// AutoMigrate automatically migrates the database schema for the defined entities.
func AutoMigrate(db *gorm.DB) error {
	err := db.AutoMigrate(
		&entity.User{},
		&entity.Reminder{},
		&entity.RudePhrase{},
		&entity.WhitelistEntry{},
	)
	if err != nil {
		return fmt.Errorf("🔴 ERROR: schema migration failed: %w", err)
	}
	return nil
}

// Close closes the database connection if it's open.
func Close(db *gorm.DB) error {
	if db == nil {
		return nil
	}
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("🔴 ERROR: failed to get underlying *sql.DB: %w", err)
	}
	return sqlDB.Close()
}
