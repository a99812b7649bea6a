package database

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

// Options configures a database connection
type Options struct {
	Driver                string
	DSN                   string // postgres
	Path                  string // sqlite
	MaxConnections        int
	MaxIdleConnections    int
	ConnectionMaxLifetime time.Duration
	LogQueries            bool
}

type DB struct {
	*gorm.DB
}

// Initialize creates a new database connection with the provided options
func Initialize(opts Options) (*DB, error) {
	dialector, err := dialectorFor(opts)
	if err != nil {
		return nil, err
	}

	// Configure GORM logger
	logLevel := logger.Error
	if opts.LogQueries {
		logLevel = logger.Info
	}

	gormConfig := &gorm.Config{
		Logger: logger.Default.LogMode(logLevel),
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
	}

	db, err := gorm.Open(dialector, gormConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying SQL database: %w", err)
	}

	maxOpen := opts.MaxConnections
	if maxOpen <= 0 {
		maxOpen = 25
	}
	maxIdle := opts.MaxIdleConnections
	if maxIdle <= 0 {
		maxIdle = 5
	}
	lifetime := opts.ConnectionMaxLifetime
	if lifetime <= 0 {
		lifetime = time.Hour
	}
	// Every sqlite connection to :memory: opens its own empty database
	if isMemorySQLite(opts) {
		maxOpen, maxIdle, lifetime = 1, 1, 0
	}
	sqlDB.SetMaxOpenConns(maxOpen)
	sqlDB.SetMaxIdleConns(maxIdle)
	sqlDB.SetConnMaxLifetime(lifetime)

	return &DB{DB: db}, nil
}

func dialectorFor(opts Options) (gorm.Dialector, error) {
	switch opts.Driver {
	case DriverPostgres:
		if opts.DSN == "" {
			return nil, fmt.Errorf("postgres driver requires a DSN")
		}
		return postgres.Open(opts.DSN), nil
	case DriverSQLite, "":
		path := opts.Path
		if path == "" {
			path = ":memory:"
		}
		// Ensure the database directory exists
		if dir := filepath.Dir(path); path != ":memory:" && dir != "" && dir != "." {
			if err := os.MkdirAll(dir, 0755); err != nil {
				return nil, fmt.Errorf("failed to create database directory: %w", err)
			}
		}
		return sqlite.Open(path), nil
	default:
		return nil, fmt.Errorf("unsupported database driver %q", opts.Driver)
	}
}

func isMemorySQLite(opts Options) bool {
	return (opts.Driver == DriverSQLite || opts.Driver == "") && (opts.Path == "" || opts.Path == ":memory:")
}

// Close closes the database connection
func (db *DB) Close() error {
	sqlDB, err := db.DB.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying SQL database: %w", err)
	}
	return sqlDB.Close()
}

// HealthCheck verifies the database connection is working
func (db *DB) HealthCheck(ctx context.Context) error {
	if db == nil || db.DB == nil {
		return fmt.Errorf("database not initialized")
	}

	sqlDB, err := db.DB.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying SQL database: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, 1*time.Second)
	defer cancel()

	if err := sqlDB.PingContext(ctx); err != nil {
		return fmt.Errorf("database ping failed: %w", err)
	}

	return nil
}

// AutoMigrate runs GORM auto migration for the provided models
func (db *DB) AutoMigrate(models ...any) error {
	if err := db.DB.AutoMigrate(models...); err != nil {
		return fmt.Errorf("auto migration failed: %w", err)
	}
	return nil
}
