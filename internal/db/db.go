package db

import (
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	_ "github.com/mattn/go-sqlite3"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"auto-pana/garaje/internal/config"
	"auto-pana/garaje/internal/logging"
	gormmodels "auto-pana/garaje/internal/models/gorm"
)

// InitORM opens the GORM connection and migrates the analytics schema.
func InitORM(cfg config.Config) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch cfg.DBDriver {
	case "postgres":
		if cfg.DatabaseURL == "" {
			return nil, fmt.Errorf("DATABASE_URL is required for the postgres driver")
		}
		dialector = postgres.Open(cfg.DatabaseURL)
	case "sqlite":
		dialector = sqlite.Open(cfg.SQLitePath)
	default:
		return nil, fmt.Errorf("unknown db driver %q", cfg.DBDriver)
	}

	gdb, err := gorm.Open(dialector, &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := gdb.AutoMigrate(
		&gormmodels.AppUser{},
		&gormmodels.UserVehicle{},
		&gormmodels.UserConsent{},
		&gormmodels.ConsentEvent{},
	); err != nil {
		return nil, fmt.Errorf("failed to migrate schema: %w", err)
	}

	logging.Info("database ready", "driver", cfg.DBDriver)
	return gdb, nil
}

// InitSQLX opens the plain SQL connection the health check pings. It
// retries so the server survives a database that comes up a bit later.
func InitSQLX(cfg config.Config) (*sqlx.DB, error) {
	driver := "sqlite3"
	dsn := cfg.SQLitePath
	if cfg.DBDriver == "postgres" {
		driver = "postgres"
		dsn = cfg.DatabaseURL
	}

	var lastErr error
	for attempt := 1; attempt <= 10; attempt++ {
		conn, err := sqlx.Connect(driver, dsn)
		if err == nil {
			return conn, nil
		}
		lastErr = err
		logging.Warn("database connection failed, retrying",
			"attempt", attempt,
			"error", err,
		)
		time.Sleep(500 * time.Millisecond)
	}
	return nil, fmt.Errorf("failed to connect to database after retries: %w", lastErr)
}
