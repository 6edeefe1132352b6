package db

import (
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"gorm.io/gorm"

	"pisos-tracker/internal/config"
)

// OpenSQLX returns the sqlx handle used by the statistics repository.
// For postgres it dials its own lib/pq pool with retries; for sqlite it
// shares the GORM connection so both see the same database.
func OpenSQLX(cfg config.DatabaseConfig, orm *gorm.DB) (*sqlx.DB, error) {
	if cfg.Driver == "sqlite" {
		return WrapSQLX(orm, "sqlite3")
	}
	return ConnectPostgres(cfg.URL, cfg.ConnectRetries)
}

// ConnectPostgres dials postgres through lib/pq, retrying every 500ms.
func ConnectPostgres(dsn string, retries int) (*sqlx.DB, error) {
	if retries < 1 {
		retries = 1
	}

	var (
		db  *sqlx.DB
		err error
	)
	for i := 0; i < retries; i++ {
		db, err = sqlx.Connect("postgres", dsn)
		if err == nil {
			return db, nil
		}
		time.Sleep(500 * time.Millisecond)
	}
	return nil, fmt.Errorf("postgres unreachable after %d attempts: %w", retries, err)
}

// WrapSQLX exposes GORM's underlying pool through sqlx.
func WrapSQLX(orm *gorm.DB, driverName string) (*sqlx.DB, error) {
	sqlDB, err := orm.DB()
	if err != nil {
		return nil, err
	}
	return sqlx.NewDb(sqlDB, driverName), nil
}
