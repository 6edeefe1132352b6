// Package dbtest opens throwaway sqlite databases for package tests.
package dbtest

import (
	"context"
	"fmt"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/jmoiron/sqlx"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"pisos-tracker/internal/db"
)

var seq atomic.Int64

// Open returns an isolated in-memory database with the pisos schema in place.
func Open(t *testing.T) *gorm.DB {
	t.Helper()

	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	dsn := fmt.Sprintf("file:%s_%d?mode=memory&cache=shared", name, seq.Add(1))

	orm, err := gorm.Open(sqlite.New(sqlite.Config{DriverName: db.SQLiteDriverName, DSN: dsn}), &gorm.Config{Logger: logger.Discard})
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	sqlDB, err := orm.DB()
	if err != nil {
		t.Fatalf("Failed to get sql.DB: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	if err := db.EnsureSchema(context.Background(), orm); err != nil {
		t.Fatalf("Failed to ensure schema: %v", err)
	}
	return orm
}

// SQLX wraps the same connection for the statistics repository.
func SQLX(t *testing.T, orm *gorm.DB) *sqlx.DB {
	t.Helper()
	x, err := db.WrapSQLX(orm, "sqlite3")
	if err != nil {
		t.Fatalf("Failed to wrap sqlx: %v", err)
	}
	return x
}
