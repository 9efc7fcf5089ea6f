// Package dbtest opens throwaway in-memory SQLite databases for tests.
package dbtest

import (
	"context"
	"testing"

	"github.com/jmoiron/sqlx"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"mtfuji-paragliding/fujipsystem/internal/db"
)

// Open returns a migrated in-memory database. A single connection keeps every query
// on the same in-memory database.
func Open(t *testing.T) *gorm.DB {
	t.Helper()

	gdb, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}

	sqlDB, err := gdb.DB()
	if err != nil {
		t.Fatalf("Failed to get sql.DB: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	if err := db.AutoMigrate(context.Background(), gdb); err != nil {
		t.Fatalf("Failed to migrate: %v", err)
	}
	return gdb
}

// OpenWithSQLX returns the GORM handle plus an sqlx view of the same database.
func OpenWithSQLX(t *testing.T) (*gorm.DB, *sqlx.DB) {
	t.Helper()

	gdb := Open(t)
	sqlDB, err := gdb.DB()
	if err != nil {
		t.Fatalf("Failed to get sql.DB: %v", err)
	}
	return gdb, sqlx.NewDb(sqlDB, "sqlite3")
}

// Seed inserts the given rows, failing the test on error.
func Seed(t *testing.T, gdb *gorm.DB, rows ...any) {
	t.Helper()
	for _, row := range rows {
		if err := gdb.Create(row).Error; err != nil {
			t.Fatalf("Failed to seed %T: %v", row, err)
		}
	}
}
