// Package testutil provides an in-memory database for tests, so the
// repository and service layers run against the real GORM stack
// without a Postgres instance.
package testutil

import (
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/mkowalczyk/fittracker/internal/models"
)

// NewDB opens a private in-memory SQLite database with foreign keys
// enforced and the users/trainings schema migrated. The pool is capped
// at one connection; every extra connection would see its own empty
// memory database.
func NewDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:?_foreign_keys=on"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("failed to get sql.DB: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	if err := db.AutoMigrate(&models.User{}, &models.Training{}); err != nil {
		t.Fatalf("failed to migrate test schema: %v", err)
	}
	return db
}
