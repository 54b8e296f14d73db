// Package testutil provides the shared harness for repository tests that run
// against a real Postgres instance. Tests are skipped unless PENELOPE_TEST_DSN
// points at a disposable database; every test runs inside a transaction that
// is rolled back on cleanup, so the database stays empty between runs.
package testutil

import (
	"os"
	"testing"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"

	domain "github.com/penelope-tex/penelope-backend/internal/domain/catalog"
	"github.com/penelope-tex/penelope-backend/internal/platform/logger"
)

func Logger(t *testing.T) *logger.Logger {
	t.Helper()
	log, err := logger.New("development")
	if err != nil {
		t.Fatalf("logger.New: %v", err)
	}
	t.Cleanup(func() {
		log.Sync()
	})
	return log
}

func DB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := os.Getenv("PENELOPE_TEST_DSN")
	if dsn == "" {
		t.Skip("set PENELOPE_TEST_DSN to run Postgres repository tests")
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: gormLogger.Default.LogMode(gormLogger.Silent),
	})
	if err != nil {
		t.Fatalf("open postgres: %v", err)
	}
	if err := db.AutoMigrate(
		&domain.Woven{},
		&domain.Variant{},
		&domain.Stock{},
		&domain.PantoneColor{},
	); err != nil {
		t.Fatalf("automigrate: %v", err)
	}
	return db
}

func Tx(t *testing.T, db *gorm.DB) *gorm.DB {
	t.Helper()
	tx := db.Begin()
	if tx.Error != nil {
		t.Fatalf("begin tx: %v", tx.Error)
	}
	t.Cleanup(func() {
		tx.Rollback()
	})
	return tx
}

func StrPtr(s string) *string { return &s }

func FloatPtr(f float64) *float64 { return &f }
