package db_test

import (
	"context"
	"fmt"
	"testing"

	dbfs "github.com/garnizeh/askhub/db"
	"github.com/garnizeh/askhub/internal/db"
)

func openTestDB(t *testing.T) (*db.DB, func()) {
	t.Helper()
	ctx := context.Background()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	d, err := db.New(ctx, dsn, nil)
	if err != nil {
		t.Fatalf("db.New: %v", err)
	}
	return d, func() { d.Close() }
}

func TestMigrate_CreatesSchema(t *testing.T) {
	d, cleanup := openTestDB(t)
	defer cleanup()
	ctx := context.Background()

	if err := db.Migrate(ctx, d, dbfs.Migrations); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	for _, table := range []string{"companies", "users", "questions", "answers", "comments"} {
		var name string
		row := d.QueryRow(ctx, `SELECT name FROM sqlite_master WHERE type='table' AND name = ?`, table)
		if err := row.Scan(&name); err != nil {
			t.Fatalf("expected table %s to exist: %v", table, err)
		}
	}
}

func TestMigrate_Idempotent(t *testing.T) {
	d, cleanup := openTestDB(t)
	defer cleanup()
	ctx := context.Background()

	if err := db.Migrate(ctx, d, dbfs.Migrations); err != nil {
		t.Fatalf("first migrate: %v", err)
	}
	if err := db.Migrate(ctx, d, dbfs.Migrations); err != nil {
		t.Fatalf("second migrate: %v", err)
	}

	var applied int
	row := d.QueryRow(ctx, `SELECT COUNT(*) FROM schema_migrations`)
	if err := row.Scan(&applied); err != nil {
		t.Fatalf("count migrations: %v", err)
	}
	if applied != 1 {
		t.Fatalf("expected exactly 1 recorded migration, got %d", applied)
	}
}
