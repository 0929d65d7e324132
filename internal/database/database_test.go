package database_test

import (
	"path/filepath"
	"testing"

	"github.com/isdelr/md-editor-be/internal/database"
)

func TestNew(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	db, err := database.New(dbPath, 5, 10)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		t.Fatalf("ping: %v", err)
	}

	// Verify foreign keys are enabled.
	var fkEnabled int
	if err := db.QueryRow("PRAGMA foreign_keys").Scan(&fkEnabled); err != nil {
		t.Fatalf("check foreign_keys: %v", err)
	}
	if fkEnabled != 1 {
		t.Fatalf("expected foreign_keys=1, got %d", fkEnabled)
	}
}

func TestMigrate(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	db, err := database.New(dbPath, 5, 10)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defer db.Close()

	if err := database.Migrate(db); err != nil {
		t.Fatalf("Migrate: %v", err)
	}

	// Verify the users table exists by inserting a row.
	if _, err := db.Exec(
		"INSERT INTO users (username, password_hash) VALUES (?, ?)",
		"alice", "hash123",
	); err != nil {
		t.Fatalf("insert into users: %v", err)
	}
}

func TestMigrateIdempotent(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	db, err := database.New(dbPath, 5, 10)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defer db.Close()

	if err := database.Migrate(db); err != nil {
		t.Fatalf("first Migrate: %v", err)
	}
	if err := database.Migrate(db); err != nil {
		t.Fatalf("second Migrate (idempotent): %v", err)
	}
}

func TestForeignKeyEnforced(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	db, err := database.New(dbPath, 5, 10)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defer db.Close()

	if err := database.Migrate(db); err != nil {
		t.Fatalf("Migrate: %v", err)
	}

	// A post whose owner does not exist must be rejected.
	_, err = db.Exec(
		"INSERT INTO posts (title, content, user_id, created_at, updated_at) VALUES (?, ?, ?, CURRENT_TIMESTAMP, CURRENT_TIMESTAMP)",
		"orphan", "body", 42,
	)
	if err == nil {
		t.Fatal("expected foreign key violation for missing owner")
	}
}
