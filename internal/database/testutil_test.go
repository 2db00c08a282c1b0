package database

import (
	"context"
	"database/sql"
	"testing"
	"time"
)

// ============================================================================
// DATABASE SETUP HELPERS
// ============================================================================

// setupTestDB creates an in-memory database with migrations applied
func setupTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := InitDB(context.Background(), MemoryPath)
	if err != nil {
		t.Fatalf("Failed to create test database: %v", err)
	}
	t.Cleanup(func() {
		_ = db.Close()
	})
	return db
}

// setupTestRepo returns a repository whose clock advances one second per call
func setupTestRepo(t *testing.T) *taskRepository {
	t.Helper()
	base := time.Date(2025, 1, 1, 9, 0, 0, 0, time.UTC)
	tick := 0
	return &taskRepository{
		db: setupTestDB(t),
		now: func() time.Time {
			tick++
			return base.Add(time.Duration(tick) * time.Second)
		},
	}
}
