package testutil

import (
	"context"
	"database/sql"
	"io"
	"log/slog"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/thenoetrevino/taskman/internal/database"
	"github.com/thenoetrevino/taskman/internal/models"
	"github.com/thenoetrevino/taskman/internal/server"
)

// TestAPI is a reference task API running on an in-memory database
type TestAPI struct {
	Server *server.Server
	HTTP   *httptest.Server
	Repo   database.TaskRepository
}

// BaseURL is the API root clients should be configured with
func (a *TestAPI) BaseURL() string {
	return a.HTTP.URL + "/api"
}

// SetupTestAPI starts the reference API behind httptest.
// Cleanup is automatic via t.Cleanup().
func SetupTestAPI(t *testing.T) *TestAPI {
	t.Helper()
	gin.SetMode(gin.TestMode)

	repo := database.NewTaskRepository(SetupTestDB(t))
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	srv := server.NewServer("", repo, logger)

	ts := httptest.NewServer(srv.Handler())
	t.Cleanup(ts.Close)

	return &TestAPI{Server: srv, HTTP: ts, Repo: repo}
}

// SeedTask stores a task directly, bypassing HTTP
func (a *TestAPI) SeedTask(t *testing.T, title string, status models.Status, priority models.Priority) models.Task {
	t.Helper()
	task := models.NewDraft()
	task.Title = title
	task.Status = status
	task.Priority = priority

	created, err := a.Repo.Create(context.Background(), task)
	if err != nil {
		t.Fatalf("Failed to seed task %q: %v", title, err)
	}
	return created
}

// SetupTestDB creates an in-memory database with migrations applied
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := database.InitDB(context.Background(), database.MemoryPath)
	if err != nil {
		t.Fatalf("Failed to create test database: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	return db
}
