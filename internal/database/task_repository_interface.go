package database

import (
	"context"
	"errors"

	"github.com/thenoetrevino/taskman/internal/models"
)

// ErrTaskNotFound is returned when no task has the requested ID
var ErrTaskNotFound = errors.New("task not found")

// TaskRepository persists tasks for the reference API
type TaskRepository interface {
	// List returns every task in insertion order
	List(ctx context.Context) ([]models.Task, error)

	// Get returns one task or ErrTaskNotFound
	Get(ctx context.Context, id string) (models.Task, error)

	// Create assigns an ID and timestamps and stores the task
	Create(ctx context.Context, task models.Task) (models.Task, error)

	// Replace overwrites every editable field, keeping created_at
	Replace(ctx context.Context, id string, task models.Task) (models.Task, error)

	// Delete removes the task or returns ErrTaskNotFound
	Delete(ctx context.Context, id string) error
}
