package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/thenoetrevino/taskman/internal/models"
)

const selectTaskColumns = `id, title, description, status, priority, due_date, created_at, updated_at`

// taskRepository is the SQLite implementation of TaskRepository
type taskRepository struct {
	db  *sql.DB
	now func() time.Time
}

// NewTaskRepository wraps an initialized database
func NewTaskRepository(db *sql.DB) TaskRepository {
	return &taskRepository{db: db, now: time.Now}
}

// List returns every task in insertion order
func (r *taskRepository) List(ctx context.Context) ([]models.Task, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+selectTaskColumns+` FROM tasks ORDER BY rowid`)
	if err != nil {
		return nil, fmt.Errorf("failed to query tasks: %w", err)
	}
	defer rows.Close()

	tasks := []models.Task{}
	for rows.Next() {
		task, err := scanTask(rows)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, task)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate tasks: %w", err)
	}
	return tasks, nil
}

// Get returns one task or ErrTaskNotFound
func (r *taskRepository) Get(ctx context.Context, id string) (models.Task, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+selectTaskColumns+` FROM tasks WHERE id = ?`, id)
	task, err := scanTask(row)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Task{}, ErrTaskNotFound
	}
	return task, err
}

// Create assigns an ID and timestamps and stores the task
func (r *taskRepository) Create(ctx context.Context, task models.Task) (models.Task, error) {
	now := r.now()
	stored := task.Editable()
	stored.ID = uuid.NewString()
	stored.CreatedAt = &now
	stored.UpdatedAt = &now
	if stored.Status == "" {
		stored.Status = models.StatusPending
	}
	if stored.Priority == "" {
		stored.Priority = models.PriorityMedium
	}

	_, err := r.db.ExecContext(ctx,
		`INSERT INTO tasks (id, title, description, status, priority, due_date, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		stored.ID,
		stored.Title,
		stored.Description,
		string(stored.Status),
		string(stored.Priority),
		stored.DueDate,
		formatTimestamp(now),
		formatTimestamp(now),
	)
	if err != nil {
		return models.Task{}, fmt.Errorf("failed to insert task: %w", err)
	}
	return r.Get(ctx, stored.ID)
}

// Replace overwrites every editable field, keeping created_at
func (r *taskRepository) Replace(ctx context.Context, id string, task models.Task) (models.Task, error) {
	err := withTx(ctx, r.db, func(tx *sql.Tx) error {
		res, err := tx.ExecContext(ctx,
			`UPDATE tasks
			 SET title = ?, description = ?, status = ?, priority = ?, due_date = ?, updated_at = ?
			 WHERE id = ?`,
			task.Title,
			task.Description,
			string(task.Status),
			string(task.Priority),
			task.DueDate,
			formatTimestamp(r.now()),
			id,
		)
		if err != nil {
			return fmt.Errorf("failed to update task: %w", err)
		}
		n, err := res.RowsAffected()
		if err != nil {
			return fmt.Errorf("failed to read affected rows: %w", err)
		}
		if n == 0 {
			return ErrTaskNotFound
		}
		return nil
	})
	if err != nil {
		return models.Task{}, err
	}
	return r.Get(ctx, id)
}

// Delete removes the task or returns ErrTaskNotFound
func (r *taskRepository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM tasks WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete task: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if n == 0 {
		return ErrTaskNotFound
	}
	return nil
}

// rowScanner is satisfied by *sql.Row and *sql.Rows
type rowScanner interface {
	Scan(dest ...any) error
}

func scanTask(row rowScanner) (models.Task, error) {
	var (
		task               models.Task
		status, priority   string
		createdAt, updated string
	)
	if err := row.Scan(
		&task.ID,
		&task.Title,
		&task.Description,
		&status,
		&priority,
		&task.DueDate,
		&createdAt,
		&updated,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Task{}, err
		}
		return models.Task{}, fmt.Errorf("failed to scan task: %w", err)
	}
	task.Status = models.Status(status)
	task.Priority = models.Priority(priority)

	var err error
	if task.CreatedAt, err = parseTimestamp(createdAt); err != nil {
		return models.Task{}, err
	}
	if task.UpdatedAt, err = parseTimestamp(updated); err != nil {
		return models.Task{}, err
	}
	return task, nil
}
