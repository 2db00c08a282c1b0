package models

import (
	"strings"
	"time"
)

// DueDateLayout is the wire layout of Task.DueDate (ISO calendar date)
const DueDateLayout = "2006-01-02"

// Task represents a single task record as exchanged with the task API.
// A task without an ID is a draft that only exists client-side.
type Task struct {
	ID          string     `json:"_id,omitempty"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Status      Status     `json:"status"`
	Priority    Priority   `json:"priority"`
	DueDate     string     `json:"dueDate,omitempty"`
	CreatedAt   *time.Time `json:"createdAt,omitempty"`
	UpdatedAt   *time.Time `json:"updatedAt,omitempty"`
}

// NewDraft returns the empty draft used when the add form is opened
func NewDraft() Task {
	return Task{
		Title:       "",
		Description: "",
		Status:      StatusPending,
		Priority:    PriorityMedium,
		DueDate:     "",
	}
}

// IsDraft reports whether the task has not been persisted yet
func (t Task) IsDraft() bool {
	return t.ID == ""
}

// IsPersisted reports whether the server has assigned an identifier
func (t Task) IsPersisted() bool {
	return t.ID != ""
}

// GetID returns the server identifier, empty for drafts
func (t Task) GetID() string {
	return t.ID
}

// Clone returns a copy of the task that shares no memory with t
func (t Task) Clone() Task {
	c := t
	if t.CreatedAt != nil {
		created := *t.CreatedAt
		c.CreatedAt = &created
	}
	if t.UpdatedAt != nil {
		updated := *t.UpdatedAt
		c.UpdatedAt = &updated
	}
	return c
}

// Editable returns only the client-editable fields, used as the
// full-replace body of an update.
func (t Task) Editable() Task {
	return Task{
		Title:       t.Title,
		Description: t.Description,
		Status:      t.Status,
		Priority:    t.Priority,
		DueDate:     t.DueDate,
	}
}

// TaskBody is the request body of create and update. The due date is
// always present so clearing it replaces the stored value.
type TaskBody struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Status      Status   `json:"status"`
	Priority    Priority `json:"priority"`
	DueDate     string   `json:"dueDate"`
}

// Body returns the wire body carrying the editable fields of t
func (t Task) Body() TaskBody {
	return TaskBody{
		Title:       t.Title,
		Description: t.Description,
		Status:      t.Status,
		Priority:    t.Priority,
		DueDate:     t.DueDate,
	}
}

// DateOnly reduces a timestamp due date to its calendar date. Values
// that are neither YYYY-MM-DD nor RFC 3339 come back unchanged.
func DateOnly(s string) string {
	s = strings.TrimSpace(s)
	if ValidDueDate(s) {
		return s
	}
	ts, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return s
	}
	return ts.Format(DueDateLayout)
}

// ValidDueDate reports whether s is empty or a YYYY-MM-DD date
func ValidDueDate(s string) bool {
	if s == "" {
		return true
	}
	_, err := time.Parse(DueDateLayout, s)
	return err == nil
}
