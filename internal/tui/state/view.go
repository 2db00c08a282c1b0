package state

import (
	"github.com/thenoetrevino/taskman/internal/client"
	"github.com/thenoetrevino/taskman/internal/models"
)

// View is what the task screen is showing: the list, the add form,
// or the edit form. Exactly one variant is active at a time.
type View interface {
	isView()
}

// Idle is the plain task list with no form open.
type Idle struct{}

// Adding is the form for a task that does not exist yet.
type Adding struct {
	Draft models.Task
}

// Editing is the form for an existing task. Build it with NewEditing
// so the original always carries an identifier.
type Editing struct {
	original models.Task
	draft    models.Task
}

func (Idle) isView()    {}
func (Adding) isView()  {}
func (Editing) isView() {}

// NewEditing starts editing a copy of task
func NewEditing(task models.Task) (Editing, error) {
	if task.ID == "" {
		return Editing{}, client.ErrMissingID
	}
	return Editing{original: task.Clone(), draft: task.Clone()}, nil
}

// Original is the task as it was when editing began
func (e Editing) Original() models.Task {
	return e.original.Clone()
}

// Draft is the edited copy
func (e Editing) Draft() models.Task {
	return e.draft.Clone()
}

// ID of the task being edited
func (e Editing) ID() string {
	return e.original.ID
}
