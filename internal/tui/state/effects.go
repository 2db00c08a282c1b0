package state

import "github.com/thenoetrevino/taskman/internal/models"

// Effect is a request the session hands to its host. The host performs
// it against the task API and reports back through the matching
// completion method (TasksLoaded, TaskSaved, TaskRemoved).
type Effect interface {
	isEffect()
}

// LoadTasks asks for the full task list. Seq orders overlapping loads.
type LoadTasks struct {
	Seq uint64
}

// CreateTask asks the API to create Draft.
type CreateTask struct {
	Draft models.Task
}

// UpdateTask asks the API to replace task ID with Task.
type UpdateTask struct {
	ID   string
	Task models.Task
}

// RemoveTask asks the API to delete task ID.
type RemoveTask struct {
	ID string
}

func (LoadTasks) isEffect()  {}
func (CreateTask) isEffect() {}
func (UpdateTask) isEffect() {}
func (RemoveTask) isEffect() {}
