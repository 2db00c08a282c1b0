package state

import (
	"strings"

	"charm.land/huh/v2"

	"github.com/thenoetrevino/taskman/internal/models"
)

// FormState holds the huh form instance and the field values it binds to.
// Fields are exported so the form can take pointers to them.
type FormState struct {
	TaskForm *huh.Form

	Title       string
	Description string
	Status      models.Status
	Priority    models.Priority
	DueDate     string
}

// NewFormState creates an empty FormState.
func NewFormState() *FormState {
	return &FormState{}
}

// LoadFrom copies task into the form bindings. Status and priority values
// this client does not know are kept as they are; only missing ones get
// the draft defaults.
func (s *FormState) LoadFrom(task models.Task) {
	s.Title = task.Title
	s.Description = task.Description
	s.Status = task.Status
	s.Priority = task.Priority
	s.DueDate = models.DateOnly(task.DueDate)

	if s.Status == "" {
		s.Status = models.StatusPending
	}
	if s.Priority == "" {
		s.Priority = models.PriorityMedium
	}
}

// ApplyTo writes the form bindings onto task.
func (s *FormState) ApplyTo(task *models.Task) {
	task.Title = strings.TrimSpace(s.Title)
	task.Description = s.Description
	task.Status = s.Status
	task.Priority = s.Priority
	task.DueDate = strings.TrimSpace(s.DueDate)
}

// IsActive returns true if a task form is currently open.
func (s *FormState) IsActive() bool {
	return s.TaskForm != nil
}

// Clear resets the form and its bindings.
func (s *FormState) Clear() {
	*s = FormState{}
}
