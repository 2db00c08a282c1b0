package state

import (
	"slices"

	"github.com/thenoetrevino/taskman/internal/models"
)

// Session holds the task screen state. It changes only through its
// transition methods; each returns the Effect the host must run, or nil.
type Session struct {
	tasks []models.Task
	view  View

	// pendingDelete is the ID awaiting a yes/no answer
	pendingDelete string

	saving   bool
	removing string

	// nextSeq numbers list loads; appliedSeq is the newest one applied
	nextSeq    uint64
	appliedSeq uint64
	settledSeq uint64

	notice string
}

// NewSession creates an idle session with an empty task list
func NewSession() *Session {
	return &Session{
		tasks: []models.Task{},
		view:  Idle{},
	}
}

// ---------------------------------------------------------------------------
// Accessors
// ---------------------------------------------------------------------------

// Tasks returns a copy of the current list
func (s *Session) Tasks() []models.Task {
	out := make([]models.Task, len(s.tasks))
	for i, t := range s.tasks {
		out[i] = t.Clone()
	}
	return out
}

// TaskByID finds a task in the current list
func (s *Session) TaskByID(id string) (models.Task, bool) {
	idx := slices.IndexFunc(s.tasks, func(t models.Task) bool { return t.ID == id })
	if idx < 0 {
		return models.Task{}, false
	}
	return s.tasks[idx].Clone(), true
}

// View returns the active view variant
func (s *Session) View() View {
	return s.view
}

// ShowForm reports whether the add or edit form is open
func (s *Session) ShowForm() bool {
	_, idle := s.view.(Idle)
	return !idle
}

// IsEditing reports whether the open form edits an existing task
func (s *Session) IsEditing() bool {
	_, ok := s.view.(Editing)
	return ok
}

// CurrentTask is the form's draft, or an empty draft when no form is open
func (s *Session) CurrentTask() models.Task {
	switch v := s.view.(type) {
	case Adding:
		return v.Draft.Clone()
	case Editing:
		return v.Draft()
	default:
		return models.NewDraft()
	}
}

// PendingDelete returns the ID awaiting confirmation
func (s *Session) PendingDelete() (string, bool) {
	return s.pendingDelete, s.pendingDelete != ""
}

// Saving reports whether a create or update is in flight
func (s *Session) Saving() bool {
	return s.saving
}

// Loading reports whether the newest list load has not completed
func (s *Session) Loading() bool {
	return s.settledSeq < s.nextSeq
}

// Notice is the last failure shown to the user
func (s *Session) Notice() string {
	return s.notice
}

// ClearNotice dismisses the current notice
func (s *Session) ClearNotice() {
	s.notice = ""
}

// ---------------------------------------------------------------------------
// User transitions
// ---------------------------------------------------------------------------

// Start loads the task list
func (s *Session) Start() Effect {
	return s.Reload()
}

// Reload requests a fresh list
func (s *Session) Reload() Effect {
	s.nextSeq++
	return LoadTasks{Seq: s.nextSeq}
}

// ShowAddForm opens the form on an empty draft
func (s *Session) ShowAddForm() Effect {
	s.view = Adding{Draft: models.NewDraft()}
	return nil
}

// EditTask opens the form on a copy of task. A task without an ID
// cannot be updated, so it opens as an add instead.
func (s *Session) EditTask(task models.Task) Effect {
	editing, err := NewEditing(task)
	if err != nil {
		draft := task.Clone()
		draft.CreatedAt, draft.UpdatedAt = nil, nil
		s.view = Adding{Draft: draft}
		return nil
	}
	s.view = editing
	return nil
}

// UpdateDraft applies fn to the open draft
func (s *Session) UpdateDraft(fn func(*models.Task)) {
	switch v := s.view.(type) {
	case Adding:
		fn(&v.Draft)
		s.view = v
	case Editing:
		fn(&v.draft)
		s.view = v
	}
}

// SaveTask submits the draft. Only one save may be in flight.
func (s *Session) SaveTask() Effect {
	if s.saving {
		return nil
	}

	switch v := s.view.(type) {
	case Adding:
		s.saving = true
		return CreateTask{Draft: v.Draft.Clone()}
	case Editing:
		s.saving = true
		return UpdateTask{ID: v.ID(), Task: v.Draft()}
	default:
		return nil
	}
}

// CancelEdit closes the form and discards the draft
func (s *Session) CancelEdit() Effect {
	s.view = Idle{}
	return nil
}

// RequestDelete asks the user to confirm deleting id
func (s *Session) RequestDelete(id string) Effect {
	if id == "" {
		return nil
	}
	s.pendingDelete = id
	return nil
}

// ConfirmDelete answers the pending request. Declining changes nothing else.
func (s *Session) ConfirmDelete(yes bool) Effect {
	id := s.pendingDelete
	s.pendingDelete = ""
	if !yes || id == "" || s.removing != "" {
		return nil
	}
	s.removing = id
	return RemoveTask{ID: id}
}

// ---------------------------------------------------------------------------
// Completions
// ---------------------------------------------------------------------------

// TasksLoaded applies the result of LoadTasks{seq}. Results older than
// one already applied are dropped.
func (s *Session) TasksLoaded(seq uint64, resp *models.APIResponse[[]models.Task], err error) Effect {
	if seq > s.settledSeq {
		s.settledSeq = seq
	}
	if seq < s.appliedSeq {
		return nil
	}

	if msg, failed := failure(resp, err); failed {
		s.notice = msg
		return nil
	}

	s.appliedSeq = seq
	s.tasks = make([]models.Task, 0, len(resp.Data))
	for _, t := range resp.Data {
		s.tasks = append(s.tasks, t.Clone())
	}
	return nil
}

// TaskSaved applies the result of CreateTask or UpdateTask. On success
// the form closes and the list reloads; on failure the form stays open.
func (s *Session) TaskSaved(resp *models.APIResponse[models.Task], err error) Effect {
	s.saving = false

	if msg, failed := failure(resp, err); failed {
		s.notice = msg
		return nil
	}

	s.view = Idle{}
	return s.Reload()
}

// TaskRemoved applies the result of RemoveTask{id}
func (s *Session) TaskRemoved(id string, resp *models.APIResponse[any], err error) Effect {
	if s.removing == id {
		s.removing = ""
	}

	if msg, failed := failure(resp, err); failed {
		s.notice = msg
		return nil
	}
	return s.Reload()
}

// failure extracts the user-facing message of a failed call
func failure[T any](resp *models.APIResponse[T], err error) (string, bool) {
	if err != nil {
		return err.Error(), true
	}
	if resp == nil || !resp.Success {
		return resp.Failure(), true
	}
	return "", false
}
