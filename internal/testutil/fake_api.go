package testutil

import (
	"context"
	"fmt"
	"sync"

	"github.com/thenoetrevino/taskman/internal/models"
)

// Call records one request made to a FakeTaskAPI
type Call struct {
	Method string
	ID     string
	Task   models.Task
}

// FakeTaskAPI is an in-memory task API with call recording and
// failure injection. It satisfies the client's method set.
type FakeTaskAPI struct {
	mu     sync.Mutex
	tasks  []models.Task
	calls  []Call
	nextID int

	// Err, when set, is returned by every call instead of a response
	Err error
	// FailWith, when set, makes every call answer success=false with this error
	FailWith string
}

// NewFakeTaskAPI creates a fake seeded with tasks
func NewFakeTaskAPI(tasks ...models.Task) *FakeTaskAPI {
	f := &FakeTaskAPI{}
	for _, t := range tasks {
		f.tasks = append(f.tasks, t.Clone())
	}
	f.nextID = len(tasks)
	return f
}

// Calls returns every recorded call in order
func (f *FakeTaskAPI) Calls() []Call {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]Call(nil), f.calls...)
}

// CallsTo returns the recorded calls of one method
func (f *FakeTaskAPI) CallsTo(method string) []Call {
	var out []Call
	for _, c := range f.Calls() {
		if c.Method == method {
			out = append(out, c)
		}
	}
	return out
}

// Stored returns a copy of the stored tasks
func (f *FakeTaskAPI) Stored() []models.Task {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]models.Task, len(f.tasks))
	for i, t := range f.tasks {
		out[i] = t.Clone()
	}
	return out
}

func (f *FakeTaskAPI) record(c Call) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, c)
	return f.FailWith, f.Err
}

func (f *FakeTaskAPI) index(id string) int {
	for i, t := range f.tasks {
		if t.ID == id {
			return i
		}
	}
	return -1
}

func (f *FakeTaskAPI) List(ctx context.Context) (*models.APIResponse[[]models.Task], error) {
	if fail, err := f.record(Call{Method: "List"}); err != nil {
		return nil, err
	} else if fail != "" {
		return &models.APIResponse[[]models.Task]{Error: fail}, nil
	}
	resp := models.OK(f.Stored())
	return &resp, nil
}

func (f *FakeTaskAPI) Get(ctx context.Context, id string) (*models.APIResponse[models.Task], error) {
	if fail, err := f.record(Call{Method: "Get", ID: id}); err != nil {
		return nil, err
	} else if fail != "" {
		return &models.APIResponse[models.Task]{Error: fail}, nil
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	i := f.index(id)
	if i < 0 {
		return &models.APIResponse[models.Task]{Error: "Task not found"}, nil
	}
	resp := models.OK(f.tasks[i].Clone())
	return &resp, nil
}

func (f *FakeTaskAPI) Create(ctx context.Context, task models.Task) (*models.APIResponse[models.Task], error) {
	if fail, err := f.record(Call{Method: "Create", Task: task.Clone()}); err != nil {
		return nil, err
	} else if fail != "" {
		return &models.APIResponse[models.Task]{Error: fail}, nil
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	f.nextID++
	created := task.Editable()
	created.ID = fmt.Sprintf("%d", f.nextID)
	f.tasks = append(f.tasks, created)

	resp := models.OK(created.Clone())
	return &resp, nil
}

func (f *FakeTaskAPI) Update(ctx context.Context, id string, task models.Task) (*models.APIResponse[models.Task], error) {
	if fail, err := f.record(Call{Method: "Update", ID: id, Task: task.Clone()}); err != nil {
		return nil, err
	} else if fail != "" {
		return &models.APIResponse[models.Task]{Error: fail}, nil
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	i := f.index(id)
	if i < 0 {
		return &models.APIResponse[models.Task]{Error: "Task not found"}, nil
	}
	updated := task.Editable()
	updated.ID = id
	f.tasks[i] = updated

	resp := models.OK(updated.Clone())
	return &resp, nil
}

func (f *FakeTaskAPI) Remove(ctx context.Context, id string) (*models.APIResponse[any], error) {
	if fail, err := f.record(Call{Method: "Remove", ID: id}); err != nil {
		return nil, err
	} else if fail != "" {
		return &models.APIResponse[any]{Error: fail}, nil
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	i := f.index(id)
	if i < 0 {
		return &models.APIResponse[any]{Error: "Task not found"}, nil
	}
	f.tasks = append(f.tasks[:i], f.tasks[i+1:]...)
	return &models.APIResponse[any]{Success: true, Message: "Task deleted successfully"}, nil
}
