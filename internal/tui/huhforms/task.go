// Package huhforms builds the huh forms used by the TUI and CLI.
package huhforms

import (
	"errors"
	"strings"

	"charm.land/huh/v2"

	"github.com/thenoetrevino/taskman/internal/models"
)

// Field keys
const (
	KeyTitle       = "title"
	KeyDescription = "description"
	KeyStatus      = "status"
	KeyPriority    = "priority"
	KeyDueDate     = "dueDate"
)

// TaskFields are the values a task form edits in place
type TaskFields struct {
	Title       *string
	Description *string
	Status      *models.Status
	Priority    *models.Priority
	DueDate     *string
}

// CreateTaskForm creates a huh form for adding/editing a task.
// The form uses pointers to update values in place.
func CreateTaskForm(fields TaskFields, descriptionLines int) *huh.Form {
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Key(KeyTitle).
				Title("Title").
				Placeholder("Enter task title...").
				CharLimit(255).
				Validate(ValidateTitle).
				Value(fields.Title),

			huh.NewText().
				Key(KeyDescription).
				Title("Description").
				Placeholder("Markdown is supported").
				CharLimit(5000).
				Lines(max(descriptionLines, 1)).
				Value(fields.Description),

			huh.NewSelect[models.Status]().
				Key(KeyStatus).
				Title("Status").
				Options(StatusOptions(*fields.Status)...).
				Value(fields.Status),

			huh.NewSelect[models.Priority]().
				Key(KeyPriority).
				Title("Priority").
				Options(PriorityOptions(*fields.Priority)...).
				Value(fields.Priority),

			huh.NewInput().
				Key(KeyDueDate).
				Title("Due date").
				Placeholder("YYYY-MM-DD (optional)").
				Validate(ValidateDueDate).
				Value(fields.DueDate),
		),
	)
	return form.WithKeyMap(CreateKeyMapWithShiftEnter()).WithShowHelp(false)
}

// StatusOptions lists every status in display order. A current value the
// client does not know is appended so selecting nothing keeps it.
func StatusOptions(current models.Status) []huh.Option[models.Status] {
	opts := make([]huh.Option[models.Status], 0, len(models.AllStatuses())+1)
	for _, s := range models.AllStatuses() {
		opts = append(opts, huh.NewOption(s.Label(), s))
	}
	if current != "" && !current.IsValid() {
		opts = append(opts, huh.NewOption(string(current), current))
	}
	return opts
}

// PriorityOptions lists every priority in display order, plus an unknown
// current value.
func PriorityOptions(current models.Priority) []huh.Option[models.Priority] {
	opts := make([]huh.Option[models.Priority], 0, len(models.AllPriorities())+1)
	for _, p := range models.AllPriorities() {
		opts = append(opts, huh.NewOption(p.Label(), p))
	}
	if current != "" && !current.IsValid() {
		opts = append(opts, huh.NewOption(string(current), current))
	}
	return opts
}

// ValidateTitle rejects blank titles
func ValidateTitle(s string) error {
	if strings.TrimSpace(s) == "" {
		return errors.New("title is required")
	}
	return nil
}

// ValidateDueDate accepts an empty value or a YYYY-MM-DD date
func ValidateDueDate(s string) error {
	if !models.ValidDueDate(strings.TrimSpace(s)) {
		return models.ErrInvalidDueDate
	}
	return nil
}
