package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/pflag"

	"github.com/thenoetrevino/taskman/internal/models"
)

// ReadDescription resolves a --description value, reading stdin for "-"
func ReadDescription(value string, stdin io.Reader) (string, error) {
	if value != "-" {
		return value, nil
	}
	data, err := io.ReadAll(stdin)
	if err != nil {
		return "", fmt.Errorf("failed to read description from stdin: %w", err)
	}
	return strings.TrimRight(string(data), "\n"), nil
}

// ApplyTaskFlags copies every task flag that was set on flags onto task
func ApplyTaskFlags(flags *pflag.FlagSet, task *models.Task, stdin io.Reader) error {
	if flags.Changed("title") {
		title, _ := flags.GetString("title")
		task.Title = strings.TrimSpace(title)
	}

	if flags.Changed("description") {
		raw, _ := flags.GetString("description")
		description, err := ReadDescription(raw, stdin)
		if err != nil {
			return err
		}
		task.Description = description
	}

	if flags.Changed("status") {
		raw, _ := flags.GetString("status")
		status, err := models.ParseStatus(raw)
		if err != nil {
			return err
		}
		task.Status = status
	}

	if flags.Changed("priority") {
		raw, _ := flags.GetString("priority")
		priority, err := models.ParsePriority(raw)
		if err != nil {
			return err
		}
		task.Priority = priority
	}

	if flags.Changed("due") {
		due, _ := flags.GetString("due")
		due = strings.TrimSpace(due)
		if !models.ValidDueDate(due) {
			return models.ErrInvalidDueDate
		}
		task.DueDate = due
	}

	return nil
}

// AddTaskFlags registers the editable task fields on flags
func AddTaskFlags(flags *pflag.FlagSet) {
	flags.String("title", "", "Task title")
	flags.String("description", "", "Task description (use - for stdin)")
	flags.String("status", "", "Status: pending, in-progress, completed")
	flags.String("priority", "", "Priority: low, medium, high")
	flags.String("due", "", "Due date (YYYY-MM-DD, empty to clear)")
}

// AddOutputFlags registers the agent-friendly output flags
func AddOutputFlags(flags *pflag.FlagSet) {
	flags.Bool("json", false, "Output in JSON format")
	flags.Bool("quiet", false, "Minimal output (ID only)")
}

// FormatterFromFlags builds the formatter selected by --json/--quiet
func FormatterFromFlags(flags *pflag.FlagSet) *OutputFormatter {
	jsonOutput, _ := flags.GetBool("json")
	quietMode, _ := flags.GetBool("quiet")
	return &OutputFormatter{JSON: jsonOutput, Quiet: quietMode}
}
