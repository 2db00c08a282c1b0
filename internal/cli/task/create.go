package task

import (
	"errors"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/taskman/internal/cli"
	"github.com/thenoetrevino/taskman/internal/models"
)

// CreateCmd returns the task create subcommand
func CreateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a new task",
		Long: `Create a new task with specified attributes.

Examples:
  # Simple task (human-readable output)
  taskman task create --title="Buy milk"

  # JSON output for agents
  taskman task create --title="Fix bug" --priority=high --json

  # Quiet mode for bash capture
  TASK_ID=$(taskman task create --title="Fix bug" --quiet)

  # Description from stdin
  git log -1 --format=%B | taskman task create --title="Release notes" --description=-
`,
		Args: cobra.NoArgs,
		RunE: runCreate,
	}

	cli.AddTaskFlags(cmd.Flags())
	if err := cmd.MarkFlagRequired("title"); err != nil {
		slog.Error("Error marking flag as required", "error", err)
	}
	cli.AddOutputFlags(cmd.Flags())

	return cmd
}

func runCreate(cmd *cobra.Command, args []string) error {
	formatter := cli.FormatterFromFlags(cmd.Flags())

	draft := models.NewDraft()
	if err := cli.ApplyTaskFlags(cmd.Flags(), &draft, os.Stdin); err != nil {
		return flagFailure(formatter, err)
	}
	if draft.Title == "" {
		return formatter.Fail(cli.ExitValidation, "INVALID_TITLE",
			errors.New("title cannot be empty"), "Pass a non-blank --title")
	}

	cliInstance, err := cli.GetCLIFromContext(cmd)
	if err != nil {
		return formatter.Fail(cli.ExitError, "INITIALIZATION_ERROR", err, "")
	}
	defer func() {
		if err := cliInstance.Close(); err != nil {
			slog.Error("Error closing CLI", "error", err)
		}
	}()

	task, err := cli.Result(cliInstance.App.API.Create(cliInstance.Context(), draft))
	if err != nil {
		return formatter.APIFailure(err)
	}
	slog.Info("task created", "id", task.ID)

	return writeTask(formatter, task, "created")
}

// writeTask reports a saved task in the selected output mode
func writeTask(formatter *cli.OutputFormatter, task models.Task, verb string) error {
	if formatter.Quiet {
		return formatter.Success(task)
	}

	if formatter.JSON {
		return formatter.WriteJSON(map[string]any{
			"success": true,
			"task":    task,
		})
	}

	formatter.Println("✓ Task '" + task.Title + "' " + verb + " successfully (ID: " + task.ID + ")")
	formatter.Println("  Status: " + task.Status.Label())
	formatter.Println("  Priority: " + task.Priority.Label())
	if task.DueDate != "" {
		formatter.Println("  Due: " + task.DueDate)
	}
	return nil
}

// flagFailure maps a flag parsing error to its exit code
func flagFailure(formatter *cli.OutputFormatter, err error) error {
	switch {
	case errors.Is(err, models.ErrInvalidStatus):
		return formatter.Fail(cli.ExitValidation, "INVALID_STATUS", err,
			"Valid statuses are: pending, in-progress, completed")
	case errors.Is(err, models.ErrInvalidPriority):
		return formatter.Fail(cli.ExitValidation, "INVALID_PRIORITY", err,
			"Valid priorities are: low, medium, high")
	case errors.Is(err, models.ErrInvalidDueDate):
		return formatter.Fail(cli.ExitValidation, "INVALID_DUE_DATE", err,
			"Use the YYYY-MM-DD format, for example 2025-01-31")
	default:
		return formatter.Fail(cli.ExitDataErr, "STDIN_READ_ERROR", err, "")
	}
}
